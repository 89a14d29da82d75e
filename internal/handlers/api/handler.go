package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	resp "github.com/KirkDiggler/robuxroyale/internal/handlers/api/response"
	"github.com/KirkDiggler/robuxroyale/internal/logger"
	"github.com/KirkDiggler/robuxroyale/internal/services/casino"
)

// HandlerError is a custom error type for API setup errors
type HandlerError string

// Error implements the error interface
func (e HandlerError) Error() string {
	return string(e)
}

const (
	ErrNilConfig        HandlerError = "config cannot be nil"
	ErrNilCasinoService HandlerError = "casino service cannot be nil"
)

// Config holds configuration for the HTTP API
type Config struct {
	CasinoService casino.Service
	Logger        *zap.Logger

	// AllowedOrigins for CORS, empty allows any origin
	AllowedOrigins []string
}

// Handler serves the casino over JSON
type Handler struct {
	casino         casino.Service
	log            *zap.Logger
	validator      *validator.Validate
	allowedOrigins []string
}

// New creates a new API handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.CasinoService == nil {
		return nil, ErrNilCasinoService
	}

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return &Handler{
		casino:         cfg.CasinoService,
		log:            logger.OrNop(cfg.Logger),
		validator:      validator.New(),
		allowedOrigins: origins,
	}, nil
}

// Router builds the chi router with every route mounted
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           60 * 15,
	}))

	r.Get("/healthz", h.Health)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/games", h.ListGames)

	r.Post("/sessions", h.CreateSession)
	r.Route("/sessions/{sessionID}", func(rr chi.Router) {
		rr.Get("/", h.GetSession)
		rr.Delete("/", h.CloseSession)
		rr.Post("/terms", h.AcceptTerms)
		rr.Post("/bet", h.PlaceBet)

		rr.Post("/roulette/spin", h.SpinRoulette)
		rr.Post("/slots/spin", h.SpinSlots)
		rr.Post("/dice/roll", h.RollDice)

		rr.Get("/crash", h.GetCrashStatus)
		rr.Post("/crash/start", h.StartCrash)
		rr.Post("/crash/cashout", h.CashOutCrash)

		rr.Get("/nyancat", h.GetNyanCatStatus)
		rr.Post("/nyancat/launch", h.LaunchNyanCat)
		rr.Post("/nyancat/save", h.SaveNyanCat)

		rr.Post("/keys", h.HandleKey)
		rr.Get("/boost", h.GetBoost)
		rr.Post("/boost", h.ActivateBoost)

		rr.Get("/history", h.GetHistory)
		rr.Get("/stats", h.GetStats)
		rr.Post("/claim", h.ClaimReward)
	})

	return r
}

// Health reports liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, resp.OK())
}

// requestLog is the per-request logger
func (h *Handler) requestLog(r *http.Request, op string) *zap.Logger {
	return h.log.With(
		zap.String("op", op),
		zap.String("request_id", middleware.GetReqID(r.Context())),
	)
}

// decode reads and validates a JSON body, writing the error response itself
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, log *zap.Logger, dst interface{}) bool {
	if err := render.DecodeJSON(r.Body, dst); err != nil {
		log.Error("failed to decode request body", zap.Error(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, resp.Error("failed to decode request body", http.StatusBadRequest))

		return false
	}

	if err := h.validator.Struct(dst); err != nil {
		var validateErr validator.ValidationErrors
		if !errors.As(err, &validateErr) {
			log.Error("failed to validate request", zap.Error(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error("invalid request", http.StatusBadRequest))

			return false
		}

		log.Info("invalid request", zap.Error(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, resp.ValidationError(validateErr))

		return false
	}

	return true
}

// fail maps a service error onto a status code
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		log.Error("request failed", zap.Error(err))
	} else {
		log.Info("request rejected", zap.Error(err))
	}

	msg := err.Error()
	if status >= http.StatusInternalServerError {
		msg = "internal error"
	}

	render.Status(r, status)
	render.JSON(w, r, resp.Error(msg, status))
}
