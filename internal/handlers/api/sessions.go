package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	resp "github.com/KirkDiggler/robuxroyale/internal/handlers/api/response"
	"github.com/KirkDiggler/robuxroyale/internal/services/casino"
)

func sessionID(r *http.Request) string {
	return chi.URLParam(r, "sessionID")
}

// ListGames returns the game catalogue
func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	catalog := h.casino.ListGames(r.Context())

	games := make([]Game, 0, len(catalog))
	for _, g := range catalog {
		games = append(games, Game{
			Kind:        string(g.Kind),
			Name:        g.Name,
			Description: g.Description,
		})
	}

	render.JSON(w, r, GamesResponse{
		Response: resp.OK(),
		Games:    games,
	})
}

// CreateSession opens a session. The body is optional.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	log := h.requestLog(r, "handlers.api.CreateSession")

	var req CreateSessionRequest
	if r.ContentLength > 0 && !h.decode(w, r, log, &req) {
		return
	}

	out, err := h.casino.CreateSession(r.Context(), &casino.CreateSessionInput{
		PlayerName: req.PlayerName,
	})
	if err != nil {
		h.fail(w, r, log, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, SessionResponse{
		Response: resp.Response{Status: http.StatusCreated},
		Session:  toSession(out.Session),
	})
}

// GetSession returns the session with its boost, overlay and bet state
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	log := h.requestLog(r, "handlers.api.GetSession")

	out, err := h.casino.GetSession(r.Context(), &casino.GetSessionInput{
		SessionID: sessionID(r),
	})
	if err != nil {
		h.fail(w, r, log, err)
		return
	}

	boost := toBoost(out.Boost)
	overlay := toOverlay(out.Overlay)

	render.JSON(w, r, SessionResponse{
		Response:         resp.OK(),
		Session:          toSession(out.Session),
		Boost:            &boost,
		Overlay:          &overlay,
		Bet:              toBet(out.Bet),
		TermsRemainingMS: out.TermsRemaining.Milliseconds(),
	})
}

// CloseSession ends a session
func (h *Handler) CloseSession(w http.ResponseWriter, r *http.Request) {
	log := h.requestLog(r, "handlers.api.CloseSession")

	if err := h.casino.CloseSession(r.Context(), &casino.CloseSessionInput{
		SessionID: sessionID(r),
	}); err != nil {
		h.fail(w, r, log, err)
		return
	}

	render.JSON(w, r, resp.OK())
}

// AcceptTerms unlocks the games
func (h *Handler) AcceptTerms(w http.ResponseWriter, r *http.Request) {
	log := h.requestLog(r, "handlers.api.AcceptTerms")

	out, err := h.casino.AcceptTerms(r.Context(), &casino.AcceptTermsInput{
		SessionID: sessionID(r),
	})
	if err != nil {
		h.fail(w, r, log, err)
		return
	}

	render.JSON(w, r, SessionResponse{
		Response: resp.OK(),
		Session:  toSession(out.Session),
	})
}
