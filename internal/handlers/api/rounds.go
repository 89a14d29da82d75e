package api

import (
	"context"
	"net/http"

	"github.com/go-chi/render"

	resp "github.com/KirkDiggler/robuxroyale/internal/handlers/api/response"
	"github.com/KirkDiggler/robuxroyale/internal/games"
	"github.com/KirkDiggler/robuxroyale/internal/models"
	"github.com/KirkDiggler/robuxroyale/internal/services/casino"
)

// PlaceBet stores the bet for the next round of a game
func (h *Handler) PlaceBet(w http.ResponseWriter, r *http.Request) {
	log := h.requestLog(r, "handlers.api.PlaceBet")

	var req PlaceBetRequest
	if !h.decode(w, r, log, &req) {
		return
	}

	out, err := h.casino.PlaceBet(r.Context(), &casino.PlaceBetInput{
		SessionID:  sessionID(r),
		PlayerName: req.PlayerName,
		BetAmount:  req.BetAmount,
		Game:       models.GameKind(req.Game),
	})
	if err != nil {
		h.fail(w, r, log, err)
		return
	}

	render.JSON(w, r, BetResponse{
		Response: resp.OK(),
		Bet:      *toBet(out.Bet),
	})
}

type playFunc func(ctx context.Context, input *casino.PlayRoundInput) (*casino.PlayRoundOutput, error)

func (h *Handler) play(op string, fn playFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := h.requestLog(r, op)

		out, err := fn(r.Context(), &casino.PlayRoundInput{
			SessionID: sessionID(r),
		})
		if err != nil {
			h.fail(w, r, log, err)
			return
		}

		render.JSON(w, r, toRoundResponse(out))
	}
}

// SpinRoulette spins the wheel
func (h *Handler) SpinRoulette(w http.ResponseWriter, r *http.Request) {
	h.play("handlers.api.SpinRoulette", h.casino.SpinRoulette)(w, r)
}

// SpinSlots pulls the lever
func (h *Handler) SpinSlots(w http.ResponseWriter, r *http.Request) {
	h.play("handlers.api.SpinSlots", h.casino.SpinSlots)(w, r)
}

// RollDice rolls against the posted prediction
func (h *Handler) RollDice(w http.ResponseWriter, r *http.Request) {
	log := h.requestLog(r, "handlers.api.RollDice")

	var req RollDiceRequest
	if !h.decode(w, r, log, &req) {
		return
	}

	out, err := h.casino.RollDice(r.Context(), &casino.RollDiceInput{
		SessionID: sessionID(r),
		Threshold: req.Threshold,
		Mode:      games.DiceMode(req.Mode),
	})
	if err != nil {
		h.fail(w, r, log, err)
		return
	}

	render.JSON(w, r, toRoundResponse(out))
}

type statusFunc func(ctx context.Context, input *casino.TimedRoundInput) (*casino.TimedRoundOutput, error)

type stopFunc func(ctx context.Context, input *casino.TimedRoundInput) (*casino.PlayRoundOutput, error)

func (h *Handler) timedStatus(op string, fn statusFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := h.requestLog(r, op)

		out, err := fn(r.Context(), &casino.TimedRoundInput{
			SessionID: sessionID(r),
		})
		if err != nil {
			h.fail(w, r, log, err)
			return
		}

		render.JSON(w, r, StatusResponse{
			Response: resp.OK(),
			Round:    toRoundStatus(out.Status),
		})
	}
}

func (h *Handler) timedStop(op string, fn stopFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := h.requestLog(r, op)

		out, err := fn(r.Context(), &casino.TimedRoundInput{
			SessionID: sessionID(r),
		})
		if err != nil {
			h.fail(w, r, log, err)
			return
		}

		render.JSON(w, r, toRoundResponse(out))
	}
}

// StartCrash starts the multiplier
func (h *Handler) StartCrash(w http.ResponseWriter, r *http.Request) {
	h.timedStatus("handlers.api.StartCrash", h.casino.StartCrash)(w, r)
}

// GetCrashStatus is polled while the multiplier climbs
func (h *Handler) GetCrashStatus(w http.ResponseWriter, r *http.Request) {
	h.timedStatus("handlers.api.GetCrashStatus", h.casino.GetCrashStatus)(w, r)
}

// CashOutCrash stops the multiplier
func (h *Handler) CashOutCrash(w http.ResponseWriter, r *http.Request) {
	h.timedStop("handlers.api.CashOutCrash", h.casino.CashOutCrash)(w, r)
}

// LaunchNyanCat starts the flight
func (h *Handler) LaunchNyanCat(w http.ResponseWriter, r *http.Request) {
	h.timedStatus("handlers.api.LaunchNyanCat", h.casino.LaunchNyanCat)(w, r)
}

// GetNyanCatStatus is polled while the cat climbs
func (h *Handler) GetNyanCatStatus(w http.ResponseWriter, r *http.Request) {
	h.timedStatus("handlers.api.GetNyanCatStatus", h.casino.GetNyanCatStatus)(w, r)
}

// SaveNyanCat stops the flight
func (h *Handler) SaveNyanCat(w http.ResponseWriter, r *http.Request) {
	h.timedStop("handlers.api.SaveNyanCat", h.casino.SaveNyanCat)(w, r)
}
