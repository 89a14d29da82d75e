package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/render"

	resp "github.com/KirkDiggler/robuxroyale/internal/handlers/api/response"
	"github.com/KirkDiggler/robuxroyale/internal/models"
	"github.com/KirkDiggler/robuxroyale/internal/services/casino"
)

// HandleKey forwards a keyboard event from the page
func (h *Handler) HandleKey(w http.ResponseWriter, r *http.Request) {
	log := h.requestLog(r, "handlers.api.HandleKey")

	var req KeyRequest
	if !h.decode(w, r, log, &req) {
		return
	}

	out, err := h.casino.HandleKey(r.Context(), &casino.HandleKeyInput{
		SessionID: sessionID(r),
		Event: models.KeyEvent{
			Key:   req.Key,
			Ctrl:  req.Ctrl,
			Alt:   req.Alt,
			Shift: req.Shift,
			Up:    req.Up,
		},
	})
	if err != nil {
		h.fail(w, r, log, err)
		return
	}

	commands := make([]string, 0, len(out.Commands))
	for _, cmd := range out.Commands {
		commands = append(commands, string(cmd))
	}

	render.JSON(w, r, KeyResponse{
		Response: resp.OK(),
		Commands: commands,
		Boost:    toBoost(out.Boost),
		Overlay:  toOverlay(out.Overlay),
	})
}

// GetBoost returns the boost countdown
func (h *Handler) GetBoost(w http.ResponseWriter, r *http.Request) {
	log := h.requestLog(r, "handlers.api.GetBoost")

	out, err := h.casino.GetBoost(r.Context(), &casino.BoostInput{
		SessionID: sessionID(r),
	})
	if err != nil {
		h.fail(w, r, log, err)
		return
	}

	render.JSON(w, r, BoostResponse{
		Response: resp.OK(),
		Boost:    toBoost(out.Boost),
	})
}

// ActivateBoost starts a full countdown
func (h *Handler) ActivateBoost(w http.ResponseWriter, r *http.Request) {
	log := h.requestLog(r, "handlers.api.ActivateBoost")

	out, err := h.casino.ActivateBoost(r.Context(), &casino.BoostInput{
		SessionID: sessionID(r),
	})
	if err != nil {
		h.fail(w, r, log, err)
		return
	}

	render.JSON(w, r, BoostResponse{
		Response: resp.OK(),
		Boost:    toBoost(out.Boost),
	})
}

// GetHistory lists the latest rounds, ?limit= overrides the default
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	log := h.requestLog(r, "handlers.api.GetHistory")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error("limit must be a positive number", http.StatusBadRequest))
			return
		}
		limit = n
	}

	out, err := h.casino.GetHistory(r.Context(), &casino.GetHistoryInput{
		SessionID: sessionID(r),
		Limit:     limit,
	})
	if err != nil {
		h.fail(w, r, log, err)
		return
	}

	render.JSON(w, r, HistoryResponse{
		Response: resp.OK(),
		Entries:  toHistory(out.Entries),
	})
}

// GetStats returns the session totals
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	log := h.requestLog(r, "handlers.api.GetStats")

	out, err := h.casino.GetStats(r.Context(), &casino.GetStatsInput{
		SessionID: sessionID(r),
	})
	if err != nil {
		h.fail(w, r, log, err)
		return
	}

	render.JSON(w, r, StatsResponse{
		Response: resp.OK(),
		Stats: Stats{
			Rounds:        out.Stats.Rounds,
			Wins:          out.Stats.Wins,
			Losses:        out.Stats.Losses,
			TotalBet:      out.Stats.TotalBet,
			TotalWinnings: out.Stats.TotalWinnings,
			WinRate:       out.WinRate,
		},
	})
}

// ClaimReward returns the clipboard text and redirect for the pending reward
func (h *Handler) ClaimReward(w http.ResponseWriter, r *http.Request) {
	log := h.requestLog(r, "handlers.api.ClaimReward")

	var req ClaimRequest
	if !h.decode(w, r, log, &req) {
		return
	}

	out, err := h.casino.ClaimReward(r.Context(), &casino.ClaimRewardInput{
		SessionID: sessionID(r),
		Username:  req.Username,
	})
	if err != nil {
		h.fail(w, r, log, err)
		return
	}

	render.JSON(w, r, ClaimResponse{
		Response: resp.OK(),
		Claim: Claim{
			Username:        out.Claim.Username,
			Amount:          out.Claim.Amount,
			ClipboardText:   out.Claim.ClipboardText,
			RedirectURL:     out.Claim.RedirectURL,
			RedirectAfterMS: out.Claim.RedirectAfter.Milliseconds(),
		},
	})
}
