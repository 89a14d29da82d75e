package api

import (
	"errors"
	"net/http"

	"github.com/KirkDiggler/robuxroyale/internal/games"
	"github.com/KirkDiggler/robuxroyale/internal/services/casino"
)

func statusFor(err error) int {
	var gameErr games.GameError

	switch {
	case errors.Is(err, casino.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, casino.ErrSessionNotFound),
		errors.Is(err, casino.ErrNoRound):
		return http.StatusNotFound
	case errors.Is(err, casino.ErrTermsNotAccepted),
		errors.Is(err, casino.ErrTermsCountdown):
		return http.StatusForbidden
	case errors.Is(err, casino.ErrNoPendingReward),
		errors.Is(err, casino.ErrRoundInProgress),
		errors.Is(err, casino.ErrRoundNotRunning):
		return http.StatusConflict
	case errors.As(err, &gameErr):
		return http.StatusConflict
	}

	return http.StatusInternalServerError
}
