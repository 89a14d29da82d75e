package api

import (
	"time"

	resp "github.com/KirkDiggler/robuxroyale/internal/handlers/api/response"
	"github.com/KirkDiggler/robuxroyale/internal/models"
	"github.com/KirkDiggler/robuxroyale/internal/services/casino"
)

type CreateSessionRequest struct {
	PlayerName string `json:"player_name" validate:"max=20"`
}

type PlaceBetRequest struct {
	PlayerName string `json:"player_name" validate:"required,max=20"`
	BetAmount  int    `json:"bet_amount" validate:"required,gte=1"`
	Game       string `json:"game" validate:"required,oneof=roulette slots dice crash nyancat"`
}

type RollDiceRequest struct {
	Threshold int    `json:"threshold" validate:"required,min=1,max=99"`
	Mode      string `json:"mode" validate:"required,oneof=over under"`
}

type KeyRequest struct {
	Key   string `json:"key" validate:"required"`
	Ctrl  bool   `json:"ctrl"`
	Alt   bool   `json:"alt"`
	Shift bool   `json:"shift"`
	Up    bool   `json:"up"`
}

type ClaimRequest struct {
	Username string `json:"username" validate:"required"`
}

type Session struct {
	ID              string     `json:"id"`
	PlayerName      string     `json:"player_name,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	TermsAccepted   bool       `json:"terms_accepted"`
	TermsAcceptedAt *time.Time `json:"terms_accepted_at,omitempty"`
	PendingReward   int        `json:"pending_reward"`
}

type Bet struct {
	PlayerName string `json:"player_name"`
	BetAmount  int    `json:"bet_amount"`
	Game       string `json:"game"`
}

type Boost struct {
	Active           bool `json:"active"`
	RemainingSeconds int  `json:"remaining_seconds"`
}

type Overlay struct {
	WarningVisible bool `json:"warning_visible"`
	AlertMode      bool `json:"alert_mode"`
	MusicPlaying   bool `json:"music_playing"`
}

type Outcome struct {
	ID            string    `json:"id"`
	Game          string    `json:"game"`
	Value         float64   `json:"value"`
	Display       string    `json:"display"`
	Symbols       []string  `json:"symbols,omitempty"`
	Won           bool      `json:"won"`
	Payout        int       `json:"payout"`
	Boosted       bool      `json:"boosted"`
	Bet           *Bet      `json:"bet,omitempty"`
	RevealAfterMS int64     `json:"reveal_after_ms"`
	CreatedAt     time.Time `json:"created_at"`
}

type RoundStatus struct {
	RoundID         string   `json:"round_id"`
	Game            string   `json:"game"`
	Phase           string   `json:"phase"`
	Ticks           int      `json:"ticks"`
	Value           float64  `json:"value"`
	Display         string   `json:"display"`
	PotentialPayout int      `json:"potential_payout"`
	Boosted         bool     `json:"boosted"`
	Outcome         *Outcome `json:"outcome,omitempty"`
}

type HistoryEntry struct {
	ID         string    `json:"id"`
	PlayerName string    `json:"player_name"`
	Game       string    `json:"game"`
	BetAmount  int       `json:"bet_amount"`
	Result     string    `json:"result"`
	Winnings   int       `json:"winnings"`
	Timestamp  time.Time `json:"timestamp"`
}

type Stats struct {
	Rounds        int `json:"rounds"`
	Wins          int `json:"wins"`
	Losses        int `json:"losses"`
	TotalBet      int `json:"total_bet"`
	TotalWinnings int `json:"total_winnings"`
	WinRate       int `json:"win_rate"`
}

type Game struct {
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Claim struct {
	Username        string `json:"username"`
	Amount          int    `json:"amount"`
	ClipboardText   string `json:"clipboard_text"`
	RedirectURL     string `json:"redirect_url"`
	RedirectAfterMS int64  `json:"redirect_after_ms"`
}

type SessionResponse struct {
	resp.Response
	Session          Session  `json:"session"`
	Boost            *Boost   `json:"boost,omitempty"`
	Overlay          *Overlay `json:"overlay,omitempty"`
	Bet              *Bet     `json:"bet,omitempty"`
	TermsRemainingMS int64    `json:"terms_remaining_ms"`
}

type BetResponse struct {
	resp.Response
	Bet Bet `json:"bet"`
}

type RoundResponse struct {
	resp.Response
	Outcome       Outcome `json:"outcome"`
	Rotation      float64 `json:"rotation,omitempty"`
	ReelStopsMS   []int64 `json:"reel_stops_ms,omitempty"`
	PendingReward int     `json:"pending_reward"`
}

type StatusResponse struct {
	resp.Response
	Round RoundStatus `json:"round"`
}

type KeyResponse struct {
	resp.Response
	Commands []string `json:"commands"`
	Boost    Boost    `json:"boost"`
	Overlay  Overlay  `json:"overlay"`
}

type BoostResponse struct {
	resp.Response
	Boost Boost `json:"boost"`
}

type HistoryResponse struct {
	resp.Response
	Entries []HistoryEntry `json:"entries"`
}

type StatsResponse struct {
	resp.Response
	Stats Stats `json:"stats"`
}

type GamesResponse struct {
	resp.Response
	Games []Game `json:"games"`
}

type ClaimResponse struct {
	resp.Response
	Claim Claim `json:"claim"`
}

func toSession(s *models.Session) Session {
	out := Session{
		ID:            s.ID,
		PlayerName:    s.PlayerName,
		CreatedAt:     s.CreatedAt,
		TermsAccepted: s.TermsAccepted,
		PendingReward: s.PendingReward,
	}
	if s.TermsAccepted {
		at := s.TermsAcceptedAt
		out.TermsAcceptedAt = &at
	}
	return out
}

func toBet(b *models.BetContext) *Bet {
	if b == nil {
		return nil
	}
	return &Bet{
		PlayerName: b.PlayerName,
		BetAmount:  b.BetAmount,
		Game:       string(b.Game),
	}
}

func toBoost(b models.BoostState) Boost {
	return Boost{
		Active:           b.Active,
		RemainingSeconds: b.RemainingSeconds,
	}
}

func toOverlay(o models.OverlayState) Overlay {
	return Overlay{
		WarningVisible: o.WarningVisible,
		AlertMode:      o.AlertMode,
		MusicPlaying:   o.MusicPlaying,
	}
}

func toOutcome(o *models.RoundOutcome) *Outcome {
	if o == nil {
		return nil
	}
	return &Outcome{
		ID:            o.ID,
		Game:          string(o.Game),
		Value:         o.Value,
		Display:       o.Display,
		Symbols:       o.Symbols,
		Won:           o.Won,
		Payout:        o.Payout,
		Boosted:       o.Boosted,
		Bet:           toBet(o.Bet),
		RevealAfterMS: o.RevealAfter.Milliseconds(),
		CreatedAt:     o.CreatedAt,
	}
}

func toRoundResponse(out *casino.PlayRoundOutput) RoundResponse {
	res := RoundResponse{
		Response:      resp.OK(),
		Outcome:       *toOutcome(out.Outcome),
		Rotation:      out.Rotation,
		PendingReward: out.PendingReward,
	}
	for _, stop := range out.ReelStops {
		res.ReelStopsMS = append(res.ReelStopsMS, stop.Milliseconds())
	}
	return res
}

func toRoundStatus(s *casino.RoundStatus) RoundStatus {
	return RoundStatus{
		RoundID:         s.RoundID,
		Game:            string(s.Game),
		Phase:           string(s.Phase),
		Ticks:           s.Ticks,
		Value:           s.Value,
		Display:         s.Display,
		PotentialPayout: s.PotentialPayout,
		Boosted:         s.Boosted,
		Outcome:         toOutcome(s.Outcome),
	}
}

func toHistory(entries []*models.HistoryEntry) []HistoryEntry {
	out := make([]HistoryEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, HistoryEntry{
			ID:         e.ID,
			PlayerName: e.PlayerName,
			Game:       string(e.Game),
			BetAmount:  e.BetAmount,
			Result:     string(e.Result),
			Winnings:   e.Winnings,
			Timestamp:  e.Timestamp,
		})
	}
	return out
}
