package discord

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/robuxroyale/internal/games"
	"github.com/KirkDiggler/robuxroyale/internal/models"
	"github.com/KirkDiggler/robuxroyale/internal/services/casino"
	"github.com/KirkDiggler/robuxroyale/internal/services/messaging"
)

func TestCustomIDRoundTrip(t *testing.T) {
	id := customID(actionAgain, "dice", "50", "over")
	assert.Equal(t, "again:dice:50:over", id)

	action, args := parseCustomID(id)
	assert.Equal(t, actionAgain, action)
	assert.Equal(t, []string{"dice", "50", "over"}, args)

	action, args = parseCustomID(customID(actionClaim))
	assert.Equal(t, actionClaim, action)
	assert.Empty(t, args)
}

func TestAgainID(t *testing.T) {
	dice := &games.DiceBet{Threshold: 50, Mode: games.DiceModeUnder}

	assert.Equal(t, "again:dice:50:under", againID(&models.RoundOutcome{Game: models.GameKindDice}, dice))
	assert.Equal(t, "again:roulette", againID(&models.RoundOutcome{Game: models.GameKindRoulette}, nil))
	assert.Equal(t, "again:dice", againID(&models.RoundOutcome{Game: models.GameKindDice}, nil))
}

func TestParseDiceArgs(t *testing.T) {
	bet, err := parseDiceArgs([]string{"75", "over"})
	require.NoError(t, err)
	assert.Equal(t, games.DiceBet{Threshold: 75, Mode: games.DiceModeOver}, bet)

	_, err = parseDiceArgs([]string{"75"})
	assert.ErrorIs(t, err, casino.ErrInvalidInput)

	_, err = parseDiceArgs([]string{"lots", "over"})
	assert.ErrorIs(t, err, casino.ErrInvalidInput)
}

func TestOutcomeEmbedWin(t *testing.T) {
	outcome := &models.RoundOutcome{
		ID:        "0f8fad5b-d9cb-469f-a165-70867728950e",
		Game:      models.GameKindSlots,
		Symbols:   []string{"🍒", "🍒", "🍒"},
		Won:       true,
		Payout:    10,
		Boosted:   true,
		Bet:       &models.BetContext{PlayerName: "Ada", BetAmount: 20, Game: models.GameKindSlots},
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	message := &messaging.GetRoundResultMessageOutput{Title: "JACKPOT!", Message: "Ada wins"}

	embed := outcomeEmbed(outcome, message, 10)

	assert.Equal(t, "🎰 Slots | JACKPOT!", embed.Title)
	assert.Equal(t, "Ada wins", embed.Description)
	assert.Equal(t, colorWin, embed.Color)
	assert.Equal(t, "2026-01-02T03:04:05Z", embed.Timestamp)
	assert.Equal(t, "Round 0f8fad5b", embed.Footer.Text)
	require.Len(t, embed.Fields, 4)
	assert.Equal(t, "🍒 | 🍒 | 🍒", embed.Fields[0].Value)
	assert.Equal(t, "10 R$ ⚡", embed.Fields[1].Value)
	assert.Equal(t, "Ada: 20 R$", embed.Fields[2].Value)
	assert.Equal(t, "**10 R$** waiting to be claimed", embed.Fields[3].Value)
}

func TestOutcomeEmbedCrashBust(t *testing.T) {
	outcome := &models.RoundOutcome{
		Game:    models.GameKindCrash,
		Display: "1.10x",
	}

	embed := outcomeEmbed(outcome, nil, 0)

	assert.Equal(t, "🚀 Crash", embed.Title)
	assert.Nil(t, embed.Footer)
	assert.Equal(t, colorLoss, embed.Color)
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "Crashed at **1.10x**", embed.Fields[0].Value)
	assert.Equal(t, "0 R$", embed.Fields[1].Value)
}

func TestOutcomeComponents(t *testing.T) {
	outcome := &models.RoundOutcome{Game: models.GameKindRoulette, Won: true, Payout: 25}

	components := outcomeComponents(outcome, nil, 25)
	require.Len(t, components, 1)
	row, ok := components[0].(discordgo.ActionsRow)
	require.True(t, ok)
	require.Len(t, row.Components, 2)

	again := row.Components[0].(discordgo.Button)
	assert.Equal(t, "again:roulette", again.CustomID)

	claim := row.Components[1].(discordgo.Button)
	assert.Equal(t, "Claim 25 R$", claim.Label)
	assert.Equal(t, actionClaim, claim.CustomID)

	row = outcomeComponents(outcome, nil, 0)[0].(discordgo.ActionsRow)
	assert.Len(t, row.Components, 1)
}

func TestStatusEmbed(t *testing.T) {
	status := &casino.RoundStatus{
		Game:            models.GameKindNyanCat,
		Phase:           models.RoundPhaseRunning,
		Display:         "120m",
		PotentialPayout: 12,
		Boosted:         true,
	}

	embed := statusEmbed(status, "Save it!")
	assert.Equal(t, "🐱 Nyan Cat", embed.Title)
	assert.Equal(t, "Save it!", embed.Description)
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "Height", embed.Fields[0].Name)
	assert.Equal(t, "**120m**", embed.Fields[0].Value)
	assert.Equal(t, "Save the cat now", embed.Fields[1].Name)
	assert.Equal(t, "12 R$ ⚡", embed.Fields[1].Value)

	row := statusComponents(status)[0].(discordgo.ActionsRow)
	require.Len(t, row.Components, 2)
	assert.Equal(t, "stop:nyancat", row.Components[0].(discordgo.Button).CustomID)
	assert.Equal(t, "refresh:nyancat", row.Components[1].(discordgo.Button).CustomID)
}

func TestHistoryEmbed(t *testing.T) {
	assert.Equal(t, "No rounds played yet.", historyEmbed(nil).Description)

	embed := historyEmbed([]*models.HistoryEntry{
		{PlayerName: "Ada", Game: models.GameKindDice, BetAmount: 5, Result: models.HistoryResultWon, Winnings: 10},
		{PlayerName: "Player", Game: models.GameKindCrash, Result: models.HistoryResultLost},
	})
	assert.Equal(t, "✅ 🎲 Dice **10 R$** (bet 5 by Ada)\n❌ 🚀 Crash **0 R$**", embed.Description)
}

func TestStatsEmbed(t *testing.T) {
	embed := statsEmbed(&models.SessionStats{Rounds: 3, Wins: 2, Losses: 1, TotalBet: 30, TotalWinnings: 110}, 67)

	values := make(map[string]string)
	for _, field := range embed.Fields {
		values[field.Name] = field.Value
	}
	assert.Equal(t, "3", values["Rounds"])
	assert.Equal(t, "67%", values["Win rate"])
	assert.Equal(t, "30 R$", values["Total bet"])
	assert.Equal(t, "110 R$", values["Total winnings"])
}

func TestTermsEmbed(t *testing.T) {
	assert.Equal(t, "You can accept in 10s", termsEmbed(false, 9200*time.Millisecond).Footer.Text)
	assert.Equal(t, "You can accept now", termsEmbed(false, 0).Footer.Text)
	assert.Equal(t, "Accepted. Have fun!", termsEmbed(true, 0).Footer.Text)

	button := termsComponents(true)[0].(discordgo.ActionsRow).Components[0].(discordgo.Button)
	assert.True(t, button.Disabled)
}

func TestBoostEmbed(t *testing.T) {
	assert.Equal(t, "Boost is off.", boostEmbed(models.BoostState{}).Description)
	assert.Contains(t, boostEmbed(models.BoostState{Active: true, RemainingSeconds: 12}).Description, "**12s**")
}

func TestClaimModal(t *testing.T) {
	response := claimModal(25)
	assert.Equal(t, discordgo.InteractionResponseModal, response.Type)
	assert.Equal(t, claimModalID, response.Data.CustomID)
	assert.Equal(t, "Claim 25 R$", response.Data.Title)

	input := response.Data.Components[0].(discordgo.ActionsRow).Components[0].(discordgo.TextInput)
	assert.Equal(t, claimUsernameID, input.CustomID)
	assert.Equal(t, casino.MaxPlayerNameLength, input.MaxLength)
}

func TestModalValue(t *testing.T) {
	data := discordgo.ModalSubmitInteractionData{
		CustomID: claimModalID,
		Components: []discordgo.MessageComponent{
			&discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					&discordgo.TextInput{CustomID: claimUsernameID, Value: "builderman"},
				},
			},
		},
	}

	assert.Equal(t, "builderman", modalValue(data, claimUsernameID))
	assert.Empty(t, modalValue(data, "other"))
}

func TestGamesEmbedFollowsCatalog(t *testing.T) {
	embed := gamesEmbed(games.Catalog())
	require.Len(t, embed.Fields, len(models.GameKinds))
	assert.Equal(t, "🎡 Roulette", embed.Fields[0].Name)
}
