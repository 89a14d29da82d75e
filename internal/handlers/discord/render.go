package discord

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/robuxroyale/internal/common/uuid"
	"github.com/KirkDiggler/robuxroyale/internal/games"
	"github.com/KirkDiggler/robuxroyale/internal/models"
	"github.com/KirkDiggler/robuxroyale/internal/services/casino"
	"github.com/KirkDiggler/robuxroyale/internal/services/messaging"
)

const (
	colorWin  = 0xF1C40F
	colorLoss = 0xE74C3C
	colorInfo = 0x3498DB
	colorLive = 0x9B59B6
)

// Custom IDs are "action:arg:arg"
const (
	actionAgain   = "again"
	actionStop    = "stop"
	actionRefresh = "refresh"
	actionClaim   = "claim"
	actionTerms   = "terms"

	claimModalID    = "claim_modal"
	claimUsernameID = "claim_username"
)

var gameEmoji = map[models.GameKind]string{
	models.GameKindRoulette: "🎡",
	models.GameKindSlots:    "🎰",
	models.GameKindDice:     "🎲",
	models.GameKindCrash:    "🚀",
	models.GameKindNyanCat:  "🐱",
}

func customID(action string, args ...string) string {
	return strings.Join(append([]string{action}, args...), ":")
}

func parseCustomID(id string) (string, []string) {
	parts := strings.Split(id, ":")
	return parts[0], parts[1:]
}

func gameTitle(kind models.GameKind) string {
	for _, info := range games.Catalog() {
		if info.Kind == kind {
			return fmt.Sprintf("%s %s", gameEmoji[kind], info.Name)
		}
	}
	return string(kind)
}

// againID replays a round with the same parameters
func againID(outcome *models.RoundOutcome, dice *games.DiceBet) string {
	if outcome.Game == models.GameKindDice && dice != nil {
		return customID(actionAgain, string(models.GameKindDice), strconv.Itoa(dice.Threshold), string(dice.Mode))
	}
	return customID(actionAgain, string(outcome.Game))
}

func parseDiceArgs(args []string) (games.DiceBet, error) {
	if len(args) != 2 {
		return games.DiceBet{}, casino.ErrInvalidInput
	}
	threshold, err := strconv.Atoi(args[0])
	if err != nil {
		return games.DiceBet{}, fmt.Errorf("%w: %w", casino.ErrInvalidInput, err)
	}
	return games.DiceBet{Threshold: threshold, Mode: games.DiceMode(args[1])}, nil
}

func resultField(outcome *models.RoundOutcome) *discordgo.MessageEmbedField {
	value := outcome.Display
	switch outcome.Game {
	case models.GameKindSlots:
		if len(outcome.Symbols) > 0 {
			value = strings.Join(outcome.Symbols, " | ")
		}
	case models.GameKindDice:
		value = fmt.Sprintf("Rolled **%s**", outcome.Display)
	case models.GameKindCrash:
		if outcome.Won {
			value = fmt.Sprintf("Cashed out at **%s**", outcome.Display)
		} else {
			value = fmt.Sprintf("Crashed at **%s**", outcome.Display)
		}
	case models.GameKindNyanCat:
		if outcome.Won {
			value = fmt.Sprintf("Saved at **%s**", outcome.Display)
		} else {
			value = fmt.Sprintf("Lost at **%s**", outcome.Display)
		}
	}

	return &discordgo.MessageEmbedField{
		Name:   "Result",
		Value:  value,
		Inline: true,
	}
}

// outcomeEmbed renders a finished round
func outcomeEmbed(outcome *models.RoundOutcome, message *messaging.GetRoundResultMessageOutput, pendingReward int) *discordgo.MessageEmbed {
	color := colorLoss
	if outcome.Won {
		color = colorWin
	}

	payout := fmt.Sprintf("%d R$", outcome.Payout)
	if outcome.Boosted {
		payout += " ⚡"
	}

	fields := []*discordgo.MessageEmbedField{
		resultField(outcome),
		{
			Name:   "Payout",
			Value:  payout,
			Inline: true,
		},
	}

	if outcome.Bet != nil {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Bet",
			Value:  fmt.Sprintf("%s: %d R$", outcome.Bet.PlayerName, outcome.Bet.BetAmount),
			Inline: true,
		})
	}

	if pendingReward > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Reward",
			Value: fmt.Sprintf("**%d R$** waiting to be claimed", pendingReward),
		})
	}

	title := gameTitle(outcome.Game)
	description := ""
	if message != nil {
		title = fmt.Sprintf("%s | %s", title, message.Title)
		description = message.Message
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Fields:      fields,
		Timestamp:   outcome.CreatedAt.Format(time.RFC3339),
	}
	if outcome.ID != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "Round " + uuid.Short(outcome.ID)}
	}

	return embed
}

// outcomeComponents offers a replay and, with a reward waiting, the claim button
func outcomeComponents(outcome *models.RoundOutcome, dice *games.DiceBet, pendingReward int) []discordgo.MessageComponent {
	buttons := []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "Play again",
			Style:    discordgo.PrimaryButton,
			CustomID: againID(outcome, dice),
			Emoji: &discordgo.ComponentEmoji{
				Name: gameEmoji[outcome.Game],
			},
		},
	}

	if pendingReward > 0 {
		buttons = append(buttons, discordgo.Button{
			Label:    fmt.Sprintf("Claim %d R$", pendingReward),
			Style:    discordgo.SuccessButton,
			CustomID: customID(actionClaim),
			Emoji: &discordgo.ComponentEmoji{
				Name: "🎁",
			},
		})
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: buttons},
	}
}

func stopLabel(game models.GameKind) string {
	if game == models.GameKindNyanCat {
		return "Save the cat"
	}
	return "Cash out"
}

// statusEmbed renders a timed round that is still climbing
func statusEmbed(status *casino.RoundStatus, line string) *discordgo.MessageEmbed {
	current := "Multiplier"
	if status.Game == models.GameKindNyanCat {
		current = "Height"
	}

	payout := fmt.Sprintf("%d R$", status.PotentialPayout)
	if status.Boosted {
		payout += " ⚡"
	}

	return &discordgo.MessageEmbed{
		Title:       gameTitle(status.Game),
		Description: line,
		Color:       colorLive,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   current,
				Value:  fmt.Sprintf("**%s**", status.Display),
				Inline: true,
			},
			{
				Name:   fmt.Sprintf("%s now", stopLabel(status.Game)),
				Value:  payout,
				Inline: true,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Refresh to see how high it got",
		},
	}
}

func statusComponents(status *casino.RoundStatus) []discordgo.MessageComponent {
	game := string(status.Game)
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    stopLabel(status.Game),
					Style:    discordgo.SuccessButton,
					CustomID: customID(actionStop, game),
				},
				discordgo.Button{
					Label:    "Refresh",
					Style:    discordgo.SecondaryButton,
					CustomID: customID(actionRefresh, game),
					Emoji: &discordgo.ComponentEmoji{
						Name: "🔄",
					},
				},
			},
		},
	}
}

func betEmbed(bet *models.BetContext) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Bet placed",
		Description: fmt.Sprintf("**%s** bets **%d R$** on the next %s round.", bet.PlayerName, bet.BetAmount, gameTitle(bet.Game)),
		Color:       colorInfo,
	}
}

func historyEmbed(entries []*models.HistoryEntry) *discordgo.MessageEmbed {
	if len(entries) == 0 {
		return &discordgo.MessageEmbed{
			Title:       "📜 History",
			Description: "No rounds played yet.",
			Color:       colorInfo,
		}
	}

	var lines []string
	for _, entry := range entries {
		mark := "❌"
		if entry.Result == models.HistoryResultWon {
			mark = "✅"
		}
		line := fmt.Sprintf("%s %s **%d R$**", mark, gameTitle(entry.Game), entry.Winnings)
		if entry.BetAmount > 0 {
			line += fmt.Sprintf(" (bet %d by %s)", entry.BetAmount, entry.PlayerName)
		}
		lines = append(lines, line)
	}

	return &discordgo.MessageEmbed{
		Title:       "📜 History",
		Description: strings.Join(lines, "\n"),
		Color:       colorInfo,
	}
}

func statsEmbed(stats *models.SessionStats, winRate int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "📊 Stats",
		Color: colorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Rounds", Value: strconv.Itoa(stats.Rounds), Inline: true},
			{Name: "Wins", Value: strconv.Itoa(stats.Wins), Inline: true},
			{Name: "Losses", Value: strconv.Itoa(stats.Losses), Inline: true},
			{Name: "Win rate", Value: fmt.Sprintf("%d%%", winRate), Inline: true},
			{Name: "Total bet", Value: fmt.Sprintf("%d R$", stats.TotalBet), Inline: true},
			{Name: "Total winnings", Value: fmt.Sprintf("%d R$", stats.TotalWinnings), Inline: true},
		},
	}
}

func gamesEmbed(catalog []models.GameInfo) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(catalog))
	for _, info := range catalog {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  gameTitle(info.Kind),
			Value: info.Description,
		})
	}

	return &discordgo.MessageEmbed{
		Title:  "Games",
		Color:  colorInfo,
		Fields: fields,
	}
}

func boostEmbed(state models.BoostState) *discordgo.MessageEmbed {
	if !state.Active {
		return &discordgo.MessageEmbed{
			Title:       "⚡ Boost",
			Description: "Boost is off.",
			Color:       colorInfo,
		}
	}

	return &discordgo.MessageEmbed{
		Title:       "⚡ Boost",
		Description: fmt.Sprintf("Boost is on for **%ds**. Every payout is bigger while it lasts!", state.RemainingSeconds),
		Color:       colorWin,
	}
}

// ceilSeconds rounds a countdown up so it never shows 0 while time remains
func ceilSeconds(d time.Duration) int {
	return int(math.Ceil(d.Seconds()))
}

func termsEmbed(accepted bool, remaining time.Duration) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "📜 Terms",
		Description: "Rewards are paid out through PLS DONATE on Roblox. " +
			"Rounds are for fun, results are random and there is no real money involved.",
		Color: colorInfo,
	}

	switch {
	case accepted:
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "Accepted. Have fun!"}
	case remaining > 0:
		embed.Footer = &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("You can accept in %ds", ceilSeconds(remaining))}
	default:
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "You can accept now"}
	}

	return embed
}

func termsComponents(accepted bool) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "I accept",
					Style:    discordgo.SuccessButton,
					CustomID: customID(actionTerms),
					Disabled: accepted,
				},
			},
		},
	}
}

func claimModal(amount int) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: claimModalID,
			Title:    fmt.Sprintf("Claim %d R$", amount),
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    claimUsernameID,
							Label:       "Roblox username",
							Style:       discordgo.TextInputShort,
							Placeholder: "builderman",
							Required:    true,
							MaxLength:   casino.MaxPlayerNameLength,
						},
					},
				},
			},
		},
	}
}

// modalValue finds a text input in a submitted modal
func modalValue(data discordgo.ModalSubmitInteractionData, id string) string {
	for _, component := range data.Components {
		row, ok := component.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, inner := range row.Components {
			if input, ok := inner.(*discordgo.TextInput); ok && input.CustomID == id {
				return input.Value
			}
		}
	}
	return ""
}

func claimEmbed(claim *models.RewardClaim, message *messaging.GetClaimMessageOutput) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       message.Title,
		Description: message.Message,
		URL:         claim.RedirectURL,
		Color:       colorWin,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "Copy your name",
				Value: fmt.Sprintf("`%s`", claim.ClipboardText),
			},
			{
				Name:  "Collect",
				Value: claim.RedirectURL,
			},
		},
	}
}
