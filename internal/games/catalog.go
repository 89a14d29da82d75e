package games

import "github.com/KirkDiggler/robuxroyale/internal/models"

// Catalog lists the games in selector order
func Catalog() []models.GameInfo {
	return []models.GameInfo{
		{
			Kind:        models.GameKindRoulette,
			Name:        "Roulette",
			Description: "Spin the wheel, every section pays between 1 and 100 R$",
		},
		{
			Kind:        models.GameKindSlots,
			Name:        "Slots",
			Description: "Three of a kind pays 5 to 100 R$, a miss sometimes pays 2 R$",
		},
		{
			Kind:        models.GameKindCrash,
			Name:        "Crash",
			Description: "Cash out before the multiplier crashes",
		},
		{
			Kind:        models.GameKindDice,
			Name:        "Dice",
			Description: "Pick a number and bet the roll lands over or under it",
		},
		{
			Kind:        models.GameKindNyanCat,
			Name:        "Nyan Cat",
			Description: "Save the cat before it flies too high, 1 R$ per 10m",
		},
	}
}
