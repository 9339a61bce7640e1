package discord

import (
	"fmt"

	"github.com/mingleton/dawson-rp/internal/domain"
)

// formatAbilities renders the six ability scores on two lines.
func formatAbilities(acct *domain.Account) string {
	a := acct.Abilities
	return fmt.Sprintf(
		"STR **%d**  DEX **%d**  CON **%d**\nINT **%d**  WIS **%d**  CHA **%d**",
		a.Strength, a.Dexterity, a.Constitution,
		a.Intelligence, a.Wisdom, a.Charisma)
}
