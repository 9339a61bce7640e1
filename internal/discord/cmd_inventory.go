package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"

	"github.com/mingleton/dawson-rp/internal/domain"
)

// Component custom ID prefixes for inventory interactions. The item ID is
// carried after a colon; the acting account is always resolved from the
// clicking user so nobody can drive someone else's inventory.
const (
	ComponentInventorySelect  = "inv_select"
	ComponentInventoryEquip   = "inv_equip"
	ComponentInventoryUnequip = "inv_unequip"
	ComponentInventoryDrop    = "inv_drop"
)

// InventoryCommand returns the inventory command definition and handler.
// The response carries a select menu of stacks; picking one exposes
// equip/unequip/drop buttons for one unit of that stack.
func InventoryCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "inventory",
		Description: "View and manage your inventory",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		accountID, err := interactionAccountID(i)
		if err != nil {
			slog.Error("Failed to resolve account ID", "error", err)
			respondError(s, i, MsgGenericError)
			return
		}

		stacks, err := client.GetInventory(accountID)
		if err != nil {
			slog.Error("Failed to get inventory", "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		embed := inventoryEmbed(getInteractionUser(i).Username, stacks)
		components := inventoryComponents(stacks)

		if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
			Embeds:     &[]*discordgo.MessageEmbed{embed},
			Components: &components,
		}); err != nil {
			slog.Error("Failed to send inventory", "error", err)
		}
	}

	return cmd, handler
}

// inventoryEmbed renders the stack list
func inventoryEmbed(username string, stacks []domain.InventoryStack) *discordgo.MessageEmbed {
	var description string
	if len(stacks) == 0 {
		description = "Your inventory is empty."
	} else {
		var lines []string
		for _, stack := range stacks {
			line := fmt.Sprintf("**%s** x%d", stack.Name, stack.Amount)
			if stack.IsEquipped {
				line += " *(equipped)*"
			}
			lines = append(lines, line)
		}
		description = strings.Join(lines, "\n")
	}
	return createEmbed(fmt.Sprintf("%s's Inventory", username), description, 0x9b59b6, "")
}

// inventoryComponents builds the stack select menu. Discord caps select
// menus at 25 options.
func inventoryComponents(stacks []domain.InventoryStack) []discordgo.MessageComponent {
	if len(stacks) == 0 {
		return []discordgo.MessageComponent{}
	}

	options := make([]discordgo.SelectMenuOption, 0, len(stacks))
	for idx, stack := range stacks {
		if idx == 25 {
			break
		}
		label := fmt.Sprintf("%s x%d", stack.Name, stack.Amount)
		if stack.IsEquipped {
			label += " (equipped)"
		}
		options = append(options, discordgo.SelectMenuOption{
			Label: label,
			// One representative unit of the stack; actions apply to it.
			Value: stack.ItemIDs[0].String(),
		})
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    ComponentInventorySelect,
					Placeholder: "Pick an item to manage",
					Options:     options,
				},
			},
		},
	}
}

// HandleInventorySelect reacts to a stack being picked from the menu by
// swapping in the action buttons for the chosen unit.
func HandleInventorySelect(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient, customID string) {
	values := i.MessageComponentData().Values
	if len(values) == 0 {
		return
	}
	itemID := values[0]

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Equip",
					Style:    discordgo.PrimaryButton,
					CustomID: ComponentInventoryEquip + ":" + itemID,
				},
				discordgo.Button{
					Label:    "Unequip",
					Style:    discordgo.SecondaryButton,
					CustomID: ComponentInventoryUnequip + ":" + itemID,
				},
				discordgo.Button{
					Label:    "Drop",
					Style:    discordgo.DangerButton,
					CustomID: ComponentInventoryDrop + ":" + itemID,
				},
			},
		},
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     i.Message.Embeds,
			Components: components,
		},
	}); err != nil {
		slog.Error("Failed to update inventory message", "error", err)
	}
}

// HandleInventoryAction runs an equip/unequip/drop button press and
// re-renders the clicking user's inventory.
func HandleInventoryAction(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient, customID string) {
	prefix, rawID, ok := strings.Cut(customID, ":")
	if !ok {
		return
	}

	itemID, err := uuid.Parse(rawID)
	if err != nil {
		slog.Error("Bad item ID in component", "custom_id", customID, "error", err)
		return
	}

	accountID, err := interactionAccountID(i)
	if err != nil {
		slog.Error("Failed to resolve account ID", "error", err)
		return
	}

	var verb string
	switch prefix {
	case ComponentInventoryEquip:
		verb = "equipped"
		err = client.EquipItem(accountID, itemID)
	case ComponentInventoryUnequip:
		verb = "unequipped"
		err = client.UnequipItem(accountID, itemID)
	case ComponentInventoryDrop:
		verb = "dropped"
		err = client.DropItem(accountID, itemID)
	default:
		return
	}

	var note string
	if err != nil {
		slog.Error("Inventory action failed", "action", prefix, "error", err)
		note = formatFriendlyError(err.Error())
	} else {
		note = fmt.Sprintf("✅ Item %s.", verb)
	}

	stacks, invErr := client.GetInventory(accountID)
	if invErr != nil {
		slog.Error("Failed to refresh inventory", "error", invErr)
		stacks = nil
	}

	embed := inventoryEmbed(getInteractionUser(i).Username, stacks)
	embed.Description = note + "\n\n" + embed.Description
	components := inventoryComponents(stacks)

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	}); err != nil {
		slog.Error("Failed to update inventory message", "error", err)
	}
}
