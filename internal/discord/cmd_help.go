package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// HelpCommand returns the help command definition and handler.
// Subcommands look up catalog reference data: rarity bands and item types.
func HelpCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "help",
		Description: "Look up game reference data",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "rarity",
				Description: "Look up a rarity band",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "name",
						Description: "Rarity name (e.g. common, legendary)",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "type",
				Description: "Look up an item type",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "name",
						Description: "Type name (e.g. weapon, material)",
						Required:    true,
					},
				},
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		options := getOptions(i)
		if len(options) == 0 || len(options[0].Options) == 0 {
			respondError(s, i, MsgGenericError)
			return
		}

		name := options[0].Options[0].StringValue()
		title := cases.Title(language.English).String(name)

		switch options[0].Name {
		case "rarity":
			rarity, err := client.GetRarityByName(name)
			if err != nil {
				slog.Error("Failed to look up rarity", "error", err)
				respondFriendlyError(s, i, err.Error())
				return
			}
			description := rarity.Description
			if description == "" {
				description = fmt.Sprintf("Rarity band #%d.", rarity.ID)
			}
			sendEmbed(s, i, createEmbed("✨ "+title, description, 0x9b59b6, ""))

		case "type":
			typ, err := client.GetTypeByName(name)
			if err != nil {
				slog.Error("Failed to look up type", "error", err)
				respondFriendlyError(s, i, err.Error())
				return
			}
			equip := "No"
			if typ.IsEquippable {
				equip = "Yes"
			}
			description := fmt.Sprintf("Max stack: **%d**\nEquippable: **%s**", typ.MaxStackAmount, equip)
			sendEmbed(s, i, createEmbed("🗂️ "+title, description, 0x3498db, ""))
		}
	}

	return cmd, handler
}
