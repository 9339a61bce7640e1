package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// AccountCommand returns the account command definition and handler.
// Subcommands: create, view.
func AccountCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "account",
		Description: "Manage your account",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "create",
				Description: "Create your account and roll your abilities",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "view",
				Description: "View an account profile",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "player",
						Description: "Player to view (defaults to you)",
						Required:    false,
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
		if len(options) == 0 {
			respondError(s, i, MsgGenericError)
			return
		}

		switch options[0].Name {
		case "create":
			handleAccountCreate(s, i, client)
		case "view":
			handleAccountView(s, i, client, options[0].Options)
		}
	}

	return cmd, handler
}

func handleAccountCreate(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	accountID, err := interactionAccountID(i)
	if err != nil {
		slog.Error("Failed to resolve account ID", "error", err)
		respondError(s, i, MsgGenericError)
		return
	}

	acct, err := client.CreateAccount(accountID)
	if err != nil {
		slog.Error("Failed to create account", "error", err)
		respondFriendlyError(s, i, err.Error())
		return
	}

	description := fmt.Sprintf(
		"Welcome! You start with **$%d** and **%d HP**.\n\n%s",
		acct.Dollars, acct.HP, formatAbilities(acct))
	embed := createEmbed("🎉 Account Created", description, 0x2ecc71, "")
	sendEmbed(s, i, embed)
}

func handleAccountView(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient, opts []*discordgo.ApplicationCommandInteractionDataOption) {
	target := getInteractionUser(i)
	for _, opt := range opts {
		if opt.Name == "player" {
			target = opt.UserValue(s)
		}
	}

	accountID, err := ParseSnowflake(target.ID)
	if err != nil {
		slog.Error("Failed to parse target ID", "error", err)
		respondError(s, i, MsgGenericError)
		return
	}

	profile, err := client.GetAccount(accountID)
	if err != nil {
		slog.Error("Failed to get account", "error", err)
		respondFriendlyError(s, i, err.Error())
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "💰 **$%d**  ❤️ **%d HP**\n\n", profile.Account.Dollars, profile.Account.HP)
	b.WriteString(formatAbilities(profile.Account))
	b.WriteString("\n\n**Inventory**\n")
	if len(profile.Inventory) == 0 {
		b.WriteString("Empty.")
	} else {
		for _, stack := range profile.Inventory {
			line := fmt.Sprintf("**%s** x%d", stack.Name, stack.Amount)
			if stack.IsEquipped {
				line += " *(equipped)*"
			}
			b.WriteString(line + "\n")
		}
	}

	embed := createEmbed(fmt.Sprintf("%s's Profile", target.Username), b.String(), 0x3498db, "")
	sendEmbed(s, i, embed)
}
