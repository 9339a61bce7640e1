package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// BalanceCommand returns the balance command definition and handler
func BalanceCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "balance",
		Description: "Check your balance",
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

		balance, err := client.GetBalance(accountID)
		if err != nil {
			slog.Error("Failed to get balance", "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		embed := createEmbed("💰 Balance", fmt.Sprintf("You have **$%d**.", balance), 0xf1c40f, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// SendCommand returns the send command definition and handler
func SendCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "send",
		Description: "Send dollars to another player",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "player",
				Description: "Player to send money to",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "amount",
				Description: "Amount in dollars",
				Required:    true,
				MinValue:    &[]float64{1}[0],
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		fromID, err := interactionAccountID(i)
		if err != nil {
			slog.Error("Failed to resolve account ID", "error", err)
			respondError(s, i, MsgGenericError)
			return
		}

		options := getOptions(i)
		target := options[0].UserValue(s)
		amount := options[1].IntValue()

		toID, err := ParseSnowflake(target.ID)
		if err != nil {
			slog.Error("Failed to parse target ID", "error", err)
			respondError(s, i, MsgGenericError)
			return
		}

		balance, err := client.Transfer(fromID, toID, amount)
		if err != nil {
			slog.Error("Failed to transfer", "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		description := fmt.Sprintf("Sent **$%d** to **%s**.\nYour balance: **$%d**", amount, target.Username, balance)
		embed := createEmbed("💸 Transfer Complete", description, 0x2ecc71, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// GambleCommand returns the gamble command definition and handler
func GambleCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "gamble",
		Description: "Wager dollars on a lucky draw",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "amount",
				Description: "Stake in dollars",
				Required:    true,
				MinValue:    &[]float64{1}[0],
			},
		},
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

		stake := getOptions(i)[0].IntValue()

		result, err := client.Gamble(accountID, stake)
		if err != nil {
			slog.Error("Failed to gamble", "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		var title string
		var color int
		var line string
		switch {
		case result.Won():
			title = "🎉 You Won!"
			color = 0x2ecc71
			line = fmt.Sprintf("You staked **$%d** and won **$%d**.", result.Stake, result.NetChange)
		case result.Push():
			title = "😐 Push"
			color = 0x95a5a6
			line = fmt.Sprintf("The draw matched your stake of **$%d**. Nothing changes hands.", result.Stake)
		default:
			title = "💀 You Lost"
			color = 0xe74c3c
			line = fmt.Sprintf("You staked **$%d** and lost it all.", result.Stake)
		}

		description := fmt.Sprintf("%s\nYour balance: **$%d**", line, result.NewBalance)
		embed := createEmbed(title, description, color, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// LeaderboardCommand returns the leaderboard command definition and handler
func LeaderboardCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "leaderboard",
		Description: "See who's the richest",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "limit",
				Description: "How many entries to show",
				Required:    false,
				MinValue:    &[]float64{1}[0],
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		limit := 0
		if options := getOptions(i); len(options) > 0 {
			limit = int(options[0].IntValue())
		}

		entries, err := client.Leaderboard(limit)
		if err != nil {
			slog.Error("Failed to get leaderboard", "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		if len(entries) == 0 {
			respondError(s, i, "Nobody has an account yet.")
			return
		}

		var lines []string
		for _, entry := range entries {
			lines = append(lines, fmt.Sprintf("**#%d** <@%d>: $%d", entry.Rank, entry.AccountID, entry.Dollars))
		}

		embed := createEmbed("🏆 Leaderboard", strings.Join(lines, "\n"), 0xf1c40f, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
