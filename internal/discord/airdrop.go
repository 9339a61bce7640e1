package discord

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
)

// ComponentAirdropClaim is the custom ID of the claim button.
const ComponentAirdropClaim = "airdrop_claim"

// Spawn chance weights. Chance per tick is base plus per-online-member,
// so busier servers see more drops.
const (
	airdropChancePerOnline = 0.00049
	airdropChanceBase      = 0.0013
)

// AirdropSpawner rolls for a drop on every scheduler tick and posts the
// claim message when one lands. It implements worker.Job.
type AirdropSpawner struct {
	session    *discordgo.Session
	client     *APIClient
	guildID    string
	channelID  string
	ttlSeconds int

	mu        sync.Mutex
	messageID string
	expiry    *time.Timer

	// Injected for tests.
	roll        func() float64
	countOnline func() int
}

// NewAirdropSpawner creates the spawn job for one guild channel
func NewAirdropSpawner(session *discordgo.Session, client *APIClient, guildID, channelID string, ttlSeconds int) *AirdropSpawner {
	a := &AirdropSpawner{
		session:    session,
		client:     client,
		guildID:    guildID,
		channelID:  channelID,
		ttlSeconds: ttlSeconds,
		roll:       rand.Float64, //nolint:gosec // G404: spawn timing, not credentials
	}
	a.countOnline = a.onlineMembers
	return a
}

// Process rolls the spawn chance and starts an airdrop on success
func (a *AirdropSpawner) Process(ctx context.Context) error {
	online := a.countOnline()
	chance := airdropChancePerOnline*float64(online) + airdropChanceBase

	if a.roll() >= chance {
		return nil
	}

	status, err := a.client.StartAirdrop(0, a.ttlSeconds)
	if err != nil {
		// An already-active prize is routine when a previous drop is still
		// unclaimed; anything else is worth surfacing.
		return fmt.Errorf("failed to start airdrop: %w", err)
	}

	embed := createEmbed(
		"📦 An Airdrop Appears!",
		fmt.Sprintf("**$%d** is up for grabs. First to claim it wins!", status.PrizeDollars),
		0xe67e22, "")

	msg, err := a.session.ChannelMessageSendComplex(a.channelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "Claim",
						Style:    discordgo.SuccessButton,
						CustomID: ComponentAirdropClaim,
					},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send airdrop message: %w", err)
	}

	slog.Info("Airdrop spawned", "prize", status.PrizeDollars, "online", online, "chance", chance)

	a.mu.Lock()
	a.messageID = msg.ID
	// Remove the message once the prize expires unclaimed.
	a.expiry = time.AfterFunc(time.Duration(a.ttlSeconds)*time.Second, func() {
		a.deleteMessage(msg.ID)
	})
	a.mu.Unlock()

	return nil
}

// onlineMembers counts non-offline presences in the guild state
func (a *AirdropSpawner) onlineMembers() int {
	guild, err := a.session.State.Guild(a.guildID)
	if err != nil {
		slog.Warn("Guild not in state, assuming empty", "guild_id", a.guildID, "error", err)
		return 0
	}

	online := 0
	for _, presence := range guild.Presences {
		if presence.Status != discordgo.StatusOffline {
			online++
		}
	}
	return online
}

func (a *AirdropSpawner) deleteMessage(messageID string) {
	a.mu.Lock()
	if a.messageID != messageID {
		a.mu.Unlock()
		return
	}
	a.messageID = ""
	a.mu.Unlock()

	if err := a.session.ChannelMessageDelete(a.channelID, messageID); err != nil {
		slog.Warn("Failed to delete expired airdrop message", "error", err)
	}
}

// HandleClaim reacts to the claim button. The winner's account is the
// clicking user; the core arbitrates so exactly one claim succeeds.
func (a *AirdropSpawner) HandleClaim(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient, customID string) {
	accountID, err := interactionAccountID(i)
	if err != nil {
		slog.Error("Failed to resolve account ID", "error", err)
		return
	}

	claim, err := client.ClaimAirdrop(accountID)
	if err != nil {
		// Losers of the race get a private nudge; the message stays for
		// the actual winner's edit.
		if respondErr := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: formatFriendlyError(err.Error()),
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		}); respondErr != nil {
			slog.Error("Failed to respond to claim", "error", respondErr)
		}
		return
	}

	a.mu.Lock()
	if a.expiry != nil {
		a.expiry.Stop()
	}
	a.messageID = ""
	a.mu.Unlock()

	user := getInteractionUser(i)
	embed := createEmbed(
		"📦 Airdrop Claimed!",
		fmt.Sprintf("**%s** grabbed **$%d**!", user.Username, claim.PrizeDollars),
		0x2ecc71, "")

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: []discordgo.MessageComponent{},
		},
	}); err != nil {
		slog.Error("Failed to update airdrop message", "error", err)
	}
}
