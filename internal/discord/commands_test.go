package discord

import (
	"sync/atomic"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestCommandsEqual(t *testing.T) {
	base := func() []*discordgo.ApplicationCommand {
		return []*discordgo.ApplicationCommand{
			{
				Name:        "balance",
				Description: "Check your balance",
			},
			{
				Name:        "send",
				Description: "Send dollars to another player",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "player",
						Description: "Player to send money to",
						Required:    true,
					},
				},
			},
		}
	}

	t.Run("Identical Sets Match", func(t *testing.T) {
		assert.True(t, commandsEqual(base(), base()))
	})

	t.Run("Different Length", func(t *testing.T) {
		assert.False(t, commandsEqual(base(), base()[:1]))
	})

	t.Run("Changed Description", func(t *testing.T) {
		changed := base()
		changed[0].Description = "Something else"
		assert.False(t, commandsEqual(base(), changed))
	})

	t.Run("Changed Option Required Flag", func(t *testing.T) {
		changed := base()
		changed[1].Options[0].Required = false
		assert.False(t, commandsEqual(base(), changed))
	})
}

func TestRegistry_Register(t *testing.T) {
	registry := NewCommandRegistry()
	RegisterAll(registry, nil)

	for _, name := range []string{"account", "balance", "send", "gamble", "leaderboard", "inventory", "help"} {
		assert.Contains(t, registry.Commands, name, "missing command %s", name)
		assert.Contains(t, registry.Handlers, name, "missing handler %s", name)
	}

	for _, prefix := range []string{ComponentInventorySelect, ComponentInventoryEquip, ComponentInventoryUnequip, ComponentInventoryDrop} {
		assert.Contains(t, registry.Components, prefix, "missing component %s", prefix)
	}

	// No spawner registered, so no airdrop claim handler.
	assert.NotContains(t, registry.Components, ComponentAirdropClaim)
}

func TestRecordCommand(t *testing.T) {
	before := atomic.LoadInt64(&commandCounter)
	RecordCommand()
	after := atomic.LoadInt64(&commandCounter)
	assert.Equal(t, before+1, after)
	assert.False(t, lastCommandTime.IsZero())
}
