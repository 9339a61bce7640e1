package main

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/mingleton/dawson-rp/internal/discord"
	"github.com/mingleton/dawson-rp/internal/scheduler"
	"github.com/mingleton/dawson-rp/internal/worker"
)

// Default values for optional configuration
const (
	DefaultAPIURL               = "http://localhost:8080"
	DefaultAirdropTTLSeconds    = 30
	DefaultAirdropCheckInterval = time.Minute

	spawnWorkers   = 1
	spawnQueueSize = 4
)

// airdropConfig holds the spawn loop settings. The loop is skipped when
// GuildID or ChannelID is empty.
type airdropConfig struct {
	GuildID       string
	ChannelID     string
	TTLSeconds    int
	CheckInterval time.Duration
}

func main() {
	// Load .env file
	_ = godotenv.Load()

	// Setup logging
	setupLogger()

	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	// Create bot
	bot, err := discord.New(cfg)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	// Start airdrop spawn loop
	airdropCfg := loadAirdropConfig()
	var spawner *discord.AirdropSpawner
	if airdropCfg.GuildID != "" && airdropCfg.ChannelID != "" {
		spawner = discord.NewAirdropSpawner(bot.Session, bot.Client, airdropCfg.GuildID, airdropCfg.ChannelID, airdropCfg.TTLSeconds)

		pool := worker.NewPool(spawnWorkers, spawnQueueSize)
		pool.Start()
		defer pool.Stop()

		sched := scheduler.New(pool)
		sched.Schedule(airdropCfg.CheckInterval, spawner)
		defer sched.Stop()

		slog.Info("Airdrop spawn loop started",
			"channel_id", airdropCfg.ChannelID,
			"check_interval", airdropCfg.CheckInterval,
			"ttl_seconds", airdropCfg.TTLSeconds)
	} else {
		slog.Info("Airdrop spawn loop disabled, set DISCORD_GUILD_ID and DISCORD_AIRDROP_CHANNEL_ID to enable")
	}

	// Register all commands
	discord.RegisterAll(bot.Registry, spawner)

	// Register with Discord API
	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if forceUpdate {
		slog.Info("Force command update enabled via environment variable")
	}

	if err := bot.RegisterCommands(bot.Registry, forceUpdate); err != nil {
		slog.Error("Failed to register commands", "error", err)
		// Don't exit - bot can still run if commands are already registered
	}

	// Run bot
	if err := bot.Run(); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}

// setupLogger configures structured logging to stdout.
func setupLogger() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)
}

// loadConfig loads and validates Discord bot configuration from environment variables.
// Returns error if required variables are missing.
func loadConfig() (discord.Config, error) {
	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		return discord.Config{}, errors.New("DISCORD_TOKEN is required")
	}

	appID := os.Getenv("DISCORD_APP_ID")
	if appID == "" {
		return discord.Config{}, errors.New("DISCORD_APP_ID is required")
	}

	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	slog.Info("Configured API URL", "url", apiURL)

	apiKey := os.Getenv("API_KEY")
	if apiKey == "" {
		slog.Warn("API_KEY not set, discord bot requests may fail")
	}

	return discord.Config{
		Token:  token,
		AppID:  appID,
		APIURL: apiURL + "/api/v1",
		APIKey: apiKey,
	}, nil
}

// loadAirdropConfig loads the optional airdrop spawn loop settings.
func loadAirdropConfig() airdropConfig {
	cfg := airdropConfig{
		GuildID:       os.Getenv("DISCORD_GUILD_ID"),
		ChannelID:     os.Getenv("DISCORD_AIRDROP_CHANNEL_ID"),
		TTLSeconds:    DefaultAirdropTTLSeconds,
		CheckInterval: DefaultAirdropCheckInterval,
	}

	if raw := os.Getenv("AIRDROP_TTL_SECONDS"); raw != "" {
		if ttl, err := strconv.Atoi(raw); err == nil && ttl > 0 {
			cfg.TTLSeconds = ttl
		} else {
			slog.Warn("Invalid AIRDROP_TTL_SECONDS, using default", "value", raw)
		}
	}

	if raw := os.Getenv("AIRDROP_CHECK_INTERVAL_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			cfg.CheckInterval = time.Duration(secs) * time.Second
		} else {
			slog.Warn("Invalid AIRDROP_CHECK_INTERVAL_SECONDS, using default", "value", raw)
		}
	}

	return cfg
}
