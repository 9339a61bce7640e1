package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/mingleton/dawson-rp/internal/database"
	"github.com/mingleton/dawson-rp/internal/domain"
)

func startTestDatabase(t *testing.T, ctx context.Context) *pgxpool.Pool {
	t.Helper()

	var pgContainer *postgres.PostgresContainer
	var err error

	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = postgres.Run(ctx,
			"postgres:15-alpine",
			postgres.WithDatabase("testdb"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(5*time.Second)),
		)
	}()

	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	if pgContainer == nil {
		t.Skip("Skipping integration test: database not available")
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	pool, err := database.NewPool(connStr, database.DefaultMaxConnections, database.DefaultMaxIdleTime, database.DefaultMaxLifetime)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := applyMigrations(ctx, t, pool, "../../../migrations"); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}
	return pool
}

// applyMigrations runs all migration files in order
func applyMigrations(ctx context.Context, t *testing.T, pool *pgxpool.Pool, migrationsDir string) error {
	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		return fmt.Errorf("failed to read migrations dir: %w", err)
	}

	var migrationFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			migrationFiles = append(migrationFiles, filepath.Join(migrationsDir, entry.Name()))
		}
	}
	sort.Strings(migrationFiles)

	for _, file := range migrationFiles {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}

		contentStr := string(content)

		// Strip goose markers and the Down section
		contentStr = strings.Replace(contentStr, "-- +goose Up\n", "", 1)
		contentStr = strings.Replace(contentStr, "-- +goose Up", "", 1)
		if downIdx := strings.Index(contentStr, "-- +goose Down"); downIdx != -1 {
			contentStr = contentStr[:downIdx]
		}
		contentStr = strings.TrimSpace(contentStr)

		t.Logf("Executing: %s", filepath.Base(file))
		if _, err := pool.Exec(ctx, contentStr); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", file, err)
		}
	}
	return nil
}

func newTestAccount(id int64, dollars int64) *domain.Account {
	return &domain.Account{
		ID:      id,
		Dollars: dollars,
		HP:      100,
		Abilities: domain.AbilityScores{
			Strength: 10, Dexterity: 10, Constitution: 10,
			Intelligence: 10, Wisdom: 10, Charisma: 10,
		},
	}
}

func TestAccountRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	pool := startTestDatabase(t, ctx)
	repo := NewAccountRepository(pool)

	t.Run("CreateAndGet", func(t *testing.T) {
		if err := repo.CreateAccount(ctx, newTestAccount(1001, 100)); err != nil {
			t.Fatalf("CreateAccount failed: %v", err)
		}

		got, err := repo.GetAccount(ctx, 1001)
		if err != nil {
			t.Fatalf("GetAccount failed: %v", err)
		}
		if got.Dollars != 100 {
			t.Errorf("expected 100 dollars, got %d", got.Dollars)
		}
		if got.HP != 100 {
			t.Errorf("expected 100 hp, got %d", got.HP)
		}
	})

	t.Run("DuplicateCreate", func(t *testing.T) {
		if err := repo.CreateAccount(ctx, newTestAccount(1002, 100)); err != nil {
			t.Fatalf("CreateAccount failed: %v", err)
		}
		err := repo.CreateAccount(ctx, newTestAccount(1002, 100))
		if !errors.Is(err, domain.ErrAccountExists) {
			t.Errorf("expected ErrAccountExists, got %v", err)
		}
	})

	t.Run("CreditAndDebit", func(t *testing.T) {
		if err := repo.CreateAccount(ctx, newTestAccount(1003, 50)); err != nil {
			t.Fatalf("CreateAccount failed: %v", err)
		}

		balance, err := repo.Credit(ctx, 1003, 25)
		if err != nil {
			t.Fatalf("Credit failed: %v", err)
		}
		if balance != 75 {
			t.Errorf("expected balance 75, got %d", balance)
		}

		balance, err = repo.Debit(ctx, 1003, 75)
		if err != nil {
			t.Fatalf("Debit failed: %v", err)
		}
		if balance != 0 {
			t.Errorf("expected balance 0, got %d", balance)
		}
	})

	t.Run("DebitInsufficient", func(t *testing.T) {
		if err := repo.CreateAccount(ctx, newTestAccount(1004, 10)); err != nil {
			t.Fatalf("CreateAccount failed: %v", err)
		}

		_, err := repo.Debit(ctx, 1004, 11)
		if !errors.Is(err, domain.ErrInsufficientFunds) {
			t.Errorf("expected ErrInsufficientFunds, got %v", err)
		}

		// Balance untouched after the rejected debit
		balance, err := repo.GetBalance(ctx, 1004)
		if err != nil {
			t.Fatalf("GetBalance failed: %v", err)
		}
		if balance != 10 {
			t.Errorf("expected balance 10, got %d", balance)
		}
	})

	t.Run("DebitMissingAccount", func(t *testing.T) {
		_, err := repo.Debit(ctx, 999999, 1)
		if !errors.Is(err, domain.ErrAccountNotFound) {
			t.Errorf("expected ErrAccountNotFound, got %v", err)
		}
	})

	t.Run("Transfer", func(t *testing.T) {
		if err := repo.CreateAccount(ctx, newTestAccount(1005, 100)); err != nil {
			t.Fatalf("CreateAccount failed: %v", err)
		}
		if err := repo.CreateAccount(ctx, newTestAccount(1006, 100)); err != nil {
			t.Fatalf("CreateAccount failed: %v", err)
		}

		fromBalance, err := repo.Transfer(ctx, 1005, 1006, 40)
		if err != nil {
			t.Fatalf("Transfer failed: %v", err)
		}
		if fromBalance != 60 {
			t.Errorf("expected sender balance 60, got %d", fromBalance)
		}

		toBalance, err := repo.GetBalance(ctx, 1006)
		if err != nil {
			t.Fatalf("GetBalance failed: %v", err)
		}
		if toBalance != 140 {
			t.Errorf("expected recipient balance 140, got %d", toBalance)
		}
	})

	t.Run("TransferToMissingRollsBack", func(t *testing.T) {
		if err := repo.CreateAccount(ctx, newTestAccount(1007, 100)); err != nil {
			t.Fatalf("CreateAccount failed: %v", err)
		}

		_, err := repo.Transfer(ctx, 1007, 999999, 40)
		if !errors.Is(err, domain.ErrAccountNotFound) {
			t.Fatalf("expected ErrAccountNotFound, got %v", err)
		}

		balance, err := repo.GetBalance(ctx, 1007)
		if err != nil {
			t.Fatalf("GetBalance failed: %v", err)
		}
		if balance != 100 {
			t.Errorf("expected sender balance restored to 100, got %d", balance)
		}
	})

	t.Run("AdjustHealthClamps", func(t *testing.T) {
		if err := repo.CreateAccount(ctx, newTestAccount(1008, 0)); err != nil {
			t.Fatalf("CreateAccount failed: %v", err)
		}

		hp, err := repo.AdjustHealth(ctx, 1008, -150)
		if err != nil {
			t.Fatalf("AdjustHealth failed: %v", err)
		}
		if hp != 0 {
			t.Errorf("expected hp clamped to 0, got %d", hp)
		}

		hp, err = repo.AdjustHealth(ctx, 1008, 250)
		if err != nil {
			t.Fatalf("AdjustHealth failed: %v", err)
		}
		if hp != 100 {
			t.Errorf("expected hp clamped to 100, got %d", hp)
		}
	})

	t.Run("Leaderboard", func(t *testing.T) {
		entries, err := repo.Leaderboard(ctx, 3)
		if err != nil {
			t.Fatalf("Leaderboard failed: %v", err)
		}
		if len(entries) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(entries))
		}
		for i := 1; i < len(entries); i++ {
			if entries[i].Dollars > entries[i-1].Dollars {
				t.Errorf("leaderboard not sorted: %d before %d", entries[i-1].Dollars, entries[i].Dollars)
			}
			if entries[i].Rank != entries[i-1].Rank+1 {
				t.Errorf("ranks not sequential at index %d", i)
			}
		}
	})
}

func TestItemRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	pool := startTestDatabase(t, ctx)
	accounts := NewAccountRepository(pool)
	repo := NewItemRepository(pool)

	if err := accounts.CreateAccount(ctx, newTestAccount(2001, 100)); err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}
	if err := accounts.CreateAccount(ctx, newTestAccount(2002, 100)); err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}

	t.Run("CreateBatchAndList", func(t *testing.T) {
		units := []domain.Item{
			{OwnerID: 2001, Name: "iron sword", TypeID: 1, RarityID: 2},
			{OwnerID: 2001, Name: "bread", TypeID: 4, RarityID: 0},
			{OwnerID: 2001, Name: "bread", TypeID: 4, RarityID: 0},
		}
		ids, err := repo.CreateItems(ctx, units)
		if err != nil {
			t.Fatalf("CreateItems failed: %v", err)
		}
		if len(ids) != 3 {
			t.Fatalf("expected 3 ids, got %d", len(ids))
		}

		items, err := repo.GetItemsByOwner(ctx, 2001)
		if err != nil {
			t.Fatalf("GetItemsByOwner failed: %v", err)
		}
		if len(items) != 3 {
			t.Errorf("expected 3 items, got %d", len(items))
		}
	})

	t.Run("TransferClearsEquipped", func(t *testing.T) {
		ids, err := repo.CreateItems(ctx, []domain.Item{
			{OwnerID: 2001, Name: "steel helm", TypeID: 0, RarityID: 3},
		})
		if err != nil {
			t.Fatalf("CreateItems failed: %v", err)
		}
		id := ids[0]

		if err := repo.SetEquipped(ctx, id, true); err != nil {
			t.Fatalf("SetEquipped failed: %v", err)
		}
		if err := repo.UpdateOwner(ctx, id, 2002); err != nil {
			t.Fatalf("UpdateOwner failed: %v", err)
		}

		got, err := repo.GetItem(ctx, id)
		if err != nil {
			t.Fatalf("GetItem failed: %v", err)
		}
		if got.OwnerID != 2002 {
			t.Errorf("expected owner 2002, got %d", got.OwnerID)
		}
		if got.IsEquipped {
			t.Error("expected equipped flag cleared on transfer")
		}
	})

	t.Run("DroppedExcludedFromOwnerList", func(t *testing.T) {
		ids, err := repo.CreateItems(ctx, []domain.Item{
			{OwnerID: 2002, Name: "old boot", TypeID: 5, RarityID: 0},
		})
		if err != nil {
			t.Fatalf("CreateItems failed: %v", err)
		}
		if err := repo.SetDropped(ctx, ids[0], true); err != nil {
			t.Fatalf("SetDropped failed: %v", err)
		}

		items, err := repo.GetItemsByOwner(ctx, 2002)
		if err != nil {
			t.Fatalf("GetItemsByOwner failed: %v", err)
		}
		for _, it := range items {
			if it.ID == ids[0] {
				t.Error("dropped item should not appear in owner inventory")
			}
		}

		// The unit still exists and can be fetched directly
		got, err := repo.GetItem(ctx, ids[0])
		if err != nil {
			t.Fatalf("GetItem failed: %v", err)
		}
		if !got.IsDropped {
			t.Error("expected dropped flag set")
		}
	})

	t.Run("DeleteItem", func(t *testing.T) {
		ids, err := repo.CreateItems(ctx, []domain.Item{
			{OwnerID: 2002, Name: "scrap", TypeID: 5, RarityID: 0},
		})
		if err != nil {
			t.Fatalf("CreateItems failed: %v", err)
		}
		if err := repo.DeleteItem(ctx, ids[0]); err != nil {
			t.Fatalf("DeleteItem failed: %v", err)
		}
		_, err = repo.GetItem(ctx, ids[0])
		if !errors.Is(err, domain.ErrItemNotFound) {
			t.Errorf("expected ErrItemNotFound, got %v", err)
		}
	})
}
