package airdrop

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mingleton/dawson-rp/internal/domain"
)

// countingLedger tallies credits without a backing store.
type countingLedger struct {
	mu      sync.Mutex
	credits int
	total   int64
}

func (l *countingLedger) Credit(_ context.Context, _ int64, amount int64) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.credits++
	l.total += amount
	return l.total, nil
}

func TestClaim_ExactlyOnceUnderContention(t *testing.T) {
	ledger := &countingLedger{}
	svc := NewService(ledger, testConfig())
	defer func() { _ = svc.Shutdown(context.Background()) }()

	_, err := svc.Start(context.Background(), 75, time.Minute)
	require.NoError(t, err)

	const claimants = 100
	var wins, losses atomic.Int64
	var start, done sync.WaitGroup
	start.Add(1)
	done.Add(claimants)

	for i := 0; i < claimants; i++ {
		go func(accountID int64) {
			defer done.Done()
			start.Wait()
			_, err := svc.Claim(context.Background(), accountID)
			switch {
			case err == nil:
				wins.Add(1)
			case errors.Is(err, domain.ErrNoActivePrize):
				losses.Add(1)
			default:
				t.Errorf("unexpected claim error: %v", err)
			}
		}(int64(i + 1))
	}

	start.Done()
	done.Wait()

	assert.Equal(t, int64(1), wins.Load())
	assert.Equal(t, int64(claimants-1), losses.Load())
	assert.Equal(t, 1, ledger.credits)
	assert.Equal(t, int64(75), ledger.total)
}

func TestClaimAndExpireRace(t *testing.T) {
	ledger := &countingLedger{}

	// Run many short-lived prizes with claims racing the expiry timer. The
	// invariant: a prize is credited at most once, whatever wins the race.
	for round := 0; round < 20; round++ {
		svc := NewService(ledger, testConfig())
		before := ledger.credits

		_, err := svc.Start(context.Background(), 10, time.Millisecond)
		require.NoError(t, err)

		var done sync.WaitGroup
		done.Add(4)
		for i := 0; i < 4; i++ {
			go func(accountID int64) {
				defer done.Done()
				time.Sleep(time.Duration(accountID) * 500 * time.Microsecond)
				_, _ = svc.Claim(context.Background(), accountID)
			}(int64(i + 1))
		}
		done.Wait()

		credited := ledger.credits - before
		assert.LessOrEqual(t, credited, 1, "round %d credited %d times", round, credited)
		_ = svc.Shutdown(context.Background())
	}
}
