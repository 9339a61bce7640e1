package airdrop

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mingleton/dawson-rp/internal/domain"
)

// MockLedger
type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) Credit(ctx context.Context, accountID int64, amount int64) (int64, error) {
	args := m.Called(ctx, accountID, amount)
	return args.Get(0).(int64), args.Error(1)
}

func testConfig() Config {
	return Config{MinPrize: 50, MaxPrize: 100, DefaultTTL: time.Minute}
}

func TestStart(t *testing.T) {
	ledger := new(MockLedger)
	svc := NewService(ledger, testConfig())
	defer func() { _ = svc.Shutdown(context.Background()) }()

	status, err := svc.Start(context.Background(), 75, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, domain.AirdropActive, status.State)
	assert.Equal(t, int64(75), status.PrizeDollars)
	require.NotNil(t, status.Deadline)
	assert.WithinDuration(t, time.Now().Add(time.Minute), *status.Deadline, 2*time.Second)
}

func TestStart_RandomPrizeWithinBounds(t *testing.T) {
	ledger := new(MockLedger)

	for i := 0; i < 50; i++ {
		svc := NewService(ledger, testConfig())
		status, err := svc.Start(context.Background(), 0, time.Minute)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, status.PrizeDollars, int64(50))
		assert.LessOrEqual(t, status.PrizeDollars, int64(100))
		_ = svc.Shutdown(context.Background())
	}
}

func TestStart_RejectsWhileActive(t *testing.T) {
	ledger := new(MockLedger)
	svc := NewService(ledger, testConfig())
	defer func() { _ = svc.Shutdown(context.Background()) }()

	_, err := svc.Start(context.Background(), 75, time.Minute)
	require.NoError(t, err)

	_, err = svc.Start(context.Background(), 60, time.Minute)
	assert.ErrorIs(t, err, domain.ErrPrizeActive)
}

func TestStart_AllowedAfterClaim(t *testing.T) {
	ledger := new(MockLedger)
	ledger.On("Credit", mock.Anything, int64(1), int64(75)).Return(int64(175), nil)
	svc := NewService(ledger, testConfig())
	defer func() { _ = svc.Shutdown(context.Background()) }()

	_, err := svc.Start(context.Background(), 75, time.Minute)
	require.NoError(t, err)
	_, err = svc.Claim(context.Background(), 1)
	require.NoError(t, err)

	_, err = svc.Start(context.Background(), 60, time.Minute)
	assert.NoError(t, err)
}

func TestClaim(t *testing.T) {
	ledger := new(MockLedger)
	ledger.On("Credit", mock.Anything, int64(42), int64(75)).Return(int64(175), nil)
	svc := NewService(ledger, testConfig())
	defer func() { _ = svc.Shutdown(context.Background()) }()

	_, err := svc.Start(context.Background(), 75, time.Minute)
	require.NoError(t, err)

	claim, err := svc.Claim(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claim.AccountID)
	assert.Equal(t, int64(75), claim.PrizeDollars)
	assert.Equal(t, int64(175), claim.NewBalance)

	status := svc.Status(context.Background())
	assert.Equal(t, domain.AirdropClaimed, status.State)
	require.NotNil(t, status.WinnerID)
	assert.Equal(t, int64(42), *status.WinnerID)

	// Second claim finds nothing.
	_, err = svc.Claim(context.Background(), 43)
	assert.ErrorIs(t, err, domain.ErrNoActivePrize)
	ledger.AssertNumberOfCalls(t, "Credit", 1)
}

func TestClaim_NoActivePrize(t *testing.T) {
	ledger := new(MockLedger)
	svc := NewService(ledger, testConfig())

	_, err := svc.Claim(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNoActivePrize)
	ledger.AssertNotCalled(t, "Credit")
}

func TestClaim_CreditFailureKeepsPrizeActive(t *testing.T) {
	ledger := new(MockLedger)
	ledger.On("Credit", mock.Anything, int64(99), int64(75)).
		Return(int64(0), domain.ErrAccountNotFound)
	ledger.On("Credit", mock.Anything, int64(42), int64(75)).Return(int64(175), nil)
	svc := NewService(ledger, testConfig())
	defer func() { _ = svc.Shutdown(context.Background()) }()

	_, err := svc.Start(context.Background(), 75, time.Minute)
	require.NoError(t, err)

	_, err = svc.Claim(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	// The failed claim did not consume the prize.
	status := svc.Status(context.Background())
	assert.Equal(t, domain.AirdropActive, status.State)

	claim, err := svc.Claim(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(75), claim.PrizeDollars)
}

func TestExpiry(t *testing.T) {
	ledger := new(MockLedger)
	svc := NewService(ledger, testConfig())
	defer func() { _ = svc.Shutdown(context.Background()) }()

	_, err := svc.Start(context.Background(), 75, 20*time.Millisecond)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return svc.Status(context.Background()).State == domain.AirdropExpired
	}, time.Second, 5*time.Millisecond)

	_, err = svc.Claim(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNoActivePrize)
	ledger.AssertNotCalled(t, "Credit")
}

func TestExpiry_StaleTimerIgnoresNewPrize(t *testing.T) {
	ledger := new(MockLedger)
	ledger.On("Credit", mock.Anything, int64(1), int64(75)).Return(int64(175), nil)
	svc := NewService(ledger, testConfig())
	defer func() { _ = svc.Shutdown(context.Background()) }()

	// Claim the first prize, then immediately start a second with a long TTL.
	// The first prize's timer must not expire the second prize.
	_, err := svc.Start(context.Background(), 75, 30*time.Millisecond)
	require.NoError(t, err)
	_, err = svc.Claim(context.Background(), 1)
	require.NoError(t, err)

	_, err = svc.Start(context.Background(), 60, time.Hour)
	require.NoError(t, err)

	time.Sleep(60 * time.Millisecond)
	status := svc.Status(context.Background())
	assert.Equal(t, domain.AirdropActive, status.State)
	assert.Equal(t, int64(60), status.PrizeDollars)
}
