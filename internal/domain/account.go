package domain

// Account represents one user's economy state.
// The ID is the platform-assigned snowflake for that user; it is supplied by
// the caller at creation time, never generated here.
type Account struct {
	ID      int64 `json:"account_id"`
	Dollars int64 `json:"dollars"`
	HP      int   `json:"hp"`

	Abilities AbilityScores `json:"abilities"`
}

// AbilityScores holds the six rolled stats assigned at account creation.
type AbilityScores struct {
	Strength     int `json:"str"`
	Dexterity    int `json:"dex"`
	Constitution int `json:"con"`
	Intelligence int `json:"int"`
	Wisdom       int `json:"wis"`
	Charisma     int `json:"cha"`
}

// LeaderboardEntry is one row of the balance leaderboard.
type LeaderboardEntry struct {
	AccountID int64 `json:"account_id"`
	Dollars   int64 `json:"dollars"`
	Rank      int   `json:"rank"`
}

// GambleResult reports the outcome of a single gamble.
type GambleResult struct {
	AccountID  int64 `json:"account_id"`
	Stake      int64 `json:"stake"`
	Outcome    int64 `json:"outcome"`
	NetChange  int64 `json:"net_change"`
	NewBalance int64 `json:"new_balance"`
}

// Won reports whether the draw beat the stake.
func (r GambleResult) Won() bool { return r.Outcome > r.Stake }

// Push reports a draw exactly equal to the stake (no money moves).
func (r GambleResult) Push() bool { return r.Outcome == r.Stake }
