package domain

import "time"

// AirdropState is the lifecycle phase of the shared prize.
type AirdropState string

const (
	AirdropIdle    AirdropState = "IDLE"
	AirdropActive  AirdropState = "ACTIVE"
	AirdropClaimed AirdropState = "CLAIMED"
	AirdropExpired AirdropState = "EXPIRED"
)

// AirdropStatus is a point-in-time snapshot of the prize arbiter.
// PrizeDollars is zero whenever State is not Active.
type AirdropStatus struct {
	State        AirdropState `json:"state"`
	PrizeDollars int64        `json:"prize_dollars"`
	Deadline     *time.Time   `json:"deadline,omitempty"`
	WinnerID     *int64       `json:"winner_id,omitempty"`
}

// AirdropClaim reports a successful claim.
type AirdropClaim struct {
	AccountID    int64 `json:"account_id"`
	PrizeDollars int64 `json:"prize_dollars"`
	NewBalance   int64 `json:"new_balance"`
}
