package domain

import "time"

// RewardType tags the payout reason for a reward record.
type RewardType string

const (
	RewardTypeSignup          RewardType = "signup-reward"
	RewardTypeSignupTwitter   RewardType = "signup-twitter-reward"
	RewardTypeReferral        RewardType = "referral-reward"
	RewardTypeReferralTwitter RewardType = "referral-twitter-reward"
	RewardTypeFaucet          RewardType = "faucet-transfer"
)

// RewardStatus represents the lifecycle state of a reward record.
type RewardStatus string

const (
	// RewardStatusPending is the initial state of a freshly constructed record.
	RewardStatusPending RewardStatus = "pending"
	// RewardStatusTodo marks a record durably saved but not yet settled;
	// the reprocessor sweeps these.
	RewardStatusTodo RewardStatus = "todo"
	// RewardStatusStarted is transient (tx included but not final); it is
	// reported by the settlement network and never persisted.
	RewardStatusStarted RewardStatus = "started"
	RewardStatusSuccess RewardStatus = "success"
	RewardStatusError   RewardStatus = "error"
	RewardStatusFailed  RewardStatus = "failed"
)

// RewardRecord is one logical obligation to pay a recipient, keyed by
// RewardID. At most one transfer per record ever reaches success, and TxID
// never changes once assigned — resubmitting with the same TxID is a no-op
// on the settlement network.
type RewardRecord struct {
	RewardID   string       `json:"reward_id"`
	Recipient  string       `json:"recipient"`
	Amount     int64        `json:"amount"` // settlement base units
	RewardType RewardType   `json:"reward_type"`
	Status     RewardStatus `json:"status"`
	TxID       string       `json:"tx_id,omitempty"`   // idempotency key, set once
	TxHash     string       `json:"tx_hash,omitempty"` // network hash, set on success
	TsCreated  time.Time    `json:"ts_created"`
	TsUpdated  time.Time    `json:"ts_updated"`
}

// IsSettled returns true once the reward has been paid out.
func (r *RewardRecord) IsSettled() bool {
	return r.Status == RewardStatusSuccess
}

// IsRetryEligible returns true for records the reprocessor may pick up again.
func (r *RewardRecord) IsRetryEligible() bool {
	return r.Status == RewardStatusTodo ||
		r.Status == RewardStatusError ||
		r.Status == RewardStatusFailed
}

// KnownRewardType reports whether t is one of the recognised payout reasons.
func KnownRewardType(t RewardType) bool {
	switch t {
	case RewardTypeSignup, RewardTypeSignupTwitter,
		RewardTypeReferral, RewardTypeReferralTwitter, RewardTypeFaucet:
		return true
	}
	return false
}
