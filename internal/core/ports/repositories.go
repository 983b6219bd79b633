package ports

import (
	"context"

	"reward-gateway/internal/core/domain"
)

// RewardSearchParams holds filter + pagination for searching reward records.
type RewardSearchParams struct {
	Status     *domain.RewardStatus
	Recipient  string
	RewardType *domain.RewardType
	Limit      int
	Offset     int
	Ascending  bool // sort by ts_created ascending when true, descending otherwise
}

// RewardStats holds aggregated counters for the ops dashboard.
type RewardStats struct {
	Total     int64
	Todo      int64
	Success   int64
	Errored   int64 // error + failed
	TotalPaid int64 // sum of successful amounts
}

// RewardRepository is the Reward Ledger: persistence for reward records keyed
// by reward id. Get returns (nil, nil) when no record exists. Save is an
// upsert; the store's write for a given reward id must be linearizable — that
// is what makes the orchestrator's durable status checkpoint race-free within
// one process.
type RewardRepository interface {
	Get(ctx context.Context, rewardID string) (*domain.RewardRecord, error)
	Save(ctx context.Context, rec *domain.RewardRecord) error
	Search(ctx context.Context, params RewardSearchParams) ([]domain.RewardRecord, error)
	// CountByRecipientAndType counts records for a (recipient, type) pair,
	// excluding excludeID. Used for per-recipient payout caps.
	CountByRecipientAndType(ctx context.Context, recipient string, rewardType domain.RewardType, excludeID string) (int64, error)
	Stats(ctx context.Context) (*RewardStats, error)
}
