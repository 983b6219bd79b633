package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"reward-gateway/internal/core/domain"
	"reward-gateway/internal/core/ports"
)

const rewardColumns = `reward_id, recipient, amount, reward_type, status, tx_id, tx_hash, ts_created, ts_updated`

// RewardRepo implements ports.RewardRepository on PostgreSQL.
type RewardRepo struct {
	pool Pool
}

// NewRewardRepo creates a new RewardRepo.
func NewRewardRepo(pool Pool) *RewardRepo {
	return &RewardRepo{pool: pool}
}

// Get fetches a reward record by id. Returns (nil, nil) when absent.
func (r *RewardRepo) Get(ctx context.Context, rewardID string) (*domain.RewardRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM rewards WHERE reward_id = $1`, rewardColumns)
	return r.scanReward(r.pool.QueryRow(ctx, query, rewardID))
}

// Save upserts a reward record. The single-row upsert is what gives the
// orchestrator its linearizable status checkpoint per reward id.
func (r *RewardRepo) Save(ctx context.Context, rec *domain.RewardRecord) error {
	query := `INSERT INTO rewards (reward_id, recipient, amount, reward_type, status, tx_id, tx_hash, ts_created, ts_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (reward_id) DO UPDATE SET
			recipient = EXCLUDED.recipient,
			amount = EXCLUDED.amount,
			reward_type = EXCLUDED.reward_type,
			status = EXCLUDED.status,
			tx_id = EXCLUDED.tx_id,
			tx_hash = EXCLUDED.tx_hash,
			ts_updated = EXCLUDED.ts_updated`

	_, err := r.pool.Exec(ctx, query,
		rec.RewardID, rec.Recipient, rec.Amount, rec.RewardType, rec.Status,
		rec.TxID, rec.TxHash, rec.TsCreated, rec.TsUpdated,
	)
	if err != nil {
		return fmt.Errorf("upsert reward: %w", err)
	}
	return nil
}

// Search fetches reward records with filtering, pagination and creation-time
// ordering.
func (r *RewardRepo) Search(ctx context.Context, params ports.RewardSearchParams) ([]domain.RewardRecord, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *params.Status)
		argIdx++
	}
	if params.Recipient != "" {
		conditions = append(conditions, fmt.Sprintf("recipient = $%d", argIdx))
		args = append(args, params.Recipient)
		argIdx++
	}
	if params.RewardType != nil {
		conditions = append(conditions, fmt.Sprintf("reward_type = $%d", argIdx))
		args = append(args, *params.RewardType)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	order := "DESC"
	if params.Ascending {
		order = "ASC"
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 100
	}

	query := fmt.Sprintf(`SELECT %s FROM rewards %s ORDER BY ts_created %s LIMIT $%d OFFSET $%d`,
		rewardColumns, where, order, argIdx, argIdx+1)
	args = append(args, limit, params.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search rewards: %w", err)
	}
	defer rows.Close()

	var records []domain.RewardRecord
	for rows.Next() {
		rec := domain.RewardRecord{}
		err := rows.Scan(
			&rec.RewardID, &rec.Recipient, &rec.Amount, &rec.RewardType, &rec.Status,
			&rec.TxID, &rec.TxHash, &rec.TsCreated, &rec.TsUpdated,
		)
		if err != nil {
			return nil, fmt.Errorf("scan reward row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reward rows: %w", err)
	}
	return records, nil
}

// CountByRecipientAndType counts reward records for a (recipient, type) pair,
// excluding excludeID. Backs the per-recipient payout cap.
func (r *RewardRepo) CountByRecipientAndType(ctx context.Context, recipient string, rewardType domain.RewardType, excludeID string) (int64, error) {
	query := `SELECT COUNT(*) FROM rewards WHERE recipient = $1 AND reward_type = $2 AND reward_id != $3`

	var count int64
	err := r.pool.QueryRow(ctx, query, recipient, rewardType, excludeID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count rewards by recipient: %w", err)
	}
	return count, nil
}

// Stats retrieves aggregated reward counters.
func (r *RewardRepo) Stats(ctx context.Context) (*ports.RewardStats, error) {
	query := `SELECT
		COUNT(*) AS total,
		COUNT(*) FILTER (WHERE status = 'todo') AS todo,
		COUNT(*) FILTER (WHERE status = 'success') AS success,
		COUNT(*) FILTER (WHERE status IN ('error', 'failed')) AS errored,
		COALESCE(SUM(amount) FILTER (WHERE status = 'success'), 0) AS total_paid
		FROM rewards`

	stats := &ports.RewardStats{}
	err := r.pool.QueryRow(ctx, query).Scan(
		&stats.Total, &stats.Todo, &stats.Success, &stats.Errored, &stats.TotalPaid,
	)
	if err != nil {
		return nil, fmt.Errorf("get reward stats: %w", err)
	}
	return stats, nil
}

// scanReward is a helper to scan a single row into a RewardRecord.
func (r *RewardRepo) scanReward(row pgx.Row) (*domain.RewardRecord, error) {
	rec := &domain.RewardRecord{}
	err := row.Scan(
		&rec.RewardID, &rec.Recipient, &rec.Amount, &rec.RewardType, &rec.Status,
		&rec.TxID, &rec.TxHash, &rec.TsCreated, &rec.TsUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan reward: %w", err)
	}
	return rec, nil
}
