package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"reward-gateway/internal/core/domain"
	"reward-gateway/internal/core/ports"
)

// RewardReprocessService implements ports.ReprocessService: a background
// sweep over reward records stuck in todo, retried through the transfer
// orchestrator. Error and failed records are reset to todo first, so every
// retry-eligible state funnels through the same path. Batch size follows the
// number of usable sender wallets so a sweep never over-subscribes the pool.
type RewardReprocessService struct {
	repo     ports.RewardRepository
	transfer ports.TransferService
	pool     ports.SenderPool
	interval time.Duration
	log      zerolog.Logger
}

// NewRewardReprocessService creates the reprocessor.
func NewRewardReprocessService(
	repo ports.RewardRepository,
	transfer ports.TransferService,
	pool ports.SenderPool,
	interval time.Duration,
	log zerolog.Logger,
) *RewardReprocessService {
	return &RewardReprocessService{
		repo:     repo,
		transfer: transfer,
		pool:     pool,
		interval: interval,
		log:      log,
	}
}

// RunSweep requeues records stranded by failed submissions, then drains todo
// records oldest-first until none remain, the pool has no usable wallets, or
// a full batch yields no successes (stuck in-flight records are left for the
// next sweep instead of spinning on them).
func (s *RewardReprocessService) RunSweep(ctx context.Context) ports.SweepResult {
	s.requeueFailed(ctx)

	var result ports.SweepResult
	status := domain.RewardStatusTodo

	for ctx.Err() == nil {
		batchSize := s.pool.UsableSenderCount()
		if batchSize == 0 {
			s.log.Warn().Msg("reprocess sweep stopped, no usable sender wallets")
			break
		}

		records, err := s.repo.Search(ctx, ports.RewardSearchParams{
			Status:    &status,
			Limit:     batchSize,
			Ascending: true,
		})
		if err != nil {
			s.log.Error().Err(err).Msg("reprocess sweep query failed")
			break
		}
		if len(records) == 0 {
			break
		}

		succeededBefore := result.Succeeded
		for i := range records {
			rec := &records[i]
			result.Processed++

			settled, err := s.transfer.Transfer(ctx, ports.TransferParams{
				Recipient:    rec.Recipient,
				Amount:       rec.Amount,
				RewardID:     rec.RewardID,
				RewardType:   rec.RewardType,
				ForceExecute: true,
			})
			if err != nil {
				result.Failed++
				s.log.Warn().Err(err).Str("reward_id", rec.RewardID).Msg("reprocess attempt failed")
				continue
			}
			if settled.IsSettled() {
				result.Succeeded++
			}
		}

		if result.Succeeded == succeededBefore {
			// Whole batch stayed unsettled (in flight or failing); let the
			// next sweep revisit it.
			break
		}
	}

	if result.Processed > 0 {
		s.log.Info().
			Int("processed", result.Processed).
			Int("succeeded", result.Succeeded).
			Int("failed", result.Failed).
			Msg("reprocess sweep finished")
	}
	return result
}

// requeueFailed resets retry-eligible error and failed records back to todo
// so the sweep loop picks them up alongside the regular backlog.
func (s *RewardReprocessService) requeueFailed(ctx context.Context) {
	for _, status := range []domain.RewardStatus{domain.RewardStatusError, domain.RewardStatusFailed} {
		records, err := s.repo.Search(ctx, ports.RewardSearchParams{
			Status:    &status,
			Ascending: true,
		})
		if err != nil {
			s.log.Error().Err(err).Str("status", string(status)).Msg("requeue query failed")
			continue
		}
		for i := range records {
			rec := &records[i]
			if !rec.IsRetryEligible() {
				continue
			}
			rec.Status = domain.RewardStatusTodo
			rec.TsUpdated = time.Now()
			if err := s.repo.Save(ctx, rec); err != nil {
				s.log.Warn().Err(err).Str("reward_id", rec.RewardID).Msg("requeue save failed")
				continue
			}
			s.log.Info().Str("reward_id", rec.RewardID).Str("from", string(status)).
				Msg("failed record requeued for retry")
		}
	}
}

// Run sweeps immediately and then on every interval tick until ctx is
// cancelled.
func (s *RewardReprocessService) Run(ctx context.Context) {
	s.log.Info().Dur("interval", s.interval).Msg("reprocessor started")
	s.RunSweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("reprocessor stopped")
			return
		case <-ticker.C:
			s.RunSweep(ctx)
		}
	}
}
