package service

import (
	"context"
	"encoding/hex"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/blake2b"

	"reward-gateway/internal/core/domain"
	"reward-gateway/internal/core/ports"
	"reward-gateway/pkg/apperror"
)

// RewardTransferService implements ports.TransferService. It drives one
// reward record through pending -> todo -> success, with the durable todo
// write landing before any network side effect so a crash mid-transfer
// leaves a resumable record instead of a lost request.
type RewardTransferService struct {
	repo       ports.RewardRepository
	settlement ports.SettlementClient
	pool       ports.SenderPool

	// recordOnly persists records without touching the settlement network.
	recordOnly bool
	// staleLookback is how many blocks an in-flight transaction may trail
	// the chain head before a retry is considered safe.
	staleLookback uint64

	// locks serializes concurrent Transfer calls for the same reward id
	// within this process; an entry lives only while callers hold or wait on
	// it. Cross-process races rely on the durable status checkpoint plus the
	// txId status probe.
	locksMu sync.Mutex
	locks   map[string]*rewardLock

	log zerolog.Logger
	now func() time.Time
}

// rewardLock is a reference-counted mutex for one reward id.
type rewardLock struct {
	mu   sync.Mutex
	refs int
}

// NewRewardTransferService creates the transfer orchestrator.
func NewRewardTransferService(
	repo ports.RewardRepository,
	settlement ports.SettlementClient,
	pool ports.SenderPool,
	recordOnly bool,
	staleLookback uint64,
	log zerolog.Logger,
) *RewardTransferService {
	return &RewardTransferService{
		repo:          repo,
		settlement:    settlement,
		pool:          pool,
		recordOnly:    recordOnly,
		staleLookback: staleLookback,
		locks:         make(map[string]*rewardLock),
		log:           log,
		now:           time.Now,
	}
}

// lockReward acquires the per-reward mutex, creating it on first use.
func (s *RewardTransferService) lockReward(rewardID string) *rewardLock {
	s.locksMu.Lock()
	l, ok := s.locks[rewardID]
	if !ok {
		l = &rewardLock{}
		s.locks[rewardID] = l
	}
	l.refs++
	s.locksMu.Unlock()

	l.mu.Lock()
	return l
}

// unlockReward releases the mutex and drops the map entry once no caller
// holds or waits on it.
func (s *RewardTransferService) unlockReward(rewardID string, l *rewardLock) {
	l.mu.Unlock()

	s.locksMu.Lock()
	l.refs--
	if l.refs == 0 {
		delete(s.locks, rewardID)
	}
	s.locksMu.Unlock()
}

// Transfer loads or creates the reward record for params.RewardID and, unless
// a previous attempt already settled it, submits the payment through an
// allocated sender wallet.
func (s *RewardTransferService) Transfer(ctx context.Context, params ports.TransferParams) (*domain.RewardRecord, error) {
	lock := s.lockReward(params.RewardID)
	defer s.unlockReward(params.RewardID, lock)

	rec, err := s.repo.Get(ctx, params.RewardID)
	if err != nil {
		return nil, err
	}

	if rec == nil {
		if params.CapPerRecipient > 0 {
			count, err := s.repo.CountByRecipientAndType(ctx, params.Recipient, params.RewardType, params.RewardID)
			if err != nil {
				return nil, err
			}
			if count >= int64(params.CapPerRecipient) {
				return nil, apperror.ErrRewardCapReached()
			}
		}
		rec = &domain.RewardRecord{
			RewardID:   params.RewardID,
			Recipient:  params.Recipient,
			Amount:     params.Amount,
			RewardType: params.RewardType,
			Status:     domain.RewardStatusPending,
			TsCreated:  s.now(),
		}
	}

	// Primary duplicate-payment guard.
	if rec.IsSettled() {
		return rec, nil
	}

	recordOnly := s.recordOnly && !params.ForceExecute

	if rec.TxID != "" && !recordOnly {
		settled, inFlight, err := s.probeExistingTx(ctx, rec)
		if err != nil {
			return nil, err
		}
		if settled || inFlight {
			return rec, nil
		}
		// failed or stale: re-execute under the same txId.
	}

	if rec.TxID == "" {
		if params.TxID != "" {
			rec.TxID = params.TxID
		} else {
			rec.TxID = newTxID(params.Recipient)
		}
	}

	// Durable checkpoint before any network side effect.
	rec.Status = domain.RewardStatusTodo
	rec.TsUpdated = s.now()
	if err := s.repo.Save(ctx, rec); err != nil {
		return nil, err
	}

	if recordOnly {
		s.log.Info().Str("reward_id", rec.RewardID).Msg("record-only mode, transfer skipped")
		return rec, nil
	}

	return s.execute(ctx, rec)
}

// probeExistingTx asks the settlement network what happened to an already
// assigned txId. Returns settled=true when the payment finalized (the record
// is persisted as success), inFlight=true when it is too recent to retry.
func (s *RewardTransferService) probeExistingTx(ctx context.Context, rec *domain.RewardRecord) (settled, inFlight bool, err error) {
	status, qerr := s.settlement.QueryTxStatus(ctx, rec.TxID)
	if qerr != nil {
		// Unknown state: park the record for the reprocessor rather than
		// risk a double submission.
		s.log.Warn().Err(qerr).Str("reward_id", rec.RewardID).Str("tx_id", rec.TxID).
			Msg("tx status probe failed, deferring to reprocessor")
		rec.Status = domain.RewardStatusTodo
		rec.TsUpdated = s.now()
		if err := s.repo.Save(ctx, rec); err != nil {
			return false, false, err
		}
		return false, true, nil
	}

	if status.Success {
		rec.Status = domain.RewardStatusSuccess
		rec.TsUpdated = s.now()
		if err := s.repo.Save(ctx, rec); err != nil {
			return false, false, err
		}
		s.log.Info().Str("reward_id", rec.RewardID).Str("tx_id", rec.TxID).
			Msg("previous attempt already settled")
		return true, false, nil
	}

	if status.Started {
		height, herr := s.settlement.CurrentBlockHeight(ctx)
		if herr != nil || height-status.BlockStarted <= s.staleLookback {
			rec.Status = domain.RewardStatusTodo
			rec.TsUpdated = s.now()
			if err := s.repo.Save(ctx, rec); err != nil {
				return false, false, err
			}
			s.log.Info().Str("reward_id", rec.RewardID).Str("tx_id", rec.TxID).
				Uint64("block_started", status.BlockStarted).
				Msg("transfer in flight, retry deferred")
			return false, true, nil
		}
	}

	return false, false, nil
}

// execute allocates a wallet, submits the transfer and settles the record.
func (s *RewardTransferService) execute(ctx context.Context, rec *domain.RewardRecord) (*domain.RewardRecord, error) {
	signer, err := s.pool.Allocate(ctx, rec.Amount)
	if err != nil {
		// Record stays todo; the reprocessor picks it up later.
		return nil, err
	}
	defer s.pool.Release(signer)

	txHash, err := s.settlement.SubmitTransfer(ctx, signer, rec.Recipient, rec.Amount, rec.TxID)
	if err != nil {
		s.pool.ReportOutcome(signer, false)
		rec.Status = domain.RewardStatusError
		rec.TsUpdated = s.now()
		if saveErr := s.repo.Save(ctx, rec); saveErr != nil {
			s.log.Error().Err(saveErr).Str("reward_id", rec.RewardID).
				Msg("persisting error status failed")
		}
		return nil, apperror.ErrSubmissionFailed(err)
	}

	s.pool.ReportOutcome(signer, true)
	rec.Status = domain.RewardStatusSuccess
	rec.TxHash = txHash
	rec.TsUpdated = s.now()
	if err := s.repo.Save(ctx, rec); err != nil {
		// The payment went through; the reprocessor will reconcile via the
		// txId status probe on the next sweep.
		s.log.Error().Err(err).Str("reward_id", rec.RewardID).Str("tx_hash", txHash).
			Msg("persisting success status failed")
		return nil, err
	}

	s.log.Info().
		Str("reward_id", rec.RewardID).
		Str("recipient", rec.Recipient).
		Int64("amount", rec.Amount).
		Str("tx_hash", txHash).
		Msg("reward transfer settled")
	return rec, nil
}

// newTxID derives an idempotency key from the recipient and time-based
// randomness. The same key is reused across retries of one reward attempt.
func newTxID(recipient string) string {
	seed, err := uuid.NewUUID()
	if err != nil {
		seed = uuid.New()
	}
	sum := blake2b.Sum256([]byte(recipient + seed.String()))
	return "0x" + hex.EncodeToString(sum[:])
}
