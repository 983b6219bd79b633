package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"reward-gateway/internal/core/domain"
	"reward-gateway/internal/core/ports"
)

// --- In-Memory Reward Repo ---

type inMemoryRewardRepo struct {
	mu      sync.RWMutex
	records map[string]domain.RewardRecord
}

func newInMemoryRewardRepo() *inMemoryRewardRepo {
	return &inMemoryRewardRepo{records: make(map[string]domain.RewardRecord)}
}

func (r *inMemoryRewardRepo) Get(ctx context.Context, rewardID string) (*domain.RewardRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[rewardID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (r *inMemoryRewardRepo) Save(ctx context.Context, rec *domain.RewardRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[rec.RewardID] = *rec
	return nil
}

func (r *inMemoryRewardRepo) Search(ctx context.Context, params ports.RewardSearchParams) ([]domain.RewardRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.RewardRecord
	for _, rec := range r.records {
		if params.Status != nil && rec.Status != *params.Status {
			continue
		}
		if params.Recipient != "" && rec.Recipient != params.Recipient {
			continue
		}
		if params.RewardType != nil && rec.RewardType != *params.RewardType {
			continue
		}
		out = append(out, rec)
	}

	sort.Slice(out, func(i, j int) bool {
		if params.Ascending {
			return out[i].TsCreated.Before(out[j].TsCreated)
		}
		return out[j].TsCreated.Before(out[i].TsCreated)
	})

	if params.Offset > 0 {
		if params.Offset >= len(out) {
			return nil, nil
		}
		out = out[params.Offset:]
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 100
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *inMemoryRewardRepo) CountByRecipientAndType(ctx context.Context, recipient string, rewardType domain.RewardType, excludeID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var n int64
	for _, rec := range r.records {
		if rec.Recipient == recipient && rec.RewardType == rewardType && rec.RewardID != excludeID {
			n++
		}
	}
	return n, nil
}

func (r *inMemoryRewardRepo) Stats(ctx context.Context) (*ports.RewardStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stats := &ports.RewardStats{}
	for _, rec := range r.records {
		stats.Total++
		switch rec.Status {
		case domain.RewardStatusTodo:
			stats.Todo++
		case domain.RewardStatusSuccess:
			stats.Success++
			stats.TotalPaid += rec.Amount
		case domain.RewardStatusError, domain.RewardStatusFailed:
			stats.Errored++
		}
	}
	return stats, nil
}

// --- Fake Settlement Ledger ---

type submission struct {
	Signer    string
	Recipient string
	Amount    int64
	TxID      string
}

// fakeLedger implements ports.SettlementClient in memory. Submissions are
// recorded per txID so tests can assert exactly-once delivery, and per-signer
// in-flight counts are tracked to catch concurrency-limit violations.
type fakeLedger struct {
	mu          sync.Mutex
	balances    map[string]int64
	statuses    map[string]ports.TxStatus
	height      uint64
	submissions []submission
	failSigners map[string]bool

	submitDelay time.Duration
	inFlight    map[string]int
	maxInFlight map[string]int
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		balances:    make(map[string]int64),
		statuses:    make(map[string]ports.TxStatus),
		height:      100,
		failSigners: make(map[string]bool),
		inFlight:    make(map[string]int),
		maxInFlight: make(map[string]int),
	}
}

func (l *fakeLedger) setBalance(addr string, balance int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[addr] = balance
}

func (l *fakeLedger) submissionCount(txID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, s := range l.submissions {
		if s.TxID == txID {
			n++
		}
	}
	return n
}

func (l *fakeLedger) totalSubmissions() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.submissions)
}

func (l *fakeLedger) QueryBalance(ctx context.Context, address string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[address], nil
}

func (l *fakeLedger) SubscribeBalance(ctx context.Context, address string) (<-chan int64, error) {
	l.mu.Lock()
	balance := l.balances[address]
	l.mu.Unlock()

	ch := make(chan int64, 1)
	ch <- balance
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

func (l *fakeLedger) QueryTxStatus(ctx context.Context, txID string) (*ports.TxStatus, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	status := l.statuses[txID]
	return &status, nil
}

func (l *fakeLedger) SubmitTransfer(ctx context.Context, signerAddress, recipient string, amount int64, txID string) (string, error) {
	l.mu.Lock()
	l.inFlight[signerAddress]++
	if l.inFlight[signerAddress] > l.maxInFlight[signerAddress] {
		l.maxInFlight[signerAddress] = l.inFlight[signerAddress]
	}
	delay := l.submitDelay
	fail := l.failSigners[signerAddress]
	l.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.inFlight[signerAddress]--
	if fail {
		return "", fmt.Errorf("node rejected transfer from %s", signerAddress)
	}
	l.submissions = append(l.submissions, submission{
		Signer:    signerAddress,
		Recipient: recipient,
		Amount:    amount,
		TxID:      txID,
	})
	l.statuses[txID] = ports.TxStatus{Started: true, Success: true, BlockStarted: l.height}
	return "0xhash-" + txID, nil
}

func (l *fakeLedger) CurrentBlockHeight(ctx context.Context) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.height, nil
}
