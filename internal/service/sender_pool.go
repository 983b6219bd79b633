package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"reward-gateway/config"
	"reward-gateway/internal/core/domain"
	"reward-gateway/internal/core/ports"
	"reward-gateway/pkg/apperror"
)

// walletState is the live, pool-owned state of one sender wallet.
type walletState struct {
	address      string
	balance      int64
	balanceReady bool
	inUse        int
	failCount    int
	allocations  uint64
}

// WalletSenderPool implements ports.SenderPool. One mutex guards all wallet
// state; balance updates, allocation and release all serialize on it, which
// is what makes the balance read during allocation safe against a concurrent
// subscription write. Waiters park on a condition variable and are woken by
// Release, by incoming balance updates, and by a timer that bounds the wait.
type WalletSenderPool struct {
	mu      sync.Mutex
	cond    *sync.Cond
	wallets map[string]*walletState
	order   []string

	settlement   ports.SettlementClient
	maxTx        int
	maxFailCount int
	allocateWait time.Duration
	estimatedFee int64
	log          zerolog.Logger
}

// NewWalletSenderPool creates an empty pool. Wallets join via Register.
func NewWalletSenderPool(settlement ports.SettlementClient, poolCfg config.PoolConfig, estimatedFee int64, log zerolog.Logger) *WalletSenderPool {
	p := &WalletSenderPool{
		wallets:      make(map[string]*walletState),
		settlement:   settlement,
		maxTx:        poolCfg.MaxTxPerAddress,
		maxFailCount: poolCfg.MaxFailCount,
		allocateWait: poolCfg.AllocateWait,
		estimatedFee: estimatedFee,
		log:          log,
	}
	p.cond = sync.NewCond(&p.mu)
	return p
}

// Register subscribes every wallet's balance and blocks until each has
// reported at least one observation. The subscriptions live until ctx is
// cancelled, which for the pool means process shutdown.
func (p *WalletSenderPool) Register(ctx context.Context, addresses []string) error {
	p.mu.Lock()
	for _, addr := range addresses {
		if _, exists := p.wallets[addr]; exists {
			p.mu.Unlock()
			return fmt.Errorf("wallet %s registered twice", addr)
		}
		p.wallets[addr] = &walletState{address: addr}
		p.order = append(p.order, addr)
	}
	p.mu.Unlock()

	for _, addr := range addresses {
		ch, err := p.settlement.SubscribeBalance(ctx, addr)
		if err != nil {
			return fmt.Errorf("subscribing balance for %s: %w", addr, err)
		}
		go p.consumeBalances(addr, ch)
	}

	// Wake waiters when ctx dies so the readiness gate cannot hang forever.
	stop := context.AfterFunc(ctx, p.cond.Broadcast)
	defer stop()

	p.mu.Lock()
	defer p.mu.Unlock()
	for !p.allReadyLocked(addresses) {
		if ctx.Err() != nil {
			return fmt.Errorf("waiting for wallet balances: %w", ctx.Err())
		}
		p.cond.Wait()
	}
	p.log.Info().Int("wallets", len(addresses)).Msg("sender pool ready")
	return nil
}

func (p *WalletSenderPool) allReadyLocked(addresses []string) bool {
	for _, addr := range addresses {
		if !p.wallets[addr].balanceReady {
			return false
		}
	}
	return true
}

func (p *WalletSenderPool) consumeBalances(address string, ch <-chan int64) {
	for balance := range ch {
		p.mu.Lock()
		w := p.wallets[address]
		w.balance = balance
		w.balanceReady = true
		p.mu.Unlock()
		p.cond.Broadcast()
		p.log.Debug().Str("address", address).Int64("balance", balance).Msg("wallet balance updated")
	}
}

// Allocate picks a wallet that can cover amount plus the estimated fee and
// has a free concurrency slot, incrementing its in-use count before
// returning. When every funded wallet is at its concurrency limit the caller
// blocks until a Release frees a slot or the bounded wait expires.
func (p *WalletSenderPool) Allocate(ctx context.Context, amount int64) (string, error) {
	deadline := time.Now().Add(p.allocateWait)
	timer := time.AfterFunc(p.allocateWait, p.cond.Broadcast)
	defer timer.Stop()
	stop := context.AfterFunc(ctx, p.cond.Broadcast)
	defer stop()

	p.mu.Lock()
	defer p.mu.Unlock()

	for {
		eligible, busyButFunded := p.classifyLocked(amount)
		if len(eligible) > 0 {
			w := eligible[rand.IntN(len(eligible))]
			w.inUse++
			w.allocations++
			p.log.Debug().Str("address", w.address).Int64("amount", amount).Msg("wallet allocated")
			return w.address, nil
		}
		if busyButFunded == 0 {
			// Nothing to wait for: no release can make a wallet eligible.
			if p.usableCountLocked() == 0 {
				return "", apperror.ErrNoUsableSender()
			}
			return "", apperror.ErrInsufficientFunds()
		}
		if ctx.Err() != nil || !time.Now().Before(deadline) {
			return "", apperror.ErrAllocationTimeout()
		}
		p.cond.Wait()
	}
}

// classifyLocked returns the wallets eligible right now and the number of
// wallets that fail only the concurrency constraint (worth waiting for).
func (p *WalletSenderPool) classifyLocked(amount int64) ([]*walletState, int) {
	var eligible []*walletState
	busyButFunded := 0
	for _, addr := range p.order {
		w := p.wallets[addr]
		if !w.balanceReady || w.failCount >= p.maxFailCount {
			continue
		}
		if w.balance <= amount+p.estimatedFee {
			continue
		}
		if w.inUse >= p.maxTx {
			busyButFunded++
			continue
		}
		eligible = append(eligible, w)
	}
	return eligible, busyButFunded
}

// Release frees one concurrency slot. Callers pair it with every successful
// Allocate on all exit paths.
func (p *WalletSenderPool) Release(address string) {
	p.mu.Lock()
	w, ok := p.wallets[address]
	if ok && w.inUse > 0 {
		w.inUse--
	}
	p.mu.Unlock()
	p.cond.Broadcast()
}

// ReportOutcome updates the wallet's fail count. A wallet that reaches the
// fail limit stays banned until the process restarts.
func (p *WalletSenderPool) ReportOutcome(address string, success bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	w, ok := p.wallets[address]
	if !ok {
		return
	}
	if success {
		w.failCount = 0
		return
	}
	w.failCount++
	if w.failCount == p.maxFailCount {
		p.log.Warn().Str("address", address).Int("fail_count", w.failCount).Msg("sender wallet banned")
	}
}

// UsableSenderCount returns the number of wallets not banned by fail count.
func (p *WalletSenderPool) UsableSenderCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.usableCountLocked()
}

func (p *WalletSenderPool) usableCountLocked() int {
	n := 0
	for _, w := range p.wallets {
		if w.failCount < p.maxFailCount {
			n++
		}
	}
	return n
}

// Snapshot returns a point-in-time view of every wallet, in registration
// order.
func (p *WalletSenderPool) Snapshot() []domain.SenderWallet {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.SenderWallet, 0, len(p.order))
	for _, addr := range p.order {
		w := p.wallets[addr]
		out = append(out, domain.SenderWallet{
			Address:      w.address,
			Balance:      w.balance,
			BalanceReady: w.balanceReady,
			InUseCount:   w.inUse,
			FailCount:    w.failCount,
			Banned:       w.failCount >= p.maxFailCount,
			Nonce:        w.allocations,
		})
	}
	return out
}
