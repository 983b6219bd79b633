package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"reward-gateway/config"
	"reward-gateway/internal/core/ports/mocks"
	"reward-gateway/pkg/apperror"
)

const testFee = int64(160)

// newRegisteredPool builds a pool whose wallets have already passed the
// readiness gate with the given starting balances.
func newRegisteredPool(t *testing.T, ctrl *gomock.Controller, poolCfg config.PoolConfig, balances map[string]int64) *WalletSenderPool {
	t.Helper()

	settlement := mocks.NewMockSettlementClient(ctrl)
	addresses := make([]string, 0, len(balances))
	for addr, balance := range balances {
		ch := make(chan int64, 1)
		ch <- balance
		settlement.EXPECT().SubscribeBalance(gomock.Any(), addr).Return((<-chan int64)(ch), nil)
		addresses = append(addresses, addr)
	}

	pool := NewWalletSenderPool(settlement, poolCfg, testFee, zerolog.Nop())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, pool.Register(ctx, addresses))
	return pool
}

func defaultPoolConfig() config.PoolConfig {
	return config.PoolConfig{
		MaxTxPerAddress: 1,
		MaxFailCount:    3,
		AllocateWait:    2 * time.Second,
	}
}

func TestWalletSenderPool_RegisterWaitsForBalances(t *testing.T) {
	ctrl := gomock.NewController(t)
	settlement := mocks.NewMockSettlementClient(ctrl)

	ch := make(chan int64)
	settlement.EXPECT().SubscribeBalance(gomock.Any(), "addr1").Return((<-chan int64)(ch), nil)

	pool := NewWalletSenderPool(settlement, defaultPoolConfig(), testFee, zerolog.Nop())

	done := make(chan error, 1)
	go func() {
		done <- pool.Register(context.Background(), []string{"addr1"})
	}()

	select {
	case <-done:
		t.Fatal("Register returned before the first balance observation")
	case <-time.After(50 * time.Millisecond):
	}

	ch <- 10_000
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Register did not return after the balance arrived")
	}
}

func TestWalletSenderPool_RegisterCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	settlement := mocks.NewMockSettlementClient(ctrl)

	ch := make(chan int64)
	settlement.EXPECT().SubscribeBalance(gomock.Any(), "addr1").Return((<-chan int64)(ch), nil)

	pool := NewWalletSenderPool(settlement, defaultPoolConfig(), testFee, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pool.Register(ctx, []string{"addr1"})
	assert.Error(t, err)
}

func TestWalletSenderPool_AllocateAndRelease(t *testing.T) {
	ctrl := gomock.NewController(t)
	pool := newRegisteredPool(t, ctrl, defaultPoolConfig(), map[string]int64{"addr1": 10_000})

	addr, err := pool.Allocate(context.Background(), 1000)
	require.NoError(t, err)
	assert.Equal(t, "addr1", addr)

	snap := pool.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, 1, snap[0].InUseCount)

	pool.Release(addr)
	snap = pool.Snapshot()
	assert.Equal(t, 0, snap[0].InUseCount)
}

func TestWalletSenderPool_AllocateInsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	pool := newRegisteredPool(t, ctrl, defaultPoolConfig(), map[string]int64{"addr1": 500})

	_, err := pool.Allocate(context.Background(), 1000)
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "POOL_001", appErr.Code)
}

func TestWalletSenderPool_BalanceMustExceedAmountPlusFee(t *testing.T) {
	ctrl := gomock.NewController(t)
	// Exactly amount + fee is not enough; the constraint is strict.
	pool := newRegisteredPool(t, ctrl, defaultPoolConfig(), map[string]int64{"addr1": 1000 + testFee})

	_, err := pool.Allocate(context.Background(), 1000)
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "POOL_001", appErr.Code)
}

func TestWalletSenderPool_BlocksUntilRelease(t *testing.T) {
	ctrl := gomock.NewController(t)
	pool := newRegisteredPool(t, ctrl, defaultPoolConfig(), map[string]int64{"addr1": 10_000})

	first, err := pool.Allocate(context.Background(), 100)
	require.NoError(t, err)

	got := make(chan string, 1)
	go func() {
		addr, err := pool.Allocate(context.Background(), 100)
		if err != nil {
			got <- "error: " + err.Error()
			return
		}
		got <- addr
	}()

	select {
	case v := <-got:
		t.Fatalf("second allocate returned %q before release", v)
	case <-time.After(50 * time.Millisecond):
	}

	pool.Release(first)
	select {
	case v := <-got:
		assert.Equal(t, "addr1", v)
	case <-time.After(2 * time.Second):
		t.Fatal("second allocate did not wake after release")
	}
}

func TestWalletSenderPool_AllocateTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := defaultPoolConfig()
	cfg.AllocateWait = 50 * time.Millisecond
	pool := newRegisteredPool(t, ctrl, cfg, map[string]int64{"addr1": 10_000})

	_, err := pool.Allocate(context.Background(), 100)
	require.NoError(t, err)

	_, err = pool.Allocate(context.Background(), 100)
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "POOL_003", appErr.Code)
}

func TestWalletSenderPool_FailCountBan(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := defaultPoolConfig()
	pool := newRegisteredPool(t, ctrl, cfg, map[string]int64{"addr1": 10_000})

	for i := 0; i < cfg.MaxFailCount; i++ {
		pool.ReportOutcome("addr1", false)
	}
	assert.Equal(t, 0, pool.UsableSenderCount())

	_, err := pool.Allocate(context.Background(), 100)
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "POOL_002", appErr.Code)
}

func TestWalletSenderPool_SuccessResetsFailCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	pool := newRegisteredPool(t, ctrl, defaultPoolConfig(), map[string]int64{"addr1": 10_000})

	pool.ReportOutcome("addr1", false)
	pool.ReportOutcome("addr1", false)
	pool.ReportOutcome("addr1", true)

	snap := pool.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, 0, snap[0].FailCount)
	assert.False(t, snap[0].Banned)
}

func TestWalletSenderPool_SkipsBannedWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := defaultPoolConfig()
	pool := newRegisteredPool(t, ctrl, cfg, map[string]int64{
		"addr1": 10_000,
		"addr2": 10_000,
	})

	for i := 0; i < cfg.MaxFailCount; i++ {
		pool.ReportOutcome("addr1", false)
	}

	// Only addr2 remains usable; every allocation must land on it.
	for i := 0; i < 3; i++ {
		addr, err := pool.Allocate(context.Background(), 100)
		require.NoError(t, err)
		assert.Equal(t, "addr2", addr)
		pool.Release(addr)
	}
}

func TestWalletSenderPool_BalanceUpdateUnblocksInsufficient(t *testing.T) {
	ctrl := gomock.NewController(t)
	settlement := mocks.NewMockSettlementClient(ctrl)

	ch := make(chan int64, 2)
	ch <- 100
	settlement.EXPECT().SubscribeBalance(gomock.Any(), "addr1").Return((<-chan int64)(ch), nil)

	pool := NewWalletSenderPool(settlement, defaultPoolConfig(), testFee, zerolog.Nop())
	require.NoError(t, pool.Register(context.Background(), []string{"addr1"}))

	// Low balance fails fast.
	_, err := pool.Allocate(context.Background(), 1000)
	require.Error(t, err)

	// A top-up observed via the subscription makes the wallet eligible.
	ch <- 50_000
	require.Eventually(t, func() bool {
		snap := pool.Snapshot()
		return len(snap) == 1 && snap[0].Balance == 50_000
	}, 2*time.Second, 10*time.Millisecond)

	addr, err := pool.Allocate(context.Background(), 1000)
	require.NoError(t, err)
	assert.Equal(t, "addr1", addr)
}
