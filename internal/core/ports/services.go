package ports

import (
	"context"
	"time"

	"reward-gateway/internal/core/domain"
)

// EnvelopeVerifier decrypts and authenticates an inbound encrypted event.
// On success it returns the raw application payload bytes; the caller parses
// them as structured data.
type EnvelopeVerifier interface {
	Verify(ciphertext []byte, nonce []byte) ([]byte, error)
}

// TxStatus is the settlement network's view of a submitted transfer,
// looked up by its idempotency key.
type TxStatus struct {
	Started      bool   // included in a block but not finalized
	Success      bool   // finalized
	BlockStarted uint64 // block at which the transfer was first included
}

// SettlementClient is the consumed interface of the external ledger network.
// All calls are network round-trips and may take seconds.
type SettlementClient interface {
	QueryBalance(ctx context.Context, address string) (int64, error)
	// SubscribeBalance emits the current balance immediately and again on
	// every observed change, until ctx is cancelled.
	SubscribeBalance(ctx context.Context, address string) (<-chan int64, error)
	QueryTxStatus(ctx context.Context, txID string) (*TxStatus, error)
	// SubmitTransfer signs with the sender wallet behind signerAddress and
	// submits; returns the network transaction hash. Resubmitting with a txID
	// the network already applied is a no-op on its side.
	SubmitTransfer(ctx context.Context, signerAddress, recipient string, amount int64, txID string) (string, error)
	CurrentBlockHeight(ctx context.Context) (uint64, error)
}

// SenderPool allocates funded wallets under balance, concurrency and
// fail-count constraints. All mutation of wallet state goes through it.
type SenderPool interface {
	// Register subscribes every wallet's balance and returns once each has
	// reported at least one observation (the readiness gate).
	Register(ctx context.Context, addresses []string) error
	// Allocate picks a wallet able to cover amount plus the estimated fee,
	// incrementing its in-use count before returning. Blocks while no wallet
	// has a free slot; fails with InsufficientFunds, NoUsableSender or
	// AllocationTimeout.
	Allocate(ctx context.Context, amount int64) (string, error)
	// Release must be called exactly once per successful Allocate, on every
	// exit path.
	Release(address string)
	// ReportOutcome increments the wallet's fail count on failure and resets
	// it on success. A wallet at the fail limit is banned until restart.
	ReportOutcome(address string, success bool)
	// UsableSenderCount returns the number of non-banned wallets.
	UsableSenderCount() int
	Snapshot() []domain.SenderWallet
}

// TransferParams is the validated input to the transfer orchestrator.
type TransferParams struct {
	Recipient  string
	Amount     int64
	RewardID   string
	RewardType domain.RewardType
	// ForceExecute marks reprocessor-driven retries, which execute even when
	// the gateway runs in record-only mode.
	ForceExecute bool
	// TxID optionally pins the idempotency key; generated when empty.
	TxID string
	// CapPerRecipient limits payouts per (recipient, type); 0 = unlimited.
	CapPerRecipient int
}

// TransferService drives a validated reward request to a settled,
// exactly-once payment record.
type TransferService interface {
	Transfer(ctx context.Context, params TransferParams) (*domain.RewardRecord, error)
}

// SweepResult aggregates one reprocessing pass for observability.
type SweepResult struct {
	Processed int
	Succeeded int
	Failed    int
}

// ReprocessService re-attempts rewards left in todo state.
type ReprocessService interface {
	// RunSweep drains todo records once, swallowing per-record errors.
	RunSweep(ctx context.Context) SweepResult
	// Run loops RunSweep on the configured interval until ctx is cancelled.
	Run(ctx context.Context)
}

// NonceStore rejects replayed envelope nonces.
type NonceStore interface {
	// CheckAndSet atomically checks if nonce exists, sets it if not.
	// Returns true if the nonce is new (valid), false if already used.
	CheckAndSet(ctx context.Context, nonce string, ttl time.Duration) (bool, error)
}

// TokenService issues and validates operator API bearer tokens.
type TokenService interface {
	Generate(username string) (string, time.Time, error)
	// Validate returns the token subject (operator username).
	Validate(tokenString string) (string, error)
}

// HashService verifies operator password hashes (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}
