package domain

// SenderWallet is a point-in-time view of one funded wallet in the sender
// pool. The pool owns the live state; this struct is what it hands out to
// observers (ops API, logs).
type SenderWallet struct {
	Address      string `json:"address"`
	Balance      int64  `json:"balance"`
	BalanceReady bool   `json:"balance_ready"` // false until the first observation arrives
	InUseCount   int    `json:"in_use_count"`
	FailCount    int    `json:"fail_count"`
	Banned       bool   `json:"banned"`
	Nonce        uint64 `json:"nonce"` // allocations handed out since startup
}
