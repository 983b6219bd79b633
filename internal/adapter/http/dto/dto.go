package dto

import (
	"bytes"
	"encoding/base64"
	"encoding/json"

	"reward-gateway/internal/core/domain"
	"reward-gateway/pkg/apperror"
)

// EventRequest is the body of every encrypted event endpoint: the boxed
// envelope plus the nonce it was sealed under, both base64.
type EventRequest struct {
	Ciphertext string `json:"ciphertext" binding:"required"`
	Nonce      string `json:"nonce" binding:"required"`
}

// Decode returns the raw ciphertext and nonce bytes.
func (r *EventRequest) Decode() (ciphertext, nonce []byte, err error) {
	ciphertext, err = base64.StdEncoding.DecodeString(r.Ciphertext)
	if err != nil {
		return nil, nil, apperror.Validation("ciphertext must be base64")
	}
	nonce, err = base64.StdEncoding.DecodeString(r.Nonce)
	if err != nil {
		return nil, nil, apperror.Validation("nonce must be base64")
	}
	return ciphertext, nonce, nil
}

// RewardPaymentPayload is the decrypted payload of a reward-payment event.
type RewardPaymentPayload struct {
	Address    string `json:"address"`
	RewardID   string `json:"rewardId"`
	RewardType string `json:"rewardType"`
}

// Validate checks required fields after decryption.
func (p *RewardPaymentPayload) Validate() error {
	if p.Address == "" {
		return apperror.Validation("address is required")
	}
	if p.RewardID == "" {
		return apperror.Validation("rewardId is required")
	}
	if !domain.KnownRewardType(domain.RewardType(p.RewardType)) {
		return apperror.Validation("unknown reward type: " + p.RewardType)
	}
	return nil
}

// FaucetTransferPayload is the decrypted payload of a faucet-transfer event.
type FaucetTransferPayload struct {
	Address  string `json:"address"`
	RewardID string `json:"rewardId"`
	Funded   bool   `json:"funded"`
}

// Validate checks required fields after decryption.
func (p *FaucetTransferPayload) Validate() error {
	if p.Address == "" {
		return apperror.Validation("address is required")
	}
	if p.RewardID == "" {
		return apperror.Validation("rewardId is required")
	}
	return nil
}

// ParsePayload unmarshals a decrypted payload into a typed event payload.
// Unknown fields are rejected so malformed envelopes fail at the boundary.
func ParsePayload(raw []byte, out any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return apperror.Validation("malformed event payload: " + err.Error())
	}
	return nil
}

// EventResultResponse is the success body of a reward event: the settled (or
// parked) state of the reward.
type EventResultResponse struct {
	Amount int64  `json:"amount"`
	Status string `json:"status"`
	TxID   string `json:"txId"`
	TxHash string `json:"txHash"`
}

// TestDecryptResponse echoes a successfully verified payload back.
type TestDecryptResponse struct {
	Payload string `json:"payload"`
}

// LoginRequest is the request body for operator login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// RewardResponse is the API view of one reward record.
type RewardResponse struct {
	RewardID   string `json:"reward_id"`
	Recipient  string `json:"recipient"`
	Amount     int64  `json:"amount"`
	RewardType string `json:"reward_type"`
	Status     string `json:"status"`
	TxID       string `json:"tx_id,omitempty"`
	TxHash     string `json:"tx_hash,omitempty"`
	TsCreated  string `json:"ts_created"`
	TsUpdated  string `json:"ts_updated"`
}

// RewardListResponse wraps a reward search result.
type RewardListResponse struct {
	Items  []RewardResponse `json:"items"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}

// StatsResponse is the response for reward statistics.
type StatsResponse struct {
	Total     int64 `json:"total"`
	Todo      int64 `json:"todo"`
	Success   int64 `json:"success"`
	Errored   int64 `json:"errored"`
	TotalPaid int64 `json:"total_paid"`
}

// PoolWalletResponse is the API view of one sender wallet.
type PoolWalletResponse struct {
	Address      string `json:"address"`
	Balance      int64  `json:"balance"`
	BalanceReady bool   `json:"balance_ready"`
	InUseCount   int    `json:"in_use_count"`
	FailCount    int    `json:"fail_count"`
	Banned       bool   `json:"banned"`
}

// PoolResponse is the response for the sender pool snapshot.
type PoolResponse struct {
	Wallets     []PoolWalletResponse `json:"wallets"`
	UsableCount int                  `json:"usable_count"`
}

// SweepResponse reports one manually triggered reprocess sweep.
type SweepResponse struct {
	Processed int `json:"processed"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}
