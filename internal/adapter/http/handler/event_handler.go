package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"reward-gateway/config"
	"reward-gateway/internal/adapter/http/dto"
	"reward-gateway/internal/core/domain"
	"reward-gateway/internal/core/ports"
	"reward-gateway/pkg/apperror"
	"reward-gateway/pkg/response"
)

// Envelope nonces are random 24-byte values; the replay guard only needs to
// outlive any plausible redelivery window.
const nonceTTL = 24 * time.Hour

// EventHandler handles the encrypted event endpoints: the counterparty
// messaging service posts sealed envelopes here.
type EventHandler struct {
	verifier    ports.EnvelopeVerifier
	nonceStore  ports.NonceStore
	transferSvc ports.TransferService
	rewards     config.RewardsConfig
	log         zerolog.Logger
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(
	verifier ports.EnvelopeVerifier,
	nonceStore ports.NonceStore,
	transferSvc ports.TransferService,
	rewards config.RewardsConfig,
	log zerolog.Logger,
) *EventHandler {
	return &EventHandler{
		verifier:    verifier,
		nonceStore:  nonceStore,
		transferSvc: transferSvc,
		rewards:     rewards,
		log:         log,
	}
}

// openEnvelope runs the shared front half of every event: bind, replay
// guard, decrypt, verify. Returns the raw payload bytes.
func (h *EventHandler) openEnvelope(c *gin.Context, replayGuard bool) ([]byte, error) {
	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	ciphertext, nonce, err := req.Decode()
	if err != nil {
		return nil, err
	}

	if replayGuard {
		isNew, err := h.nonceStore.CheckAndSet(c.Request.Context(), req.Nonce, nonceTTL)
		if err != nil {
			h.log.Warn().Err(err).Msg("nonce store error, allowing request")
		} else if !isNew {
			return nil, apperror.ErrNonceUsed()
		}
	}

	return h.verifier.Verify(ciphertext, nonce)
}

// RewardPayment handles POST /api/v1/events/reward-payment.
func (h *EventHandler) RewardPayment(c *gin.Context) {
	raw, err := h.openEnvelope(c, true)
	if err != nil {
		response.Error(c, err)
		return
	}

	var payload dto.RewardPaymentPayload
	if err := dto.ParsePayload(raw, &payload); err != nil {
		response.Error(c, err)
		return
	}
	if err := payload.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	rewardType := domain.RewardType(payload.RewardType)
	amount := h.rewards.Amounts[payload.RewardType]
	if amount <= 0 {
		response.Error(c, apperror.ErrRewardTypeUnavailable())
		return
	}

	rec, err := h.transferSvc.Transfer(c.Request.Context(), ports.TransferParams{
		Recipient:       payload.Address,
		Amount:          amount,
		RewardID:        payload.RewardID,
		RewardType:      rewardType,
		CapPerRecipient: h.capFor(rewardType),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toEventResult(rec))
}

// FaucetTransfer handles POST /api/v1/events/faucet-transfer.
func (h *EventHandler) FaucetTransfer(c *gin.Context) {
	raw, err := h.openEnvelope(c, true)
	if err != nil {
		response.Error(c, err)
		return
	}

	var payload dto.FaucetTransferPayload
	if err := dto.ParsePayload(raw, &payload); err != nil {
		response.Error(c, err)
		return
	}
	if err := payload.Validate(); err != nil {
		response.Error(c, err)
		return
	}
	if payload.Funded {
		response.Error(c, apperror.ErrAlreadyFunded())
		return
	}

	amount := h.rewards.Amounts[string(domain.RewardTypeFaucet)]
	if amount <= 0 {
		response.Error(c, apperror.ErrRewardTypeUnavailable())
		return
	}

	rec, err := h.transferSvc.Transfer(c.Request.Context(), ports.TransferParams{
		Recipient:  payload.Address,
		Amount:     amount,
		RewardID:   payload.RewardID,
		RewardType: domain.RewardTypeFaucet,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toEventResult(rec))
}

// TestDecrypt handles POST /api/v1/events/test-decrypt: a diagnostic probe
// that verifies the envelope without consuming the nonce or touching any
// reward state.
func (h *EventHandler) TestDecrypt(c *gin.Context) {
	raw, err := h.openEnvelope(c, false)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TestDecryptResponse{Payload: string(raw)})
}

// capFor returns the per-recipient payout cap for a reward type. Signup-style
// rewards default to one payout per recipient when no cap is configured.
func (h *EventHandler) capFor(rewardType domain.RewardType) int {
	if limit, ok := h.rewards.Caps[string(rewardType)]; ok {
		return limit
	}
	switch rewardType {
	case domain.RewardTypeSignup, domain.RewardTypeSignupTwitter:
		return 1
	}
	return 0
}

func toEventResult(rec *domain.RewardRecord) dto.EventResultResponse {
	return dto.EventResultResponse{
		Amount: rec.Amount,
		Status: string(rec.Status),
		TxID:   rec.TxID,
		TxHash: rec.TxHash,
	}
}
