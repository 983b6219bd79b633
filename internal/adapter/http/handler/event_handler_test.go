package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"reward-gateway/config"
	"reward-gateway/internal/core/domain"
	"reward-gateway/internal/core/ports"
	"reward-gateway/internal/core/ports/mocks"
	"reward-gateway/pkg/apperror"
)

type eventHandlerFixture struct {
	verifier   *mocks.MockEnvelopeVerifier
	nonceStore *mocks.MockNonceStore
	transfer   *mocks.MockTransferService
	engine     *gin.Engine
}

func setupEventHandler(t *testing.T) *eventHandlerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	f := &eventHandlerFixture{
		verifier:   mocks.NewMockEnvelopeVerifier(ctrl),
		nonceStore: mocks.NewMockNonceStore(ctrl),
		transfer:   mocks.NewMockTransferService(ctrl),
	}

	rewards := config.RewardsConfig{
		Amounts: map[string]int64{
			"signup-reward":   1000,
			"faucet-transfer": 500,
		},
	}
	h := NewEventHandler(f.verifier, f.nonceStore, f.transfer, rewards, zerolog.Nop())

	f.engine = gin.New()
	f.engine.POST("/events/reward-payment", h.RewardPayment)
	f.engine.POST("/events/faucet-transfer", h.FaucetTransfer)
	f.engine.POST("/events/test-decrypt", h.TestDecrypt)
	return f
}

func postJSON(t *testing.T, engine *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func envelopeBody(ciphertext, nonce []byte) map[string]string {
	return map[string]string{
		"ciphertext": base64.StdEncoding.EncodeToString(ciphertext),
		"nonce":      base64.StdEncoding.EncodeToString(nonce),
	}
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		ErrorCode string `json:"error_code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.ErrorCode
}

func TestEventHandler_RewardPaymentSuccess(t *testing.T) {
	f := setupEventHandler(t)
	payload := []byte(`{"address":"addr1","rewardId":"r1","rewardType":"signup-reward"}`)

	f.nonceStore.EXPECT().CheckAndSet(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	f.verifier.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(payload, nil)
	f.transfer.EXPECT().
		Transfer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, params ports.TransferParams) (*domain.RewardRecord, error) {
			assert.Equal(t, "addr1", params.Recipient)
			assert.Equal(t, int64(1000), params.Amount)
			assert.Equal(t, "r1", params.RewardID)
			assert.Equal(t, domain.RewardTypeSignup, params.RewardType)
			assert.Equal(t, 1, params.CapPerRecipient)
			return &domain.RewardRecord{
				RewardID:   params.RewardID,
				Recipient:  params.Recipient,
				Amount:     params.Amount,
				RewardType: params.RewardType,
				Status:     domain.RewardStatusSuccess,
				TxID:       "0xabc",
				TxHash:     "0xhash",
				TsCreated:  time.Now(),
				TsUpdated:  time.Now(),
			}, nil
		})

	w := postJSON(t, f.engine, "/events/reward-payment", envelopeBody([]byte("sealed"), []byte("nonce-1")))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data struct {
			Amount int64  `json:"amount"`
			Status string `json:"status"`
			TxID   string `json:"txId"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1000), resp.Data.Amount)
	assert.Equal(t, "success", resp.Data.Status)
	assert.Equal(t, "0xabc", resp.Data.TxID)
}

func TestEventHandler_RewardPaymentReplayedNonce(t *testing.T) {
	f := setupEventHandler(t)

	f.nonceStore.EXPECT().CheckAndSet(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

	w := postJSON(t, f.engine, "/events/reward-payment", envelopeBody([]byte("sealed"), []byte("nonce-1")))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "SEC_004", errorCode(t, w))
}

func TestEventHandler_RewardPaymentBadBase64(t *testing.T) {
	f := setupEventHandler(t)

	w := postJSON(t, f.engine, "/events/reward-payment", map[string]string{
		"ciphertext": "!!!not-base64",
		"nonce":      "AA==",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "RWD_001", errorCode(t, w))
}

func TestEventHandler_RewardPaymentDecryptionFailure(t *testing.T) {
	f := setupEventHandler(t)

	f.nonceStore.EXPECT().CheckAndSet(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	f.verifier.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrDecryptionFailed())

	w := postJSON(t, f.engine, "/events/reward-payment", envelopeBody([]byte("garbage"), []byte("nonce-1")))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "SEC_001", errorCode(t, w))
}

func TestEventHandler_RewardPaymentUnknownType(t *testing.T) {
	f := setupEventHandler(t)
	payload := []byte(`{"address":"addr1","rewardId":"r1","rewardType":"lottery"}`)

	f.nonceStore.EXPECT().CheckAndSet(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	f.verifier.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(payload, nil)

	w := postJSON(t, f.engine, "/events/reward-payment", envelopeBody([]byte("sealed"), []byte("nonce-1")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "RWD_001", errorCode(t, w))
}

func TestEventHandler_RewardPaymentDisabledType(t *testing.T) {
	f := setupEventHandler(t)
	// referral-reward is a known type with no configured amount.
	payload := []byte(`{"address":"addr1","rewardId":"r1","rewardType":"referral-reward"}`)

	f.nonceStore.EXPECT().CheckAndSet(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	f.verifier.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(payload, nil)

	w := postJSON(t, f.engine, "/events/reward-payment", envelopeBody([]byte("sealed"), []byte("nonce-1")))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "RWD_002", errorCode(t, w))
}

func TestEventHandler_RewardPaymentNonceStoreOutage(t *testing.T) {
	f := setupEventHandler(t)
	payload := []byte(`{"address":"addr1","rewardId":"r1","rewardType":"signup-reward"}`)

	// A nonce store failure must not block payouts.
	f.nonceStore.EXPECT().CheckAndSet(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, assert.AnError)
	f.verifier.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(payload, nil)
	f.transfer.EXPECT().Transfer(gomock.Any(), gomock.Any()).
		Return(&domain.RewardRecord{Status: domain.RewardStatusSuccess, Amount: 1000}, nil)

	w := postJSON(t, f.engine, "/events/reward-payment", envelopeBody([]byte("sealed"), []byte("nonce-1")))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEventHandler_FaucetTransferSuccess(t *testing.T) {
	f := setupEventHandler(t)
	payload := []byte(`{"address":"addr1","rewardId":"f1","funded":false}`)

	f.nonceStore.EXPECT().CheckAndSet(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	f.verifier.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(payload, nil)
	f.transfer.EXPECT().
		Transfer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, params ports.TransferParams) (*domain.RewardRecord, error) {
			assert.Equal(t, int64(500), params.Amount)
			assert.Equal(t, domain.RewardTypeFaucet, params.RewardType)
			assert.Zero(t, params.CapPerRecipient)
			return &domain.RewardRecord{Status: domain.RewardStatusSuccess, Amount: params.Amount}, nil
		})

	w := postJSON(t, f.engine, "/events/faucet-transfer", envelopeBody([]byte("sealed"), []byte("nonce-2")))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEventHandler_FaucetTransferAlreadyFunded(t *testing.T) {
	f := setupEventHandler(t)
	payload := []byte(`{"address":"addr1","rewardId":"f1","funded":true}`)

	f.nonceStore.EXPECT().CheckAndSet(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	f.verifier.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(payload, nil)

	w := postJSON(t, f.engine, "/events/faucet-transfer", envelopeBody([]byte("sealed"), []byte("nonce-2")))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "RWD_004", errorCode(t, w))
}

func TestEventHandler_TestDecryptSkipsNonceGuard(t *testing.T) {
	f := setupEventHandler(t)
	payload := []byte(`{"address":"addr1"}`)

	// No CheckAndSet expectation: the diagnostic endpoint must not consume
	// the nonce.
	f.verifier.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(payload, nil)

	w := postJSON(t, f.engine, "/events/test-decrypt", envelopeBody([]byte("sealed"), []byte("nonce-3")))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data struct {
			Payload string `json:"payload"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(payload), resp.Data.Payload)
}
