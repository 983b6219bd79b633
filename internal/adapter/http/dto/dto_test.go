package dto

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRequest_Decode(t *testing.T) {
	req := EventRequest{
		Ciphertext: base64.StdEncoding.EncodeToString([]byte("cipher")),
		Nonce:      base64.StdEncoding.EncodeToString([]byte("nonce-bytes")),
	}

	ciphertext, nonce, err := req.Decode()
	require.NoError(t, err)
	assert.Equal(t, []byte("cipher"), ciphertext)
	assert.Equal(t, []byte("nonce-bytes"), nonce)
}

func TestEventRequest_DecodeBadBase64(t *testing.T) {
	_, _, err := (&EventRequest{Ciphertext: "!!!", Nonce: "AA=="}).Decode()
	assert.Error(t, err)

	_, _, err = (&EventRequest{Ciphertext: "AA==", Nonce: "!!!"}).Decode()
	assert.Error(t, err)
}

func TestRewardPaymentPayload_Validate(t *testing.T) {
	tests := []struct {
		name    string
		payload RewardPaymentPayload
		wantErr bool
	}{
		{"valid", RewardPaymentPayload{Address: "addr1", RewardID: "r1", RewardType: "signup-reward"}, false},
		{"missing address", RewardPaymentPayload{RewardID: "r1", RewardType: "signup-reward"}, true},
		{"missing reward id", RewardPaymentPayload{Address: "addr1", RewardType: "signup-reward"}, true},
		{"unknown type", RewardPaymentPayload{Address: "addr1", RewardID: "r1", RewardType: "lottery"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFaucetTransferPayload_Validate(t *testing.T) {
	assert.NoError(t, (&FaucetTransferPayload{Address: "addr1", RewardID: "r1"}).Validate())
	assert.Error(t, (&FaucetTransferPayload{RewardID: "r1"}).Validate())
	assert.Error(t, (&FaucetTransferPayload{Address: "addr1"}).Validate())
}

func TestParsePayload_RejectsUnknownFields(t *testing.T) {
	var p RewardPaymentPayload
	err := ParsePayload([]byte(`{"address":"a","rewardId":"r","rewardType":"signup-reward","extra":1}`), &p)
	assert.Error(t, err)

	err = ParsePayload([]byte(`{"address":"a","rewardId":"r","rewardType":"signup-reward"}`), &p)
	require.NoError(t, err)
	assert.Equal(t, "a", p.Address)
}

func TestParsePayload_MalformedJSON(t *testing.T) {
	var p FaucetTransferPayload
	err := ParsePayload([]byte(`not-json`), &p)
	assert.Error(t, err)
}
