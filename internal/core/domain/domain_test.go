package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewardRecord_IsSettled(t *testing.T) {
	tests := []struct {
		name   string
		status RewardStatus
		want   bool
	}{
		{"pending", RewardStatusPending, false},
		{"todo", RewardStatusTodo, false},
		{"started", RewardStatusStarted, false},
		{"success", RewardStatusSuccess, true},
		{"error", RewardStatusError, false},
		{"failed", RewardStatusFailed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &RewardRecord{Status: tt.status}
			assert.Equal(t, tt.want, r.IsSettled())
		})
	}
}

func TestRewardRecord_IsRetryEligible(t *testing.T) {
	tests := []struct {
		name   string
		status RewardStatus
		want   bool
	}{
		{"pending", RewardStatusPending, false},
		{"todo", RewardStatusTodo, true},
		{"success", RewardStatusSuccess, false},
		{"error", RewardStatusError, true},
		{"failed", RewardStatusFailed, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &RewardRecord{Status: tt.status}
			assert.Equal(t, tt.want, r.IsRetryEligible())
		})
	}
}

func TestKnownRewardType(t *testing.T) {
	assert.True(t, KnownRewardType(RewardTypeSignup))
	assert.True(t, KnownRewardType(RewardTypeReferralTwitter))
	assert.True(t, KnownRewardType(RewardTypeFaucet))
	assert.False(t, KnownRewardType(RewardType("lottery-reward")))
	assert.False(t, KnownRewardType(RewardType("")))
}
