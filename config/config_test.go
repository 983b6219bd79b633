package config

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 3002, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "reward_gateway", cfg.Database.DBName)
	assert.Equal(t, int32(20), cfg.Database.MaxConns)

	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)

	assert.Equal(t, int64(160), cfg.Settlement.EstimatedFee)
	assert.Equal(t, uint64(1), cfg.Settlement.StaleLookbackBlocks)
	assert.Equal(t, 5*time.Second, cfg.Settlement.BalancePollInterval)

	assert.False(t, cfg.Rewards.RecordOnly)
	assert.True(t, cfg.Rewards.ReprocessEnabled)
	assert.Equal(t, 5*time.Minute, cfg.Rewards.ReprocessInterval)

	assert.Equal(t, 1, cfg.Pool.MaxTxPerAddress)
	assert.Equal(t, 3, cfg.Pool.MaxFailCount)
	assert.Equal(t, 30*time.Second, cfg.Pool.AllocateWait)

	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, "reward-gateway", cfg.JWT.Issuer)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
}

func TestLoad_FromYAMLFile(t *testing.T) {
	content := []byte(`
server:
  port: 9090
  mode: "release"
identity:
  name: "faucet_server"
  encryption_key: "` + hexKey(0x11) + `"
counterparty:
  server_name: "messaging_service"
settlement:
  node_url: "http://node.internal:9933"
  stale_lookback_blocks: 3
rewards:
  record_only: true
  amounts:
    signup-reward: 108154
  caps:
    signup-reward: 1
senders:
  - address: "5Sender1"
    signing_key: "` + hexKey(0x33) + `"
`)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "faucet_server", cfg.Identity.Name)
	assert.Equal(t, "messaging_service", cfg.Counterparty.ServerName)
	assert.Equal(t, "http://node.internal:9933", cfg.Settlement.NodeURL)
	assert.Equal(t, uint64(3), cfg.Settlement.StaleLookbackBlocks)
	assert.True(t, cfg.Rewards.RecordOnly)
	assert.Equal(t, int64(108154), cfg.RewardAmount("signup-reward"))
	assert.Equal(t, 1, cfg.RewardCap("signup-reward"))
	assert.Equal(t, int64(0), cfg.RewardAmount("unknown-reward"))
	require.Len(t, cfg.Senders, 1)
	assert.Equal(t, "5Sender1", cfg.Senders[0].Address)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("RGW_IDENTITY_NAME", "env_server")
	t.Setenv("RGW_DATABASE_HOST", "db.env.local")
	t.Setenv("RGW_REWARDS_RECORD_ONLY", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "env_server", cfg.Identity.Name)
	assert.Equal(t, "db.env.local", cfg.Database.Host)
	assert.True(t, cfg.Rewards.RecordOnly)
}

func TestValidate_MissingRequired(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "identity.name")
	assert.Contains(t, err.Error(), "counterparty.public_key")
	assert.Contains(t, err.Error(), "senders")
}

func TestValidate_Complete(t *testing.T) {
	cfg := validConfig(t)
	require.NoError(t, cfg.Validate())
}

func TestValidate_BadKeyMaterial(t *testing.T) {
	cfg := validConfig(t)
	cfg.Identity.EncryptionKey = "not-hex"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encryption_key")

	cfg = validConfig(t)
	cfg.Counterparty.PublicKey = "short"
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "counterparty.public_key")

	cfg = validConfig(t)
	cfg.Senders[0].SigningKey = "abcd"
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "senders[0]")
}

func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.Identity.Name = "faucet_server"
	cfg.Identity.EncryptionKey = hexKey(0x01)
	cfg.Counterparty.ServerName = "messaging_service"
	cfg.Counterparty.PublicKey = b64Key(0x03)
	cfg.Counterparty.SignPublicKey = b64Key(0x04)
	cfg.Senders = []SenderConfig{{Address: "5Sender1", SigningKey: hexKey(0x05)}}
	return cfg
}

func hexKey(b byte) string {
	const digits = "0123456789abcdef"
	out := make([]byte, 64)
	for i := 0; i < 32; i++ {
		out[2*i] = digits[b>>4]
		out[2*i+1] = digits[b&0x0f]
	}
	return string(out)
}

func b64Key(b byte) string {
	raw := make([]byte, 32)
	for i := range raw {
		raw[i] = b
	}
	return base64.StdEncoding.EncodeToString(raw)
}
