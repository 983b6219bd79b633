package config

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Identity     IdentityConfig     `mapstructure:"identity"`
	Counterparty CounterpartyConfig `mapstructure:"counterparty"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Redis        RedisConfig        `mapstructure:"redis"`
	Settlement   SettlementConfig   `mapstructure:"settlement"`
	Rewards      RewardsConfig      `mapstructure:"rewards"`
	Pool         PoolConfig         `mapstructure:"pool"`
	Senders      []SenderConfig     `mapstructure:"senders"`
	Ops          OpsConfig          `mapstructure:"ops"`
	JWT          JWTConfig          `mapstructure:"jwt"`
	Log          LogConfig          `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// IdentityConfig holds this server's name and key material. The envelope
// protocol embeds Name in every plaintext; a mismatch is rejected before the
// payload is parsed.
type IdentityConfig struct {
	Name          string `mapstructure:"name"`
	EncryptionKey string `mapstructure:"encryption_key"` // 32-byte hex Curve25519 private key
}

// CounterpartyConfig identifies the single trusted messaging service allowed
// to submit reward requests.
type CounterpartyConfig struct {
	ServerName    string `mapstructure:"server_name"`
	PublicKey     string `mapstructure:"public_key"`      // base64 Curve25519 public key
	SignPublicKey string `mapstructure:"sign_public_key"` // base64 Ed25519 public key
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// SettlementConfig describes the external ledger node this gateway submits
// transfers to.
type SettlementConfig struct {
	NodeURL             string        `mapstructure:"node_url"`
	RequestTimeout      time.Duration `mapstructure:"request_timeout"`
	BalancePollInterval time.Duration `mapstructure:"balance_poll_interval"`
	EstimatedFee        int64         `mapstructure:"estimated_fee"`
	// StaleLookbackBlocks controls when a "started" transaction is considered
	// safe to retry: only after currentBlock - blockStarted exceeds it.
	StaleLookbackBlocks uint64 `mapstructure:"stale_lookback_blocks"`
}

// RewardsConfig holds per-reward-type payout amounts and per-recipient caps.
// An amount of 0 (or below) disables the reward type. A cap of 0 means
// unlimited payouts per recipient.
type RewardsConfig struct {
	Amounts map[string]int64 `mapstructure:"amounts"`
	Caps    map[string]int   `mapstructure:"caps"`
	// RecordOnly persists reward records without executing transfers.
	// Used for staged rollouts; the reprocessor is also suspended.
	RecordOnly bool `mapstructure:"record_only"`
	// ReprocessEnabled toggles the background sweep over todo records.
	ReprocessEnabled  bool          `mapstructure:"reprocess_enabled"`
	ReprocessInterval time.Duration `mapstructure:"reprocess_interval"`
}

type PoolConfig struct {
	MaxTxPerAddress int           `mapstructure:"max_tx_per_address"`
	MaxFailCount    int           `mapstructure:"max_fail_count"`
	AllocateWait    time.Duration `mapstructure:"allocate_wait"`
}

// SenderConfig is one funded wallet usable to sign outgoing transfers.
type SenderConfig struct {
	Address    string `mapstructure:"address"`
	SigningKey string `mapstructure:"signing_key"` // 32-byte hex Ed25519 seed
}

// OpsConfig guards the operator API (reward search, pool snapshot, manual
// reprocess). An empty username disables the surface entirely.
type OpsConfig struct {
	Username     string `mapstructure:"username"`
	PasswordHash string `mapstructure:"password_hash"` // Argon2id encoded hash
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: RGW_ (Reward Gateway).
// Nested keys use underscore: RGW_DATABASE_HOST, RGW_IDENTITY_NAME, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3002)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("identity.name", "")
	v.SetDefault("identity.encryption_key", "")
	v.SetDefault("counterparty.server_name", "")
	v.SetDefault("counterparty.public_key", "")
	v.SetDefault("counterparty.sign_public_key", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "reward_gateway")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("settlement.node_url", "http://localhost:9933")
	v.SetDefault("settlement.request_timeout", "15s")
	v.SetDefault("settlement.balance_poll_interval", "5s")
	v.SetDefault("settlement.estimated_fee", 160)
	v.SetDefault("settlement.stale_lookback_blocks", 1)
	v.SetDefault("rewards.record_only", false)
	v.SetDefault("rewards.reprocess_enabled", true)
	v.SetDefault("rewards.reprocess_interval", "5m")
	v.SetDefault("pool.max_tx_per_address", 1)
	v.SetDefault("pool.max_fail_count", 3)
	v.SetDefault("pool.allocate_wait", "30s")
	v.SetDefault("ops.username", "")
	v.SetDefault("ops.password_hash", "")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "reward-gateway")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: RGW_IDENTITY_NAME -> identity.name
	v.SetEnvPrefix("RGW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration the process cannot run without.
// A non-nil error here is a hard startup failure.
func (c *Config) Validate() error {
	var missing []string

	if c.Identity.Name == "" {
		missing = append(missing, "identity.name")
	}
	if c.Identity.EncryptionKey == "" {
		missing = append(missing, "identity.encryption_key")
	}
	if c.Counterparty.ServerName == "" {
		missing = append(missing, "counterparty.server_name")
	}
	if c.Counterparty.PublicKey == "" {
		missing = append(missing, "counterparty.public_key")
	}
	if c.Counterparty.SignPublicKey == "" {
		missing = append(missing, "counterparty.sign_public_key")
	}
	if len(c.Senders) == 0 {
		missing = append(missing, "senders")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	if key, err := hex.DecodeString(c.Identity.EncryptionKey); err != nil || len(key) != 32 {
		return fmt.Errorf("identity.encryption_key must be 32 bytes hex")
	}
	if key, err := base64.StdEncoding.DecodeString(c.Counterparty.PublicKey); err != nil || len(key) != 32 {
		return fmt.Errorf("counterparty.public_key must be a 32-byte base64 key")
	}
	if key, err := base64.StdEncoding.DecodeString(c.Counterparty.SignPublicKey); err != nil || len(key) != 32 {
		return fmt.Errorf("counterparty.sign_public_key must be a 32-byte base64 key")
	}
	for i, s := range c.Senders {
		if s.Address == "" {
			return fmt.Errorf("senders[%d].address is empty", i)
		}
		if key, err := hex.DecodeString(s.SigningKey); err != nil || len(key) != 32 {
			return fmt.Errorf("senders[%d].signing_key must be a 32-byte hex Ed25519 seed", i)
		}
	}

	if c.Pool.MaxTxPerAddress < 1 {
		return fmt.Errorf("pool.max_tx_per_address must be at least 1")
	}
	if c.Pool.MaxFailCount < 1 {
		return fmt.Errorf("pool.max_fail_count must be at least 1")
	}

	return nil
}

// RewardAmount returns the configured payout for a reward type.
// Zero means the type is unknown or disabled.
func (c *Config) RewardAmount(rewardType string) int64 {
	return c.Rewards.Amounts[rewardType]
}

// RewardCap returns the per-recipient payout cap for a reward type.
// Zero means unlimited.
func (c *Config) RewardCap(rewardType string) int {
	return c.Rewards.Caps[rewardType]
}
