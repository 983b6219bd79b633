package settlement

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"reward-gateway/config"
	"reward-gateway/internal/core/ports"
)

// JSON-RPC methods exposed by the settlement node.
const (
	methodGetBalance     = "chain_getBalance"
	methodGetTxStatus    = "chain_getTxStatus"
	methodSubmitTransfer = "chain_submitTransfer"
	methodGetBlockHeight = "chain_getBlockHeight"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.SettlementClient against a JSON-RPC node. It holds
// the Ed25519 signing key of every configured sender wallet; transfers are
// signed locally and submitted with the signature attached, so the node never
// sees key material.
type Client struct {
	nodeURL      string
	httpClient   HTTPClient
	timeout      time.Duration
	pollInterval time.Duration
	signers      map[string]ed25519.PrivateKey
	nextID       atomic.Uint64
	log          zerolog.Logger
}

// NewClient creates a settlement client. Every sender's signing key is
// validated here; an error is a hard startup failure.
func NewClient(cfg config.SettlementConfig, senders []config.SenderConfig, httpClient HTTPClient, log zerolog.Logger) (*Client, error) {
	signers := make(map[string]ed25519.PrivateKey, len(senders))
	for _, s := range senders {
		seed, err := hex.DecodeString(s.SigningKey)
		if err != nil {
			return nil, fmt.Errorf("decoding signing key for %s: %w", s.Address, err)
		}
		if len(seed) != ed25519.SeedSize {
			return nil, fmt.Errorf("signing key for %s must be a %d-byte seed", s.Address, ed25519.SeedSize)
		}
		signers[s.Address] = ed25519.NewKeyFromSeed(seed)
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.RequestTimeout}
	}

	return &Client{
		nodeURL:      cfg.NodeURL,
		httpClient:   httpClient,
		timeout:      cfg.RequestTimeout,
		pollInterval: cfg.BalancePollInterval,
		signers:      signers,
		log:          log,
	}, nil
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// call performs one JSON-RPC round-trip and unmarshals the result into out.
func (c *Client) call(ctx context.Context, method string, params any, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      c.nextID.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("marshaling %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.nodeURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("calling %s: unexpected status %d", method, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s response: %w", method, err)
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(raw, &rpcResp); err != nil {
		return fmt.Errorf("decoding %s response: %w", method, err)
	}
	if rpcResp.Error != nil {
		return fmt.Errorf("%s: %w", method, rpcResp.Error)
	}
	if out != nil {
		if err := json.Unmarshal(rpcResp.Result, out); err != nil {
			return fmt.Errorf("decoding %s result: %w", method, err)
		}
	}
	return nil
}

// QueryBalance returns the current free balance of an address.
func (c *Client) QueryBalance(ctx context.Context, address string) (int64, error) {
	var balance int64
	if err := c.call(ctx, methodGetBalance, []any{address}, &balance); err != nil {
		return 0, err
	}
	return balance, nil
}

// SubscribeBalance polls the node and emits the balance immediately and on
// every observed change until ctx is cancelled. Poll errors are logged and
// retried on the next tick; the channel is closed when ctx ends.
func (c *Client) SubscribeBalance(ctx context.Context, address string) (<-chan int64, error) {
	ch := make(chan int64, 1)

	go func() {
		defer close(ch)

		var last int64
		seen := false

		emit := func() {
			balance, err := c.QueryBalance(ctx, address)
			if err != nil {
				if ctx.Err() == nil {
					c.log.Warn().Err(err).Str("address", address).Msg("balance poll failed")
				}
				return
			}
			if seen && balance == last {
				return
			}
			last, seen = balance, true
			select {
			case ch <- balance:
			case <-ctx.Done():
			}
		}

		emit()
		ticker := time.NewTicker(c.pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				emit()
			}
		}
	}()

	return ch, nil
}

type txStatusResult struct {
	Started      bool   `json:"started"`
	Success      bool   `json:"success"`
	BlockStarted uint64 `json:"blockStarted"`
}

// QueryTxStatus looks up a submitted transfer by its idempotency key.
func (c *Client) QueryTxStatus(ctx context.Context, txID string) (*ports.TxStatus, error) {
	var result txStatusResult
	if err := c.call(ctx, methodGetTxStatus, []any{txID}, &result); err != nil {
		return nil, err
	}
	return &ports.TxStatus{
		Started:      result.Started,
		Success:      result.Success,
		BlockStarted: result.BlockStarted,
	}, nil
}

type submitTransferParams struct {
	Signer    string `json:"signer"`
	Recipient string `json:"recipient"`
	Amount    int64  `json:"amount"`
	TxID      string `json:"txId"`
	Signature string `json:"signature"`
}

// SubmitTransfer signs the transfer with the sender wallet's key and submits
// it. The node treats txId as an idempotency key; resubmission is a no-op.
func (c *Client) SubmitTransfer(ctx context.Context, signerAddress, recipient string, amount int64, txID string) (string, error) {
	key, ok := c.signers[signerAddress]
	if !ok {
		return "", fmt.Errorf("no signing key for sender %s", signerAddress)
	}

	canonical := fmt.Sprintf("%s|%s|%d|%s", signerAddress, recipient, amount, txID)
	signature := ed25519.Sign(key, []byte(canonical))

	var txHash string
	err := c.call(ctx, methodSubmitTransfer, submitTransferParams{
		Signer:    signerAddress,
		Recipient: recipient,
		Amount:    amount,
		TxID:      txID,
		Signature: base64.StdEncoding.EncodeToString(signature),
	}, &txHash)
	if err != nil {
		return "", err
	}

	c.log.Debug().
		Str("signer", signerAddress).
		Str("recipient", recipient).
		Int64("amount", amount).
		Str("tx_hash", txHash).
		Msg("transfer submitted")
	return txHash, nil
}

// CurrentBlockHeight returns the chain head height.
func (c *Client) CurrentBlockHeight(ctx context.Context) (uint64, error) {
	var height uint64
	if err := c.call(ctx, methodGetBlockHeight, []any{}, &height); err != nil {
		return 0, err
	}
	return height, nil
}
