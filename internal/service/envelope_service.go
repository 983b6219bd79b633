package service

import (
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"

	"golang.org/x/crypto/nacl/box"

	"reward-gateway/config"
	"reward-gateway/pkg/apperror"
)

// lengthPrefixSize is the width of the decimal payload-length field at the
// start of every decrypted envelope.
const lengthPrefixSize = 9

// NaClEnvelopeService implements ports.EnvelopeVerifier using NaCl box
// (Curve25519 + XSalsa20-Poly1305) for decryption and Ed25519 for the
// detached payload signature.
//
// Plaintext layout after decryption:
//
//	[9-char decimal payload length][server name][payload][base64 signature]
//
// The server name field is exactly len(serverName) bytes; the signature
// occupies the remainder of the plaintext.
type NaClEnvelopeService struct {
	serverName    string
	privateKey    [32]byte
	peerPublicKey [32]byte
	peerSignKey   ed25519.PublicKey
}

// NewNaClEnvelopeService builds the verifier from this server's identity and
// the trusted counterparty's public keys. All key material is validated here;
// an error is a hard startup failure.
func NewNaClEnvelopeService(identity config.IdentityConfig, peer config.CounterpartyConfig) (*NaClEnvelopeService, error) {
	if identity.Name == "" {
		return nil, fmt.Errorf("server name is empty")
	}

	priv, err := hex.DecodeString(identity.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("decoding encryption key: %w", err)
	}
	if len(priv) != 32 {
		return nil, fmt.Errorf("encryption key must be 32 bytes, got %d", len(priv))
	}

	peerPub, err := base64.StdEncoding.DecodeString(peer.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("decoding counterparty public key: %w", err)
	}
	if len(peerPub) != 32 {
		return nil, fmt.Errorf("counterparty public key must be 32 bytes, got %d", len(peerPub))
	}

	peerSign, err := base64.StdEncoding.DecodeString(peer.SignPublicKey)
	if err != nil {
		return nil, fmt.Errorf("decoding counterparty signing key: %w", err)
	}
	if len(peerSign) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("counterparty signing key must be %d bytes, got %d", ed25519.PublicKeySize, len(peerSign))
	}

	s := &NaClEnvelopeService{
		serverName:  identity.Name,
		peerSignKey: ed25519.PublicKey(peerSign),
	}
	copy(s.privateKey[:], priv)
	copy(s.peerPublicKey[:], peerPub)
	return s, nil
}

// Verify decrypts ciphertext with the shared box key, checks the embedded
// server name and the detached Ed25519 signature, and returns the raw
// application payload bytes.
func (s *NaClEnvelopeService) Verify(ciphertext []byte, nonce []byte) ([]byte, error) {
	if len(nonce) != 24 {
		return nil, apperror.ErrDecryptionFailed()
	}
	var boxNonce [24]byte
	copy(boxNonce[:], nonce)

	plain, ok := box.Open(nil, ciphertext, &boxNonce, &s.peerPublicKey, &s.privateKey)
	if !ok {
		return nil, apperror.ErrDecryptionFailed()
	}

	dataStart := lengthPrefixSize + len(s.serverName)
	if len(plain) < dataStart {
		return nil, apperror.ErrDecryptionFailed()
	}

	payloadLen, err := strconv.Atoi(string(plain[:lengthPrefixSize]))
	if err != nil || payloadLen < 0 {
		return nil, apperror.ErrDecryptionFailed()
	}
	sigStart := dataStart + payloadLen
	if sigStart > len(plain) {
		return nil, apperror.ErrDecryptionFailed()
	}

	// Server name check happens before the signature is touched: a mismatch
	// means the envelope was built for a different deployment.
	if string(plain[lengthPrefixSize:dataStart]) != s.serverName {
		return nil, apperror.ErrInvalidServer()
	}

	payload := plain[dataStart:sigStart]
	sig, err := base64.StdEncoding.DecodeString(string(plain[sigStart:]))
	if err != nil || len(sig) != ed25519.SignatureSize {
		return nil, apperror.ErrSignatureVerificationFailed()
	}
	if !ed25519.Verify(s.peerSignKey, payload, sig) {
		return nil, apperror.ErrSignatureVerificationFailed()
	}

	return payload, nil
}
