// Package signing generates ed25519 keypairs and signs and verifies messages.
package signing

import (
	"bytes"
	"crypto/ed25519"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"solana-instruction-api/internal/codec"
	"solana-instruction-api/internal/domain"
)

// ErrKeypairMismatch is returned when the public half of a secret does not
// belong to its seed.
var ErrKeypairMismatch = errors.New("public key does not match seed")

// Keypair is a freshly generated account key.
type Keypair struct {
	PublicKey solana.PublicKey
	Secret    solana.PrivateKey
}

// SignResult is a detached signature plus the signer's public key.
type SignResult struct {
	Signature solana.Signature
	PublicKey solana.PublicKey
}

// GenerateKeypair creates a new random keypair.
func GenerateKeypair() (Keypair, error) {
	secret, err := solana.NewRandomPrivateKey()
	if err != nil {
		return Keypair{}, fmt.Errorf("generate keypair: %w", err)
	}
	return Keypair{PublicKey: secret.PublicKey(), Secret: secret}, nil
}

// Sign signs the UTF-8 bytes of message with secret.
// Fails with InvalidSecret if secret is not a consistent seed || public key pair.
func Sign(message string, secret solana.PrivateKey) (SignResult, error) {
	if err := checkKeypair(secret); err != nil {
		return SignResult{}, domain.InvalidSecret(err)
	}

	sig, err := secret.Sign([]byte(message))
	if err != nil {
		return SignResult{}, domain.InvalidSecret(err)
	}
	return SignResult{Signature: sig, PublicKey: secret.PublicKey()}, nil
}

// Verify reports whether signature is valid for message under publicKey.
// A mismatch is false, never an error.
func Verify(message string, signature solana.Signature, publicKey solana.PublicKey) bool {
	return signature.Verify(publicKey, []byte(message))
}

func checkKeypair(secret solana.PrivateKey) error {
	if len(secret) != codec.SecretLength {
		return fmt.Errorf("%w: secret is %d bytes", codec.ErrLength, len(secret))
	}
	derived := ed25519.NewKeyFromSeed(secret[:ed25519.SeedSize])
	if !bytes.Equal(derived[ed25519.SeedSize:], secret[ed25519.SeedSize:]) {
		return ErrKeypairMismatch
	}
	return nil
}
