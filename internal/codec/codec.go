// Package codec wraps the base58/base64 codecs and the fixed-size key,
// secret and signature formats used by Solana.
package codec

import (
	"encoding/base64"
	"fmt"

	"github.com/mr-tron/base58"
)

// Protocol sizes of the ed25519-based key formats.
const (
	// AddressLength is the size of a public key / account address.
	AddressLength = 32

	// MinAddressTextLength and MaxAddressTextLength bound the base58 form of a
	// 32-byte address.
	MinAddressTextLength = 32
	MaxAddressTextLength = 44

	// SecretLength is the size of a keypair secret: 32-byte seed || 32-byte public key.
	SecretLength = 64

	// SignatureLength is the size of an ed25519 signature.
	SignatureLength = 64
)

// DecodeBase58 decodes Bitcoin-alphabet base58 text.
func DecodeBase58(s string) ([]byte, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty base58 string", ErrDecode)
	}
	b, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: base58: %v", ErrDecode, err)
	}
	return b, nil
}

// EncodeBase58 encodes bytes as Bitcoin-alphabet base58 text.
func EncodeBase58(b []byte) string {
	return base58.Encode(b)
}

// DecodeBase64 decodes standard padded base64 text.
func DecodeBase64(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: base64: %v", ErrDecode, err)
	}
	return b, nil
}

// EncodeBase64 encodes bytes as standard padded base64 text.
func EncodeBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}
