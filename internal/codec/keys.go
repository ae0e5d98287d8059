package codec

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// ParseAddress converts raw bytes into an address.
// Off-curve addresses (program-derived accounts) are legal, so only the size is checked.
func ParseAddress(b []byte) (solana.PublicKey, error) {
	var pk solana.PublicKey
	if len(b) != AddressLength {
		return pk, fmt.Errorf("%w: address is %d bytes, want %d", ErrLength, len(b), AddressLength)
	}
	copy(pk[:], b)
	return pk, nil
}

// ParseSignature converts raw bytes into a signature.
func ParseSignature(b []byte) (solana.Signature, error) {
	var sig solana.Signature
	if len(b) != SignatureLength {
		return sig, fmt.Errorf("%w: signature is %d bytes, want %d", ErrLength, len(b), SignatureLength)
	}
	copy(sig[:], b)
	return sig, nil
}

// ParseSecret converts raw bytes into keypair secret material.
// The seed/public-key consistency check belongs to the signing package.
func ParseSecret(b []byte) (solana.PrivateKey, error) {
	if len(b) != SecretLength {
		return nil, fmt.Errorf("%w: secret is %d bytes, want %d", ErrLength, len(b), SecretLength)
	}
	out := make(solana.PrivateKey, SecretLength)
	copy(out, b)
	return out, nil
}

// DecodeAddress decodes base58 text into an address.
func DecodeAddress(s string) (solana.PublicKey, error) {
	b, err := DecodeBase58(s)
	if err != nil {
		return solana.PublicKey{}, err
	}
	return ParseAddress(b)
}
