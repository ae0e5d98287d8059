// Package validate turns untrusted request fields into typed values or a
// *domain.Error naming the first problem found.
package validate

import (
	"errors"
	"math"
	"strings"
	"unicode/utf8"

	"filippo.io/edwards25519"
	"github.com/gagliardetto/solana-go"

	"solana-instruction-api/internal/codec"
	"solana-instruction-api/internal/domain"
)

const (
	// MaxDecimals is the largest decimals value accepted for a new mint.
	MaxDecimals = 9

	// MaxMessageLength is the largest message accepted for signing, in characters.
	MaxMessageLength = 1024
)

// DefaultMaxAmount leaves headroom below the u64 ceiling. It is a service
// policy, not a token program limit.
const DefaultMaxAmount uint64 = math.MaxUint64 / 2

// Policy holds the tunable limits.
type Policy struct {
	MaxAmount uint64
}

// DefaultPolicy returns the policy used when none is configured.
func DefaultPolicy() Policy {
	return Policy{MaxAmount: DefaultMaxAmount}
}

// Required returns the trimmed field value, or MissingField if it is absent or blank.
func Required(name string, v *string) (string, error) {
	if v == nil {
		return "", domain.MissingField(name)
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return "", domain.MissingField(name)
	}
	return s, nil
}

// RequiredRaw applies the same presence rule as Required but returns the
// value untouched. Used where the exact bytes matter (messages to sign).
func RequiredRaw(name string, v *string) (string, error) {
	if _, err := Required(name, v); err != nil {
		return "", err
	}
	return *v, nil
}

// Address parses a base58 address field.
func Address(s, name string) (solana.PublicKey, error) {
	s = strings.TrimSpace(s)
	if len(s) < codec.MinAddressTextLength || len(s) > codec.MaxAddressTextLength {
		return solana.PublicKey{}, domain.InvalidAddressFormat(name)
	}
	pk, err := codec.DecodeAddress(s)
	if err != nil {
		return solana.PublicKey{}, domain.InvalidAddress(name, err)
	}
	// base58 has a single canonical text per byte string; reject anything else
	if pk.String() != s {
		return solana.PublicKey{}, domain.InvalidAddress(name, errors.New("non-canonical encoding"))
	}
	return pk, nil
}

// RequiredAddress combines Required and Address.
func RequiredAddress(name string, v *string) (solana.PublicKey, error) {
	s, err := Required(name, v)
	if err != nil {
		return solana.PublicKey{}, err
	}
	return Address(s, name)
}

// Amount checks n against the policy bounds.
func (p Policy) Amount(n uint64, name string) error {
	if n == 0 {
		return domain.AmountNotPositive(name)
	}
	if n > p.MaxAmount {
		return domain.AmountTooLarge(name)
	}
	return nil
}

// RequiredAmount checks presence, parses and bounds-checks an amount field.
func (p Policy) RequiredAmount(name string, a *Amount) (uint64, error) {
	if !a.IsSet() {
		return 0, domain.MissingField(name)
	}
	n, err := a.Uint64()
	if err != nil {
		if errors.Is(err, ErrOutOfRange) {
			return 0, domain.AmountTooLarge(name)
		}
		return 0, domain.AmountNotInteger(name, err)
	}
	if err := p.Amount(n, name); err != nil {
		return 0, err
	}
	return n, nil
}

// AmountBounds checks n against the default policy.
func AmountBounds(n uint64, name string) error {
	return DefaultPolicy().Amount(n, name)
}

// Decimals checks the decimals limit.
func Decimals(n uint64) error {
	if n > MaxDecimals {
		return domain.InvalidDecimals(MaxDecimals)
	}
	return nil
}

// RequiredDecimals checks presence, parses and limits the decimals field.
// Zero is a legal value.
func RequiredDecimals(a *Amount) (uint8, error) {
	if !a.IsSet() {
		return 0, domain.MissingField("decimals")
	}
	n, err := a.Uint64()
	if err != nil {
		return 0, domain.InvalidDecimals(MaxDecimals)
	}
	if err := Decimals(n); err != nil {
		return 0, err
	}
	return uint8(n), nil
}

// Message checks the message length limit on the trimmed text.
func Message(s string) error {
	if utf8.RuneCountInString(strings.TrimSpace(s)) > MaxMessageLength {
		return domain.MessageTooLong(MaxMessageLength)
	}
	return nil
}

// Secret decodes a base58 keypair secret.
func Secret(s string) (solana.PrivateKey, error) {
	b, err := codec.DecodeBase58(strings.TrimSpace(s))
	if err != nil {
		return nil, domain.InvalidSecretFormat(err)
	}
	secret, err := codec.ParseSecret(b)
	if err != nil {
		return nil, domain.InvalidSecretLength(err)
	}
	return secret, nil
}

// Signature decodes a base64 ed25519 signature. The scalar half must be
// canonical (below the group order); anything else can never verify.
func Signature(s string) (solana.Signature, error) {
	b, err := codec.DecodeBase64(strings.TrimSpace(s))
	if err != nil {
		return solana.Signature{}, domain.InvalidSignatureFormat(err)
	}
	sig, err := codec.ParseSignature(b)
	if err != nil {
		return solana.Signature{}, domain.InvalidSignatureLength(err)
	}
	if _, err := edwards25519.NewScalar().SetCanonicalBytes(sig[32:]); err != nil {
		return solana.Signature{}, domain.InvalidSignature(err)
	}
	return sig, nil
}

// Distinct returns a same-account rejection when a and b are equal.
func Distinct(a, b solana.PublicKey, field, message string) error {
	if a.Equals(b) {
		return domain.SameAccount(field, message)
	}
	return nil
}
