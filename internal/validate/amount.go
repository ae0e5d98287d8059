package validate

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount parse errors.
var (
	ErrNotNumeric  = errors.New("not a number")
	ErrNegative    = errors.New("negative value")
	ErrFractional  = errors.New("fractional value")
	ErrOutOfRange  = errors.New("value exceeds uint64")
	errTextTooLong = errors.New("numeric text too long")
)

const (
	maxAmountText = 64
	maxExponent   = 40
)

// Amount is a lenient unsigned integer field: it accepts a JSON number or a
// JSON string holding one. null and blank strings count as absent.
type Amount struct {
	raw string
	set bool
}

// NewAmount returns an Amount holding the given text, as if decoded from JSON.
func NewAmount(text string) *Amount {
	a := &Amount{raw: strings.TrimSpace(text)}
	a.set = a.raw != ""
	return a
}

// UnmarshalJSON implements json.Unmarshaler. It never fails on a well-formed
// JSON value; parsing is deferred to Uint64 so the rejection names the field.
func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*a = Amount{}
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		s = str
	}
	*a = *NewAmount(s)
	return nil
}

// MarshalJSON renders the amount as the text it was given.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.set {
		return []byte("null"), nil
	}
	return json.Marshal(a.raw)
}

// IsSet reports whether a value was supplied.
func (a *Amount) IsSet() bool {
	return a != nil && a.set
}

// Uint64 parses the value. Integral forms such as "1e6" and "10.0" are accepted.
func (a *Amount) Uint64() (uint64, error) {
	if !a.IsSet() {
		return 0, ErrNotNumeric
	}
	if len(a.raw) > maxAmountText {
		return 0, errTextTooLong
	}
	d, err := decimal.NewFromString(a.raw)
	if err != nil {
		return 0, ErrNotNumeric
	}
	if d.IsZero() {
		return 0, nil
	}
	if d.IsNegative() {
		return 0, ErrNegative
	}
	// bound the exponent before any big.Int work
	exp := d.Exponent()
	if exp > maxExponent {
		return 0, ErrOutOfRange
	}
	// the coefficient has at most maxAmountText digits, so a larger negative
	// exponent cannot leave an integer
	if exp < -maxAmountText {
		return 0, ErrFractional
	}
	if !d.IsInteger() {
		return 0, ErrFractional
	}
	bi := d.BigInt()
	if !bi.IsUint64() {
		return 0, ErrOutOfRange
	}
	return bi.Uint64(), nil
}
