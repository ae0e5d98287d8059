package domain

import (
	"errors"
	"fmt"
)

// Error is a caller-facing rejection. Message is returned verbatim in the
// error envelope; Kind and Field are for matching and metrics.
type Error struct {
	Kind    Kind
	Field   string
	Message string
	Err     error // underlying cause, never shown to callers
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error by kind, and by field when the target names one.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Field == "" || t.Field == e.Field
}

// Sentinels for errors.Is checks.
var (
	ErrInvalidRequest         = &Error{Kind: KindInvalidRequest}
	ErrMissingField           = &Error{Kind: KindMissingField}
	ErrInvalidAddress         = &Error{Kind: KindInvalidAddress}
	ErrInvalidAmount          = &Error{Kind: KindInvalidAmount}
	ErrInvalidDecimals        = &Error{Kind: KindInvalidDecimals}
	ErrMessageTooLong         = &Error{Kind: KindMessageTooLong}
	ErrInvalidSecretFormat    = &Error{Kind: KindInvalidSecretFormat}
	ErrInvalidSecretLength    = &Error{Kind: KindInvalidSecretLength}
	ErrInvalidSecret          = &Error{Kind: KindInvalidSecret}
	ErrInvalidSignatureFormat = &Error{Kind: KindInvalidSignatureFormat}
	ErrInvalidSignatureLength = &Error{Kind: KindInvalidSignatureLength}
	ErrInvalidSignature       = &Error{Kind: KindInvalidSignature}
	ErrSameAccount            = &Error{Kind: KindSameAccount}
	ErrBuild                  = &Error{Kind: KindBuildError}
)

// InvalidRequest reports an undecodable request body.
func InvalidRequest(cause error) *Error {
	return &Error{Kind: KindInvalidRequest, Message: "Invalid JSON body", Err: cause}
}

// MissingField reports an absent or blank required field.
func MissingField(field string) *Error {
	return &Error{Kind: KindMissingField, Field: field, Message: fmt.Sprintf("Missing required field: %s", field)}
}

// InvalidAddressFormat reports an address whose text length is out of range.
func InvalidAddressFormat(field string) *Error {
	return &Error{Kind: KindInvalidAddress, Field: field, Message: fmt.Sprintf("Invalid %s address format", field)}
}

// InvalidAddress reports an address that does not decode to 32 bytes.
func InvalidAddress(field string, cause error) *Error {
	return &Error{Kind: KindInvalidAddress, Field: field, Message: fmt.Sprintf("Invalid %s address", field), Err: cause}
}

// AmountNotPositive reports a zero amount.
func AmountNotPositive(field string) *Error {
	return &Error{Kind: KindInvalidAmount, Field: field, Message: fmt.Sprintf("Invalid %s - amount must be greater than 0", field)}
}

// AmountTooLarge reports an amount above the configured ceiling.
func AmountTooLarge(field string) *Error {
	return &Error{Kind: KindInvalidAmount, Field: field, Message: fmt.Sprintf("Invalid %s - amount too large", field)}
}

// AmountNotInteger reports an amount that is not a non-negative integer.
func AmountNotInteger(field string, cause error) *Error {
	return &Error{Kind: KindInvalidAmount, Field: field, Message: fmt.Sprintf("Invalid %s - must be a non-negative integer", field), Err: cause}
}

// InvalidDecimals reports a decimals value above the token program limit.
func InvalidDecimals(max int) *Error {
	return &Error{Kind: KindInvalidDecimals, Field: "decimals", Message: fmt.Sprintf("Invalid decimals - maximum allowed is %d", max)}
}

// MessageTooLong reports a message above the length limit.
func MessageTooLong(max int) *Error {
	return &Error{Kind: KindMessageTooLong, Field: "message", Message: fmt.Sprintf("Message too long - maximum %d characters", max)}
}

// InvalidSecretFormat reports a secret that is not valid base58.
func InvalidSecretFormat(cause error) *Error {
	return &Error{Kind: KindInvalidSecretFormat, Field: "secret", Message: "Invalid secret key format", Err: cause}
}

// InvalidSecretLength reports a secret that does not decode to 64 bytes.
func InvalidSecretLength(cause error) *Error {
	return &Error{Kind: KindInvalidSecretLength, Field: "secret", Message: "Invalid secret key length", Err: cause}
}

// InvalidSecret reports a secret whose public half does not match its seed.
func InvalidSecret(cause error) *Error {
	return &Error{Kind: KindInvalidSecret, Field: "secret", Message: "Invalid secret key", Err: cause}
}

// InvalidSignatureFormat reports a signature that is not valid base64.
func InvalidSignatureFormat(cause error) *Error {
	return &Error{Kind: KindInvalidSignatureFormat, Field: "signature", Message: "Invalid signature format", Err: cause}
}

// InvalidSignatureLength reports a signature that does not decode to 64 bytes.
func InvalidSignatureLength(cause error) *Error {
	return &Error{Kind: KindInvalidSignatureLength, Field: "signature", Message: "Invalid signature length", Err: cause}
}

// InvalidSignature reports a signature that can never verify.
func InvalidSignature(cause error) *Error {
	return &Error{Kind: KindInvalidSignature, Field: "signature", Message: "Invalid signature", Err: cause}
}

// SameAccount reports two roles that must not share an account.
// Message is specific to the pairing, e.g. "Mint and mint authority cannot be the same".
func SameAccount(field, message string) *Error {
	return &Error{Kind: KindSameAccount, Field: field, Message: message}
}

// BuildError reports an instruction encoder failure.
func BuildError(cause error) *Error {
	return &Error{Kind: KindBuildError, Message: fmt.Sprintf("Failed to create instruction: %v", cause), Err: cause}
}

// AsError extracts a *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
