package domain

// Kind classifies a rejected request.
type Kind string

const (
	KindInvalidRequest         Kind = "INVALID_REQUEST"
	KindMissingField           Kind = "MISSING_FIELD"
	KindInvalidAddress         Kind = "INVALID_ADDRESS"
	KindInvalidAmount          Kind = "INVALID_AMOUNT"
	KindInvalidDecimals        Kind = "INVALID_DECIMALS"
	KindMessageTooLong         Kind = "MESSAGE_TOO_LONG"
	KindInvalidSecretFormat    Kind = "INVALID_SECRET_FORMAT"
	KindInvalidSecretLength    Kind = "INVALID_SECRET_LENGTH"
	KindInvalidSecret          Kind = "INVALID_SECRET"
	KindInvalidSignatureFormat Kind = "INVALID_SIGNATURE_FORMAT"
	KindInvalidSignatureLength Kind = "INVALID_SIGNATURE_LENGTH"
	KindInvalidSignature       Kind = "INVALID_SIGNATURE"
	KindSameAccount            Kind = "SAME_ACCOUNT"
	KindBuildError             Kind = "BUILD_ERROR"
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the kind is a known value.
func (k Kind) IsValid() bool {
	switch k {
	case KindInvalidRequest, KindMissingField, KindInvalidAddress, KindInvalidAmount,
		KindInvalidDecimals, KindMessageTooLong, KindInvalidSecretFormat,
		KindInvalidSecretLength, KindInvalidSecret, KindInvalidSignatureFormat,
		KindInvalidSignatureLength, KindInvalidSignature, KindSameAccount, KindBuildError:
		return true
	}
	return false
}
