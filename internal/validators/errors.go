package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEventID       = errors.New("event id is required")
	ErrUnknownEventType   = errors.New("unknown event type")
	ErrEmptyEnvelope      = errors.New("envelope ciphertext is required")
	ErrPartialEnvelope    = errors.New("hybrid envelope needs both wrapped key and iv")
	ErrEmptyHandle        = errors.New("handle is required")
	ErrEmptyKeyMaterial   = errors.New("key material is required")
	ErrEmptySignature     = errors.New("signature is required")
	ErrEmptyMessageID     = errors.New("message id is required")
	ErrZeroRotationTime   = errors.New("rotation timestamp is required")
	ErrEmptyCiphertext    = errors.New("ciphertext is required")
	ErrEmptyIV            = errors.New("iv is required")
	ErrEmptyVaultKey      = errors.New("vault key is required")
	ErrNegativeVersion    = errors.New("version cannot be negative")
	ErrEmptySessionID     = errors.New("session id is required")
	ErrEmptyPasskeyID     = errors.New("passkey id is required")
	ErrInvalidSyncPayload = errors.New("invalid sync payload")
)
