package auth

import "errors"

// Common authentication service errors.
var (
	// ErrInvalidToken indicates the token format is invalid or the
	// signature doesn't match.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates the token's nbf claim is in the future.
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrUnsupportedAlgorithm indicates the configured signing algorithm
	// cannot be used by this service. RSA algorithms pass configuration
	// validation but need key material this deployment does not carry.
	ErrUnsupportedAlgorithm = errors.New("unsupported signing algorithm for token issuance")

	// ErrRefreshDisabled indicates refresh tokens are not enabled in the
	// JWT configuration.
	ErrRefreshDisabled = errors.New("refresh tokens are disabled")

	// ErrWrongTokenType indicates a token of one type was presented where
	// another was required.
	ErrWrongTokenType = errors.New("wrong token type")
)
