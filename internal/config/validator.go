package config

import (
	"errors"
	"strings"
	"time"
)

// ErrNilConfiguration is returned when a nil CompleteConfiguration is passed
// to ValidateComplete or ValidateWithDetails. A nil configuration is a caller
// bug, not a policy failure, so it is surfaced as an error rather than a
// negative verdict.
var ErrNilConfiguration = errors.New("configuration cannot be nil")

// Maximum accepted JWT lifetime is 24 hours.
const maxJWTExpirationSeconds = 86400

// minSecretLen is the entropy floor for HMAC signing secrets.
const minSecretLen = 32

// minPasswordLen is the weakest password minimum the service will run with.
const minPasswordLen = 8

// dbSchemes are the connection-string prefixes the service knows how to
// dial. Anything else is rejected up front rather than failing at connect
// time with a driver error.
var dbSchemes = []string{
	"postgres://",
	"postgresql://",
	"mysql://",
	"sqlserver://",
	"oracle://",
}

// signingAlgorithms is the closed allow-list of JWT signing algorithms.
// Matching is exact and case-sensitive; in particular "none" and lowercase
// variants are rejected.
var signingAlgorithms = map[string]struct{}{
	"HS256": {},
	"HS384": {},
	"HS512": {},
	"RS256": {},
	"RS384": {},
	"RS512": {},
}

// Validator judges domain configurations against the service's bootstrap
// policy. It carries no state: every method is a pure function of its
// argument, so a single Validator is safe to share across goroutines and
// repeated calls with the same input always produce the same verdict.
type Validator struct{}

// NewValidator returns a Validator ready for use.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateDatabase reports whether the database configuration is acceptable.
// It requires a URL with a recognized connection scheme, non-blank
// credentials, and a max pool size in (0, 1000].
func (v *Validator) ValidateDatabase(cfg *DatabaseConfig) bool {
	if cfg == nil {
		return false
	}
	if !hasRecognizedScheme(cfg.URL) {
		return false
	}
	if strings.TrimSpace(cfg.Username) == "" || strings.TrimSpace(cfg.Password) == "" {
		return false
	}
	return cfg.MaxPoolSize > 0 && cfg.MaxPoolSize <= 1000
}

// ValidateJWT reports whether the JWT issuance configuration is acceptable.
// The secret must be at least 32 characters, the expiration between one
// second and 24 hours inclusive, the issuer non-blank, and the signing
// algorithm a member of the fixed allow-list.
func (v *Validator) ValidateJWT(cfg *JWTConfig) bool {
	if cfg == nil {
		return false
	}
	if len(cfg.Secret) < minSecretLen {
		return false
	}
	if cfg.ExpirationTime < 1 || cfg.ExpirationTime > maxJWTExpirationSeconds {
		return false
	}
	if strings.TrimSpace(cfg.Issuer) == "" {
		return false
	}
	_, ok := signingAlgorithms[cfg.SigningAlgorithm]
	return ok
}

// ValidateSecurity reports whether the security policy is acceptable.
// A password policy with a minimum length of at least 8 is mandatory.
// The wildcard CORS origin "*" is rejected only when the environment is
// "production"; development and test environments may use it.
func (v *Validator) ValidateSecurity(cfg *SecurityConfig) bool {
	if cfg == nil || cfg.PasswordPolicy == nil {
		return false
	}
	if cfg.PasswordPolicy.MinLength < minPasswordLen {
		return false
	}
	if cfg.Environment == EnvProduction && cfg.Cors != nil {
		for _, origin := range cfg.Cors.AllowedOrigins {
			if origin == "*" {
				return false
			}
		}
	}
	return true
}

// ValidateApplication reports whether the application configuration is
// acceptable: a server section with a port in [1, 65535] and a non-blank
// host.
func (v *Validator) ValidateApplication(cfg *ApplicationConfig) bool {
	if cfg == nil || cfg.Server == nil {
		return false
	}
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return false
	}
	return strings.TrimSpace(cfg.Server.Host) != ""
}

// ValidateComplete validates every domain configuration plus the
// cross-domain rules and returns the combined verdict.
//
// Passing a nil configuration returns ErrNilConfiguration rather than
// false: the caller must be able to distinguish "structurally impossible
// to evaluate" from "evaluated and rejected".
func (v *Validator) ValidateComplete(cfg *CompleteConfiguration) (bool, error) {
	if cfg == nil {
		return false, ErrNilConfiguration
	}
	return v.ValidateDatabase(cfg.Database) &&
		v.ValidateJWT(cfg.JWT) &&
		v.ValidateSecurity(cfg.Security) &&
		v.ValidateApplication(cfg.Application) &&
		v.checkCrossRules(cfg), nil
}

// ValidateWithDetails runs the same checks as ValidateComplete but, instead
// of short-circuiting, accumulates one descriptive error per failing domain
// and a separate entry for cross-domain violations. Granularity is
// deliberately domain-level, not field-level.
func (v *Validator) ValidateWithDetails(cfg *CompleteConfiguration) (*ValidationResult, error) {
	if cfg == nil {
		return nil, ErrNilConfiguration
	}

	result := &ValidationResult{}
	if !v.ValidateDatabase(cfg.Database) {
		result.addError("invalid database configuration")
	}
	if !v.ValidateJWT(cfg.JWT) {
		result.addError("invalid JWT configuration")
	}
	if !v.ValidateSecurity(cfg.Security) {
		result.addError("invalid security configuration")
	}
	if !v.ValidateApplication(cfg.Application) {
		result.addError("invalid application configuration")
	}
	if !v.checkCrossRules(cfg) {
		result.addError("cross-domain violation: JWT expiration exceeds session timeout")
	}
	return result, nil
}

// checkCrossRules evaluates invariants spanning more than one domain
// configuration. The only mandatory rule today: an access token must not
// outlive the session that issued it, so the JWT expiration (seconds) must
// not exceed the session timeout. The rule is vacuously satisfied when
// either side is absent.
func (v *Validator) checkCrossRules(cfg *CompleteConfiguration) bool {
	if cfg.JWT == nil || cfg.Security == nil || cfg.Security.Session == nil {
		return true
	}
	timeout := cfg.Security.Session.SessionTimeout
	if timeout <= 0 {
		return true
	}
	return time.Duration(cfg.JWT.ExpirationTime)*time.Second <= timeout
}

func hasRecognizedScheme(url string) bool {
	for _, scheme := range dbSchemes {
		if strings.HasPrefix(url, scheme) {
			return true
		}
	}
	return false
}
