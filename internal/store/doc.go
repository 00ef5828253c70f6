// Package store defines the persistence interfaces and sentinel errors
// used by the identity service. Implementations live under
// internal/platform.
package store
