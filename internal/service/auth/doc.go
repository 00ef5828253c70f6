// Package auth implements token issuance and password handling for the
// identity service, driven by the validated JWT and security
// configurations.
package auth
