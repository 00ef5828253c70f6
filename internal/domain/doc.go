// Package domain contains the identity service's core entities and their
// validation rules, independent of storage and transport concerns.
package domain
