// Package uid generates identifiers: snowflake numbers for rows, UUIDv7 strings
// for carts and correlation, and opaque random tokens for refresh sessions.
package uid

// NumberID generates unique, roughly time ordered int64 identifiers.
type NumberID interface {
	Generate() int64
}

// StringID generates unique string identifiers.
type StringID interface {
	Generate() string
}
