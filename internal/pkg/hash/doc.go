// Package hash hashes and verifies secrets: customer passwords (argon2id or
// bcrypt) and refresh tokens (HMAC-SHA256).
package hash
