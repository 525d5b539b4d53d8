// Package jwt issues and verifies customer access tokens (HS512) and carries
// verified claims on a request context.
package jwt
