// Package pgxcasbin persists casbin policies in Postgres through pgx and keeps
// enforcers on every instance in sync with LISTEN/NOTIFY.
package pgxcasbin
