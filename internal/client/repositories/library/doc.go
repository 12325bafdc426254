// Package library caches the signed-in user's purchased templates in a local
// SQLite file so the CLI can show them while the server is unreachable.
package library
