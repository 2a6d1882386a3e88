// Package storage persists the bearer credential pair across restarts.
// Exactly two keyed string values exist: "token" (access) and "refresh";
// their presence is the only state a portal keeps between runs.
package storage

const (
	KeyToken   = "token"
	KeyRefresh = "refresh"
)

// TokenStore is the durable credential store shared by the session and the
// gateway. Save and Clear mutate both values together, never one of them.
type TokenStore interface {
	Access() string
	Refresh() string
	Save(access, refresh string) error
	Clear() error
}
