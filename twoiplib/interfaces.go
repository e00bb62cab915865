package twoiplib

import (
	"net/http"
	"net/netip"
)

// HTTPClient is an interface of the HTTP client which is used to talk
// to the API. Usually you want an instance made by NewHTTPClient but
// tests and exotic setups may supply their own implementation.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Cache stores already resolved records so repeated addresses within a
// session do not hit the API again. Values are JSON-encoded records.
// Implementations have to be safe for concurrent use. Only successful
// records are ever stored.
type Cache interface {
	Add(key string, value []byte)
	Get(key string) ([]byte, bool)
}

// Logger is a logging interface twoiplib expects. The library does not
// write anything on its own, it just emits events.
type Logger interface {
	LookupError(addr netip.Addr, kind LookupKind, err error)
	InvalidAddress(input string, err error)
}

type noopLogger struct{}

func (n noopLogger) LookupError(addr netip.Addr, kind LookupKind, err error) {}

func (n noopLogger) InvalidAddress(input string, err error) {}
