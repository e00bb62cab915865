package twoiplib

import (
	"net/http"
	"net/netip"
)

// Result holds the fields common to both lookup kinds. Err keeps the
// human readable failure category for the address, domain fields of
// the embedding record stay unset when it is present.
type Result struct {
	IP          netip.Addr `json:"ip"`
	HTTPCode    int        `json:"http_code,omitempty"`
	Err         string     `json:"error,omitempty"`
	RawResponse string     `json:"api_response_raw,omitempty"`
}

// Success tells if the lookup produced a usable record: the API
// answered with HTTP 200 and no error was recorded.
func (r Result) Success() bool {
	return r.HTTPCode == http.StatusOK && r.Err == ""
}

// SpecialDesignation returns the IANA special-purpose registry
// designation of the address, or an empty string for an ordinary one.
func (r Result) SpecialDesignation() string {
	if entry, ok := findSpecial(r.IP); ok {
		return entry.designation
	}

	return ""
}

// IsGlobal tells if the address is globally reachable. Addresses
// absent from the special-purpose registry are considered global.
func (r Result) IsGlobal() bool {
	if entry, ok := findSpecial(r.IP); ok {
		return entry.global
	}

	return true
}

// IsPrivate tells if the address belongs to a private-use allocation
// such as RFC 1918 ranges or IPv6 ULA. Loopback, link-local and other
// special blocks are not private in this sense, check IsGlobal for
// those.
func (r Result) IsPrivate() bool {
	if entry, ok := findSpecial(r.IP); ok {
		return entry.private
	}

	return false
}
