package twoiplib

import (
	"fmt"
	"net/netip"
	"net/url"
	"strings"

	"github.com/EvilSuperstars/go-cidrman"
)

// ProviderResult is a single provider lookup record. Prefix is derived
// from Route and Mask, never taken from the wire. Unset address fields
// render as empty strings in JSON output.
type ProviderResult struct {
	Result

	Name             string       `json:"name,omitempty"`
	NameRus          string       `json:"name_rus,omitempty"`
	Website          string       `json:"website,omitempty"`
	AutonomousSystem int64        `json:"autonomous_system,omitempty"`
	RangeStart       netip.Addr   `json:"range_start"`
	RangeEnd         netip.Addr   `json:"range_end"`
	Route            netip.Addr   `json:"route"`
	Mask             int          `json:"mask,omitempty"`
	Prefix           netip.Prefix `json:"prefix"`
}

// RangeCIDRs splits the provider address range into a minimal list of
// CIDR blocks.
func (p ProviderResult) RangeCIDRs() ([]netip.Prefix, error) {
	if !p.RangeStart.IsValid() || !p.RangeEnd.IsValid() {
		return nil, ErrNoRange
	}

	subnets, err := cidrman.IPRangeToCIDRs(p.RangeStart.String(), p.RangeEnd.String())
	if err != nil {
		return nil, fmt.Errorf("cannot split a range into subnets: %w", err)
	}

	rv := make([]netip.Prefix, 0, len(subnets))

	for _, v := range subnets {
		prefix, err := netip.ParsePrefix(v)
		if err != nil {
			return nil, fmt.Errorf("cannot parse a subnet %s: %w", v, err)
		}

		rv = append(rv, prefix)
	}

	return rv, nil
}

// WebsiteURL parses the provider website into a URL. The API usually
// sends bare host names, those are normalized to https.
func (p ProviderResult) WebsiteURL() (*url.URL, error) {
	if p.Website == "" {
		return nil, ErrNoWebsite
	}

	raw := p.Website

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("cannot parse a website url: %w", err)
	}

	return u, nil
}
