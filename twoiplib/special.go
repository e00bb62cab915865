package twoiplib

import (
	"net/netip"

	"github.com/asergeyev/nradix"
)

// specialEntry describes one block of the IANA special-purpose address
// registry.
type specialEntry struct {
	designation string
	global      bool
	private     bool
}

var specialV4Blocks = map[string]specialEntry{
	"0.0.0.0/8":          {designation: "This host on this network"},
	"10.0.0.0/8":         {designation: "Private-Use", private: true},
	"100.64.0.0/10":      {designation: "Shared Address Space"},
	"127.0.0.0/8":        {designation: "Loopback"},
	"169.254.0.0/16":     {designation: "Link Local"},
	"172.16.0.0/12":      {designation: "Private-Use", private: true},
	"192.0.0.0/24":       {designation: "IETF Protocol Assignments"},
	"192.0.2.0/24":       {designation: "Documentation (TEST-NET-1)"},
	"192.88.99.0/24":     {designation: "6to4 Relay Anycast", global: true},
	"192.168.0.0/16":     {designation: "Private-Use", private: true},
	"198.18.0.0/15":      {designation: "Benchmarking"},
	"198.51.100.0/24":    {designation: "Documentation (TEST-NET-2)"},
	"203.0.113.0/24":     {designation: "Documentation (TEST-NET-3)"},
	"224.0.0.0/4":        {designation: "Multicast"},
	"240.0.0.0/4":        {designation: "Reserved"},
	"255.255.255.255/32": {designation: "Limited Broadcast"},
}

var specialV6Blocks = map[string]specialEntry{
	"::/128":        {designation: "Unspecified Address"},
	"::1/128":       {designation: "Loopback Address"},
	"64:ff9b::/96":  {designation: "IPv4-IPv6 Translation", global: true},
	"100::/64":      {designation: "Discard-Only Address Block"},
	"2001::/23":     {designation: "IETF Protocol Assignments"},
	"2001:db8::/32": {designation: "Documentation"},
	"2002::/16":     {designation: "6to4", global: true},
	"fc00::/7":      {designation: "Unique-Local", private: true},
	"fe80::/10":     {designation: "Link-Local Unicast"},
	"ff00::/8":      {designation: "Multicast"},
}

// Address families live in separate trees so prefixes of one family
// can never shadow lookups of the other.
var (
	specialV4Tree = makeSpecialTree(specialV4Blocks)
	specialV6Tree = makeSpecialTree(specialV6Blocks)
)

func makeSpecialTree(blocks map[string]specialEntry) *nradix.Tree {
	tree := nradix.NewTree(0)

	for cidr, entry := range blocks {
		tree.AddCIDR(cidr, entry) // nolint: errcheck
	}

	return tree
}

func findSpecial(addr netip.Addr) (specialEntry, bool) {
	if !addr.IsValid() {
		return specialEntry{}, false
	}

	addr = addr.Unmap()

	tree := specialV6Tree
	suffix := "/128"

	if addr.Is4() {
		tree = specialV4Tree
		suffix = "/32"
	}

	data, err := tree.FindCIDR(addr.String() + suffix)
	if err != nil || data == nil {
		return specialEntry{}, false
	}

	entry, ok := data.(specialEntry)

	return entry, ok
}
