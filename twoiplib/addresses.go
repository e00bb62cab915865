package twoiplib

import (
	"net/netip"
	"strings"
)

// NormalizeAddresses validates and canonicalizes a list of IP address
// inputs. Duplicates are removed keeping the first occurrence order,
// IPv4-mapped IPv6 addresses collapse into their IPv4 form.
//
// In strict mode the first invalid input aborts the whole list with
// InvalidAddressError. Otherwise invalid inputs are skipped and
// reported through the logger.
//
// The function is idempotent: normalizing an already normalized list
// gives the same list back.
func NormalizeAddresses(inputs []string, strict bool, logger Logger) ([]netip.Addr, error) {
	if logger == nil {
		logger = noopLogger{}
	}

	rv := make([]netip.Addr, 0, len(inputs))
	seen := make(map[netip.Addr]struct{}, len(inputs))

	for _, v := range inputs {
		addr, err := netip.ParseAddr(strings.TrimSpace(v))
		if err != nil {
			if strict {
				return nil, &InvalidAddressError{Input: v, Err: err}
			}

			logger.InvalidAddress(v, err)

			continue
		}

		addr = addr.Unmap()

		if _, ok := seen[addr]; ok {
			continue
		}

		seen[addr] = struct{}{}
		rv = append(rv, addr)
	}

	return rv, nil
}

// DedupAddrs removes duplicates from an already validated address list
// keeping the first occurrence order.
func DedupAddrs(addrs []netip.Addr) []netip.Addr {
	rv := make([]netip.Addr, 0, len(addrs))
	seen := make(map[netip.Addr]struct{}, len(addrs))

	for _, v := range addrs {
		v = v.Unmap()

		if _, ok := seen[v]; ok {
			continue
		}

		seen[v] = struct{}{}
		rv = append(rv, v)
	}

	return rv
}
