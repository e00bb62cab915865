package api

import (
	"net"
	"net/http"
	"net/netip"
)

func selfResolve(w http.ResponseWriter, r *http.Request) {
	host := r.RemoteAddr
	if splitted, _, err := net.SplitHostPort(host); err == nil {
		host = splitted
	}

	addr, err := netip.ParseAddr(host)
	if err != nil {
		abort(w, http.StatusInternalServerError, "Cannot detect your IP address")
		return
	}

	resolveGeo(w, r, addr.Unmap())
}
