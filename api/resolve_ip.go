package api

import (
	"net/http"
	"net/netip"

	"github.com/go-chi/chi"
)

func resolveGeoIP(w http.ResponseWriter, r *http.Request) {
	addr, err := netip.ParseAddr(chi.URLParam(r, "ip"))
	if err != nil {
		abort(w, http.StatusNotAcceptable, err.Error())
		return
	}

	resolveGeo(w, r, addr.Unmap())
}

func resolveProviderIP(w http.ResponseWriter, r *http.Request) {
	addr, err := netip.ParseAddr(chi.URLParam(r, "ip"))
	if err != nil {
		abort(w, http.StatusNotAcceptable, err.Error())
		return
	}

	resolveProvider(w, r, addr.Unmap())
}

func resolveGeo(w http.ResponseWriter, r *http.Request, addr netip.Addr) {
	client := clientFromRequest(r)

	results, err := client.GeoAddrs(r.Context(), []netip.Addr{addr})
	if err != nil {
		abort(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeResponse(w, geoResolveItemStruct{Result: results[0]})
}

func resolveProvider(w http.ResponseWriter, r *http.Request, addr netip.Addr) {
	client := clientFromRequest(r)

	results, err := client.ProviderAddrs(r.Context(), []netip.Addr{addr})
	if err != nil {
		abort(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeResponse(w, providerResolveItemStruct{Result: results[0]})
}
