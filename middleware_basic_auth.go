package main

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"
)

type basicAuthMiddleware struct {
	handler  http.Handler
	user     []byte
	password []byte
}

// newBasicAuthMiddleware parses a user:password pair. An empty user or
// password is allowed, a missing colon is not.
func newBasicAuthMiddleware(handler http.Handler, auth string) (*basicAuthMiddleware, error) {
	parts := strings.SplitN(auth, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("incorrect auth %q, expected user:password", auth)
	}

	return &basicAuthMiddleware{
		handler:  handler,
		user:     []byte(parts[0]),
		password: []byte(parts[1]),
	}, nil
}

func (b *basicAuthMiddleware) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	user, pass, _ := req.BasicAuth()

	userBytes := []byte(user)
	passBytes := []byte(pass)

	if subtle.ConstantTimeCompare(b.user, userBytes)+subtle.ConstantTimeCompare(b.password, passBytes) == 2 {
		b.handler.ServeHTTP(w, req)

		return
	}

	w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
	http.Error(w, "Authentication is required", http.StatusUnauthorized)
}
