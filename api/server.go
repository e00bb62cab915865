package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/2ip-api/twoip/twoiplib"
)

type contextKey string

const ctxKeyClient = contextKey("client")

func MakeServer(client *twoiplib.Client) *chi.Mux {
	router := chi.NewRouter()

	ctxClient := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), ctxKeyClient, client)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}

	router.Use(middleware.StripSlashes)
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(middleware.SetHeader("Content-Type", "application/json"))
	router.Use(ctxClient)

	router.Get("/", selfResolve)
	router.Get("/geo/{ip}", resolveGeoIP)
	router.Get("/provider/{ip}", resolveProviderIP)
	router.Post("/geo", resolveGeoBatch)
	router.Post("/provider", resolveProviderBatch)
	router.Get("/stats", usageStats)

	return router
}

func clientFromRequest(r *http.Request) *twoiplib.Client {
	return r.Context().Value(ctxKeyClient).(*twoiplib.Client)
}

func abort(w http.ResponseWriter, code int, message string) {
	msg, _ := json.Marshal(map[string]string{"error": message})
	http.Error(w, string(msg), code)
}

func writeResponse(w http.ResponseWriter, data interface{}) {
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Errorf("Cannot write response: %s", err.Error())
	}
}
