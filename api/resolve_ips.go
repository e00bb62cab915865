package api

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strings"
)

func resolveGeoBatch(w http.ResponseWriter, r *http.Request) {
	requestBody, ok := readResolveRequest(w, r)
	if !ok {
		return
	}

	client := clientFromRequest(r)

	results, err := client.GeoAddrs(r.Context(), requestBody.Ips)
	if err != nil {
		abort(w, http.StatusInternalServerError, err.Error())
		return
	}

	response := geoResolveResponseStruct{}
	response.Build(results)

	writeResponse(w, response)
}

func resolveProviderBatch(w http.ResponseWriter, r *http.Request) {
	requestBody, ok := readResolveRequest(w, r)
	if !ok {
		return
	}

	client := clientFromRequest(r)

	results, err := client.ProviderAddrs(r.Context(), requestBody.Ips)
	if err != nil {
		abort(w, http.StatusInternalServerError, err.Error())
		return
	}

	response := providerResolveResponseStruct{}
	response.Build(results)

	writeResponse(w, response)
}

func readResolveRequest(w http.ResponseWriter, r *http.Request) (*ipResolveRequestStruct, bool) {
	if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		abort(w, http.StatusUnsupportedMediaType, "Incorrect content type")
		return nil, false
	}

	bodyBytes, err := ioutil.ReadAll(r.Body)

	r.Body.Close()

	if err != nil {
		abort(w, http.StatusBadRequest, "Cannot read request body")
		return nil, false
	}

	errs, err := resolveRequestJSONSchema.ValidateBytes(r.Context(), bodyBytes)
	if err != nil {
		abort(w, http.StatusInternalServerError, "Cannot validate body")
		return nil, false
	}

	if len(errs) > 0 {
		abort(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}

	requestBody := &ipResolveRequestStruct{}
	if err := json.Unmarshal(bodyBytes, requestBody); err != nil {
		abort(w, http.StatusNotAcceptable, err.Error())
		return nil, false
	}

	return requestBody, true
}
