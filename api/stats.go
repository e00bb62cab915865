package api

import (
	"net/http"
)

func usageStats(w http.ResponseWriter, r *http.Request) {
	client := clientFromRequest(r)

	response := usageStatsResponseStruct{}
	response.Build(client.UsageStats())

	writeResponse(w, response)
}
