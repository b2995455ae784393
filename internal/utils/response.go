package utils

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/BetterCallFirewall/nlog-proxy/internal/models"
)

// ISOTimeLayout matches JavaScript's Date.toISOString output
const ISOTimeLayout = "2006-01-02T15:04:05.000Z"

func ISOTimestamp(t time.Time) string {
	return t.UTC().Format(ISOTimeLayout)
}

// WriteJSON пишет статус и тело в JSON
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if !bodyAllowed(status) {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("❌ Failed to write response: %v", err)
	}
}

func WriteInternalError(w http.ResponseWriter, err error) {
	WriteJSON(w, http.StatusInternalServerError, models.InternalErrorResponse{
		Error:   "Internal Server Error",
		Message: err.Error(),
	})
}

func Elapsed(start time.Time) int64 {
	ms := time.Since(start).Milliseconds()
	if ms < 0 {
		return 0
	}
	return ms
}

func bodyAllowed(status int) bool {
	switch {
	case status >= 100 && status <= 199:
		return false
	case status == http.StatusNoContent, status == http.StatusNotModified:
		return false
	}
	return true
}
