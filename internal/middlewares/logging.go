package middlewares

import (
	"log"
	"net/http"
	"time"

	"github.com/BetterCallFirewall/nlog-proxy/internal/utils"
)

func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("[%s] %s %s", utils.ISOTimestamp(time.Now()), r.Method, r.URL.RequestURI())
		next.ServeHTTP(w, r)
	})
}
