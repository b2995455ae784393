package middlewares

import (
	"fmt"
	"log"
	"net/http"

	"github.com/BetterCallFirewall/nlog-proxy/internal/utils"
)

// Recover turns a handler panic into a generic JSON 500
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("%v", rec)
			}
			log.Printf("❌ Server error: %v", err)
			utils.WriteInternalError(w, err)
		}()

		next.ServeHTTP(w, r)
	})
}

// Chain applies middlewares so the first one is outermost
func Chain(h http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
