package web

import (
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/BetterCallFirewall/nlog-proxy/internal/models"
	"github.com/BetterCallFirewall/nlog-proxy/internal/utils"
)

var availableEndpoints = []string{
	"GET  /health - Health check",
	"POST /proxy  - JSON proxy forwarding",
	"POST /nlog   - Nlog format conversion (in development)",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, models.HealthResponse{
		Status:       "ok",
		Service:      ServiceName,
		Framework:    "net/http",
		Timestamp:    utils.ISOTimestamp(time.Now()),
		OpenPanelAPI: s.config.OpenPanel.APIURL,
	})
}

func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		s.handleNotFound(w, r)
		return
	}

	name := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
	if name == "" {
		s.handleNotFound(w, r)
		return
	}

	info, err := fs.Stat(s.static, name)
	if err != nil || info.IsDir() {
		s.handleNotFound(w, r)
		return
	}

	http.ServeFileFS(w, r, s.static, name)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusNotFound, models.NotFoundResponse{
		Error:              "Not Found",
		Message:            fmt.Sprintf("Path %s does not exist", r.URL.RequestURI()),
		AvailableEndpoints: availableEndpoints,
	})
}
