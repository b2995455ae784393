package web

import (
	"context"
	"errors"
	"io/fs"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/BetterCallFirewall/nlog-proxy/internal/config"
	"github.com/BetterCallFirewall/nlog-proxy/internal/middlewares"
	"github.com/BetterCallFirewall/nlog-proxy/internal/relay"
	"github.com/BetterCallFirewall/nlog-proxy/internal/websocket"
	"github.com/BetterCallFirewall/nlog-proxy/web/static"
)

const ServiceName = "nlog-proxy-server"

type Server struct {
	config   *config.Config
	relay    *relay.Service
	hub      *websocket.Hub
	static   fs.FS
	server   *http.Server
	listener net.Listener
}

func NewServer(cfg *config.Config, relaySvc *relay.Service, hub *websocket.Hub) *Server {
	return &Server{
		config: cfg,
		relay:  relaySvc,
		hub:    hub,
		static: StaticFS(cfg),
	}
}

// StaticFS отдает STATIC_DIR если задан, иначе встроенную тестовую страницу
func StaticFS(cfg *config.Config) fs.FS {
	if cfg.Server.StaticDir != "" {
		return os.DirFS(cfg.Server.StaticDir)
	}
	return static.FS
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /proxy", s.relay.HandleProxy)
	mux.HandleFunc("POST /nlog", s.relay.HandleNlog)

	// WebSocket endpoint для live-событий тестовой страницы
	if s.hub != nil {
		mux.HandleFunc("GET /ws", s.hub.ServeWS)
	}

	// всё остальное - статика или 404
	mux.HandleFunc("/", s.handleStatic)

	return middlewares.Chain(mux,
		middlewares.AccessLog,
		middlewares.Recover,
		middlewares.CORS,
	)
}

// Listen binds the listen address; a failure here is fatal for the process
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.config.ListenAddr())
	if err != nil {
		return err
	}
	s.listener = ln
	s.server = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return nil
}

func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Serve blocks until Stop; http.ErrServerClosed is not reported
func (s *Server) Serve() error {
	if s.server == nil {
		return errors.New("server is not listening")
	}
	if err := s.server.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Start() error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve()
}

func (s *Server) Stop() error {
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.server.Shutdown(ctx)
	}
	return nil
}
