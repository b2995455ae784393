package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/BetterCallFirewall/nlog-proxy/internal/browser"
	"github.com/BetterCallFirewall/nlog-proxy/internal/config"
	"github.com/BetterCallFirewall/nlog-proxy/internal/openpanel"
	"github.com/BetterCallFirewall/nlog-proxy/internal/relay"
	"github.com/BetterCallFirewall/nlog-proxy/internal/web"
	"github.com/BetterCallFirewall/nlog-proxy/internal/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	hub := websocket.NewHub()
	go hub.Run()
	defer hub.Stop()

	client := openpanel.NewClient(openpanel.ClientConfig{
		BaseURL:      cfg.OpenPanel.APIURL,
		ClientID:     cfg.OpenPanel.ClientID,
		ClientSecret: cfg.OpenPanel.ClientSecret,
		Timeout:      cfg.OpenPanel.Timeout,
	})
	service := relay.NewService(client, relay.WithBroadcaster(hub))
	server := web.NewServer(cfg, service, hub)

	if err := server.Listen(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	printBanner(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Browser.AutoOpen {
		go browser.NewLauncher().OpenAfter(ctx, cfg.Browser.Delay, cfg.TestPageURL())
	}

	errCh := make(chan error, 1)
	go func() { errCh <- server.Serve() }()

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case <-ctx.Done():
		log.Println("🛑 Shutting down...")
		if err := server.Stop(); err != nil {
			log.Printf("Graceful shutdown failed: %v", err)
		}
	}
}
