package main

import (
	"log"

	"github.com/BetterCallFirewall/nlog-proxy/internal/config"
)

func configured(value string) string {
	if value == "" {
		return "Not configured"
	}
	return "Configured"
}

func printBanner(cfg *config.Config) {
	local := cfg.LocalURL()

	log.Println("🚀 Nlog Proxy Server started")
	log.Println("=================================")
	log.Printf("Local:      %s", local)
	log.Printf("OpenPanel:  %s", cfg.OpenPanel.APIURL)
	log.Printf("Client ID:  %s", configured(cfg.OpenPanel.ClientID))
	log.Printf("Secret:     %s", configured(cfg.OpenPanel.ClientSecret))
	log.Println("=================================")
	log.Println("📡 Available endpoints:")
	log.Printf("   GET  %s/health", local)
	log.Printf("   POST %s/proxy", local)
	log.Printf("   POST %s/nlog", local)
	log.Printf("   WS   %s/ws", local)
	log.Println("=================================")
	log.Println("Test page:")
	log.Printf("   %s", cfg.TestPageURL())
	log.Println("=================================")

	if !cfg.HasCredentials() {
		log.Println("⚠️  Warning: Configure OpenPanel credentials in .env file")
	}
}
