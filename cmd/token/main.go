// Command token prints a hotel API access token obtained with the
// configured client credentials. Useful for calling the hotel API by hand.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"partner-portal-service/internal/infrastructure/config"
	"partner-portal-service/internal/infrastructure/oauth"
	"partner-portal-service/pkg/logger"
)

func main() {
	log := logger.NewLogger("info")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	if !cfg.Upstream.OAuth.Enabled() {
		log.Fatal("UPSTREAM_OAUTH_TOKEN_URL and UPSTREAM_OAUTH_CLIENT_ID must be set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	token, err := oauth.NewUpstreamOAuth(cfg.Upstream.OAuth, log).FetchToken(ctx)
	if err != nil {
		log.Fatal("Failed to fetch token", "error", err)
	}

	fmt.Fprintf(os.Stdout, "\nAuthorization: %s %s\n\n", token.Type(), token.AccessToken)
}
