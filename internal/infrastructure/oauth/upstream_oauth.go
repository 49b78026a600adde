package oauth

import (
	"context"
	"fmt"

	"partner-portal-service/internal/infrastructure/config"
	"partner-portal-service/pkg/logger"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// UpstreamOAuth obtains bearer tokens for the hotel API with the
// client-credentials grant
type UpstreamOAuth struct {
	config *clientcredentials.Config
	logger logger.Logger
}

// NewUpstreamOAuth creates a new client-credentials handler
func NewUpstreamOAuth(cfg config.OAuthConfig, logger logger.Logger) *UpstreamOAuth {
	return &UpstreamOAuth{
		config: &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
			Scopes:       cfg.Scopes,
		},
		logger: logger,
	}
}

// GetTokenSource returns a caching token source. Tokens are refreshed when
// they expire; the source is safe for concurrent use.
func (o *UpstreamOAuth) GetTokenSource(ctx context.Context) oauth2.TokenSource {
	return oauth2.ReuseTokenSource(nil, o.config.TokenSource(ctx))
}

// FetchToken requests a fresh token
func (o *UpstreamOAuth) FetchToken(ctx context.Context) (*oauth2.Token, error) {
	token, err := o.config.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch token: %w", err)
	}

	o.logger.Info("Fetched upstream token",
		"tokenType", token.Type(),
		"expiry", token.Expiry)

	return token, nil
}
