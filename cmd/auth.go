package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/desertthunder/clickupx/internal/server"
	"github.com/desertthunder/clickupx/internal/shared"
	"github.com/urfave/cli/v3"
	"golang.org/x/oauth2"
)

// AuthLogin runs the OAuth2 authorization code flow against the app in [oauth] and saves the
// access token to the config file.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	oauthCfg := r.config.OAuth
	if oauthCfg.ClientID == "" || oauthCfg.ClientSecret == "" {
		return fmt.Errorf("%w: oauth.client_id and oauth.client_secret must be set in %s",
			shared.ErrMissingCredentials, r.configPathOrDefault())
	}

	ln, err := net.Listen("tcp", r.config.Server.Addr())
	if err != nil {
		return fmt.Errorf("failed to start callback server: %w", err)
	}

	token, err := r.doOAuth(ctx, ln, cmd.Bool("no-browser"), cmd.Duration("timeout"))
	if err != nil {
		return err
	}

	r.config.ClickUp.Token = token.AccessToken
	r.config.ClickUp.TokenType = "Bearer"
	r.client = nil

	if err := shared.SaveConfig(r.config, r.configPathOrDefault()); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	r.logger.Info("token saved", "path", r.configPathOrDefault())

	return r.writePlain("✓ Authentication successful\n")
}

// doOAuth serves the callback on ln until a token arrives, the timeout passes or ctx is done.
func (r *Runner) doOAuth(ctx context.Context, ln net.Listener, noBrowser bool, timeout time.Duration) (*oauth2.Token, error) {
	cfg := r.config.OAuth
	handler := server.NewOAuthHandler(server.NewOAuthConfig(cfg.ClientID, cfg.ClientSecret, cfg.RedirectURI), shared.GenerateID())

	router := server.NewBasicRouter()
	router.Use(server.Logging(r.logger))
	router.Handler(handler)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	serverErrors := make(chan error, 1)
	go func() {
		r.logger.Infof("starting OAuth callback server at %v", ln.Addr())
		serverErrors <- server.ServeListener(ctx, ln, router)
	}()

	authURL := handler.AuthCodeURL()
	if noBrowser {
		r.writePlain("Open this URL in your browser:\n%s\n\n", authURL)
	} else {
		r.writePlain("→ Opening browser for ClickUp authorization...\n")
		if err := shared.OpenBrowser(authURL); err != nil {
			r.logger.Warnf("failed to open browser automatically %v", err)
			r.writePlainln("⚠ Could not open browser automatically.")
			r.writePlain("Please open this URL in your browser:\n%s\n\n", authURL)
		}
	}

	r.writePlain("→ Waiting for authorization (%s timeout)...\n", timeout)

	type waitResult struct {
		token *oauth2.Token
		err   error
	}
	done := make(chan waitResult, 1)
	go func() {
		token, err := handler.Wait(ctx)
		done <- waitResult{token, err}
	}()

	var res waitResult
	select {
	case res = <-done:
	case err := <-serverErrors:
		if err != nil {
			return nil, fmt.Errorf("server error: %w", err)
		}
		res = <-done
	}
	cancel()

	switch {
	case errors.Is(res.err, context.DeadlineExceeded):
		return nil, fmt.Errorf("%w: authorization timed out after %s", shared.ErrTimeout, timeout)
	case res.err != nil:
		return nil, fmt.Errorf("%w: %w", shared.ErrAuthFailed, res.err)
	case res.token == nil || res.token.AccessToken == "":
		return nil, fmt.Errorf("%w: no token received", shared.ErrAuthFailed)
	}
	return res.token, nil
}

// AuthStatus checks the configured token by fetching the user it belongs to.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	r.logger.Info("checking auth status")

	client, err := r.api()
	if err != nil {
		return err
	}

	user, err := client.GetAuthorizedUser(ctx)
	if err != nil {
		return apiError(err)
	}

	tokenType := r.config.ClickUp.TokenType
	if tokenType == "" {
		tokenType = "personal"
	}

	return r.render(cmd, user, func() error {
		r.writePlain("✓ Authenticated\n")
		r.writePlain("User:  %s (%s)\n", user.Username, user.ID)
		r.writePlain("Email: %s\n", user.Email)
		r.writePlain("Token: %s\n", tokenType)
		return nil
	})
}
