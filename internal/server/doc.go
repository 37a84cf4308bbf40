// Package server runs the short-lived local HTTP server behind `clickupx auth login`.
//
// # Router
//
// [BasicRouter] implements [Router] on [http.ServeMux] method patterns. [Middleware] is applied
// outermost-first in the order it was added; [Logging] is the one the CLI installs.
//
// # OAuth callback
//
// [OAuthHandler] completes ClickUp's authorization code flow: it checks the state parameter,
// exchanges the code at [TokenURL] and publishes one [OAuthResult]. Only the first callback is
// processed. [NewOAuthConfig] builds the matching [oauth2.Config].
//
// The CLI listens on the configured host and port, runs [ServeListener], opens the browser on
// [OAuthHandler.AuthCodeURL], waits with [OAuthHandler.Wait] and then cancels the server.
package server
