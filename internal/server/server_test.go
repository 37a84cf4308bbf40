package server

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/oauth2"
)

func TestBasicRouter(t *testing.T) {
	t.Run("Method Patterns", func(t *testing.T) {
		r := NewBasicRouter()
		r.Handle("post", "/hook", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		}))

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/hook", nil))
		if rec.Code != http.StatusAccepted {
			t.Errorf("expected 202, got %d", rec.Code)
		}

		rec = httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/hook", nil))
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected 405, got %d", rec.Code)
		}

		rec = httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/missing", nil))
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("Middleware Order", func(t *testing.T) {
		var order []string
		mark := func(name string) Middleware {
			return func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					order = append(order, name)
					next.ServeHTTP(w, r)
				})
			}
		}

		r := NewBasicRouter()
		r.Use(mark("first"), mark("second"))
		r.Handle(http.MethodGet, "/", http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			order = append(order, "handler")
		}))
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		if strings.Join(order, ",") != "first,second,handler" {
			t.Errorf("unexpected order %v", order)
		}
	})

	t.Run("Logging", func(t *testing.T) {
		var buf bytes.Buffer
		logger := log.New(&buf)
		logger.SetLevel(log.DebugLevel)

		r := NewBasicRouter()
		r.Use(Logging(logger))
		r.Handle(http.MethodGet, "/teapot", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/teapot", nil))

		if !strings.Contains(buf.String(), "status=418") {
			t.Errorf("expected status in log, got %q", buf.String())
		}
	})
}

func newTokenServer(t *testing.T) (*httptest.Server, *url.Values) {
	t.Helper()
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got, _ = url.ParseQuery(string(body))
		if got.Get("code") != "good-code" {
			http.Error(w, `{"err":"Code invalid"}`, http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"oauth_tok","token_type":"Bearer"}`))
	}))
	t.Cleanup(srv.Close)
	return srv, &got
}

func testConfig(tokenURL string) *oauth2.Config {
	cfg := NewOAuthConfig("client", "secret", "http://localhost:3000/callback")
	cfg.Endpoint.TokenURL = tokenURL
	return cfg
}

func TestOAuthHandler(t *testing.T) {
	t.Run("Config", func(t *testing.T) {
		cfg := NewOAuthConfig("client", "secret", "http://localhost:3000/callback")
		if cfg.Endpoint.AuthURL != AuthURL || cfg.Endpoint.TokenURL != TokenURL {
			t.Errorf("unexpected endpoint %+v", cfg.Endpoint)
		}

		h := NewOAuthHandler(cfg, "state-123")
		u, err := url.Parse(h.AuthCodeURL())
		if err != nil {
			t.Fatalf("invalid auth url: %v", err)
		}
		q := u.Query()
		if q.Get("client_id") != "client" || q.Get("state") != "state-123" || q.Get("redirect_uri") != "http://localhost:3000/callback" {
			t.Errorf("unexpected auth url query %v", q)
		}
	})

	t.Run("Successful Exchange", func(t *testing.T) {
		tokenSrv, got := newTokenServer(t)
		h := NewOAuthHandler(testConfig(tokenSrv.URL), "state-123")

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/callback?state=state-123&code=good-code", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Get("client_secret") != "secret" {
			t.Errorf("expected client credentials in params, got %v", *got)
		}

		token, err := h.Wait(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if token.AccessToken != "oauth_tok" {
			t.Errorf("expected oauth_tok, got %s", token.AccessToken)
		}
	})

	t.Run("Invalid State", func(t *testing.T) {
		h := NewOAuthHandler(testConfig("http://127.0.0.1:1/token"), "state-123")

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/callback?state=forged&code=good-code", nil))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
		if _, err := h.Wait(context.Background()); err == nil || !strings.Contains(err.Error(), "state") {
			t.Errorf("expected state error, got %v", err)
		}
	})

	t.Run("Denied", func(t *testing.T) {
		h := NewOAuthHandler(testConfig("http://127.0.0.1:1/token"), "s")

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/callback?state=s&error=access_denied", nil))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
		if _, err := h.Wait(context.Background()); err == nil || !strings.Contains(err.Error(), "access_denied") {
			t.Errorf("expected access_denied, got %v", err)
		}
	})

	t.Run("Exchange Failure", func(t *testing.T) {
		tokenSrv, _ := newTokenServer(t)
		h := NewOAuthHandler(testConfig(tokenSrv.URL), "s")

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/callback?state=s&code=bad-code", nil))

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", rec.Code)
		}
		if _, err := h.Wait(context.Background()); err == nil {
			t.Error("expected exchange error")
		}
	})

	t.Run("Second Callback Rejected", func(t *testing.T) {
		tokenSrv, _ := newTokenServer(t)
		h := NewOAuthHandler(testConfig(tokenSrv.URL), "s")

		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/callback?state=s&code=good-code", nil))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/callback?state=s&code=good-code", nil))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400 for replay, got %d", rec.Code)
		}

		res, ok := <-h.Result()
		if !ok || res.Error() != nil {
			t.Errorf("expected the first result, got %+v", res)
		}
		if _, ok := <-h.Result(); ok {
			t.Error("result channel should be closed after one result")
		}
	})

	t.Run("Wait Honors Context", func(t *testing.T) {
		h := NewOAuthHandler(testConfig("http://127.0.0.1:1/token"), "s")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		if _, err := h.Wait(ctx); err != context.DeadlineExceeded {
			t.Errorf("expected deadline exceeded, got %v", err)
		}
	})
}

func TestServeListener(t *testing.T) {
	tokenSrv, _ := newTokenServer(t)
	h := NewOAuthHandler(testConfig(tokenSrv.URL), "s")

	r := NewBasicRouter()
	r.Handler(h)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ServeListener(ctx, ln, r) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/callback?state=s&code=good-code")
	if err != nil {
		t.Fatalf("callback request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}

	if _, err := h.Wait(context.Background()); err != nil {
		t.Errorf("expected token, got %v", err)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
