package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/desertthunder/clickupx/internal/shared"
	tu "github.com/desertthunder/clickupx/internal/testing"
)

type apiCall struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   []byte
}

// fakeAPI serves canned responses keyed by "METHOD /path" below /api/v2.
type fakeAPI struct {
	mu        sync.Mutex
	calls     []apiCall
	responses map[string]string
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	path := strings.TrimPrefix(r.URL.Path, "/api/v2")

	f.mu.Lock()
	f.calls = append(f.calls, apiCall{r.Method, path, r.URL.RawQuery, r.Header.Clone(), body})
	resp, ok := f.responses[r.Method+" "+path]
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"err":"Route not found","ECODE":"APP_001"}`)
		return
	}
	io.WriteString(w, resp)
}

func (f *fakeAPI) last(t *testing.T) apiCall {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		t.Fatal("expected a request")
	}
	return f.calls[len(f.calls)-1]
}

func (f *fakeAPI) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

const (
	taskJSON = `{"id":"abc","name":"Write docs","status":{"status":"in progress","type":"custom"},
		"priority":{"id":"2","priority":"high"},"assignees":[{"id":1,"username":"jane"}],
		"tags":[{"name":"docs"}],"due_date":"1669852800000","time_estimate":5400000,
		"list":{"id":"l1","name":"Sprint 12"},"url":"https://app.clickup.com/t/abc"}`
	taskPageJSON = `{"tasks":[` + taskJSON + `,{"id":"def","name":"Ship release",
		"status":{"status":"complete","type":"closed"}}],"last_page":true}`
	listJSON      = `{"id":"l1","name":"Sprint 12","content":"Release work","task_count":2}`
	checklistJSON = `{"checklist":{"id":"cl1","name":"Release",
		"items":[{"id":"i1","name":"Tag build","resolved":false}]}}`
	timeEntriesJSON = `{"data":[{"id":"te1","duration":"3600000","start":"1669852800000",
		"user":{"username":"jane"},"task":{"id":"abc","name":"Write docs"}}]}`
)

func defaultResponses() map[string]string {
	return map[string]string{
		"GET /task/abc":                      taskJSON,
		"PUT /task/abc":                      taskJSON,
		"DELETE /task/abc":                   `{}`,
		"POST /list/l1/task":                 taskJSON,
		"GET /list/l1/task":                  taskPageJSON,
		"GET /team/t1/task":                  `{"tasks":[],"last_page":true}`,
		"GET /list/l1":                       listJSON,
		"GET /folder/f1/list":                `{"lists":[` + listJSON + `]}`,
		"POST /space/s1/list":                listJSON,
		"GET /space/s1/folder":               `{"folders":[{"id":"f1","name":"Releases","lists":[` + listJSON + `]}]}`,
		"GET /team/t1/space":                 `{"spaces":[{"id":"s1","name":"Engineering"}]}`,
		"POST /team/t1/space":                `{"id":"s2","name":"Ops"}`,
		"GET /team":                          `{"teams":[{"id":"t1","name":"Acme","members":[{"user":{"id":1}}]}]}`,
		"GET /user":                          `{"user":{"id":1,"username":"jane","email":"jane@example.com"}}`,
		"GET /team/t1/shared":                `{"shared":{"tasks":["abc"],"lists":[` + listJSON + `],"folders":[]}}`,
		"GET /task/abc/member":               `{"members":[{"id":1,"username":"jane","email":"jane@example.com"}]}`,
		"GET /task/abc/comment":              `{"comments":[{"id":"c1","comment_text":"Looks good","user":{"username":"sam"},"date":"1669852800000"}]}`,
		"POST /task/abc/comment":             `{"id":458,"hist_id":"h1","date":1669852800000}`,
		"POST /task/abc/checklist":           `{"checklist":{"id":"cl1","name":"Release","items":[]}}`,
		"POST /checklist/cl1/checklist_item": checklistJSON,
		"GET /team/t1/goal":                  `{"goals":[{"id":"g1","name":"Ship v2","percent_completed":40}],"folders":[]}`,
		"POST /team/t1/goal":                 `{"goal":{"id":"g2","name":"Grow","percent_completed":0}}`,
		"GET /space/s1/tag":                  `{"tags":[{"name":"docs"},{"name":"bug"}]}`,
		"POST /task/abc/tag/docs":            `{}`,
		"GET /team/t1/time_entries":          timeEntriesJSON,
		"POST /team/t1/time_entries/stop":    `{"data":{"id":"te1","duration":"1800000"}}`,
	}
}

type harness struct {
	api        *fakeAPI
	srv        *httptest.Server
	config     *shared.Config
	dir        string
	httpClient *http.Client
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv(shared.TokenEnv, "")

	api := &fakeAPI{responses: defaultResponses()}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	config := shared.DefaultConfig()
	config.ClickUp.Token = "pk_test_token"
	config.ClickUp.APIURL = srv.URL + "/api/v2/"
	config.ClickUp.DefaultTeam = "t1"
	config.ClickUp.DefaultSpace = "s1"
	config.ClickUp.DefaultList = "l1"

	return &harness{api: api, srv: srv, config: config, dir: t.TempDir()}
}

// run executes the app with args and returns what it wrote to the output.
func (h *harness) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	output := &bytes.Buffer{}
	runner := NewRunner(RunnerOpts{
		Config:     h.config,
		HTTPClient: h.httpClient,
		Logger:     shared.NewLogger(io.Discard),
		Output:     output,
	})

	argv := append([]string{"clickupx", "--config", filepath.Join(h.dir, "config.toml")}, args...)
	err := newApp(runner).Run(context.Background(), argv)
	return output.String(), err
}

func TestTaskCommands(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		h := newHarness(t)
		out, err := h.run(t, "task", "get", "abc")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		for _, want := range []string{"Write docs", "in progress", "high", "jane", "docs", "2022-12-01", "1h 30m", "Sprint 12"} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q, got %s", want, out)
			}
		}

		call := h.api.last(t)
		if call.Header.Get("Authorization") != "pk_test_token" {
			t.Errorf("unexpected Authorization header %q", call.Header.Get("Authorization"))
		}
	})

	t.Run("get as JSON", func(t *testing.T) {
		h := newHarness(t)
		out, err := h.run(t, "--json", "task", "get", "abc")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		var task map[string]any
		if err := json.Unmarshal([]byte(out), &task); err != nil {
			t.Fatalf("expected JSON output, got %s", out)
		}
		if task["id"] != "abc" {
			t.Errorf("unexpected task %v", task)
		}
	})

	t.Run("get without id", func(t *testing.T) {
		h := newHarness(t)
		_, err := h.run(t, "task", "get")
		if !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
		if h.api.count() != 0 {
			t.Error("expected no request")
		}
	})

	t.Run("get missing task", func(t *testing.T) {
		h := newHarness(t)
		_, err := h.run(t, "task", "get", "nope")
		if !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("list uses the default list and query flags", func(t *testing.T) {
		h := newHarness(t)
		out, err := h.run(t, "task", "list", "--status", "open", "--status", "review", "--include-closed", "--order-by", "due_date")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		call := h.api.last(t)
		if call.Path != "/list/l1/task" {
			t.Errorf("unexpected path %s", call.Path)
		}
		for _, want := range []string{"statuses%5B%5D=open%2Creview", "include_closed=true", "order_by=due_date"} {
			if !strings.Contains(call.Query, want) {
				t.Errorf("expected query to contain %s, got %s", want, call.Query)
			}
		}
		if !strings.Contains(out, "[x] Ship release") || !strings.Contains(out, "[ ] Write docs") {
			t.Errorf("unexpected output %s", out)
		}
	})

	t.Run("list rejects a bad order", func(t *testing.T) {
		h := newHarness(t)
		_, err := h.run(t, "task", "list", "--order-by", "name")
		if !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
		if h.api.count() != 0 {
			t.Error("expected validation before any request")
		}
	})

	t.Run("team", func(t *testing.T) {
		h := newHarness(t)
		out, err := h.run(t, "task", "team", "--space", "s1", "--list", "l1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		call := h.api.last(t)
		if call.Path != "/team/t1/task" || !strings.Contains(call.Query, "space_ids%5B%5D=s1") {
			t.Errorf("unexpected request %s?%s", call.Path, call.Query)
		}
		if !strings.Contains(out, "No tasks found") {
			t.Errorf("unexpected output %s", out)
		}
	})

	t.Run("create sends resolved dates and durations", func(t *testing.T) {
		h := newHarness(t)
		out, err := h.run(t, "task", "create", "--name", "Write docs", "--priority", "2",
			"--due", "1669852800000", "--estimate", "2 hours", "--assignee", "1,2", "--tag", "docs")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		call := h.api.last(t)
		if call.Method != http.MethodPost || call.Path != "/list/l1/task" {
			t.Fatalf("unexpected request %s %s", call.Method, call.Path)
		}
		var body map[string]any
		if err := json.Unmarshal(call.Body, &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["name"] != "Write docs" || body["priority"] != float64(2) {
			t.Errorf("unexpected body %v", body)
		}
		if body["due_date"] != float64(1669852800000) {
			t.Errorf("expected due_date passed through, got %v", body["due_date"])
		}
		if body["time_estimate"] != float64(7200000) {
			t.Errorf("expected 2 hours in ms, got %v", body["time_estimate"])
		}
		if assignees, _ := body["assignees"].([]any); len(assignees) != 2 {
			t.Errorf("expected two assignees, got %v", body["assignees"])
		}
		if !strings.Contains(out, "✓ Created task Write docs (abc)") {
			t.Errorf("unexpected output %s", out)
		}
	})

	t.Run("create rejects priority before any request", func(t *testing.T) {
		h := newHarness(t)
		_, err := h.run(t, "task", "create", "--name", "x", "--priority", "7")
		if !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
		if h.api.count() != 0 {
			t.Errorf("expected zero requests, got %d", h.api.count())
		}
	})

	t.Run("update only sends set flags", func(t *testing.T) {
		h := newHarness(t)
		_, err := h.run(t, "task", "update", "--status", "review", "--add-assignee", "3", "abc")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		var body map[string]any
		json.Unmarshal(h.api.last(t).Body, &body)
		if body["status"] != "review" {
			t.Errorf("unexpected body %v", body)
		}
		if _, ok := body["priority"]; ok {
			t.Error("priority should be omitted")
		}
		if _, ok := body["archived"]; ok {
			t.Error("archived should be omitted")
		}
		if _, ok := body["assignees"]; !ok {
			t.Error("expected assignee delta")
		}
	})

	t.Run("delete", func(t *testing.T) {
		h := newHarness(t)
		out, err := h.run(t, "task", "delete", "abc")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if h.api.last(t).Method != http.MethodDelete || !strings.Contains(out, "Deleted task abc") {
			t.Errorf("unexpected result %s", out)
		}
	})

	t.Run("attach", func(t *testing.T) {
		h := newHarness(t)
		h.api.responses["POST /task/abc/attachment"] = `{"id":"a1","title":"notes.txt","url":"https://files/a1"}`
		path := filepath.Join(t.TempDir(), "notes.txt")
		if err := os.WriteFile(path, []byte("hello"), 0644); err != nil {
			t.Fatal(err)
		}

		out, err := h.run(t, "task", "attach", "abc", path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		call := h.api.last(t)
		if !strings.HasPrefix(call.Header.Get("Content-Type"), "multipart/form-data") {
			t.Errorf("expected multipart upload, got %s", call.Header.Get("Content-Type"))
		}
		if !strings.Contains(out, "✓ Attached notes.txt") {
			t.Errorf("unexpected output %s", out)
		}
	})
}

func TestHierarchyCommands(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		method string
		path   string
		want   []string
	}{
		{"list get", []string{"list", "get"}, "GET", "/list/l1", []string{"Sprint 12", "Release work", "Tasks:    2"}},
		{"list folder", []string{"list", "folder", "f1"}, "GET", "/folder/f1/list", []string{"Sprint 12 (l1), 2 tasks"}},
		{"list create in space", []string{"list", "create", "--name", "Backlog"}, "POST", "/space/s1/list", []string{"✓ Created list"}},
		{"folder space", []string{"folder", "space"}, "GET", "/space/s1/folder", []string{"Releases (f1), 1 lists"}},
		{"space team", []string{"space", "team"}, "GET", "/team/t1/space", []string{"Engineering (s1)"}},
		{"space create", []string{"space", "create", "--name", "Ops"}, "POST", "/team/t1/space", []string{"✓ Created space Ops (s2)"}},
		{"team list", []string{"team", "list"}, "GET", "/team", []string{"Acme (t1), 1 members"}},
		{"hierarchy", []string{"hierarchy"}, "GET", "/team/t1/shared", []string{"Tasks (1)", "Sprint 12 (l1)", "Folders (0)"}},
		{"member task", []string{"member", "task", "abc"}, "GET", "/task/abc/member", []string{"jane <jane@example.com>"}},
		{"comment task", []string{"comment", "task", "abc"}, "GET", "/task/abc/comment", []string{"sam (c1)", "Looks good"}},
		{"comment add", []string{"comment", "add", "--task", "abc", "--text", "Done"}, "POST", "/task/abc/comment", []string{"✓ Posted comment 458"}},
		{"checklist create", []string{"checklist", "create", "--name", "Release", "abc"}, "POST", "/task/abc/checklist", []string{"Release (cl1)", "No items"}},
		{"checklist item-add", []string{"checklist", "item-add", "--name", "Tag build", "cl1"}, "POST", "/checklist/cl1/checklist_item", []string{"[ ] Tag build (i1)"}},
		{"goal team", []string{"goal", "team"}, "GET", "/team/t1/goal", []string{"Ship v2 (g1) 40%"}},
		{"goal create", []string{"goal", "create", "--name", "Grow"}, "POST", "/team/t1/goal", []string{"✓ Created goal Grow (g2)"}},
		{"tag space", []string{"tag", "space"}, "GET", "/space/s1/tag", []string{"- docs", "- bug"}},
		{"tag add", []string{"tag", "add", "abc", "docs"}, "POST", "/task/abc/tag/docs", []string{"Tagged task abc with docs"}},
		{"timer range", []string{"timer", "range", "--start", "1669852800000", "--end", "1669939200000"}, "GET", "/team/t1/time_entries", []string{"Write docs", "Total: 1h0m0s"}},
		{"timer stop", []string{"timer", "stop"}, "POST", "/team/t1/time_entries/stop", []string{"stopped after 30m0s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			out, err := h.run(t, tt.args...)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			call := h.api.last(t)
			if call.Method != tt.method || call.Path != tt.path {
				t.Errorf("expected %s %s, got %s %s", tt.method, tt.path, call.Method, call.Path)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("expected output to contain %q, got:\n%s", want, out)
				}
			}
		})
	}

	t.Run("list create with folder and space", func(t *testing.T) {
		h := newHarness(t)
		_, err := h.run(t, "list", "create", "--name", "x", "--folder", "f1", "--space", "s1")
		if !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("comment add needs a target", func(t *testing.T) {
		h := newHarness(t)
		_, err := h.run(t, "comment", "add", "--text", "hi")
		if !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})

	t.Run("missing default team", func(t *testing.T) {
		h := newHarness(t)
		h.config.ClickUp.DefaultTeam = ""
		_, err := h.run(t, "space", "team")
		if !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})
}

func TestAuthCommands(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		h := newHarness(t)
		out, err := h.run(t, "auth", "status")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(out, "jane (1)") || !strings.Contains(out, "Token: personal") {
			t.Errorf("unexpected output %s", out)
		}
	})

	t.Run("status sends bearer tokens", func(t *testing.T) {
		h := newHarness(t)
		h.config.ClickUp.TokenType = "Bearer"
		if _, err := h.run(t, "auth", "status"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got := h.api.last(t).Header.Get("Authorization"); got != "Bearer pk_test_token" {
			t.Errorf("unexpected Authorization header %q", got)
		}
	})

	t.Run("status without token", func(t *testing.T) {
		h := newHarness(t)
		h.config.ClickUp.Token = ""
		_, err := h.run(t, "auth", "status")
		if !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Errorf("expected ErrNotAuthenticated, got %v", err)
		}
	})

	t.Run("status with rejected token", func(t *testing.T) {
		h := newHarness(t)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			io.WriteString(w, `{"err":"Token invalid","ECODE":"OAUTH_025"}`)
		}))
		defer srv.Close()
		h.config.ClickUp.APIURL = srv.URL

		_, err := h.run(t, "auth", "status")
		if !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Errorf("expected ErrNotAuthenticated, got %v", err)
		}
	})

	t.Run("login without OAuth app", func(t *testing.T) {
		h := newHarness(t)
		h.config.OAuth.ClientID = ""
		_, err := h.run(t, "auth", "login")
		if !errors.Is(err, shared.ErrMissingCredentials) {
			t.Errorf("expected ErrMissingCredentials, got %v", err)
		}
	})
}

func TestTransportFailures(t *testing.T) {
	t.Run("request error", func(t *testing.T) {
		h := newHarness(t)
		h.httpClient = &http.Client{Transport: tu.NewMockRoundTripper(nil, errors.New("connection refused"))}

		_, err := h.run(t, "task", "get", "abc")
		if !errors.Is(err, shared.ErrAPIRequest) {
			t.Errorf("expected ErrAPIRequest, got %v", err)
		}
		if !strings.Contains(err.Error(), "connection refused") {
			t.Errorf("expected the transport error in the chain, got %v", err)
		}
	})

	t.Run("unreadable body", func(t *testing.T) {
		h := newHarness(t)
		resp := &http.Response{StatusCode: http.StatusOK, Body: &tu.FCloser{}, Header: http.Header{}}
		h.httpClient = &http.Client{Transport: tu.NewMockRoundTripper(resp, nil)}

		_, err := h.run(t, "team", "list")
		if !errors.Is(err, shared.ErrAPIRequest) {
			t.Errorf("expected ErrAPIRequest, got %v", err)
		}
	})
}

func TestDoOAuth(t *testing.T) {
	newRunner := func() (*Runner, *bytes.Buffer) {
		config := shared.DefaultConfig()
		config.OAuth.ClientID = "client"
		config.OAuth.ClientSecret = "secret"
		output := &bytes.Buffer{}
		return NewRunner(RunnerOpts{Config: config, Logger: shared.NewLogger(io.Discard), Output: output}), output
	}

	t.Run("rejects a callback with the wrong state", func(t *testing.T) {
		runner, output := newRunner()
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			t.Fatalf("failed to listen: %v", err)
		}

		go func() {
			for i := 0; i < 50; i++ {
				resp, err := http.Get("http://" + ln.Addr().String() + "/callback?state=wrong&code=x")
				if err == nil {
					resp.Body.Close()
					return
				}
				time.Sleep(20 * time.Millisecond)
			}
		}()

		_, err = runner.doOAuth(context.Background(), ln, true, 5*time.Second)
		if !errors.Is(err, shared.ErrAuthFailed) {
			t.Errorf("expected ErrAuthFailed, got %v", err)
		}
		if !strings.Contains(output.String(), "https://app.clickup.com/api") {
			t.Errorf("expected the authorization URL to be printed, got %s", output.String())
		}
	})

	t.Run("times out", func(t *testing.T) {
		runner, _ := newRunner()
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			t.Fatalf("failed to listen: %v", err)
		}

		_, err = runner.doOAuth(context.Background(), ln, true, 50*time.Millisecond)
		if !errors.Is(err, shared.ErrTimeout) {
			t.Errorf("expected ErrTimeout, got %v", err)
		}
	})
}

func TestTimeCommands(t *testing.T) {
	t.Run("unix", func(t *testing.T) {
		h := newHarness(t)
		out, err := h.run(t, "time", "unix", "december", "1", "2022")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		ms, err := strconv.ParseInt(strings.TrimSpace(out), 10, 64)
		if err != nil {
			t.Fatalf("expected milliseconds, got %q", out)
		}
		if got := time.UnixMilli(ms).Format(time.DateOnly); got != "2022-12-01" {
			t.Errorf("expected 2022-12-01, got %s", got)
		}
	})

	t.Run("unix as JSON", func(t *testing.T) {
		h := newHarness(t)
		out, err := h.run(t, "--json", "time", "unix", "2022-12-01")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		var result map[string]string
		if err := json.Unmarshal([]byte(out), &result); err != nil {
			t.Fatalf("expected JSON output, got %s", out)
		}
		if result["input"] != "2022-12-01" || result["unix_ms"] == "" {
			t.Errorf("unexpected result %v", result)
		}
	})

	t.Run("seconds", func(t *testing.T) {
		h := newHarness(t)
		out, err := h.run(t, "time", "seconds", "36", "hours")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if strings.TrimSpace(out) != "129600" {
			t.Errorf("expected 129600, got %s", out)
		}
	})

	t.Run("seconds rejects garbage unless lenient", func(t *testing.T) {
		h := newHarness(t)
		if _, err := h.run(t, "time", "seconds", "sdfsdfsdf"); !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}

		out, err := h.run(t, "time", "seconds", "--lenient", "sdfsdfsdf")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if strings.TrimSpace(out) != "0" {
			t.Errorf("expected 0, got %s", out)
		}
	})

	t.Run("no text", func(t *testing.T) {
		h := newHarness(t)
		if _, err := h.run(t, "time", "unix"); !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})
}

func TestConfigInit(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(h.dir, "config.toml")

	out, err := h.run(t, "config", "init")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	tu.AssertFileExists(t, path)
	if !strings.Contains(out, path) {
		t.Errorf("expected the path in output, got %s", out)
	}

	if _, err := h.run(t, "config", "init"); !errors.Is(err, shared.ErrInvalidConfig) {
		t.Errorf("expected an error for an existing file, got %v", err)
	}
}

func TestAPICommands(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		h := newHarness(t)
		out, err := h.run(t, "api", "get", "/team")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(out, `"name": "Acme"`) {
			t.Errorf("expected pretty JSON, got %s", out)
		}
	})

	t.Run("get failure", func(t *testing.T) {
		h := newHarness(t)
		_, err := h.run(t, "api", "get", "/nowhere")
		if !errors.Is(err, shared.ErrAPIRequest) {
			t.Errorf("expected ErrAPIRequest, got %v", err)
		}
	})

	t.Run("post rejects invalid JSON", func(t *testing.T) {
		h := newHarness(t)
		_, err := h.run(t, "api", "post", "--data", "{nope", "/team/t1/goal")
		if !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
		if h.api.count() != 0 {
			t.Error("expected no request")
		}
	})

	t.Run("post", func(t *testing.T) {
		h := newHarness(t)
		_, err := h.run(t, "api", "post", "--data", `{"name":"Grow"}`, "/team/t1/goal")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		call := h.api.last(t)
		if string(call.Body) != `{"name":"Grow"}` || call.Header.Get("Content-Type") != "application/json" {
			t.Errorf("unexpected request %s %s", call.Header.Get("Content-Type"), call.Body)
		}
	})
}

func TestExportCommand(t *testing.T) {
	t.Run("writes the default list", func(t *testing.T) {
		h := newHarness(t)
		outDir := filepath.Join(t.TempDir(), "out")

		out, err := h.run(t, "export", "--format", "csv", "--output", outDir, "--rate", "1000")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		tu.AssertFileExists(t, filepath.Join(outDir, "l1_tasks.csv"))
		tu.AssertFileExists(t, filepath.Join(outDir, "export_manifest.json"))
		if !strings.Contains(out, "Exported: 1/1 lists") {
			t.Errorf("unexpected output %s", out)
		}
	})

	t.Run("reports failed lists", func(t *testing.T) {
		h := newHarness(t)
		outDir := filepath.Join(t.TempDir(), "out")

		out, err := h.run(t, "export", "--output", outDir, "--rate", "1000", "l1", "missing")
		if err != nil {
			t.Fatalf("expected no error with one success, got %v", err)
		}
		if !strings.Contains(out, "Exported: 1/2 lists") || !strings.Contains(out, "- missing:") {
			t.Errorf("unexpected output %s", out)
		}
	})

	t.Run("fails when nothing exported", func(t *testing.T) {
		h := newHarness(t)
		_, err := h.run(t, "export", "--output", t.TempDir(), "--rate", "1000", "missing")
		if !errors.Is(err, shared.ErrAPIRequest) {
			t.Errorf("expected ErrAPIRequest, got %v", err)
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		h := newHarness(t)
		_, err := h.run(t, "export", "--format", "xml", "l1")
		if !errors.Is(err, shared.ErrInvalidFlag) {
			t.Errorf("expected ErrInvalidFlag, got %v", err)
		}
	})
}
