package dev

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/passage-dev/passage/internal/config"
)

func TestWatcher_Basic(t *testing.T) {
	tmpDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "styles.css")
	if err := os.WriteFile(testFile, []byte("body {}"), 0644); err != nil {
		t.Fatal(err)
	}

	watcher := NewWatcher(WatcherConfig{
		Paths:    []string{tmpDir},
		Debounce: 50 * time.Millisecond,
	})

	changes := make(chan Change, 10)
	watcher.OnChange(func(c Change) {
		changes <- c
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go watcher.Start(ctx)

	// Wait for initial scan
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(testFile, []byte("body { margin: 0 }"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case change := <-changes:
		if change.Type != ChangeCSS {
			t.Errorf("Expected CSS change, got %v", change.Type)
		}
		if change.Path != testFile {
			t.Errorf("Expected path %q, got %q", testFile, change.Path)
		}
	case <-time.After(2 * time.Second):
		t.Error("Timeout waiting for change")
	}

	watcher.Stop()
}

func TestWatcher_NewFile(t *testing.T) {
	tmpDir := t.TempDir()

	watcher := NewWatcher(WatcherConfig{
		Paths:    []string{tmpDir},
		Debounce: 50 * time.Millisecond,
	})

	changes := make(chan Change, 10)
	watcher.OnChange(func(c Change) {
		changes <- c
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go watcher.Start(ctx)

	time.Sleep(100 * time.Millisecond)

	newFile := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(newFile, []byte("<html></html>"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case change := <-changes:
		if change.Type != ChangeHTML {
			t.Errorf("Expected HTML change, got %v", change.Type)
		}
		if change.Path != newFile {
			t.Errorf("Expected path %q, got %q", newFile, change.Path)
		}
	case <-time.After(2 * time.Second):
		t.Error("Timeout waiting for new file change")
	}

	watcher.Stop()
}

func TestWatcher_Ignore(t *testing.T) {
	tmpDir := t.TempDir()

	watcher := NewWatcher(WatcherConfig{
		Paths:  []string{tmpDir},
		Ignore: []string{"*.tmp", "node_modules"},
	})

	if !watcher.shouldIgnore(filepath.Join(tmpDir, "upload.tmp")) {
		t.Error("Should ignore *.tmp files")
	}
	if !watcher.shouldIgnore(filepath.Join(tmpDir, "node_modules", "lib.js")) {
		t.Error("Should ignore node_modules directory")
	}
	if watcher.shouldIgnore(filepath.Join(tmpDir, "app.css")) {
		t.Error("Should not ignore app.css")
	}
}

func TestClassifyChange(t *testing.T) {
	tests := []struct {
		path string
		want ChangeType
	}{
		{"public/styles.css", ChangeCSS},
		{"public/theme.SCSS", ChangeCSS},
		{"public/index.html", ChangeHTML},
		{"public/logo.png", ChangeAsset},
		{"public/app.js", ChangeAsset},
	}

	for _, tt := range tests {
		if got := classifyChange(tt.path); got != tt.want {
			t.Errorf("classifyChange(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

// newTestProject writes a minimal project with a shell and one asset.
func newTestProject(t *testing.T) *config.Config {
	t.Helper()
	tmpDir := t.TempDir()

	publicDir := filepath.Join(tmpDir, "public")
	if err := os.MkdirAll(publicDir, 0755); err != nil {
		t.Fatal(err)
	}

	shell := "<html><body><div id=\"app\"></div></body></html>"
	if err := os.WriteFile(filepath.Join(publicDir, "index.html"), []byte(shell), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(publicDir, "app.js"), []byte("console.log('hi')"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := config.New()
	if err := cfg.SaveTo(filepath.Join(tmpDir, config.ConfigFileName)); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestServer_ShellFallback(t *testing.T) {
	cfg := newTestProject(t)
	srv := NewServer(ServerOptions{Config: cfg})

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	// A route path with no matching asset gets the shell.
	resp, err := http.Get(ts.URL + "/users/42")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "<div id=\"app\">") {
		t.Errorf("expected shell content, got %q", body)
	}
	if !strings.Contains(string(body), "_passage/reload") {
		t.Error("expected reload client script injected into shell")
	}
}

func TestServer_StaticAsset(t *testing.T) {
	cfg := newTestProject(t)
	srv := NewServer(ServerOptions{Config: cfg})

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/app.js")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "console.log") {
		t.Errorf("expected asset content, got %q", body)
	}
}

func TestServer_NoReloadWhenDisabled(t *testing.T) {
	cfg := newTestProject(t)
	cfg.Dev.HotReload = false
	srv := NewServer(ServerOptions{Config: cfg})

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if strings.Contains(string(body), "_passage/reload") {
		t.Error("reload script should not be injected when hot reload is off")
	}
}

func TestReloadServer_Broadcast(t *testing.T) {
	rs := NewReloadServer()
	defer rs.Close()

	ts := httptest.NewServer(http.HandlerFunc(rs.HandleWebSocket))
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	// Wait for the server to register the client.
	deadline := time.Now().Add(2 * time.Second)
	for rs.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	rs.NotifyCSS("styles.css")

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	var msg ReloadMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatal(err)
	}
	if msg.Type != ReloadTypeCSS {
		t.Errorf("Type = %q, want %q", msg.Type, ReloadTypeCSS)
	}
	if msg.File != "styles.css" {
		t.Errorf("File = %q, want %q", msg.File, "styles.css")
	}
}

func TestInjectReloadScript(t *testing.T) {
	shell := []byte("<html><body><p>hi</p></body></html>")
	out := injectReloadScript(shell)

	s := string(out)
	scriptIdx := strings.Index(s, "<script>")
	bodyIdx := strings.Index(s, "</body>")
	if scriptIdx < 0 {
		t.Fatal("script not injected")
	}
	if bodyIdx < scriptIdx {
		t.Error("script should come before </body>")
	}

	// Shell without a closing body tag gets the script appended.
	out = injectReloadScript([]byte("<p>bare</p>"))
	if !strings.Contains(string(out), "<script>") {
		t.Error("script not appended to bare shell")
	}
}

func TestCollectWatchPaths(t *testing.T) {
	cfg := newTestProject(t)
	cfg.Dev.Watch = []string{"public", "extra"}

	paths := CollectWatchPaths(cfg)

	want := map[string]bool{
		filepath.Join(cfg.Dir(), "public"): false,
		filepath.Join(cfg.Dir(), "extra"):  false,
	}
	for _, p := range paths {
		if _, ok := want[p]; ok {
			want[p] = true
		}
	}
	for p, seen := range want {
		if !seen {
			t.Errorf("missing watch path %q", p)
		}
	}

	// Duplicates collapse.
	if len(paths) != 2 {
		t.Errorf("len(paths) = %d, want 2 (%v)", len(paths), paths)
	}
}
