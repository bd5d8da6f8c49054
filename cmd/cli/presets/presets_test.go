package presets

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/crucial707/cronlens/cmd/cli/config"
	"github.com/spf13/cobra"
)

// setup points the CLI at srv and stores token (when non-empty) in a temp file.
func setup(t *testing.T, srv *httptest.Server, token string) {
	t.Helper()
	t.Setenv("CRONLENS_API_URL", srv.URL)
	path := filepath.Join(t.TempDir(), "token")
	t.Setenv("CRONLENS_TOKEN_FILE", path)
	if token != "" {
		if err := os.WriteFile(path, []byte(token+"\n"), 0o600); err != nil {
			t.Fatal(err)
		}
	}
}

func execute(cmd *cobra.Command, args ...string) (string, error) {
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestListPresets(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/presets" || r.URL.Query().Get("limit") != "10" {
			t.Errorf("unexpected request %s", r.URL)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[{"id":7,"name":"standup","config":{"pattern":"weekly","time":"09:00","meridiem":"am","days":{"monday":true}},"description":"Runs every week on Monday at 9:00."}],"total":1,"limit":10,"offset":0}`))
	}))
	defer srv.Close()
	setup(t, srv, "")

	out, err := execute(listPresetsCmd(), "--limit", "10")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, want := range []string{"standup", "weekly", "Runs every week on Monday at 9:00.", "1 of 1 presets"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	out, err = execute(listPresetsCmd(), "--json")
	if err != nil {
		t.Fatalf("list --json: %v", err)
	}
	var items []map[string]interface{}
	if err := json.Unmarshal([]byte(out), &items); err != nil {
		t.Fatalf("unmarshal %q: %v", out, err)
	}
	if len(items) != 1 || items[0]["name"] != "standup" {
		t.Errorf("unexpected items: %v", items)
	}
}

func TestCreatePreset(t *testing.T) {
	var got struct {
		Name   string `json:"name"`
		Config struct {
			Pattern  string          `json:"pattern"`
			Time     string          `json:"time"`
			Meridiem string          `json:"meridiem"`
			Days     map[string]bool `json:"days"`
		} `json:"config"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.Header.Get("Authorization") != "Bearer tok" {
			t.Errorf("unexpected request %s auth=%q", r.Method, r.Header.Get("Authorization"))
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":3,"name":"standup","description":"Runs every week on Monday, Friday at 9:00."}`))
	}))
	defer srv.Close()
	setup(t, srv, "tok")

	out, err := execute(createPresetCmd(), "--name", "standup", "-p", "weekly", "-d", "mon,fri", "-t", "09:00", "-m", "am")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.Contains(out, "Created preset 3 (standup): Runs every week on Monday, Friday at 9:00.") {
		t.Errorf("unexpected output %q", out)
	}
	if got.Name != "standup" || got.Config.Pattern != "weekly" || !got.Config.Days["monday"] || !got.Config.Days["friday"] || got.Config.Days["sunday"] {
		t.Errorf("unexpected request body: %+v", got)
	}
}

func TestCreatePreset_NoToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected without a token")
	}))
	defer srv.Close()
	setup(t, srv, "")

	_, err := execute(createPresetCmd(), "--name", "x")
	if !errors.Is(err, config.ErrNoToken) {
		t.Errorf("got %v, want ErrNoToken", err)
	}
}

func TestCreatePreset_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"preset name already exists"}`))
	}))
	defer srv.Close()
	setup(t, srv, "tok")

	_, err := execute(createPresetCmd(), "--name", "dup")
	if err == nil || !strings.Contains(err.Error(), "409") || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDeletePreset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/v1/presets/4" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()
	setup(t, srv, "tok")

	out, err := execute(deletePresetCmd(), "4")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if strings.TrimSpace(out) != "Preset deleted" {
		t.Errorf("unexpected output %q", out)
	}

	if _, err := execute(deletePresetCmd(), "abc"); err == nil {
		t.Error("expected error for non-numeric id")
	}
}
