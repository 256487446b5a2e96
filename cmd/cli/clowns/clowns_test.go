package clowns

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/docport/doctor-portal/internal/models"
)

// captureOutput helps capture stdout during command execution.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String()
}

func TestListClowns_TableOutput(t *testing.T) {
	clowns := []models.Clown{
		{ID: 1, Name: "Bobo", Color: "red", Age: 7},
		{ID: 2, Name: "Pip", Color: "blue", Age: 3},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/clowns" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(clowns)
	}))
	defer srv.Close()

	_ = os.Setenv("DOCPORT_API_URL", srv.URL)
	defer os.Unsetenv("DOCPORT_API_URL")

	cmd := listClownsCmd()

	out := captureOutput(t, func() {
		cmd.Run(cmd, []string{})
	})

	if !strings.Contains(out, "Bobo") || !strings.Contains(out, "Pip") {
		t.Fatalf("expected clown names in output, got: %s", out)
	}
}

func TestListClowns_JSONOutput(t *testing.T) {
	clowns := []models.Clown{
		{ID: 1, Name: "Bobo", Color: "red", Age: 7},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(clowns)
	}))
	defer srv.Close()

	_ = os.Setenv("DOCPORT_API_URL", srv.URL)
	defer os.Unsetenv("DOCPORT_API_URL")

	cmd := listClownsCmd()
	_ = cmd.Flags().Set("json", "true")

	out := captureOutput(t, func() {
		cmd.Run(cmd, []string{})
	})

	if !strings.Contains(out, `"name": "Bobo"`) {
		t.Fatalf("expected JSON output, got: %s", out)
	}
}

func TestAddClown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/api/clowns" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var in models.Clown
		_ = json.NewDecoder(r.Body).Decode(&in)
		in.ID = 9
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(in)
	}))
	defer srv.Close()

	_ = os.Setenv("DOCPORT_API_URL", srv.URL)
	defer os.Unsetenv("DOCPORT_API_URL")

	cmd := addClownCmd()
	_ = cmd.Flags().Set("name", "Bobo")
	_ = cmd.Flags().Set("color", "red")
	_ = cmd.Flags().Set("age", "7")

	out := captureOutput(t, func() {
		cmd.Run(cmd, []string{})
	})

	if !strings.Contains(out, "Created clown 9") {
		t.Fatalf("expected creation message, got: %s", out)
	}
}
