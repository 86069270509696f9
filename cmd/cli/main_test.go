package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read stdout: %v", err)
	}
	return buf.String()
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("expected short unchanged, got %q", got)
	}

	if got := truncate("longerstring", 6); got != "lon..." {
		t.Fatalf("expected lon..., got %q", got)
	}
}

func TestPrintJSON(t *testing.T) {
	out := captureOutput(t, func() {
		printJSON(struct {
			A int `json:"a"`
		}{A: 1})
	})

	expected := "{\n  \"a\": 1\n}\n"
	if out != expected {
		t.Fatalf("unexpected json output:\n%s", out)
	}
}

func TestImportStatementCmdSendsFile(t *testing.T) {
	var gotPath, gotTenant string
	var gotPayload map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotTenant = r.Header.Get("X-Tenant-ID")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotPayload)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"stmt-1"}`))
	}))
	defer server.Close()

	file := filepath.Join(t.TempDir(), "statement.csv")
	if err := os.WriteFile(file, []byte("Datum;Iznos\n"), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	origURL, origTenant := baseURL, tenant
	baseURL, tenant = server.URL, "tenant-1"
	defer func() { baseURL, tenant = origURL, origTenant }()

	cmd := importStatementCmd()
	cmd.SetArgs([]string{file, "--format", "csv"})

	out := captureOutput(t, func() {
		if err := cmd.Execute(); err != nil {
			t.Fatalf("command failed: %v", err)
		}
	})

	if gotPath != "/api/v1/statements/import" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotTenant != "tenant-1" {
		t.Fatalf("expected tenant header, got %q", gotTenant)
	}
	if gotPayload["format"] != "csv" {
		t.Fatalf("expected format override, got %+v", gotPayload)
	}

	decoded, err := base64.StdEncoding.DecodeString(gotPayload["content"])
	if err != nil || string(decoded) != "Datum;Iznos\n" {
		t.Fatalf("unexpected content payload: %q (%v)", gotPayload["content"], err)
	}

	if out == "" {
		t.Fatal("expected response to be printed")
	}
}

func TestDoRequestReportsAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"DUPLICATE_STATEMENT"}`))
	}))
	defer server.Close()

	origURL := baseURL
	baseURL = server.URL
	defer func() { baseURL = origURL }()

	err := doRequest(http.MethodPost, "/api/v1/statements/import", map[string]string{})
	if err == nil {
		t.Fatal("expected error for 4xx response")
	}
}
