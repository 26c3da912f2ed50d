package logging

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSetupVerbose(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)

	Setup(true)
	// Just ensure the default logger works at debug level
	slog.Debug("verbose test")
}

func TestSetupQuiet(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)

	Setup(false)
	slog.Info("quiet test")
}

func TestTransportLogsRequests(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)

	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := &http.Client{Transport: &Transport{}}
	resp, err := client.Get(srv.URL + "/api/visits")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if err := resp.Body.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	output := buf.String()
	if !bytes.Contains(buf.Bytes(), []byte("GET")) {
		t.Errorf("expected method in log, got %q", output)
	}
	if !bytes.Contains(buf.Bytes(), []byte("/api/visits")) {
		t.Errorf("expected path in log, got %q", output)
	}
	if !bytes.Contains(buf.Bytes(), []byte("status=200")) {
		t.Errorf("expected status in log, got %q", output)
	}
}

func TestTransportLogsFailures(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)

	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := &http.Client{Transport: &Transport{}}
	if _, err := client.Get(srv.URL + "/api/visits"); err == nil {
		t.Fatal("expected error from closed server")
	}

	if !bytes.Contains(buf.Bytes(), []byte("error")) {
		t.Errorf("expected error in log, got %q", buf.String())
	}
}
