package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hogwarts-night/internal/config"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	srv := New(nil, config.Default())
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return srv, ts
}

func doPost(t *testing.T, ts *httptest.Server, path string, payload any) *http.Response {
	t.Helper()
	body := []byte("{}")
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
	}
	resp, err := http.Post(ts.URL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return resp
}

func doGet(t *testing.T, ts *httptest.Server, path string) *http.Response {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func requireOK(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	body := decodeBody(t, resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d (error=%v)", resp.StatusCode, body["error"])
	}
	if ok, _ := body["ok"].(bool); !ok {
		t.Fatalf("expected ok response, got %v", body)
	}
	return body
}

func requireFail(t *testing.T, resp *http.Response, status int) map[string]any {
	t.Helper()
	body := decodeBody(t, resp)
	if resp.StatusCode != status {
		t.Fatalf("expected status %d, got %d (%v)", status, resp.StatusCode, body)
	}
	if ok, _ := body["ok"].(bool); ok {
		t.Fatalf("expected failure response, got %v", body)
	}
	return body
}

func dataSlice(t *testing.T, body map[string]any) []any {
	t.Helper()
	data, ok := body["data"].([]any)
	if !ok {
		t.Fatalf("expected data array, got %T", body["data"])
	}
	return data
}
