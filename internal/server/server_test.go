package server

import (
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/banco-ledger/banco/internal/config"
    "github.com/banco-ledger/banco/internal/logging"
)

func TestServerRendersErrorsAsJSON(t *testing.T) {
    srv, err := New(config.Config{AppName: "Banco", AppEnv: "test", LedgerCapacity: 10, RateLimit: 60}, nil, logging.Discard())
    if err != nil {
        t.Fatalf("new server: %v", err)
    }

    req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/ES00000000000000000000", nil)
    req.Header.Set("X-Request-ID", "req-42")
    resp, err := srv.App().Test(req)
    if err != nil {
        t.Fatalf("app.Test: %v", err)
    }
    defer resp.Body.Close()

    if resp.StatusCode != http.StatusNotFound {
        t.Fatalf("expected %d got %d", http.StatusNotFound, resp.StatusCode)
    }
    var body map[string]string
    if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
        t.Fatalf("decode: %v", err)
    }
    if body["error"] == "" || body["request_id"] != "req-42" {
        t.Fatalf("unexpected error body %v", body)
    }
}
