package routes

import (
    "context"
    "encoding/json"
    "io"
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"
    "time"

    miniredis "github.com/alicebob/miniredis/v2"
    "github.com/gofiber/fiber/v2"
    "github.com/redis/go-redis/v9"

    "github.com/banco-ledger/banco/internal/config"
    "github.com/banco-ledger/banco/internal/logging"
    "github.com/banco-ledger/banco/internal/notification"
)

const corporateAccount = `{
    "iban": "ES21000418450200051332",
    "kind": "corporate",
    "opening_balance": "5000",
    "holder": {"name": "Ana", "surname": "Ruiz", "national_id": "12345678Z"},
    "authorized_entities": ["Acme SL"],
    "max_overdraft": "2000",
    "overdraft_interest_rate": "4.5",
    "fixed_overdraft_fee": "30"
}`

func testConfig() config.Config {
    return config.Config{
        AppName:        "Banco",
        AppEnv:         "test",
        LedgerCapacity: 100,
        RateLimit:      60,
        EventStream:    notification.DefaultStream,
        IdempotencyTTL: time.Minute,
    }
}

func newApp(t *testing.T, cache *redis.Client) *fiber.App {
    t.Helper()
    app := fiber.New()
    if err := Setup(app, Deps{Cfg: testConfig(), Cache: cache, Logger: logging.Discard()}); err != nil {
        t.Fatalf("setup: %v", err)
    }
    return app
}

func send(t *testing.T, app *fiber.App, method, path, body string, headers map[string]string) (int, map[string]any) {
    t.Helper()
    var reader io.Reader
    if body != "" {
        reader = strings.NewReader(body)
    }
    req := httptest.NewRequest(method, path, reader)
    req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
    for k, v := range headers {
        req.Header.Set(k, v)
    }
    resp, err := app.Test(req)
    if err != nil {
        t.Fatalf("%s %s: %v", method, path, err)
    }
    defer resp.Body.Close()
    raw, err := io.ReadAll(resp.Body)
    if err != nil {
        t.Fatalf("read body: %v", err)
    }
    out := map[string]any{}
    if len(raw) > 0 && strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
        if err := json.Unmarshal(raw, &out); err != nil {
            t.Fatalf("decode %s: %v", raw, err)
        }
    }
    return resp.StatusCode, out
}

func TestSetupRequiresRedisOutsideDev(t *testing.T) {
    cfg := testConfig()
    cfg.AppEnv = "production"
    if err := Setup(fiber.New(), Deps{Cfg: cfg, Logger: logging.Discard()}); err == nil {
        t.Fatalf("expected error without redis in production")
    }
}

func TestHealthAndPingWithoutRedis(t *testing.T) {
    app := newApp(t, nil)

    status, body := send(t, app, http.MethodGet, "/healthz", "", nil)
    if status != http.StatusOK {
        t.Fatalf("healthz status %d", status)
    }
    if got := body["status"].(map[string]any)["redis"]; got != "disabled" {
        t.Fatalf("expected redis disabled, got %v", got)
    }

    status, body = send(t, app, http.MethodGet, "/api/v1/ping", "", map[string]string{"X-Request-ID": "req-1"})
    if status != http.StatusOK || body["request_id"] != "req-1" {
        t.Fatalf("unexpected ping response %d %v", status, body)
    }
}

func TestCorporateOverdraftFlow(t *testing.T) {
    app := newApp(t, nil)

    status, _ := send(t, app, http.MethodPost, "/api/v1/accounts", corporateAccount, nil)
    if status != http.StatusCreated {
        t.Fatalf("open status %d", status)
    }

    status, receipt := send(t, app, http.MethodPost, "/api/v1/accounts/ES21000418450200051332/withdrawals", `{"amount":"5010"}`, nil)
    if status != http.StatusCreated {
        t.Fatalf("withdraw status %d", status)
    }
    if receipt["balance"] != "-40" || receipt["commission"] != "30" || receipt["commission_basis"] != "fixed" {
        t.Fatalf("unexpected receipt %v", receipt)
    }

    status, _ = send(t, app, http.MethodPost, "/api/v1/accounts/ES21000418450200051332/withdrawals", `{"amount":"7100"}`, nil)
    if status != http.StatusUnprocessableEntity {
        t.Fatalf("expected %d got %d", http.StatusUnprocessableEntity, status)
    }

    status, balance := send(t, app, http.MethodGet, "/api/v1/accounts/ES21000418450200051332/balance", "", nil)
    if status != http.StatusOK || balance["balance"] != "-40" {
        t.Fatalf("unexpected balance %d %v", status, balance)
    }

    status, h := send(t, app, http.MethodGet, "/api/v1/holders/12345678Z", "", nil)
    if status != http.StatusOK || h["surname"] != "Ruiz" {
        t.Fatalf("holder not registered on open: %d %v", status, h)
    }
}

func TestRedisBackedWiring(t *testing.T) {
    mr, err := miniredis.Run()
    if err != nil {
        t.Fatalf("start miniredis: %v", err)
    }
    defer mr.Close()
    cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
    defer cache.Close()

    app := newApp(t, cache)
    if status, _ := send(t, app, http.MethodPost, "/api/v1/accounts", corporateAccount, nil); status != http.StatusCreated {
        t.Fatalf("open status %d", status)
    }

    key := map[string]string{"Idempotency-Key": "w-1"}
    path := "/api/v1/accounts/ES21000418450200051332/withdrawals"
    _, first := send(t, app, http.MethodPost, path, `{"amount":"6000"}`, key)
    _, second := send(t, app, http.MethodPost, path, `{"amount":"6000"}`, key)
    if first["transaction_id"] == nil || first["transaction_id"] != second["transaction_id"] {
        t.Fatalf("expected replayed receipt, got %v and %v", first, second)
    }
    if first["balance"] != "-1045" || first["commission_basis"] != "percentage" {
        t.Fatalf("unexpected receipt %v", first)
    }

    entries, err := cache.XRange(context.Background(), notification.DefaultStream, "-", "+").Result()
    if err != nil {
        t.Fatalf("xrange: %v", err)
    }
    if len(entries) != 1 || entries[0].Values["kind"] != notification.KindOverdraft {
        t.Fatalf("expected a single overdraft event, got %v", entries)
    }

    status, health := send(t, app, http.MethodGet, "/healthz", "", nil)
    if status != http.StatusOK || health["status"].(map[string]any)["redis"] != "ok" {
        t.Fatalf("unexpected health %d %v", status, health)
    }
}
