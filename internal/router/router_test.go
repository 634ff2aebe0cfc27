package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/kararha/installment/internal/config"
	"github.com/kararha/installment/internal/database"
)

// newTestServer spins up the full API over a throwaway database.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := &config.Config{
		Server:   config.ServerConfig{Mode: "test"},
		Database: config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "test.db")},
		App:      config.AppSubConfig{PageSize: 10},
	}
	db, err := database.Init(cfg.Database)
	if err != nil {
		t.Fatalf("init database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	ts := httptest.NewServer(SetupRouter(cfg, db))
	t.Cleanup(ts.Close)
	return ts
}

// envelope mirrors the common response shape.
type envelope struct {
	Code    int                    `json:"code"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

// doJSON sends a JSON request, asserts the HTTP status and decodes the
// envelope.
func doJSON(t *testing.T, method, url string, body any, wantCode int) envelope {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantCode {
		t.Fatalf("%s %s code=%d want=%d", method, url, resp.StatusCode, wantCode)
	}
	var env envelope
	_ = json.NewDecoder(resp.Body).Decode(&env)
	return env
}

func customerField(t *testing.T, env envelope, key string) interface{} {
	t.Helper()
	cust, ok := env.Data["customer"].(map[string]interface{})
	if !ok {
		t.Fatalf("no customer in response: %+v", env)
	}
	return cust[key]
}

func TestAPILifecycle(t *testing.T) {
	ts := newTestServer(t)

	// create a customer with 1000.00 initial debt
	env := doJSON(t, "POST", ts.URL+"/api/customers",
		map[string]any{"name": "Ahmed", "phone": "0501234567", "initial_debt": 1000},
		http.StatusCreated)
	if got := customerField(t, env, "remaining_balance"); got != "1000.00" {
		t.Fatalf("remaining=%v want 1000.00", got)
	}
	id := fmt.Sprintf("%.0f", customerField(t, env, "id").(float64))

	// record a 500.00 debt
	env = doJSON(t, "POST", ts.URL+"/api/customers/"+id+"/add-debt",
		map[string]any{"amount": 500}, http.StatusCreated)
	if got := customerField(t, env, "total_debt"); got != "1500.00" {
		t.Fatalf("total_debt=%v want 1500.00", got)
	}

	// pay it off in full
	env = doJSON(t, "POST", ts.URL+"/api/customers/"+id+"/pay-installment",
		map[string]any{"amount": 1500}, http.StatusCreated)
	if got := customerField(t, env, "is_paid_off"); got != true {
		t.Fatalf("is_paid_off=%v want true", got)
	}

	// one more cent is rejected with the payment-specific code
	env = doJSON(t, "POST", ts.URL+"/api/customers/"+id+"/pay-installment",
		map[string]any{"amount": 0.01}, http.StatusBadRequest)
	if env.Code != 40002 {
		t.Fatalf("code=%d want payment code 40002", env.Code)
	}

	// a non-positive amount is plain validation, not the payment code
	env = doJSON(t, "POST", ts.URL+"/api/customers/"+id+"/pay-installment",
		map[string]any{"amount": -5}, http.StatusBadRequest)
	if env.Code != 40001 {
		t.Fatalf("code=%d want validation code 40001", env.Code)
	}

	// transactions listed newest first
	env = doJSON(t, "GET", ts.URL+"/api/customers/"+id+"/transactions", nil, http.StatusOK)
	txs, ok := env.Data["transactions"].([]interface{})
	if !ok || len(txs) != 2 {
		t.Fatalf("transactions=%v want 2 entries", env.Data["transactions"])
	}
	first := txs[0].(map[string]interface{})
	if first["kind"] != "payment" {
		t.Fatalf("newest entry kind=%v want payment", first["kind"])
	}

	// summary reflects the single customer
	env = doJSON(t, "GET", ts.URL+"/api/reports/summary", nil, http.StatusOK)
	if env.Data["total_remaining"] != "0.00" {
		t.Fatalf("total_remaining=%v want 0.00", env.Data["total_remaining"])
	}
	if env.Data["paid_off_customers"].(float64) != 1 {
		t.Fatalf("paid_off_customers=%v want 1", env.Data["paid_off_customers"])
	}

	// deleting a transaction returns the refreshed owner
	txID := fmt.Sprintf("%.0f", first["id"].(float64))
	env = doJSON(t, "DELETE", ts.URL+"/api/transactions/"+txID, nil, http.StatusOK)
	if got := customerField(t, env, "remaining_balance"); got != "1500.00" {
		t.Fatalf("after payment removal remaining=%v want 1500.00", got)
	}

	// delete the customer, then everything 404s
	doJSON(t, "DELETE", ts.URL+"/api/customers/"+id, nil, http.StatusOK)
	doJSON(t, "GET", ts.URL+"/api/customers/"+id, nil, http.StatusNotFound)
	doJSON(t, "POST", ts.URL+"/api/customers/"+id+"/add-debt",
		map[string]any{"amount": 10}, http.StatusNotFound)
}

func TestAPIValidationErrors(t *testing.T) {
	ts := newTestServer(t)

	// missing name / phone get field-specific 400s
	env := doJSON(t, "POST", ts.URL+"/api/customers",
		map[string]any{"phone": "0501234567"}, http.StatusBadRequest)
	if env.Message == "" {
		t.Fatal("expected field-level message for missing name")
	}
	doJSON(t, "POST", ts.URL+"/api/customers",
		map[string]any{"name": "Ahmed"}, http.StatusBadRequest)
	doJSON(t, "POST", ts.URL+"/api/customers",
		map[string]any{"name": "Ahmed", "phone": "0501234567", "initial_debt": -10},
		http.StatusBadRequest)

	// unknown ids
	doJSON(t, "GET", ts.URL+"/api/customers/424242", nil, http.StatusNotFound)
	doJSON(t, "DELETE", ts.URL+"/api/transactions/424242", nil, http.StatusNotFound)
	doJSON(t, "GET", ts.URL+"/api/customers/abc", nil, http.StatusBadRequest)
}

func TestAPISearchAndPagination(t *testing.T) {
	ts := newTestServer(t)

	for i, c := range []map[string]any{
		{"name": "Ahmed Ali", "phone": "0501111111"},
		{"name": "Sara Ahmed", "phone": "0552222222"},
		{"name": "Omar", "phone": "0663333444"},
	} {
		env := doJSON(t, "POST", ts.URL+"/api/customers", c, http.StatusCreated)
		if env.Code != 0 {
			t.Fatalf("create %d failed: %+v", i, env)
		}
	}

	env := doJSON(t, "GET", ts.URL+"/api/customers?search=3344", nil, http.StatusOK)
	if env.Data["total"].(float64) != 1 {
		t.Fatalf("phone search total=%v want 1", env.Data["total"])
	}

	env = doJSON(t, "GET", ts.URL+"/api/customers?page=2&per_page=2", nil, http.StatusOK)
	if env.Data["pages"].(float64) != 2 || env.Data["has_prev"] != true || env.Data["has_next"] != false {
		t.Fatalf("pagination envelope: %+v", env.Data)
	}

	// non-positive parameters are clamped, not an error
	env = doJSON(t, "GET", ts.URL+"/api/customers?page=0&per_page=-1", nil, http.StatusOK)
	if env.Data["current_page"].(float64) != 1 {
		t.Fatalf("current_page=%v want 1", env.Data["current_page"])
	}
}

func TestAPIExportCSV(t *testing.T) {
	ts := newTestServer(t)
	doJSON(t, "POST", ts.URL+"/api/customers",
		map[string]any{"name": "Ahmed", "phone": "0501234567", "initial_debt": 100},
		http.StatusCreated)

	resp, err := http.Get(ts.URL + "/api/export/csv")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("code=%d want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "text/csv; charset=utf-8" {
		t.Fatalf("content-type=%q", ct)
	}
}
