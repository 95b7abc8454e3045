package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/employee-intake/intake-service/internal/core/domain"
)

// memoryRepo mimics the employeestable unique key on employee_id.
type memoryRepo struct {
	rows    map[string]domain.Employee
	inserts int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{rows: make(map[string]domain.Employee)}
}

func (r *memoryRepo) Create(_ context.Context, e *domain.Employee) error {
	r.inserts++
	if _, ok := r.rows[e.EmployeeID]; ok {
		return domain.ErrDuplicateEmployee
	}
	r.rows[e.EmployeeID] = *e
	return nil
}

func (r *memoryRepo) Ping(context.Context) error { return nil }

// newTestRouter gives every router its own registry so the HTTP collectors
// can be registered more than once per test binary.
func newTestRouter(repo *memoryRepo) *echo.Echo {
	reg := prometheus.NewRegistry()
	return NewRouter(Dependencies{
		Repo:       repo,
		StoreName:  "memory",
		Logger:     zerolog.Nop(),
		Registerer: reg,
		Gatherer:   reg,
	})
}

const annPayload = `{"employee_id":"123","name":"Ann","email":"ann@x.com","phone_number":"9876543210","department":"Eng","date_of_joining":"2024-01-01","role":"Dev"}`

func post(t *testing.T, h http.Handler, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/addEmployee", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	return rec.Code, resp["message"]
}

func TestRouter_AddEmployee_Scenarios(t *testing.T) {
	repo := newMemoryRepo()
	e := newTestRouter(repo)

	code, msg := post(t, e, annPayload)
	if code != http.StatusOK || msg != "Employee added successfully!" {
		t.Fatalf("first submit: got %d %q", code, msg)
	}
	if len(repo.rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(repo.rows))
	}

	code, msg = post(t, e, annPayload)
	if code != http.StatusConflict || msg != "Duplicate entry Exists." {
		t.Fatalf("resubmit: got %d %q", code, msg)
	}

	changed := strings.Replace(annPayload, `"name":"Ann"`, `"name":"Zed"`, 1)
	code, _ = post(t, e, changed)
	if code != http.StatusConflict {
		t.Fatalf("same id, other values: expected 409, got %d", code)
	}
	if len(repo.rows) != 1 || repo.rows["123"].Name != "Ann" {
		t.Fatalf("stored row changed: %+v", repo.rows)
	}

	noDept := strings.Replace(annPayload, `"department":"Eng",`, ``, 1)
	noDept = strings.Replace(noDept, `"123"`, `"124"`, 1)
	inserts := repo.inserts
	code, msg = post(t, e, noDept)
	if code != http.StatusBadRequest || msg != "All fields are required." {
		t.Fatalf("missing department: got %d %q", code, msg)
	}
	if repo.inserts != inserts || len(repo.rows) != 1 {
		t.Fatalf("missing department must not reach the store")
	}
}

func TestRouter_UnknownRouteUsesMessageEnvelope(t *testing.T) {
	e := newTestRouter(newMemoryRepo())

	req := httptest.NewRequest(http.MethodGet, "/employees", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil || resp["message"] == "" {
		t.Fatalf("expected message envelope, got %q", rec.Body.String())
	}
}

func TestRouter_MetricsAndReadiness(t *testing.T) {
	e := newTestRouter(newMemoryRepo())

	for _, path := range []string{"/metrics", "/health", "/health/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestRouter_AssignsUUIDRequestID(t *testing.T) {
	e := newTestRouter(newMemoryRepo())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	id := rec.Header().Get(echo.HeaderXRequestID)
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected uuid request id, got %q", id)
	}
}

func TestRouter_ExposesRequestMetrics(t *testing.T) {
	e := newTestRouter(newMemoryRepo())

	if code, _ := post(t, e, annPayload); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "intake_http_request_duration_seconds") {
		t.Fatalf("expected request latency histogram in /metrics output:\n%s", body)
	}
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(line, "intake_http_requests_total{") &&
			strings.Contains(line, `method="POST"`) &&
			strings.Contains(line, `url="/addEmployee"`) &&
			strings.HasSuffix(line, " 1") {
			return
		}
	}
	t.Fatalf("expected one counted POST /addEmployee in /metrics output:\n%s", body)
}

type panickingRepo struct{ memoryRepo }

func (r *panickingRepo) Create(context.Context, *domain.Employee) error {
	panic("driver exploded")
}

func TestRouter_RecoveredPanicUsesGenericEnvelope(t *testing.T) {
	reg := prometheus.NewRegistry()
	e := NewRouter(Dependencies{
		Repo:       &panickingRepo{},
		StoreName:  "memory",
		Logger:     zerolog.Nop(),
		Registerer: reg,
		Gatherer:   reg,
	})

	code, msg := post(t, e, annPayload)
	if code != http.StatusInternalServerError || msg != "internal server error" {
		t.Fatalf("expected 500 internal server error, got %d %q", code, msg)
	}
}
