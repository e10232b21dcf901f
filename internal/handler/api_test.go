package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/manpower-erp-api/internal/middleware"
	"github.com/noah-isme/manpower-erp-api/internal/service"
	"github.com/noah-isme/manpower-erp-api/internal/session"
	"github.com/noah-isme/manpower-erp-api/internal/store"
)

var apiNow = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

type testAPI struct {
	router   *gin.Engine
	registry *session.Registry
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := session.NewRegistry(session.Config{}, nil, store.WithClock(func() time.Time { return apiNow }))
	validate := service.NewValidator()
	commissions := service.NewCommissionService()
	dashboard := service.NewDashboardService(nil, service.DashboardServiceConfig{}, nil)
	handlers := Handlers{
		Sessions:    NewSessionHandler(registry),
		Candidates:  NewCandidateHandler(service.NewCandidateService(validate, nil)),
		Attendance:  NewAttendanceHandler(service.NewAttendanceService(validate, nil)),
		Dashboard:   NewDashboardHandler(dashboard),
		Alerts:      NewAlertHandler(service.NewExpiryService(0)),
		Commissions: NewCommissionHandler(commissions),
		Payroll:     NewPayrollHandler(service.NewPayrollService(0, validate, nil)),
		Exports:     NewExportHandler(service.NewExportService(commissions, nil, nil)),
		Shop:        NewShopHandler(service.NewShopService(validate, nil, nil)),
	}

	r := gin.New()
	r.Use(middleware.WithResponseMeta())
	RegisterRoutes(r.Group("/api/v1"), handlers, middleware.Session(registry))
	return &testAPI{router: r, registry: registry}
}

func (a *testAPI) do(t *testing.T, method, path, sessionID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, "/api/v1"+path, reader)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set(middleware.SessionHeader, sessionID)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testAPI) newSession(t *testing.T) string {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/sessions", "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := rec.Header().Get(middleware.SessionHeader)
	require.NotEmpty(t, id)
	return id
}

type listEnvelope struct {
	Data  []map[string]interface{} `json:"data"`
	Error map[string]interface{}   `json:"error"`
	Meta  map[string]interface{}   `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest), rec.Body.String())
}

func TestSessionLifecycle(t *testing.T) {
	api := newTestAPI(t)
	id := api.newSession(t)

	rec := api.do(t, http.MethodGet, "/candidates", id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, rec.Header().Get(middleware.SessionHeader))

	rec = api.do(t, http.MethodDelete, "/sessions/current", id, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Zero(t, api.registry.Len())

	rec = api.do(t, http.MethodGet, "/candidates", id, nil)
	assert.NotEqual(t, id, rec.Header().Get(middleware.SessionHeader))
}

func TestCandidateEndpoints(t *testing.T) {
	api := newTestAPI(t)
	id := api.newSession(t)

	var list listEnvelope
	decode(t, api.do(t, http.MethodGet, "/candidates", id, nil), &list)
	require.Len(t, list.Data, 3)
	assert.Equal(t, "Rahul Sharma", list.Data[0]["name"])
	assert.EqualValues(t, 3, list.Meta["total"])

	rec := api.do(t, http.MethodPost, "/candidates", id, map[string]interface{}{
		"name":             "Imran Khan",
		"agent_name":       "Ali Travels",
		"agent_commission": 900,
		"country":          "Kuwait",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created responseEnvelope
	decode(t, rec, &created)
	assert.EqualValues(t, 104, created.Data["id"])
	assert.Equal(t, "Document Collection", created.Data["visa_status"])

	rec = api.do(t, http.MethodPatch, "/candidates/104/status", id, map[string]string{"visa_status": "Medical Fit"})
	require.Equal(t, http.StatusOK, rec.Code)

	var got responseEnvelope
	decode(t, api.do(t, http.MethodGet, "/candidates/104", id, nil), &got)
	assert.Equal(t, "Medical Fit", got.Data["visa_status"])

	decode(t, api.do(t, http.MethodGet, "/candidates?agent=Ali%20Travels", id, nil), &list)
	assert.Len(t, list.Data, 3)
}

func TestCandidateEndpointErrors(t *testing.T) {
	api := newTestAPI(t)
	id := api.newSession(t)

	cases := []struct {
		name   string
		method string
		path   string
		body   interface{}
		status int
	}{
		{"unknown id", http.MethodGet, "/candidates/999", nil, http.StatusNotFound},
		{"non numeric id", http.MethodGet, "/candidates/abc", nil, http.StatusBadRequest},
		{"negative commission", http.MethodPost, "/candidates", map[string]interface{}{"name": "X", "agent_commission": -5}, http.StatusBadRequest},
		{"unknown status on add", http.MethodPost, "/candidates", map[string]interface{}{"name": "X", "visa_status": "Lost"}, http.StatusBadRequest},
		{"unknown status on update", http.MethodPatch, "/candidates/101/status", map[string]string{"visa_status": "Stamped"}, http.StatusBadRequest},
		{"update missing candidate", http.MethodPatch, "/candidates/999/status", map[string]string{"visa_status": "Deployed"}, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := api.do(t, tc.method, tc.path, id, tc.body)
			assert.Equal(t, tc.status, rec.Code, rec.Body.String())
			var env responseEnvelope
			decode(t, rec, &env)
			assert.NotEmpty(t, env.Error["code"])
		})
	}

	var list listEnvelope
	decode(t, api.do(t, http.MethodGet, "/candidates", id, nil), &list)
	assert.Len(t, list.Data, 3)
}

func TestSessionsAreIsolated(t *testing.T) {
	api := newTestAPI(t)
	first := api.newSession(t)
	second := api.newSession(t)

	rec := api.do(t, http.MethodPost, "/candidates", first, map[string]interface{}{"name": "Only In First"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var list listEnvelope
	decode(t, api.do(t, http.MethodGet, "/candidates", second, nil), &list)
	assert.Len(t, list.Data, 3)
	decode(t, api.do(t, http.MethodGet, "/candidates", first, nil), &list)
	assert.Len(t, list.Data, 4)
}

func TestAttendanceAndPayroll(t *testing.T) {
	api := newTestAPI(t)
	id := api.newSession(t)

	for day := 1; day <= 15; day++ {
		date := time.Date(2024, 6, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		rec := api.do(t, http.MethodPost, "/attendance", id, map[string]interface{}{"date": date, "candidate_id": 101, "present": true})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}
	rec := api.do(t, http.MethodPost, "/attendance", id, map[string]interface{}{"date": "2024-06-16", "candidate_id": 101, "present": false})
	require.Equal(t, http.StatusCreated, rec.Code)

	var list listEnvelope
	decode(t, api.do(t, http.MethodGet, "/attendance?candidateId=101&date=2024-06-16", id, nil), &list)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "Absent", list.Data[0]["status"])

	var payroll responseEnvelope
	rec = api.do(t, http.MethodPost, "/payroll", id, map[string]interface{}{"candidate_id": 101, "basic_salary": 3000})
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &payroll)
	assert.EqualValues(t, 15, payroll.Data["presentDays"])
	assert.EqualValues(t, 1, payroll.Data["absentDays"])
	assert.EqualValues(t, 1500, payroll.Data["netSalary"])

	assert.Equal(t, http.StatusNotFound, api.do(t, http.MethodPost, "/payroll", id, map[string]interface{}{"candidate_id": 999, "basic_salary": 3000}).Code)
	assert.Equal(t, http.StatusBadRequest, api.do(t, http.MethodPost, "/payroll", id, map[string]interface{}{"candidate_id": 101, "basic_salary": 0}).Code)
	assert.Equal(t, http.StatusNotFound, api.do(t, http.MethodPost, "/attendance", id, map[string]interface{}{"date": "2024-06-16", "candidate_id": 999, "present": true}).Code)
	assert.Equal(t, http.StatusBadRequest, api.do(t, http.MethodGet, "/attendance?date=16-06-2024", id, nil).Code)
}

func TestDashboardAlertsAndCommissions(t *testing.T) {
	api := newTestAPI(t)
	id := api.newSession(t)

	var dash responseEnvelope
	decode(t, api.do(t, http.MethodGet, "/dashboard", id, nil), &dash)
	assert.EqualValues(t, 3, dash.Data["totalCandidates"])
	assert.EqualValues(t, 4700, dash.Data["totalCommissionDue"])
	assert.Equal(t, false, dash.Meta["cache_hit"])

	var alerts responseEnvelope
	decode(t, api.do(t, http.MethodGet, "/alerts/expiry?asOf=2024-06-01", id, nil), &alerts)
	passports, ok := alerts.Data["passports"].([]interface{})
	require.True(t, ok)
	require.Len(t, passports, 1)
	assert.Equal(t, "Rahul Sharma", passports[0].(map[string]interface{})["name"])
	assert.Equal(t, http.StatusBadRequest, api.do(t, http.MethodGet, "/alerts/expiry?asOf=yesterday", id, nil).Code)

	var rollup responseEnvelope
	decode(t, api.do(t, http.MethodGet, "/commissions", id, nil), &rollup)
	assert.EqualValues(t, 4700, rollup.Data["grandTotal"])

	var agent responseEnvelope
	decode(t, api.do(t, http.MethodGet, "/commissions/Ali%20Travels", id, nil), &agent)
	assert.EqualValues(t, 2700, agent.Data["total"])

	decode(t, api.do(t, http.MethodGet, "/commissions/Nobody", id, nil), &agent)
	assert.EqualValues(t, 0, agent.Data["total"])
	assert.Empty(t, agent.Data["candidates"])
}

func TestExportEndpoint(t *testing.T) {
	api := newTestAPI(t)
	id := api.newSession(t)

	rec := api.do(t, http.MethodGet, "/exports/candidates", id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "candidates_")
	assert.Contains(t, rec.Body.String(), "Rahul Sharma")

	rec = api.do(t, http.MethodGet, "/exports/commissions?format=xlsx", id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")))

	assert.Equal(t, http.StatusBadRequest, api.do(t, http.MethodGet, "/exports/payslips", id, nil).Code)
	assert.Equal(t, http.StatusBadRequest, api.do(t, http.MethodGet, "/exports/candidates?format=doc", id, nil).Code)
}

func TestShopFlow(t *testing.T) {
	api := newTestAPI(t)
	id := api.newSession(t)

	var products listEnvelope
	decode(t, api.do(t, http.MethodGet, "/shop/products", "", nil), &products)
	assert.Len(t, products.Data, 4)

	assert.Equal(t, http.StatusBadRequest, api.do(t, http.MethodPost, "/shop/cart/checkout", id, nil).Code)
	assert.Equal(t, http.StatusNotFound, api.do(t, http.MethodPost, "/shop/cart/items", id, map[string]int{"product_id": 99}).Code)

	require.Equal(t, http.StatusCreated, api.do(t, http.MethodPost, "/shop/cart/items", id, map[string]int{"product_id": 2}).Code)
	require.Equal(t, http.StatusCreated, api.do(t, http.MethodPost, "/shop/cart/items", id, map[string]int{"product_id": 4}).Code)

	var cart responseEnvelope
	decode(t, api.do(t, http.MethodGet, "/shop/cart", id, nil), &cart)
	assert.EqualValues(t, 7500, cart.Data["total"])

	var order responseEnvelope
	rec := api.do(t, http.MethodPost, "/shop/cart/checkout", id, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	decode(t, rec, &order)
	assert.EqualValues(t, 7500, order.Data["total"])

	decode(t, api.do(t, http.MethodGet, "/shop/cart", id, nil), &cart)
	assert.EqualValues(t, 0, cart.Data["count"])
}

func TestVisaStatusVocabulary(t *testing.T) {
	api := newTestAPI(t)

	var env struct {
		Data []string `json:"data"`
	}
	decode(t, api.do(t, http.MethodGet, "/visa-statuses", "", nil), &env)
	assert.Equal(t, []string{"Document Collection", "Medical Pending", "Medical Fit", "MOFA Ready", "Wakalah Done", "Visa Stamped", "Deployed"}, env.Data)
}
