/*
handlers_test.go - HTTP tests for the payroll API

Tests run against the real router so routing, middleware and JSON
encoding are exercised together.
*/
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func newTestServer(t *testing.T, maxBatch int) *httptest.Server {
	h := NewHandler(maxBatch)
	h.newBatchID = func() string { return "batch-test" }
	srv := httptest.NewServer(NewRouter(h, nil))
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, srv *httptest.Server, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func get(t *testing.T, srv *httptest.Server, path string) *http.Response {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

// =============================================================================
// COMPUTE
// =============================================================================

func TestComputePayroll_FullTime(t *testing.T) {
	srv := newTestServer(t, 0)

	resp := post(t, srv, "/api/payroll/compute",
		`{"contract_type":"full_time","day_hours":160,"night_hours":0,"holiday_hours":0,"hourly_rate":50000}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	res := decode[PayrollResultDTO](t, resp)
	assert.Equal(t, 8000000.0, res.GrossPay)
	assert.Equal(t, 1306400.0, res.TotalDeductions)
	assert.Equal(t, 6693600.0, res.NetPay)
	assert.Equal(t, "full_time", res.ContractType)
	assert.Equal(t, DeductionBreakdownDTO{Health: 320000, Pension: 320000, SeveranceAccrual: 666400}, res.DeductionBreakdown)
}

func TestComputePayroll_AliasIsEchoedCanonical(t *testing.T) {
	srv := newTestServer(t, 0)

	resp := post(t, srv, "/api/payroll/compute",
		`{"contract_type":"medio_tiempo","day_hours":80,"hourly_rate":50000}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	res := decode[PayrollResultDTO](t, resp)
	assert.Equal(t, "part_time", res.ContractType)
	assert.Equal(t, 4000000.0, res.GrossPay)
	assert.Equal(t, 166800.0, res.DeductionBreakdown.SeveranceAccrual)
}

func TestComputePayroll_ValidationErrors(t *testing.T) {
	srv := newTestServer(t, 0)

	cases := []struct {
		body  string
		code  string
		field string
	}{
		{`{"contract_type":"full_time","day_hours":-10,"hourly_rate":50000}`, "invalid_day_hours", "day_hours"},
		{`{"contract_type":"full_time","day_hours":"a","hourly_rate":50000}`, "invalid_day_hours", "day_hours"},
		{`{"contract_type":"full_time","night_hours":true,"hourly_rate":50000}`, "invalid_night_hours", "night_hours"},
		{`{"contract_type":"full_time","holiday_hours":null,"hourly_rate":50000}`, "invalid_holiday_hours", "holiday_hours"},
		{`{"contract_type":"full_time","day_hours":10,"hourly_rate":0}`, "invalid_hourly_rate", "hourly_rate"},
		{`{"contract_type":"full_time","day_hours":221,"hourly_rate":50000}`, "max_monthly_hours_exceeded", "hours"},
		{`{"contract_type":"full_time","hourly_rate":50000}`, "no_hours_worked", "hours"},
		{`{"contract_type":"invalid","day_hours":160,"hourly_rate":50000}`, "invalid_contract_type", "contract_type"},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			resp := post(t, srv, "/api/payroll/compute", tc.body)
			require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

			e := decode[ErrorResponse](t, resp)
			assert.Equal(t, tc.code, e.Code)
			assert.Equal(t, tc.field, e.Field)
			assert.NotEmpty(t, e.Error)
		})
	}
}

func TestComputePayroll_MalformedBody(t *testing.T) {
	srv := newTestServer(t, 0)

	resp := post(t, srv, "/api/payroll/compute", `{"day_hours":`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	e := decode[ErrorResponse](t, resp)
	assert.Equal(t, "Invalid request body", e.Error)
	assert.Empty(t, e.Code)
}

func TestComputePayroll_BodyTooLarge(t *testing.T) {
	srv := newTestServer(t, 0)

	body := `{"contract_type":"` + strings.Repeat("x", maxBodyBytes) + `"}`
	resp := post(t, srv, "/api/payroll/compute", body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestComputePayroll_AmountTooLargeForJSON(t *testing.T) {
	// GIVEN: Valid hours at a rate whose gross pay exceeds float64
	// WHEN: Computing
	// THEN: A readable 422 instead of an empty 200

	srv := newTestServer(t, 0)

	resp := post(t, srv, "/api/payroll/compute",
		`{"contract_type":"full_time","day_hours":220,"hourly_rate":1e308}`)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	e := decode[ErrorResponse](t, resp)
	assert.Equal(t, "amount_out_of_range", e.Code)
	assert.NotEmpty(t, e.Error)
}

// =============================================================================
// BATCH
// =============================================================================

func TestComputeBatch_AmountTooLargeOnlyFailsItsItem(t *testing.T) {
	srv := newTestServer(t, 0)

	resp := post(t, srv, "/api/payroll/batch", `{"items":[
		{"contract_type":"full_time","day_hours":160,"hourly_rate":50000},
		{"contract_type":"full_time","day_hours":220,"hourly_rate":1e308}
	]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	batch := decode[BatchResponseDTO](t, resp)
	assert.Equal(t, 1, batch.Succeeded)
	assert.Equal(t, 1, batch.Failed)
	require.Len(t, batch.Items, 2)

	require.NotNil(t, batch.Items[0].Result)
	assert.Equal(t, 8000000.0, batch.Items[0].Result.GrossPay)

	require.NotNil(t, batch.Items[1].Error)
	assert.Nil(t, batch.Items[1].Result)
	assert.Equal(t, "amount_out_of_range", batch.Items[1].Error.Code)
}

func TestComputeBatch_MixedOutcomes(t *testing.T) {
	// GIVEN: One valid item, one invalid item, one malformed item
	// WHEN: Submitting them as a batch
	// THEN: Each item succeeds or fails on its own, in order

	srv := newTestServer(t, 0)

	resp := post(t, srv, "/api/payroll/batch", `{"items":[
		{"contract_type":"full_time","day_hours":0,"night_hours":10,"hourly_rate":50000},
		{"contract_type":"full_time","day_hours":0,"hourly_rate":50000},
		"not an object"
	]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	batch := decode[BatchResponseDTO](t, resp)
	assert.Equal(t, "batch-test", batch.BatchID)
	assert.Equal(t, 1, batch.Succeeded)
	assert.Equal(t, 2, batch.Failed)
	require.Len(t, batch.Items, 3)

	for i, item := range batch.Items {
		assert.Equal(t, i, item.Index)
	}

	require.NotNil(t, batch.Items[0].Result)
	assert.Nil(t, batch.Items[0].Error)
	assert.Equal(t, 675000.0, batch.Items[0].Result.GrossPay)

	require.NotNil(t, batch.Items[1].Error)
	assert.Equal(t, "no_hours_worked", batch.Items[1].Error.Code)

	require.NotNil(t, batch.Items[2].Error)
	assert.Equal(t, "malformed_input", batch.Items[2].Error.Code)
}

func TestComputeBatch_Limits(t *testing.T) {
	srv := newTestServer(t, 2)

	resp := post(t, srv, "/api/payroll/batch", `{"items":[]}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "empty_batch", decode[ErrorResponse](t, resp).Code)

	item := `{"contract_type":"full_time","day_hours":1,"hourly_rate":1000}`
	resp = post(t, srv, "/api/payroll/batch", fmt.Sprintf(`{"items":[%s,%s,%s]}`, item, item, item))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "batch_too_large", decode[ErrorResponse](t, resp).Code)

	resp = post(t, srv, "/api/payroll/batch", fmt.Sprintf(`{"items":[%s,%s]}`, item, item))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, decode[BatchResponseDTO](t, resp).Succeeded)

	resp = post(t, srv, "/api/payroll/batch", `[]`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestNewHandler_DefaultBatchIDs(t *testing.T) {
	h := NewHandler(0)
	assert.Equal(t, DefaultMaxBatchSize, h.MaxBatchSize)

	a, b := h.newBatchID(), h.newBatchID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

// =============================================================================
// RATES AND HEALTH
// =============================================================================

func TestGetRates(t *testing.T) {
	srv := newTestServer(t, 0)

	resp := get(t, srv, "/api/payroll/rates")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	rates := decode[RatesDTO](t, resp)
	assert.Equal(t, 1.35, rates.NightMultiplier)
	assert.Equal(t, 1.75, rates.HolidayMultiplier)
	assert.Equal(t, 220.0, rates.MaxMonthlyHours)
	require.Len(t, rates.Deductions, 2)
	assert.Equal(t, DeductionRatesDTO{Health: 0.04, Pension: 0.04, SeveranceAccrual: 0.0833, Total: 0.1633}, rates.Deductions["full_time"])
	assert.Equal(t, DeductionRatesDTO{Health: 0.04, Pension: 0.04, SeveranceAccrual: 0.0417, Total: 0.1217}, rates.Deductions["part_time"])
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, 0)

	resp := get(t, srv, "/api/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]string{"status": "ok"}, decode[map[string]string](t, resp))
}

func TestRouter_CORS(t *testing.T) {
	srv := newTestServer(t, 0)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/payroll/compute", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "http://localhost:5173", resp.Header.Get("Access-Control-Allow-Origin"))
}
