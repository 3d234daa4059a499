package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gfssolutions/solar-api/internal/domain"
	"github.com/gfssolutions/solar-api/internal/pkg/config"
	"github.com/gfssolutions/solar-api/internal/pkg/mailer"
)

type memStore struct {
	leads []*domain.Lead
}

func (m *memStore) CreateLead(_ context.Context, lead *domain.Lead) error {
	m.leads = append(m.leads, lead)
	return nil
}

func (m *memStore) ListLeads(_ context.Context) ([]*domain.Lead, error) {
	return m.leads, nil
}

type memMailer struct {
	sent []*mailer.Message
}

func (m *memMailer) Send(_ context.Context, msg *mailer.Message) error {
	m.sent = append(m.sent, msg)
	return nil
}

func newTestService(t *testing.T) (*APIService, *memStore, *memMailer) {
	t.Helper()
	config.Init()

	st := &memStore{}
	m := &memMailer{}
	svc, err := NewAPIService(st, m)
	require.NoError(t, err)
	return svc, st, m
}

func do(svc *APIService, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	svc.router.ServeHTTP(rec, req)
	return rec
}

func TestSubmitLeadOK(t *testing.T) {
	svc, st, m := newTestService(t)

	rec := do(svc, http.MethodPost, "/api/v1/leads",
		`{"nome":"Mario","cognome":"Rossi","email":"mario@example.com","telefono":"3331234567"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp domain.StatusResponse
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Len(t, st.leads, 1)
	assert.Len(t, m.sent, 2)
}

func TestSubmitLeadMalformedBody(t *testing.T) {
	svc, st, _ := newTestService(t)

	rec := do(svc, http.MethodPost, "/api/v1/leads", `{"nome":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp domain.StatusResponse
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.NotEmpty(t, resp.Error)
	assert.Empty(t, st.leads, "nothing persisted on a validation failure")
}

func TestSubmitLeadMissingName(t *testing.T) {
	svc, st, m := newTestService(t)

	rec := do(svc, http.MethodPost, "/api/v1/leads", `{"cognome":"Rossi"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, st.leads)
	assert.Empty(t, m.sent)
}

func TestValidateLeadStep(t *testing.T) {
	svc, _, _ := newTestService(t)

	rec := do(svc, http.MethodPost, "/api/v1/leads/steps",
		`{"step":1,"data":{"nome":"Mario"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"valid":false`)
	assert.Contains(t, rec.Body.String(), "cognome")
}

func TestSimulateReturnsBothScenarios(t *testing.T) {
	svc, _, _ := newTestService(t)

	rec := do(svc, http.MethodPost, "/api/v1/simulations", `{
		"profile": {"floor_area_m2": 90, "occupants": 3, "zone": "north"},
		"input": {
			"use_manual_consumption": true,
			"manual_consumption_kwh": 3200,
			"unit_price": 0.28,
			"inflation_pct": 4,
			"capacity_kw": 4.5,
			"system_cost": 8500,
			"battery_cost": 4000,
			"incentive_enabled": true
		}
	}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := rec.Body.String()
	assert.Contains(t, body, `"without_battery"`)
	assert.Contains(t, body, `"with_battery"`)
	assert.Contains(t, body, `"payback_years"`)
	assert.Contains(t, body, `"rating"`)
}

func TestQuickEstimate(t *testing.T) {
	svc, _, _ := newTestService(t)

	rec := do(svc, http.MethodPost, "/api/v1/estimates/quick", `{"monthly_bill":180}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"annual_savings":1836`)
}

func TestQuickEstimateRejectsMissingBill(t *testing.T) {
	svc, _, _ := newTestService(t)

	rec := do(svc, http.MethodPost, "/api/v1/estimates/quick", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
