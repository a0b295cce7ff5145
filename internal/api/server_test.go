package api

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	jsoniter "github.com/json-iterator/go"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/draftstore"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/icp"
	icpmocks "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/icp/mocks"
	repomocks "github.com/vfg2006/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/catalog"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/enriching"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/meeting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/profiling"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const testSecret = "segredo-de-teste"

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

type testAPI struct {
	handler    http.Handler
	integrator *icpmocks.MockICPIntegrator
	meetings   *repomocks.MockMeetingRepository
	store      *draftstore.MemoryStore
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	ctrl := gomock.NewController(t)

	cfg := &config.Config{
		Auth:       config.Auth{Secret: testSecret},
		Enrichment: config.Enrichment{MaxUploadMB: 1},
		DraftCleanup: config.DraftCleanup{
			CronSchedule: "*/15 * * * *",
			MaxIdle:      time.Hour,
			Enabled:      true,
		},
	}

	api := &testAPI{
		integrator: icpmocks.NewMockICPIntegrator(ctrl),
		meetings:   repomocks.NewMockMeetingRepository(ctrl),
		store:      draftstore.NewMemoryStore(),
	}

	settings := profiling.NewService(api.integrator, api.store, authenticating.SessionTokenProvider{})
	catalogService := catalog.NewService()

	api.handler = NewHandler(cfg, Services{
		Authenticator: authenticating.NewService(cfg),
		Settings:      settings,
		Enrichment:    enriching.NewService(cfg),
		Meetings:      meeting.NewService(api.meetings, settings, catalogService),
		Catalog:       catalogService,
		CronJobs: handler.CronJobServices{
			DraftCleanupService: scheduler.NewDraftCleanupService(api.store, cfg),
		},
	})

	return api
}

func signToken(t *testing.T, userID, role string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.Claims{
		UserID: userID,
		Email:  userID + "@acme.com",
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func (a *testAPI) do(t *testing.T, method, path, token string, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func decodeView(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRouteShell_Gating(t *testing.T) {
	api := newTestAPI(t)
	member := signToken(t, "user-1", domain.RoleMember)

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		wantStatus int
	}{
		{name: "Healthcheck é público", method: http.MethodGet, path: "/healthcheck", wantStatus: http.StatusOK},
		{name: "Catálogo é público", method: http.MethodGet, path: "/v1/services", wantStatus: http.StatusOK},
		{name: "Serviço por ID é público", method: http.MethodGet, path: "/v1/services/lead-generation", wantStatus: http.StatusOK},
		{name: "Serviço inexistente", method: http.MethodGet, path: "/v1/services/nada", wantStatus: http.StatusNotFound},
		{name: "Me sem token", method: http.MethodGet, path: "/v1/me", wantStatus: http.StatusUnauthorized},
		{name: "Me com token inválido", method: http.MethodGet, path: "/v1/me", token: "abc", wantStatus: http.StatusUnauthorized},
		{name: "Me com sessão", method: http.MethodGet, path: "/v1/me", token: member, wantStatus: http.StatusOK},
		{name: "Configurações sem token", method: http.MethodGet, path: "/v1/settings", wantStatus: http.StatusUnauthorized},
		{name: "Campos de enriquecimento", method: http.MethodGet, path: "/v1/enrichment/fields", token: member, wantStatus: http.StatusOK},
		{name: "Cron exige admin", method: http.MethodGet, path: "/v1/cron/status", token: member, wantStatus: http.StatusForbidden},
		{name: "Editar sem abrir o painel", method: http.MethodPost, path: "/v1/settings/icp/detail/toggle", token: member, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := api.do(t, tt.method, tt.path, tt.token, "")
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestSettingsFlow(t *testing.T) {
	api := newTestAPI(t)
	token := signToken(t, "user-1", domain.RoleMember)

	enabled := true
	api.integrator.EXPECT().FetchCriteria(gomock.Any(), token).Return(&domain.RemoteICPCriteria{
		Enabled:       &enabled,
		EmployeeSizes: []string{"101-500"},
		FoundedYears:  []string{"pre-2000"},
	}, nil)

	rec := api.do(t, http.MethodGet, "/v1/settings", token, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	view := decodeView(t, rec)
	assert.Equal(t, true, view["detail_expanded"])
	assert.Equal(t, "loaded", view["load_state"])
	assert.Equal(t, []any{"201-500"}, view["icp"].(map[string]any)["employee_sizes"])
	assert.Equal(t, float64(4), view["question_count"])

	rec = api.do(t, http.MethodPost, "/v1/settings/icp/employee-sizes/toggle", token, `{"label":"5000+"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = api.do(t, http.MethodPost, "/v1/settings/icp/founded-years/toggle", token, `{"label":"Before 2000"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, []any{}, decodeView(t, rec)["icp"].(map[string]any)["founded_years"])

	rec = api.do(t, http.MethodPost, "/v1/settings/icp/employee-sizes/toggle", token, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(t, http.MethodPut, "/v1/settings/icp/enabled", token, `{"enabled":false}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decodeView(t, rec)["icp"].(map[string]any)["enabled"])

	rec = api.do(t, http.MethodPost, "/v1/settings/channels/crm/toggle", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeView(t, rec)["channels"].(map[string]any)["crm"])

	rec = api.do(t, http.MethodPost, "/v1/settings/channels/fax/toggle", token, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(t, http.MethodPost, "/v1/settings/questions/toggle", token,
		`{"category":"company","question":"What technologies do they use?"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(5), decodeView(t, rec)["question_count"])

	api.integrator.EXPECT().
		PushCriteria(gomock.Any(), token, domain.ICPCriteria{
			Enabled:       false,
			EmployeeSizes: []string{"201-500", "5000+"},
			FoundedYears:  []string{},
		}).
		Return(&icp.SaveResult{Success: false, Message: "Plano não permite ICP"}, nil)

	rec = api.do(t, http.MethodPost, "/v1/settings/icp/save", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	view = decodeView(t, rec)
	assert.Equal(t, "❌ Plano não permite ICP", view["message"])
	assert.Equal(t, "error", view["save_state"])

	rec = api.do(t, http.MethodDelete, "/v1/settings", token, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 0, api.store.Len())
}

func TestDashboardStats(t *testing.T) {
	api := newTestAPI(t)
	token := signToken(t, "user-1", domain.RoleMember)

	api.meetings.EXPECT().ListMeetings(gomock.Any(), domain.MeetingFilter{UserID: "user-1"}).Return([]*domain.Meeting{
		{ID: "a", Status: domain.MeetingStatusScheduled, ScheduledAt: time.Now().Add(time.Hour)},
		{ID: "b", Status: domain.MeetingStatusCancelled, ScheduledAt: time.Now()},
	}, nil)

	rec := api.do(t, http.MethodGet, "/v1/dashboard/stats", token, "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	stats := decodeView(t, rec)
	assert.Equal(t, float64(2), stats["total_meetings"])
	assert.Equal(t, float64(1), stats["upcoming_meetings"])
	assert.Equal(t, float64(1), stats["cancelled_meetings"])
	assert.Equal(t, false, stats["icp_enabled"])
	assert.Equal(t, float64(4), stats["available_services"])
}

func TestListMeetings_QueryParams(t *testing.T) {
	api := newTestAPI(t)
	token := signToken(t, "user-1", domain.RoleMember)

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	status := domain.MeetingStatusCompleted

	api.meetings.EXPECT().
		ListMeetings(gomock.Any(), domain.MeetingFilter{UserID: "user-1", Status: &status, From: &from, To: &to}).
		Return([]*domain.Meeting{}, nil)

	rec := api.do(t, http.MethodGet, "/v1/meetings?status=completed&from=2024-03-01&to=2024-03-31", token, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = api.do(t, http.MethodGet, "/v1/meetings?from=01-03-2024", token, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(t, http.MethodGet, "/v1/meetings?status=postponed", token, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func newEnrichmentRequest(t *testing.T, token string, withFile bool, fields []string, email string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if withFile {
		part, err := writer.CreateFormFile("file", "leads.csv")
		require.NoError(t, err)
		_, err = part.Write([]byte("name,company\nAna,Acme\nBruno,Globex\nCarla,Initech\n"))
		require.NoError(t, err)
	}
	for _, field := range fields {
		require.NoError(t, writer.WriteField("fields", field))
	}
	if email != "" {
		require.NoError(t, writer.WriteField("email", email))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/enrichment", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestSubmitEnrichment(t *testing.T) {
	api := newTestAPI(t)
	token := signToken(t, "user-1", domain.RoleMember)

	t.Run("Envio completo", func(t *testing.T) {
		rec := httptest.NewRecorder()
		api.handler.ServeHTTP(rec, newEnrichmentRequest(t, token, true, []string{"email,phone", "industry"}, "ana@acme.com"))

		require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
		receipt := decodeView(t, rec)
		assert.Equal(t, float64(3), receipt["rows"])
		assert.Equal(t, "queued", receipt["status"])
		assert.Equal(t, []any{"email", "phone", "industry"}, receipt["fields"])
		assert.Len(t, receipt["job_id"], 6)
	})

	t.Run("Sem arquivo lista as entradas faltando", func(t *testing.T) {
		rec := httptest.NewRecorder()
		api.handler.ServeHTTP(rec, newEnrichmentRequest(t, token, false, nil, "ana@acme.com"))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeView(t, rec)
		assert.Equal(t, "VAL_002", body["code"])
		assert.Equal(t, []any{"file", "fields"}, body["details"])
	})
}

func TestCronJobs(t *testing.T) {
	api := newTestAPI(t)
	admin := signToken(t, "admin-1", domain.RoleAdmin)

	rec := api.do(t, http.MethodGet, "/v1/cron/status", admin, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decodeView(t, rec), "draft-cleanup")

	rec = api.do(t, http.MethodPost, "/v1/cron/desconhecida/run", admin, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(t, http.MethodPost, "/v1/cron/draft-cleanup/run", admin, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewHandler_PanicLoggedWithCorrelationID(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	api := newTestAPI(t)
	member := signToken(t, "user-1", domain.RoleMember)

	api.meetings.EXPECT().ListMeetings(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.MeetingFilter) ([]*domain.Meeting, error) {
			panic("falha inesperada")
		})

	rec := api.do(t, http.MethodGet, "/v1/meetings", member, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	found := false
	for _, entry := range hook.AllEntries() {
		if entry.Message == "❌ PANIC na aplicação" {
			found = true
			assert.NotEmpty(t, entry.Data["correlation_id"])
		}
	}
	assert.True(t, found)
}
