package router_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"choukette/internal/adapter/api"
	"choukette/internal/adapter/api/handler"
	"choukette/internal/adapter/api/middleware"
	"choukette/internal/adapter/api/router"
	adapterrepo "choukette/internal/adapter/repository"
	"choukette/internal/domain/entity"
	"choukette/internal/domain/service"
	"choukette/internal/infrastructure/ratelimit"
	"choukette/internal/infrastructure/token"
	"choukette/internal/usecase"
	"choukette/pkg/response"
)

var testNow = time.Date(2024, time.February, 15, 10, 0, 0, 0, time.UTC)

const (
	adminEmail    = "admin@choukette.fr"
	adminPassword = "admin-secret"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type testServer struct {
	e       *echo.Echo
	auth    *usecase.AuthUseCase
	mission *usecase.MissionUseCase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	clock := func() time.Time { return testNow }
	snapshots := service.NewSnapshotService(adapterrepo.NewMemorySnapshotRepository())

	missionUC := usecase.NewMissionUseCase(clock)
	professionalUC := usecase.NewProfessionalUseCase(clock, 0)
	bakeryUC := usecase.NewBakeryUseCase(snapshots, clock, 0)
	statsUC := usecase.NewProfessionalStatsUseCase(snapshots, clock)
	blogUC := usecase.NewBlogUseCase(snapshots)
	require.NoError(t, blogUC.Generate(context.Background()))
	authUC := usecase.NewAuthUseCase(snapshots, bakeryUC, professionalUC, statsUC, clock)

	issuer := token.NewIssuer("test-secret", time.Hour)
	handler.Setup(snapshots, issuer,
		handler.AdminCredentials{Email: adminEmail, Password: adminPassword},
		authUC, missionUC, professionalUC, bakeryUC, statsUC, blogUC)

	e := echo.New()
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = response.HTTPErrorHandler
	router.Setup(e,
		middleware.NewAuthMiddleware(issuer, authUC),
		middleware.NewAdminMiddleware(),
		middleware.NewRateLimitMiddleware(ratelimit.NewRateLimiter()),
	)

	return &testServer{e: e, auth: authUC, mission: missionUC}
}

func (s *testServer) do(t *testing.T, method, path, body, bearer string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func (s *testServer) login(t *testing.T, email, password string, userType entity.UserType) string {
	t.Helper()

	body := `{"email":"` + email + `","password":"` + password + `","type":"` + string(userType) + `"}`
	rec, env := s.do(t, http.MethodPost, "/v1/auth/login", body, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out struct {
		Token string      `json:"token"`
		User  entity.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t)

	rec, _ := s.do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Server is running")

	rec, _ = s.do(t, http.MethodGet, "/storage-health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"snapshots":1`)
}

func TestBakeryLoginRejectsWrongPassword(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, http.MethodPost, "/v1/bakeries/login", `{"email":"boulangerie@moulin.fr","password":"nope"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
	assert.Nil(t, s.auth.CurrentUser())
}

func TestBakeryDashboard(t *testing.T) {
	s := newTestServer(t)

	bearer := s.login(t, "boulangerie@moulin.fr", "demo123", entity.UserTypeBakery)

	rec, env := s.do(t, http.MethodGet, "/v1/dashboard/bakery", "", bearer)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var dash struct {
		Bakery       *entity.Bakery              `json:"bakery"`
		Missions     []entity.Mission            `json:"missions"`
		Stats        entity.BakeryStats          `json:"stats"`
		MonthlyStats []entity.BakeryMonthlyStats `json:"monthlyStats"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &dash))

	require.NotNil(t, dash.Bakery)
	assert.Equal(t, "bakery1", dash.Bakery.ID)
	assert.Len(t, dash.Missions, 4)
	assert.Equal(t, entity.BakeryStats{
		TotalMissions:       4,
		OpenMissions:        2,
		FilledMissions:      2,
		TotalApplications:   2,
		PendingApplications: 2,
	}, dash.Stats)
	assert.Len(t, dash.MonthlyStats, 6)

	rec, _ = s.do(t, http.MethodGet, "/v1/dashboard/professional", "", bearer)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestProfessionalAppliesToMission(t *testing.T) {
	s := newTestServer(t)

	before, err := s.mission.GetByID("1")
	require.NoError(t, err)

	bearer := s.login(t, "camille.moreau@example.fr", "x", entity.UserTypeProfessional)

	rec, env := s.do(t, http.MethodPost, "/v1/missions/1/applications", `{"message":"Disponible dès lundi","proposedRate":27}`, bearer)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var app entity.Application
	require.NoError(t, json.Unmarshal(env.Data, &app))
	assert.Equal(t, "pro1", app.ProfessionalID)
	assert.Equal(t, entity.ApplicationStatusPending, app.Status)
	require.NotNil(t, app.ProposedRate)
	assert.Equal(t, 27.0, *app.ProposedRate)

	after, err := s.mission.GetByID("1")
	require.NoError(t, err)
	assert.Equal(t, before.Applicants+1, after.Applicants)

	rec, env = s.do(t, http.MethodGet, "/v1/missions/1/applications", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var apps []entity.Application
	require.NoError(t, json.Unmarshal(env.Data, &apps))
	assert.Len(t, apps, 1)

	rec, _ = s.do(t, http.MethodPost, "/v1/missions/unknown/applications", `{"message":"x"}`, bearer)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = s.do(t, http.MethodPost, "/v1/missions/1/applications", `{"message":""}`, bearer)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestApplyRequiresProfessionalSession(t *testing.T) {
	s := newTestServer(t)

	rec, _ := s.do(t, http.MethodPost, "/v1/missions/1/applications", `{"message":"hello"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	bearer := s.login(t, adminEmail, adminPassword, entity.UserTypeAdmin)
	rec, _ = s.do(t, http.MethodPost, "/v1/missions/1/applications", `{"message":"hello"}`, bearer)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestLogoutRevokesToken(t *testing.T) {
	s := newTestServer(t)

	bearer := s.login(t, "camille.moreau@example.fr", "x", entity.UserTypeProfessional)

	rec, _ := s.do(t, http.MethodGet, "/v1/auth/me", "", bearer)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = s.do(t, http.MethodPost, "/v1/auth/logout", "", bearer)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, s.auth.IsAuthenticated())

	rec, _ = s.do(t, http.MethodGet, "/v1/auth/me", "", bearer)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewLoginSupersedesOldToken(t *testing.T) {
	s := newTestServer(t)

	first := s.login(t, "camille.moreau@example.fr", "x", entity.UserTypeProfessional)
	second := s.login(t, adminEmail, adminPassword, entity.UserTypeAdmin)

	rec, _ := s.do(t, http.MethodGet, "/v1/auth/me", "", first)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = s.do(t, http.MethodGet, "/v1/auth/me", "", second)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSearchMissions(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, http.MethodGet, "/v1/missions?limit=5&page=2", "", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var page struct {
		Items []entity.Mission `json:"items"`
		Total int64            `json:"total"`
		Page  int              `json:"page"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.EqualValues(t, 22, page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Len(t, page.Items, 5)

	rec, env = s.do(t, http.MethodGet, "/v1/missions?position=chef", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)

	rec, _ = s.do(t, http.MethodGet, "/v1/missions?minRate=30&maxRate=20", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMissionLookups(t *testing.T) {
	s := newTestServer(t)

	rec, _ := s.do(t, http.MethodGet, "/v1/missions/404", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, env := s.do(t, http.MethodGet, "/v1/missions/urgent", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var urgent []entity.Mission
	require.NoError(t, json.Unmarshal(env.Data, &urgent))
	for _, m := range urgent {
		assert.True(t, m.IsUrgent(), m.ID)
	}

	rec, env = s.do(t, http.MethodGet, "/v1/missions/by-type", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var byType map[entity.MissionType][]entity.Mission
	require.NoError(t, json.Unmarshal(env.Data, &byType))
	assert.NotEmpty(t, byType)
}

func TestBlogPostViewIsCounted(t *testing.T) {
	s := newTestServer(t)

	read := func() entity.BlogPost {
		rec, env := s.do(t, http.MethodGet, "/v1/blog/posts/1", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var post entity.BlogPost
		require.NoError(t, json.Unmarshal(env.Data, &post))
		return post
	}

	first := read()
	second := read()
	assert.Equal(t, first.Views+1, second.Views)

	rec, _ := s.do(t, http.MethodGet, "/v1/blog/posts/missing", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, env := s.do(t, http.MethodGet, "/v1/blog/posts?category=recettes", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var posts []entity.BlogPost
	require.NoError(t, json.Unmarshal(env.Data, &posts))
	for _, p := range posts {
		assert.Equal(t, entity.CategoryRecettes, p.Category)
	}
}

func TestAdminRoutesRequireAdmin(t *testing.T) {
	s := newTestServer(t)

	pro := s.login(t, "camille.moreau@example.fr", "x", entity.UserTypeProfessional)
	rec, _ := s.do(t, http.MethodGet, "/v1/admin/bakeries", "", pro)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	admin := s.login(t, adminEmail, adminPassword, entity.UserTypeAdmin)
	rec, env := s.do(t, http.MethodGet, "/v1/admin/bakeries?limit=10", "", admin)
	require.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		Items []entity.Bakery `json:"items"`
		Total int64           `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.EqualValues(t, 23, page.Total)
	assert.Len(t, page.Items, 10)

	rec, _ = s.do(t, http.MethodGet, "/v1/admin/professionals/pro3", "", admin)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminLoginRequiresConfiguredCredentials(t *testing.T) {
	s := newTestServer(t)

	for _, body := range []string{
		`{"email":"anyone@evil.fr","password":"x","type":"admin"}`,
		`{"email":"` + adminEmail + `","password":"wrong","type":"admin"}`,
	} {
		rec, env := s.do(t, http.MethodPost, "/v1/auth/login", body, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, body)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
	}
	assert.Nil(t, s.auth.CurrentUser())
}

func TestBakeryPasswordsAreNotExposed(t *testing.T) {
	s := newTestServer(t)

	admin := s.login(t, adminEmail, adminPassword, entity.UserTypeAdmin)
	for _, path := range []string{"/v1/admin/bakeries?limit=50", "/v1/admin/bakeries/bakery1"} {
		rec, _ := s.do(t, http.MethodGet, path, "", admin)
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.NotContains(t, rec.Body.String(), `"password"`, path)
		assert.NotContains(t, rec.Body.String(), "demo123", path)
	}

	bakery := s.login(t, "boulangerie@moulin.fr", "demo123", entity.UserTypeBakery)
	rec, _ := s.do(t, http.MethodGet, "/v1/dashboard/bakery", "", bakery)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"password"`)
	assert.NotContains(t, rec.Body.String(), "demo123")
}

func TestLoginIsRateLimited(t *testing.T) {
	s := newTestServer(t)

	body := `{"email":"boulangerie@moulin.fr","password":"nope"}`
	for i := 0; i < 5; i++ {
		rec, _ := s.do(t, http.MethodPost, "/v1/bakeries/login", body, "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	rec, env := s.do(t, http.MethodPost, "/v1/bakeries/login", body, "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	require.NotNil(t, env.Error)
	assert.Equal(t, "TOO_MANY_REQUESTS", env.Error.Code)
}

func TestUnknownRouteUsesErrorEnvelope(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, http.MethodGet, "/v1/nowhere", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestHome(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, http.MethodGet, "/v1/home", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var home struct {
		PremiumProfessionals []entity.Professional `json:"premiumProfessionals"`
		FeaturedPosts        []entity.BlogPost     `json:"featuredPosts"`
		LatestPost           *entity.BlogPost      `json:"latestPost"`
		OpenMissions         int                   `json:"openMissions"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &home))
	assert.Equal(t, 22, home.OpenMissions)
	assert.Len(t, home.FeaturedPosts, 4)
	require.NotNil(t, home.LatestPost)
	assert.Equal(t, "1", home.LatestPost.ID)
	for _, p := range home.PremiumProfessionals {
		assert.True(t, p.IsPremium)
	}
}
