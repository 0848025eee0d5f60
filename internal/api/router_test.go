package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"shepherd/internal/api/controllers"
	"shepherd/internal/events"
	"shepherd/internal/infra"
	"shepherd/internal/models/db_models"
	"shepherd/internal/repositories"
	"shepherd/internal/services"
	mem "shepherd/pkg/memcache"
	"shepherd/pkg/utils"
)

type testServer struct {
	engine  *gin.Engine
	db      *gorm.DB
	revoked mem.RevokedTokenStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.SetSigningKey([]byte("router-test-secret"))

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))

	dispatcher := events.NewDispatcher(events.NewChannelBroker(), nil)
	t.Cleanup(func() { _ = dispatcher.Close() })

	userRepo := repositories.NewUserRepository(db)
	memberRepo := repositories.NewMemberRepository(db)
	familyRepo := repositories.NewFamilyRepository(db)
	donationRepo := repositories.NewDonationRepository(db)
	eventRepo := repositories.NewEventRepository(db)
	groupRepo := repositories.NewGroupRepository(db)
	attendanceRepo := repositories.NewAttendanceRepository(db)
	volunteerRepo := repositories.NewVolunteerRepository(db)

	audit := services.NewAuditService()
	mail := services.NewLogMailService()
	require.NoError(t, services.RegisterEventConsumers(dispatcher, audit, mail, memberRepo))

	// Registration is admin-only, so every fixture account descends from
	// the seeded root administrator.
	t.Setenv("ADMIN_USERNAME", "root")
	t.Setenv("ADMIN_PASSWORD", "rootpass99")
	t.Setenv("ADMIN_EMAIL", "root@example.com")
	require.NoError(t, services.EnsureBootstrapAdmin(context.Background(), userRepo))

	revoked := mem.NewRevokedTokens()

	ctrl := Controllers{
		Auth:       controllers.NewAuthController(services.NewAuthService(userRepo, memberRepo, audit, revoked)),
		Member:     controllers.NewMemberController(services.NewMemberService(memberRepo, familyRepo, dispatcher)),
		Family:     controllers.NewFamilyController(services.NewFamilyService(familyRepo)),
		Donation:   controllers.NewDonationController(services.NewDonationService(donationRepo, memberRepo, dispatcher)),
		Event:      controllers.NewEventController(services.NewEventService(eventRepo, memberRepo)),
		Group:      controllers.NewGroupController(services.NewGroupService(groupRepo, memberRepo)),
		Attendance: controllers.NewAttendanceController(services.NewAttendanceService(attendanceRepo, eventRepo, memberRepo)),
		Volunteer:  controllers.NewVolunteerController(services.NewVolunteerService(volunteerRepo, memberRepo)),
	}

	engine := gin.New()
	RegisterRoutes(engine, ctrl, revoked)

	return &testServer{engine: engine, db: db, revoked: revoked}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

func tokensFrom(t *testing.T, rec *httptest.ResponseRecorder) (access, refresh string) {
	t.Helper()

	var resp struct {
		Data struct {
			AccessToken  string `json:"access_token"`
			RefreshToken string `json:"refresh_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.AccessToken)
	return resp.Data.AccessToken, resp.Data.RefreshToken
}

// adminToken logs in as the seeded root administrator.
func (s *testServer) adminToken(t *testing.T) string {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "root",
		"password": "rootpass99",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	access, _ := tokensFrom(t, rec)
	return access
}

// tokenFor registers a user with the given role, through the root
// administrator, and returns the new user's access token.
func (s *testServer) tokenFor(t *testing.T, username, role string) string {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/api/auth/register", s.adminToken(t), gin.H{
		"username": username,
		"password": "hunter22",
		"email":    username + "@example.com",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	access, _ := tokensFrom(t, rec)
	return access
}

func TestRequestsWithoutTokenAreUnauthorized(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/api/members", "/api/donations", "/api/events", "/api/groups"} {
		rec := s.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestRoleMatrixOnMembers(t *testing.T) {
	s := newTestServer(t)

	admin := s.tokenFor(t, "admin1", db_models.RoleAdmin)
	staff := s.tokenFor(t, "staff1", db_models.RoleStaff)
	volunteer := s.tokenFor(t, "vol1", db_models.RoleVolunteer)
	member := s.tokenFor(t, "member1", db_models.RoleMember)

	body := gin.H{
		"first_name": "Road", "last_name": "Test", "email": "road@example.com",
	}

	// Plain members cannot even list.
	rec := s.do(t, http.MethodGet, "/api/members", member, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Volunteers read but do not write.
	rec = s.do(t, http.MethodGet, "/api/members", volunteer, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = s.do(t, http.MethodPost, "/api/members", volunteer, body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Staff create.
	rec = s.do(t, http.MethodPost, "/api/members", staff, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	// Only admins delete.
	rec = s.do(t, http.MethodDelete, "/api/members/"+created.Data.ID, staff, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = s.do(t, http.MethodDelete, "/api/members/"+created.Data.ID, admin, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDonationRoutesAreStaffOnly(t *testing.T) {
	s := newTestServer(t)

	volunteer := s.tokenFor(t, "vol2", db_models.RoleVolunteer)
	pastor := s.tokenFor(t, "pastor2", db_models.RolePastor)

	rec := s.do(t, http.MethodGet, "/api/donations", volunteer, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/donations", pastor, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMemberCreateValidationAndNotFoundStatuses(t *testing.T) {
	s := newTestServer(t)
	staff := s.tokenFor(t, "staff3", db_models.RoleStaff)

	rec := s.do(t, http.MethodPost, "/api/members", staff, gin.H{"first_name": "No"})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "binding failure")

	rec = s.do(t, http.MethodGet, "/api/members/11111111-2222-3333-4444-555555555555", staff, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRegisterIsAdminOnly(t *testing.T) {
	s := newTestServer(t)

	body := gin.H{
		"username": "intruder",
		"password": "hunter22",
		"email":    "intruder@example.com",
		"role":     db_models.RoleAdmin,
	}

	rec := s.do(t, http.MethodPost, "/api/auth/register", "", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	staff := s.tokenFor(t, "staff5", db_models.RoleStaff)
	rec = s.do(t, http.MethodPost, "/api/auth/register", staff, body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Neither attempt created the account.
	rec = s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "intruder", "password": "hunter22",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutRevokesAccess(t *testing.T) {
	s := newTestServer(t)
	token := s.tokenFor(t, "leaver", db_models.RoleAdmin)

	rec := s.do(t, http.MethodGet, "/api/members", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/members", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoggedOutTokenCannotRefresh(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "root", "password": "rootpass99",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	access, _ := tokensFrom(t, rec)

	rec = s.do(t, http.MethodPost, "/api/auth/logout", access, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// A revoked access token must not be exchangeable for a new pair.
	rec = s.do(t, http.MethodPost, "/api/auth/refresh", "", gin.H{"refresh_token": access})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefreshTokenIsNotAnAccessToken(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "root", "password": "rootpass99",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	_, refresh := tokensFrom(t, rec)

	rec = s.do(t, http.MethodGet, "/api/members", refresh, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefreshEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/auth/register", s.adminToken(t), gin.H{
		"username": "refresher",
		"password": "hunter22",
		"email":    "refresher@example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	_, refresh := tokensFrom(t, rec)

	rec = s.do(t, http.MethodPost, "/api/auth/refresh", "", gin.H{"refresh_token": refresh})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/auth/refresh", "", gin.H{"refresh_token": "bogus"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestEventRegistrationFlowOverHTTP(t *testing.T) {
	s := newTestServer(t)

	staff := s.tokenFor(t, "staff4", db_models.RoleStaff)
	memberTok := s.tokenFor(t, "member4", db_models.RoleMember)

	member := &db_models.Member{
		FirstName: "Event", LastName: "Goer", Email: "goer@example.com",
		MembershipDate: "2024-01-01", Active: true,
	}
	require.NoError(t, repositories.NewMemberRepository(s.db).Insert(context.Background(), member))

	rec := s.do(t, http.MethodPost, "/api/events", staff, gin.H{
		"name":         "Concert",
		"start_date":   4102444800,
		"max_capacity": 1,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var ev struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ev))

	// Any authenticated user can register a member.
	rec = s.do(t, http.MethodPost, "/api/events/"+ev.Data.ID+"/register", memberTok,
		gin.H{"member_id": member.ID.String()})
	assert.Equal(t, http.StatusCreated, rec.Code)

	// Capacity exhausted registers as a conflict.
	other := &db_models.Member{
		FirstName: "Second", LastName: "Goer", Email: "second.goer@example.com",
		MembershipDate: "2024-01-01", Active: true,
	}
	require.NoError(t, repositories.NewMemberRepository(s.db).Insert(context.Background(), other))

	rec = s.do(t, http.MethodPost, "/api/events/"+ev.Data.ID+"/register", memberTok,
		gin.H{"member_id": other.ID.String()})
	assert.Equal(t, http.StatusConflict, rec.Code)
}
