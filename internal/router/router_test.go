package router

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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"kitesurf/internal/auth"
	"kitesurf/internal/config"
	apperrors "kitesurf/internal/errors"
	"kitesurf/internal/handler"
	"kitesurf/internal/model"
	"kitesurf/internal/service"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string, client model.ClientInfo) (*service.LoginResult, error) {
	args := m.Called(ctx, email, password, client)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LoginResult), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, userID uint, email string, client model.ClientInfo) error {
	args := m.Called(ctx, userID, email, client)
	return args.Error(0)
}

func (m *MockAuthService) ValidateSession(ctx context.Context, token string) (*model.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockUserService is a mock implementation of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, email string) (*service.Registration, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Registration), args.Error(1)
}

func (m *MockUserService) Activate(ctx context.Context, token, password string, profile service.Profile) (*model.User, error) {
	args := m.Called(ctx, token, password, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) GetProfile(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, id uint, profile service.Profile) (*model.User, error) {
	args := m.Called(ctx, id, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) CreateStaff(ctx context.Context, email, password string, role model.Role, profile service.Profile) (*model.User, error) {
	args := m.Called(ctx, email, password, role, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockCatalogService is a mock implementation of service.CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListPackages(ctx context.Context) ([]model.Package, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Package), args.Error(1)
}

func (m *MockCatalogService) ListLocations(ctx context.Context) ([]model.Location, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Location), args.Error(1)
}

func (m *MockCatalogService) Seed(ctx context.Context, packages []model.Package, locations []model.Location) error {
	args := m.Called(ctx, packages, locations)
	return args.Error(0)
}

// MockReservationService is a mock implementation of service.ReservationService.
type MockReservationService struct {
	mock.Mock
}

func (m *MockReservationService) Create(ctx context.Context, actor *model.User, in service.CreateReservationInput) (*model.Reservation, error) {
	args := m.Called(ctx, actor, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Reservation), args.Error(1)
}

func (m *MockReservationService) Get(ctx context.Context, actor *model.User, id uint) (*model.Reservation, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Reservation), args.Error(1)
}

func (m *MockReservationService) List(ctx context.Context, actor *model.User, status model.ReservationStatus) ([]model.Reservation, error) {
	args := m.Called(ctx, actor, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Reservation), args.Error(1)
}

func (m *MockReservationService) UpdateStatus(ctx context.Context, actor *model.User, id uint, status model.ReservationStatus, cancelReason string) (*model.Reservation, error) {
	args := m.Called(ctx, actor, id, status, cancelReason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Reservation), args.Error(1)
}

type testServer struct {
	e            *echo.Echo
	jwt          *auth.JWTService
	auth         *MockAuthService
	users        *MockUserService
	catalog      *MockCatalogService
	reservations *MockReservationService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ts := &testServer{
		e:            echo.New(),
		jwt:          auth.NewJWTService("test-secret"),
		auth:         new(MockAuthService),
		users:        new(MockUserService),
		catalog:      new(MockCatalogService),
		reservations: new(MockReservationService),
	}
	cfg := &config.Config{
		CORSOrigins: []string{"*"},
		Auth:        config.Auth{LoginRateLimit: 100},
	}
	logger := zap.NewNop()
	Register(ts.e, cfg, logger, ts.jwt, ts.auth,
		handler.NewAuthHandler(ts.auth, ts.users, logger),
		handler.NewCatalogHandler(ts.catalog),
		handler.NewReservationHandler(ts.reservations, logger),
		handler.NewUserHandler(ts.users),
		handler.NewWeatherHandler(ts.catalog),
		handler.NewSeedHandler(ts.catalog, logger),
	)
	t.Cleanup(func() {
		ts.auth.AssertExpectations(t)
		ts.users.AssertExpectations(t)
		ts.catalog.AssertExpectations(t)
		ts.reservations.AssertExpectations(t)
	})
	return ts
}

// login returns a bearer token for user whose session the auth mock accepts.
func (ts *testServer) login(t *testing.T, user *model.User) string {
	t.Helper()
	sessionToken := auth.NewSessionToken()
	token, err := ts.jwt.GenerateToken(user.ID, user.Email, string(user.Role), sessionToken, time.Now().Add(time.Hour))
	require.NoError(t, err)
	ts.auth.On("ValidateSession", mock.Anything, sessionToken).Return(user, nil)
	return token
}

func (ts *testServer) do(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

var customer = &model.User{ID: 1, Email: "klant@b.com", Role: model.RoleCustomer, FirstName: "Kees", IsActive: true, EmailVerified: true}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(ts *testServer)
		wantStatus int
		wantBody   map[string]interface{}
	}{
		{
			name: "success",
			body: `{"email":"a@b.com","password":"correct"}`,
			setup: func(ts *testServer) {
				ts.auth.On("Login", mock.Anything, "a@b.com", "correct", mock.AnythingOfType("model.ClientInfo")).
					Return(&service.LoginResult{
						Identity: model.SessionIdentity{ID: 1, Email: "a@b.com", Role: model.RoleCustomer, FirstName: "Anna", LastName: "Vries"},
						Token:    "jwt",
					}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody: map[string]interface{}{
				"success": true,
				"user": map[string]interface{}{
					"id": float64(1), "email": "a@b.com", "role": "customer", "firstName": "Anna", "lastName": "Vries",
				},
			},
		},
		{
			name: "unknown email",
			body: `{"email":"x@b.com","password":"correct"}`,
			setup: func(ts *testServer) {
				ts.auth.On("Login", mock.Anything, "x@b.com", "correct", mock.Anything).Return(nil, apperrors.ErrInvalidCredentials)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   map[string]interface{}{"success": false, "message": "Email of wachtwoord is onjuist"},
		},
		{
			name: "blocked",
			body: `{"email":"b@b.com","password":"correct"}`,
			setup: func(ts *testServer) {
				ts.auth.On("Login", mock.Anything, "b@b.com", "correct", mock.Anything).Return(nil, apperrors.ErrAccountBlocked)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   map[string]interface{}{"success": false, "message": "Account is geblokkeerd"},
		},
		{
			name:       "missing password",
			body:       `{"email":"a@b.com"}`,
			setup:      func(ts *testServer) {},
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			tt.setup(ts)

			rec := ts.do(http.MethodPost, "/api/auth/login", tt.body, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decode(t, rec)
			for k, v := range tt.wantBody {
				assert.Equal(t, v, body[k], k)
			}
		})
	}
}

func TestLogout(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t, customer)
	ts.auth.On("Logout", mock.Anything, customer.ID, customer.Email, mock.Anything).Return(nil).Once()

	rec := ts.do(http.MethodPost, "/api/auth/logout", `{"userId":1,"email":"klant@b.com"}`, token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode(t, rec)["success"])

	rec = ts.do(http.MethodPost, "/api/auth/logout", `{"userId":2}`, token)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	ts.auth.On("Logout", mock.Anything, customer.ID, customer.Email, mock.Anything).Return(apperrors.ErrTimeout).Once()
	rec = ts.do(http.MethodPost, "/api/auth/logout", "", token)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, false, decode(t, rec)["success"])
}

func TestSecuredRoutes_RequireLiveSession(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/reservations", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.do(http.MethodGet, "/api/reservations", "", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	sessionToken := auth.NewSessionToken()
	token, err := ts.jwt.GenerateToken(customer.ID, customer.Email, "customer", sessionToken, time.Now().Add(time.Hour))
	require.NoError(t, err)
	ts.auth.On("ValidateSession", mock.Anything, sessionToken).Return(nil, apperrors.ErrAccountBlocked)

	rec = ts.do(http.MethodGet, "/api/reservations", "", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "ACCOUNT_BLOCKED", decode(t, rec)["code"])
}

func TestSession_UserMismatch(t *testing.T) {
	ts := newTestServer(t)
	sessionToken := auth.NewSessionToken()
	token, err := ts.jwt.GenerateToken(99, "other@b.com", "owner", sessionToken, time.Now().Add(time.Hour))
	require.NoError(t, err)
	ts.auth.On("ValidateSession", mock.Anything, sessionToken).Return(customer, nil)

	rec := ts.do(http.MethodGet, "/api/users/me", "", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCatalog(t *testing.T) {
	ts := newTestServer(t)
	ts.catalog.On("ListPackages", mock.Anything).Return([]model.Package{{ID: 1, Name: "Privéles"}}, nil).Once()
	ts.catalog.On("ListLocations", mock.Anything).Return(nil, apperrors.ErrCatalogUnavailable).Once()

	rec := ts.do(http.MethodGet, "/api/packages", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Privéles")

	rec = ts.do(http.MethodGet, "/api/locations", "", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "CATALOG_UNAVAILABLE", decode(t, rec)["code"])
}

func TestCreateReservation(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t, customer)

	want := service.CreateReservationInput{
		CustomerID:     1,
		PackageID:      2,
		LocationID:     1,
		Date:           model.NewDate(2025, time.July, 1),
		DuoParticipant: &service.DuoParticipantInput{Name: "X"},
	}
	ts.reservations.On("Create", mock.Anything, customer, want).Return(&model.Reservation{
		ID: 10, CustomerID: 1, PackageID: 2, LocationID: 1, Date: want.Date, Status: model.ReservationStatusPending,
		DuoParticipant: &model.DuoParticipant{ID: 1, ReservationID: 10, Name: "X"},
	}, nil)

	rec := ts.do(http.MethodPost, "/api/reservations",
		`{"customer_id":1,"package_id":2,"location_id":1,"date":"2025-07-01","duo_participant":{"name":"X"}}`, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.Equal(t, "pending", body["status"])
	assert.Equal(t, "2025-07-01", body["date"])
	assert.Equal(t, "X", body["duo_participant"].(map[string]interface{})["name"])
}

func TestCreateReservation_BadInput(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t, customer)

	rec := ts.do(http.MethodPost, "/api/reservations", `{"package_id":2,"date":"2025-07-01"}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_RESERVATION", decode(t, rec)["code"])

	rec = ts.do(http.MethodPost, "/api/reservations", `{"package_id":2,"location_id":1,"date":"01-07-2025"}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	ts.reservations.On("Create", mock.Anything, customer, mock.Anything).Return(nil, apperrors.ErrUnknownPackage).Once()
	rec = ts.do(http.MethodPost, "/api/reservations", `{"package_id":99,"location_id":1,"date":"2025-07-01"}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "UNKNOWN_PACKAGE", decode(t, rec)["code"])
}

func TestUpdateReservationStatus(t *testing.T) {
	ts := newTestServer(t)
	instructor := &model.User{ID: 5, Email: "i@b.com", Role: model.RoleInstructor, IsActive: true, EmailVerified: true}
	token := ts.login(t, instructor)

	ts.reservations.On("UpdateStatus", mock.Anything, instructor, uint(10), model.ReservationStatusCancelled, "Storm").
		Return(&model.Reservation{ID: 10, Status: model.ReservationStatusCancelled}, nil).Once()
	ts.reservations.On("UpdateStatus", mock.Anything, instructor, uint(10), model.ReservationStatusDefinitive, "").
		Return(nil, apperrors.ErrInvalidStatusTransition).Once()
	ts.reservations.On("UpdateStatus", mock.Anything, instructor, uint(11), model.ReservationStatusConfirmed, "").
		Return(nil, apperrors.ErrReservationNotFound).Once()

	rec := ts.do(http.MethodPatch, "/api/reservations/10/status", `{"status":"cancelled","cancel_reason":"Storm"}`, token)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(http.MethodPatch, "/api/reservations/10/status", `{"status":"definitive"}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(http.MethodPatch, "/api/reservations/11/status", `{"status":"confirmed"}`, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(http.MethodPatch, "/api/reservations/abc/status", `{"status":"confirmed"}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(http.MethodPatch, "/api/reservations/10/status", `{}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouteGuardEndpoint(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/auth/route?path=/profiel", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["allowed"])
	assert.Equal(t, "/login?redirect=%2Fprofiel", body["redirect"])

	token := ts.login(t, customer)
	rec = ts.do(http.MethodGet, "/api/auth/route?path=/eigenaar/dashboard", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decode(t, rec)
	assert.Equal(t, false, body["allowed"])
	assert.Equal(t, "/klant/dashboard", body["redirect"])

	rec = ts.do(http.MethodGet, "/api/auth/route?path=/reserveren", "", token)
	assert.Equal(t, true, decode(t, rec)["allowed"])
}

func TestWeather(t *testing.T) {
	ts := newTestServer(t)
	ts.catalog.On("ListLocations", mock.Anything).Return([]model.Location{{ID: 1, Name: "IJmuiden"}, {ID: 2, Name: "Zandvoort"}}, nil)

	rec := ts.do(http.MethodGet, "/api/weather", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 2)
	assert.Equal(t, "IJmuiden", out[0]["name"])
	assert.Contains(t, out[0], "weather")
}

func TestRegisterAndActivate(t *testing.T) {
	ts := newTestServer(t)
	ts.users.On("Register", mock.Anything, "nieuw@b.com").Return(&service.Registration{}, nil).Once()
	ts.users.On("Register", mock.Anything, "dubbel@b.com").Return(nil, apperrors.ErrEmailAlreadyRegistered).Once()

	rec := ts.do(http.MethodPost, "/api/auth/register", `{"email":"nieuw@b.com"}`, "")
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.do(http.MethodPost, "/api/auth/register", `{"email":"dubbel@b.com"}`, "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = ts.do(http.MethodPost, "/api/auth/register", `{"email":"geen-email"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	ts.users.On("Activate", mock.Anything, "tok", "Windkracht12", mock.MatchedBy(func(p service.Profile) bool {
		return p.FirstName == "Nina" && p.Birthdate != nil && p.Birthdate.String() == "1990-05-04"
	})).Return(&model.User{ID: 3, Email: "nieuw@b.com", Role: model.RoleCustomer, FirstName: "Nina"}, nil).Once()

	rec = ts.do(http.MethodPost, "/api/auth/activate",
		`{"token":"tok","password":"Windkracht12","firstName":"Nina","lastName":"Bakker","birthdate":"1990-05-04"}`, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode(t, rec)["success"])
}

func TestSeedCatalog_OwnerOnly(t *testing.T) {
	ts := newTestServer(t)
	owner := &model.User{ID: 9, Email: "eigenaar@b.com", Role: model.RoleOwner, IsActive: true, EmailVerified: true}

	rec := ts.do(http.MethodPost, "/api/catalog/seed", "", ts.login(t, customer))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	ts.catalog.On("Seed", mock.Anything, service.DefaultPackages(), service.DefaultLocations()).Return(nil).Once()
	rec = ts.do(http.MethodPost, "/api/catalog/seed", "", ts.login(t, owner))
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.EqualValues(t, 4, body["packages"])
	assert.EqualValues(t, 3, body["locations"])
}
