package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"patientapp/config"
	apimiddleware "patientapp/internal/delivery/api/middleware"
	"patientapp/internal/delivery/api/router"
	"patientapp/internal/delivery/api/router/handler"
	"patientapp/internal/infra/auth"
	"patientapp/internal/infra/persistence/memory"
	"patientapp/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// newTestServer wires the real stack over the memory backend.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.SecretKey.Access = "test-signing-secret"
	cfg.Auth = &config.AuthConfig{BcryptCost: bcrypt.MinCost, AccessTokenTTL: 30 * time.Minute}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store)
	patientRepo := memory.NewPatientRepository(store)
	txManager := memory.NewTransactionManager(store)

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	hasher := auth.NewBcryptHasher(cfg)

	userUC := impl.NewUserService(impl.UserServiceParams{TxManager: txManager, Hasher: hasher, TokenService: tokenService, Logger: logger})
	sessionUC := impl.NewSessionService(impl.SessionServiceParams{UserRepo: userRepo, TokenService: tokenService, Logger: logger})
	patientUC := impl.NewPatientService(impl.PatientServiceParams{TxManager: txManager, PatientRepo: patientRepo, Logger: logger})

	e := echo.New()
	Configure(e, cfg, logger)
	router.NewRouter(router.RouterParams{
		UserHandler:    handler.NewUserHandler(handler.UserHandlerParams{UserUC: userUC, Logger: logger}),
		PatientHandler: handler.NewPatientHandler(handler.PatientHandlerParams{PatientUC: patientUC, Logger: logger}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{SessionUC: sessionUC, Logger: logger}),
	}).RegisterRoutes(e)

	return e
}

type client struct {
	t     *testing.T
	e     *echo.Echo
	token string
}

func (c *client) do(method, path, body string) *httptest.ResponseRecorder {
	c.t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if c.token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+c.token)
	}

	rec := httptest.NewRecorder()
	c.e.ServeHTTP(rec, req)

	return rec
}

func (c *client) signup(username, email, password string) *httptest.ResponseRecorder {
	return c.do(http.MethodPost, "/users/signup",
		`{"username":"`+username+`","email":"`+email+`","password":"`+password+`"}`)
}

func (c *client) login(username, password string) *httptest.ResponseRecorder {
	c.t.Helper()

	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	rec := httptest.NewRecorder()
	c.e.ServeHTTP(rec, req)

	if rec.Code == http.StatusOK {
		var body map[string]string
		require.NoError(c.t, json.Unmarshal(rec.Body.Bytes(), &body))
		c.token = body["access_token"]
	}

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	return out
}

const bobPatient = `{"first_name":"Bob","last_name":"Smith","date_of_birth":"1980-02-03","gender":"male",` +
	`"email":"bob@x.com","phone":"555-0100","address":"1 Main St"}`

func TestAPI_OwnershipScenario(t *testing.T) {
	e := newTestServer(t)
	alice := &client{t: t, e: e}
	mallory := &client{t: t, e: e}

	rec := alice.signup("alice", "a@x.com", "pw123456")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	aliceUser := decode[handler.UserResponse](t, rec)
	assert.Equal(t, "alice", aliceUser.Username)
	assert.NotContains(t, rec.Body.String(), "pw123456")

	rec = alice.login("alice", "pw123456")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "bearer", decode[map[string]string](t, rec)["token_type"])

	rec = alice.do(http.MethodPost, "/patients/", bobPatient)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decode[handler.PatientResponse](t, rec)
	assert.Equal(t, aliceUser.ID, created.OwnerID)

	rec = alice.do(http.MethodGet, "/patients/"+created.ID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decode[handler.PatientResponse](t, rec))

	require.Equal(t, http.StatusOK, mallory.signup("mallory", "m@x.com", "pw654321").Code)
	require.Equal(t, http.StatusOK, mallory.login("mallory", "pw654321").Code)

	rec = mallory.do(http.MethodGet, "/patients/"+created.ID.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = mallory.do(http.MethodPut, "/patients/"+created.ID.String(), `{"first_name":"Hijacked"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = mallory.do(http.MethodDelete, "/patients/"+created.ID.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = mallory.do(http.MethodGet, "/patients/", "")
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = alice.do(http.MethodDelete, "/patients/"+created.ID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Patient deleted successfully"}`, rec.Body.String())

	rec = alice.do(http.MethodGet, "/patients/"+created.ID.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_SignupConflicts(t *testing.T) {
	c := &client{t: t, e: newTestServer(t)}
	require.Equal(t, http.StatusOK, c.signup("alice", "a@x.com", "pw123456").Code)

	rec := c.signup("alice", "other@x.com", "pw")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Username already registered")

	rec = c.signup("alice2", "a@x.com", "pw")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email already registered")
}

func TestAPI_LoginFailuresLookAlike(t *testing.T) {
	c := &client{t: t, e: newTestServer(t)}
	require.Equal(t, http.StatusOK, c.signup("alice", "a@x.com", "pw123456").Code)

	wrongPassword := c.login("alice", "nope")
	unknownUser := c.login("nobody", "pw123456")

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, "Bearer", wrongPassword.Header().Get(echo.HeaderWWWAuthenticate))

	a := decode[map[string]map[string]any](t, wrongPassword)["error"]
	b := decode[map[string]map[string]any](t, unknownUser)["error"]
	assert.Equal(t, a["code"], b["code"])
	assert.Equal(t, a["message"], b["message"])
}

func TestAPI_ProtectedRoutesRequireToken(t *testing.T) {
	c := &client{t: t, e: newTestServer(t)}

	for _, path := range []string{"/patients/", "/users/me"} {
		rec := c.do(http.MethodGet, path, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate), path)
	}

	c.token = "not.a.jwt"
	rec := c.do(http.MethodGet, "/patients/", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Could not validate credentials")
}

func TestAPI_LogoutDoesNotRevoke(t *testing.T) {
	c := &client{t: t, e: newTestServer(t)}
	require.Equal(t, http.StatusOK, c.signup("alice", "a@x.com", "pw123456").Code)
	require.Equal(t, http.StatusOK, c.login("alice", "pw123456").Code)

	rec := c.do(http.MethodPost, "/users/logout", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Successfully logged out"}`, rec.Body.String())

	rec = c.do(http.MethodGet, "/users/me", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", decode[handler.UserResponse](t, rec).Username)
}

func TestAPI_UpdatePatient(t *testing.T) {
	c := &client{t: t, e: newTestServer(t)}
	require.Equal(t, http.StatusOK, c.signup("alice", "a@x.com", "pw123456").Code)
	require.Equal(t, http.StatusOK, c.login("alice", "pw123456").Code)

	created := decode[handler.PatientResponse](t, c.do(http.MethodPost, "/patients", bobPatient))

	rec := c.do(http.MethodPut, "/patients/"+created.ID.String(), `{"phone":"555-0199","medical_history":"asthma"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[handler.PatientResponse](t, rec)

	assert.Equal(t, "555-0199", updated.Phone)
	require.NotNil(t, updated.MedicalHistory)
	assert.Equal(t, "asthma", *updated.MedicalHistory)
	assert.Equal(t, created.FirstName, updated.FirstName)
	assert.Equal(t, created.OwnerID, updated.OwnerID)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	rec = c.do(http.MethodPut, "/patients/"+created.ID.String(), `{}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[handler.PatientResponse](t, rec).UpdatedAt.Before(updated.UpdatedAt))
}

func TestAPI_Health(t *testing.T) {
	c := &client{t: t, e: newTestServer(t)}

	rec := c.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}
