package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"patientapp/internal/domain/entity"
	domainerrors "patientapp/internal/domain/errors"
	mockUC "patientapp/internal/mocks/usecase"
	"patientapp/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserTestEcho(t *testing.T) (*echo.Echo, *mockUC.MockUserUsecase) {
	t.Helper()

	userUC := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.POST("/users/signup", h.Signup)
	e.POST("/users/login", h.Login)
	e.POST("/users/logout", h.Logout)

	return e, userUC
}

func TestUserHandler_Signup(t *testing.T) {
	e, userUC := newUserTestEcho(t)
	created := &entity.User{
		ID:           uuid.New(),
		Username:     "alice",
		Email:        "a@x.com",
		PasswordHash: "$2a$12$secret-hash",
		CreatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	userUC.EXPECT().
		Signup(mock.Anything, &usecase.SignupInput{Username: "alice", Email: "a@x.com", Password: "pw123456"}).
		Return(created, nil)

	rec := doRequest(e, http.MethodPost, "/users/signup", echo.MIMEApplicationJSON,
		`{"username":"alice","email":"a@x.com","password":"pw123456"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret-hash")
	assert.NotContains(t, rec.Body.String(), "password")

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, created.ID.String(), body["id"])
	assert.Equal(t, "alice", body["username"])
	assert.Equal(t, "a@x.com", body["email"])
	assert.Contains(t, body, "created_at")
}

func TestUserHandler_Signup_Invalid(t *testing.T) {
	e, _ := newUserTestEcho(t)

	t.Run("bad email", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/users/signup", echo.MIMEApplicationJSON,
			`{"username":"alice","email":"not-an-email","password":"pw"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	})

	t.Run("malformed json", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/users/signup", echo.MIMEApplicationJSON, `{"username":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUserHandler_Signup_Conflict(t *testing.T) {
	e, userUC := newUserTestEcho(t)
	userUC.EXPECT().Signup(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUsernameTaken)

	rec := doRequest(e, http.MethodPost, "/users/signup", echo.MIMEApplicationJSON,
		`{"username":"alice","email":"a@x.com","password":"pw"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Username already registered")
}

func TestUserHandler_Login(t *testing.T) {
	out := &usecase.LoginOutput{AccessToken: "signed.jwt.token", TokenType: "bearer"}

	t.Run("form body", func(t *testing.T) {
		e, userUC := newUserTestEcho(t)
		userUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Username: "alice", Password: "pw123456"}).Return(out, nil)

		rec := doRequest(e, http.MethodPost, "/users/login", echo.MIMEApplicationForm, "username=alice&password=pw123456")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"access_token":"signed.jwt.token","token_type":"bearer"}`, rec.Body.String())
	})

	t.Run("json body", func(t *testing.T) {
		e, userUC := newUserTestEcho(t)
		userUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Username: "alice", Password: "pw123456"}).Return(out, nil)

		rec := doRequest(e, http.MethodPost, "/users/login", echo.MIMEApplicationJSON, `{"username":"alice","password":"pw123456"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad credentials", func(t *testing.T) {
		e, userUC := newUserTestEcho(t)
		userUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

		rec := doRequest(e, http.MethodPost, "/users/login", echo.MIMEApplicationForm, "username=alice&password=nope")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
		assert.Contains(t, rec.Body.String(), "Incorrect username or password")
	})
}

func TestUserHandler_Logout(t *testing.T) {
	e, userUC := newUserTestEcho(t)
	userUC.EXPECT().Logout(mock.Anything).Return(nil)

	rec := doRequest(e, http.MethodPost, "/users/logout", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Successfully logged out"}`, rec.Body.String())
}
