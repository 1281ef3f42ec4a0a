package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/menshealthfinder/api/config"
	"github.com/menshealthfinder/api/ent"
	"github.com/menshealthfinder/api/ent/enttest"
	"github.com/menshealthfinder/api/ent/user"
	"github.com/menshealthfinder/api/pkg/auth"
	"github.com/menshealthfinder/api/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthHandlerTest(t *testing.T) (*ent.Client, *AuthHandler) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 24,
	}
	return client, NewAuthHandler(client, cfg, nil, nil, nil)
}

func seedOperator(t *testing.T, client *ent.Client, email, password string, role user.Role) *ent.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	row, err := client.User.Create().
		SetEmail(email).
		SetPasswordHash(hash).
		SetName("Ops Operator").
		SetRole(role).
		Save(context.Background())
	require.NoError(t, err)
	return row
}

func postLogin(t *testing.T, handler *AuthHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, handler.Login(c))
	return rec
}

func TestAuthHandler_Login(t *testing.T) {
	client, handler := setupAuthHandlerTest(t)
	seedOperator(t, client, "ops@menshealthfinder.com", "correct horse battery", user.RoleAdmin)

	rec := postLogin(t, handler, `{"email":"ops@menshealthfinder.com","password":"correct horse battery"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, "admin", resp.User.Role)

	claims, err := auth.ValidateJWT(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "ops@menshealthfinder.com", claims.Email)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	client, handler := setupAuthHandlerTest(t)
	seedOperator(t, client, "ops@menshealthfinder.com", "correct horse battery", user.RoleOperator)

	rec := postLogin(t, handler, `{"email":"ops@menshealthfinder.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_credentials", resp.Error)
}

func TestAuthHandler_Login_UnknownEmailSameResponse(t *testing.T) {
	_, handler := setupAuthHandlerTest(t)

	rec := postLogin(t, handler, `{"email":"nobody@menshealthfinder.com","password":"whatever"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_credentials", resp.Error)
}

func TestAuthHandler_Me(t *testing.T) {
	client, handler := setupAuthHandlerTest(t)
	row := seedOperator(t, client, "ops@menshealthfinder.com", "correct horse battery", user.RoleOperator)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", row.ID)

	require.NoError(t, handler.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var info models.UserInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "ops@menshealthfinder.com", info.Email)
	assert.Equal(t, "operator", info.Role)
}
