package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tg_accessories_back_end/internal/models"
	"tg_accessories_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/admin/products", AdminRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("email")})
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/admin/products", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAdminRequired_MissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-de-test")
	w := doRequest(adminRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRequired_MalformedHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-de-test")

	for _, header := range []string{"Bearer", "Basic abc", "Bearer a b c", "n-importe-quoi"} {
		w := doRequest(adminRouter(), header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header: %q", header)
	}
}

func TestAdminRequired_GarbageToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-de-test")
	w := doRequest(adminRouter(), "Bearer pas-un-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRequired_WrongRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-de-test")

	token := signToken(t, jwt.MapClaims{
		"id":    "client@exemple.com",
		"email": "client@exemple.com",
		"role":  "customer",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}, "secret-de-test")

	w := doRequest(adminRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRequired_ExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-de-test")

	token := signToken(t, jwt.MapClaims{
		"id":    "admin@exemple.com",
		"email": "admin@exemple.com",
		"role":  "admin",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	}, "secret-de-test")

	w := doRequest(adminRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRequired_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-de-test")

	token := signToken(t, jwt.MapClaims{
		"id":    "admin@exemple.com",
		"email": "admin@exemple.com",
		"role":  "admin",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}, "autre-secret")

	w := doRequest(adminRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRequired_ValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-de-test")

	token, err := utils.GenerateAdminJWT(models.Admin{Email: "admin@exemple.com", Role: models.RoleAdmin})
	require.NoError(t, err)

	w := doRequest(adminRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin@exemple.com")
}

func TestAdminCookieRequired(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-de-test")

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", AdminCookieRequired(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// Sans cookie ni query param
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Avec cookie valide
	token, err := utils.GenerateAdminJWT(models.Admin{Email: "admin@exemple.com", Role: models.RoleAdmin})
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "adminToken", Value: token})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Token en query param (cas WebSocket)
	req = httptest.NewRequest(http.MethodGet, "/admin?token="+token, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
