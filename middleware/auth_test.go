package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medibook/models"
	"medibook/utils"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestRouter(t *testing.T) (*gin.Engine, *redis.Client) {
	gin.SetMode(gin.TestMode)
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	r := gin.New()
	r.GET("/protected", JWTAuthMiddleware(client), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID": c.GetString("userID"),
			"role":   c.GetString("role"),
		})
	})
	r.GET("/admin", JWTAuthMiddleware(client), RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r, client
}

func signIn(t *testing.T, client *redis.Client, userID, role string) string {
	t.Helper()
	token, err := utils.GenerateToken(userID, role, time.Hour)
	require.NoError(t, err)
	require.NoError(t, utils.SaveAuthSession(client, userID, utils.AuthSession{
		User:      models.User{ID: userID, Role: role},
		TokenHash: utils.HashToken(token),
	}))
	return token
}

func doGet(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareAcceptsLiveSession(t *testing.T) {
	r, client := newAuthTestRouter(t)
	token := signIn(t, client, "user-1", models.RolePatient)

	w := doGet(r, "/protected", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	w := doGet(r, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsSignedOutToken(t *testing.T) {
	r, client := newAuthTestRouter(t)
	token := signIn(t, client, "user-1", models.RolePatient)

	// Teardown: the JWT is still within its expiry but the session is gone.
	require.NoError(t, utils.DeleteAuthSession(client, "user-1"))

	w := doGet(r, "/protected", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsReplacedToken(t *testing.T) {
	r, client := newAuthTestRouter(t)
	oldToken := signIn(t, client, "user-1", models.RolePatient)

	// A later sign-in replaces the stored hash; the old token dies.
	require.NoError(t, utils.SaveAuthSession(client, "user-1", utils.AuthSession{
		User:      models.User{ID: "user-1", Role: models.RolePatient},
		TokenHash: utils.HashToken("a-newer-token"),
	}))

	w := doGet(r, "/protected", oldToken)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	r, client := newAuthTestRouter(t)

	patient := signIn(t, client, "user-1", models.RolePatient)
	assert.Equal(t, http.StatusForbidden, doGet(r, "/admin", patient).Code)

	admin := signIn(t, client, "admin-1", models.RoleAdmin)
	assert.Equal(t, http.StatusOK, doGet(r, "/admin", admin).Code)
}
