package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/placementcell/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims models.JwtCustomClaims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func runAuth(t *testing.T, authHeader string) (*httptest.ResponseRecorder, models.Actor, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen models.Actor
	handler := JWTAuth(testSecret)(func(c echo.Context) error {
		seen = Actor(c)
		return c.NoContent(http.StatusOK)
	})
	err := handler(c)
	return rec, seen, err
}

func TestJWTAuthResolvesActor(t *testing.T) {
	token := signToken(t, models.JwtCustomClaims{
		Identity: "21CS042",
		Kind:     models.KindStudent,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, testSecret)

	rec, actor, err := runAuth(t, "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.Actor{Kind: models.KindStudent, ID: "21CS042"}, actor)
}

func TestJWTAuthRejections(t *testing.T) {
	expired := signToken(t, models.JwtCustomClaims{
		Identity: "21CS042",
		Kind:     models.KindStudent,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}, testSecret)
	wrongKey := signToken(t, models.JwtCustomClaims{
		Identity: "21CS042",
		Kind:     models.KindStudent,
	}, "other-secret")
	badKind := signToken(t, models.JwtCustomClaims{
		Identity: "21CS042",
		Kind:     "alumni",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, testSecret)

	cases := map[string]string{
		"missing header": "",
		"not bearer":     "Basic dXNlcjpwYXNz",
		"expired":        "Bearer " + expired,
		"wrong key":      "Bearer " + wrongKey,
		"bad kind":       "Bearer " + badKind,
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := runAuth(t, header)
			var he *echo.HTTPError
			require.ErrorAs(t, err, &he)
			assert.Equal(t, http.StatusUnauthorized, he.Code)
		})
	}
}
