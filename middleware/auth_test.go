package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmbook/farmbook/utils"
)

func authTestRouter(tm *utils.TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/private", AuthRequired(tm), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"user_id":  ctx.MustGet(ContextUserIDKey),
			"username": ctx.MustGet(ContextUsernameKey),
		})
	})
	return r
}

func TestAuthRequired(t *testing.T) {
	tm := utils.NewTokenManager("secret", time.Hour)
	r := authTestRouter(tm)

	token, err := tm.Generate(7, "carol")
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"valid", "Bearer " + token, http.StatusOK},
		{"lowercase scheme", "bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"no scheme", token, http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestAuthRequired_ForeignToken(t *testing.T) {
	issuer := utils.NewTokenManager("other-secret", time.Hour)
	r := authTestRouter(utils.NewTokenManager("secret", time.Hour))

	token, err := issuer.Generate(7, "carol")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
