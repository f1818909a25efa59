package jwt

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareBuilder_Build(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	builder := NewMiddlewareBuilder("test_key")
	valid, err := builder.Encode(jwt.MapClaims{"reseller_id": float64(1)})
	require.NoError(t, err)
	expired, err := builder.Encode(jwt.MapClaims{"exp": time.Now().Add(-time.Hour).Unix()})
	require.NoError(t, err)
	otherKey, err := NewMiddlewareBuilder("other_key").Encode(jwt.MapClaims{"reseller_id": float64(1)})
	require.NoError(t, err)

	testCases := []struct {
		name     string
		header   string
		wantCode int
	}{
		{name: "令牌有效", header: "Bearer " + valid, wantCode: http.StatusOK},
		{name: "没有令牌", header: "", wantCode: http.StatusUnauthorized},
		{name: "缺少 Bearer 前缀", header: valid, wantCode: http.StatusUnauthorized},
		{name: "令牌过期", header: "Bearer " + expired, wantCode: http.StatusUnauthorized},
		{name: "签名密钥不对", header: "Bearer " + otherKey, wantCode: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			server := gin.New()
			server.Use(builder.Build())
			server.GET("/ping", func(ctx *gin.Context) {
				claims, ok := ctx.Get(ClaimsKey)
				assert.True(t, ok)
				assert.Equal(t, float64(1), claims.(jwt.MapClaims)["reseller_id"])
				ctx.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
		})
	}
}
