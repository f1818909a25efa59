package jwt

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/gotomicro/ego/core/elog"
)

// ClaimsKey gin.Context 中保存 jwt.MapClaims 的 key
const ClaimsKey = "jwt_claims"

var errInvalidToken = errors.New("invalid token")

// MiddlewareBuilder HS256 校验 Authorization: Bearer <token>
type MiddlewareBuilder struct {
	key    []byte
	logger *elog.Component
}

func NewMiddlewareBuilder(key string) *MiddlewareBuilder {
	return &MiddlewareBuilder{
		key:    []byte(key),
		logger: elog.DefaultLogger,
	}
}

func (b *MiddlewareBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, err := b.Decode(ctx.GetHeader("Authorization"))
		if err != nil {
			b.logger.Warn("JWT 校验失败",
				elog.FieldErr(err),
				elog.String("path", ctx.Request.URL.Path))
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		ctx.Set(ClaimsKey, claims)
		ctx.Next()
	}
}

// Decode 解析并校验 Authorization 头
func (b *MiddlewareBuilder) Decode(header string) (jwt.MapClaims, error) {
	tokenStr, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || tokenStr == "" {
		return nil, fmt.Errorf("%w: missing bearer token", errInvalidToken)
	}

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method %v", errInvalidToken, token.Header["alg"])
		}
		return b.key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errInvalidToken
	}
	return claims, nil
}

// Encode 生成令牌，给调用方和测试用
func (b *MiddlewareBuilder) Encode(claims jwt.MapClaims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(b.key)
}
