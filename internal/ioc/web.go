package ioc

import (
	"github.com/ecodeclub/ginx"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/olegtuta/refactoring/internal/handler/jwt"
)

// InitWebServer 公开路由不校验 JWT，私有路由都要带 Bearer token
func InitWebServer(handlers ...ginx.Handler) *egin.Component {
	key := econf.GetString("jwt.key")
	if key == "" {
		panic("jwt.key 不能为空")
	}
	server := egin.Load("server.http").Build()
	for _, h := range handlers {
		h.PublicRoutes(server.Engine)
	}
	server.Use(jwt.NewMiddlewareBuilder(key).Build())
	for _, h := range handlers {
		h.PrivateRoutes(server.Engine)
	}
	return server
}
