package ioc

import (
	goodsreturnevt "github.com/olegtuta/refactoring/internal/event/goodsreturn"
	goodsreturnweb "github.com/olegtuta/refactoring/internal/handler/goodsreturn"
	"github.com/prometheus/client_golang/prometheus"
)

// InitApp 组装所有组件，需要在 ego.New() 之后调用
func InitApp() *App {
	db := InitDB()
	localCache := InitLocalCache()
	contractors := InitContractorRepository(db)
	resellers := InitResellerRepository(db, localCache)

	cmd := InitRedis()
	providers := InitProviders(cmd, prometheus.DefaultRegisterer)
	svc := InitGoodsReturnService(contractors, resellers, InitRenderer(resellers), providers)

	consumer := goodsreturnevt.NewConsumer(svc, InitEventConsumer(cmd))
	return &App{
		Web:   InitWebServer(goodsreturnweb.NewHandler(svc)),
		Tasks: InitTasks(consumer),
	}
}
