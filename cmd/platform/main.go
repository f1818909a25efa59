package main

import (
	"context"

	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egovernor"
	"github.com/olegtuta/refactoring/internal/ioc"
)

func main() {
	egoApp := ego.New()
	app := ioc.InitApp()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	app.StartTasks(ctx)

	err := egoApp.
		Serve(
			egovernor.Load("server.governor").Build(),
			app.Web,
		).
		Run()
	if err != nil {
		elog.Panic("startup", elog.FieldErr(err))
	}
}
