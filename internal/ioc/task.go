package ioc

import (
	"github.com/olegtuta/refactoring/internal/event/goodsreturn"
)

func InitTasks(c *goodsreturn.Consumer) []Task {
	return []Task{
		c,
	}
}
