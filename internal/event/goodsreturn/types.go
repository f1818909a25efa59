package goodsreturn

const (
	// EventName 退货事件的 topic
	EventName = "goods_return_events"
	// GroupID 消费者组
	GroupID = "goods-return-notifier"
)
