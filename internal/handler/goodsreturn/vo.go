package goodsreturn

// NotifyReq 退货通知请求，字段名和上游系统保持一致
type NotifyReq struct {
	ResellerID        int64        `json:"resellerId"`
	NotificationType  int          `json:"notificationType"`
	ClientID          int64        `json:"clientId"`
	CreatorID         int64        `json:"creatorId"`
	ExpertID          int64        `json:"expertId"`
	ComplaintID       int64        `json:"complaintId"`
	ComplaintNumber   string       `json:"complaintNumber"`
	ConsumptionID     int64        `json:"consumptionId"`
	ConsumptionNumber string       `json:"consumptionNumber"`
	AgreementNumber   string       `json:"agreementNumber"`
	Date              string       `json:"date"`
	Differences       *Differences `json:"differences"`
}

type Differences struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// NotifyResp 发送结果
type NotifyResp struct {
	NotificationEmployeeByEmail bool      `json:"notificationEmployeeByEmail"`
	NotificationClientByEmail   bool      `json:"notificationClientByEmail"`
	NotificationClientBySms     SMSResult `json:"notificationClientBySms"`
}

type SMSResult struct {
	IsSent  bool   `json:"isSent"`
	Message string `json:"message"`
}
