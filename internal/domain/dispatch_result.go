package domain

// DispatchResult 一次退货通知的发送结果
type DispatchResult struct {
	EmployeeEmailNotified bool      `json:"notificationEmployeeByEmail"`
	ClientEmailNotified   bool      `json:"notificationClientByEmail"`
	ClientSMS             SMSResult `json:"notificationClientBySms"`
}

type SMSResult struct {
	IsSent  bool   `json:"isSent"`
	Message string `json:"message"` // 客户邮件发送失败时的错误信息
}
