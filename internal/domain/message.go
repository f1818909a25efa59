package domain

// Channel 发送渠道
type Channel string

const (
	ChannelSMS   Channel = "SMS"
	ChannelEmail Channel = "EMAIL"
)

func (c Channel) String() string {
	return string(c)
}

func (c Channel) IsValid() bool {
	return c == ChannelSMS || c == ChannelEmail
}

// NotificationEvent 外部消息系统的事件类型
type NotificationEvent string

const (
	EventChangeReturnStatus NotificationEvent = "changeReturnStatus"
	EventNewReturnStatus    NotificationEvent = "newReturnStatus"
)

func (e NotificationEvent) String() string {
	return string(e)
}

// SendStatus 单条消息的发送状态
type SendStatus string

const (
	SendStatusSucceeded SendStatus = "SUCCEEDED"
	SendStatusFailed    SendStatus = "FAILED"
)

func (s SendStatus) String() string {
	return string(s)
}

// SMSTemplate 短信供应商侧的模版
type SMSTemplate struct {
	SignName   string            `json:"signName"`
	TemplateID string            `json:"templateId"`
	Params     map[string]string `json:"params"`
	Values     []string          `json:"values"` // 位置参数
}

// Message 某个渠道上的一条待发送消息
type Message struct {
	Channel    Channel           `json:"channel"`
	ResellerID int64             `json:"resellerId"`
	ClientID   int64             `json:"clientId"` // 0 表示不是发给客户的
	Event      NotificationEvent `json:"event"`
	Receivers  []string          `json:"receivers"`

	// 邮件
	From    string `json:"from"`
	Subject string `json:"subject"`
	Body    string `json:"body"`

	// 短信
	Template SMSTemplate `json:"template"`
}

// SendResponse 发送响应
type SendResponse struct {
	Status SendStatus
}

// EmailMessage 一封待发送邮件
type EmailMessage struct {
	From    string
	To      string
	Subject string
	Body    string
}

// EmailRequest 邮件客户端的入参
type EmailRequest struct {
	Messages   []EmailMessage
	ResellerID int64
	ClientID   int64 // 0 表示未指定客户
	Event      NotificationEvent
	Difference *ReturnStatus // nil 表示没有状态码
}

// SMSRequest 短信客户端的入参
type SMSRequest struct {
	ResellerID   int64
	ClientID     int64
	Event        NotificationEvent
	Difference   ReturnStatus
	TemplateData TemplateData
	PriorError   string // 客户邮件阶段的错误信息，成功时为空
}
