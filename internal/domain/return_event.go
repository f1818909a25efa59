package domain

// NotificationType 退货通知类型
type NotificationType int

const (
	NotificationTypeNew    NotificationType = 1 // 新增退货位置
	NotificationTypeChange NotificationType = 2 // 退货状态变更
)

func (t NotificationType) IsValid() bool {
	return t == NotificationTypeNew || t == NotificationTypeChange
}

// Differences 状态变更前后的状态码
type Differences struct {
	From ReturnStatus `json:"from"`
	To   ReturnStatus `json:"to"`
}

// ReturnEvent 退货事件，一次请求只处理一个，收到后不再修改
type ReturnEvent struct {
	ResellerID        int64            `json:"resellerId"`
	NotificationType  NotificationType `json:"notificationType"`
	ClientID          int64            `json:"clientId"`
	CreatorID         int64            `json:"creatorId"`
	ExpertID          int64            `json:"expertId"`
	ComplaintID       int64            `json:"complaintId"`
	ComplaintNumber   string           `json:"complaintNumber"`
	ConsumptionID     int64            `json:"consumptionId"`
	ConsumptionNumber string           `json:"consumptionNumber"`
	AgreementNumber   string           `json:"agreementNumber"`
	Date              string           `json:"date"`
	Differences       *Differences     `json:"differences,omitempty"`
}

func (e ReturnEvent) HasDifferences() bool {
	return e.Differences != nil
}

// DifferenceTo 变更后的状态码，没有 differences 的时候是 0
func (e ReturnEvent) DifferenceTo() ReturnStatus {
	if e.Differences == nil {
		return 0
	}
	return e.Differences.To
}

// HasDifferenceTo 状态码 0 也视为没有填写
func (e ReturnEvent) HasDifferenceTo() bool {
	return e.DifferenceTo() != 0
}
