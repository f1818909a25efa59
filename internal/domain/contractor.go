package domain

import "strings"

// ContractorType 合作方类型
type ContractorType int

const (
	ContractorTypeCustomer ContractorType = 0
	ContractorTypeOther    ContractorType = 1
)

// ContractorRole 合作方在一次退货通知中的角色
type ContractorRole string

const (
	ContractorRoleSeller   ContractorRole = "SELLER"
	ContractorRoleClient   ContractorRole = "CLIENT"
	ContractorRoleEmployee ContractorRole = "EMPLOYEE"
)

func (r ContractorRole) String() string {
	return string(r)
}

// Contractor 经销商、客户、员工共用同一个模型，用 Role 区分
type Contractor struct {
	ID         int64          `json:"id"`
	Type       ContractorType `json:"type"`
	Role       ContractorRole `json:"role"`
	Name       string         `json:"name"`
	FirstName  string         `json:"firstName"`
	LastName   string         `json:"lastName"`
	Email      string         `json:"email"`
	Mobile     string         `json:"mobile"`
	ResellerID int64          `json:"resellerId"` // 所属经销商
}

func (c Contractor) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// DisplayName 全名为空时退回到原始名称
func (c Contractor) DisplayName() string {
	if name := c.FullName(); name != "" {
		return name
	}
	return c.Name
}

func (c Contractor) IsCustomer() bool {
	return c.Type == ContractorTypeCustomer
}

func (c Contractor) HasMobile() bool {
	return c.Mobile != ""
}

// ResellerSetting 经销商的通知配置
type ResellerSetting struct {
	ResellerID    int64  `json:"resellerId"`
	Locale        string `json:"locale"`
	EmailFrom     string `json:"emailFrom"`
	SMSSignName   string `json:"smsSignName"`
	SMSTemplateID string `json:"smsTemplateId"`
}
