package domain

import (
	"fmt"
	"strconv"

	"github.com/olegtuta/refactoring/internal/errs"
)

// 模版字段，顺序即校验顺序
const (
	FieldComplaintID       = "COMPLAINT_ID"
	FieldComplaintNumber   = "COMPLAINT_NUMBER"
	FieldCreatorID         = "CREATOR_ID"
	FieldCreatorName       = "CREATOR_NAME"
	FieldExpertID          = "EXPERT_ID"
	FieldExpertName        = "EXPERT_NAME"
	FieldClientID          = "CLIENT_ID"
	FieldClientName        = "CLIENT_NAME"
	FieldConsumptionID     = "CONSUMPTION_ID"
	FieldConsumptionNumber = "CONSUMPTION_NUMBER"
	FieldAgreementNumber   = "AGREEMENT_NUMBER"
	FieldDate              = "DATE"
	FieldDifferences       = "DIFFERENCES"
)

var TemplateFields = []string{
	FieldComplaintID,
	FieldComplaintNumber,
	FieldCreatorID,
	FieldCreatorName,
	FieldExpertID,
	FieldExpertName,
	FieldClientID,
	FieldClientName,
	FieldConsumptionID,
	FieldConsumptionNumber,
	FieldAgreementNumber,
	FieldDate,
	FieldDifferences,
}

// TemplateData 渲染文案用的扁平数据，ID 是 int64，其余都是 string
type TemplateData map[string]any

// Validate 按字段顺序检查，返回第一个为空的字段
func (d TemplateData) Validate() error {
	for _, field := range TemplateFields {
		if isEmptyValue(d[field]) {
			return fmt.Errorf("%w: field %s is empty", errs.ErrTemplateDataEmpty, field)
		}
	}
	return nil
}

// Params 全部转成字符串，给短信供应商用
func (d TemplateData) Params() map[string]string {
	params := make(map[string]string, len(d))
	for k, v := range d {
		params[k] = formatValue(v)
	}
	return params
}

// Values 按字段顺序输出，给只支持位置参数的供应商用
func (d TemplateData) Values() []string {
	values := make([]string, 0, len(TemplateFields))
	for _, field := range TemplateFields {
		values = append(values, formatValue(d[field]))
	}
	return values
}

func isEmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case int64:
		return val == 0
	case int:
		return val == 0
	case string:
		return val == ""
	default:
		return false
	}
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case int64:
		return strconv.FormatInt(val, 10)
	case int:
		return strconv.Itoa(val)
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}
