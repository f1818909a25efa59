package goodsreturn

import (
	"github.com/olegtuta/refactoring/internal/domain"
)

// buildTemplateData 合并事件字段、合作方名字和变更描述，任何字段为空都返回 errs.ErrTemplateDataEmpty
func buildTemplateData(evt domain.ReturnEvent, p parties, difference string) (domain.TemplateData, error) {
	data := domain.TemplateData{
		domain.FieldComplaintID:       evt.ComplaintID,
		domain.FieldComplaintNumber:   evt.ComplaintNumber,
		domain.FieldCreatorID:         evt.CreatorID,
		domain.FieldCreatorName:       p.creator.DisplayName(),
		domain.FieldExpertID:          evt.ExpertID,
		domain.FieldExpertName:        p.expert.DisplayName(),
		domain.FieldClientID:          evt.ClientID,
		domain.FieldClientName:        p.client.DisplayName(),
		domain.FieldConsumptionID:     evt.ConsumptionID,
		domain.FieldConsumptionNumber: evt.ConsumptionNumber,
		domain.FieldAgreementNumber:   evt.AgreementNumber,
		domain.FieldDate:              evt.Date,
		domain.FieldDifferences:       difference,
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}
	return data, nil
}
