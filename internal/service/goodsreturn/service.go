package goodsreturn

import (
	"context"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/olegtuta/refactoring/internal/domain"
	"github.com/olegtuta/refactoring/internal/repository"
	"github.com/olegtuta/refactoring/internal/service/channel"
	"github.com/olegtuta/refactoring/internal/service/i18n"
)

var _ Service = (*service)(nil)

type service struct {
	resolver   ContractorResolver
	resellers  repository.ResellerRepository
	formatter  differenceFormatter
	dispatcher *dispatcher
	logger     *elog.Component
}

func (s *service) Notify(ctx context.Context, evt domain.ReturnEvent) (domain.DispatchResult, error) {
	if err := validateEvent(evt); err != nil {
		return domain.DispatchResult{}, err
	}

	p, err := resolveParties(ctx, s.resolver, evt)
	if err != nil {
		return domain.DispatchResult{}, err
	}

	difference, err := s.formatter.Format(ctx, evt)
	if err != nil {
		return domain.DispatchResult{}, err
	}

	data, err := buildTemplateData(evt, p, difference)
	if err != nil {
		return domain.DispatchResult{}, err
	}

	setting, err := s.resellers.GetSetting(ctx, evt.ResellerID)
	if err != nil {
		return domain.DispatchResult{}, err
	}
	emails, err := s.resellers.FindEmployeeEmails(ctx, evt.ResellerID, PermitGoodsReturn)
	if err != nil {
		return domain.DispatchResult{}, err
	}

	result := s.dispatcher.dispatch(ctx, dispatchRequest{
		event:          evt,
		client:         p.client,
		emailFrom:      setting.EmailFrom,
		employeeEmails: emails,
		data:           data,
	})
	s.logger.Info("退货通知处理完成",
		elog.Int64("resellerID", evt.ResellerID),
		elog.Int64("complaintID", evt.ComplaintID),
		elog.Any("result", result))
	return result, nil
}

// NewService callTimeout 小于等于 0 时使用 DefaultCallTimeout
func NewService(
	resolver ContractorResolver,
	resellers repository.ResellerRepository,
	renderer i18n.Renderer,
	email channel.EmailSender,
	sms channel.SMSSender,
	callTimeout time.Duration,
) Service {
	if callTimeout <= 0 {
		callTimeout = DefaultCallTimeout
	}
	logger := elog.DefaultLogger
	return &service{
		resolver:  resolver,
		resellers: resellers,
		formatter: differenceFormatter{renderer: renderer},
		dispatcher: &dispatcher{
			renderer:    renderer,
			email:       email,
			sms:         sms,
			callTimeout: callTimeout,
			logger:      logger,
		},
		logger: logger,
	}
}
