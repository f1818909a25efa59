package goodsreturn

import (
	"context"
	"fmt"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/hashicorp/go-multierror"
	"github.com/olegtuta/refactoring/internal/domain"
	"github.com/olegtuta/refactoring/internal/service/channel"
	"github.com/olegtuta/refactoring/internal/service/i18n"
)

// DefaultCallTimeout 单次调用外部渠道的超时时间
const DefaultCallTimeout = 5 * time.Second

// dispatchRequest 发送阶段需要的全部输入
type dispatchRequest struct {
	event          domain.ReturnEvent
	client         domain.Contractor
	emailFrom      string
	employeeEmails []string
	data           domain.TemplateData
}

// dispatcher 发送员工邮件和客户邮件/短信，单个收件人或渠道失败只记录日志
type dispatcher struct {
	renderer    i18n.Renderer
	email       channel.EmailSender
	sms         channel.SMSSender
	callTimeout time.Duration
	logger      *elog.Component
}

func (d *dispatcher) dispatch(ctx context.Context, req dispatchRequest) domain.DispatchResult {
	var (
		result domain.DispatchResult
		failed *multierror.Error
	)

	result.EmployeeEmailNotified, failed = d.notifyEmployees(ctx, req, failed)
	failed = d.notifyClient(ctx, req, &result, failed)

	if err := failed.ErrorOrNil(); err != nil {
		d.logger.Warn("退货通知部分发送失败",
			elog.FieldErr(err),
			elog.Int64("resellerID", req.event.ResellerID),
			elog.Int64("complaintID", req.event.ComplaintID),
			elog.Any("result", result))
	}
	return result
}

func (d *dispatcher) notifyEmployees(ctx context.Context, req dispatchRequest, failed *multierror.Error) (bool, *multierror.Error) {
	if req.emailFrom == "" || len(req.employeeEmails) == 0 {
		return false, failed
	}

	var notified bool
	for _, to := range req.employeeEmails {
		err := d.sendEmail(ctx, req, to, i18n.KeyEmployeeEmailSubject, i18n.KeyEmployeeEmailBody, domain.EmailRequest{
			ResellerID: req.event.ResellerID,
			Event:      domain.EventChangeReturnStatus,
		})
		if err != nil {
			d.logger.Error("员工邮件发送失败",
				elog.FieldErr(err),
				elog.Int64("resellerID", req.event.ResellerID),
				elog.String("to", to))
			failed = multierror.Append(failed, fmt.Errorf("employee email %s: %w", to, err))
			continue
		}
		notified = true
	}
	return notified, failed
}

func (d *dispatcher) notifyClient(ctx context.Context, req dispatchRequest, result *domain.DispatchResult, failed *multierror.Error) *multierror.Error {
	evt := req.event
	// 沿用原有的判断条件：非 CHANGE 且没有目标状态，或者发件人和客户邮箱都为空时跳过。
	// 这个条件会让 NEW 事件在目标状态为空时收不到客户通知，看上去像是写反了，先保持原样
	if (evt.NotificationType != domain.NotificationTypeChange && !evt.HasDifferenceTo()) ||
		(req.emailFrom == "" && req.client.Email == "") {
		return failed
	}

	to := evt.DifferenceTo()
	var emailErr string
	err := d.sendEmail(ctx, req, req.client.Email, i18n.KeyClientEmailSubject, i18n.KeyClientEmailBody, domain.EmailRequest{
		ResellerID: evt.ResellerID,
		ClientID:   req.client.ID,
		Event:      domain.EventChangeReturnStatus,
		Difference: &to,
	})
	if err != nil {
		emailErr = err.Error()
		d.logger.Error("客户邮件发送失败",
			elog.FieldErr(err),
			elog.Int64("resellerID", evt.ResellerID),
			elog.Int64("clientID", req.client.ID))
		failed = multierror.Append(failed, fmt.Errorf("client email: %w", err))
	} else {
		result.ClientEmailNotified = true
	}

	if !req.client.HasMobile() {
		return failed
	}

	var sent bool
	err = d.withTimeout(ctx, func(ctx context.Context) error {
		var err1 error
		sent, err1 = d.sms.Send(ctx, domain.SMSRequest{
			ResellerID:   evt.ResellerID,
			ClientID:     req.client.ID,
			Event:        domain.EventChangeReturnStatus,
			Difference:   to,
			TemplateData: req.data,
			PriorError:   emailErr,
		})
		return err1
	})
	if err != nil {
		d.logger.Error("客户短信发送失败",
			elog.FieldErr(err),
			elog.Int64("resellerID", evt.ResellerID),
			elog.Int64("clientID", req.client.ID))
		return multierror.Append(failed, fmt.Errorf("client sms: %w", err))
	}
	result.ClientSMS.IsSent = sent
	if emailErr != "" {
		result.ClientSMS.Message = emailErr
	}
	return failed
}

// sendEmail 渲染主题和正文后发送一封邮件
func (d *dispatcher) sendEmail(ctx context.Context, req dispatchRequest, to, subjectKey, bodyKey string, emailReq domain.EmailRequest) error {
	resellerID := req.event.ResellerID
	subject, err := d.renderer.Render(ctx, subjectKey, req.data, resellerID)
	if err != nil {
		return err
	}
	body, err := d.renderer.Render(ctx, bodyKey, req.data, resellerID)
	if err != nil {
		return err
	}

	emailReq.Messages = []domain.EmailMessage{
		{
			From:    req.emailFrom,
			To:      to,
			Subject: subject,
			Body:    body,
		},
	}
	return d.withTimeout(ctx, func(ctx context.Context) error {
		return d.email.Send(ctx, emailReq)
	})
}

func (d *dispatcher) withTimeout(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, d.callTimeout)
	defer cancel()
	return fn(ctx)
}
