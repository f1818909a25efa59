package goodsreturn

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/olegtuta/refactoring/internal/domain"
	"github.com/olegtuta/refactoring/internal/errs"
	repomocks "github.com/olegtuta/refactoring/internal/repository/mocks"
	channelmocks "github.com/olegtuta/refactoring/internal/service/channel/mocks"
	"github.com/olegtuta/refactoring/internal/service/i18n"
	i18nmocks "github.com/olegtuta/refactoring/internal/service/i18n/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mocks struct {
	contractors *repomocks.MockContractorRepository
	resellers   *repomocks.MockResellerRepository
	renderer    *i18nmocks.MockRenderer
	email       *channelmocks.MockEmailSender
	sms         *channelmocks.MockSMSSender
}

func newMocks(ctrl *gomock.Controller) mocks {
	return mocks{
		contractors: repomocks.NewMockContractorRepository(ctrl),
		resellers:   repomocks.NewMockResellerRepository(ctrl),
		renderer:    i18nmocks.NewMockRenderer(ctrl),
		email:       channelmocks.NewMockEmailSender(ctrl),
		sms:         channelmocks.NewMockSMSSender(ctrl),
	}
}

func (m mocks) newService() Service {
	return NewService(NewContractorResolver(m.contractors), m.resellers, m.renderer, m.email, m.sms, time.Second)
}

func testContractors() map[int64]domain.Contractor {
	return map[int64]domain.Contractor{
		1:  {ID: 1, Type: domain.ContractorTypeOther, Name: "Shop"},
		2:  {ID: 2, Type: domain.ContractorTypeOther, FirstName: "Ivan", LastName: "Petrov", ResellerID: 1},
		3:  {ID: 3, Type: domain.ContractorTypeOther, FirstName: "Anna", LastName: "Smirnova", ResellerID: 1},
		10: {ID: 10, Type: domain.ContractorTypeCustomer, Name: "ООО Клиент", Email: "client@example.com", Mobile: "79990000000", ResellerID: 1},
	}
}

// expectContractors 并发查询的顺序不确定，查询失败时兄弟查询可能被取消，所以用 AnyTimes
func (m mocks) expectContractors(contractors map[int64]domain.Contractor) {
	m.contractors.EXPECT().FindByID(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id int64) (domain.Contractor, error) {
			c, ok := contractors[id]
			if !ok {
				return domain.Contractor{}, fmt.Errorf("%w: id = %d", errs.ErrContractorNotFound, id)
			}
			return c, nil
		}).AnyTimes()
}

func (m mocks) expectRenderer() {
	m.renderer.EXPECT().Render(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, key string, data domain.TemplateData, _ int64) (string, error) {
			if key == i18n.KeyPositionStatusHasChanged {
				return fmt.Sprintf("%v -> %v", data["FROM"], data["TO"]), nil
			}
			return key, nil
		}).AnyTimes()
}

func (m mocks) expectSetting(emailFrom string, employees []string) {
	m.resellers.EXPECT().GetSetting(gomock.Any(), int64(1)).
		Return(domain.ResellerSetting{ResellerID: 1, EmailFrom: emailFrom}, nil)
	m.resellers.EXPECT().FindEmployeeEmails(gomock.Any(), int64(1), PermitGoodsReturn).Return(employees, nil)
}

func testEvent() domain.ReturnEvent {
	return domain.ReturnEvent{
		ResellerID:        1,
		NotificationType:  domain.NotificationTypeChange,
		ClientID:          10,
		CreatorID:         2,
		ExpertID:          3,
		ComplaintID:       5,
		ComplaintNumber:   "C-5",
		ConsumptionID:     7,
		ConsumptionNumber: "N-7",
		AgreementNumber:   "A-1",
		Date:              "2024-01-01",
		Differences:       &domain.Differences{From: domain.ReturnStatusPending, To: domain.ReturnStatusCompleted},
	}
}

func TestService_Notify(t *testing.T) {
	t.Parallel()

	errEmail := errors.New("smtp: connection refused")

	testCases := []struct {
		name       string
		event      func() domain.ReturnEvent
		before     func(t *testing.T, m mocks)
		wantResult domain.DispatchResult
		assertErr  assert.ErrorAssertionFunc
	}{
		{
			name: "缺少经销商ID时不调用任何依赖",
			event: func() domain.ReturnEvent {
				evt := testEvent()
				evt.ResellerID = 0
				return evt
			},
			before: func(t *testing.T, m mocks) {},
			assertErr: func(t assert.TestingT, err error, _ ...any) bool {
				return assert.ErrorIs(t, err, errs.ErrInvalidParameter) &&
					assert.ErrorContains(t, err, "missing resellerId or notificationType")
			},
		},
		{
			name: "缺少通知类型时不调用任何依赖",
			event: func() domain.ReturnEvent {
				evt := testEvent()
				evt.NotificationType = 0
				return evt
			},
			before: func(t *testing.T, m mocks) {},
			assertErr: func(t assert.TestingT, err error, _ ...any) bool {
				return assert.ErrorIs(t, err, errs.ErrInvalidParameter)
			},
		},
		{
			name:  "客户不属于该经销商",
			event: testEvent,
			before: func(t *testing.T, m mocks) {
				contractors := testContractors()
				client := contractors[10]
				client.ResellerID = 99
				contractors[10] = client
				m.expectContractors(contractors)
			},
			assertErr: func(t assert.TestingT, err error, _ ...any) bool {
				return assert.ErrorIs(t, err, errs.ErrContractorNotFound)
			},
		},
		{
			name: "创建人不存在",
			event: func() domain.ReturnEvent {
				evt := testEvent()
				evt.CreatorID = 404
				return evt
			},
			before: func(t *testing.T, m mocks) {
				m.expectContractors(testContractors())
			},
			assertErr: func(t assert.TestingT, err error, _ ...any) bool {
				return assert.ErrorIs(t, err, errs.ErrContractorNotFound)
			},
		},
		{
			name: "CHANGE 事件没有 differences 时 DIFFERENCES 为空",
			event: func() domain.ReturnEvent {
				evt := testEvent()
				evt.Differences = nil
				return evt
			},
			before: func(t *testing.T, m mocks) {
				m.expectContractors(testContractors())
			},
			assertErr: func(t assert.TestingT, err error, _ ...any) bool {
				return assert.ErrorIs(t, err, errs.ErrTemplateDataEmpty) &&
					assert.ErrorContains(t, err, "field DIFFERENCES is empty")
			},
		},
		{
			name: "不支持的通知类型在模版校验时失败",
			event: func() domain.ReturnEvent {
				evt := testEvent()
				evt.NotificationType = 7
				return evt
			},
			before: func(t *testing.T, m mocks) {
				m.expectContractors(testContractors())
			},
			assertErr: func(t assert.TestingT, err error, _ ...any) bool {
				return assert.ErrorContains(t, err, "field DIFFERENCES is empty")
			},
		},
		{
			name: "模版字段为空时不发送任何通知",
			event: func() domain.ReturnEvent {
				evt := testEvent()
				evt.ComplaintNumber = ""
				return evt
			},
			before: func(t *testing.T, m mocks) {
				m.expectContractors(testContractors())
				m.expectRenderer()
			},
			assertErr: func(t assert.TestingT, err error, _ ...any) bool {
				return assert.ErrorIs(t, err, errs.ErrTemplateDataEmpty) &&
					assert.ErrorContains(t, err, "field COMPLAINT_NUMBER is empty")
			},
		},
		{
			name: "未知状态码",
			event: func() domain.ReturnEvent {
				evt := testEvent()
				evt.Differences.To = 9
				return evt
			},
			before: func(t *testing.T, m mocks) {
				m.expectContractors(testContractors())
			},
			assertErr: func(t assert.TestingT, err error, _ ...any) bool {
				return assert.ErrorIs(t, err, errs.ErrUnknownReturnStatus)
			},
		},
		{
			name: "一个员工成功一个员工失败",
			event: func() domain.ReturnEvent {
				evt := testEvent()
				evt.NotificationType = domain.NotificationTypeNew
				evt.Differences = nil
				return evt
			},
			before: func(t *testing.T, m mocks) {
				m.expectContractors(testContractors())
				m.expectRenderer()
				m.expectSetting("shop@example.com", []string{"a@example.com", "b@example.com"})
				m.email.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, req domain.EmailRequest) error {
						if req.Messages[0].To == "a@example.com" {
							return nil
						}
						return errEmail
					}).Times(2)
			},
			// NEW 且没有目标状态，客户阶段整个跳过
			wantResult: domain.DispatchResult{EmployeeEmailNotified: true},
			assertErr:  assert.NoError,
		},
		{
			name: "第一个员工失败第二个员工成功",
			event: func() domain.ReturnEvent {
				evt := testEvent()
				evt.NotificationType = domain.NotificationTypeNew
				return evt
			},
			before: func(t *testing.T, m mocks) {
				m.expectContractors(testContractors())
				m.expectRenderer()
				m.expectSetting("shop@example.com", []string{"a@example.com", "b@example.com"})
				gomock.InOrder(
					m.email.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errEmail),
					m.email.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil),
					// NEW 但 to = 0，仍然跳过客户阶段
				)
			},
			wantResult: domain.DispatchResult{EmployeeEmailNotified: true},
			assertErr:  assert.NoError,
		},
		{
			name: "NEW 事件带目标状态时通知客户",
			event: func() domain.ReturnEvent {
				evt := testEvent()
				evt.NotificationType = domain.NotificationTypeNew
				evt.Differences = &domain.Differences{To: domain.ReturnStatusRejected}
				return evt
			},
			before: func(t *testing.T, m mocks) {
				m.expectContractors(testContractors())
				m.expectRenderer()
				m.expectSetting("shop@example.com", nil)
				m.email.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, req domain.EmailRequest) error {
						assert.Equal(t, "client@example.com", req.Messages[0].To)
						return nil
					})
				m.sms.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, req domain.SMSRequest) (bool, error) {
						assert.Equal(t, domain.ReturnStatusRejected, req.Difference)
						assert.Equal(t, int64(10), req.ClientID)
						return true, nil
					})
			},
			wantResult: domain.DispatchResult{
				ClientEmailNotified: true,
				ClientSMS:           domain.SMSResult{IsSent: true},
			},
			assertErr: assert.NoError,
		},
		{
			name:  "创建人和专家只有原始名称",
			event: testEvent,
			before: func(t *testing.T, m mocks) {
				contractors := testContractors()
				contractors[2] = domain.Contractor{ID: 2, Type: domain.ContractorTypeOther, Name: "ivan.petrov", ResellerID: 1}
				contractors[3] = domain.Contractor{ID: 3, Type: domain.ContractorTypeOther, Name: "anna.smirnova", ResellerID: 1}
				m.expectContractors(contractors)
				m.renderer.EXPECT().Render(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, key string, data domain.TemplateData, _ int64) (string, error) {
						if key == i18n.KeyPositionStatusHasChanged {
							return "Pending -> Completed", nil
						}
						assert.Equal(t, "ivan.petrov", data[domain.FieldCreatorName])
						assert.Equal(t, "anna.smirnova", data[domain.FieldExpertName])
						return key, nil
					}).AnyTimes()
				m.expectSetting("shop@example.com", []string{"a@example.com"})
				m.email.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(2)
				m.sms.EXPECT().Send(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantResult: domain.DispatchResult{
				EmployeeEmailNotified: true,
				ClientEmailNotified:   true,
				ClientSMS:             domain.SMSResult{IsSent: true},
			},
			assertErr: assert.NoError,
		},
		{
			name:  "发件人和客户邮箱都为空时跳过客户阶段",
			event: testEvent,
			before: func(t *testing.T, m mocks) {
				contractors := testContractors()
				client := contractors[10]
				client.Email = ""
				contractors[10] = client
				m.expectContractors(contractors)
				m.expectRenderer()
				m.expectSetting("", []string{"a@example.com"})
			},
			wantResult: domain.DispatchResult{},
			assertErr:  assert.NoError,
		},
		{
			name:  "客户邮件失败短信成功",
			event: testEvent,
			before: func(t *testing.T, m mocks) {
				m.expectContractors(testContractors())
				m.expectRenderer()
				m.expectSetting("shop@example.com", nil)
				m.email.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errEmail)
				m.sms.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, req domain.SMSRequest) (bool, error) {
						assert.Equal(t, errEmail.Error(), req.PriorError)
						return true, nil
					})
			},
			wantResult: domain.DispatchResult{
				ClientSMS: domain.SMSResult{IsSent: true, Message: errEmail.Error()},
			},
			assertErr: assert.NoError,
		},
		{
			name:  "客户邮件失败短信返回 false",
			event: testEvent,
			before: func(t *testing.T, m mocks) {
				m.expectContractors(testContractors())
				m.expectRenderer()
				m.expectSetting("shop@example.com", nil)
				m.email.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errEmail)
				m.sms.EXPECT().Send(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantResult: domain.DispatchResult{
				ClientSMS: domain.SMSResult{Message: errEmail.Error()},
			},
			assertErr: assert.NoError,
		},
		{
			name:  "短信报错只记录日志",
			event: testEvent,
			before: func(t *testing.T, m mocks) {
				m.expectContractors(testContractors())
				m.expectRenderer()
				m.expectSetting("shop@example.com", nil)
				m.email.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
				m.sms.EXPECT().Send(gomock.Any(), gomock.Any()).Return(false, errors.New("sms gateway down"))
			},
			wantResult: domain.DispatchResult{ClientEmailNotified: true},
			assertErr:  assert.NoError,
		},
		{
			name:  "客户没有手机号不发短信",
			event: testEvent,
			before: func(t *testing.T, m mocks) {
				contractors := testContractors()
				client := contractors[10]
				client.Mobile = ""
				contractors[10] = client
				m.expectContractors(contractors)
				m.expectRenderer()
				m.expectSetting("shop@example.com", nil)
				m.email.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantResult: domain.DispatchResult{ClientEmailNotified: true},
			assertErr:  assert.NoError,
		},
		{
			name:  "渲染失败按单个收件人失败处理",
			event: testEvent,
			before: func(t *testing.T, m mocks) {
				m.expectContractors(testContractors())
				m.renderer.EXPECT().Render(gomock.Any(), i18n.KeyPositionStatusHasChanged, gomock.Any(), int64(1)).
					Return("Pending -> Completed", nil)
				m.renderer.EXPECT().Render(gomock.Any(), i18n.KeyEmployeeEmailSubject, gomock.Any(), int64(1)).
					Return("", errs.ErrMessageNotFound)
				m.renderer.EXPECT().Render(gomock.Any(), gomock.Any(), gomock.Any(), int64(1)).
					Return("text", nil).AnyTimes()
				m.expectSetting("shop@example.com", []string{"a@example.com"})
				m.email.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
				m.sms.EXPECT().Send(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantResult: domain.DispatchResult{
				ClientEmailNotified: true,
				ClientSMS:           domain.SMSResult{IsSent: true},
			},
			assertErr: assert.NoError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			tc.before(t, m)

			result, err := m.newService().Notify(t.Context(), tc.event())
			tc.assertErr(t, err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantResult, result)
		})
	}
}

func TestService_NotifyEndToEnd(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	m.expectContractors(testContractors())
	m.expectRenderer()
	m.expectSetting("shop@example.com", []string{"boss@example.com"})

	var emails []domain.EmailRequest
	m.email.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, req domain.EmailRequest) error {
			_, ok := ctx.Deadline()
			assert.True(t, ok, "每次调用都要有超时")
			emails = append(emails, req)
			return nil
		}).Times(2)

	var smsReq domain.SMSRequest
	m.sms.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req domain.SMSRequest) (bool, error) {
			smsReq = req
			return true, nil
		})

	result, err := m.newService().Notify(t.Context(), testEvent())
	require.NoError(t, err)
	assert.Equal(t, domain.DispatchResult{
		EmployeeEmailNotified: true,
		ClientEmailNotified:   true,
		ClientSMS:             domain.SMSResult{IsSent: true},
	}, result)

	require.Len(t, emails, 2)
	employee, client := emails[0], emails[1]
	assert.Equal(t, "boss@example.com", employee.Messages[0].To)
	assert.Equal(t, "shop@example.com", employee.Messages[0].From)
	assert.Equal(t, i18n.KeyEmployeeEmailSubject, employee.Messages[0].Subject)
	assert.Equal(t, domain.EventChangeReturnStatus, employee.Event)
	assert.Zero(t, employee.ClientID)
	assert.Nil(t, employee.Difference)

	assert.Equal(t, "client@example.com", client.Messages[0].To)
	assert.Equal(t, i18n.KeyClientEmailBody, client.Messages[0].Body)
	assert.Equal(t, int64(10), client.ClientID)
	require.NotNil(t, client.Difference)
	assert.Equal(t, domain.ReturnStatusCompleted, *client.Difference)

	assert.Equal(t, int64(1), smsReq.ResellerID)
	assert.Equal(t, int64(10), smsReq.ClientID)
	assert.Equal(t, domain.ReturnStatusCompleted, smsReq.Difference)
	assert.Empty(t, smsReq.PriorError)
	assert.Equal(t, "ООО Клиент", smsReq.TemplateData[domain.FieldClientName])
	assert.Equal(t, "Ivan Petrov", smsReq.TemplateData[domain.FieldCreatorName])
	assert.Equal(t, "Pending -> Completed", smsReq.TemplateData[domain.FieldDifferences])
}
