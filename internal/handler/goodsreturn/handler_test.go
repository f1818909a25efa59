package goodsreturn

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/olegtuta/refactoring/internal/domain"
	"github.com/olegtuta/refactoring/internal/errs"
	goodsreturnmocks "github.com/olegtuta/refactoring/internal/service/goodsreturn/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// result 和 ginx.Result 一样的结构，Data 用具体类型方便比较
type result[T any] struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}

func TestHandler_Notify(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	body := `{"resellerId":1,"notificationType":2,"clientId":10,"creatorId":2,"expertId":3,
"differences":{"from":1,"to":0},"complaintId":5,"complaintNumber":"C-5","consumptionId":7,
"consumptionNumber":"N-7","agreementNumber":"A-1","date":"2024-01-01"}`
	wantEvent := domain.ReturnEvent{
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

	testCases := []struct {
		name     string
		body     string
		before   func(svc *goodsreturnmocks.MockService)
		wantCode int
		wantResp result[NotifyResp]
	}{
		{
			name: "发送成功",
			body: body,
			before: func(svc *goodsreturnmocks.MockService) {
				svc.EXPECT().Notify(gomock.Any(), wantEvent).Return(domain.DispatchResult{
					EmployeeEmailNotified: true,
					ClientEmailNotified:   true,
					ClientSMS:             domain.SMSResult{IsSent: true},
				}, nil)
			},
			wantCode: http.StatusOK,
			wantResp: result[NotifyResp]{
				Msg: "OK",
				Data: NotifyResp{
					NotificationEmployeeByEmail: true,
					NotificationClientByEmail:   true,
					NotificationClientBySms:     SMSResult{IsSent: true},
				},
			},
		},
		{
			name: "参数校验失败返回 400",
			body: `{"clientId":10}`,
			before: func(svc *goodsreturnmocks.MockService) {
				svc.EXPECT().Notify(gomock.Any(), gomock.Any()).
					Return(domain.DispatchResult{}, fmt.Errorf("%w: missing resellerId or notificationType", errs.ErrInvalidParameter))
			},
			wantCode: http.StatusBadRequest,
			wantResp: result[NotifyResp]{
				Code: http.StatusBadRequest,
				Msg:  "invalid parameter: missing resellerId or notificationType",
			},
		},
		{
			name: "模版数据为空返回 500",
			body: body,
			before: func(svc *goodsreturnmocks.MockService) {
				svc.EXPECT().Notify(gomock.Any(), wantEvent).
					Return(domain.DispatchResult{}, fmt.Errorf("%w: field DATE is empty", errs.ErrTemplateDataEmpty))
			},
			wantCode: http.StatusInternalServerError,
			wantResp: result[NotifyResp]{
				Code: http.StatusInternalServerError,
				Msg:  "template data is empty: field DATE is empty",
			},
		},
		{
			name:     "请求体不是 JSON",
			body:     "not json",
			before:   func(svc *goodsreturnmocks.MockService) {},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := goodsreturnmocks.NewMockService(ctrl)
			tc.before(svc)

			server := gin.New()
			h := NewHandler(svc)
			h.PublicRoutes(server)
			h.PrivateRoutes(server)

			req := httptest.NewRequest(http.MethodPost, "/goods-return/notify", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			require.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantCode == http.StatusBadRequest && tc.wantResp.Msg == "" {
				return
			}
			var got result[NotifyResp]
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
			assert.Equal(t, tc.wantResp, got)
		})
	}
}
