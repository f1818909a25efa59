package goodsreturn

import (
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/olegtuta/refactoring/internal/domain"
	"github.com/olegtuta/refactoring/internal/errs"
	goodsreturnsvc "github.com/olegtuta/refactoring/internal/service/goodsreturn"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc    goodsreturnsvc.Service
	logger *elog.Component
}

func NewHandler(svc goodsreturnsvc.Service) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/goods-return")
	g.POST("/notify", h.Notify)
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// Notify 处理一次退货事件，校验或查询失败时返回 400/500，发送失败体现在结果里
func (h *Handler) Notify(ctx *gin.Context) {
	var req NotifyReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, ginx.Result{
			Code: http.StatusBadRequest,
			Msg:  err.Error(),
		})
		return
	}

	result, err := h.svc.Notify(ctx.Request.Context(), h.toDomain(req))
	if err != nil {
		code := errs.HTTPStatus(err)
		h.logger.Warn("处理退货通知失败",
			elog.FieldErr(err),
			elog.Int64("resellerID", req.ResellerID),
			elog.Int64("complaintID", req.ComplaintID))
		ctx.JSON(code, ginx.Result{
			Code: code,
			Msg:  err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, ginx.Result{
		Msg:  "OK",
		Data: h.toResp(result),
	})
}

func (h *Handler) toDomain(req NotifyReq) domain.ReturnEvent {
	evt := domain.ReturnEvent{
		ResellerID:        req.ResellerID,
		NotificationType:  domain.NotificationType(req.NotificationType),
		ClientID:          req.ClientID,
		CreatorID:         req.CreatorID,
		ExpertID:          req.ExpertID,
		ComplaintID:       req.ComplaintID,
		ComplaintNumber:   req.ComplaintNumber,
		ConsumptionID:     req.ConsumptionID,
		ConsumptionNumber: req.ConsumptionNumber,
		AgreementNumber:   req.AgreementNumber,
		Date:              req.Date,
	}
	if req.Differences != nil {
		evt.Differences = &domain.Differences{
			From: domain.ReturnStatus(req.Differences.From),
			To:   domain.ReturnStatus(req.Differences.To),
		}
	}
	return evt
}

func (h *Handler) toResp(result domain.DispatchResult) NotifyResp {
	return NotifyResp{
		NotificationEmployeeByEmail: result.EmployeeEmailNotified,
		NotificationClientByEmail:   result.ClientEmailNotified,
		NotificationClientBySms: SMSResult{
			IsSent:  result.ClientSMS.IsSent,
			Message: result.ClientSMS.Message,
		},
	}
}
