package errs

import (
	"errors"
	"net/http"
)

// 致命错误，直接返回给调用方
var (
	ErrInvalidParameter    = errors.New("invalid parameter")
	ErrContractorNotFound  = errors.New("contractor not found")
	ErrTemplateDataEmpty   = errors.New("template data is empty")
	ErrUnknownReturnStatus = errors.New("unknown return status")
	ErrMessageNotFound     = errors.New("localized message not found")
)

// 渠道发送错误，只记录日志，不会返回给调用方
var (
	ErrSendNotificationFailed = errors.New("send notification failed")
	ErrNoAvailableProvider    = errors.New("no available provider")
	ErrRateLimited            = errors.New("rate limited")
	ErrCircuitOpen            = errors.New("circuit breaker is open")
)

// HTTPStatus 把致命错误映射成对外的状态码
// 参数和实体相关的问题返回 400，模版数据缺失以及其他未知错误返回 500
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidParameter),
		errors.Is(err, ErrUnknownReturnStatus),
		errors.Is(err, ErrContractorNotFound):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
