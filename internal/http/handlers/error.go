package handlers

import (
	"errors"

	"github.com/unimart/unimart/internal/http/response"
	"github.com/unimart/unimart/internal/service"

	"github.com/gin-gonic/gin"
)

// serviceErrorRules 业务错误到响应码的映射，消息直接取错误文本。
var serviceErrorRules = []struct {
	target error
	code   int
}{
	{target: service.ErrUserNotFound, code: response.CodeNotFound},
	{target: service.ErrCartNotFound, code: response.CodeNotFound},
	{target: service.ErrCartItemNotFound, code: response.CodeNotFound},
	{target: service.ErrProductNotFound, code: response.CodeNotFound},
	{target: service.ErrCategoryNotFound, code: response.CodeNotFound},
	{target: service.ErrOrderNotFound, code: response.CodeNotFound},
	{target: service.ErrReviewNotFound, code: response.CodeNotFound},

	{target: service.ErrCartEmpty, code: response.CodeBadRequest},
	{target: service.ErrInvalidOrderStatus, code: response.CodeBadRequest},
	{target: service.ErrInvalidQuantity, code: response.CodeBadRequest},
	{target: service.ErrInvalidRating, code: response.CodeBadRequest},
	{target: service.ErrInvalidAddress, code: response.CodeBadRequest},
	{target: service.ErrInvalidEmail, code: response.CodeBadRequest},
	{target: service.ErrInvalidPassword, code: response.CodeBadRequest},

	{target: service.ErrEmailTaken, code: response.CodeConflict},
	{target: service.ErrSlugTaken, code: response.CodeConflict},
	{target: service.ErrCategoryInUse, code: response.CodeConflict},
}

// respondServiceError 将业务错误映射为错误响应，未识别的错误按 500 处理并记日志。
func respondServiceError(c *gin.Context, err error) {
	for _, rule := range serviceErrorRules {
		if errors.Is(err, rule.target) {
			response.Error(c, rule.code, err.Error())
			return
		}
	}
	requestLog(c).Errorw("handler_error", "error", err)
	response.Error(c, response.CodeInternal, "Internal server error")
}
