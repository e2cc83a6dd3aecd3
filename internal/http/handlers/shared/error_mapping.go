package shared

import (
	"errors"

	"github.com/hapitzutzia/internal/http/response"
	"github.com/hapitzutzia/internal/service"

	"github.com/gin-gonic/gin"
)

// MappedHandlerError 定义业务错误到接口错误响应的映射关系。
type MappedHandlerError struct {
	Target error
	Code   int
	Key    string
}

// RespondWithMappedError 按规则表输出错误，未命中时记录原始错误并返回兜底响应。
func RespondWithMappedError(c *gin.Context, err error, rules []MappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.Target) {
			RespondError(c, rule.Code, rule.Key, nil)
			return
		}
	}
	RespondError(c, fallbackCode, fallbackKey, err)
}

// ConcatMappedHandlerErrors 合并多组规则。
func ConcatMappedHandlerErrors(groups ...[]MappedHandlerError) []MappedHandlerError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]MappedHandlerError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}

// ValidationErrorRules 校验类错误
var ValidationErrorRules = []MappedHandlerError{
	{Target: service.ErrPhoneInvalid, Code: response.CodeBadRequest, Key: "error.phone_invalid"},
	{Target: service.ErrCustomerNameRequired, Code: response.CodeBadRequest, Key: "error.customer_name_required"},
	{Target: service.ErrBoardTypeRequired, Code: response.CodeBadRequest, Key: "error.board_type_required"},
	{Target: service.ErrBoardTypeInvalid, Code: response.CodeBadRequest, Key: "error.board_type_invalid"},
	{Target: service.ErrDescriptionRequired, Code: response.CodeBadRequest, Key: "error.description_required"},
	{Target: service.ErrUrgencyInvalid, Code: response.CodeBadRequest, Key: "error.urgency_invalid"},
	{Target: service.ErrDeliveryLocationInvalid, Code: response.CodeBadRequest, Key: "error.delivery_location_invalid"},
	{Target: service.ErrRepairStatusInvalid, Code: response.CodeBadRequest, Key: "error.repair_status_invalid"},
	{Target: service.ErrPriceInvalid, Code: response.CodeBadRequest, Key: "error.price_invalid"},
	{Target: service.ErrMessageTextRequired, Code: response.CodeBadRequest, Key: "error.message_text_required"},
	{Target: service.ErrAuthorTypeInvalid, Code: response.CodeBadRequest, Key: "error.author_type_invalid"},
	{Target: service.ErrAnalyticsPeriodInvalid, Code: response.CodeBadRequest, Key: "error.analytics_period_invalid"},
	{Target: service.ErrMediaEmpty, Code: response.CodeBadRequest, Key: "error.media_empty"},
	{Target: service.ErrMediaTooManyImages, Code: response.CodeBadRequest, Key: "error.media_too_many_images"},
	{Target: service.ErrMediaTooManyVideos, Code: response.CodeBadRequest, Key: "error.media_too_many_videos"},
	{Target: service.ErrMediaImageTooLarge, Code: response.CodeBadRequest, Key: "error.media_image_too_large"},
	{Target: service.ErrMediaVideoTooLarge, Code: response.CodeBadRequest, Key: "error.media_video_too_large"},
	{Target: service.ErrMediaTypeNotAllowed, Code: response.CodeBadRequest, Key: "error.media_type_not_allowed"},
	{Target: service.ErrMediaPathInvalid, Code: response.CodeBadRequest, Key: "error.media_path_invalid"},
	{Target: service.ErrSettingKeyInvalid, Code: response.CodeBadRequest, Key: "error.setting_key_invalid"},
	{Target: service.ErrSettingValueInvalid, Code: response.CodeBadRequest, Key: "error.setting_value_invalid"},
}

// NotFoundErrorRules 资源不存在错误
var NotFoundErrorRules = []MappedHandlerError{
	{Target: service.ErrRepairNotFound, Code: response.CodeNotFound, Key: "error.repair_not_found"},
	{Target: service.ErrMediaNotFound, Code: response.CodeNotFound, Key: "error.media_not_found"},
	{Target: service.ErrCustomerNotFound, Code: response.CodeNotFound, Key: "error.customer_not_found"},
}

// AuthErrorRules 鉴权类错误
var AuthErrorRules = []MappedHandlerError{
	{Target: service.ErrInvalidCredentials, Code: response.CodeUnauthorized, Key: "error.invalid_credentials"},
	{Target: service.ErrAdminPasswordNotConfigured, Code: response.CodeInternal, Key: "error.admin_password_not_configured"},
	{Target: service.ErrTokenInvalid, Code: response.CodeUnauthorized, Key: "error.token_invalid"},
	{Target: service.ErrTokenRevoked, Code: response.CodeUnauthorized, Key: "error.token_revoked"},
	{Target: service.ErrCaptchaRequired, Code: response.CodeBadRequest, Key: "error.captcha_required"},
	{Target: service.ErrCaptchaInvalid, Code: response.CodeBadRequest, Key: "error.captcha_invalid"},
	{Target: service.ErrCaptchaDisabled, Code: response.CodeBadRequest, Key: "error.captcha_disabled"},
}

// ServiceErrorRules 业务错误完整规则表（存储类错误走兜底并记录日志）
var ServiceErrorRules = ConcatMappedHandlerErrors(ValidationErrorRules, NotFoundErrorRules, AuthErrorRules)
