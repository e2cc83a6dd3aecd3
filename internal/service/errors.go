package service

import "errors"

// 校验类错误
var (
	ErrPhoneInvalid            = errors.New("phone invalid")
	ErrCustomerNameRequired    = errors.New("customer name required")
	ErrBoardTypeRequired       = errors.New("board type required")
	ErrBoardTypeInvalid        = errors.New("board type invalid")
	ErrDescriptionRequired     = errors.New("description required")
	ErrUrgencyInvalid          = errors.New("urgency invalid")
	ErrDeliveryLocationInvalid = errors.New("delivery location invalid")
	ErrRepairStatusInvalid     = errors.New("repair status invalid")
	ErrPriceInvalid            = errors.New("price invalid")
	ErrMessageTextRequired     = errors.New("message text required")
	ErrAuthorTypeInvalid       = errors.New("author type invalid")
	ErrAnalyticsPeriodInvalid  = errors.New("analytics period invalid")
	ErrMediaEmpty              = errors.New("media empty")
	ErrMediaTooManyImages      = errors.New("too many images")
	ErrMediaTooManyVideos      = errors.New("too many videos")
	ErrMediaImageTooLarge      = errors.New("image too large")
	ErrMediaVideoTooLarge      = errors.New("video too large")
	ErrMediaTypeNotAllowed     = errors.New("media type not allowed")
	ErrMediaPathInvalid        = errors.New("media path invalid")
	ErrSettingKeyInvalid       = errors.New("setting key invalid")
	ErrSettingValueInvalid     = errors.New("setting value invalid")
)

// 资源不存在错误
var (
	ErrRepairNotFound   = errors.New("repair not found")
	ErrMediaNotFound    = errors.New("media not found")
	ErrCustomerNotFound = errors.New("customer not found")
)

// 鉴权类错误
var (
	ErrInvalidCredentials         = errors.New("invalid credentials")
	ErrAdminPasswordNotConfigured = errors.New("admin password not configured")
	ErrTokenInvalid               = errors.New("token invalid")
	ErrTokenRevoked               = errors.New("token revoked")
	ErrCaptchaRequired            = errors.New("captcha required")
	ErrCaptchaInvalid             = errors.New("captcha invalid")
	ErrCaptchaDisabled            = errors.New("captcha disabled")
)

// 存储类错误（包装底层原因）
var (
	ErrRepairCreateFailed  = errors.New("repair create failed")
	ErrRepairFetchFailed   = errors.New("repair fetch failed")
	ErrRepairUpdateFailed  = errors.New("repair update failed")
	ErrRepairDeleteFailed  = errors.New("repair delete failed")
	ErrCustomerFetchFailed = errors.New("customer fetch failed")
	ErrMessageSaveFailed   = errors.New("message save failed")
	ErrMessageFetchFailed  = errors.New("message fetch failed")
	ErrMediaSaveFailed     = errors.New("media save failed")
	ErrMediaFetchFailed    = errors.New("media fetch failed")
	ErrSettingFetchFailed  = errors.New("setting fetch failed")
	ErrSettingSaveFailed   = errors.New("setting save failed")
	ErrAnalyticsFailed     = errors.New("analytics failed")
	ErrExportFailed        = errors.New("export failed")
)
