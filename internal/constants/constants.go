package constants

// 维修状态常量
const (
	RepairStatusWaiting  = "waiting"
	RepairStatusWorking  = "working"
	RepairStatusReady    = "ready"
	RepairStatusArchived = "archived"
)

// RepairStatuses 维修状态展示顺序
var RepairStatuses = []string{
	RepairStatusWaiting,
	RepairStatusWorking,
	RepairStatusReady,
	RepairStatusArchived,
}

// 板型常量
const (
	BoardTypeShort     = "short"
	BoardTypeLong      = "long"
	BoardTypeWindsurf  = "windsurf"
	BoardTypeWing      = "wing"
	BoardTypeSUP       = "sup"
	BoardTypeKayak     = "kayak"
	BoardTypeCatamaran = "catamaran"
	BoardTypeFoil      = "foil"
	BoardTypeOther     = "other"
)

// BoardTypes 板型展示顺序
var BoardTypes = []string{
	BoardTypeShort,
	BoardTypeLong,
	BoardTypeWindsurf,
	BoardTypeWing,
	BoardTypeSUP,
	BoardTypeKayak,
	BoardTypeCatamaran,
	BoardTypeFoil,
	BoardTypeOther,
}

// 紧急程度常量
const (
	UrgencyUrgent = "urgent"
	UrgencyNormal = "normal"
)

// 交付地点常量
const (
	DeliveryPardessHanna = "pardess_hanna"
	DeliveryShdotYam     = "shdot_yam"
	DeliveryOther        = "other"
)

// 媒体类型常量
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// 作者 / 上传者身份常量
const (
	AuthorCustomer = "customer"
	AuthorAdmin    = "admin"
)

// 统计周期常量
const (
	AnalyticsPeriodMonth = "month"
	AnalyticsPeriodHalf  = "half"
	AnalyticsPeriodYear  = "year"
)

// 队列常量
const (
	QueueNotify            = "notify"      // 客户通知，优先消费
	QueueMaintenance       = "maintenance" // 媒体清理等补偿任务
	TaskRepairStatusNotify = "repair:status_notify"
	TaskMediaCleanup       = "media:cleanup"
)

// 缓存默认配置常量
const (
	RedisPrefixDefault = "hp"
)

// 设置键常量
const (
	SettingKeyPaymentLink  = "payment_link"
	SettingKeyWorkshopName = "workshop_name"
	SettingKeyAdminPhone   = "admin_phone"
)

// SettingKeys 允许写入的设置键
var SettingKeys = []string{
	SettingKeyPaymentLink,
	SettingKeyWorkshopName,
	SettingKeyAdminPhone,
}

// 存储驱动常量
const (
	StorageDriverLocal = "local"
	StorageDriverMinIO = "minio"
)

// 站点语言常量
const (
	LocaleHeIL = "he-IL"
	LocaleEnUS = "en-US"
)

// 支持的站点语言顺序（含回退顺序）
var SupportedLocales = []string{LocaleHeIL, LocaleEnUS}

// 导出格式常量
const (
	ExportFormatXLSX = "xlsx"
)

// 请求上下文键
const (
	ContextKeyAdminClaims = "admin_claims"
)
