package i18n

var messages = map[string]map[string]string{
	LocaleHE: {
		"error.bad_request":                   "בקשה לא תקינה",
		"error.unauthorized":                  "נדרשת התחברות",
		"error.token_invalid":                 "ההתחברות פגה, יש להתחבר מחדש",
		"error.token_revoked":                 "ההתחברות בוטלה, יש להתחבר מחדש",
		"error.too_many_requests":             "יותר מדי ניסיונות, נסו שוב בעוד %d שניות",
		"error.internal":                      "שגיאת שרת",
		"error.rate_limit_unavailable":        "השירות אינו זמין כרגע, נסו שוב מאוחר יותר",
		"error.not_found":                     "לא נמצא",
		"error.phone_invalid":                 "מספר טלפון לא תקין",
		"error.customer_name_required":        "יש להזין שם",
		"error.board_type_required":           "יש לבחור סוג גלשן",
		"error.board_type_invalid":            "סוג גלשן לא תקין",
		"error.description_required":          "יש לתאר את התקלה",
		"error.urgency_invalid":               "דחיפות לא תקינה",
		"error.delivery_location_invalid":     "מקום מסירה לא תקין",
		"error.repair_status_invalid":         "סטטוס לא תקין",
		"error.price_invalid":                 "מחיר לא תקין",
		"error.message_text_required":         "יש להזין הודעה",
		"error.author_type_invalid":           "סוג כותב לא תקין",
		"error.analytics_period_invalid":      "תקופה לא תקינה",
		"error.date_invalid":                  "תאריך לא תקין",
		"error.media_empty":                   "לא נבחרו קבצים",
		"error.media_too_many_images":         "ניתן להעלות עד 10 תמונות",
		"error.media_too_many_videos":         "ניתן להעלות עד 2 סרטונים",
		"error.media_image_too_large":         "התמונה גדולה מדי",
		"error.media_video_too_large":         "הסרטון גדול מדי",
		"error.media_type_not_allowed":        "סוג קובץ לא נתמך",
		"error.media_path_invalid":            "נתיב קובץ לא תקין",
		"error.upload_form_invalid":           "טופס העלאה לא תקין",
		"error.setting_key_invalid":           "הגדרה לא מוכרת",
		"error.setting_value_invalid":         "ערך הגדרה לא תקין",
		"error.repair_not_found":              "התיקון לא נמצא",
		"error.media_not_found":               "הקובץ לא נמצא",
		"error.customer_not_found":            "הלקוח לא נמצא",
		"error.invalid_credentials":           "סיסמה שגויה",
		"error.admin_password_not_configured": "סיסמת מנהל לא הוגדרה",
		"error.captcha_required":              "יש להזין קוד אימות",
		"error.captcha_invalid":               "קוד אימות שגוי",
		"error.captcha_disabled":              "קוד אימות אינו פעיל",
		"error.login_failed":                  "ההתחברות נכשלה",
		"error.repair_create_failed":          "יצירת התיקון נכשלה",
		"error.repair_fetch_failed":           "טעינת התיקונים נכשלה",
		"error.repair_update_failed":          "עדכון התיקון נכשל",
		"error.repair_delete_failed":          "מחיקת התיקון נכשלה",
		"error.customer_fetch_failed":         "טעינת הלקוחות נכשלה",
		"error.message_save_failed":           "שליחת ההודעה נכשלה",
		"error.message_fetch_failed":          "טעינת ההודעות נכשלה",
		"error.media_save_failed":             "שמירת הקבצים נכשלה",
		"error.media_fetch_failed":            "טעינת הקבצים נכשלה",
		"error.setting_fetch_failed":          "טעינת ההגדרות נכשלה",
		"error.setting_save_failed":           "שמירת ההגדרות נכשלה",
		"error.analytics_failed":              "טעינת הנתונים נכשלה",
		"error.export_failed":                 "הייצוא נכשל",
	},
	LocaleEN: {
		"error.bad_request":                   "Invalid request",
		"error.unauthorized":                  "Login required",
		"error.token_invalid":                 "Session expired, please log in again",
		"error.token_revoked":                 "Session revoked, please log in again",
		"error.too_many_requests":             "Too many attempts, try again in %d seconds",
		"error.internal":                      "Server error",
		"error.rate_limit_unavailable":        "Service temporarily unavailable, please retry later",
		"error.not_found":                     "Not found",
		"error.phone_invalid":                 "Invalid phone number",
		"error.customer_name_required":        "Name is required",
		"error.board_type_required":           "Board type is required",
		"error.board_type_invalid":            "Invalid board type",
		"error.description_required":          "Description is required",
		"error.urgency_invalid":               "Invalid urgency",
		"error.delivery_location_invalid":     "Invalid delivery location",
		"error.repair_status_invalid":         "Invalid status",
		"error.price_invalid":                 "Invalid price",
		"error.message_text_required":         "Message text is required",
		"error.author_type_invalid":           "Invalid author type",
		"error.analytics_period_invalid":      "Invalid period",
		"error.date_invalid":                  "Invalid date",
		"error.media_empty":                   "No files selected",
		"error.media_too_many_images":         "Up to 10 images per upload",
		"error.media_too_many_videos":         "Up to 2 videos per upload",
		"error.media_image_too_large":         "Image is too large",
		"error.media_video_too_large":         "Video is too large",
		"error.media_type_not_allowed":        "Unsupported file type",
		"error.media_path_invalid":            "Invalid file path",
		"error.upload_form_invalid":           "Invalid upload form",
		"error.setting_key_invalid":           "Unknown setting",
		"error.setting_value_invalid":         "Invalid setting value",
		"error.repair_not_found":              "Repair not found",
		"error.media_not_found":               "File not found",
		"error.customer_not_found":            "Customer not found",
		"error.invalid_credentials":           "Wrong password",
		"error.admin_password_not_configured": "Admin password is not configured",
		"error.captcha_required":              "Captcha is required",
		"error.captcha_invalid":               "Wrong captcha",
		"error.captcha_disabled":              "Captcha is disabled",
		"error.login_failed":                  "Login failed",
		"error.repair_create_failed":          "Failed to create repair",
		"error.repair_fetch_failed":           "Failed to load repairs",
		"error.repair_update_failed":          "Failed to update repair",
		"error.repair_delete_failed":          "Failed to delete repair",
		"error.customer_fetch_failed":         "Failed to load customers",
		"error.message_save_failed":           "Failed to send message",
		"error.message_fetch_failed":          "Failed to load messages",
		"error.media_save_failed":             "Failed to save files",
		"error.media_fetch_failed":            "Failed to load files",
		"error.setting_fetch_failed":          "Failed to load settings",
		"error.setting_save_failed":           "Failed to save settings",
		"error.analytics_failed":              "Failed to load analytics",
		"error.export_failed":                 "Export failed",
	},
}
