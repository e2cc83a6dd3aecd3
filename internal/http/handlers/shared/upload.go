package shared

import (
	"mime/multipart"

	"github.com/gin-gonic/gin"
)

// PublicConfigCacheKey 门户配置缓存 key
const PublicConfigCacheKey = "public:config"

// MediaFormField 上传表单中的文件字段名
const MediaFormField = "files"

// ReadMediaFiles 读取 multipart 表单中的文件列表
func ReadMediaFiles(c *gin.Context) ([]*multipart.FileHeader, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}
	return form.File[MediaFormField], nil
}
