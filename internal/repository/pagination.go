package repository

import "gorm.io/gorm"

// maxPageSize 单页上限；pageSize<=0 表示不分页（导出使用）
const maxPageSize = 500

// pageWindow 计算 limit/offset，页码小于 1 按第 1 页处理
func pageWindow(page, pageSize int) (limit, offset int) {
	if pageSize <= 0 {
		return 0, 0
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	if page < 1 {
		page = 1
	}
	return pageSize, (page - 1) * pageSize
}

func applyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	limit, offset := pageWindow(page, pageSize)
	if query == nil || limit == 0 {
		return query
	}
	return query.Limit(limit).Offset(offset)
}
