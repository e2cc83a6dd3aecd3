package repository

import (
	"strings"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsAny 构建"任一列包含关键字"的忽略大小写条件
// 两边都做 LOWER，sqlite 与 postgres 行为一致；关键字中的通配符按字面匹配。
func containsAny(columns []string, keyword string) (string, []interface{}) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(keyword))) + "%"
	parts := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns))
	for _, column := range columns {
		column = strings.TrimSpace(column)
		if column == "" {
			continue
		}
		parts = append(parts, "LOWER("+column+") LIKE ? ESCAPE '\\'")
		args = append(args, pattern)
	}
	if len(parts) > 1 {
		return "(" + strings.Join(parts, " OR ") + ")", args
	}
	return strings.Join(parts, ""), args
}
