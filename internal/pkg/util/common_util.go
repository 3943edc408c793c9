package util

import "strings"

// likeEscaper 转义 LIKE 通配符，转义字符为 '!'
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// ContainsPattern 生成字面量子串匹配的 LIKE 模式，需配合 ESCAPE '!'
func ContainsPattern(needle string) string {
	return "%" + likeEscaper.Replace(needle) + "%"
}
