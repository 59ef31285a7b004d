// Package dbquery holds dialect-aware query fragments shared by repos.
package dbquery

import (
	"encoding/json"
	"strings"

	"gorm.io/gorm"
)

// JSONArrayContains matches rows whose JSON array column holds value.
func JSONArrayContains(db *gorm.DB, column, value string) (string, []interface{}) {
	if db.Dialector.Name() == "postgres" {
		raw, _ := json.Marshal([]string{value})
		return column + " @> ?::jsonb", []interface{}{string(raw)}
	}
	return "EXISTS (SELECT 1 FROM json_each(" + column + ") WHERE json_each.value = ?)", []interface{}{value}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsFold is a case-insensitive substring match on column.
func ContainsFold(column, needle string) (string, interface{}) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(needle)) + "%"
	return "LOWER(" + column + `) LIKE ? ESCAPE '\'`, pattern
}

// Page clamps page/limit and returns the row offset.
func Page(page, limit, defLimit, maxLimit int) (int, int, int) {
	if limit <= 0 {
		limit = defLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if page <= 0 {
		page = 1
	}
	return page, limit, (page - 1) * limit
}
