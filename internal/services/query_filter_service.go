package services

import (
	"fmt"
	"regexp"
	"strings"
)

var filterColumns = map[string]bool{
	"code":       true,
	"title":      true,
	"room":       true,
	"created_at": true,
	"updated_at": true,
}

var comparisonRegex = regexp.MustCompile(`(?i)(\w+)\s+(eq|ne|gt|ge|lt|le|startswith|contains|endswith)\s+['"]([^'"]*)['"]`)

// ParseFilter translates a simple filter expression such as
// `room eq 'Kitchen' and title contains 'winter'` into a SQL where clause
// with bind parameters. Unknown columns and operators are dropped rather
// than passed through.
func ParseFilter(filter string) (string, []interface{}) {
	var params []interface{}
	if strings.TrimSpace(filter) == "" {
		return "", nil
	}

	logicalOperators := map[string]string{
		" and ": " AND ",
		" or ":  " OR ",
	}
	for key, value := range logicalOperators {
		filter = strings.ReplaceAll(filter, key, value)
	}

	filter = comparisonRegex.ReplaceAllStringFunc(filter, func(match string) string {
		matches := comparisonRegex.FindStringSubmatch(match)
		if len(matches) != 4 {
			return match
		}
		column := strings.ToLower(matches[1])
		operator := strings.ToLower(matches[2])
		value := matches[3]

		if !filterColumns[column] {
			return "1=1"
		}

		var sqlExpr string
		switch operator {
		case "eq":
			sqlExpr = fmt.Sprintf("%s = ?", column)
			params = append(params, value)
		case "ne":
			sqlExpr = fmt.Sprintf("%s != ?", column)
			params = append(params, value)
		case "gt":
			sqlExpr = fmt.Sprintf("%s > ?", column)
			params = append(params, value)
		case "ge":
			sqlExpr = fmt.Sprintf("%s >= ?", column)
			params = append(params, value)
		case "lt":
			sqlExpr = fmt.Sprintf("%s < ?", column)
			params = append(params, value)
		case "le":
			sqlExpr = fmt.Sprintf("%s <= ?", column)
			params = append(params, value)
		case "startswith":
			sqlExpr = fmt.Sprintf("%s LIKE ?", column)
			params = append(params, value+"%")
		case "contains":
			sqlExpr = fmt.Sprintf("%s LIKE ?", column)
			params = append(params, "%"+value+"%")
		case "endswith":
			sqlExpr = fmt.Sprintf("%s LIKE ?", column)
			params = append(params, "%"+value)
		default:
			return match
		}
		return sqlExpr
	})

	return filter, params
}
