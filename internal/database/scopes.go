package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/yukikurage/demodb/internal/constants"
)

// Paginate limits a query to one fixed-size page. Pages start at 1.
func Paginate(page int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < constants.MinPage {
			page = constants.MinPage
		}
		return db.Offset((page - 1) * constants.PageSize).Limit(constants.PageSize)
	}
}

// Search keeps rows where any of columns contains filter, ignoring case.
// A blank filter matches everything.
func Search(filter string, columns ...string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		filter = strings.TrimSpace(filter)
		if filter == "" || len(columns) == 0 {
			return db
		}

		pattern := "%" + escapeLike(filter) + "%"
		conds := make([]string, len(columns))
		args := make([]any, len(columns))
		for i, col := range columns {
			conds[i] = fmt.Sprintf("LOWER(%s) LIKE LOWER(?) ESCAPE '!'", col)
			args[i] = pattern
		}

		return db.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
}

func escapeLike(s string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(s)
}
