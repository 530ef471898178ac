package persistence

import (
	"strings"

	"gorm.io/gorm"

	"github.com/Pratul75/report360/internal/domain/shared"
)

// applyFilter applies the common list options to a query: the active
// scope, search, extra column filters, ordering and pagination.
// searchColumns names the columns the Search term matches against.
// LOWER/LIKE keeps the search portable between postgres and the
// sqlite test databases.
func applyFilter(query *gorm.DB, filter shared.Filter, searchColumns ...string) *gorm.DB {
	query = applyFilterWithoutPagination(query, filter, searchColumns...)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	if isSafeColumn(filter.OrderBy) {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("created_at DESC")
	}

	return query
}

// applyFilterWithoutPagination applies everything except paging and
// ordering, for use by Count.
func applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter, searchColumns ...string) *gorm.DB {
	if !filter.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}

	if filter.Search != "" && len(searchColumns) > 0 {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		clauses := make([]string, len(searchColumns))
		args := make([]interface{}, len(searchColumns))
		for i, col := range searchColumns {
			clauses[i] = "LOWER(" + col + ") LIKE ?"
			args[i] = pattern
		}
		query = query.Where(strings.Join(clauses, " OR "), args...)
	}

	for key, value := range filter.Filters {
		if isSafeColumn(key) {
			query = query.Where(key+" = ?", value)
		}
	}

	return query
}

// isSafeColumn guards against SQL injection through filter keys and
// order columns, both of which arrive from the query string. Only
// plain snake_case identifiers are accepted; anything else falls back
// to the default ordering or is dropped.
func isSafeColumn(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return false
		}
	}
	return true
}

// softDelete flips the is_active flag on the given model by primary
// key. Returns shared.ErrNotFound when no active row matched.
func softDelete(query *gorm.DB, model interface{}, id interface{}) error {
	result := query.Model(model).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
