package crm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListFilter_ToDomainFilter(t *testing.T) {
	t.Run("empty filter keeps repository defaults", func(t *testing.T) {
		filter := ListFilter{}.toDomainFilter()

		assert.Equal(t, 1, filter.Page)
		assert.Equal(t, 20, filter.PageSize)
		assert.Equal(t, "created_at", filter.OrderBy)
		assert.Equal(t, "desc", filter.OrderDir)
		assert.Empty(t, filter.Filters)
	})

	t.Run("set fields override the defaults", func(t *testing.T) {
		filter := ListFilter{
			Page:     3,
			PageSize: 50,
			OrderBy:  "name",
			OrderDir: "asc",
			Search:   "agro",
			Status:   "active",
		}.toDomainFilter()

		assert.Equal(t, 3, filter.Page)
		assert.Equal(t, 50, filter.PageSize)
		assert.Equal(t, "name", filter.OrderBy)
		assert.Equal(t, "asc", filter.OrderDir)
		assert.Equal(t, "agro", filter.Search)
		assert.Equal(t, map[string]interface{}{"status": "active"}, filter.Filters)
	})
}
