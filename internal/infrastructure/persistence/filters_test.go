package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pratul75/report360/internal/domain/crm"
	"github.com/Pratul75/report360/internal/domain/shared"
	"github.com/Pratul75/report360/internal/infrastructure/persistence/models"
)

func TestApplyFilter_OrderBySanitized(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormClientRepository(db)
	ctx := context.Background()

	older, err := crm.NewClient("Older Agro", "", "", "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, older))

	newer, err := crm.NewClient("Newer Agro", "", "", "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, newer))

	// Push one row into the past so created_at ordering is deterministic.
	require.NoError(t, db.Model(&models.ClientModel{}).
		Where("id = ?", older.ID).
		Update("created_at", time.Now().Add(-time.Hour)).Error)

	t.Run("orders by a plain column", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.OrderBy = "name"
		filter.OrderDir = "asc"

		found, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, "Newer Agro", found[0].Name)
	})

	t.Run("order expressions fall back to the default ordering", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.OrderBy = "(SELECT CASE WHEN (SELECT COUNT(*) FROM users) >= 0 THEN id ELSE name END)"

		found, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, newer.ID, found[0].ID)
	})

	t.Run("order subqueries against other tables never reach SQL", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.OrderBy = "(SELECT password_hash FROM no_such_table)"

		// An applied expression would surface a database error here.
		found, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		assert.Len(t, found, 2)
	})

	t.Run("unsafe filter keys are dropped", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Filters = map[string]interface{}{"name = name) OR (1": "1"}

		found, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		assert.Len(t, found, 2)
	})
}
