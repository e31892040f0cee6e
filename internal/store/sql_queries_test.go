package store

import (
	"strings"
	"testing"
	"time"

	"github.com/rcldesign/asset-manager-sub006/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildListChangedQuery_SQLContainsParts(t *testing.T) {
	since := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	query, args, err := buildListChangedQuery(MetadataQuery{
		Since:           since,
		ExcludeClientID: "client-1",
		Limit:           101,
	})
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from sync_metadata")
	require.Contains(t, q, "last_modified_at >")
	require.Contains(t, q, "order by last_modified_at asc")
	require.Contains(t, q, "limit 101")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")

	// echo suppression: different client OR no client at all
	require.Contains(t, q, "client_id <>")
	require.Contains(t, q, "client_id is null")

	// args: since timestamp and the excluded client id
	require.Len(t, args, 2)
	assert.Equal(t, since, args[0])
	assert.Equal(t, "client-1", args[1])
}

func Test_buildListChangedQuery_EntityTypeFilter(t *testing.T) {
	query, args, err := buildListChangedQuery(MetadataQuery{
		Since:           time.Now(),
		ExcludeClientID: "client-1",
		EntityTypes:     []models.EntityType{models.EntityAsset, models.EntityTask},
		Limit:           10,
		Offset:          20,
	})
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "entity_type in")
	require.Contains(t, q, "offset 20")

	// since + exclude_client_id + two entity types
	require.Len(t, args, 4)
	assert.Contains(t, args, "asset")
	assert.Contains(t, args, "task")
}

func Test_buildListChangedQuery_NoEntityTypeFilter(t *testing.T) {
	query, args, err := buildListChangedQuery(MetadataQuery{
		Since:           time.Now(),
		ExcludeClientID: "client-1",
	})
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.NotContains(t, q, "entity_type in")
	assert.NotContains(t, q, "limit")
	assert.NotContains(t, q, "offset")
	require.Len(t, args, 2)
}

func Test_buildListUnresolvedQuery(t *testing.T) {
	entityType := models.EntitySchedule

	tests := []struct {
		name       string
		filter     ConflictFilter
		count      bool
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:   "success: page query with entity type",
			filter: ConflictFilter{UserID: 42, EntityType: &entityType, Limit: 50, Offset: 100},
			count:  false,
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)
				assert.Contains(t, q, "from sync_conflicts")
				assert.Contains(t, q, "resolved_at is null")
				assert.Contains(t, q, "entity_type")
				assert.Contains(t, q, "order by created_at desc")
				assert.Contains(t, q, "limit 50")
				assert.Contains(t, q, "offset 100")

				require.Len(t, args, 2)
				assert.Equal(t, int64(42), args[0])
				assert.Equal(t, "schedule", args[1])
			},
		},
		{
			name:   "success: count query skips paging",
			filter: ConflictFilter{UserID: 42, Limit: 50, Offset: 100},
			count:  true,
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)
				assert.Contains(t, q, "count(*)")
				assert.NotContains(t, q, "order by")
				assert.NotContains(t, q, "limit")
				assert.NotContains(t, q, "offset")

				require.Len(t, args, 1)
				assert.Equal(t, int64(42), args[0])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListUnresolvedQuery(tt.filter, tt.count)
			require.NoError(t, err)
			tt.checkQuery(t, query, args)
		})
	}
}
