package repository

import (
	"context"
	"testing"
	"time"

	"frent-client/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func newSagaRecord(username string, started time.Time, steps ...models.SagaStep) *models.SagaRecord {
	succeeded := true
	for _, s := range steps {
		if s.Status != models.StepCommitted {
			succeeded = false
		}
	}
	return &models.SagaRecord{
		ID:         uuid.NewString(),
		Name:       "rent-cart",
		Username:   username,
		Steps:      steps,
		Succeeded:  succeeded,
		StartedAt:  started,
		FinishedAt: started.Add(time.Second),
	}
}

func TestSagaLogRepository(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewSagaLogRepository(tdb.Database)
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Millisecond)

	t.Run("creates journal indexes", func(t *testing.T) {
		cursor, err := tdb.Database.Collection(SagaCollection).Indexes().List(ctx)
		require.NoError(t, err)

		var indexes []bson.M
		require.NoError(t, cursor.All(ctx, &indexes))

		names := make([]string, 0, len(indexes))
		for _, idx := range indexes {
			names = append(names, idx["name"].(string))
		}
		assert.Len(t, indexes, len(SagaIndexes())+1, "expected _id plus journal indexes")
		assert.Contains(t, names, "username_1_startedAt_-1")
		assert.Contains(t, names, "succeeded_1_finishedAt_-1")
	})

	t.Run("records and lists newest first", func(t *testing.T) {
		tdb.ClearCollection(t, SagaCollection)

		older := newSagaRecord("jdoe", base.Add(-time.Hour),
			models.SagaStep{Name: "create-rental", MovieID: "m1", Status: models.StepCommitted})
		newer := newSagaRecord("jdoe", base,
			models.SagaStep{Name: "create-rental", MovieID: "m2", Status: models.StepCommitted})
		other := newSagaRecord("someone", base)

		require.NoError(t, repo.Record(ctx, older))
		require.NoError(t, repo.Record(ctx, newer))
		require.NoError(t, repo.Record(ctx, other))

		records, err := repo.FindByUsername(ctx, "jdoe", 10)

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, newer.ID, records[0].ID)
		assert.Equal(t, older.ID, records[1].ID)
		assert.Equal(t, []string{"create-rental:m2"}, records[0].Committed())
	})

	t.Run("limit bounds result", func(t *testing.T) {
		tdb.ClearCollection(t, SagaCollection)

		for i := 0; i < 3; i++ {
			require.NoError(t, repo.Record(ctx, newSagaRecord("jdoe", base.Add(time.Duration(i)*time.Minute))))
		}

		records, err := repo.FindByUsername(ctx, "jdoe", 2)

		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("unknown user has empty history", func(t *testing.T) {
		tdb.ClearCollection(t, SagaCollection)

		records, err := repo.FindByUsername(ctx, "nobody", 10)

		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run("finds partial failures only", func(t *testing.T) {
		tdb.ClearCollection(t, SagaCollection)

		partial := newSagaRecord("jdoe", base,
			models.SagaStep{Name: "create-rental", MovieID: "m1", Status: models.StepCommitted},
			models.SagaStep{Name: "create-rental", MovieID: "m2", Status: models.StepFailed, Error: "unavailable"},
		)
		cleanFailure := newSagaRecord("jdoe", base,
			models.SagaStep{Name: "add-to-cart", MovieID: "m3", Status: models.StepFailed},
			models.SagaStep{Name: "remove-from-wishlist", MovieID: "m3", Status: models.StepSkipped},
		)
		success := newSagaRecord("jdoe", base,
			models.SagaStep{Name: "create-rental", MovieID: "m4", Status: models.StepCommitted})
		stale := newSagaRecord("jdoe", base.Add(-48*time.Hour),
			models.SagaStep{Name: "create-rental", MovieID: "m5", Status: models.StepCommitted},
			models.SagaStep{Name: "remove-from-cart", MovieID: "m5", Status: models.StepFailed},
		)

		for _, r := range []*models.SagaRecord{partial, cleanFailure, success, stale} {
			require.NoError(t, repo.Record(ctx, r))
		}

		records, err := repo.FindPartialFailures(ctx, base.Add(-time.Hour))

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, partial.ID, records[0].ID)
		assert.Equal(t, []string{"create-rental:m2"}, records[0].Failed())
		assert.Equal(t, "unavailable", records[0].Steps[1].Error)
	})
}
