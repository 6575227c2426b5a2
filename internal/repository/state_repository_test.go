package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveStepUpserts(t *testing.T) {
	repo := NewStateRepository(testDB(t))
	ctx := context.Background()

	require.NoError(t, repo.SaveStep(ctx, 7, 1, []byte(`{"selectedDate":"2024-03-01"}`)))
	require.NoError(t, repo.SaveStep(ctx, 7, 1, []byte(`{"selectedDate":"2024-03-02"}`)))

	data, err := repo.LoadStep(ctx, 7, 1)
	require.NoError(t, err)
	assert.JSONEq(t, `{"selectedDate":"2024-03-02"}`, string(data))
}

func TestLoadStepMissingReturnsNil(t *testing.T) {
	repo := NewStateRepository(testDB(t))

	data, err := repo.LoadStep(context.Background(), 7, 2)
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestStepsAreIsolatedPerUser(t *testing.T) {
	repo := NewStateRepository(testDB(t))
	ctx := context.Background()

	require.NoError(t, repo.SaveStep(ctx, 1, 1, []byte(`{"a":1}`)))
	require.NoError(t, repo.SaveStep(ctx, 2, 1, []byte(`{"a":2}`)))

	data, err := repo.LoadStep(ctx, 1, 1)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(data))
}

func TestClearRemovesOnlyOneUsersState(t *testing.T) {
	repo := NewStateRepository(testDB(t))
	ctx := context.Background()

	require.NoError(t, repo.SaveStep(ctx, 1, 1, []byte(`{"a":1}`)))
	require.NoError(t, repo.SaveStep(ctx, 1, 2, []byte(`{"b":2}`)))
	require.NoError(t, repo.SaveStep(ctx, 2, 1, []byte(`{"a":2}`)))

	require.NoError(t, repo.Clear(ctx, 1))

	data, err := repo.LoadStep(ctx, 1, 1)
	require.NoError(t, err)
	assert.Nil(t, data)

	data, err = repo.LoadStep(ctx, 2, 1)
	require.NoError(t, err)
	assert.NotNil(t, data)
}
