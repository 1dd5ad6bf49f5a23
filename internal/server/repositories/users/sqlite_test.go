package users

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/repotest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(repotest.OpenSQLite(t))

	p := alice()
	p.CreatedAt = time.Date(2025, 3, 4, 5, 6, 7, 8, time.UTC)
	_, err := repo.Create(ctx, p)
	require.NoError(t, err)

	got, err := repo.FindByIdentity(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, p, got)

	got, err = repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Email, got.Email)
}

func TestSQLiteRepository_DuplicateIdentity(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(repotest.OpenSQLite(t))

	_, err := repo.Create(ctx, alice())
	require.NoError(t, err)

	dup := alice()
	dup.ID = "6f1c1c8e-0000-4000-8000-000000000002"
	_, err = repo.Create(ctx, dup)
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestSQLiteRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(repotest.OpenSQLite(t))

	_, err := repo.FindByIdentity(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSQLiteRepository_RejectsUnknownRole(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(repotest.OpenSQLite(t))

	p := alice()
	p.Role = models.Role("root")
	_, err := repo.Create(ctx, p)
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrConflict)
}
