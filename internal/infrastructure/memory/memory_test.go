package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mshagov/ecooffer-api/internal/domain/entity"
	"github.com/mshagov/ecooffer-api/internal/domain/pagination"
	"github.com/mshagov/ecooffer-api/internal/domain/repository"
	"github.com/mshagov/ecooffer-api/internal/infrastructure/memory"
)

func TestPagination_TwoPagesAreDisjoint(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewWorkRepository()
	require.NoError(t, repo.Create(ctx, entity.NewWork("a", "demolition")))
	require.NoError(t, repo.Create(ctx, entity.NewWork("b", "transport")))

	first, cursor, err := repo.List(ctx, pagination.Params{Limit: 1}, repository.WorkFilter{})
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.NotEmpty(t, cursor)

	second, next, err := repo.List(ctx, pagination.Params{Limit: 1, Last: cursor}, repository.WorkFilter{})
	require.NoError(t, err)
	require.Len(t, second, 1)

	assert.NotEqual(t, first[0].ID, second[0].ID, "pages must not overlap")

	// The second page is the last full page; the cursor it returns must lead
	// to an empty page.
	if next != "" {
		third, _, err := repo.List(ctx, pagination.Params{Limit: 1, Last: next}, repository.WorkFilter{})
		require.NoError(t, err)
		assert.Empty(t, third)
	}
}

func TestPagination_ExhaustedCursorIsEmpty(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCompanyRepository()
	require.NoError(t, repo.Create(ctx, &entity.Company{ID: "a", Name: "Eco"}))

	list, cursor, err := repo.List(ctx, pagination.Params{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Empty(t, cursor, "partial page ends the listing")
}

func TestWasteList_NormalizedFilters(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewWasteRepository()
	require.NoError(t, repo.Create(ctx, entity.NewWaste("1", "Строительный мусор", "8 12 101 01 72 4")))
	require.NoError(t, repo.Create(ctx, entity.NewWaste("2", "Отходы грунта", "8 11 111 11 49 4")))

	// Exact normalized name ignores case.
	list, _, err := repo.List(ctx, pagination.Default, repository.WasteFilter{
		Name: entity.NormalizeName("СТРОИТЕЛЬНЫЙ МУСОР"),
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "1", list[0].ID)

	// FKKO prefix match ignores spacing.
	list, _, err = repo.List(ctx, pagination.Default, repository.WasteFilter{
		FKKOCodePrefix: entity.NormalizeFKKOCode("8 12"),
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "1", list[0].ID)

	// AND-combination with no intersection.
	list, _, err = repo.List(ctx, pagination.Default, repository.WasteFilter{
		NameContains: entity.NormalizeName("грунта"),
		FKKOCode:     entity.NormalizeFKKOCode("8 12 101 01 72 4"),
	})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUserRepo_GetAbsentReturnsNil(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()

	user, err := repo.GetByID(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = repo.GetByLogin(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestBlobStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := memory.NewBlobStore()

	data, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, store.Put(ctx, "k", []byte("doc")))
	data, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("doc"), data)

	require.NoError(t, store.Delete(ctx, "k"))
	data, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, data)
}
