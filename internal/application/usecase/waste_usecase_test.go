package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mshagov/ecooffer-api/internal/application/usecase"
	"github.com/mshagov/ecooffer-api/internal/domain"
	"github.com/mshagov/ecooffer-api/internal/domain/pagination"
	"github.com/mshagov/ecooffer-api/internal/infrastructure/memory"
)

func TestWasteCreate_ValidatesFKKOCode(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewWasteUseCase(memory.NewWasteRepository())

	waste, err := uc.Create(ctx, "Бой кирпича", "8 12 201 01 20 5")
	require.NoError(t, err)
	assert.Equal(t, "8 12 201 01 20 5", waste.FKKOCode)
	assert.Equal(t, "81220101205", waste.NormalizedCode)

	for _, bad := range []string{"", "abc", "8-12", "8.12"} {
		_, err := uc.Create(ctx, "x", bad)
		assert.ErrorIs(t, err, domain.ErrInvalidFKKOCode, "code %q", bad)
	}
}

func TestWasteList_QueryIsNormalized(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewWasteUseCase(memory.NewWasteRepository())

	created, err := uc.Create(ctx, "Строительный мусор!", "8 12 101")
	require.NoError(t, err)

	// The raw query carries case, punctuation and spacing differences; the
	// use case normalizes before hitting the store.
	list, _, err := uc.List(ctx, pagination.Default, usecase.WasteQuery{
		Name:     "строительный   МУСОР",
		FKKOCode: "812101",
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
}

func TestWasteUpdate_RevalidatesCode(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewWasteUseCase(memory.NewWasteRepository())

	waste, err := uc.Create(ctx, "Бой кирпича", "8 12 201")
	require.NoError(t, err)

	bad := "not-a-code"
	_, err = uc.Update(ctx, waste.ID, nil, &bad)
	assert.ErrorIs(t, err, domain.ErrInvalidFKKOCode)

	good := "8 12 999"
	updated, err := uc.Update(ctx, waste.ID, nil, &good)
	require.NoError(t, err)
	assert.Equal(t, "8 12 999", updated.FKKOCode)
	assert.Equal(t, "812999", updated.NormalizedCode)
	assert.Equal(t, "Бой кирпича", updated.Name, "nil name keeps the current value")
}

func TestWasteDelete_Twice(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewWasteUseCase(memory.NewWasteRepository())

	waste, err := uc.Create(ctx, "Бой кирпича", "8 12 201")
	require.NoError(t, err)

	deleted, err := uc.Delete(ctx, waste.ID)
	require.NoError(t, err)
	assert.Equal(t, waste.ID, deleted.ID)

	_, err = uc.Delete(ctx, waste.ID)
	assert.ErrorIs(t, err, domain.ErrWasteNotFound)
}
