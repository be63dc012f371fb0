package service_test

import (
	"context"
	"testing"

	"github.com/glowmart/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("DerivesSlugAndDefaultStock", func(t *testing.T) {
		env := newTestEnv(t)
		svc := env.catalog()

		p, err := svc.Create(ctx, domain.Product{
			Title: "Rose Quartz Serum", Price: 24.5,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, p.ProductID)
		assert.Equal(t, "rose-quartz-serum", p.Slug)
		assert.Equal(t, domain.DefaultStock, p.Stock)

		got, err := svc.Get(ctx, p.ProductID)
		require.NoError(t, err)
		assert.Equal(t, p, got)
	})

	t.Run("KeepsExplicitStock", func(t *testing.T) {
		env := newTestEnv(t)

		p, err := env.catalog().Create(ctx, domain.Product{
			Title: "Limited Balm", Price: 9, Stock: 5,
		})
		require.NoError(t, err)
		assert.Equal(t, 5, p.Stock)
	})

	t.Run("RejectsMissingTitleOrPrice", func(t *testing.T) {
		env := newTestEnv(t)
		svc := env.catalog()

		_, err := svc.Create(ctx, domain.Product{Price: 10})
		assert.ErrorIs(t, err, domain.ErrMissingField)

		_, err = svc.Create(ctx, domain.Product{Title: "Freebie"})
		assert.ErrorIs(t, err, domain.ErrMissingField)
	})
}

func TestCatalogUpdate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := env.catalog()

	p, err := svc.Create(ctx, domain.Product{Title: "Old Name", Price: 10})
	require.NoError(t, err)

	p.Title = "New Name"
	p.Price = 12
	require.NoError(t, svc.Update(ctx, p))

	got, err := svc.Get(ctx, p.ProductID)
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.Title)
	assert.Equal(t, "new-name", got.Slug)
	assert.Equal(t, 12.0, got.Price)
	// the original creation time survives updates
	assert.Equal(t, p.CreatedAt.Unix(), got.CreatedAt.Unix())

	err = svc.Update(ctx, domain.Product{
		ProductID: "missing", Title: "X", Price: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogDelete(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := env.catalog()

	p, err := svc.Create(ctx, domain.Product{Title: "Gone", Price: 3})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, p.ProductID))

	_, err = svc.Get(ctx, p.ProductID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, p.ProductID), domain.ErrNotFound)
}
