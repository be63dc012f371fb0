package storage

import (
	"context"
	"testing"
	"time"

	"github.com/glowmart/storefront/internal/adapter/eventbus"
	"github.com/glowmart/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) (DB, *eventbus.Bus) {
	t.Helper()

	db, err := Open(context.Background(), t.TempDir())
	require.NoError(t, err)
	t.Cleanup(db.Close)

	bus := eventbus.New()
	t.Cleanup(bus.Close)
	return db, bus
}

func TestProductsRoundTrip(t *testing.T) {
	db, bus := openTestDB(t)
	repo := NewProductsRepository(db, bus)
	ctx := context.Background()

	created := time.UnixMilli(1700000000000)
	want := []domain.Product{
		{
			ProductID: "p1", Title: "Rose Serum", Slug: "rose-serum",
			Category: "skincare", Price: 24.5, Stock: 10, CreatedAt: created,
		},
		{
			ProductID: "p2", Title: "Matte Lipstick", Slug: "matte-lipstick",
			Price: 12, Stock: domain.DefaultStock, CreatedAt: created,
		},
	}

	require.NoError(t, repo.StoreProducts(ctx, want))

	got, err := repo.LoadProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadFallsBackOnMalformedValue(t *testing.T) {
	db, bus := openTestDB(t)
	repo := NewProductsRepository(db, bus)
	ctx := context.Background()

	t.Run("MissingKey", func(t *testing.T) {
		ps, err := repo.LoadProducts(ctx)
		require.NoError(t, err)
		assert.Empty(t, ps)
	})

	for _, tc := range []struct {
		name  string
		value string
	}{
		{"NonJSON", `{{{`},
		{"NonArray", `{"id":"p1"}`},
		{"Number", `7`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, db.Put(collectionKey(domain.CollectionProducts), []byte(tc.value)))

			ps, err := repo.LoadProducts(ctx)
			require.NoError(t, err)
			assert.Empty(t, ps)
		})
	}

	t.Run("PartiallyMalformedArray", func(t *testing.T) {
		value := `[
			{"id":"p1","title":"Rose Serum","price":24.5,"stock":2},
			{"title":"missing id","price":5}
		]`
		require.NoError(t, db.Put(collectionKey(domain.CollectionProducts), []byte(value)))

		ps, err := repo.LoadProducts(ctx)
		require.NoError(t, err)
		require.Len(t, ps, 1)
		assert.Equal(t, "p1", ps[0].ProductID)
	})
}

func TestStorePublishesChangeEvent(t *testing.T) {
	db, bus := openTestDB(t)
	repo := NewProductsRepository(db, bus)

	events, cancel := bus.Subscribe(domain.CollectionProducts)
	defer cancel()

	require.NoError(t, repo.StoreProducts(context.Background(), nil))

	select {
	case evt := <-events:
		assert.Equal(t, domain.CollectionProducts, evt.Collection)
	case <-time.After(time.Second):
		t.Fatal("no change event after store")
	}
}

func TestBannersSeed(t *testing.T) {
	db, bus := openTestDB(t)
	repo := NewBannersRepository(db, bus)
	ctx := context.Background()

	t.Run("FreshInstallGetsSeed", func(t *testing.T) {
		bs, err := repo.LoadBanners(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, bs)
		assert.Equal(t, "The Glow Ritual", bs[0].Title)
	})

	t.Run("StoredContentReplacesSeed", func(t *testing.T) {
		require.NoError(t, repo.StoreBanners(ctx, []domain.Banner{
			{BannerID: "b1", Title: "Summer Sale", Active: true,
				CreatedAt: time.UnixMilli(1700000000000)},
		}))

		bs, err := repo.LoadBanners(ctx)
		require.NoError(t, err)
		require.Len(t, bs, 1)
		assert.Equal(t, "Summer Sale", bs[0].Title)
	})

	t.Run("EmptyStoredListStaysEmpty", func(t *testing.T) {
		require.NoError(t, repo.StoreBanners(ctx, nil))

		bs, err := repo.LoadBanners(ctx)
		require.NoError(t, err)
		assert.Empty(t, bs)
	})
}

func TestSessionRecord(t *testing.T) {
	db, bus := openTestDB(t)
	repo := NewSessionRepository(db, bus)
	ctx := context.Background()

	_, ok, err := repo.LoadSession(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	want := domain.Session{Name: "Mira", Email: "mira@example.com", Role: domain.RoleUser}
	require.NoError(t, repo.StoreSession(ctx, want))

	got, ok, err := repo.LoadSession(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)

	require.NoError(t, repo.ClearSession(ctx))

	_, ok, err = repo.LoadSession(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWheelCouponSlotPerUser(t *testing.T) {
	db, _ := openTestDB(t)
	repo := NewWheelCouponsRepository(db)
	ctx := context.Background()

	coupon := domain.WheelCoupon{
		CouponID: "wc1", Title: "10% off", Code: "SPIN10",
		Type: domain.CouponPercent, Value: 10,
		ExpiresAt: time.UnixMilli(1900000000000),
		CreatedAt: time.UnixMilli(1700000000000),
	}
	require.NoError(t, repo.StoreWheelCoupon(ctx, "Mira@Example.com", coupon))

	// key is namespaced by normalized email
	got, ok, err := repo.LoadWheelCoupon(ctx, "mira@example.com")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, coupon, got)

	_, ok, err = repo.LoadWheelCoupon(ctx, "other@example.com")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.ClearWheelCoupon(ctx, "mira@example.com"))
	_, ok, err = repo.LoadWheelCoupon(ctx, "mira@example.com")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSpinRecord(t *testing.T) {
	db, _ := openTestDB(t)
	repo := NewSpinsRepository(db)
	ctx := context.Background()

	assert.False(t, repo.HasSpun(ctx, "mira@example.com"))
	require.NoError(t, repo.MarkSpun(ctx, "mira@example.com"))
	assert.True(t, repo.HasSpun(ctx, "MIRA@example.com"))
	assert.False(t, repo.HasSpun(ctx, "other@example.com"))
}

func TestResetCodeRecord(t *testing.T) {
	db, _ := openTestDB(t)
	repo := NewResetCodesRepository(db)
	ctx := context.Background()

	expires := time.UnixMilli(1800000000000)
	require.NoError(t, repo.StoreResetCode(ctx, "mira@example.com", "123456", expires))

	code, gotExpires, ok := repo.LoadResetCode(ctx, "mira@example.com")
	require.True(t, ok)
	assert.Equal(t, "123456", code)
	assert.Equal(t, expires, gotExpires)

	require.NoError(t, repo.ClearResetCode(ctx, "mira@example.com"))
	_, _, ok = repo.LoadResetCode(ctx, "mira@example.com")
	assert.False(t, ok)
}
