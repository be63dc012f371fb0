package service_test

import (
	"context"
	"testing"

	"github.com/glowmart/storefront/internal/adapter/eventbus"
	"github.com/glowmart/storefront/internal/adapter/storage"
	"github.com/glowmart/storefront/internal/core/service"
	"github.com/stretchr/testify/require"
)

// testEnv wires real storage and bus adapters over a temp dir, so
// service tests exercise the same persistence path the app does.
type testEnv struct {
	db  storage.DB
	bus *eventbus.Bus

	products storage.ProductsRepository
	orders   storage.OrdersRepository
	coupons  storage.CouponsRepository
	wheel    storage.WheelCouponsRepository
	admins   storage.AdminsRepository
	users    storage.UsersRepository
	session  storage.SessionRepository
	resets   storage.ResetCodesRepository
	spins    storage.SpinsRepository
	banners  storage.BannersRepository
	posts    storage.PostsRepository
	reviews  storage.ReviewsRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := storage.Open(context.Background(), t.TempDir())
	require.NoError(t, err)
	t.Cleanup(db.Close)

	bus := eventbus.New()
	t.Cleanup(bus.Close)

	return &testEnv{
		db:       db,
		bus:      bus,
		products: storage.NewProductsRepository(db, bus),
		orders:   storage.NewOrdersRepository(db, bus),
		coupons:  storage.NewCouponsRepository(db, bus),
		wheel:    storage.NewWheelCouponsRepository(db),
		admins:   storage.NewAdminsRepository(db, bus),
		users:    storage.NewUsersRepository(db, bus),
		session:  storage.NewSessionRepository(db, bus),
		resets:   storage.NewResetCodesRepository(db),
		spins:    storage.NewSpinsRepository(db),
		banners:  storage.NewBannersRepository(db, bus),
		posts:    storage.NewPostsRepository(db, bus),
		reviews:  storage.NewReviewsRepository(db, bus),
	}
}

func (e *testEnv) catalog() service.CatalogService {
	return service.NewCatalog(e.products)
}

func (e *testEnv) couponsService() service.CouponsService {
	return service.NewCoupons(e.coupons, e.wheel)
}

func (e *testEnv) sessionService() service.SessionService {
	return service.NewSession(e.session, e.admins, e.users, e.resets, e.bus)
}

func (e *testEnv) checkout(fees service.ShippingFees) service.CheckoutService {
	return service.NewCheckout(e.products, e.orders, e.couponsService(), fees)
}
