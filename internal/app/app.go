package app

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"github.com/glowmart/storefront/config"
	"github.com/glowmart/storefront/internal/adapter/eventbus"
	"github.com/glowmart/storefront/internal/adapter/storage"
	"github.com/glowmart/storefront/internal/core/service"
)

// App wires the store, the change-notification bus and every service.
// State is browser-tab scoped in spirit: initialized at startup, torn
// down only when the process exits.
type App struct {
	cfg config.Config
	db  storage.DB
	bus *eventbus.Bus
	wg  sync.WaitGroup

	Catalog  service.CatalogService
	Orders   service.OrdersService
	Coupons  service.CouponsService
	Accounts service.AccountsService
	Session  service.SessionService
	Cart     *service.CartService
	Checkout service.CheckoutService
	Content  service.ContentService
	Spin     service.SpinService
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	app := &App{cfg: cfg}

	app.initLogger()

	db, err := storage.Open(ctx, cfg.Storage.Path)
	if err != nil {
		return nil, err
	}
	app.db = db
	app.bus = eventbus.New()

	app.initServices()
	return app, nil
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initServices() {
	products := storage.NewProductsRepository(app.db, app.bus)
	orders := storage.NewOrdersRepository(app.db, app.bus)
	coupons := storage.NewCouponsRepository(app.db, app.bus)
	wheel := storage.NewWheelCouponsRepository(app.db)
	admins := storage.NewAdminsRepository(app.db, app.bus)
	users := storage.NewUsersRepository(app.db, app.bus)
	session := storage.NewSessionRepository(app.db, app.bus)
	resets := storage.NewResetCodesRepository(app.db)
	spins := storage.NewSpinsRepository(app.db)
	banners := storage.NewBannersRepository(app.db, app.bus)
	posts := storage.NewPostsRepository(app.db, app.bus)
	reviews := storage.NewReviewsRepository(app.db, app.bus)

	app.Catalog = service.NewCatalog(products)
	app.Orders = service.NewOrders(orders)
	app.Coupons = service.NewCoupons(coupons, wheel)
	app.Accounts = service.NewAccounts(admins, users)
	app.Session = service.NewSession(session, admins, users, resets, app.bus)
	app.Cart = service.NewCart()
	app.Checkout = service.NewCheckout(
		products, orders, app.Coupons,
		service.ShippingFees{
			Local:  app.cfg.Shipping.LocalFee,
			Remote: app.cfg.Shipping.RemoteFee,
		},
	)
	app.Content = service.NewContent(banners, posts, reviews)
	app.Spin = service.NewSpin(wheel, spins, app.cfg.Spin.RevealDelay)
}

// Run starts the session revalidation watcher.
func (app *App) Run(ctx context.Context) {
	app.wg.Add(1)
	go func() {
		defer app.wg.Done()
		app.Session.Run(ctx)
	}()
}

// Close tears down the bus and the store after the watcher stops. The
// caller must have cancelled the Run context first.
func (app *App) Close() {
	app.bus.Close()
	app.wg.Wait()
	app.db.Close()
}
