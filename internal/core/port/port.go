package port

import (
	"context"
	"time"

	"github.com/glowmart/storefront/internal/core/domain"
)

type ChangePublisher interface {
	Publish(domain.ChangeEvent)
}

type ChangeSubscriber interface {
	Subscribe(collection string) (<-chan domain.ChangeEvent, func())
}

type ProductsStorage interface {
	LoadProducts(context.Context) ([]domain.Product, error)
	StoreProducts(context.Context, []domain.Product) error
}

type OrdersStorage interface {
	LoadOrders(context.Context) ([]domain.Order, error)
	StoreOrders(context.Context, []domain.Order) error
}

type CouponsStorage interface {
	LoadCoupons(context.Context) ([]domain.Coupon, error)
	StoreCoupons(context.Context, []domain.Coupon) error
}

type WheelCouponStorage interface {
	LoadWheelCoupon(ctx context.Context, email string) (domain.WheelCoupon, bool, error)
	StoreWheelCoupon(ctx context.Context, email string, c domain.WheelCoupon) error
	ClearWheelCoupon(ctx context.Context, email string) error
}

type AdminsStorage interface {
	LoadAdmins(context.Context) ([]domain.AdminUser, error)
	StoreAdmins(context.Context, []domain.AdminUser) error
}

type UsersStorage interface {
	LoadUsers(context.Context) ([]domain.User, error)
	StoreUsers(context.Context, []domain.User) error
}

type SessionStorage interface {
	LoadSession(context.Context) (domain.Session, bool, error)
	StoreSession(context.Context, domain.Session) error
	ClearSession(context.Context) error
}

type ResetCodeStorage interface {
	StoreResetCode(ctx context.Context, email, code string, expiresAt time.Time) error
	LoadResetCode(ctx context.Context, email string) (code string, expiresAt time.Time, ok bool)
	ClearResetCode(ctx context.Context, email string) error
}

type SpinStorage interface {
	HasSpun(ctx context.Context, email string) bool
	MarkSpun(ctx context.Context, email string) error
}

type BannersStorage interface {
	LoadBanners(context.Context) ([]domain.Banner, error)
	StoreBanners(context.Context, []domain.Banner) error
}

type PostsStorage interface {
	LoadPosts(context.Context) ([]domain.BlogPost, error)
	StorePosts(context.Context, []domain.BlogPost) error
}

type ReviewsStorage interface {
	LoadReviews(context.Context) ([]domain.Review, error)
	StoreReviews(context.Context, []domain.Review) error
}
