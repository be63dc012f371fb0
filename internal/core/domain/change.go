package domain

import "time"

// Collection names used as change-notification topics and storage keys.
const (
	CollectionProducts = "products"
	CollectionOrders   = "orders"
	CollectionCoupons  = "coupons"
	CollectionAdmins   = "admins"
	CollectionUsers    = "users"
	CollectionBanners  = "banners"
	CollectionPosts    = "posts"
	CollectionReviews  = "reviews"
	CollectionSession  = "session"
)

// ChangeEvent notifies subscribers that a collection was rewritten.
// It carries no diff: receivers re-read the collection.
type ChangeEvent struct {
	Collection string
	At         time.Time
}
