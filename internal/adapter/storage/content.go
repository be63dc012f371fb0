package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/glowmart/storefront/internal/core/domain"
	"github.com/glowmart/storefront/internal/core/port"
	"github.com/glowmart/storefront/pkg/schema"
)

type BannersRepository struct {
	db  DB
	bus port.ChangePublisher
}

func NewBannersRepository(db DB, bus port.ChangePublisher) BannersRepository {
	return BannersRepository{db, bus}
}

// seedBanners is the built-in sample content shown on a fresh install,
// the one collection that does not fall back to empty.
var seedBanners = []domain.Banner{
	{
		BannerID: "seed-glow-ritual",
		Title:    "The Glow Ritual",
		Subtitle: "New-season serums and moisturizers",
		Image:    "/banners/glow-ritual.jpg",
		Link:     "/shop?category=skincare",
		Active:   true,
	},
	{
		BannerID: "seed-velvet-matte",
		Title:    "Velvet Matte Collection",
		Subtitle: "Lipsticks that last all day",
		Image:    "/banners/velvet-matte.jpg",
		Link:     "/shop?category=lips",
		Active:   true,
	},
}

func (r BannersRepository) LoadBanners(
	ctx context.Context,
) ([]domain.Banner, error) {
	const op = "BannersRepository.LoadBanners"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	wire, found := loadList[schema.BannerV1](r.db, domain.CollectionBanners)
	if !found {
		seeded := make([]domain.Banner, len(seedBanners))
		copy(seeded, seedBanners)
		return seeded, nil
	}

	now := time.Now()
	bs := make([]domain.Banner, 0, len(wire))
	for _, w := range wire {
		bs = append(bs, domain.Banner{
			BannerID:  w.ID,
			Title:     w.Title,
			Subtitle:  w.Subtitle,
			Image:     w.Image,
			Link:      w.Link,
			Active:    bool(w.Active),
			CreatedAt: w.CreatedAt.TimeOrNow(now),
		})
	}
	return bs, nil
}

func (r BannersRepository) StoreBanners(
	ctx context.Context, bs []domain.Banner,
) error {
	const op = "BannersRepository.StoreBanners"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	wire := make([]schema.BannerV1, 0, len(bs))
	for _, b := range bs {
		wire = append(wire, schema.BannerV1{
			ID:        b.BannerID,
			Title:     b.Title,
			Subtitle:  b.Subtitle,
			Image:     b.Image,
			Link:      b.Link,
			Active:    schema.Flag(b.Active),
			CreatedAt: schema.MillisOf(b.CreatedAt),
		})
	}

	storeList(r.db, r.bus, domain.CollectionBanners, wire)
	return nil
}

type PostsRepository struct {
	db  DB
	bus port.ChangePublisher
}

func NewPostsRepository(db DB, bus port.ChangePublisher) PostsRepository {
	return PostsRepository{db, bus}
}

func (r PostsRepository) LoadPosts(
	ctx context.Context,
) ([]domain.BlogPost, error) {
	const op = "PostsRepository.LoadPosts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	wire, _ := loadList[schema.BlogPostV1](r.db, domain.CollectionPosts)

	now := time.Now()
	ps := make([]domain.BlogPost, 0, len(wire))
	for _, w := range wire {
		ps = append(ps, domain.BlogPost{
			PostID:    w.ID,
			Title:     w.Title,
			Slug:      w.Slug,
			Author:    w.Author,
			Image:     w.Image,
			Content:   w.Content,
			ReadTime:  int(w.ReadTime),
			CreatedAt: w.CreatedAt.TimeOrNow(now),
		})
	}
	return ps, nil
}

func (r PostsRepository) StorePosts(
	ctx context.Context, ps []domain.BlogPost,
) error {
	const op = "PostsRepository.StorePosts"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	wire := make([]schema.BlogPostV1, 0, len(ps))
	for _, p := range ps {
		wire = append(wire, schema.BlogPostV1{
			ID:        p.PostID,
			Title:     p.Title,
			Slug:      p.Slug,
			Author:    p.Author,
			Image:     p.Image,
			Content:   p.Content,
			ReadTime:  schema.Number(p.ReadTime),
			CreatedAt: schema.MillisOf(p.CreatedAt),
		})
	}

	storeList(r.db, r.bus, domain.CollectionPosts, wire)
	return nil
}

type ReviewsRepository struct {
	db  DB
	bus port.ChangePublisher
}

func NewReviewsRepository(db DB, bus port.ChangePublisher) ReviewsRepository {
	return ReviewsRepository{db, bus}
}

func (r ReviewsRepository) LoadReviews(
	ctx context.Context,
) ([]domain.Review, error) {
	const op = "ReviewsRepository.LoadReviews"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	wire, _ := loadList[schema.ReviewV1](r.db, domain.CollectionReviews)

	now := time.Now()
	rs := make([]domain.Review, 0, len(wire))
	for _, w := range wire {
		rs = append(rs, domain.Review{
			ReviewID:  w.ID,
			ProductID: w.ProductID,
			Author:    w.Author,
			Rating:    int(w.Rating),
			Comment:   w.Comment,
			CreatedAt: w.CreatedAt.TimeOrNow(now),
		})
	}
	return rs, nil
}

func (r ReviewsRepository) StoreReviews(
	ctx context.Context, rs []domain.Review,
) error {
	const op = "ReviewsRepository.StoreReviews"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	wire := make([]schema.ReviewV1, 0, len(rs))
	for _, v := range rs {
		wire = append(wire, schema.ReviewV1{
			ID:        v.ReviewID,
			ProductID: v.ProductID,
			Author:    v.Author,
			Rating:    schema.Number(v.Rating),
			Comment:   v.Comment,
			CreatedAt: schema.MillisOf(v.CreatedAt),
		})
	}

	storeList(r.db, r.bus, domain.CollectionReviews, wire)
	return nil
}
