package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/glowmart/storefront/internal/core/domain"
	"github.com/glowmart/storefront/internal/core/port"
	"github.com/google/uuid"
)

// readWordsPerMinute drives the estimated read time on blog posts.
const readWordsPerMinute = 200

// ContentService owns the presentational collections: banners, blog
// posts and product reviews.
type ContentService struct {
	banners port.BannersStorage
	posts   port.PostsStorage
	reviews port.ReviewsStorage
}

func NewContent(
	banners port.BannersStorage,
	posts port.PostsStorage,
	reviews port.ReviewsStorage,
) ContentService {
	return ContentService{banners, posts, reviews}
}

func (s ContentService) Banners(ctx context.Context) ([]domain.Banner, error) {
	const op = "ContentService.Banners"

	bs, err := s.banners.LoadBanners(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return bs, nil
}

func (s ContentService) CreateBanner(
	ctx context.Context, b domain.Banner,
) (domain.Banner, error) {
	const op = "ContentService.CreateBanner"

	if b.Title == "" {
		return domain.Banner{}, fmt.Errorf("%s: title: %w", op, domain.ErrMissingField)
	}

	b.BannerID = uuid.NewString()
	b.CreatedAt = time.Now()

	bs, err := s.banners.LoadBanners(ctx)
	if err != nil {
		return domain.Banner{}, fmt.Errorf("%s: %w", op, err)
	}

	bs = append(bs, b)
	if err := s.banners.StoreBanners(ctx, bs); err != nil {
		return domain.Banner{}, fmt.Errorf("%s: %w", op, err)
	}
	return b, nil
}

func (s ContentService) DeleteBanner(ctx context.Context, bannerID string) error {
	const op = "ContentService.DeleteBanner"

	bs, err := s.banners.LoadBanners(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for i, b := range bs {
		if b.BannerID == bannerID {
			bs = append(bs[:i], bs[i+1:]...)
			if err := s.banners.StoreBanners(ctx, bs); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
			return nil
		}
	}
	return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
}

func (s ContentService) Posts(ctx context.Context) ([]domain.BlogPost, error) {
	const op = "ContentService.Posts"

	ps, err := s.posts.LoadPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sort.SliceStable(ps, func(i, j int) bool {
		return ps[i].CreatedAt.After(ps[j].CreatedAt)
	})
	return ps, nil
}

// CreatePost derives a slug unique among existing posts and estimates
// the read time from the content length.
func (s ContentService) CreatePost(
	ctx context.Context, p domain.BlogPost,
) (domain.BlogPost, error) {
	const op = "ContentService.CreatePost"

	if p.Title == "" {
		return domain.BlogPost{}, fmt.Errorf("%s: title: %w", op, domain.ErrMissingField)
	}

	ps, err := s.posts.LoadPosts(ctx)
	if err != nil {
		return domain.BlogPost{}, fmt.Errorf("%s: %w", op, err)
	}

	taken := make(map[string]bool, len(ps))
	for _, existing := range ps {
		taken[existing.Slug] = true
	}

	p.PostID = uuid.NewString()
	p.Slug = uniqueSlug(slugify(p.Title), taken)
	p.ReadTime = readTime(p.Content)
	p.CreatedAt = time.Now()

	ps = append(ps, p)
	if err := s.posts.StorePosts(ctx, ps); err != nil {
		return domain.BlogPost{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (s ContentService) DeletePost(ctx context.Context, postID string) error {
	const op = "ContentService.DeletePost"

	ps, err := s.posts.LoadPosts(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for i, p := range ps {
		if p.PostID == postID {
			ps = append(ps[:i], ps[i+1:]...)
			if err := s.posts.StorePosts(ctx, ps); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
			return nil
		}
	}
	return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
}

func (s ContentService) ProductReviews(
	ctx context.Context, productID string,
) ([]domain.Review, error) {
	const op = "ContentService.ProductReviews"

	rs, err := s.reviews.LoadReviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	filtered := rs[:0:0]
	for _, r := range rs {
		if r.ProductID == productID {
			filtered = append(filtered, r)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})
	return filtered, nil
}

func (s ContentService) AddReview(
	ctx context.Context, r domain.Review,
) (domain.Review, error) {
	const op = "ContentService.AddReview"

	if r.ProductID == "" {
		return domain.Review{}, fmt.Errorf("%s: product: %w", op, domain.ErrMissingField)
	}
	if r.Rating < 1 || r.Rating > 5 {
		return domain.Review{}, fmt.Errorf("%s: rating must be 1..5: %w",
			op, domain.ErrMissingField)
	}

	r.ReviewID = uuid.NewString()
	r.CreatedAt = time.Now()

	rs, err := s.reviews.LoadReviews(ctx)
	if err != nil {
		return domain.Review{}, fmt.Errorf("%s: %w", op, err)
	}

	rs = append(rs, r)
	if err := s.reviews.StoreReviews(ctx, rs); err != nil {
		return domain.Review{}, fmt.Errorf("%s: %w", op, err)
	}
	return r, nil
}

func readTime(content string) int {
	words := len(strings.Fields(content))
	minutes := words / readWordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
