package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/glowmart/storefront/internal/core/domain"
	"github.com/glowmart/storefront/internal/core/port"
	"github.com/google/uuid"
)

// CatalogService owns the product collection: admin CRUD plus the reads
// the shop pages and checkout depend on.
type CatalogService struct {
	products port.ProductsStorage
}

func NewCatalog(products port.ProductsStorage) CatalogService {
	return CatalogService{products}
}

// List returns all products, newest first.
func (s CatalogService) List(ctx context.Context) ([]domain.Product, error) {
	const op = "CatalogService.List"

	ps, err := s.products.LoadProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sort.SliceStable(ps, func(i, j int) bool {
		return ps[i].CreatedAt.After(ps[j].CreatedAt)
	})
	return ps, nil
}

func (s CatalogService) Get(
	ctx context.Context, productID string,
) (domain.Product, error) {
	const op = "CatalogService.Get"

	ps, err := s.products.LoadProducts(ctx)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	for _, p := range ps {
		if p.ProductID == productID {
			return p, nil
		}
	}
	return domain.Product{}, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
}

// Create validates and persists a new product. Title and a positive
// price are required; an absent stock defaults to effectively unlimited.
func (s CatalogService) Create(
	ctx context.Context, p domain.Product,
) (domain.Product, error) {
	const op = "CatalogService.Create"

	if p.Title == "" {
		return domain.Product{}, fmt.Errorf("%s: title: %w", op, domain.ErrMissingField)
	}
	if p.Price <= 0 {
		return domain.Product{}, fmt.Errorf("%s: price must be positive: %w",
			op, domain.ErrMissingField)
	}

	p.ProductID = uuid.NewString()
	p.Slug = slugify(p.Title)
	if p.Stock <= 0 {
		p.Stock = domain.DefaultStock
	}
	p.CreatedAt = time.Now()

	ps, err := s.products.LoadProducts(ctx)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	ps = append(ps, p)
	if err := s.products.StoreProducts(ctx, ps); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (s CatalogService) Update(
	ctx context.Context, p domain.Product,
) error {
	const op = "CatalogService.Update"

	if p.Title == "" {
		return fmt.Errorf("%s: title: %w", op, domain.ErrMissingField)
	}
	if p.Price <= 0 {
		return fmt.Errorf("%s: price must be positive: %w", op, domain.ErrMissingField)
	}
	if p.Stock < 0 {
		p.Stock = 0
	}
	p.Slug = slugify(p.Title)

	ps, err := s.products.LoadProducts(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for i, existing := range ps {
		if existing.ProductID == p.ProductID {
			p.CreatedAt = existing.CreatedAt
			ps[i] = p
			if err := s.products.StoreProducts(ctx, ps); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
			return nil
		}
	}
	return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
}

func (s CatalogService) Delete(ctx context.Context, productID string) error {
	const op = "CatalogService.Delete"

	ps, err := s.products.LoadProducts(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for i, p := range ps {
		if p.ProductID == productID {
			ps = append(ps[:i], ps[i+1:]...)
			if err := s.products.StoreProducts(ctx, ps); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
			return nil
		}
	}
	return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
}
