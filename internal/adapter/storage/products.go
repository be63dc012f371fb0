package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/glowmart/storefront/internal/core/domain"
	"github.com/glowmart/storefront/internal/core/port"
	"github.com/glowmart/storefront/pkg/schema"
)

type ProductsRepository struct {
	db  DB
	bus port.ChangePublisher
}

func NewProductsRepository(db DB, bus port.ChangePublisher) ProductsRepository {
	return ProductsRepository{db, bus}
}

func (r ProductsRepository) LoadProducts(
	ctx context.Context,
) ([]domain.Product, error) {
	const op = "ProductsRepository.LoadProducts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	wire, _ := loadList[schema.ProductV1](r.db, domain.CollectionProducts)

	now := time.Now()
	ps := make([]domain.Product, 0, len(wire))
	for _, w := range wire {
		ps = append(ps, domain.Product{
			ProductID:   w.ID,
			Title:       w.Title,
			Slug:        w.Slug,
			Category:    w.Category,
			Image:       w.Image,
			Description: w.Description,
			Price:       float64(w.Price),
			Stock:       w.StockOrDefault(),
			CreatedAt:   w.CreatedAt.TimeOrNow(now),
		})
	}
	return ps, nil
}

func (r ProductsRepository) StoreProducts(
	ctx context.Context, ps []domain.Product,
) error {
	const op = "ProductsRepository.StoreProducts"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	wire := make([]schema.ProductV1, 0, len(ps))
	for _, p := range ps {
		stock := schema.Number(p.Stock)
		wire = append(wire, schema.ProductV1{
			ID:          p.ProductID,
			Title:       p.Title,
			Slug:        p.Slug,
			Category:    p.Category,
			Image:       p.Image,
			Description: p.Description,
			Price:       schema.Number(p.Price),
			Stock:       &stock,
			CreatedAt:   schema.MillisOf(p.CreatedAt),
		})
	}

	storeList(r.db, r.bus, domain.CollectionProducts, wire)
	return nil
}
