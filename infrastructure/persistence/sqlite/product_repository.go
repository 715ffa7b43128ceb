package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kuyka38/mijawharati-sub000/domain/catalog"
	"github.com/kuyka38/mijawharati-sub000/domain/shared"
	"github.com/kuyka38/mijawharati-sub000/infrastructure/persistence/sqlite/po"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *ProductRepository) Insert(ctx context.Context, p *catalog.Product) error {
	productPO := po.FromProductDomain(p)

	if err := r.getDB(ctx).Create(productPO).Error; err != nil {
		return shared.NewStorageError("product", err)
	}

	// sqlite assigns the rowid on insert; hand it back to the aggregate
	p.AssignIdentity(productPO.ID)
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, p *catalog.Product) error {
	productPO := po.FromProductDomain(p)

	result := r.getDB(ctx).Model(&po.ProductPO{}).
		Where("id = ?", p.ID()).
		Updates(map[string]interface{}{
			"name":       productPO.Name,
			"price":      productPO.Price,
			"phone":      productPO.Phone,
			"image_ref":  productPO.ImageRef,
			"favorite":   productPO.Favorite,
			"updated_at": productPO.UpdatedAt,
		})

	if result.Error != nil {
		return shared.NewStorageError("product", result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.getDB(ctx).Model(&po.ProductPO{}).Where("id = ?", p.ID()).Count(&count).Error; err != nil {
			return shared.NewStorageError("product", err)
		}
		if count == 0 {
			return catalog.NewProductNotFoundError(p.ID())
		}
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	result := r.getDB(ctx).Where("id = ?", id).Delete(&po.ProductPO{})
	if result.Error != nil {
		return shared.NewStorageError("product", result.Error)
	}
	if result.RowsAffected == 0 {
		return catalog.NewProductNotFoundError(id)
	}
	return nil
}

func (r *ProductRepository) SetFavorite(ctx context.Context, id int64, favorite bool) error {
	result := r.getDB(ctx).Model(&po.ProductPO{}).
		Where("id = ?", id).
		Update("favorite", favorite)

	if result.Error != nil {
		return shared.NewStorageError("product", result.Error)
	}
	if result.RowsAffected == 0 {
		return catalog.NewProductNotFoundError(id)
	}
	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*catalog.Product, error) {
	var productPO po.ProductPO

	result := r.getDB(ctx).First(&productPO, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, catalog.NewProductNotFoundError(id)
		}
		return nil, shared.NewStorageError("product", result.Error)
	}

	return productPO.ToDomain(), nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]*catalog.Product, error) {
	return r.findWhere(ctx, nil)
}

// FindFavorites filters the same products table; the favorites view is never
// a second collection, so it cannot diverge from the catalog.
func (r *ProductRepository) FindFavorites(ctx context.Context) ([]*catalog.Product, error) {
	return r.findWhere(ctx, map[string]interface{}{"favorite": true})
}

func (r *ProductRepository) findWhere(ctx context.Context, cond map[string]interface{}) ([]*catalog.Product, error) {
	db := r.getDB(ctx).Order("id ASC")
	if cond != nil {
		db = db.Where(cond)
	}

	var productPOs []po.ProductPO
	if err := db.Find(&productPOs).Error; err != nil {
		return nil, shared.NewStorageError("product", err)
	}

	products := make([]*catalog.Product, len(productPOs))
	for i, productPO := range productPOs {
		products[i] = productPO.ToDomain()
	}
	return products, nil
}

var _ catalog.Repository = (*ProductRepository)(nil)
