// Package po holds the persistence objects mapping domain aggregates onto
// database rows. Conversion lives here so the domain layer never sees gorm.
package po

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kuyka38/mijawharati-sub000/domain/catalog"
)

type ProductPO struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	Name      string          `gorm:"size:100;not null"`
	Price     decimal.Decimal `gorm:"type:numeric;not null"`
	Phone     string          `gorm:"size:32;not null"`
	ImageRef  string          `gorm:"size:512"`
	Favorite  bool            `gorm:"not null;default:false;index"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime"`
}

func (ProductPO) TableName() string {
	return "products"
}

func FromProductDomain(p *catalog.Product) *ProductPO {
	return &ProductPO{
		ID:        p.ID(),
		Name:      p.Name(),
		Price:     p.Price(),
		Phone:     p.Phone(),
		ImageRef:  p.ImageRef(),
		Favorite:  p.IsFavorite(),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}

func (po *ProductPO) ToDomain() *catalog.Product {
	return catalog.RebuildFromDTO(catalog.ReconstructionDTO{
		ID:        po.ID,
		Name:      po.Name,
		Price:     po.Price,
		Phone:     po.Phone,
		ImageRef:  po.ImageRef,
		Favorite:  po.Favorite,
		CreatedAt: po.CreatedAt,
		UpdatedAt: po.UpdatedAt,
	})
}
