// Package catalogrepo reads product master data from the products table.
package catalogrepo

import (
	"context"

	"trading/internal/core/domain/model/catalog"
	"trading/internal/pkg/errs"

	"gorm.io/gorm"
)

// ProductDTO is the record of one catalog product.
type ProductDTO struct {
	ID         int64  `gorm:"primaryKey"`
	Code       string `gorm:"size:64"`
	Name       string `gorm:"size:255"`
	ProductSku string `gorm:"size:128"`
	Brand      string `gorm:"size:128"`
}

func (ProductDTO) TableName() string { return "products" }

// GormCatalogRepository implements CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// GetByIDs loads the products with the given ids in one query. Unknown ids
// are left out.
func (r *GormCatalogRepository) GetByIDs(ctx context.Context, ids []int64) ([]*catalog.Product, error) {
	if len(ids) == 0 {
		return []*catalog.Product{}, nil
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&dtos).Error; err != nil {
		return nil, errs.NewDependencyFailedErrorWithCause("catalog", err)
	}

	products := make([]*catalog.Product, 0, len(dtos))
	for _, dto := range dtos {
		products = append(products, &catalog.Product{
			ID:         dto.ID,
			Code:       dto.Code,
			Name:       dto.Name,
			ProductSku: dto.ProductSku,
			Brand:      dto.Brand,
		})
	}
	return products, nil
}
