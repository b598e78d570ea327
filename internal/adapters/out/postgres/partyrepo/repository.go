// Package partyrepo reads the supplier and customer directories. Both share
// one record layout and live in separate tables.
package partyrepo

import (
	"context"
	"errors"

	"trading/internal/core/domain/model/party"
	"trading/internal/pkg/errs"

	"gorm.io/gorm"
)

var tables = map[party.Role]string{
	party.Supplier: "suppliers",
	party.Customer: "customers",
}

// TableFor returns the table of the directory serving role.
func TableFor(role party.Role) string {
	return tables[role]
}

// CounterpartyDTO is the record of one supplier or customer.
type CounterpartyDTO struct {
	ID      int64  `gorm:"primaryKey"`
	Name    string `gorm:"size:255;not null"`
	Contact string `gorm:"size:128"`
	Mobile  string `gorm:"size:32"`
	Tel     string `gorm:"size:32"`
	Address string `gorm:"size:255"`
}

// Migrate creates or updates both directory tables.
func Migrate(db *gorm.DB) error {
	for _, role := range []party.Role{party.Supplier, party.Customer} {
		if err := db.Table(TableFor(role)).AutoMigrate(&CounterpartyDTO{}); err != nil {
			return err
		}
	}
	return nil
}

// GormCounterpartyRepository implements CounterpartyRepository for one
// directory using GORM.
type GormCounterpartyRepository struct {
	db   *gorm.DB
	role party.Role
}

func NewGormCounterpartyRepository(db *gorm.DB, role party.Role) *GormCounterpartyRepository {
	return &GormCounterpartyRepository{db: db, role: role}
}

func (r *GormCounterpartyRepository) Get(ctx context.Context, id int64) (*party.Counterparty, error) {
	var dto CounterpartyDTO
	err := r.table(ctx).Where("id = ?", id).Take(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError(r.role.String(), id)
	}
	if err != nil {
		return nil, r.failed(err)
	}
	return toDomain(dto), nil
}

// GetAllNames returns the distinct names of the directory in ascending order.
func (r *GormCounterpartyRepository) GetAllNames(ctx context.Context) ([]string, error) {
	names := make([]string, 0)
	if err := r.table(ctx).Distinct("name").Order("name").Pluck("name", &names).Error; err != nil {
		return nil, r.failed(err)
	}
	return names, nil
}

func (r *GormCounterpartyRepository) GetByName(ctx context.Context, name string) ([]*party.Counterparty, error) {
	var dtos []CounterpartyDTO
	if err := r.table(ctx).Where("name = ?", name).Order("id").Find(&dtos).Error; err != nil {
		return nil, r.failed(err)
	}

	result := make([]*party.Counterparty, 0, len(dtos))
	for _, dto := range dtos {
		result = append(result, toDomain(dto))
	}
	return result, nil
}

func (r *GormCounterpartyRepository) table(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table(TableFor(r.role))
}

func (r *GormCounterpartyRepository) failed(err error) error {
	return errs.NewDependencyFailedErrorWithCause(r.role.String()+" directory", err)
}

func toDomain(dto CounterpartyDTO) *party.Counterparty {
	return &party.Counterparty{
		ID:      dto.ID,
		Name:    dto.Name,
		Contact: dto.Contact,
		Mobile:  dto.Mobile,
		Tel:     dto.Tel,
		Address: dto.Address,
	}
}
