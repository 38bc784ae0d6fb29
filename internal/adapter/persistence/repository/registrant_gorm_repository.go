package repository

import (
	"context"
	"errors"

	"eventpay/internal/domain/entities"
	"eventpay/internal/usecase/interfaces"

	"gorm.io/gorm"
)

var ErrRegistrantNotFound = errors.New("registrant not found")

type registrantRow struct {
	RegistrantID         int64   `gorm:"column:registrant_id;primaryKey"`
	MerchantID           int64   `gorm:"column:merchant_id"`
	MultiCheckoutGroupID *string `gorm:"column:multi_checkout_group_id"`
}

func (registrantRow) TableName() string { return "registrants" }

// RegistrantGormRepository reads registrant linkage from the relational
// store.

type RegistrantGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IRegistrantStore = (*RegistrantGormRepository)(nil)

func NewRegistrantGormRepository(db *gorm.DB) *RegistrantGormRepository {
	return &RegistrantGormRepository{db: db}
}

// GetMultiCheckoutGroup reports whether the registrant shares a checkout
// group and lists the co-registrants in it.
func (r *RegistrantGormRepository) GetMultiCheckoutGroup(ctx context.Context, registrantID int64) (entities.MultiCheckoutGroup, error) {
	var row registrantRow
	err := r.db.WithContext(ctx).
		Where("registrant_id = ?", registrantID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.MultiCheckoutGroup{}, ErrRegistrantNotFound
	}
	if err != nil {
		return entities.MultiCheckoutGroup{}, err
	}

	group := entities.MultiCheckoutGroup{RegistrantID: registrantID}
	if row.MultiCheckoutGroupID == nil || *row.MultiCheckoutGroupID == "" {
		return group, nil
	}

	var coIDs []int64
	err = r.db.WithContext(ctx).
		Model(&registrantRow{}).
		Where("multi_checkout_group_id = ? AND registrant_id <> ?", *row.MultiCheckoutGroupID, registrantID).
		Pluck("registrant_id", &coIDs).Error
	if err != nil {
		return entities.MultiCheckoutGroup{}, err
	}

	group.Linked = len(coIDs) > 0
	group.CoRegistrantIDs = coIDs
	return group, nil
}
