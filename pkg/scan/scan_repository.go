package scan

import (
	"context"

	"gorm.io/gorm"

	"Scanstock-Backend/entities"
)

type (
	// ScanRepository is the remote per-user scan collection. Queries are
	// always scoped to a user id, ordered by recency and bounded.
	ScanRepository interface {
		Save(ctx context.Context, rec *entities.ScanRecord) error
		List(ctx context.Context, userID string, limit int) ([]*entities.ScanRecord, error)
		GetByID(ctx context.Context, id string) (*entities.ScanRecord, error)
		GetByValue(ctx context.Context, userID string, value string) (*entities.ScanRecord, error)
		ExistsByValue(ctx context.Context, userID string, value string) (bool, error)
		Update(ctx context.Context, rec *entities.ScanRecord) error
	}

	scanRepository struct {
		db *gorm.DB
	}
)

const DefaultListLimit = 100

func NewScanRepository(db *gorm.DB) ScanRepository {
	return &scanRepository{db: db}
}

func (r *scanRepository) Save(ctx context.Context, rec *entities.ScanRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *scanRepository) List(ctx context.Context, userID string, limit int) ([]*entities.ScanRecord, error) {
	if limit <= 0 || limit > 1000 {
		limit = DefaultListLimit
	}

	var records []*entities.ScanRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("scanned_at desc").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *scanRepository) GetByID(ctx context.Context, id string) (*entities.ScanRecord, error) {
	var rec entities.ScanRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *scanRepository) GetByValue(ctx context.Context, userID string, value string) (*entities.ScanRecord, error) {
	var rec entities.ScanRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND value = ?", userID, value).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *scanRepository) ExistsByValue(ctx context.Context, userID string, value string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.ScanRecord{}).
		Where("user_id = ? AND value = ?", userID, value).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *scanRepository) Update(ctx context.Context, rec *entities.ScanRecord) error {
	return r.db.WithContext(ctx).Save(rec).Error
}
