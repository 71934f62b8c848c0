package lookuplog

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	LogLookup(ctx context.Context, record *LookupRecord) error
	RecentLookups(ctx context.Context, kind Kind, limit int) ([]LookupRecord, error)
}

type LookupSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &LookupSQLRepository{db: db}
}

func (r *LookupSQLRepository) LogLookup(ctx context.Context, record *LookupRecord) error {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	return r.db.WithContext(ctx).Create(record).Error
}

func (r *LookupSQLRepository) RecentLookups(ctx context.Context, kind Kind, limit int) ([]LookupRecord, error) {
	var records []LookupRecord
	err := r.db.WithContext(ctx).
		Where("kind = ?", kind).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
