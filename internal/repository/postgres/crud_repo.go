package postgres

import (
	"context"
	"errors"

	"portfolio-backend/internal/domain"

	"gorm.io/gorm"
)

// crudRepo stores one entity kind through gorm. The same implementation
// serves projects, skills and certificates.
type crudRepo[T domain.Record] struct {
	db *gorm.DB
}

func NewCrudRepository[T domain.Record](db *gorm.DB) domain.Repository[T] {
	return &crudRepo[T]{db: db}
}

func NewProjectRepository(db *gorm.DB) domain.Repository[domain.Project] {
	return NewCrudRepository[domain.Project](db)
}

func NewSkillRepository(db *gorm.DB) domain.Repository[domain.Skill] {
	return NewCrudRepository[domain.Skill](db)
}

func NewCertificateRepository(db *gorm.DB) domain.Repository[domain.Certificate] {
	return NewCrudRepository[domain.Certificate](db)
}

func (r *crudRepo[T]) List(ctx context.Context, orderBy string) ([]T, error) {
	records := make([]T, 0)
	query := r.db.WithContext(ctx)
	if orderBy != "" {
		query = query.Order(orderBy)
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *crudRepo[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var rec T
	err := r.db.WithContext(ctx).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *crudRepo[T]) Create(ctx context.Context, rec *T) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// Update writes every column of rec. Callers merge patches before calling.
func (r *crudRepo[T]) Update(ctx context.Context, rec *T) error {
	result := r.db.WithContext(ctx).
		Model(rec).
		Select("*").
		Omit("id", "created_at").
		Updates(rec)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *crudRepo[T]) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Models lists the tables managed by AutoMigrate.
func Models() []any {
	return []any{&domain.Project{}, &domain.Skill{}, &domain.Certificate{}}
}
