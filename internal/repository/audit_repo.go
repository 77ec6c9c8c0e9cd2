package repository

import (
	"context"

	"licitasis/internal/dto"
	"licitasis/internal/model"

	"gorm.io/gorm"
)

// AuditRepository appends entries to the audit log. The log is append-only:
// there is no update or delete method, deliberately.
type AuditRepository interface {
	Append(ctx context.Context, entry *model.AuditLog) error
	List(ctx context.Context, filter dto.AuditFilter) ([]model.AuditLog, int64, error)
}

type auditRepo struct{ db *gorm.DB }

func NewAuditRepository(db *gorm.DB) AuditRepository { return &auditRepo{db: db} }

func (r *auditRepo) Append(ctx context.Context, entry *model.AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *auditRepo) List(ctx context.Context, filter dto.AuditFilter) ([]model.AuditLog, int64, error) {
	var entries []model.AuditLog
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.AuditLog{})
	if filter.Tabela != "" {
		q = q.Where("tabela = ?", filter.Tabela)
	}
	if filter.RegistroID != "" {
		q = q.Where("registro_id = ?", filter.RegistroID)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&entries).Error

	return entries, total, err
}
