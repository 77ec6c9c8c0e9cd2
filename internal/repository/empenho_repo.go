package repository

import (
	"context"

	"licitasis/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmpenhoRepository interface {
	Create(ctx context.Context, e *model.Empenho) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Empenho, error)
	FindByNumero(ctx context.Context, numero string) (*model.Empenho, error)
	List(ctx context.Context, status string) ([]model.Empenho, error)
	Update(ctx context.Context, e *model.Empenho) error
}

type empenhoRepo struct{ db *gorm.DB }

func NewEmpenhoRepository(db *gorm.DB) EmpenhoRepository { return &empenhoRepo{db: db} }

func (r *empenhoRepo) Create(ctx context.Context, e *model.Empenho) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *empenhoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Empenho, error) {
	var e model.Empenho
	err := r.db.WithContext(ctx).Preload("Cliente").First(&e, id).Error
	return &e, err
}

func (r *empenhoRepo) FindByNumero(ctx context.Context, numero string) (*model.Empenho, error) {
	var e model.Empenho
	err := r.db.WithContext(ctx).Where("numero = ?", numero).First(&e).Error
	return &e, err
}

func (r *empenhoRepo) List(ctx context.Context, status string) ([]model.Empenho, error) {
	var empenhos []model.Empenho
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" && status != "all" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&empenhos).Error
	return empenhos, err
}

func (r *empenhoRepo) Update(ctx context.Context, e *model.Empenho) error {
	return r.db.WithContext(ctx).Save(e).Error
}
