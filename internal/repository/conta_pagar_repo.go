package repository

import (
	"context"
	"time"

	"licitasis/internal/dto"
	"licitasis/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContaPagarRepository interface {
	Create(ctx context.Context, c *model.ContaPagar) error
	// CreateTx inserts inside an open transaction (used by the purchase writer).
	CreateTx(tx *gorm.DB, c *model.ContaPagar) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ContaPagar, error)
	List(ctx context.Context, filter dto.ContaPagarFilter) ([]model.ContaPagar, int64, error)
	// ListVencidas returns pending payables whose due date has passed.
	ListVencidas(ctx context.Context, ref time.Time, limit int) ([]model.ContaPagar, error)
	Update(ctx context.Context, c *model.ContaPagar) error
}

type contaPagarRepo struct{ db *gorm.DB }

func NewContaPagarRepository(db *gorm.DB) ContaPagarRepository { return &contaPagarRepo{db: db} }

func (r *contaPagarRepo) Create(ctx context.Context, c *model.ContaPagar) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *contaPagarRepo) CreateTx(tx *gorm.DB, c *model.ContaPagar) error {
	return tx.Create(c).Error
}

func (r *contaPagarRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.ContaPagar, error) {
	var c model.ContaPagar
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *contaPagarRepo) List(ctx context.Context, filter dto.ContaPagarFilter) ([]model.ContaPagar, int64, error) {
	var contas []model.ContaPagar
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.ContaPagar{})
	if filter.Status != "" && filter.Status != "all" {
		q = q.Where("status = ?", filter.Status)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("data_vencimento").
		Offset(offset).Limit(filter.Limit).
		Find(&contas).Error

	return contas, total, err
}

func (r *contaPagarRepo) ListVencidas(ctx context.Context, ref time.Time, limit int) ([]model.ContaPagar, error) {
	var contas []model.ContaPagar
	err := r.db.WithContext(ctx).
		Where("status = ? AND data_vencimento < ?", "pendente", ref).
		Order("data_vencimento").
		Limit(limit).
		Find(&contas).Error
	return contas, err
}

func (r *contaPagarRepo) Update(ctx context.Context, c *model.ContaPagar) error {
	return r.db.WithContext(ctx).Save(c).Error
}
