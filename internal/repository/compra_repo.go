package repository

import (
	"context"

	"licitasis/internal/dto"
	"licitasis/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompraRepository interface {
	// Create inserts the header and its items inside the caller's transaction.
	Create(ctx context.Context, tx *gorm.DB, c *model.Compra) error
	SetComprovantePath(ctx context.Context, id uuid.UUID, path string) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Compra, error)
	List(ctx context.Context, filter dto.CompraFilter) ([]model.Compra, int64, error)
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type compraRepo struct{ db *gorm.DB }

func NewCompraRepository(db *gorm.DB) CompraRepository { return &compraRepo{db: db} }

func (r *compraRepo) DB() *gorm.DB { return r.db }

func (r *compraRepo) Create(ctx context.Context, tx *gorm.DB, c *model.Compra) error {
	return tx.WithContext(ctx).Create(c).Error
}

func (r *compraRepo) SetComprovantePath(ctx context.Context, id uuid.UUID, path string) error {
	return r.db.WithContext(ctx).Model(&model.Compra{}).Where("id = ?", id).Update("comprovante_path", path).Error
}

func (r *compraRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Compra, error) {
	var c model.Compra
	err := r.db.WithContext(ctx).Preload("Itens.Produto").Preload("Fornecedor").First(&c, id).Error
	return &c, err
}

func (r *compraRepo) List(ctx context.Context, filter dto.CompraFilter) ([]model.Compra, int64, error) {
	var compras []model.Compra
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.Compra{})

	if filter.FornecedorID != "" {
		q = q.Where("fornecedor_id = ?", filter.FornecedorID)
	}
	if filter.NumeroNF != "" {
		q = q.Where("numero_nf = ?", filter.NumeroNF)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Itens.Produto").
		Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&compras).Error

	return compras, total, err
}
