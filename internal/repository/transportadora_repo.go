package repository

import (
	"context"

	"licitasis/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransportadoraRepository interface {
	Create(ctx context.Context, t *model.Transportadora) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Transportadora, error)
	FindByCNPJ(ctx context.Context, cnpj string) (*model.Transportadora, error)
	List(ctx context.Context) ([]model.Transportadora, error)
	Update(ctx context.Context, t *model.Transportadora) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type transportadoraRepo struct{ db *gorm.DB }

func NewTransportadoraRepository(db *gorm.DB) TransportadoraRepository {
	return &transportadoraRepo{db: db}
}

func (r *transportadoraRepo) Create(ctx context.Context, t *model.Transportadora) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *transportadoraRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Transportadora, error) {
	var t model.Transportadora
	err := r.db.WithContext(ctx).First(&t, id).Error
	return &t, err
}

func (r *transportadoraRepo) FindByCNPJ(ctx context.Context, cnpj string) (*model.Transportadora, error) {
	var t model.Transportadora
	err := r.db.WithContext(ctx).Where("cnpj = ?", cnpj).First(&t).Error
	return &t, err
}

func (r *transportadoraRepo) List(ctx context.Context) ([]model.Transportadora, error) {
	var transportadoras []model.Transportadora
	err := r.db.WithContext(ctx).Where("ativo = true").Order("razao_social").Find(&transportadoras).Error
	return transportadoras, err
}

func (r *transportadoraRepo) Update(ctx context.Context, t *model.Transportadora) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *transportadoraRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Transportadora{}).Where("id = ?", id).Update("ativo", false).Error
}
