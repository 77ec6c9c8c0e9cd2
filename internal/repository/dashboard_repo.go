package repository

import (
	"context"
	"time"

	"licitasis/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DashboardRepository aggregates the counters and month totals shown on the
// module dashboards.
type DashboardRepository interface {
	Count(ctx context.Context, mdl interface{}) (int64, error)
	CountWhere(ctx context.Context, mdl interface{}, query string, args ...interface{}) (int64, error)
	SumComprasDesde(ctx context.Context, desde time.Time) (decimal.Decimal, error)
	SumVendasDesde(ctx context.Context, desde time.Time) (decimal.Decimal, error)
}

type dashboardRepo struct{ db *gorm.DB }

func NewDashboardRepository(db *gorm.DB) DashboardRepository { return &dashboardRepo{db: db} }

func (r *dashboardRepo) Count(ctx context.Context, mdl interface{}) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(mdl).Count(&n).Error
	return n, err
}

func (r *dashboardRepo) CountWhere(ctx context.Context, mdl interface{}, query string, args ...interface{}) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(mdl).Where(query, args...).Count(&n).Error
	return n, err
}

func (r *dashboardRepo) SumComprasDesde(ctx context.Context, desde time.Time) (decimal.Decimal, error) {
	return r.sumSince(ctx, &model.Compra{}, "data_compra", desde)
}

func (r *dashboardRepo) SumVendasDesde(ctx context.Context, desde time.Time) (decimal.Decimal, error) {
	return r.sumSince(ctx, &model.Venda{}, "data_venda", desde)
}

func (r *dashboardRepo) sumSince(ctx context.Context, mdl interface{}, dateCol string, desde time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(mdl).
		Select("COALESCE(SUM(valor_total), 0)").
		Where(dateCol+" >= ?", desde).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
