package infra

import (
	"fmt"

	"licitasis/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate
// over the full model set, then applies idempotent SQL patches that GORM
// cannot express (partial indexes). The schema is fixed and migrated here, at
// startup — never inside request handlers.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations creates/updates all tables and applies the SQL patches.
// Also used by the integration test suite against a disposable container.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.Fornecedor{},
		&model.Produto{},
		&model.Cliente{},
		&model.Transportadora{},
		&model.Compra{},
		&model.CompraItem{},
		&model.Venda{},
		&model.VendaItem{},
		&model.Empenho{},
		&model.ContaPagar{},
		&model.AuditLog{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot express.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// partial index backing the overdue-payables sweep
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_contas_pagar_pendentes') THEN
		    CREATE INDEX idx_contas_pagar_pendentes
		        ON contas_pagar (data_vencimento)
		        WHERE status = 'pendente';
		  END IF;
		END $$`,
		// audit queries are always (tabela, registro_id) lookups
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_audit_logs_tabela_registro') THEN
		    CREATE INDEX idx_audit_logs_tabela_registro
		        ON audit_logs (tabela, registro_id);
		  END IF;
		END $$`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
