package infra

import (
	"fmt"

	"github.com/PrManiezzo/marmo/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens a GORM connection backed by pgx and migrates the schema.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
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

// RunMigrations creates or updates every table, then applies the constraints
// AutoMigrate cannot express. Also used by the integration suite.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Cliente{},
		&model.Produto{},
		&model.Servico{},
		&model.Pedido{},
		&model.Orcamento{},
		&model.TransacaoCaixa{},
		&model.MovimentoEstoque{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	if err := applySchemaPatches(db); err != nil {
		return fmt.Errorf("schema patches: %w", err)
	}
	return nil
}

// applySchemaPatches runs idempotent DDL: each statement checks for the
// constraint or index before creating it.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_transacoes_caixa_valor_positivo') THEN
		    ALTER TABLE transacoes_caixa ADD CONSTRAINT chk_transacoes_caixa_valor_positivo CHECK (valor > 0);
		  END IF;
		END $$`,
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_produtos_estoque_nao_negativo') THEN
		    ALTER TABLE produtos ADD CONSTRAINT chk_produtos_estoque_nao_negativo CHECK (estoque_quantidade >= 0);
		  END IF;
		END $$`,
		// alert listing and dashboard count
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_produtos_estoque_baixo') THEN
		    CREATE INDEX idx_produtos_estoque_baixo
		        ON produtos (id)
		        WHERE estoque_quantidade <= estoque_quantidade_minima;
		  END IF;
		END $$`,
		// quotations still waiting for their stock entry
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_orcamentos_aprovados_pendentes') THEN
		    CREATE INDEX idx_orcamentos_aprovados_pendentes
		        ON orcamentos (id)
		        WHERE status = 'approved' AND estoque_gerado = false;
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
