package orderrepo

import (
	"fmt"

	"gorm.io/gorm"
)

// Migrate creates or updates both order tables and their indexes.
func Migrate(db *gorm.DB) error {
	for _, table := range Tables() {
		if err := db.Table(table).AutoMigrate(&LineDTO{}); err != nil {
			return fmt.Errorf("migrate %s: %w", table, err)
		}

		for _, stmt := range []string{
			"CREATE UNIQUE INDEX IF NOT EXISTS idx_%[1]s_order_sub_order ON %[1]s (order_no, sub_order_no)",
			"CREATE INDEX IF NOT EXISTS idx_%[1]s_ex_order_no ON %[1]s (ex_order_no)",
			"CREATE INDEX IF NOT EXISTS idx_%[1]s_order_time ON %[1]s (order_time)",
			"CREATE INDEX IF NOT EXISTS idx_%[1]s_counterparty ON %[1]s (counterparty)",
		} {
			if err := db.Exec(fmt.Sprintf(stmt, table)).Error; err != nil {
				return fmt.Errorf("index %s: %w", table, err)
			}
		}
	}
	return nil
}
