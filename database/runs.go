package database

import (
	"fmt"
	"log"
	"time"

	"github.com/jmoiron/sqlx"

	"bevauto/model"
)

// RunSnapshot 은 실행 1회의 결과입니다. 주문 또는 재고 한쪽만 채워져 있어도 됩니다.
type RunSnapshot struct {
	RunID         string
	StartedAt     time.Time
	OrderFile     string
	CompanyFile   string
	InventoryFile string

	Processed []model.ProcessedOrder
	Summaries []model.CompanySummary
	Unmapped  []string
	Inventory []model.InventoryRecord
}

type processedRow struct {
	RunID string `db:"run_id"`
	Seq   int    `db:"seq"`
	model.ProcessedOrder
}

type summaryRow struct {
	RunID string `db:"run_id"`
	model.CompanySummary
}

type inventoryRow struct {
	RunID string `db:"run_id"`
	Seq   int    `db:"seq"`
	model.InventoryRecord
}

// SaveRun 은 스냅샷 전체를 한 트랜잭션으로 저장합니다. 하나라도 실패하면 모두 롤백합니다.
func SaveRun(db *sqlx.DB, snap RunSnapshot) (err error) {
	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			log.Printf("Rolling back run %s due to error: %v", snap.RunID, err)
			tx.Rollback()
		} else {
			err = tx.Commit()
			if err != nil {
				log.Printf("Error committing run %s: %v", snap.RunID, err)
			}
		}
	}()

	const qRun = `INSERT INTO runs (run_id, started_at, order_file, company_file, inventory_file)
		VALUES (?, ?, ?, ?, ?)`
	if _, err = tx.Exec(qRun, snap.RunID, snap.StartedAt.Format(time.RFC3339),
		snap.OrderFile, snap.CompanyFile, snap.InventoryFile); err != nil {
		return fmt.Errorf("failed to insert run %s: %w", snap.RunID, err)
	}

	const qOrder = `INSERT INTO processed_orders (run_id, seq, company_code, company_name_original, product_name, quantity)
		VALUES (:run_id, :seq, :company_code, :company_name_original, :product_name, :quantity)`
	for i, o := range snap.Processed {
		if _, err = tx.NamedExec(qOrder, processedRow{RunID: snap.RunID, Seq: i + 1, ProcessedOrder: o}); err != nil {
			return fmt.Errorf("failed to insert processed order %d: %w", i+1, err)
		}
	}

	const qSummary = `INSERT INTO company_summaries (run_id, company_code, company_name_original, item_type_count, total_quantity)
		VALUES (:run_id, :company_code, :company_name_original, :item_type_count, :total_quantity)`
	for _, s := range snap.Summaries {
		if _, err = tx.NamedExec(qSummary, summaryRow{RunID: snap.RunID, CompanySummary: s}); err != nil {
			return fmt.Errorf("failed to insert summary for %s: %w", s.CompanyCode, err)
		}
	}

	const qUnmapped = `INSERT OR IGNORE INTO unmapped_companies (run_id, display_name) VALUES (?, ?)`
	for _, name := range snap.Unmapped {
		if _, err = tx.Exec(qUnmapped, snap.RunID, name); err != nil {
			return fmt.Errorf("failed to insert unmapped company %s: %w", name, err)
		}
	}

	const qInventory = `INSERT INTO inventory_records (run_id, seq, product_code, product_name, token_a, placeholder, token_b)
		VALUES (:run_id, :seq, :product_code, :product_name, :token_a, :placeholder, :token_b)`
	for i, r := range snap.Inventory {
		if _, err = tx.NamedExec(qInventory, inventoryRow{RunID: snap.RunID, Seq: i + 1, InventoryRecord: r}); err != nil {
			return fmt.Errorf("failed to insert inventory record %d: %w", i+1, err)
		}
	}

	log.Printf("Saved run %s: %d orders, %d companies, %d inventory records",
		snap.RunID, len(snap.Processed), len(snap.Summaries), len(snap.Inventory))
	return nil
}

// GetCompanySummaries 는 저장된 실행의 업체별 집계를 업체코드 순으로 읽습니다.
func GetCompanySummaries(db *sqlx.DB, runID string) ([]model.CompanySummary, error) {
	var summaries []model.CompanySummary
	const q = `SELECT company_code, company_name_original, item_type_count, total_quantity
		FROM company_summaries WHERE run_id = ? ORDER BY company_code`
	if err := db.Select(&summaries, q, runID); err != nil {
		return nil, fmt.Errorf("failed to get company summaries for %s: %w", runID, err)
	}
	return summaries, nil
}

// GetProcessedOrders 는 저장된 실행의 주문 행을 원래 순서대로 읽습니다.
func GetProcessedOrders(db *sqlx.DB, runID string) ([]model.ProcessedOrder, error) {
	var orders []model.ProcessedOrder
	const q = `SELECT company_code, company_name_original, product_name, quantity
		FROM processed_orders WHERE run_id = ? ORDER BY seq`
	if err := db.Select(&orders, q, runID); err != nil {
		return nil, fmt.Errorf("failed to get processed orders for %s: %w", runID, err)
	}
	return orders, nil
}
