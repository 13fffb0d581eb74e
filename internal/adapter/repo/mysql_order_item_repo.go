package repo

import (
	"context"
	"database/sql"

	"github.com/Apple-More/order-service/internal/usecase"
)

type MySQLOrderItemRepo struct{ db *sql.DB }

func NewMySQLOrderItemRepo(db *sql.DB) *MySQLOrderItemRepo { return &MySQLOrderItemRepo{db: db} }

// BulkInsert writes all items in a single transaction. Either every row
// lands or none do; there is no partial line-item set for an order.
func (r *MySQLOrderItemRepo) BulkInsert(ctx context.Context, items []usecase.OrderItemRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO order_items (id,order_id,product_variant_id,quantity,price,created_at)
VALUES (?,?,?,?,?,NOW())`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, it := range items {
		if _, err := stmt.ExecContext(ctx, it.ID, it.OrderID, it.ProductVariantID, it.Quantity, it.Price); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *MySQLOrderItemRepo) ListByOrder(ctx context.Context, orderID string) ([]usecase.OrderItemRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id,order_id,product_variant_id,quantity,price
FROM order_items WHERE order_id=?`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []usecase.OrderItemRecord
	for rows.Next() {
		var rec usecase.OrderItemRecord
		if err := rows.Scan(&rec.ID, &rec.OrderID, &rec.ProductVariantID, &rec.Quantity, &rec.Price); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

var _ usecase.OrderItemRepo = (*MySQLOrderItemRepo)(nil)
