package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Apple-More/order-service/internal/usecase"
)

type MySQLOrderRepo struct{ db *sql.DB }

func NewMySQLOrderRepo(db *sql.DB) *MySQLOrderRepo { return &MySQLOrderRepo{db: db} }

func (r *MySQLOrderRepo) Create(ctx context.Context, o *usecase.OrderRecord) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO orders (id,status,customer_id,shipping_address_id,created_at,updated_at)
VALUES (?,?,?,?,?,NOW())
`, o.ID, o.Status, o.CustomerID, o.ShippingAddressID, o.CreatedAt)
	return err
}

func (r *MySQLOrderRepo) GetByID(ctx context.Context, id string) (*usecase.OrderRecord, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id,status,customer_id,shipping_address_id,created_at
FROM orders WHERE id=?`, id)
	return scanOrder(row, id)
}

func (r *MySQLOrderRepo) GetByIDForCustomer(ctx context.Context, id, customerID string) (*usecase.OrderRecord, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id,status,customer_id,shipping_address_id,created_at
FROM orders WHERE id=? AND customer_id=?`, id, customerID)
	return scanOrder(row, id)
}

func (r *MySQLOrderRepo) ListAll(ctx context.Context) ([]usecase.OrderRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id,status,customer_id,shipping_address_id,created_at
FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func (r *MySQLOrderRepo) ListByCustomer(ctx context.Context, customerID string) ([]usecase.OrderRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id,status,customer_id,shipping_address_id,created_at
FROM orders WHERE customer_id=? ORDER BY created_at DESC`, customerID)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func (r *MySQLOrderRepo) UpdateStatus(ctx context.Context, id, toStatus string) error {
	res, err := r.db.ExecContext(ctx, `
        UPDATE orders
        SET status = ?, updated_at = NOW()
        WHERE id = ?`,
		toStatus, id,
	)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("order %s: %w", id, usecase.ErrNotFound)
	}
	return nil
}

func (r *MySQLOrderRepo) UpdateStatusIf(ctx context.Context, id string, fromStatus, toStatus string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
        UPDATE orders
        SET status = ?, updated_at = NOW()
        WHERE id = ? AND status = ?`,
		toStatus, id, fromStatus,
	)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// rows == 0 → nothing matched (either not found or status mismatch)
	return rows > 0, nil
}

func scanOrder(row *sql.Row, id string) (*usecase.OrderRecord, error) {
	var rec usecase.OrderRecord
	err := row.Scan(&rec.ID, &rec.Status, &rec.CustomerID, &rec.ShippingAddressID, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("order %s: %w", id, usecase.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func collectOrders(rows *sql.Rows) ([]usecase.OrderRecord, error) {
	defer rows.Close()
	var out []usecase.OrderRecord
	for rows.Next() {
		var rec usecase.OrderRecord
		if err := rows.Scan(&rec.ID, &rec.Status, &rec.CustomerID, &rec.ShippingAddressID, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

var _ usecase.OrderRepo = (*MySQLOrderRepo)(nil)
