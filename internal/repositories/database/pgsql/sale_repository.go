package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ovenpos/bakery_backoffice_app/internal/apperrors"
	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
	portsrepo "github.com/ovenpos/bakery_backoffice_app/internal/core/ports/repositories"
	"github.com/ovenpos/bakery_backoffice_app/internal/models"
	"github.com/ovenpos/bakery_backoffice_app/internal/utils/mapping"
)

type PgxSaleRepository struct {
	BaseRepository
}

func newPgxSaleRepository(db *pgxpool.Pool) portsrepo.SaleRepositoryFacade {
	return &PgxSaleRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

const saleColumns = `sale_id, total_amount, payment_method, sale_date, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanSale(row pgx.Row) (*models.Sale, error) {
	var m models.Sale
	err := row.Scan(
		&m.SaleID,
		&m.TotalAmount,
		&m.PaymentMethod,
		&m.SaleDate,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveSale inserts the sale and all of its line items in one transaction.
func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.SaleRecord) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelSale(sale)
	saleQuery := `
		INSERT INTO sales (sale_id, total_amount, payment_method, sale_date, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, saleQuery,
		m.SaleID,
		m.TotalAmount,
		m.PaymentMethod,
		m.SaleDate,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert sale "+m.SaleID, err)
	}

	itemQuery := `
		INSERT INTO sale_items (sale_item_id, sale_id, item_name, quantity, unit_price, line_total)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, item := range sale.Items {
		im := mapping.ToModelSaleItem(item)
		_, err = tx.Exec(ctx, itemQuery,
			im.SaleItemID,
			im.SaleID,
			im.ItemName,
			im.Quantity,
			im.UnitPrice,
			im.LineTotal,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to insert sale item "+im.SaleItemID, err)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.SaleRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM sales WHERE sale_id = $1;`, saleColumns)
	m, err := scanSale(r.Pool.QueryRow(ctx, query, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sale by ID %s: %w", saleID, err)
	}

	items, err := r.listItems(ctx, []string{saleID})
	if err != nil {
		return nil, err
	}
	sale := mapping.ToDomainSale(*m, items[saleID])
	return &sale, nil
}

func (r *PgxSaleRepository) ListSales(ctx context.Context, from, to time.Time, limit int, offset int) ([]domain.SaleRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM sales
		WHERE sale_date >= $1 AND sale_date < $2
		ORDER BY sale_date DESC, created_at DESC
		LIMIT $3 OFFSET $4;
	`, saleColumns)
	rows, err := r.Pool.Query(ctx, query, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	defer rows.Close()

	var ms []models.Sale
	saleIDs := make([]string, 0)
	for rows.Next() {
		m, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		ms = append(ms, *m)
		saleIDs = append(saleIDs, m.SaleID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale rows: %w", err)
	}
	if len(ms) == 0 {
		return []domain.SaleRecord{}, nil
	}

	itemsBySale, err := r.listItems(ctx, saleIDs)
	if err != nil {
		return nil, err
	}
	sales := make([]domain.SaleRecord, len(ms))
	for i, m := range ms {
		sales[i] = mapping.ToDomainSale(m, itemsBySale[m.SaleID])
	}
	return sales, nil
}

// listItems fetches the line items for a set of sales in one query,
// grouped by sale ID.
func (r *PgxSaleRepository) listItems(ctx context.Context, saleIDs []string) (map[string][]models.SaleItem, error) {
	query := `
		SELECT sale_item_id, sale_id, item_name, quantity, unit_price, line_total
		FROM sale_items
		WHERE sale_id = ANY($1)
		ORDER BY item_name ASC;
	`
	rows, err := r.Pool.Query(ctx, query, saleIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list sale items: %w", err)
	}
	defer rows.Close()

	itemsBySale := make(map[string][]models.SaleItem)
	for rows.Next() {
		var m models.SaleItem
		if err := rows.Scan(
			&m.SaleItemID,
			&m.SaleID,
			&m.ItemName,
			&m.Quantity,
			&m.UnitPrice,
			&m.LineTotal,
		); err != nil {
			return nil, fmt.Errorf("failed to scan sale item row: %w", err)
		}
		itemsBySale[m.SaleID] = append(itemsBySale[m.SaleID], m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale item rows: %w", err)
	}
	return itemsBySale, nil
}
