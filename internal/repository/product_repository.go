package repository

import (
	"catalog-service/internal/entity"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db}
}

// CreateProduct inserts a single product and returns it with its assigned ID.
func (r *ProductRepository) CreateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	query := `INSERT INTO products (name, description) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, query, product.Name, product.Description)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	product.ID = int(id)
	return product, nil
}

// CreateProducts inserts all given products in a single transaction with a
// batched INSERT, so the operation is all-or-nothing.
func (r *ProductRepository) CreateProducts(ctx context.Context, products []*entity.Product) ([]*entity.Product, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	query := `INSERT INTO products (name, description) VALUES `

	// Build the batched VALUES clause
	var values []interface{}
	for _, product := range products {
		query += "(?, ?),"
		values = append(values, product.Name, product.Description)
	}

	// Remove the trailing comma
	query = query[:len(query)-1]

	res, err := tx.ExecContext(ctx, query, values...)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	// SQLite reports the rowid of the last row of the batch; the batch rows
	// get contiguous ids, so walk backwards from there.
	lastID, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, err
	}

	firstID := int(lastID) - len(products) + 1
	for i, product := range products {
		product.ID = firstID + i
	}
	return products, nil
}

// GetProducts retrieves every product, unordered and unpaginated.
func (r *ProductRepository) GetProducts(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT id, name, description FROM products`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// An empty result serializes as [], not null.
	products := []*entity.Product{}
	for rows.Next() {
		var product entity.Product
		err := rows.Scan(&product.ID, &product.Name, &product.Description)
		if err != nil {
			return nil, err
		}
		products = append(products, &product)
	}

	return products, rows.Err()
}

// GetProductByID fetches one product, returning ErrNotFound when the id is
// unknown.
func (r *ProductRepository) GetProductByID(ctx context.Context, id int) (*entity.Product, error) {
	query := `SELECT id, name, description FROM products WHERE id = ?`

	var product entity.Product
	err := r.db.QueryRowContext(ctx, query, id).Scan(&product.ID, &product.Name, &product.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &product, nil
}

// ListProductsByFilters runs the filtered, sorted, paginated product query
// inside an explicitly committed read transaction. The filter must already
// carry validated OrderBy/Order values and populated pagination defaults.
func (r *ProductRepository) ListProductsByFilters(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	query := `SELECT id, name, description FROM products`

	var conditions []string
	var args []interface{}
	if filter.Name != "" {
		conditions = append(conditions, "name = ?")
		args = append(args, filter.Name)
	}
	if filter.NameLike != "" {
		conditions = append(conditions, "LOWER(name) LIKE '%' || LOWER(?) || '%'")
		args = append(args, filter.NameLike)
	}
	if filter.DescriptionLike != "" {
		conditions = append(conditions, "LOWER(description) LIKE '%' || LOWER(?) || '%'")
		args = append(args, filter.DescriptionLike)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	// OrderBy and Order are restricted to enumerated values upstream, never
	// raw request input.
	query += fmt.Sprintf(" ORDER BY %s %s", filter.OrderBy, filter.Order)
	query += " LIMIT ? OFFSET ?"
	args = append(args, filter.ItemsPerPage, filter.Offset())

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	products := []*entity.Product{}
	for rows.Next() {
		var product entity.Product
		err := rows.Scan(&product.ID, &product.Name, &product.Description)
		if err != nil {
			rows.Close()
			tx.Rollback()
			return nil, err
		}
		products = append(products, &product)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		tx.Rollback()
		return nil, err
	}
	rows.Close()

	err = tx.Commit()
	if err != nil {
		return nil, err
	}

	return products, nil
}

// DeleteProductByID deletes a product. Deleting an unknown id is a no-op,
// not an error.
func (r *ProductRepository) DeleteProductByID(ctx context.Context, id int) error {
	query := `DELETE FROM products WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

// DeleteProductsByID deletes every product whose id is in ids with a single
// statement.
func (r *ProductRepository) DeleteProductsByID(ctx context.Context, ids []int) error {
	if len(ids) == 0 {
		return nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	query := fmt.Sprintf(`DELETE FROM products WHERE id IN (%s)`, placeholders)

	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}
