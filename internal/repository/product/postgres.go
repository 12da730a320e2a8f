package product

import (
	"context"
	"io"
	"log"

	"garage-sale/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT id, name, COALESCE(description, ''), price, COALESCE(image_url, ''), available_count, created_at
FROM products
ORDER BY created_at DESC, id DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.AvailableCount, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, err
	}
	r.logger.Printf("product repo: list count=%d", len(result))
	return result, nil
}

func (r *postgresRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	const q = `
SELECT id, name, COALESCE(description, ''), price, COALESCE(image_url, ''), available_count, created_at
FROM products
WHERE id = ANY($1)
`
	rows, err := r.pool.Query(ctx, q, ids)
	if err != nil {
		r.logger.Printf("product repo: get ids=%v error=%v", ids, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.AvailableCount, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: get rows ids=%v error=%v", ids, err)
		return nil, err
	}
	r.logger.Printf("product repo: get ids=%v found=%d", ids, len(result))
	return result, nil
}

func (r *postgresRepo) Insert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (name, description, price, image_url, available_count)
VALUES ($1, NULLIF($2, ''), $3, NULLIF($4, ''), $5)
RETURNING id, created_at
`
	res := p
	err := r.pool.QueryRow(ctx, q, p.Name, p.Description, p.Price, p.ImageURL, p.AvailableCount).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		r.logger.Printf("product repo: insert name=%q error=%v", p.Name, err)
		return nil, err
	}
	r.logger.Printf("product repo: inserted id=%d name=%q", res.ID, res.Name)
	return &res, nil
}
