package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	Name           string
	Description    string
	Price          float64
	ImageURL       string
	AvailableCount int
}

// Apply inserts a small demo catalog for manual testing. Rows are keyed by
// name so reruns are idempotent.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{
			Name:           "Vintage Desk Lamp",
			Description:    "Brass desk lamp, rewired, works great",
			Price:          24.50,
			ImageURL:       "https://example.com/images/desk-lamp.jpg",
			AvailableCount: 1,
		},
		{
			Name:           "Box of Vinyl Records",
			Description:    "Assorted 70s rock, about 30 records",
			Price:          19.99,
			ImageURL:       "https://example.com/images/vinyl-box.jpg",
			AvailableCount: 3,
		},
		{
			Name:           "Garden Tool Set",
			Description:    "Trowel, pruners and gloves, lightly used",
			Price:          12.00,
			ImageURL:       "https://example.com/images/garden-tools.jpg",
			AvailableCount: 2,
		},
	}

	for _, p := range products {
		if err := insertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("insert product %q: %w", p.Name, err)
		}
	}

	return nil
}

func insertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (name, description, price, image_url, available_count)
SELECT $1, $2, $3, $4, $5
WHERE NOT EXISTS (SELECT 1 FROM products WHERE name = $1)
`
	_, err := pool.Exec(ctx, q, p.Name, p.Description, p.Price, p.ImageURL, p.AvailableCount)
	return err
}
