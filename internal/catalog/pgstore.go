package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

const productColumns = `
	id, name, brand, model, price, description, image_url,
	COALESCE(images, '{}'::text[]) AS images,
	category, body_material, neck_material, fingerboard, pickups,
	strings, scale, in_stock, rating, reviews_count
`

// PGStore is a Provider backed by Postgres. It is the real-backend
// counterpart of MemoryProvider: same contract, no artificial latency.
type PGStore struct {
	db *sql.DB
}

// NewPGStore creates a Postgres-backed catalog provider.
func NewPGStore(db *sql.DB) *PGStore {
	return &PGStore{db: db}
}

// EnsureSchema creates the products table when it does not exist yet.
func (s *PGStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE SCHEMA IF NOT EXISTS storefront;
		CREATE TABLE IF NOT EXISTS storefront.products (
			position      serial,
			id            text PRIMARY KEY,
			name          text NOT NULL,
			brand         text NOT NULL,
			model         text NOT NULL,
			price         double precision NOT NULL CHECK (price >= 0),
			description   text NOT NULL DEFAULT '',
			image_url     text NOT NULL DEFAULT '',
			images        text[],
			category      text NOT NULL,
			body_material text NOT NULL DEFAULT '',
			neck_material text NOT NULL DEFAULT '',
			fingerboard   text NOT NULL DEFAULT '',
			pickups       text,
			strings       int NOT NULL DEFAULT 6,
			scale         text NOT NULL DEFAULT '',
			in_stock      boolean NOT NULL DEFAULT true,
			rating        double precision NOT NULL DEFAULT 0,
			reviews_count int NOT NULL DEFAULT 0
		)
	`)
	if err != nil {
		return fmt.Errorf("EnsureSchema: %w", err)
	}
	return nil
}

// Seed inserts the given products when the table is empty, so a fresh
// database starts with the stock catalog.
func (s *PGStore) Seed(ctx context.Context, products []Product) error {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM storefront.products").Scan(&count); err != nil {
		return fmt.Errorf("Seed count: %w", err)
	}
	if count > 0 {
		return nil
	}

	query := `
		INSERT INTO storefront.products (
			id, name, brand, model, price, description, image_url, images,
			category, body_material, neck_material, fingerboard, pickups,
			strings, scale, in_stock, rating, reviews_count
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18
		)
	`
	for _, p := range products {
		var pickups sql.NullString
		if p.Specs.Pickups != "" {
			pickups = sql.NullString{String: p.Specs.Pickups, Valid: true}
		}
		_, err := s.db.ExecContext(ctx, query,
			p.ID, p.Name, p.Brand, p.Model, p.Price, p.Description, p.ImageURL,
			pq.Array(p.Images), string(p.Category), p.Specs.BodyMaterial,
			p.Specs.NeckMaterial, p.Specs.Fingerboard, pickups,
			p.Specs.Strings, p.Specs.Scale, p.InStock, p.Rating, p.ReviewsCount,
		)
		if err != nil {
			return fmt.Errorf("Seed insert %s: %w", p.ID, err)
		}
	}
	return nil
}

func scanProduct(scan func(dest ...interface{}) error) (Product, error) {
	var p Product
	var images pq.StringArray
	var pickups sql.NullString

	err := scan(
		&p.ID, &p.Name, &p.Brand, &p.Model, &p.Price, &p.Description,
		&p.ImageURL, &images, &p.Category, &p.Specs.BodyMaterial,
		&p.Specs.NeckMaterial, &p.Specs.Fingerboard, &pickups,
		&p.Specs.Strings, &p.Specs.Scale, &p.InStock, &p.Rating, &p.ReviewsCount,
	)
	if err != nil {
		return Product{}, err
	}

	p.Images = []string(images)
	if pickups.Valid {
		p.Specs.Pickups = pickups.String
	}
	return p, nil
}

func (s *PGStore) queryProducts(ctx context.Context, where string, args ...interface{}) ([]Product, error) {
	query := "SELECT " + productColumns + " FROM storefront.products"
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY position"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("queryProducts: %w", err)
	}
	defer rows.Close()

	products := []Product{}
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("queryProducts scan: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// ListAll retrieves the full catalog in storage order.
func (s *PGStore) ListAll(ctx context.Context) ([]Product, error) {
	return s.queryProducts(ctx, "")
}

// GetByID retrieves a single product, or (nil, nil) when absent.
func (s *PGStore) GetByID(ctx context.Context, id string) (*Product, error) {
	query := "SELECT " + productColumns + " FROM storefront.products WHERE id = $1"

	p, err := scanProduct(s.db.QueryRowContext(ctx, query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByID: %w", err)
	}
	return &p, nil
}

// FilterByCategory retrieves products in the given family.
func (s *PGStore) FilterByCategory(ctx context.Context, category Category) ([]Product, error) {
	return s.queryProducts(ctx, "category = $1", string(category))
}

// FilterByPriceRange retrieves products priced within [min, max].
func (s *PGStore) FilterByPriceRange(ctx context.Context, min, max float64) ([]Product, error) {
	return s.queryProducts(ctx, "price >= $1 AND price <= $2", min, max)
}

// Search matches the query case-insensitively against name, brand, model and
// description.
func (s *PGStore) Search(ctx context.Context, query string) ([]Product, error) {
	pattern := "%" + query + "%"
	return s.queryProducts(ctx,
		"name ILIKE $1 OR brand ILIKE $1 OR model ILIKE $1 OR description ILIKE $1",
		pattern)
}

// Featured retrieves the first six products in storage order rated 4.5 or
// better.
func (s *PGStore) Featured(ctx context.Context) ([]Product, error) {
	query := "SELECT " + productColumns + fmt.Sprintf(
		" FROM storefront.products WHERE rating >= %v ORDER BY position LIMIT %d",
		featuredRatingFloor, featuredLimit)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("Featured: %w", err)
	}
	defer rows.Close()

	products := []Product{}
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("Featured scan: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
