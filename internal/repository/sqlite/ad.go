package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rehmoapp/rehmo/internal/domain"
)

// AdRepository implements domain.AdRepository using SQLite.
type AdRepository struct {
	db *sql.DB
}

// NewAdRepository creates a new SQLite-backed AdRepository.
func NewAdRepository(db *DB) *AdRepository {
	return &AdRepository{db: db.SqlDB}
}

func (r *AdRepository) Upsert(ctx context.Context, ad *domain.Ad) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO ads (id, placement, title, description, image, link, cta, category)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		   placement = excluded.placement,
		   title = excluded.title,
		   description = excluded.description,
		   image = excluded.image,
		   link = excluded.link,
		   cta = excluded.cta,
		   category = excluded.category`,
		ad.ID, string(ad.Placement), ad.Title, ad.Description, ad.Image, ad.Link, ad.CTA, ad.Category,
	)
	if err != nil {
		return fmt.Errorf("upsert ad: %w", err)
	}
	return nil
}

func (r *AdRepository) ListByPlacement(ctx context.Context, placement domain.AdPlacement) ([]domain.Ad, error) {
	return r.list(ctx,
		`SELECT id, placement, title, description, image, link, cta, category
		 FROM ads WHERE placement = ? ORDER BY id`, string(placement))
}

func (r *AdRepository) ListAll(ctx context.Context) ([]domain.Ad, error) {
	return r.list(ctx,
		`SELECT id, placement, title, description, image, link, cta, category
		 FROM ads ORDER BY placement, id`)
}

func (r *AdRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM ads").Scan(&count); err != nil {
		return 0, fmt.Errorf("count ads: %w", err)
	}
	return count, nil
}

func (r *AdRepository) list(ctx context.Context, query string, args ...any) ([]domain.Ad, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ads: %w", err)
	}
	defer rows.Close()

	var ads []domain.Ad
	for rows.Next() {
		var ad domain.Ad
		var placement string
		if err := rows.Scan(&ad.ID, &placement, &ad.Title, &ad.Description, &ad.Image, &ad.Link, &ad.CTA, &ad.Category); err != nil {
			return nil, fmt.Errorf("scan ad: %w", err)
		}
		ad.Placement = domain.AdPlacement(placement)
		ads = append(ads, ad)
	}
	return ads, rows.Err()
}
