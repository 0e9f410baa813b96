package car

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/greenwheel/ev-rental-backend/internal/pkg/apperror"
)

var carColumns = []string{
	"id", "name", "type", `"range"`, "seats", "storage", "price", "href",
	"description", "features", "specifications", "images",
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates the postgres-backed car repository. Features,
// specifications and images live in jsonb columns.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, c *Car) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.cars").
		Columns(carColumns...).
		Values(
			c.ID, c.Name, c.Type, c.Range, c.Seats, c.Storage, c.Price, c.Href,
			c.Description, c.Features, c.Specifications, c.Images,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create car query failed: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return apperror.New(http.StatusConflict, "Car already exists")
		}
		return fmt.Errorf("create car failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Car, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(carColumns...).
		From("public.cars").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get car query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var c Car
	if err := row.Scan(
		&c.ID, &c.Name, &c.Type, &c.Range, &c.Seats, &c.Storage, &c.Price, &c.Href,
		&c.Description, &c.Features, &c.Specifications, &c.Images,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get car failed: %w", err)
	}
	return &c, nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*Car, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(carColumns...).
		From("public.cars").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list cars query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list cars failed: %w", err)
	}
	defer rows.Close()

	var cars []*Car
	for rows.Next() {
		var c Car
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Type, &c.Range, &c.Seats, &c.Storage, &c.Price, &c.Href,
			&c.Description, &c.Features, &c.Specifications, &c.Images,
		); err != nil {
			return nil, 0, fmt.Errorf("scan car failed: %w", err)
		}
		cars = append(cars, &c)
	}

	return cars, len(cars), nil
}

func (r *pgxRepository) Update(ctx context.Context, c *Car) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.cars").
		Set("name", c.Name).
		Set("type", c.Type).
		Set(`"range"`, c.Range).
		Set("seats", c.Seats).
		Set("storage", c.Storage).
		Set("price", c.Price).
		Set("href", c.Href).
		Set("description", c.Description).
		Set("features", c.Features).
		Set("specifications", c.Specifications).
		Set("images", c.Images).
		Where(squirrel.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update car query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update car failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.cars").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete car query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete car failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
