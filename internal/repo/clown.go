package repo

import (
	"context"
	"database/sql"

	"github.com/docport/doctor-portal/internal/models"
)

// ========================
// REPOSITORY STRUCT
// ========================

type ClownRepo struct {
	DB *sql.DB
}

func NewClownRepo(db *sql.DB) *ClownRepo {
	return &ClownRepo{DB: db}
}

// ========================
// CREATE CLOWN
// ========================

func (r *ClownRepo) Create(ctx context.Context, name, color string, age int) (models.Clown, error) {
	var clown models.Clown
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO clowns (name, color, age)
		 VALUES ($1, $2, $3)
		 RETURNING id, name, color, age, created_at`,
		name, color, age,
	).Scan(
		&clown.ID,
		&clown.Name,
		&clown.Color,
		&clown.Age,
		&clown.CreatedAt,
	)
	return clown, err
}

// ========================
// LIST CLOWNS
// ========================

func (r *ClownRepo) ListPaginated(ctx context.Context, limit, offset int) ([]models.Clown, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, name, color, age, created_at
		 FROM clowns
		 ORDER BY id
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clowns := []models.Clown{}
	for rows.Next() {
		var c models.Clown
		if err := rows.Scan(&c.ID, &c.Name, &c.Color, &c.Age, &c.CreatedAt); err != nil {
			return nil, err
		}
		clowns = append(clowns, c)
	}

	return clowns, rows.Err()
}
