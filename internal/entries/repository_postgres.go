package entries

import (
	"context"
	"strconv"

	"calorielog/internal/intake"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Insert a food entry
// --------------------------------------------------
func (r *PostgresRepository) Save(ctx context.Context, entry *intake.FoodEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	return r.db.QueryRow(ctx, `
		INSERT INTO food_entries (id, name, calories, quantity, entry_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`,
		entry.ID,
		entry.Name,
		strconv.Itoa(entry.Calories),
		strconv.Itoa(entry.Quantity),
		entry.Date,
	).Scan(&entry.CreatedAt)
}

// --------------------------------------------------
// All rows, oldest first
// --------------------------------------------------
func (r *PostgresRepository) List(ctx context.Context) ([]intake.FoodRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, calories, quantity, entry_date, created_at
		FROM food_entries
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []intake.FoodRecord
	for rows.Next() {
		var rec intake.FoodRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.Name,
			&rec.Calories,
			&rec.Quantity,
			&rec.Date,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// --------------------------------------------------
// Bulk reset
// --------------------------------------------------
func (r *PostgresRepository) Reset(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM food_entries`)
	return err
}
