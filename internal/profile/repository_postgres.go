package profile

import (
	"context"
	"errors"

	"calorielog/internal/recommend"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const uniqueViolation = "23505"

// Save inserts the profile. The singleton index on user_profile turns a
// second insert into ErrProfileExists.
func (r *PostgresRepository) Save(ctx context.Context, p *UserProfile) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	err := r.db.QueryRow(ctx, `
		INSERT INTO user_profile (id, name, age, gender, passcode_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`,
		p.ID, p.Name, p.Age, string(p.Gender), p.PasscodeHash,
	).Scan(&p.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrProfileExists
	}
	return err
}

// Get returns the oldest stored profile.
func (r *PostgresRepository) Get(ctx context.Context) (*UserProfile, error) {
	var (
		p      UserProfile
		gender string
	)

	err := r.db.QueryRow(ctx, `
		SELECT id, name, age, gender, passcode_hash, created_at
		FROM user_profile
		ORDER BY created_at ASC
		LIMIT 1
	`).Scan(&p.ID, &p.Name, &p.Age, &gender, &p.PasscodeHash, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoProfile
		}
		return nil, err
	}

	p.Gender = recommend.Gender(gender)
	return &p, nil
}
