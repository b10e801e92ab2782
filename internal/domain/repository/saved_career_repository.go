package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"newgen_backend/internal/common"
	"newgen_backend/internal/domain/model"

	"github.com/jackc/pgx/v5/pgconn"
)

type SavedCareerRepository interface {
	Exists(ctx context.Context, userID, careerName string) (bool, error)
	Create(ctx context.Context, saved *model.SavedCareer) error
	ListByUserID(ctx context.Context, userID string) ([]model.SavedCareer, error)
	ListDistinctNames(ctx context.Context) ([]string, error)
}

type pgSavedCareerRepository struct {
	db *sql.DB
}

func NewPgSavedCareerRepository(db *sql.DB) SavedCareerRepository {
	return &pgSavedCareerRepository{db: db}
}

func (r *pgSavedCareerRepository) Exists(ctx context.Context, userID, careerName string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM saved_careers WHERE user_id = $1 AND career_name = $2)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, userID, careerName).Scan(&exists); err != nil {
		return false, fmt.Errorf("pgSavedCareerRepository.Exists: %w", err)
	}
	return exists, nil
}

func (r *pgSavedCareerRepository) Create(ctx context.Context, saved *model.SavedCareer) error {
	query := `INSERT INTO saved_careers (user_id, career_name) VALUES ($1, $2)`
	_, err := r.db.ExecContext(ctx, query, saved.UserID, saved.CareerName)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Lost the check-then-insert race
			return fmt.Errorf("career already saved for user: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgSavedCareerRepository.Create: %w", err)
	}
	return nil
}

func (r *pgSavedCareerRepository) ListByUserID(ctx context.Context, userID string) ([]model.SavedCareer, error) {
	query := `SELECT career_name FROM saved_careers WHERE user_id = $1`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("pgSavedCareerRepository.ListByUserID: %w", err)
	}
	defer rows.Close()

	careers := []model.SavedCareer{}
	for rows.Next() {
		sc := model.SavedCareer{UserID: userID}
		if err := rows.Scan(&sc.CareerName); err != nil {
			return nil, fmt.Errorf("pgSavedCareerRepository.ListByUserID scan: %w", err)
		}
		careers = append(careers, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgSavedCareerRepository.ListByUserID rows: %w", err)
	}
	return careers, nil
}

func (r *pgSavedCareerRepository) ListDistinctNames(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT career_name FROM saved_careers`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgSavedCareerRepository.ListDistinctNames: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("pgSavedCareerRepository.ListDistinctNames scan: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgSavedCareerRepository.ListDistinctNames rows: %w", err)
	}
	return names, nil
}
