package repository

import (
	"context"
	"database/sql"
	"fmt"

	"newgen_backend/internal/domain/model"
)

type TestResultRepository interface {
	ListByUserID(ctx context.Context, userID string) ([]model.TestResult, error)
}

type pgTestResultRepository struct {
	db *sql.DB
}

func NewPgTestResultRepository(db *sql.DB) TestResultRepository {
	return &pgTestResultRepository{db: db}
}

func (r *pgTestResultRepository) ListByUserID(ctx context.Context, userID string) ([]model.TestResult, error) {
	query := `SELECT category, score FROM test_results WHERE user_id = $1`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("pgTestResultRepository.ListByUserID: %w", err)
	}
	defer rows.Close()

	results := []model.TestResult{}
	for rows.Next() {
		tr := model.TestResult{UserID: userID}
		if err := rows.Scan(&tr.Category, &tr.Score); err != nil {
			return nil, fmt.Errorf("pgTestResultRepository.ListByUserID scan: %w", err)
		}
		results = append(results, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgTestResultRepository.ListByUserID rows: %w", err)
	}
	return results, nil
}
