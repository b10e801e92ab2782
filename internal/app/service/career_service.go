package service

import (
	"context"
	"errors"
	"fmt"

	"newgen_backend/internal/common"
	"newgen_backend/internal/domain/model"
	"newgen_backend/internal/domain/repository"
)

type CareerService struct {
	careerRepo repository.SavedCareerRepository
}

func NewCareerService(careerRepo repository.SavedCareerRepository) *CareerService {
	return &CareerService{careerRepo: careerRepo}
}

// Save bookmarks a career for a user. It returns false with no error when the
// pair is already saved: a duplicate save is a logical no-op, not a failure.
func (s *CareerService) Save(ctx context.Context, userID, careerName string) (bool, error) {
	if userID == "" || careerName == "" {
		return false, common.ErrBadRequest
	}

	exists, err := s.careerRepo.Exists(ctx, userID, careerName)
	if err != nil {
		return false, fmt.Errorf("failed to check saved career: %w", err)
	}
	if exists {
		return false, nil
	}

	saved := &model.SavedCareer{UserID: userID, CareerName: careerName}
	if err := s.careerRepo.Create(ctx, saved); err != nil {
		// A lost check-then-insert race lands here; same outcome as the
		// pre-check catching it.
		if errors.Is(err, common.ErrConflict) {
			return false, nil
		}
		return false, fmt.Errorf("failed to save career: %w", err)
	}
	return true, nil
}

// ListDistinct returns every saved career name once, across all users.
func (s *CareerService) ListDistinct(ctx context.Context) ([]string, error) {
	names, err := s.careerRepo.ListDistinctNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list careers: %w", err)
	}
	return names, nil
}
