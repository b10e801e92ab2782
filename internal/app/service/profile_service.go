package service

import (
	"context"
	"fmt"

	"newgen_backend/internal/common"
	"newgen_backend/internal/domain/model"
	"newgen_backend/internal/domain/repository"
)

type ProfileService struct {
	userRepo   repository.UserRepository
	testRepo   repository.TestResultRepository
	careerRepo repository.SavedCareerRepository
}

func NewProfileService(
	userRepo repository.UserRepository,
	testRepo repository.TestResultRepository,
	careerRepo repository.SavedCareerRepository,
) *ProfileService {
	return &ProfileService{userRepo: userRepo, testRepo: testRepo, careerRepo: careerRepo}
}

type ProfileResponse struct {
	User    model.UserSummary   `json:"user"`
	Tests   []model.TestResult  `json:"tests"`
	Careers []model.SavedCareer `json:"careers"`
}

// Profile merges the user row with their test results and saved careers.
// The user lookup gates everything: if it misses, no further reads are issued.
func (s *ProfileService) Profile(ctx context.Context, userID string) (*ProfileResponse, error) {
	if userID == "" {
		return nil, common.ErrBadRequest
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		// Any failure here, missing row included, reads as "user not found".
		return nil, common.ErrNotFound
	}

	tests, err := s.testRepo.ListByUserID(ctx, userID)
	if err != nil {
		logger.Error().Err(err).Str("user_id", userID).Msg("failed to fetch test results")
		return nil, fmt.Errorf("error fetching test results: %w", common.ErrInternalServer)
	}

	careers, err := s.careerRepo.ListByUserID(ctx, userID)
	if err != nil {
		logger.Error().Err(err).Str("user_id", userID).Msg("failed to fetch saved careers")
		return nil, fmt.Errorf("error fetching saved careers: %w", common.ErrInternalServer)
	}

	return &ProfileResponse{
		User:    user.Summary(),
		Tests:   tests,
		Careers: careers,
	}, nil
}
