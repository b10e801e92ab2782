package handler

import (
	"context"
	"sync"

	"newgen_backend/internal/common"
	"newgen_backend/internal/domain/model"

	openai "github.com/sashabaranov/go-openai"
)

// In-memory stand-ins for the Postgres repositories and the collaborators,
// so handler tests can drive the real services end to end.

type fakeUserRepo struct {
	mu    sync.Mutex
	users []*model.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email {
			return common.ErrConflict
		}
	}
	cp := *user
	f.users = append(f.users, &cp)
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeUserRepo) FindByName(_ context.Context, name string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Name == name {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeUserRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.users)
}

type fakeTestResultRepo struct {
	mu      sync.Mutex
	results map[string][]model.TestResult
	failAll bool
	calls   int
}

func (f *fakeTestResultRepo) ListByUserID(_ context.Context, userID string) ([]model.TestResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failAll {
		return nil, common.ErrInternalServer
	}
	if rs, ok := f.results[userID]; ok {
		return rs, nil
	}
	return []model.TestResult{}, nil
}

func (f *fakeTestResultRepo) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeSavedCareerRepo struct {
	mu    sync.Mutex
	saved []model.SavedCareer
	calls int
}

func (f *fakeSavedCareerRepo) Exists(_ context.Context, userID, careerName string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, sc := range f.saved {
		if sc.UserID == userID && sc.CareerName == careerName {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSavedCareerRepo) Create(_ context.Context, saved *model.SavedCareer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, sc := range f.saved {
		if sc.UserID == saved.UserID && sc.CareerName == saved.CareerName {
			return common.ErrConflict
		}
	}
	f.saved = append(f.saved, *saved)
	return nil
}

func (f *fakeSavedCareerRepo) ListByUserID(_ context.Context, userID string) ([]model.SavedCareer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	careers := []model.SavedCareer{}
	for _, sc := range f.saved {
		if sc.UserID == userID {
			careers = append(careers, sc)
		}
	}
	return careers, nil
}

func (f *fakeSavedCareerRepo) ListDistinctNames(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seen := map[string]bool{}
	names := []string{}
	for _, sc := range f.saved {
		if !seen[sc.CareerName] {
			seen[sc.CareerName] = true
			names = append(names, sc.CareerName)
		}
	}
	return names, nil
}

func (f *fakeSavedCareerRepo) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeNotifier struct {
	mu        sync.Mutex
	enqueued  int
	lastEmail string
}

func (f *fakeNotifier) EnqueueWelcome(_ context.Context, email, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enqueued++
	f.lastEmail = email
	return nil
}

func (f *fakeNotifier) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.enqueued
}

type fakeCompleter struct {
	reply func(req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

func (f *fakeCompleter) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return f.reply(req)
}
