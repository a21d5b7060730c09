package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"

	"passport/config"
	"passport/internal/domain/entity"
	"passport/internal/domain/repository"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        4,
			PasswordMinLength: 8,
		},
	}
}

// fakeUserRepo is an in-memory UserRepository used for end-to-end style
// lifecycle tests where mock choreography would obscure the behavior under test.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *user

	return &clone, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			clone := *user

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Username == username {
			clone := *user

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.users[id]

	return ok, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = uuid.New()
	clone := *user
	r.users[user.ID] = &clone

	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	clone := *user
	r.users[user.ID] = &clone

	return nil
}

func (r *fakeUserRepo) DeleteByID(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(r.users, id)

	return nil
}

func (r *fakeUserRepo) CountByRole(_ context.Context, role entity.Role) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, user := range r.users {
		if user.Role == role {
			count++
		}
	}

	return count, nil
}

func (r *fakeUserRepo) FindByRole(_ context.Context, role entity.Role) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var users []*entity.User
	for _, user := range r.users {
		if user.Role == role {
			clone := *user
			users = append(users, &clone)
		}
	}

	return users, nil
}

func (r *fakeUserRepo) Search(_ context.Context, term string) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	needle := strings.ToLower(term)
	var users []*entity.User
	for _, user := range r.users {
		haystack := strings.ToLower(user.Email + " " + user.Username + " " + user.FirstName + " " + user.LastName)
		if strings.Contains(haystack, needle) {
			clone := *user
			users = append(users, &clone)
		}
	}

	return users, nil
}

// fakeTxManager runs the callback against a factory bound to the fake repo.
type fakeTxManager struct {
	repo *fakeUserRepo
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(fakeRepoFactory{repo: m.repo})
}

type fakeRepoFactory struct {
	repo *fakeUserRepo
}

func (f fakeRepoFactory) UserRepo() repository.UserRepository {
	return f.repo
}
