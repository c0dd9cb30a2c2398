package seed

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/healthclaim/portal-api/internal/core/domain"
	"github.com/healthclaim/portal-api/internal/core/service"
)

type stubRepo struct {
	users     []*domain.User
	deleted   int64
	deleteErr error
	failEmail string
}

func (r *stubRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if user.Email == r.failEmail {
		return nil, domain.ErrDuplicateEmail
	}
	r.users = append(r.users, user)
	return user, nil
}

func (r *stubRepo) FindByEmailAndRole(context.Context, string, domain.Role) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *stubRepo) FindByID(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *stubRepo) Save(context.Context, *domain.User) error { return nil }

func (r *stubRepo) DeleteAll(context.Context) (int64, error) {
	if r.deleteErr != nil {
		return 0, r.deleteErr
	}
	n := int64(len(r.users))
	r.deleted += n
	r.users = nil
	return n, nil
}

func TestRun_CreatesDemoUsers(t *testing.T) {
	hasher := service.NewBcryptHasher(bcrypt.MinCost)
	repo := &stubRepo{users: []*domain.User{{Email: "old@example.com"}}}

	created, err := Run(context.Background(), repo, hasher, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created != len(DemoUsers) || len(repo.users) != len(DemoUsers) {
		t.Fatalf("expected %d users, got %d/%d", len(DemoUsers), created, len(repo.users))
	}
	if repo.deleted != 1 {
		t.Fatalf("expected existing user to be cleared, deleted=%d", repo.deleted)
	}

	perRole := map[domain.Role]int{}
	for i, u := range repo.users {
		perRole[u.Role]++
		if !u.IsActive || u.CreatedAt.IsZero() {
			t.Fatalf("%s: expected active user with timestamps", u.Email)
		}
		if !hasher.Verify(DemoUsers[i].Password, u.PasswordHash) {
			t.Fatalf("%s: stored hash does not match demo password", u.Email)
		}
	}
	for _, r := range domain.Roles {
		if perRole[r] != 2 {
			t.Fatalf("expected two %s accounts, got %d", r, perRole[r])
		}
	}
}

func TestRun_ContinuesPastFailures(t *testing.T) {
	repo := &stubRepo{failEmail: "provider@demo.com"}

	created, err := Run(context.Background(), repo, service.NewBcryptHasher(bcrypt.MinCost), zerolog.Nop())
	if created != len(DemoUsers)-1 {
		t.Fatalf("expected %d created, got %d", len(DemoUsers)-1, created)
	}
	if !errors.Is(err, domain.ErrDuplicateEmail) || !strings.Contains(err.Error(), "provider@demo.com") {
		t.Fatalf("expected joined failure naming the account, got %v", err)
	}
}

func TestRun_ClearFailureStops(t *testing.T) {
	repo := &stubRepo{deleteErr: errors.New("connection refused")}

	created, err := Run(context.Background(), repo, service.NewBcryptHasher(bcrypt.MinCost), zerolog.Nop())
	if err == nil || created != 0 || len(repo.users) != 0 {
		t.Fatalf("expected no users and an error, got %d %v", created, err)
	}
}

func TestDemoUsers_SatisfyProfileRules(t *testing.T) {
	for _, du := range DemoUsers {
		if err := domain.ValidateProfile(du.Role, du.Profile); err != nil {
			t.Fatalf("%s: %v", du.Email, err)
		}
	}
}
