package users

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type testUsersRepo struct {
	byID map[string]User
	seen map[string]map[int]struct{}
}

func newTestUsersRepo() *testUsersRepo {
	return &testUsersRepo{
		byID: map[string]User{},
		seen: map[string]map[int]struct{}{},
	}
}

var errRepoNotFound = errors.New("repo: not found")

func (r *testUsersRepo) Create(ctx context.Context, u User) error {
	if _, ok := r.byID[u.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[u.ID] = u
	return nil
}

func (r *testUsersRepo) Update(ctx context.Context, u User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[u.ID] = u
	return nil
}

func (r *testUsersRepo) GetByID(ctx context.Context, id string) (User, error) {
	u, ok := r.byID[id]
	if !ok {
		return User{}, errRepoNotFound
	}
	return u, nil
}

func (r *testUsersRepo) GetByUsername(ctx context.Context, username string) (User, error) {
	for _, u := range r.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return User{}, errRepoNotFound
}

func (r *testUsersRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, errRepoNotFound
}

func (r *testUsersRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return errRepoNotFound
	}
	delete(r.byID, id)
	delete(r.seen, id)
	return nil
}

func (r *testUsersRepo) AddSeenSpecies(ctx context.Context, userID string, speciesID int) error {
	set, ok := r.seen[userID]
	if !ok {
		set = map[int]struct{}{}
		r.seen[userID] = set
	}
	set[speciesID] = struct{}{}
	return nil
}

func (r *testUsersRepo) ListSeenSpecies(ctx context.Context, userID string) ([]int, error) {
	out := make([]int, 0)
	for id := range r.seen[userID] {
		out = append(out, id)
	}
	return out, nil
}

func newTestService() (*Service, *testUsersRepo) {
	repo := newTestUsersRepo()
	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC) }
	return svc, repo
}

func validSignUp() SignUpInput {
	return SignUpInput{Username: "ashk", Email: "ash@pallet.town", Password: "pikapika"}
}

func TestService_SignUp(t *testing.T) {
	svc, _ := newTestService()

	u, err := svc.SignUp(context.Background(), validSignUp())
	if err != nil {
		t.Fatalf("SignUp error: %v", err)
	}
	if u.ID == "" {
		t.Fatal("expected generated id")
	}
	if u.PasswordHash == "pikapika" || u.PasswordHash == "" {
		t.Fatal("password must be stored hashed")
	}
}

func TestService_SignUp_Validation(t *testing.T) {
	svc, _ := newTestService()

	cases := []struct {
		name string
		in   SignUpInput
	}{
		{"empty username", SignUpInput{Username: "  ", Email: "a@b.c", Password: "secret1"}},
		{"long username", SignUpInput{Username: strings.Repeat("x", 21), Email: "a@b.c", Password: "secret1"}},
		{"email without at", SignUpInput{Username: "ok", Email: "not-an-email", Password: "secret1"}},
		{"long email", SignUpInput{Username: "ok", Email: strings.Repeat("x", 49) + "@b", Password: "secret1"}},
		{"short password", SignUpInput{Username: "ok", Email: "a@b.c", Password: "12345"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.SignUp(context.Background(), tc.in); err != ErrInvalidInput {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestService_SignUp_Duplicates(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.SignUp(context.Background(), validSignUp()); err != nil {
		t.Fatalf("SignUp error: %v", err)
	}

	in := validSignUp()
	in.Email = "other@pallet.town"
	if _, err := svc.SignUp(context.Background(), in); err != ErrUsernameTaken {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}

	in = validSignUp()
	in.Username = "gary"
	if _, err := svc.SignUp(context.Background(), in); err != ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestService_Authenticate(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.SignUp(context.Background(), validSignUp()); err != nil {
		t.Fatalf("SignUp error: %v", err)
	}

	u, err := svc.Authenticate(context.Background(), "ashk", "pikapika")
	if err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}
	if u.Username != "ashk" {
		t.Fatalf("unexpected user: %+v", u)
	}

	// Mismo sentinel para password errónea y usuario inexistente.
	if _, err := svc.Authenticate(context.Background(), "ashk", "wrong-pass"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "nobody", "pikapika"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestService_UpdateProfile_Patch(t *testing.T) {
	svc, _ := newTestService()

	u, _ := svc.SignUp(context.Background(), validSignUp())

	email := "ash@indigo.league"
	got, err := svc.UpdateProfile(context.Background(), u.ID, UpdateProfileInput{Email: &email})
	if err != nil {
		t.Fatalf("UpdateProfile error: %v", err)
	}
	if got.Email != email {
		t.Fatalf("email = %s, want %s", got.Email, email)
	}
	// Campo no enviado queda igual.
	if got.Username != u.Username {
		t.Fatalf("username changed without being patched: %s", got.Username)
	}
}

func TestService_UpdateProfile_TakenUsername(t *testing.T) {
	svc, _ := newTestService()

	_, _ = svc.SignUp(context.Background(), validSignUp())
	other, _ := svc.SignUp(context.Background(), SignUpInput{
		Username: "gary", Email: "gary@pallet.town", Password: "eeveeee",
	})

	taken := "ashk"
	if _, err := svc.UpdateProfile(context.Background(), other.ID, UpdateProfileInput{Username: &taken}); err != ErrUsernameTaken {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}

	// Re-enviar el propio username no es conflicto.
	own := "gary"
	if _, err := svc.UpdateProfile(context.Background(), other.ID, UpdateProfileInput{Username: &own}); err != nil {
		t.Fatalf("self-update error: %v", err)
	}
}

func TestService_SeenSpecies_Idempotent(t *testing.T) {
	svc, _ := newTestService()

	u, _ := svc.SignUp(context.Background(), validSignUp())

	for i := 0; i < 3; i++ {
		if err := svc.AddSeen(context.Background(), u.ID, 25); err != nil {
			t.Fatalf("AddSeen error: %v", err)
		}
	}
	if err := svc.AddSeen(context.Background(), u.ID, 1); err != nil {
		t.Fatalf("AddSeen error: %v", err)
	}

	seen, err := svc.ListSeen(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("ListSeen error: %v", err)
	}
	if len(seen) != 2 {
		t.Fatalf("seen = %v, want exactly two entries", seen)
	}
}

func TestService_Delete(t *testing.T) {
	svc, _ := newTestService()

	u, _ := svc.SignUp(context.Background(), validSignUp())

	if err := svc.Delete(context.Background(), u.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), u.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), u.ID); err != ErrNotFound {
		t.Fatalf("double delete should be ErrNotFound, got %v", err)
	}
}
