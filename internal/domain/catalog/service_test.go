package catalog

import (
	"context"
	"errors"
	"testing"

	"poke-pets/internal/platform/logger"
	"poke-pets/internal/ports/speciesdata"

	"github.com/google/go-cmp/cmp"
)

type testCatalogRepo struct {
	species map[int]Species
	berries map[int]Berry
	types   map[string]TypeProfile

	insertedSpecies int
}

func newTestCatalogRepo() *testCatalogRepo {
	return &testCatalogRepo{
		species: map[int]Species{},
		berries: map[int]Berry{},
		types:   map[string]TypeProfile{},
	}
}

var errRepoNotFound = errors.New("repo: not found")

func (r *testCatalogRepo) CountSpecies(ctx context.Context) (int, error) { return len(r.species), nil }
func (r *testCatalogRepo) CountBerries(ctx context.Context) (int, error) { return len(r.berries), nil }
func (r *testCatalogRepo) CountTypes(ctx context.Context) (int, error)   { return len(r.types), nil }

func (r *testCatalogRepo) InsertSpecies(ctx context.Context, s Species) error {
	if _, ok := r.species[s.ID]; ok {
		return errors.New("repo: species exists")
	}
	r.species[s.ID] = s
	r.insertedSpecies++
	return nil
}

func (r *testCatalogRepo) InsertBerry(ctx context.Context, b Berry) error {
	if _, ok := r.berries[b.ID]; ok {
		return errors.New("repo: berry exists")
	}
	r.berries[b.ID] = b
	return nil
}

func (r *testCatalogRepo) InsertType(ctx context.Context, t TypeProfile) error {
	if _, ok := r.types[t.Name]; ok {
		return errors.New("repo: type exists")
	}
	r.types[t.Name] = t
	return nil
}

func (r *testCatalogRepo) GetSpecies(ctx context.Context, id int) (Species, error) {
	s, ok := r.species[id]
	if !ok {
		return Species{}, errRepoNotFound
	}
	return s, nil
}

func (r *testCatalogRepo) ListSpecies(ctx context.Context) ([]Species, error) {
	out := make([]Species, 0, len(r.species))
	for id := 1; id <= len(r.species); id++ {
		if s, ok := r.species[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *testCatalogRepo) GetBerry(ctx context.Context, id int) (Berry, error) {
	b, ok := r.berries[id]
	if !ok {
		return Berry{}, errRepoNotFound
	}
	return b, nil
}

func (r *testCatalogRepo) ListBerries(ctx context.Context) ([]Berry, error) {
	out := make([]Berry, 0, len(r.berries))
	for id := 1; id <= len(r.berries); id++ {
		if b, ok := r.berries[id]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *testCatalogRepo) GetType(ctx context.Context, name string) (TypeProfile, error) {
	t, ok := r.types[name]
	if !ok {
		return TypeProfile{}, errRepoNotFound
	}
	return t, nil
}

// fakeSource sirve especies sintéticas hasta failAt (0 = nunca falla).
type fakeSource struct {
	failAt  int
	fetched int
}

func (f *fakeSource) Fetch(ctx context.Context, id int) (speciesdata.SpeciesData, error) {
	if f.failAt > 0 && id >= f.failAt {
		return speciesdata.SpeciesData{}, errors.New("upstream down")
	}
	f.fetched++
	return speciesdata.SpeciesData{
		ID:          id,
		Name:        "species-" + string(rune('a'+id-1)),
		SpriteURL:   "https://img.example/species.png",
		PrimaryType: "grass",
	}, nil
}

func quietLogger() logger.Logger {
	return logger.New(logger.Options{Level: logger.Error})
}

func TestService_SeedIfEmpty_SeedsStaticData(t *testing.T) {
	repo := newTestCatalogRepo()
	svc := NewService(repo, quietLogger())

	if err := svc.SeedIfEmpty(context.Background(), SeedOptions{}); err != nil {
		t.Fatalf("seed error: %v", err)
	}

	berries, _ := svc.ListBerries(context.Background())
	if len(berries) != 10 {
		t.Fatalf("berries = %d, want 10", len(berries))
	}
	// Los ids se asignan 1..10 en orden de siembra: el d10 de forrajeo depende de esto.
	for i, b := range berries {
		if b.ID != i+1 {
			t.Fatalf("berry[%d].ID = %d, want %d", i, b.ID, i+1)
		}
	}

	if len(repo.types) != 16 {
		t.Fatalf("types = %d, want 16", len(repo.types))
	}
	tp, err := svc.GetTypeProfile(context.Background(), "grass")
	if err != nil {
		t.Fatalf("GetTypeProfile error: %v", err)
	}
	want := TypeProfile{Name: "grass", FavoriteBerryID: 8, LeastFavoriteBerryID: 9}
	if diff := cmp.Diff(want, tp); diff != "" {
		t.Fatalf("grass profile mismatch (-want +got):\n%s", diff)
	}
}

func TestService_SeedIfEmpty_Idempotent(t *testing.T) {
	repo := newTestCatalogRepo()
	svc := NewService(repo, quietLogger())

	src := &fakeSource{}
	opts := SeedOptions{Species: src, SpeciesMax: 5}

	if err := svc.SeedIfEmpty(context.Background(), opts); err != nil {
		t.Fatalf("first seed error: %v", err)
	}
	if err := svc.SeedIfEmpty(context.Background(), opts); err != nil {
		t.Fatalf("second seed error: %v", err)
	}

	if src.fetched != 5 {
		t.Fatalf("source fetched %d times, want 5 (no refetch on re-run)", src.fetched)
	}
	if repo.insertedSpecies != 5 {
		t.Fatalf("species inserted %d, want 5", repo.insertedSpecies)
	}
	berries, _ := svc.ListBerries(context.Background())
	if len(berries) != 10 {
		t.Fatalf("berries duplicated on re-seed: %d", len(berries))
	}
}

func TestService_SeedIfEmpty_PartialImportTolerated(t *testing.T) {
	repo := newTestCatalogRepo()
	svc := NewService(repo, quietLogger())

	// El source muere en el id 4: arrancamos igual con 3 especies.
	src := &fakeSource{failAt: 4}
	if err := svc.SeedIfEmpty(context.Background(), SeedOptions{Species: src, SpeciesMax: 10}); err != nil {
		t.Fatalf("seed error: %v", err)
	}

	n, _ := repo.CountSpecies(context.Background())
	if n != 3 {
		t.Fatalf("species = %d, want 3 (partial import)", n)
	}
}

func TestService_RandomAdoptables(t *testing.T) {
	repo := newTestCatalogRepo()
	svc := NewService(repo, quietLogger())
	_ = svc.SeedIfEmpty(context.Background(), SeedOptions{Species: &fakeSource{}, SpeciesMax: 6})

	// pick determinista: siempre el primer candidato disponible.
	svc.pick = func(n int) int { return 0 }

	got, err := svc.RandomAdoptables(context.Background(), 3)
	if err != nil {
		t.Fatalf("RandomAdoptables error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}

	seen := map[int]bool{}
	for _, s := range got {
		if seen[s.ID] {
			t.Fatalf("duplicate species %d in adoptables", s.ID)
		}
		seen[s.ID] = true
	}
}

func TestService_RandomAdoptables_FewerThanRequested(t *testing.T) {
	repo := newTestCatalogRepo()
	svc := NewService(repo, quietLogger())
	_ = svc.SeedIfEmpty(context.Background(), SeedOptions{Species: &fakeSource{}, SpeciesMax: 2})

	got, err := svc.RandomAdoptables(context.Background(), 5)
	if err != nil {
		t.Fatalf("RandomAdoptables error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want all available (2)", len(got))
	}

	if _, err := svc.RandomAdoptables(context.Background(), 0); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for count 0, got %v", err)
	}
}
