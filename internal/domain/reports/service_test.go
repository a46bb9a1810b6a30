package reports

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

// fakeRepo es un Repository en memoria con fallas inyectables.
type fakeRepo struct {
	reports     []Report
	initialized bool

	loadErr error
	saveErr error

	saveCalls int
}

func (f *fakeRepo) LoadAll(ctx context.Context) ([]Report, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	out := make([]Report, len(f.reports))
	copy(out, f.reports)
	return out, nil
}

func (f *fakeRepo) SaveAll(ctx context.Context, rs []Report) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saveCalls++
	f.reports = make([]Report, len(rs))
	copy(f.reports, rs)
	return nil
}

func (f *fakeRepo) Initialized(ctx context.Context) (bool, error) { return f.initialized, nil }
func (f *fakeRepo) MarkInitialized(ctx context.Context) error     { f.initialized = true; return nil }

func newTestService(repo Repository) *Service {
	svc := NewService(repo, nil, nil)
	svc.now = func() time.Time { return time.Date(2025, 12, 22, 12, 0, 0, 0, time.UTC) }
	n := 0
	svc.newID = func() string { n++; return fmt.Sprintf("test-%d", n) }
	return svc
}

func TestList_SeedsOnFirstAccess(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)
	ctx := context.Background()

	got := svc.List(ctx)
	if len(got) != len(seedCatalog) {
		t.Fatalf("expected %d seeded reports, got %d", len(seedCatalog), len(got))
	}
	if !repo.initialized {
		t.Fatal("expected repo marked initialized after seeding")
	}

	// Llamadas repetidas no duplican.
	for i := 0; i < 3; i++ {
		if got := svc.List(ctx); len(got) != len(seedCatalog) {
			t.Fatalf("call %d: expected %d reports, got %d", i, len(seedCatalog), len(got))
		}
	}
}

func TestList_DeletedSeedIsNotResurrected(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)
	ctx := context.Background()

	svc.List(ctx)
	if err := svc.Delete(ctx, "1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	got := svc.List(ctx)
	if len(got) != len(seedCatalog)-1 {
		t.Fatalf("expected %d reports after delete, got %d", len(seedCatalog)-1, len(got))
	}
	for _, r := range got {
		if r.ID == "1" {
			t.Fatal("deleted seed report came back")
		}
	}
}

func TestList_AugmentsInitializedStoreOnce(t *testing.T) {
	// Store ya inicializado desde antes de la tanda de aumento: existe solo
	// una fila propia y el flag está puesto.
	repo := &fakeRepo{
		initialized: true,
		reports:     []Report{{ID: "own-1", PetType: PetTypeDog, Name: "Rex"}},
	}
	svc := newTestService(repo)
	ctx := context.Background()

	got := svc.List(ctx)
	if len(got) != 1+len(augmentIDs) {
		t.Fatalf("expected %d reports after augmentation, got %d", 1+len(augmentIDs), len(got))
	}

	// Segunda pasada: no anexa de nuevo.
	if got := svc.List(ctx); len(got) != 1+len(augmentIDs) {
		t.Fatalf("augmentation ran twice: got %d reports", len(got))
	}

	// Borrar una de las filas de aumento tampoco dispara re-anexado,
	// mientras quede alguna otra.
	if err := svc.Delete(ctx, "23"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := svc.List(ctx); len(got) != len(augmentIDs) {
		t.Fatalf("expected %d reports after deleting one augment row, got %d", len(augmentIDs), len(got))
	}
}

func TestList_StorageFailureServesEmpty(t *testing.T) {
	repo := &fakeRepo{loadErr: errors.New("boom")}
	svc := newTestService(repo)

	got := svc.List(context.Background())
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list on storage failure, got %v", got)
	}
}

func validInput() CreateInput {
	lat, lng := -16.5, -68.12
	return CreateInput{
		PetType:         "cat",
		Name:            "Michito",
		Characteristics: "Gato naranja con chompa roja",
		Address:         "Sopocachi",
		Latitude:        &lat,
		Longitude:       &lng,
		LostDate:        "2025-12-14",
		Hour:            3,
		Minute:          30,
		Period:          "PM",
		ImageURIs:       []string{"https://example.com/michito.jpg"},
	}
}

func TestAdd_PersistsAndReturnsReport(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)
	ctx := context.Background()

	r, err := svc.Add(ctx, validInput())
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if r.ID == "" {
		t.Fatal("expected generated id")
	}
	if want := time.Date(2025, 12, 14, 15, 30, 0, 0, time.UTC); !r.LostAt.Equal(want) {
		t.Fatalf("lostAt: got %v, want %v", r.LostAt, want)
	}

	// Read-after-write: aparece en el listado junto a la siembra.
	got := svc.List(ctx)
	if len(got) != len(seedCatalog)+1 {
		t.Fatalf("expected %d reports, got %d", len(seedCatalog)+1, len(got))
	}
	found := false
	for _, p := range got {
		if p.ID == r.ID {
			found = true
		}
	}
	if !found {
		t.Fatal("new report missing from list")
	}
}

func TestAdd_Validation(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*CreateInput)
	}{
		{"tipo inválido", func(in *CreateInput) { in.PetType = "bird" }},
		{"nombre vacío", func(in *CreateInput) { in.Name = "   " }},
		{"características vacías", func(in *CreateInput) { in.Characteristics = "" }},
		{"demasiadas fotos", func(in *CreateInput) { in.ImageURIs = []string{"a", "b", "c", "d"} }},
		{"fecha faltante", func(in *CreateInput) { in.LostDate = "" }},
		{"fecha inválida", func(in *CreateInput) { in.LostDate = "14/12/2025" }},
		{"hora fuera de rango", func(in *CreateInput) { in.Hour = 13 }},
		{"minuto fuera de rango", func(in *CreateInput) { in.Minute = 60 }},
		{"periodo inválido", func(in *CreateInput) { in.Period = "XX" }},
	}

	for _, c := range cases {
		in := validInput()
		c.mutate(&in)
		if _, err := svc.Add(ctx, in); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", c.name, err)
		}
	}
	if len(repo.reports) != 0 {
		t.Fatalf("rejected inputs must not persist, repo has %d reports", len(repo.reports))
	}
}

func TestAdd_WriteFailurePropagates(t *testing.T) {
	repo := &fakeRepo{saveErr: errors.New("disk full")}
	svc := newTestService(repo)

	if _, err := svc.Add(context.Background(), validInput()); err == nil {
		t.Fatal("expected write error to propagate")
	}
}

func TestDelete_MissingIDIsNoop(t *testing.T) {
	repo := &fakeRepo{initialized: true, reports: seedReports(time.Now(), augmentIDs)}
	svc := newTestService(repo)
	ctx := context.Background()

	before := repo.saveCalls
	if err := svc.Delete(ctx, "no-such-id"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if repo.saveCalls != before {
		t.Fatal("noop delete should not rewrite storage")
	}
}

func TestComposeLostAt_TwelveHourClock(t *testing.T) {
	cases := []struct {
		hour   int
		period string
		want   int // hora 0-23
	}{
		{12, "AM", 0},
		{1, "AM", 1},
		{11, "AM", 11},
		{12, "PM", 12},
		{1, "PM", 13},
		{11, "PM", 23},
	}

	for _, c := range cases {
		got, err := composeLostAt("2025-12-14", c.hour, 0, c.period)
		if err != nil {
			t.Fatalf("%d %s: %v", c.hour, c.period, err)
		}
		if got.Hour() != c.want {
			t.Errorf("%d %s: got hour %d, want %d", c.hour, c.period, got.Hour(), c.want)
		}
	}
}

func TestToDisplay_Michito(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	lat, lng := -16.504, -68.123
	lost := time.Date(2025, 12, 14, 10, 0, 0, 0, time.UTC) // 8 días antes del reloj fijo
	r := Report{
		ID:              "m-1",
		PetType:         PetTypeCat,
		Name:            "Michito",
		Characteristics: "Gato naranja",
		Address:         "Sopocachi, Av. Arce",
		Latitude:        &lat,
		Longitude:       &lng,
		LostAt:          lost,
		ImageURIs:       []string{"https://example.com/1.jpg", "https://example.com/2.jpg"},
	}

	d := svc.ToDisplay(r)
	if d.TimeLost != "1 semana" {
		t.Fatalf("timeLost: got %q, want \"1 semana\"", d.TimeLost)
	}
	if d.Zone != "Sopocachi, Av. Arce" {
		t.Fatalf("zone: got %q", d.Zone)
	}
	if d.ImageURL != "https://example.com/1.jpg" || len(d.ImageURLs) != 2 {
		t.Fatalf("images: got %q / %v", d.ImageURL, d.ImageURLs)
	}
}

func TestToDisplay_ZoneFallbacks(t *testing.T) {
	svc := newTestService(&fakeRepo{})
	lat, lng := -16.50351, -68.12263

	withCoords := svc.ToDisplay(Report{Latitude: &lat, Longitude: &lng, LostAt: svc.now()})
	if withCoords.Zone != "Lat: -16.5035, Lng: -68.1226" {
		t.Fatalf("synthesized zone: got %q", withCoords.Zone)
	}

	bare := svc.ToDisplay(Report{LostAt: svc.now()})
	if bare.Zone != "Ubicación no especificada" {
		t.Fatalf("placeholder zone: got %q", bare.Zone)
	}
}
