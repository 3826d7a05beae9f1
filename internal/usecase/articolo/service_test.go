package articolo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vincibusa/allfoodgest/internal/domain/entity"
	"github.com/vincibusa/allfoodgest/internal/repository"
)

type stubRepo struct {
	articoli map[int64]*entity.Articolo
	nextID   int64
	err      error
}

func newStubRepo(articoli ...*entity.Articolo) *stubRepo {
	r := &stubRepo{articoli: map[int64]*entity.Articolo{}, nextID: 1}
	for _, a := range articoli {
		r.articoli[a.ID] = a
		if a.ID >= r.nextID {
			r.nextID = a.ID + 1
		}
	}
	return r
}

func (r *stubRepo) List(_ context.Context, _ repository.ArticoloFilters) ([]*entity.Articolo, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*entity.Articolo, 0, len(r.articoli))
	for _, a := range r.articoli {
		out = append(out, a)
	}
	return out, nil
}

func (r *stubRepo) Get(_ context.Context, id int64) (*entity.Articolo, error) {
	if r.err != nil {
		return nil, r.err
	}
	a, ok := r.articoli[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (r *stubRepo) Create(_ context.Context, a *entity.Articolo) error {
	if r.err != nil {
		return r.err
	}
	a.ID = r.nextID
	r.nextID++
	copied := *a
	r.articoli[a.ID] = &copied
	return nil
}

func (r *stubRepo) Update(_ context.Context, a *entity.Articolo) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.articoli[a.ID]; !ok {
		return &entity.NotFoundError{Entity: "articolo", ID: a.ID}
	}
	copied := *a
	r.articoli[a.ID] = &copied
	return nil
}

func (r *stubRepo) Delete(_ context.Context, id int64) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.articoli[id]; !ok {
		return &entity.NotFoundError{Entity: "articolo", ID: id}
	}
	delete(r.articoli, id)
	return nil
}

func (r *stubRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.articoli)), r.err
}

func (r *stubRepo) CountPubblicati(_ context.Context) (int64, error) {
	var n int64
	for _, a := range r.articoli {
		if a.Pubblicato {
			n++
		}
	}
	return n, r.err
}

func validInput() CreateInput {
	return CreateInput{
		Titolo:    "Titolo",
		Contenuto: "Contenuto",
		Autore:    "Autore",
		Categoria: "Cultura",
	}
}

func TestCreate_AssignsIDAndTimestamps(t *testing.T) {
	repo := newStubRepo()
	svc := &Service{Repo: repo}

	got, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if got.ID == 0 {
		t.Fatal("ID not assigned")
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Fatal("timestamps not defaulted")
	}

	stored, err := svc.Get(context.Background(), got.ID)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if *stored != *got {
		t.Fatalf("Get returned %+v, want %+v", stored, got)
	}
}

func TestCreate_KeepsCallerTimestamps(t *testing.T) {
	repo := newStubRepo()
	svc := &Service{Repo: repo}

	past := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	in := validInput()
	in.CreatedAt = past
	in.UpdatedAt = past

	got, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if !got.CreatedAt.Equal(past) || !got.UpdatedAt.Equal(past) {
		t.Fatalf("caller timestamps overwritten: %+v", got)
	}
}

func TestCreate_ValidationFailureDoesNotPersist(t *testing.T) {
	repo := newStubRepo()
	svc := &Service{Repo: repo}

	in := validInput()
	in.Contenuto = "  "

	_, err := svc.Create(context.Background(), in)

	var validation *entity.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("err=%v, want ValidationError", err)
	}
	if len(repo.articoli) != 0 {
		t.Fatal("invalid article was persisted")
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := &Service{Repo: newStubRepo()}

	_, err := svc.Get(context.Background(), 99)

	var notFound *entity.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err=%v, want NotFoundError", err)
	}
}

func TestUpdate_PartialMergeForcesUpdatedAt(t *testing.T) {
	old := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	existing := &entity.Articolo{
		ID: 1, Titolo: "Vecchio", Contenuto: "testo", Autore: "a",
		Categoria: "Sport", Pubblicato: false, CreatedAt: old, UpdatedAt: old,
	}
	svc := &Service{Repo: newStubRepo(existing)}

	titolo := "Nuovo"
	got, err := svc.Update(context.Background(), 1, UpdateInput{Titolo: &titolo})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}

	if got.Titolo != "Nuovo" {
		t.Fatalf("Titolo=%q", got.Titolo)
	}
	if got.Contenuto != "testo" || got.Categoria != "Sport" {
		t.Fatalf("untouched fields changed: %+v", got)
	}
	if !got.UpdatedAt.After(old) {
		t.Fatal("UpdatedAt not refreshed server-side")
	}
	if !got.CreatedAt.Equal(old) {
		t.Fatal("CreatedAt must not change on update")
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc := &Service{Repo: newStubRepo()}

	titolo := "x"
	_, err := svc.Update(context.Background(), 42, UpdateInput{Titolo: &titolo})

	var notFound *entity.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err=%v, want NotFoundError", err)
	}
}

func TestSetPubblicato_Idempotent(t *testing.T) {
	existing := &entity.Articolo{
		ID: 1, Titolo: "t", Contenuto: "c", Autore: "a", Categoria: "Sport",
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	svc := &Service{Repo: newStubRepo(existing)}

	first, err := svc.SetPubblicato(context.Background(), 1, true)
	if err != nil || !first.Pubblicato {
		t.Fatalf("first toggle=(%+v, %v)", first, err)
	}

	second, err := svc.SetPubblicato(context.Background(), 1, true)
	if err != nil || !second.Pubblicato {
		t.Fatalf("second toggle=(%+v, %v)", second, err)
	}
}

func TestDelete_SecondDeleteReportsNotFound(t *testing.T) {
	existing := &entity.Articolo{
		ID: 1, Titolo: "t", Contenuto: "c", Autore: "a", Categoria: "Sport",
	}
	svc := &Service{Repo: newStubRepo(existing)}

	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("first delete err=%v", err)
	}

	err := svc.Delete(context.Background(), 1)
	var notFound *entity.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("second delete err=%v, want NotFoundError", err)
	}

	_, err = svc.Get(context.Background(), 1)
	if !errors.As(err, &notFound) {
		t.Fatalf("Get after delete err=%v, want NotFoundError", err)
	}
}

func TestList_UpstreamErrorWrapped(t *testing.T) {
	repo := newStubRepo()
	repo.err = errors.New("connection reset by peer")
	svc := &Service{Repo: repo}

	_, err := svc.List(context.Background(), repository.ArticoloFilters{})

	var upstream *entity.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("err=%v, want UpstreamError", err)
	}
	if upstream.Error() != "connection reset by peer" {
		t.Fatalf("upstream message altered: %q", upstream.Error())
	}
}

func TestUpdate_RejectsEmptyTitolo(t *testing.T) {
	repo := newStubRepo(&entity.Articolo{
		ID: 1, Titolo: "valido", Contenuto: "c", Autore: "a", Categoria: "k",
		CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC(),
	})
	svc := &Service{Repo: repo}

	vuoto := ""
	_, err := svc.Update(context.Background(), 1, UpdateInput{Titolo: &vuoto})

	var validation *entity.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("err=%v, want ValidationError", err)
	}
	if got, _ := repo.Get(context.Background(), 1); got.Titolo != "valido" {
		t.Fatal("invalid update persisted")
	}
}
