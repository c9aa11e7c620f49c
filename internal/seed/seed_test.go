package seed_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/seed"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memRepo is an in-memory store; setID plays the serial column.
type memRepo[T domain.Record] struct {
	rows   map[int64]T
	next   int64
	setID  func(*T, int64)
	failOn error
}

func newMemRepo[T domain.Record](setID func(*T, int64)) *memRepo[T] {
	return &memRepo[T]{rows: map[int64]T{}, setID: setID}
}

func (r *memRepo[T]) List(_ context.Context, _ string) ([]T, error) {
	if r.failOn != nil {
		return nil, r.failOn
	}
	ids := make([]int64, 0, len(r.rows))
	for id := range r.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.rows[id])
	}
	return out, nil
}

func (r *memRepo[T]) GetByID(_ context.Context, id int64) (*T, error) {
	rec, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &rec, nil
}

func (r *memRepo[T]) Create(_ context.Context, rec *T) error {
	if r.failOn != nil {
		return r.failOn
	}
	r.next++
	r.setID(rec, r.next)
	r.rows[r.next] = *rec
	return nil
}

func (r *memRepo[T]) Update(_ context.Context, rec *T) error {
	id := (*rec).GetID()
	if _, ok := r.rows[id]; !ok {
		return domain.ErrNotFound
	}
	r.rows[id] = *rec
	return nil
}

func (r *memRepo[T]) Delete(_ context.Context, id int64) error {
	if _, ok := r.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

type stores struct {
	projects     *memRepo[domain.Project]
	skills       *memRepo[domain.Skill]
	certificates *memRepo[domain.Certificate]
}

func newSeeder() (*seed.Seeder, stores) {
	v := validation.New()
	st := stores{
		projects:     newMemRepo(func(p *domain.Project, id int64) { p.ID = id }),
		skills:       newMemRepo(func(s *domain.Skill, id int64) { s.ID = id }),
		certificates: newMemRepo(func(c *domain.Certificate, id int64) { c.ID = id }),
	}
	return &seed.Seeder{
		Projects:     usecase.NewProjectUsecase(st.projects, v),
		Skills:       usecase.NewSkillUsecase(st.skills, v),
		Certificates: usecase.NewCertificateUsecase(st.certificates, v),
	}, st
}

func TestLoadFile(t *testing.T) {
	fx, err := seed.LoadFile("testdata/seeds.yaml")
	require.NoError(t, err)

	require.Len(t, fx.Projects, 2)
	require.Len(t, fx.Skills, 2)
	require.Len(t, fx.Certificates, 1)

	assert.Equal(t, "Portfolio Backend", *fx.Projects[0].Title)
	assert.Equal(t, []string{"go", "gin", "postgres"}, fx.Projects[0].Tags)
	assert.Equal(t, 90, *fx.Skills[0].Proficiency)
	assert.Nil(t, fx.Skills[0].Category)
	assert.Equal(t, "https://example.com/cred/123", *fx.Certificates[0].CredentialURL)
}

func TestLoad_UnknownField(t *testing.T) {
	_, err := seed.Load(strings.NewReader("skills:\n  - name: Go\n    level: 3\n"))
	assert.Error(t, err)
}

func TestLoad_Empty(t *testing.T) {
	fx, err := seed.Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, fx.Projects)
}

func TestSeeder_Run(t *testing.T) {
	s, st := newSeeder()
	fx, err := seed.LoadFile("testdata/seeds.yaml")
	require.NoError(t, err)

	var results []seed.Result
	sum, err := s.Run(context.Background(), fx, false, func(r seed.Result) {
		results = append(results, r)
	})
	require.NoError(t, err)

	assert.Equal(t, seed.Summary{Created: 4, Failed: 1}, sum)
	assert.Len(t, results, 5)

	// The project with an empty description is skipped, the rest go through.
	assert.Equal(t, "projects", results[1].Kind)
	assert.Equal(t, 2, results[1].Index)
	assert.Error(t, results[1].Err)

	assert.Len(t, st.projects.rows, 1)
	assert.Len(t, st.skills.rows, 2)
	assert.Equal(t, domain.CategoryTechnical, st.skills.rows[1].Category)
	assert.Equal(t, domain.CategorySoft, st.skills.rows[2].Category)
	assert.Len(t, st.certificates.rows, 1)
}

func TestSeeder_Run_Reset(t *testing.T) {
	s, st := newSeeder()
	ctx := context.Background()

	name, image, prof := "Old", "/old.png", 10
	_, err := s.Skills.Create(ctx, domain.SkillPatch{Name: &name, Image: &image, Proficiency: &prof})
	require.NoError(t, err)
	title, issuer, date := "Kept", "Someone", "2020"
	_, err = s.Certificates.Create(ctx, domain.CertificatePatch{Title: &title, Issuer: &issuer, Date: &date, Image: &image})
	require.NoError(t, err)

	fx, err := seed.Load(strings.NewReader("skills:\n  - name: Go\n    image: /go.png\n    proficiency: 90\n"))
	require.NoError(t, err)

	sum, err := s.Run(ctx, fx, true, nil)
	require.NoError(t, err)
	assert.Equal(t, seed.Summary{Deleted: 1, Created: 1}, sum)

	require.Len(t, st.skills.rows, 1)
	for _, sk := range st.skills.rows {
		assert.Equal(t, "Go", sk.Name)
	}
	// Kinds absent from the file are left alone.
	assert.Len(t, st.certificates.rows, 1)
}

func TestSeeder_Run_StoreFailureAborts(t *testing.T) {
	s, st := newSeeder()
	st.skills.failOn = errors.New("connection refused")

	fx, err := seed.Load(strings.NewReader("skills:\n  - name: Go\n    image: /go.png\n    proficiency: 90\n"))
	require.NoError(t, err)

	_, err = s.Run(context.Background(), fx, false, nil)
	assert.Error(t, err)
}
