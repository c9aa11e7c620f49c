package usecase_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepo is a testify mock for any entity repository.
type MockRepo[T domain.Record] struct {
	mock.Mock
}

func (m *MockRepo[T]) List(ctx context.Context, orderBy string) ([]T, error) {
	args := m.Called(ctx, orderBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockRepo[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockRepo[T]) Create(ctx context.Context, rec *T) error {
	return m.Called(ctx, rec).Error(0)
}

func (m *MockRepo[T]) Update(ctx context.Context, rec *T) error {
	return m.Called(ctx, rec).Error(0)
}

func (m *MockRepo[T]) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// memProjects keeps projects in a map and assigns ids like a serial column.
type memProjects struct {
	mu   sync.Mutex
	next int64
	rows map[int64]domain.Project
}

func newMemProjects() *memProjects {
	return &memProjects{rows: map[int64]domain.Project{}}
}

func (r *memProjects) List(_ context.Context, _ string) ([]domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Project, 0, len(r.rows))
	for _, p := range r.rows {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memProjects) GetByID(_ context.Context, id int64) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (r *memProjects) Create(_ context.Context, p *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	p.ID = r.next
	r.rows[p.ID] = *p
	return nil
}

func (r *memProjects) Update(_ context.Context, p *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.rows[p.ID] = *p
	return nil
}

func (r *memProjects) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestProjectUsecase_RoundTrip(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewProjectUsecase(newMemProjects(), validation.New())

	created, err := uc.Create(ctx, domain.ProjectPatch{
		Title:       strPtr("Portfolio"),
		Description: strPtr("My site"),
		Tags:        []string{"go", " ", "gin "},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, []string{"go", "gin"}, []string(created.Tags))
	assert.Equal(t, domain.DefaultProjectColor, created.Color)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Portfolio", list[0].Title)

	t.Run("partial update keeps absent fields", func(t *testing.T) {
		updated, err := uc.Update(ctx, created.ID, domain.ProjectPatch{Live: strPtr("https://example.dev")})
		require.NoError(t, err)
		assert.Equal(t, "Portfolio", updated.Title)
		assert.Equal(t, "https://example.dev", updated.Live)
		assert.Equal(t, domain.DefaultProjectColor, updated.Color)
	})

	t.Run("delete then get is not found", func(t *testing.T) {
		require.NoError(t, uc.Delete(ctx, created.ID))

		_, err := uc.Get(ctx, created.ID)
		assert.True(t, apperror.Is(err, apperror.KindNotFound))
		assert.EqualError(t, err, "Project not found")

		err = uc.Delete(ctx, created.ID)
		assert.True(t, apperror.Is(err, apperror.KindNotFound))

		list, err := uc.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)
		assert.NotNil(t, list)
	})
}

func TestProjectUsecase_ValidationDoesNotWrite(t *testing.T) {
	repo := new(MockRepo[domain.Project])
	uc := usecase.NewProjectUsecase(repo, validation.New())

	_, err := uc.Create(context.Background(), domain.ProjectPatch{
		Title: strPtr("No description"),
		Tags:  []string{"go"},
	})

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Equal(t, "description", appErr.Field)
	assert.Equal(t, "Missing required field: description", appErr.Message)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProjectUsecase_BlankTagsRejected(t *testing.T) {
	repo := new(MockRepo[domain.Project])
	uc := usecase.NewProjectUsecase(repo, validation.New())

	_, err := uc.Create(context.Background(), domain.ProjectPatch{
		Title:       strPtr("T"),
		Description: strPtr("D"),
		Tags:        []string{" ", ""},
	})
	assert.EqualError(t, err, "Missing required field: tags")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSkillUsecase_Proficiency(t *testing.T) {
	ctx := context.Background()

	t.Run("out of range is rejected before persistence", func(t *testing.T) {
		repo := new(MockRepo[domain.Skill])
		uc := usecase.NewSkillUsecase(repo, validation.New())

		_, err := uc.Create(ctx, domain.SkillPatch{
			Name:        strPtr("Go"),
			Image:       strPtr("/go.png"),
			Proficiency: intPtr(105),
		})
		assert.EqualError(t, err, "proficiency must be a number between 0 and 100")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("zero is a valid proficiency and category defaults", func(t *testing.T) {
		repo := new(MockRepo[domain.Skill])
		uc := usecase.NewSkillUsecase(repo, validation.New())
		repo.On("Create", ctx, mock.AnythingOfType("*domain.Skill")).Return(nil).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Skill).ID = 7
		})

		skill, err := uc.Create(ctx, domain.SkillPatch{
			Name:        strPtr("Go"),
			Image:       strPtr("/go.png"),
			Proficiency: intPtr(0),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(7), skill.ID)
		assert.Equal(t, 0, *skill.Proficiency)
		assert.Equal(t, domain.CategoryTechnical, skill.Category)
		repo.AssertExpectations(t)
	})

	t.Run("update merges and revalidates", func(t *testing.T) {
		repo := new(MockRepo[domain.Skill])
		uc := usecase.NewSkillUsecase(repo, validation.New())
		stored := &domain.Skill{ID: 3, Name: "Go", Image: "/go.png", Proficiency: intPtr(80), Category: "technical"}
		repo.On("GetByID", ctx, int64(3)).Return(stored, nil)

		_, err := uc.Update(ctx, 3, domain.SkillPatch{Proficiency: intPtr(101)})
		assert.True(t, apperror.Is(err, apperror.KindValidation))
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestCertificateUsecase_ImageRequired(t *testing.T) {
	repo := new(MockRepo[domain.Certificate])
	uc := usecase.NewCertificateUsecase(repo, validation.New())

	_, err := uc.Create(context.Background(), domain.CertificatePatch{
		Title:  strPtr("Cloud"),
		Issuer: strPtr("AWS"),
		Date:   strPtr("2024"),
	})
	assert.EqualError(t, err, "Missing required field: image")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCrudUsecase_NotFoundAndPersistence(t *testing.T) {
	ctx := context.Background()

	t.Run("update unknown id", func(t *testing.T) {
		repo := new(MockRepo[domain.Certificate])
		uc := usecase.NewCertificateUsecase(repo, validation.New())
		repo.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrNotFound)

		_, err := uc.Update(ctx, 99, domain.CertificatePatch{Title: strPtr("x")})
		assert.EqualError(t, err, "Certificate not found")
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("list failure is internal and hides the cause", func(t *testing.T) {
		repo := new(MockRepo[domain.Skill])
		uc := usecase.NewSkillUsecase(repo, validation.New())
		repo.On("List", ctx, domain.SkillDescriptor.OrderBy).Return(nil, errors.New("connection reset"))

		_, err := uc.List(ctx)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.KindPersistence, appErr.Kind)
		assert.Equal(t, "Internal Server Error", appErr.Message)
	})

	t.Run("list of nothing is an empty slice", func(t *testing.T) {
		repo := new(MockRepo[domain.Certificate])
		uc := usecase.NewCertificateUsecase(repo, validation.New())
		repo.On("List", ctx, "date DESC, id DESC").Return(nil, nil)

		list, err := uc.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})
}
