package validation_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/validation"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestValidateRecord_MissingFieldOrder(t *testing.T) {
	v := validation.New()

	err := validation.ValidateRecord(v, &domain.Project{})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Equal(t, "title", appErr.Field)
	assert.Equal(t, "Missing required field: title", appErr.Message)
}

func TestValidateRecord_BlankTags(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name string
		tags pq.StringArray
	}{
		{"nil tags", nil},
		{"empty tags", pq.StringArray{}},
		{"whitespace only", pq.StringArray{"  ", "\t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &domain.Project{Title: "X", Description: "Y", Tags: tt.tags}
			err := validation.ValidateRecord(v, p)
			require.Error(t, err)
			assert.Equal(t, "Missing required field: tags", err.Error())
		})
	}

	t.Run("one real tag is enough", func(t *testing.T) {
		p := &domain.Project{Title: "X", Description: "Y", Tags: pq.StringArray{" ", "Go"}}
		assert.NoError(t, validation.ValidateRecord(v, p))
	})
}

func TestValidateRecord_ProficiencyRange(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name        string
		proficiency *int
		wantErr     string
	}{
		{"lower bound", intPtr(0), ""},
		{"upper bound", intPtr(100), ""},
		{"below range", intPtr(-1), "proficiency must be a number between 0 and 100"},
		{"above range", intPtr(101), "proficiency must be a number between 0 and 100"},
		{"way above", intPtr(105), "proficiency must be a number between 0 and 100"},
		{"missing", nil, "Missing required field: proficiency"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &domain.Skill{Name: "Go", Image: "/x.png", Proficiency: tt.proficiency}
			err := validation.ValidateRecord(v, s)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestFirstViolation_OutOfRangeBounds(t *testing.T) {
	v := validation.New()

	err := v.Struct(&domain.Skill{Name: "Go", Image: "/x.png", Proficiency: intPtr(101)})
	violation, ok := validation.FirstViolation(err)
	require.True(t, ok)
	assert.Equal(t, validation.Violation{Kind: validation.OutOfRange, Field: "proficiency", Min: 0, Max: 100}, violation)
}

func TestValidateRecord_CertificateStrictImage(t *testing.T) {
	v := validation.New()

	c := &domain.Certificate{Title: "X", Issuer: "Y", Date: "2024"}
	err := validation.ValidateRecord(v, c)
	require.Error(t, err)
	assert.Equal(t, "Missing required field: image", err.Error())

	c.Image = "/c.png"
	assert.NoError(t, validation.ValidateRecord(v, c))
}

func TestFromDecodeError(t *testing.T) {
	t.Run("non-numeric proficiency is out of range", func(t *testing.T) {
		var patch domain.SkillPatch
		decodeErr := json.Unmarshal([]byte(`{"name":"Go","proficiency":"high"}`), &patch)
		require.Error(t, decodeErr)

		err := validation.FromDecodeError(decodeErr, &patch)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.KindValidation, appErr.Kind)
		assert.Equal(t, "proficiency", appErr.Field)
		assert.Equal(t, "proficiency must be a number between 0 and 100", appErr.Message)
	})

	t.Run("type mismatch without range rule", func(t *testing.T) {
		var patch domain.ProjectPatch
		decodeErr := json.Unmarshal([]byte(`{"title":42}`), &patch)
		require.Error(t, decodeErr)

		err := validation.FromDecodeError(decodeErr, &patch)
		assert.Equal(t, "Invalid value for field: title", err.Error())
	})

	t.Run("syntax error", func(t *testing.T) {
		var patch domain.ProjectPatch
		decodeErr := json.Unmarshal([]byte(`{"title":`), &patch)
		require.Error(t, decodeErr)

		err := validation.FromDecodeError(decodeErr, &patch)
		assert.True(t, apperror.Is(err, apperror.KindBadRequest))
	})
}
