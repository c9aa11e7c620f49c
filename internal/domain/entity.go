package domain

import (
	"context"
	"errors"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Record is implemented by every persisted entity kind.
type Record interface {
	GetID() int64
}

// Patch carries the fields submitted in a create or update body.
// Nil fields are absent and leave the target untouched.
type Patch[T Record] interface {
	Apply(dst *T)
	// BodyID returns the id sent in the body, for PUT /api/<kind> without a path id.
	BodyID() *int64
}

// Descriptor parameterises the generic CRUD service for one entity kind.
type Descriptor[T Record] struct {
	// Kind is the plural URL segment, e.g. "projects".
	Kind string
	// Name is the singular display name used in messages, e.g. "Project".
	Name string
	// OrderBy is the fixed SQL ordering used by List.
	OrderBy string
	// Prepare fills defaults and normalises the record before validation.
	Prepare func(*T)
	// Warnings lists non-fatal issues worth logging after a write.
	Warnings func(*T) []string
}

type Repository[T Record] interface {
	List(ctx context.Context, orderBy string) ([]T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, rec *T) error
	Update(ctx context.Context, rec *T) error
	Delete(ctx context.Context, id int64) error
}

type CrudUsecase[T Record, P Patch[T]] interface {
	Descriptor() Descriptor[T]
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, patch P) (*T, error)
	Update(ctx context.Context, id int64, patch P) (*T, error)
	Delete(ctx context.Context, id int64) error
}

type (
	ProjectUsecase     = CrudUsecase[Project, ProjectPatch]
	SkillUsecase       = CrudUsecase[Skill, SkillPatch]
	CertificateUsecase = CrudUsecase[Certificate, CertificatePatch]
)

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
