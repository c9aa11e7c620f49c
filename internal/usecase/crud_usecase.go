package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type crudUsecase[T domain.Record, P domain.Patch[T]] struct {
	desc     domain.Descriptor[T]
	repo     domain.Repository[T]
	validate *validator.Validate
}

// NewCrudUsecase builds the list/get/create/update/delete service for one entity kind.
func NewCrudUsecase[T domain.Record, P domain.Patch[T]](desc domain.Descriptor[T], repo domain.Repository[T], validate *validator.Validate) domain.CrudUsecase[T, P] {
	return &crudUsecase[T, P]{
		desc:     desc,
		repo:     repo,
		validate: validate,
	}
}

func NewProjectUsecase(repo domain.Repository[domain.Project], validate *validator.Validate) domain.ProjectUsecase {
	return NewCrudUsecase[domain.Project, domain.ProjectPatch](domain.ProjectDescriptor, repo, validate)
}

func NewSkillUsecase(repo domain.Repository[domain.Skill], validate *validator.Validate) domain.SkillUsecase {
	return NewCrudUsecase[domain.Skill, domain.SkillPatch](domain.SkillDescriptor, repo, validate)
}

func NewCertificateUsecase(repo domain.Repository[domain.Certificate], validate *validator.Validate) domain.CertificateUsecase {
	return NewCrudUsecase[domain.Certificate, domain.CertificatePatch](domain.CertificateDescriptor, repo, validate)
}

func (u *crudUsecase[T, P]) Descriptor() domain.Descriptor[T] {
	return u.desc
}

func (u *crudUsecase[T, P]) List(ctx context.Context) ([]T, error) {
	records, err := u.repo.List(ctx, u.desc.OrderBy)
	if err != nil {
		return nil, u.persistenceError("list", 0, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func (u *crudUsecase[T, P]) Get(ctx context.Context, id int64) (*T, error) {
	rec, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, u.lookupError("get", id, err)
	}
	return rec, nil
}

func (u *crudUsecase[T, P]) Create(ctx context.Context, patch P) (*T, error) {
	var rec T
	patch.Apply(&rec)
	if err := u.prepareAndValidate(&rec); err != nil {
		return nil, err
	}

	if err := u.repo.Create(ctx, &rec); err != nil {
		return nil, u.persistenceError("create", 0, err)
	}

	u.logWarnings(&rec)
	u.log().Info("Record created", "id", rec.GetID())
	return &rec, nil
}

// Update merges patch into the stored record; fields absent from the patch keep their value.
func (u *crudUsecase[T, P]) Update(ctx context.Context, id int64, patch P) (*T, error) {
	rec, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, u.lookupError("update", id, err)
	}

	patch.Apply(rec)
	if err := u.prepareAndValidate(rec); err != nil {
		return nil, err
	}

	if err := u.repo.Update(ctx, rec); err != nil {
		return nil, u.lookupError("update", id, err)
	}

	u.logWarnings(rec)
	u.log().Info("Record updated", "id", id)
	return rec, nil
}

func (u *crudUsecase[T, P]) Delete(ctx context.Context, id int64) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		return u.lookupError("delete", id, err)
	}
	u.log().Info("Record deleted", "id", id)
	return nil
}

func (u *crudUsecase[T, P]) prepareAndValidate(rec *T) error {
	if u.desc.Prepare != nil {
		u.desc.Prepare(rec)
	}
	return validation.ValidateRecord(u.validate, rec)
}

func (u *crudUsecase[T, P]) logWarnings(rec *T) {
	if u.desc.Warnings == nil {
		return
	}
	for _, w := range u.desc.Warnings(rec) {
		u.log().Warn(w, "id", (*rec).GetID())
	}
}

func (u *crudUsecase[T, P]) lookupError(op string, id int64, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound(fmt.Sprintf("%s not found", u.desc.Name))
	}
	return u.persistenceError(op, id, err)
}

func (u *crudUsecase[T, P]) persistenceError(op string, id int64, err error) error {
	u.log().Error("Persistence failure", "op", op, "id", id, "error", err)
	return apperror.Internal(fmt.Errorf("%s %s: %w", op, u.desc.Kind, err))
}

func (u *crudUsecase[T, P]) log() *slog.Logger {
	return logger.With(u.desc.Kind)
}
