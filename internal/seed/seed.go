package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/logger"

	"gopkg.in/yaml.v3"
)

// Fixtures is the YAML seed file: one list per entity kind, in patch form.
type Fixtures struct {
	Projects     []domain.ProjectPatch     `yaml:"projects"`
	Skills       []domain.SkillPatch       `yaml:"skills"`
	Certificates []domain.CertificatePatch `yaml:"certificates"`
}

// Load decodes fixtures, rejecting keys the entities do not have.
func Load(r io.Reader) (*Fixtures, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var fx Fixtures
	if err := dec.Decode(&fx); err != nil {
		if errors.Is(err, io.EOF) {
			return &fx, nil
		}
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	return &fx, nil
}

func LoadFile(path string) (*Fixtures, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Result reports the outcome of one fixture record.
type Result struct {
	Kind  string
	Index int
	ID    int64
	Err   error
}

// Summary counts what a run did.
type Summary struct {
	Deleted int
	Created int
	Failed  int
}

type Seeder struct {
	Projects     domain.ProjectUsecase
	Skills       domain.SkillUsecase
	Certificates domain.CertificateUsecase
}

// Run creates every fixture through the usecases so defaults and validation apply.
// A record that fails is reported and skipped. With reset, the existing rows of
// each kind present in fx are deleted first.
func (s *Seeder) Run(ctx context.Context, fx *Fixtures, reset bool, report func(Result)) (Summary, error) {
	if report == nil {
		report = func(Result) {}
	}

	var sum Summary
	if err := seedKind(ctx, s.Projects, fx.Projects, reset, report, &sum); err != nil {
		return sum, err
	}
	if err := seedKind(ctx, s.Skills, fx.Skills, reset, report, &sum); err != nil {
		return sum, err
	}
	if err := seedKind(ctx, s.Certificates, fx.Certificates, reset, report, &sum); err != nil {
		return sum, err
	}

	logger.Log.Info("Seed finished", "deleted", sum.Deleted, "created", sum.Created, "failed", sum.Failed)
	return sum, nil
}

func seedKind[T domain.Record, P domain.Patch[T]](ctx context.Context, uc domain.CrudUsecase[T, P], patches []P, reset bool, report func(Result), sum *Summary) error {
	if len(patches) == 0 {
		return nil
	}
	kind := uc.Descriptor().Kind

	if reset {
		existing, err := uc.List(ctx)
		if err != nil {
			return fmt.Errorf("list %s: %w", kind, err)
		}
		for _, rec := range existing {
			if err := uc.Delete(ctx, rec.GetID()); err != nil && !apperror.Is(err, apperror.KindNotFound) {
				return fmt.Errorf("reset %s: %w", kind, err)
			}
			sum.Deleted++
		}
	}

	for i, patch := range patches {
		rec, err := uc.Create(ctx, patch)
		if err != nil {
			// Store failures abort; a bad fixture only skips itself
			if apperror.Is(err, apperror.KindPersistence) {
				return fmt.Errorf("create %s #%d: %w", kind, i+1, err)
			}
			sum.Failed++
			report(Result{Kind: kind, Index: i + 1, Err: err})
			continue
		}
		sum.Created++
		report(Result{Kind: kind, Index: i + 1, ID: (*rec).GetID()})
	}
	return nil
}
