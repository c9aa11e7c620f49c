package admin

import (
	"context"
	"fmt"
	"net/http"

	"portfolio-backend/internal/domain"
)

// Backend is the server side of a Manager.
type Backend[T domain.Record, P domain.Patch[T]] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, patch P) (*T, error)
	Update(ctx context.Context, id int64, patch P) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// Resource is the typed API for one entity kind.
type Resource[T domain.Record, P domain.Patch[T]] struct {
	client *Client
	path   string
}

func NewResource[T domain.Record, P domain.Patch[T]](c *Client, desc domain.Descriptor[T]) *Resource[T, P] {
	return &Resource[T, P]{client: c, path: "/" + desc.Kind}
}

func Projects(c *Client) *Resource[domain.Project, domain.ProjectPatch] {
	return NewResource[domain.Project, domain.ProjectPatch](c, domain.ProjectDescriptor)
}

func Skills(c *Client) *Resource[domain.Skill, domain.SkillPatch] {
	return NewResource[domain.Skill, domain.SkillPatch](c, domain.SkillDescriptor)
}

func Certificates(c *Client) *Resource[domain.Certificate, domain.CertificatePatch] {
	return NewResource[domain.Certificate, domain.CertificatePatch](c, domain.CertificateDescriptor)
}

func (r *Resource[T, P]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.client.do(ctx, http.MethodGet, r.path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Resource[T, P]) Get(ctx context.Context, id int64) (*T, error) {
	var out T
	if err := r.client.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", r.path, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Resource[T, P]) Create(ctx context.Context, patch P) (*T, error) {
	var out T
	if err := r.client.do(ctx, http.MethodPost, r.path, patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Resource[T, P]) Update(ctx context.Context, id int64, patch P) (*T, error) {
	var out T
	if err := r.client.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", r.path, id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Resource[T, P]) Delete(ctx context.Context, id int64) error {
	return r.client.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", r.path, id), nil, nil)
}
