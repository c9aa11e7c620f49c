package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"portfolio-backend/internal/admin"
	"portfolio-backend/internal/domain"
)

// section is one tab of the dashboard.
type section interface {
	Title() string
	Rows() []string
	IDAt(i int) (int64, bool)
	FieldLabels() []string
	FormValues() []string
	ApplyInputs(values []string) error

	State() admin.State
	Err() error
	Notice() string
	ClearStatus()
	EditingID() int64
	PendingDelete() int64
	Load(ctx context.Context) error
	Edit(id int64) error
	New() error
	Submit(ctx context.Context) error
	RequestDelete(id int64) error
	ConfirmDelete(ctx context.Context) error
	CancelDelete()
}

type field[P any] struct {
	label string
	get   func(P) string
	set   func(*P, string) error
}

type entitySection[T domain.Record, P domain.Patch[T]] struct {
	*admin.Manager[T, P]
	fields []field[P]
	row    func(T) string
}

func (s *entitySection[T, P]) Title() string { return s.Name() + "s" }

func (s *entitySection[T, P]) Rows() []string {
	items := s.Items()
	rows := make([]string, len(items))
	for i, item := range items {
		rows[i] = s.row(item)
	}
	return rows
}

func (s *entitySection[T, P]) IDAt(i int) (int64, bool) {
	items := s.Items()
	if i < 0 || i >= len(items) {
		return 0, false
	}
	return items[i].GetID(), true
}

func (s *entitySection[T, P]) FieldLabels() []string {
	labels := make([]string, len(s.fields))
	for i, f := range s.fields {
		labels[i] = f.label
	}
	return labels
}

func (s *entitySection[T, P]) FormValues() []string {
	form := s.Form()
	values := make([]string, len(s.fields))
	for i, f := range s.fields {
		values[i] = f.get(form)
	}
	return values
}

// ApplyInputs builds a fresh form from the text inputs. Nothing is sent.
func (s *entitySection[T, P]) ApplyInputs(values []string) error {
	var form P
	for i, f := range s.fields {
		if i >= len(values) {
			break
		}
		if err := f.set(&form, values[i]); err != nil {
			return fmt.Errorf("%s: %w", f.label, err)
		}
	}
	s.SetForm(form)
	return nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func text[P any](label string, get func(*P) **string) field[P] {
	return field[P]{
		label: label,
		get:   func(p P) string { return deref(*get(&p)) },
		set: func(p *P, v string) error {
			v = strings.TrimSpace(v)
			*get(p) = &v
			return nil
		},
	}
}

func projectSection(m *admin.Manager[domain.Project, domain.ProjectPatch]) section {
	return &entitySection[domain.Project, domain.ProjectPatch]{
		Manager: m,
		fields: []field[domain.ProjectPatch]{
			text("Title", func(p *domain.ProjectPatch) **string { return &p.Title }),
			text("Description", func(p *domain.ProjectPatch) **string { return &p.Description }),
			{
				label: "Tags (comma separated)",
				get:   func(p domain.ProjectPatch) string { return strings.Join(p.Tags, ", ") },
				set: func(p *domain.ProjectPatch, v string) error {
					p.Tags = []string{}
					for _, t := range strings.Split(v, ",") {
						if t = strings.TrimSpace(t); t != "" {
							p.Tags = append(p.Tags, t)
						}
					}
					return nil
				},
			},
			text("Image URL", func(p *domain.ProjectPatch) **string { return &p.Image }),
			text("GitHub URL", func(p *domain.ProjectPatch) **string { return &p.Github }),
			text("Live URL", func(p *domain.ProjectPatch) **string { return &p.Live }),
			text("Color", func(p *domain.ProjectPatch) **string { return &p.Color }),
		},
		row: func(p domain.Project) string {
			return fmt.Sprintf("#%-4d %-28s %s", p.ID, p.Title, strings.Join(p.Tags, ", "))
		},
	}
}

func skillSection(m *admin.Manager[domain.Skill, domain.SkillPatch]) section {
	return &entitySection[domain.Skill, domain.SkillPatch]{
		Manager: m,
		fields: []field[domain.SkillPatch]{
			text("Name", func(p *domain.SkillPatch) **string { return &p.Name }),
			text("Image URL", func(p *domain.SkillPatch) **string { return &p.Image }),
			{
				label: "Proficiency (0-100)",
				get: func(p domain.SkillPatch) string {
					if p.Proficiency == nil {
						return ""
					}
					return strconv.Itoa(*p.Proficiency)
				},
				set: func(p *domain.SkillPatch, v string) error {
					v = strings.TrimSpace(v)
					if v == "" {
						return nil
					}
					n, err := strconv.Atoi(v)
					if err != nil {
						return fmt.Errorf("must be a number between 0 and 100")
					}
					p.Proficiency = &n
					return nil
				},
			},
			text("Category", func(p *domain.SkillPatch) **string { return &p.Category }),
		},
		row: func(s domain.Skill) string {
			prof := 0
			if s.Proficiency != nil {
				prof = *s.Proficiency
			}
			return fmt.Sprintf("#%-4d %-20s %3d%%  %s", s.ID, s.Name, prof, s.Category)
		},
	}
}

func certificateSection(m *admin.Manager[domain.Certificate, domain.CertificatePatch]) section {
	return &entitySection[domain.Certificate, domain.CertificatePatch]{
		Manager: m,
		fields: []field[domain.CertificatePatch]{
			text("Title", func(p *domain.CertificatePatch) **string { return &p.Title }),
			text("Issuer", func(p *domain.CertificatePatch) **string { return &p.Issuer }),
			text("Date", func(p *domain.CertificatePatch) **string { return &p.Date }),
			text("Image URL", func(p *domain.CertificatePatch) **string { return &p.Image }),
			text("Description", func(p *domain.CertificatePatch) **string { return &p.Description }),
			text("Credential URL", func(p *domain.CertificatePatch) **string { return &p.CredentialURL }),
		},
		row: func(c domain.Certificate) string {
			return fmt.Sprintf("#%-4d %-28s %-16s %s", c.ID, c.Title, c.Issuer, c.Date)
		},
	}
}
