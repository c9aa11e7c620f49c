package admin

import "portfolio-backend/internal/domain"

// The *Form functions fill an edit form from a stored record.

func ProjectForm(p domain.Project) domain.ProjectPatch {
	return domain.ProjectPatch{
		Title:       ptr(p.Title),
		Description: ptr(p.Description),
		Tags:        append([]string{}, p.Tags...),
		Image:       ptr(p.Image),
		Github:      ptr(p.Github),
		Live:        ptr(p.Live),
		Color:       ptr(p.Color),
	}
}

func SkillForm(s domain.Skill) domain.SkillPatch {
	patch := domain.SkillPatch{
		Name:     ptr(s.Name),
		Image:    ptr(s.Image),
		Category: ptr(s.Category),
	}
	if s.Proficiency != nil {
		patch.Proficiency = ptr(*s.Proficiency)
	}
	return patch
}

func CertificateForm(c domain.Certificate) domain.CertificatePatch {
	return domain.CertificatePatch{
		Title:         ptr(c.Title),
		Issuer:        ptr(c.Issuer),
		Date:          ptr(c.Date),
		Image:         ptr(c.Image),
		Description:   ptr(c.Description),
		CredentialURL: ptr(c.CredentialURL),
	}
}

func ptr[V any](v V) *V {
	return &v
}
