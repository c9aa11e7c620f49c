package domain

import "time"

// Known skill categories. Any string is stored; these are what the dashboard offers.
const (
	CategoryTechnical = "technical"
	CategorySoft      = "soft"
	CategoryTool      = "tool"
	CategoryLanguage  = "language"
)

type Skill struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"type:text;not null" validate:"required"`
	Image       string    `json:"image" gorm:"type:text;not null" validate:"required"`
	Proficiency *int      `json:"proficiency" gorm:"not null" validate:"required,range=0 100"`
	Category    string    `json:"category" gorm:"type:text;not null;default:'technical'"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Skill) TableName() string {
	return "skills"
}

func (s Skill) GetID() int64 {
	return s.ID
}

type SkillPatch struct {
	ID          *int64  `json:"id,omitempty" yaml:"id,omitempty"`
	Name        *string `json:"name,omitempty" yaml:"name,omitempty" example:"Go"`
	Image       *string `json:"image,omitempty" yaml:"image,omitempty" example:"/skills/go.png"`
	Proficiency *int    `json:"proficiency,omitempty" yaml:"proficiency,omitempty" validate:"range=0 100" example:"85"`
	Category    *string `json:"category,omitempty" yaml:"category,omitempty" example:"technical"`
}

func (p SkillPatch) Apply(dst *Skill) {
	setString(&dst.Name, p.Name)
	setString(&dst.Image, p.Image)
	if p.Proficiency != nil {
		v := *p.Proficiency
		dst.Proficiency = &v
	}
	setString(&dst.Category, p.Category)
}

func (p SkillPatch) BodyID() *int64 {
	return p.ID
}

var SkillDescriptor = Descriptor[Skill]{
	Kind:    "skills",
	Name:    "Skill",
	OrderBy: "proficiency DESC, id ASC",
	Prepare: func(s *Skill) {
		if s.Category == "" {
			s.Category = CategoryTechnical
		}
	},
}
