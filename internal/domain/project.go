package domain

import (
	"strings"
	"time"

	"github.com/lib/pq"
)

const DefaultProjectColor = "#8B5CF6"

type Project struct {
	ID          int64          `json:"id" gorm:"primaryKey"`
	Title       string         `json:"title" gorm:"type:text;not null" validate:"required"`
	Description string         `json:"description" gorm:"type:text;not null" validate:"required"`
	Tags        pq.StringArray `json:"tags" gorm:"type:text[];not null" validate:"notblank" swaggertype:"array,string"`
	Image       string         `json:"image" gorm:"type:text;not null;default:''"`
	Github      string         `json:"github" gorm:"type:text;not null;default:''"`
	Live        string         `json:"live" gorm:"type:text;not null;default:''"`
	Color       string         `json:"color" gorm:"type:text;not null"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func (Project) TableName() string {
	return "projects"
}

func (p Project) GetID() int64 {
	return p.ID
}

type ProjectPatch struct {
	ID          *int64   `json:"id,omitempty" yaml:"id,omitempty"`
	Title       *string  `json:"title,omitempty" yaml:"title,omitempty" example:"Portfolio Backend"`
	Description *string  `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Image       *string  `json:"image,omitempty" yaml:"image,omitempty"`
	Github      *string  `json:"github,omitempty" yaml:"github,omitempty"`
	Live        *string  `json:"live,omitempty" yaml:"live,omitempty"`
	Color       *string  `json:"color,omitempty" yaml:"color,omitempty" example:"#8B5CF6"`
}

func (p ProjectPatch) Apply(dst *Project) {
	setString(&dst.Title, p.Title)
	setString(&dst.Description, p.Description)
	if p.Tags != nil {
		dst.Tags = append(pq.StringArray{}, p.Tags...)
	}
	setString(&dst.Image, p.Image)
	setString(&dst.Github, p.Github)
	setString(&dst.Live, p.Live)
	setString(&dst.Color, p.Color)
}

func (p ProjectPatch) BodyID() *int64 {
	return p.ID
}

var ProjectDescriptor = Descriptor[Project]{
	Kind:    "projects",
	Name:    "Project",
	OrderBy: "id ASC",
	Prepare: func(p *Project) {
		tags := make(pq.StringArray, 0, len(p.Tags))
		for _, t := range p.Tags {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
		p.Tags = tags
		if p.Color == "" {
			p.Color = DefaultProjectColor
		}
	},
	Warnings: func(p *Project) []string {
		if p.Image == "" {
			return []string{"project has no image"}
		}
		return nil
	},
}
