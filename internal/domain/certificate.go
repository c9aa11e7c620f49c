package domain

import "time"

type Certificate struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	Title         string    `json:"title" gorm:"type:text;not null" validate:"required"`
	Issuer        string    `json:"issuer" gorm:"type:text;not null" validate:"required"`
	Date          string    `json:"date" gorm:"type:text;not null" validate:"required"`
	Image         string    `json:"image" gorm:"type:text;not null" validate:"required"`
	Description   string    `json:"description" gorm:"type:text;not null;default:''"`
	CredentialURL string    `json:"credentialUrl" gorm:"column:credential_url;type:text;not null;default:''"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (Certificate) TableName() string {
	return "certificates"
}

func (c Certificate) GetID() int64 {
	return c.ID
}

type CertificatePatch struct {
	ID            *int64  `json:"id,omitempty" yaml:"id,omitempty"`
	Title         *string `json:"title,omitempty" yaml:"title,omitempty" example:"Cloud Practitioner"`
	Issuer        *string `json:"issuer,omitempty" yaml:"issuer,omitempty" example:"AWS"`
	Date          *string `json:"date,omitempty" yaml:"date,omitempty" example:"2024"`
	Image         *string `json:"image,omitempty" yaml:"image,omitempty" example:"/certificates/aws.png"`
	Description   *string `json:"description,omitempty" yaml:"description,omitempty"`
	CredentialURL *string `json:"credentialUrl,omitempty" yaml:"credentialUrl,omitempty"`
}

func (p CertificatePatch) Apply(dst *Certificate) {
	setString(&dst.Title, p.Title)
	setString(&dst.Issuer, p.Issuer)
	setString(&dst.Date, p.Date)
	setString(&dst.Image, p.Image)
	setString(&dst.Description, p.Description)
	setString(&dst.CredentialURL, p.CredentialURL)
}

func (p CertificatePatch) BodyID() *int64 {
	return p.ID
}

// Dates are free-form strings, so "date DESC" is a lexical ordering.
var CertificateDescriptor = Descriptor[Certificate]{
	Kind:    "certificates",
	Name:    "Certificate",
	OrderBy: "date DESC, id DESC",
}
