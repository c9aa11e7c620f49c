package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/logger"
)

// Mailer is the part of email.EmailService the contact form needs.
type Mailer interface {
	SendContactEmail(data email.ContactEmailData) error
	IsConfigured() bool
}

type contactUsecase struct {
	mailer Mailer
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(mailer Mailer) domain.ContactUsecase {
	return &contactUsecase{
		mailer: mailer,
	}
}

// SendContactMessage validates the contact request and sends the email
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) error {
	name := strings.TrimSpace(req.Name)
	from := strings.TrimSpace(req.Email)
	message := strings.TrimSpace(req.Message)

	// Binding already ran; whitespace-only values still slip through it.
	switch {
	case name == "":
		return apperror.Validation("name", "Missing required field: name", nil)
	case from == "":
		return apperror.Validation("email", "Missing required field: email", nil)
	case message == "":
		return apperror.Validation("message", "Missing required field: message", nil)
	}

	if !uc.mailer.IsConfigured() {
		return apperror.Unavailable("Contact service temporarily unavailable", nil)
	}

	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		subject = fmt.Sprintf("New message from %s", name)
	}

	err := uc.mailer.SendContactEmail(email.ContactEmailData{
		SenderName:  name,
		SenderEmail: from,
		Subject:     subject,
		Message:     message,
	})
	if err != nil {
		logger.Log.Error("Failed to send contact email", "error", err)
		return apperror.New(http.StatusInternalServerError, "Failed to send message. Please try again later.", err)
	}

	logger.Log.Info("Contact message forwarded", "from", from)
	return nil
}
