package service

import (
	"context"

	"github.com/leadsite/backend/internal/model"
)

// ContactInput is the body of a contact form submission.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit validates, sanitizes and stores a contact. A *validate.Errors is
	// returned when the input is rejected; nothing is stored in that case.
	Submit(ctx context.Context, in ContactInput, client model.ClientInfo) (*model.Contact, error)
}
