package service

import (
	"context"
	"fmt"

	"github.com/leadsite/backend/internal/model"
	"github.com/leadsite/backend/internal/repository"
	"github.com/leadsite/backend/internal/validate"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo    repository.ContactRepository
	profile Profile
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository, profile Profile) ContactService {
	return &contactServiceImpl{repo: repo, profile: profile}
}

func validateContact(in ContactInput) error {
	var errs validate.Errors
	checkContactFields(&errs, in.Name, in.Email, in.Phone)
	errs.Check(validate.MaxLen(in.Message, 5000), msgMessage)
	return errs.Err()
}

func (s *contactServiceImpl) Submit(ctx context.Context, in ContactInput, client model.ClientInfo) (*model.Contact, error) {
	if err := validateContact(in); err != nil {
		return nil, err
	}
	c := &model.Contact{
		Name:      s.profile.text(in.Name),
		Email:     normalizeEmail(in.Email),
		Phone:     validate.NormalizePhone(in.Phone),
		Message:   s.profile.text(in.Message),
		Status:    model.StatusNew,
		IPAddress: client.IPAddress,
		UserAgent: client.UserAgent,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	return c, nil
}
