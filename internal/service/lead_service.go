package service

import (
	"context"
	"fmt"

	"github.com/leadsite/backend/internal/model"
	"github.com/leadsite/backend/internal/repository"
	"github.com/leadsite/backend/internal/validate"
)

// LeadInput is the body of a lead form submission.
type LeadInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Requirement string `json:"requirement"`
	Budget      string `json:"budget"`
	Company     string `json:"company"`
}

// LeadService defines the business logic for lead submissions.
type LeadService interface {
	Submit(ctx context.Context, in LeadInput, client model.ClientInfo) (*model.Lead, error)
}

type leadServiceImpl struct {
	repo    repository.LeadRepository
	profile Profile
}

// NewLeadService creates a LeadService backed by the given repository.
func NewLeadService(repo repository.LeadRepository, profile Profile) LeadService {
	return &leadServiceImpl{repo: repo, profile: profile}
}

func validateLead(in LeadInput) error {
	var errs validate.Errors
	checkContactFields(&errs, in.Name, in.Email, in.Phone)
	errs.Check(validate.LenBetween(in.Requirement, 10, 2000), msgRequirement)
	errs.Check(validate.MaxLen(in.Budget, maxBudgetLen), msgBudget)
	errs.Check(validate.MaxLen(in.Company, maxCompanyLen), msgCompany)
	return errs.Err()
}

// Submit stores a lead with status new and a priority derived from its budget.
func (s *leadServiceImpl) Submit(ctx context.Context, in LeadInput, client model.ClientInfo) (*model.Lead, error) {
	if err := validateLead(in); err != nil {
		return nil, err
	}
	l := &model.Lead{
		Name:        s.profile.text(in.Name),
		Email:       normalizeEmail(in.Email),
		Phone:       validate.NormalizePhone(in.Phone),
		Requirement: s.profile.text(in.Requirement),
		Budget:      s.profile.text(in.Budget),
		Company:     s.profile.text(in.Company),
		Status:      model.StatusNew,
		Priority:    LeadPriority(in.Budget),
		IPAddress:   client.IPAddress,
		UserAgent:   client.UserAgent,
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, fmt.Errorf("create lead: %w", err)
	}
	return l, nil
}
