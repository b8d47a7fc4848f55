package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/leadsite/backend/internal/model"
	"github.com/leadsite/backend/internal/repository"
	"github.com/leadsite/backend/internal/validate"
)

// QuoteInput is the body of a quote request.
type QuoteInput struct {
	Name                   string `json:"name"`
	Email                  string `json:"email"`
	Phone                  string `json:"phone"`
	Company                string `json:"company"`
	ServiceType            string `json:"serviceType"`
	ProjectDescription     string `json:"projectDescription"`
	BudgetRange            string `json:"budgetRange"`
	Timeline               string `json:"timeline"`
	WebsiteURL             string `json:"websiteUrl"`
	PreferredContactMethod string `json:"preferredContactMethod"`
}

// QuoteService defines the business logic for quote requests.
type QuoteService interface {
	Submit(ctx context.Context, in QuoteInput, client model.ClientInfo) (*model.QuoteRequest, error)
}

type quoteServiceImpl struct {
	repo    repository.QuoteRepository
	profile Profile
}

// NewQuoteService creates a QuoteService backed by the given repository.
func NewQuoteService(repo repository.QuoteRepository, profile Profile) QuoteService {
	return &quoteServiceImpl{repo: repo, profile: profile}
}

func validateQuote(in QuoteInput) error {
	var errs validate.Errors
	checkContactFields(&errs, in.Name, in.Email, in.Phone)
	errs.Check(validate.Required(in.ServiceType), msgServiceType)
	errs.Check(validate.MaxLen(in.ServiceType, maxServiceTypeLen), msgServiceTypeLength)
	errs.Check(validate.LenBetween(in.ProjectDescription, 20, 3000), msgProjectDescription)
	errs.Check(validate.Required(in.BudgetRange), msgBudgetRange)
	errs.Check(validate.MaxLen(in.BudgetRange, maxBudgetLen), msgBudgetRangeLength)
	if validate.Required(in.WebsiteURL) {
		errs.Check(validate.URL(in.WebsiteURL), msgWebsiteURL)
		errs.Check(validate.MaxLen(in.WebsiteURL, maxWebsiteURLLen), msgWebsiteURLLength)
	}
	errs.Check(validate.MaxLen(in.Company, maxCompanyLen), msgCompany)
	errs.Check(validate.MaxLen(in.Timeline, maxTimelineLen), msgTimeline)
	if validate.Required(in.PreferredContactMethod) {
		errs.Check(validate.OneOf(strings.ToLower(in.PreferredContactMethod), ContactMethods...), msgContactMethod)
	}
	return errs.Err()
}

// Submit stores a quote request. Priority comes from the budget range and
// source from the client's campaign attribution.
func (s *quoteServiceImpl) Submit(ctx context.Context, in QuoteInput, client model.ClientInfo) (*model.QuoteRequest, error) {
	if err := validateQuote(in); err != nil {
		return nil, err
	}
	q := &model.QuoteRequest{
		Name:                   s.profile.text(in.Name),
		Email:                  normalizeEmail(in.Email),
		Phone:                  validate.NormalizePhone(in.Phone),
		Company:                s.profile.text(in.Company),
		ServiceType:            s.profile.text(in.ServiceType),
		ProjectDescription:     s.profile.text(in.ProjectDescription),
		BudgetRange:            s.profile.text(in.BudgetRange),
		Timeline:               s.profile.text(in.Timeline),
		WebsiteURL:             strings.TrimSpace(in.WebsiteURL),
		PreferredContactMethod: strings.ToLower(strings.TrimSpace(in.PreferredContactMethod)),
		Status:                 model.StatusNew,
		Priority:               QuotePriority(in.BudgetRange),
		Source:                 QuoteSource(client, s.profile.DefaultSource),
		IPAddress:              client.IPAddress,
		UserAgent:              client.UserAgent,
	}
	if err := s.repo.Create(ctx, q); err != nil {
		return nil, fmt.Errorf("create quote request: %w", err)
	}
	return q, nil
}
