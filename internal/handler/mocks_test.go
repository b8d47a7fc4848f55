package handler

import (
	"context"

	"github.com/leadsite/backend/internal/model"
	"github.com/leadsite/backend/internal/service"
)

type mockContactService struct {
	submitFunc func(ctx context.Context, in service.ContactInput, client model.ClientInfo) (*model.Contact, error)
}

func (m *mockContactService) Submit(ctx context.Context, in service.ContactInput, client model.ClientInfo) (*model.Contact, error) {
	return m.submitFunc(ctx, in, client)
}

type mockLeadService struct {
	submitFunc func(ctx context.Context, in service.LeadInput, client model.ClientInfo) (*model.Lead, error)
}

func (m *mockLeadService) Submit(ctx context.Context, in service.LeadInput, client model.ClientInfo) (*model.Lead, error) {
	return m.submitFunc(ctx, in, client)
}

type mockQuoteService struct {
	submitFunc func(ctx context.Context, in service.QuoteInput, client model.ClientInfo) (*model.QuoteRequest, error)
}

func (m *mockQuoteService) Submit(ctx context.Context, in service.QuoteInput, client model.ClientInfo) (*model.QuoteRequest, error) {
	return m.submitFunc(ctx, in, client)
}

type mockAuthService struct {
	loginFunc  func(ctx context.Context, in service.LoginInput, client model.ClientInfo) (*service.LoginResult, error)
	logoutFunc func(ctx context.Context, token string) error
}

func (m *mockAuthService) Login(ctx context.Context, in service.LoginInput, client model.ClientInfo) (*service.LoginResult, error) {
	return m.loginFunc(ctx, in, client)
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	if m.logoutFunc != nil {
		return m.logoutFunc(ctx, token)
	}
	return nil
}

type mockAdminService struct {
	listContactsFunc func(ctx context.Context, f model.ListFilter) (*service.ContactList, error)
	listLeadsFunc    func(ctx context.Context, f model.ListFilter) (*service.LeadList, error)
	listQuotesFunc   func(ctx context.Context, f model.ListFilter) (*service.QuoteList, error)
	updateStatusFunc func(ctx context.Context, in service.StatusUpdateInput) (*model.SubmissionRecord, error)
}

func (m *mockAdminService) ListContacts(ctx context.Context, f model.ListFilter) (*service.ContactList, error) {
	if m.listContactsFunc != nil {
		return m.listContactsFunc(ctx, f)
	}
	return &service.ContactList{Contacts: []*model.Contact{}}, nil
}

func (m *mockAdminService) ListLeads(ctx context.Context, f model.ListFilter) (*service.LeadList, error) {
	if m.listLeadsFunc != nil {
		return m.listLeadsFunc(ctx, f)
	}
	return &service.LeadList{Leads: []*model.Lead{}}, nil
}

func (m *mockAdminService) ListQuotes(ctx context.Context, f model.ListFilter) (*service.QuoteList, error) {
	if m.listQuotesFunc != nil {
		return m.listQuotesFunc(ctx, f)
	}
	return &service.QuoteList{Quotes: []*model.QuoteRequest{}}, nil
}

func (m *mockAdminService) UpdateStatus(ctx context.Context, in service.StatusUpdateInput) (*model.SubmissionRecord, error) {
	return m.updateStatusFunc(ctx, in)
}
