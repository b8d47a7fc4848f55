package service

import (
	"context"
	"strings"
	"testing"

	"github.com/leadsite/backend/internal/model"
	"github.com/leadsite/backend/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQuote() QuoteInput {
	return QuoteInput{
		Name:                   "Meera",
		Email:                  "meera@example.com",
		Phone:                  "+44 20 7946 0958",
		ServiceType:            "ecommerce",
		ProjectDescription:     "A storefront with inventory sync and payments",
		BudgetRange:            "Custom Enterprise",
		WebsiteURL:             "https://shop.example.com",
		PreferredContactMethod: "WhatsApp",
	}
}

func TestQuoteService_Submit_ClassifiesAndStores(t *testing.T) {
	var saved *model.QuoteRequest
	repo := &mockQuoteRepository{createFunc: func(_ context.Context, q *model.QuoteRequest) error {
		saved = q
		return nil
	}}
	svc := NewQuoteService(repo, ProfileLegacy)

	q, err := svc.Submit(context.Background(), validQuote(), model.ClientInfo{UTMSource: "google_ads"})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, model.PriorityCritical, q.Priority)
	assert.Equal(t, model.SourceGoogleAds, q.Source)
	assert.Equal(t, "whatsapp", q.PreferredContactMethod)
	assert.Equal(t, model.StatusNew, q.Status)
}

func TestQuoteService_Submit_DefaultSourceFollowsProfile(t *testing.T) {
	in := validQuote()
	in.BudgetRange = "₹25000 - ₹50000"

	legacy, err := NewQuoteService(&mockQuoteRepository{}, ProfileLegacy).Submit(context.Background(), in, model.ClientInfo{})
	require.NoError(t, err)
	assert.Equal(t, model.SourceDirect, legacy.Source)
	assert.Equal(t, model.PriorityHigh, legacy.Priority)

	current, err := NewQuoteService(&mockQuoteRepository{}, ProfileCurrent).Submit(context.Background(), in, model.ClientInfo{})
	require.NoError(t, err)
	assert.Equal(t, model.SourceWebsite, current.Source)
}

func TestQuoteService_Submit_Validation(t *testing.T) {
	in := QuoteInput{
		Name:                   "M",
		Email:                  "meera@example.com",
		Phone:                  "12",
		ProjectDescription:     "short",
		WebsiteURL:             "not a url",
		PreferredContactMethod: "fax",
	}
	_, err := NewQuoteService(&mockQuoteRepository{}, ProfileCurrent).Submit(context.Background(), in, model.ClientInfo{})

	var verrs *validate.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, []string{
		msgName,
		msgPhone,
		msgServiceType,
		msgProjectDescription,
		msgBudgetRange,
		msgWebsiteURL,
		msgContactMethod,
	}, verrs.Messages())
}

func TestQuoteService_Submit_OptionalFieldsMayBeEmpty(t *testing.T) {
	in := validQuote()
	in.WebsiteURL = ""
	in.PreferredContactMethod = ""
	in.Company = ""

	q, err := NewQuoteService(&mockQuoteRepository{}, ProfileLegacy).Submit(context.Background(), in, model.ClientInfo{})
	require.NoError(t, err)
	assert.Empty(t, q.WebsiteURL)
}

func TestQuoteService_Submit_RejectsValuesLongerThanTheirColumns(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*QuoteInput)
		want   string
	}{
		{"name", func(in *QuoteInput) { in.Name = strings.Repeat("n", maxNameLen+1) }, msgNameLength},
		{"email", func(in *QuoteInput) { in.Email = strings.Repeat("e", 250) + "@example.com" }, msgEmail},
		{"service type", func(in *QuoteInput) { in.ServiceType = strings.Repeat("s", maxServiceTypeLen+1) }, msgServiceTypeLength},
		{"budget range", func(in *QuoteInput) { in.BudgetRange = strings.Repeat("b", maxBudgetLen+1) }, msgBudgetRangeLength},
		{"website url", func(in *QuoteInput) { in.WebsiteURL = "https://example.com/" + strings.Repeat("p", maxWebsiteURLLen) }, msgWebsiteURLLength},
		{"company", func(in *QuoteInput) { in.Company = strings.Repeat("c", maxCompanyLen+1) }, msgCompany},
		{"timeline", func(in *QuoteInput) { in.Timeline = strings.Repeat("t", maxTimelineLen+1) }, msgTimeline},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockQuoteRepository{createFunc: func(context.Context, *model.QuoteRequest) error {
				t.Error("repository must not be called")
				return nil
			}}
			in := validQuote()
			tt.mutate(&in)

			_, err := NewQuoteService(repo, ProfileCurrent).Submit(context.Background(), in, model.ClientInfo{})
			var verrs *validate.Errors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, []string{tt.want}, verrs.Messages())
		})
	}
}

func TestQuoteService_Submit_AcceptsValuesAtTheirCaps(t *testing.T) {
	var saved *model.QuoteRequest
	repo := &mockQuoteRepository{createFunc: func(_ context.Context, q *model.QuoteRequest) error {
		saved = q
		return nil
	}}
	in := validQuote()
	in.Name = strings.Repeat("&", maxNameLen)
	in.Phone = "+44" + strings.Repeat("-", 40) + "2079460958"
	in.ServiceType = strings.Repeat("s", maxServiceTypeLen)
	in.BudgetRange = strings.Repeat("b", maxBudgetLen)
	in.Company = strings.Repeat("&", maxCompanyLen)

	_, err := NewQuoteService(repo, ProfileCurrent).Submit(context.Background(), in, model.ClientInfo{})
	require.NoError(t, err)
	require.NotNil(t, saved)

	// Escaped text may outgrow the input cap; those columns are TEXT.
	assert.Equal(t, strings.Repeat("&amp;", maxCompanyLen), saved.Company)
	assert.Equal(t, strings.Repeat("&amp;", maxNameLen), saved.Name)
	// Phone is stored without separators so it fits VARCHAR(32).
	assert.Equal(t, "+442079460958", saved.Phone)
	assert.LessOrEqual(t, len(saved.Phone), 32)
	assert.LessOrEqual(t, len(saved.Email), 255)
	assert.LessOrEqual(t, len(saved.WebsiteURL), maxWebsiteURLLen)
}
