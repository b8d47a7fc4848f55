package model

import "time"

// QuoteRequest is a request for a project estimate.
type QuoteRequest struct {
	ID                     int64     `json:"id"`
	Name                   string    `json:"name"`
	Email                  string    `json:"email"`
	Phone                  string    `json:"phone"`
	Company                string    `json:"company,omitempty"`
	ServiceType            string    `json:"service_type"`
	ProjectDescription     string    `json:"project_description"`
	BudgetRange            string    `json:"budget_range"`
	Timeline               string    `json:"timeline,omitempty"`
	WebsiteURL             string    `json:"website_url,omitempty"`
	PreferredContactMethod string    `json:"preferred_contact_method,omitempty"`
	Status                 Status    `json:"status"`
	Priority               Priority  `json:"priority"`
	Source                 Source    `json:"source"`
	IPAddress              string    `json:"ip_address,omitempty"`
	UserAgent              string    `json:"user_agent,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// QuoteStatistics is the row of the quote_statistics view.
type QuoteStatistics struct {
	StatusCounts
	CriticalPriority int `json:"critical_priority"`
	HighPriority     int `json:"high_priority"`
	FromGoogleAds    int `json:"from_google_ads"`
	Last7Days        int `json:"last_7_days"`
}
