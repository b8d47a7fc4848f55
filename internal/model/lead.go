package model

import "time"

// Lead is a sales enquiry. Priority is derived from the budget at creation.
type Lead struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Requirement string    `json:"requirement"`
	Budget      string    `json:"budget,omitempty"`
	Company     string    `json:"company,omitempty"`
	Status      Status    `json:"status"`
	Priority    Priority  `json:"priority"`
	IPAddress   string    `json:"ip_address,omitempty"`
	UserAgent   string    `json:"user_agent,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LeadStatistics is the row of the lead_statistics view.
type LeadStatistics struct {
	StatusCounts
	HighPriority   int `json:"high_priority"`
	MediumPriority int `json:"medium_priority"`
	LowPriority    int `json:"low_priority"`
	Last7Days      int `json:"last_7_days"`
}
