package service

import (
	"html"
	"strings"

	"github.com/leadsite/backend/internal/model"
	"github.com/leadsite/backend/internal/validate"
)

// Profile selects the sanitization and defaulting rules of an intake route
// family. The legacy routes (/contact, /lead, /quote) and the /api routes
// share validation and differ only in these settings.
type Profile struct {
	Name          string
	EscapeHTML    bool
	DefaultSource model.Source
}

// Intake profiles for the legacy and /api route families.
var (
	ProfileLegacy  = Profile{Name: "legacy", EscapeHTML: false, DefaultSource: model.SourceDirect}
	ProfileCurrent = Profile{Name: "current", EscapeHTML: true, DefaultSource: model.SourceWebsite}
)

// text trims s and, when the profile asks for it, escapes HTML
// metacharacters.
func (p Profile) text(s string) string {
	s = strings.TrimSpace(s)
	if p.EscapeHTML {
		return html.EscapeString(s)
	}
	return s
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Field caps, counted in characters before escaping. Escaped free text is
// stored in TEXT columns; email, phone and website URL keep their VARCHAR
// sizes and are never escaped.
const (
	maxNameLen        = 255
	maxCompanyLen     = 255
	maxBudgetLen      = 100
	maxServiceTypeLen = 100
	maxTimelineLen    = 100
	maxWebsiteURLLen  = 500
)

// checkContactFields validates the name, email and phone every form carries.
func checkContactFields(errs *validate.Errors, name, email, phone string) {
	errs.Check(validate.MinLen(name, 2), msgName)
	errs.Check(validate.MaxLen(name, maxNameLen), msgNameLength)
	errs.Check(validate.Email(email), msgEmail)
	errs.Check(validate.Phone(phone), msgPhone)
}

// Validation messages returned to form clients.
const (
	msgName               = "Name is required and must be at least 2 characters"
	msgNameLength         = "Name must not exceed 255 characters"
	msgEmail              = "A valid email address is required"
	msgPhone              = "A valid phone number is required"
	msgRequirement        = "Requirement must be between 10 and 2000 characters"
	msgMessage            = "Message must not exceed 5000 characters"
	msgProjectDescription = "Project description must be between 20 and 3000 characters"
	msgServiceType        = "Service type is required"
	msgBudgetRange        = "Budget range is required"
	msgWebsiteURL         = "Website URL must be a valid URL"
	msgWebsiteURLLength   = "Website URL must not exceed 500 characters"
	msgServiceTypeLength  = "Service type must not exceed 100 characters"
	msgBudgetRangeLength  = "Budget range must not exceed 100 characters"
	msgCompany            = "Company must not exceed 255 characters"
	msgBudget             = "Budget must not exceed 100 characters"
	msgTimeline           = "Timeline must not exceed 100 characters"
	msgContactMethod      = "Preferred contact method must be one of email, phone, whatsapp"
)

// ContactMethods are the accepted values of a quote's preferred contact method.
var ContactMethods = []string{"email", "phone", "whatsapp"}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// LeadPriority derives a lead's priority from its free-text budget.
// "50000" is tested before "5000" because the former contains the latter.
func LeadPriority(budget string) model.Priority {
	b := strings.ToLower(budget)
	switch {
	case containsAny(b, "50000", "100000", "enterprise"):
		return model.PriorityHigh
	case containsAny(b, "5000", "10000"):
		return model.PriorityLow
	default:
		return model.PriorityMedium
	}
}

// QuotePriority derives a quote's priority from its budget range.
func QuotePriority(budgetRange string) model.Priority {
	if containsAny(strings.ToLower(budgetRange), "100000", "enterprise", "custom") {
		return model.PriorityCritical
	}
	return model.PriorityHigh
}

// QuoteSource attributes a quote to paid search when the request carries the
// google_ads campaign tag or was referred by the ad click tracker.
func QuoteSource(client model.ClientInfo, def model.Source) model.Source {
	if client.UTMSource == string(model.SourceGoogleAds) ||
		strings.Contains(strings.ToLower(client.Referer), "googleadservices") {
		return model.SourceGoogleAds
	}
	return def
}
