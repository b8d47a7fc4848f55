package service

import (
	"testing"

	"github.com/leadsite/backend/internal/model"
)

func TestLeadPriority(t *testing.T) {
	cases := []struct {
		budget string
		want   model.Priority
	}{
		{"enterprise package", model.PriorityHigh},
		{"Enterprise", model.PriorityHigh},
		{"₹50000+", model.PriorityHigh},
		{"100000", model.PriorityHigh},
		{"₹5000", model.PriorityLow},
		{"up to 10000", model.PriorityLow},
		{"", model.PriorityMedium},
		{"₹20000", model.PriorityMedium},
	}
	for _, tc := range cases {
		if got := LeadPriority(tc.budget); got != tc.want {
			t.Errorf("LeadPriority(%q) = %q, want %q", tc.budget, got, tc.want)
		}
	}
}

func TestQuotePriority(t *testing.T) {
	cases := []struct {
		budget string
		want   model.Priority
	}{
		{"Custom Enterprise", model.PriorityCritical},
		{"custom", model.PriorityCritical},
		{"₹100000+", model.PriorityCritical},
		{"₹25000 - ₹50000", model.PriorityHigh},
		{"", model.PriorityHigh},
	}
	for _, tc := range cases {
		if got := QuotePriority(tc.budget); got != tc.want {
			t.Errorf("QuotePriority(%q) = %q, want %q", tc.budget, got, tc.want)
		}
	}
}

func TestQuoteSource(t *testing.T) {
	cases := []struct {
		name   string
		client model.ClientInfo
		def    model.Source
		want   model.Source
	}{
		{"utm tag", model.ClientInfo{UTMSource: "google_ads"}, model.SourceDirect, model.SourceGoogleAds},
		{"ad referer", model.ClientInfo{Referer: "https://www.googleadservices.com/pagead/aclk?x=1"}, model.SourceWebsite, model.SourceGoogleAds},
		{"other utm", model.ClientInfo{UTMSource: "newsletter"}, model.SourceDirect, model.SourceDirect},
		{"nothing legacy", model.ClientInfo{}, ProfileLegacy.DefaultSource, model.SourceDirect},
		{"nothing current", model.ClientInfo{}, ProfileCurrent.DefaultSource, model.SourceWebsite},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := QuoteSource(tc.client, tc.def); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestProfileText(t *testing.T) {
	if got := ProfileLegacy.text("  <b>Hi</b> "); got != "<b>Hi</b>" {
		t.Errorf("legacy profile: got %q", got)
	}
	if got := ProfileCurrent.text("  <b>Hi</b> "); got != "&lt;b&gt;Hi&lt;/b&gt;" {
		t.Errorf("current profile: got %q", got)
	}
}
