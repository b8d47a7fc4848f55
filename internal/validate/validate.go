// Package validate holds the field checks shared by the form intake services.
//
// Checks are pure functions; callers collect failures in an Errors value so
// that every violation is reported at once.
package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var (
	v = validator.New()

	// phonePattern accepts an optional leading "+" and 7 to 15 digits once
	// separators have been stripped. A leading "+" must be followed by a
	// non-zero country code.
	phonePattern = regexp.MustCompile(`^(\+[1-9][0-9]{6,14}|[0-9]{7,15})$`)

	phoneSeparators = strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "")
)

// Len returns the number of characters (runes) in s after trimming.
func Len(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

// Required reports whether s has any non-space content.
func Required(s string) bool {
	return strings.TrimSpace(s) != ""
}

// MinLen reports whether trimmed s has at least n characters.
func MinLen(s string, n int) bool {
	return Len(s) >= n
}

// MaxLen reports whether trimmed s has at most n characters.
func MaxLen(s string, n int) bool {
	return Len(s) <= n
}

// LenBetween reports whether trimmed s has between lo and hi characters inclusive.
func LenBetween(s string, lo, hi int) bool {
	n := Len(s)
	return n >= lo && n <= hi
}

// MaxEmailLen is the longest address accepted, the SMTP path limit.
const MaxEmailLen = 254

// Email reports whether s is a syntactically valid email address.
func Email(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > MaxEmailLen {
		return false
	}
	return v.Var(s, "email") == nil
}

// NormalizePhone trims s and strips the separators Phone tolerates, leaving
// an optional "+" and digits.
func NormalizePhone(s string) string {
	return phoneSeparators.Replace(strings.TrimSpace(s))
}

// Phone reports whether s looks like an international mobile number.
func Phone(s string) bool {
	return phonePattern.MatchString(NormalizePhone(s))
}

// URL reports whether s is a valid http(s) URL. A missing scheme is read as http.
func URL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, " \t\n") {
		return false
	}
	lower := strings.ToLower(s)
	if !strings.Contains(lower, "://") {
		s = "http://" + s
	} else if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return false
	}
	if !strings.Contains(hostPart(s), ".") {
		return false
	}
	return v.Var(s, "url") == nil
}

func hostPart(u string) string {
	rest := u[strings.Index(u, "://")+3:]
	if i := strings.IndexAny(rest, "/?#"); i >= 0 {
		rest = rest[:i]
	}
	if i := strings.LastIndex(rest, "@"); i >= 0 {
		rest = rest[i+1:]
	}
	return rest
}

// OneOf reports whether s equals one of allowed.
func OneOf(s string, allowed ...string) bool {
	s = strings.TrimSpace(s)
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}
