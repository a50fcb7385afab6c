package schema

import (
	"fmt"
	"net/mail"
	"net/url"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
)

// Literals is the table of canned values the synthesizer falls back to for
// string formats and field-name heuristics. Values are fixed so repeated
// synthesis is reproducible.
type Literals struct {
	DateTime string `hcl:"date_time,optional" json:"date_time,omitempty"`
	Date     string `hcl:"date,optional" json:"date,omitempty"`
	UUID     string `hcl:"uuid,optional" json:"uuid,omitempty"`
	Email    string `hcl:"email,optional" json:"email,omitempty"`
	URL      string `hcl:"url,optional" json:"url,omitempty"`
	Name     string `hcl:"name,optional" json:"name,omitempty"`
	ID       string `hcl:"id,optional" json:"id,omitempty"`
	Token    string `hcl:"token,optional" json:"token,omitempty"`
	Phone    string `hcl:"phone,optional" json:"phone,omitempty"`
}

// DefaultLiterals returns the built-in literal table.
func DefaultLiterals() Literals {
	return Literals{
		DateTime: "2026-01-01T00:00:00Z",
		Date:     "2026-01-01",
		UUID:     "123e4567-e89b-12d3-a456-426614174000",
		Email:    "user@example.com",
		URL:      "https://api.example.com",
		Name:     "example_name",
		ID:       "123",
		Token:    "token_value",
		Phone:    "+1-555-0100",
	}
}

// Merge returns a copy of l with every non-empty field of overrides applied.
func (l Literals) Merge(overrides *Literals) Literals {
	if overrides == nil {
		return l
	}
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&l.DateTime, overrides.DateTime)
	set(&l.Date, overrides.Date)
	set(&l.UUID, overrides.UUID)
	set(&l.Email, overrides.Email)
	set(&l.URL, overrides.URL)
	set(&l.Name, overrides.Name)
	set(&l.ID, overrides.ID)
	set(&l.Token, overrides.Token)
	set(&l.Phone, overrides.Phone)
	return l
}

// Validate checks that the format-bound literals parse as their format. Empty
// fields are skipped so partially filled override tables validate too.
func (l Literals) Validate() error {
	var result *multierror.Error

	if l.DateTime != "" {
		if _, err := dateparse.ParseStrict(l.DateTime); err != nil {
			result = multierror.Append(result,
				fmt.Errorf("date_time literal %q: %w", l.DateTime, err))
		}
	}
	if l.Date != "" {
		if _, err := dateparse.ParseStrict(l.Date); err != nil {
			result = multierror.Append(result,
				fmt.Errorf("date literal %q: %w", l.Date, err))
		}
	}
	if l.UUID != "" {
		if _, err := uuid.Parse(l.UUID); err != nil {
			result = multierror.Append(result,
				fmt.Errorf("uuid literal %q: %w", l.UUID, err))
		}
	}
	if l.Email != "" {
		if _, err := mail.ParseAddress(l.Email); err != nil {
			result = multierror.Append(result,
				fmt.Errorf("email literal %q: %w", l.Email, err))
		}
	}
	if l.URL != "" {
		u, err := url.Parse(l.URL)
		if err == nil && (u.Scheme == "" || u.Host == "") {
			err = fmt.Errorf("missing scheme or host")
		}
		if err != nil {
			result = multierror.Append(result,
				fmt.Errorf("url literal %q: %w", l.URL, err))
		}
	}

	return result.ErrorOrNil()
}
