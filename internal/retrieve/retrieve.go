// Package retrieve extracts the natural Go value held by a decoded property.
//
// Every function is pure. Absence is reported by the boolean result since
// null payloads are legitimate on the wire.
package retrieve

import (
	"errors"
	"strconv"
	"strings"

	"github.com/maruel/notionprops/internal/property"
)

// ErrUnsupported is returned by retrievers with no defined projection.
var ErrUnsupported = errors.New("retrieve: unsupported property shape")

// joinPlainText concatenates the plain text of spans with no separator.
func joinPlainText(spans []property.RichText) string {
	var b strings.Builder
	for i := range spans {
		b.WriteString(spans[i].PlainText)
	}
	return b.String()
}

// Title returns the concatenated plain text, or false when the title is null.
func Title(p *property.TitleProperty) (string, bool) {
	if p.Title == nil {
		return "", false
	}
	return joinPlainText(p.Title), true
}

// RichText returns the concatenated plain text, or false when the value is
// null. When the first span is not a text span the result is empty.
func RichText(p *property.RichTextProperty) (string, bool) {
	if p.RichText == nil {
		return "", false
	}
	if len(p.RichText) == 0 || p.RichText[0].Type != property.RichTextText {
		return "", true
	}
	return joinPlainText(p.RichText), true
}

// Relation returns the referenced page ids in display order.
func Relation(p *property.RelationProperty) []string {
	ids := make([]string, 0, len(p.Relation))
	for _, r := range p.Relation {
		ids = append(ids, r.ID)
	}
	return ids
}

// Select returns the option name.
func Select(p *property.SelectProperty) (string, bool) {
	if p.Select == nil {
		return "", false
	}
	return p.Select.Name, true
}

// Status returns the status name.
func Status(p *property.StatusProperty) (string, bool) {
	if p.Status == nil {
		return "", false
	}
	return p.Status.Name, true
}

// MultiSelect returns the option names in order.
func MultiSelect(p *property.MultiSelectProperty) []string {
	names := make([]string, 0, len(p.MultiSelect))
	for _, o := range p.MultiSelect {
		names = append(names, o.Name)
	}
	return names
}

// People returns the display names. Users without a name, such as partial
// users, are dropped.
func People(p *property.PeopleProperty) []string {
	names := make([]string, 0, len(p.People))
	for _, u := range p.People {
		if u.Name != nil {
			names = append(names, *u.Name)
		}
	}
	return names
}

// UniqueID returns "PREFIX-N", or "N" without a prefix.
func UniqueID(p *property.UniqueIDProperty) (string, bool) {
	if p.UniqueID.Number == nil {
		return "", false
	}
	n := formatNumber(*p.UniqueID.Number)
	if p.UniqueID.Prefix != nil {
		return *p.UniqueID.Prefix + "-" + n, true
	}
	return n, true
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Number returns the number.
func Number(p *property.NumberProperty) (float64, bool) {
	if p.Number == nil {
		return 0, false
	}
	return *p.Number, true
}

// URL returns the url.
func URL(p *property.URLProperty) (string, bool) {
	return deref(p.URL)
}

// Email returns the address.
func Email(p *property.EmailProperty) (string, bool) {
	return deref(p.Email)
}

// PhoneNumber returns the phone number as typed by the user.
func PhoneNumber(p *property.PhoneNumberProperty) (string, bool) {
	return deref(p.PhoneNumber)
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}

// Checkbox returns whether the box is checked.
func Checkbox(p *property.CheckboxProperty) bool {
	return p.Checkbox
}

// CreatedBy returns the id of the creator.
func CreatedBy(p *property.CreatedByProperty) string {
	return p.CreatedBy.ID
}

// LastEditedBy returns the id of the last editor.
func LastEditedBy(p *property.LastEditedByProperty) string {
	return p.LastEditedBy.ID
}

// Files returns the url of every file, hosted or external.
func Files(p *property.FilesProperty) []string {
	urls := make([]string, 0, len(p.Files))
	for _, f := range p.Files {
		switch {
		case f.File != nil:
			urls = append(urls, f.File.URL)
		case f.External != nil:
			urls = append(urls, f.External.URL)
		}
	}
	return urls
}

// Verification returns the verification state.
func Verification(p *property.VerificationProperty) property.VerificationState {
	return p.Verification.State
}
