// Renders writable property values as request fragments.

package property

import (
	"fmt"

	"github.com/goccy/go-json"
)

// MarshalRequest encodes v as the JSON accepted by create and update calls.
func MarshalRequest(v PropertyValue) ([]byte, error) {
	m, err := EncodeRequest(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(m)
}

// EncodeRequest renders v as an untyped request fragment, including its
// "type". Server-assigned fields (ids of the property, colors of spans,
// plain text) are omitted.
//
// Read-only variants always fail with *UnsupportedEncodingError.
func EncodeRequest(v PropertyValue) (map[string]any, error) {
	if v == nil {
		return nil, &UnsupportedEncodingError{What: "nil property value"}
	}
	t := v.PropertyType()
	if t.ReadOnly() {
		return nil, &UnsupportedEncodingError{What: string(t) + " property"}
	}
	var payload any
	switch p := v.(type) {
	case *NumberProperty:
		payload = ptrOrNil(p.Number)
	case *URLProperty:
		payload = ptrOrNil(p.URL)
	case *EmailProperty:
		payload = ptrOrNil(p.Email)
	case *PhoneNumberProperty:
		payload = ptrOrNil(p.PhoneNumber)
	case *CheckboxProperty:
		payload = p.Checkbox
	case *SelectProperty:
		payload = encodeOptionPtr(p.Select)
	case *StatusProperty:
		payload = encodeOptionPtr(p.Status)
	case *MultiSelectProperty:
		opts := make([]any, 0, len(p.MultiSelect))
		for i := range p.MultiSelect {
			opts = append(opts, encodeOption(&p.MultiSelect[i]))
		}
		payload = opts
	case *DateProperty:
		if p.Date != nil {
			payload = encodeDate(p.Date)
		}
	case *TitleProperty:
		payload = encodeSpans(p.Title)
	case *RichTextProperty:
		payload = encodeSpans(p.RichText)
	case *RelationProperty:
		refs := make([]any, 0, len(p.Relation))
		for _, r := range p.Relation {
			refs = append(refs, map[string]any{"id": r.ID})
		}
		payload = refs
	case *PeopleProperty:
		users := make([]any, 0, len(p.People))
		for _, u := range p.People {
			users = append(users, map[string]any{"object": "user", "id": u.ID})
		}
		payload = users
	case *FilesProperty:
		files := make([]any, 0, len(p.Files))
		for i := range p.Files {
			files = append(files, encodeFile(&p.Files[i]))
		}
		payload = files
	default:
		return nil, &UnsupportedEncodingError{What: fmt.Sprintf("%T", v)}
	}
	return map[string]any{"type": string(t), string(t): payload}, nil
}

func ptrOrNil[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func encodeOptionPtr(o *SelectOption) any {
	if o == nil {
		return nil
	}
	return encodeOption(o)
}

// encodeOption prefers the id, which survives renames.
func encodeOption(o *SelectOption) map[string]any {
	m := map[string]any{}
	if o.ID != "" {
		m["id"] = o.ID
	} else {
		m["name"] = o.Name
	}
	if o.Color != "" {
		m["color"] = string(o.Color)
	}
	return m
}

func encodeDate(d *DateValue) map[string]any {
	m := map[string]any{"start": d.Start}
	if d.End != nil {
		m["end"] = *d.End
	}
	if d.TimeZone != nil {
		m["time_zone"] = *d.TimeZone
	}
	return m
}

func encodeSpans(spans []RichText) []any {
	out := make([]any, 0, len(spans))
	for i := range spans {
		out = append(out, encodeSpan(&spans[i]))
	}
	return out
}

func encodeSpan(rt *RichText) map[string]any {
	m := map[string]any{}
	switch {
	case rt.Text != nil:
		t := map[string]any{"content": rt.Text.Content}
		if rt.Text.Link != nil {
			t["link"] = map[string]any{"url": rt.Text.Link.URL}
		}
		m["type"] = string(RichTextText)
		m["text"] = t
	case rt.Mention != nil:
		m["type"] = string(RichTextMention)
		m["mention"] = encodeMention(rt.Mention)
	case rt.Equation != nil:
		m["type"] = string(RichTextEquation)
		m["equation"] = map[string]any{"expression": rt.Equation.Expression}
	default:
		// A span built from resolved text only.
		m["type"] = string(RichTextText)
		m["text"] = map[string]any{"content": rt.PlainText}
	}
	if a := rt.Annotations; a != nil {
		am := map[string]any{
			"bold":          a.Bold,
			"italic":        a.Italic,
			"strikethrough": a.Strikethrough,
			"underline":     a.Underline,
			"code":          a.Code,
		}
		if a.Color != "" {
			am["color"] = string(a.Color)
		}
		m["annotations"] = am
	}
	return m
}

func encodeMention(mt *Mention) map[string]any {
	m := map[string]any{"type": string(mt.Type)}
	switch mt.Type {
	case MentionUser:
		if mt.User != nil {
			m["user"] = map[string]any{"object": "user", "id": mt.User.ID}
		}
	case MentionDate:
		if mt.Date != nil {
			m["date"] = encodeDate(mt.Date)
		}
	case MentionPage:
		if mt.Page != nil {
			m["page"] = map[string]any{"id": mt.Page.ID}
		}
	case MentionDatabase:
		if mt.Database != nil {
			m["database"] = map[string]any{"id": mt.Database.ID}
		}
	case MentionLinkPreview:
		if mt.LinkPreview != nil {
			m["link_preview"] = map[string]any{"url": mt.LinkPreview.URL}
		}
	case MentionTemplateMention:
		if tm := mt.TemplateMention; tm != nil {
			inner := map[string]any{"type": tm.Type}
			if tm.Type == "template_mention_date" {
				inner[tm.Type] = tm.Date
			} else {
				inner[tm.Type] = tm.User
			}
			m["template_mention"] = inner
		}
	}
	return m
}

func encodeFile(f *FileValue) map[string]any {
	m := map[string]any{"name": f.Name, "type": f.Type}
	switch {
	case f.External != nil:
		m["type"] = "external"
		m["external"] = map[string]any{"url": f.External.URL}
	case f.File != nil:
		m["type"] = "file"
		m["file"] = map[string]any{"url": f.File.URL, "expiry_time": f.File.ExpiryTime}
	}
	return m
}
