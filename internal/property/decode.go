// Decodes untyped property values into their variant.

package property

import (
	"sort"
	"strings"
)

// DecodeResponse validates a property value returned by the server.
func DecodeResponse(data []byte) (PropertyValue, error) {
	v, err := parse(data)
	if err != nil {
		return nil, err
	}
	return Decode(Response, v)
}

// DecodeRequest validates a property value meant for a create or update call.
//
// A missing "type" is inferred when exactly one known tag key is present,
// since write fragments usually omit it.
func DecodeRequest(data []byte) (PropertyValue, error) {
	v, err := parse(data)
	if err != nil {
		return nil, err
	}
	return Decode(Request, v)
}

// Decode validates an untyped value, as produced by a JSON decoder into any,
// and returns the matching variant.
func Decode(side Side, v any) (PropertyValue, error) {
	d := decoder{side: side}
	return d.value(v, "", true)
}

// decoder carries the decoding context down the tree.
type decoder struct {
	side Side
	// inRollup is set while decoding rollup array items, which cannot nest.
	inRollup bool
}

type decodeFunc func(d decoder, o object, b Base) (PropertyValue, error)

var decoders map[Type]decodeFunc

func init() {
	decoders = map[Type]decodeFunc{
		TypeNumber:         decodeNumber,
		TypeURL:            decodeURL,
		TypeSelect:         decodeSelect,
		TypeMultiSelect:    decodeMultiSelect,
		TypeStatus:         decodeStatus,
		TypeDate:           decodeDate,
		TypeEmail:          decodeEmail,
		TypePhoneNumber:    decodePhoneNumber,
		TypeCheckbox:       decodeCheckbox,
		TypeFiles:          decodeFiles,
		TypeCreatedBy:      decodeCreatedBy,
		TypeCreatedTime:    decodeCreatedTime,
		TypeLastEditedBy:   decodeLastEditedBy,
		TypeLastEditedTime: decodeLastEditedTime,
		TypeFormula:        decodeFormula,
		TypeUniqueID:       decodeUniqueID,
		TypeVerification:   decodeVerification,
		TypeTitle:          decodeTitle,
		TypeRichText:       decodeRichTextProperty,
		TypePeople:         decodePeople,
		TypeRelation:       decodeRelation,
		TypeRollup:         decodeRollup,
	}
}

func tagNames() []string {
	out := make([]string, len(Types))
	for i, t := range Types {
		out[i] = string(t)
	}
	return out
}

// value decodes one property value. withID requires the server-assigned id
// on response values.
func (d decoder) value(v any, path string, withID bool) (PropertyValue, error) {
	o, err := toObject(v, path, "property value object")
	if err != nil {
		return nil, err
	}
	t, err := d.discriminant(o)
	if err != nil {
		return nil, err
	}
	if d.side == Request && t.ReadOnly() {
		return nil, &ValidationError{Path: o.at("type"), Code: CodeReadOnly, Expected: "writable property type", Got: string(t)}
	}
	if d.inRollup && t == TypeRollup {
		return nil, &ValidationError{Path: o.at("type"), Code: CodeDiscriminatorUnknown, Expected: "non-rollup property type", Got: string(t)}
	}
	var b Base
	if d.side == Response && withID {
		if b.ID, err = o.str("id"); err != nil {
			return nil, err
		}
	} else if id, err := o.nullableStr("id"); err != nil {
		return nil, err
	} else if id != nil {
		b.ID = *id
	}
	return decoders[t](d, o, b)
}

func (d decoder) discriminant(o object) (Type, error) {
	raw, ok := o.m["type"]
	if !ok || raw == nil {
		if d.side == Request {
			if t, ok := inferType(o); ok {
				return t, nil
			}
		}
		return "", &ValidationError{Path: o.at("type"), Code: CodeDiscriminatorMissing, Expected: "property type tag", Got: "nothing"}
	}
	s, ok := raw.(string)
	if !ok {
		return "", invalidType(o.at("type"), "string", raw)
	}
	t := Type(s)
	if !t.Valid() {
		return "", &ValidationError{Path: o.at("type"), Code: CodeDiscriminatorUnknown, Expected: "one of " + joinSorted(tagNames()), Got: s}
	}
	return t, nil
}

// inferType returns the only known tag key present in o.
func inferType(o object) (Type, bool) {
	var found Type
	for _, t := range Types {
		if _, ok := o.m[string(t)]; ok {
			if found != "" {
				return "", false
			}
			found = t
		}
	}
	return found, found != ""
}

func joinSorted(s []string) string {
	c := append([]string(nil), s...)
	sort.Strings(c)
	return strings.Join(c, ", ")
}

func decodeNumber(_ decoder, o object, b Base) (PropertyValue, error) {
	if _, ok := o.m["number"]; !ok {
		return nil, required(o.at("number"), "number or null")
	}
	n, err := o.nullableNumber("number")
	if err != nil {
		return nil, err
	}
	return &NumberProperty{Base: b, Number: n}, nil
}

// nullableStringPayload reads the string payload stored under the tag key.
func nullableStringPayload(o object, key string) (*string, error) {
	if _, ok := o.m[key]; !ok {
		return nil, required(o.at(key), "string or null")
	}
	return o.nullableStr(key)
}

func decodeURL(_ decoder, o object, b Base) (PropertyValue, error) {
	s, err := nullableStringPayload(o, "url")
	if err != nil {
		return nil, err
	}
	return &URLProperty{Base: b, URL: s}, nil
}

func decodeEmail(_ decoder, o object, b Base) (PropertyValue, error) {
	s, err := nullableStringPayload(o, "email")
	if err != nil {
		return nil, err
	}
	return &EmailProperty{Base: b, Email: s}, nil
}

func decodePhoneNumber(_ decoder, o object, b Base) (PropertyValue, error) {
	s, err := nullableStringPayload(o, "phone_number")
	if err != nil {
		return nil, err
	}
	return &PhoneNumberProperty{Base: b, PhoneNumber: s}, nil
}

func decodeCheckbox(_ decoder, o object, b Base) (PropertyValue, error) {
	c, err := o.boolean("checkbox")
	if err != nil {
		return nil, err
	}
	return &CheckboxProperty{Base: b, Checkbox: c}, nil
}

// nullableOption reads a select or status payload.
func (d decoder) nullableOption(o object, key string) (*SelectOption, error) {
	if _, ok := o.m[key]; !ok {
		return nil, required(o.at(key), "select option or null")
	}
	c, ok, err := o.nullableObj(key, "select option")
	if err != nil || !ok {
		return nil, err
	}
	opt, err := d.selectOption(c)
	if err != nil {
		return nil, err
	}
	return &opt, nil
}

func decodeSelect(d decoder, o object, b Base) (PropertyValue, error) {
	opt, err := d.nullableOption(o, "select")
	if err != nil {
		return nil, err
	}
	return &SelectProperty{Base: b, Select: opt}, nil
}

func decodeStatus(d decoder, o object, b Base) (PropertyValue, error) {
	opt, err := d.nullableOption(o, "status")
	if err != nil {
		return nil, err
	}
	return &StatusProperty{Base: b, Status: opt}, nil
}

func decodeMultiSelect(d decoder, o object, b Base) (PropertyValue, error) {
	items, err := o.array("multi_select", "array of select options", true)
	if err != nil {
		return nil, err
	}
	var opts []SelectOption
	if items != nil {
		opts = make([]SelectOption, 0, len(items))
	}
	for i, item := range items {
		c, err := toObject(item, indexPath(o.at("multi_select"), i), "select option")
		if err != nil {
			return nil, err
		}
		opt, err := d.selectOption(c)
		if err != nil {
			return nil, err
		}
		opts = append(opts, opt)
	}
	return &MultiSelectProperty{Base: b, MultiSelect: opts}, nil
}

func decodeDate(d decoder, o object, b Base) (PropertyValue, error) {
	if _, ok := o.m["date"]; !ok {
		return nil, required(o.at("date"), "date object or null")
	}
	c, ok, err := o.nullableObj("date", "date object")
	if err != nil {
		return nil, err
	}
	p := &DateProperty{Base: b}
	if ok {
		dv, err := d.date(c)
		if err != nil {
			return nil, err
		}
		p.Date = &dv
	}
	return p, nil
}

func decodeTitle(d decoder, o object, b Base) (PropertyValue, error) {
	spans, err := d.richTextArray(o, "title")
	if err != nil {
		return nil, err
	}
	return &TitleProperty{Base: b, Title: spans}, nil
}

func decodeRichTextProperty(d decoder, o object, b Base) (PropertyValue, error) {
	spans, err := d.richTextArray(o, "rich_text")
	if err != nil {
		return nil, err
	}
	return &RichTextProperty{Base: b, RichText: spans}, nil
}

func decodeRelation(_ decoder, o object, b Base) (PropertyValue, error) {
	items, err := o.array("relation", "array of page references", true)
	if err != nil {
		return nil, err
	}
	var refs []PageRef
	if items != nil {
		refs = make([]PageRef, 0, len(items))
	}
	for i, item := range items {
		c, err := toObject(item, indexPath(o.at("relation"), i), "page reference")
		if err != nil {
			return nil, err
		}
		id, err := c.str("id")
		if err != nil {
			return nil, err
		}
		refs = append(refs, PageRef{ID: id})
	}
	return &RelationProperty{Base: b, Relation: refs}, nil
}

func decodePeople(d decoder, o object, b Base) (PropertyValue, error) {
	items, err := o.array("people", "array of users", true)
	if err != nil {
		return nil, err
	}
	var users []User
	if items != nil {
		users = make([]User, 0, len(items))
	}
	for i, item := range items {
		c, err := toObject(item, indexPath(o.at("people"), i), "user")
		if err != nil {
			return nil, err
		}
		u, err := d.user(c)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return &PeopleProperty{Base: b, People: users}, nil
}

func decodeFiles(_ decoder, o object, b Base) (PropertyValue, error) {
	items, err := o.array("files", "array of files", true)
	if err != nil {
		return nil, err
	}
	var files []FileValue
	if items != nil {
		files = make([]FileValue, 0, len(items))
	}
	for i, item := range items {
		c, err := toObject(item, indexPath(o.at("files"), i), "file")
		if err != nil {
			return nil, err
		}
		f, err := file(c)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return &FilesProperty{Base: b, Files: files}, nil
}

func decodeCreatedBy(d decoder, o object, b Base) (PropertyValue, error) {
	c, err := o.obj("created_by", "user")
	if err != nil {
		return nil, err
	}
	u, err := d.user(c)
	if err != nil {
		return nil, err
	}
	return &CreatedByProperty{Base: b, CreatedBy: u}, nil
}

func decodeLastEditedBy(d decoder, o object, b Base) (PropertyValue, error) {
	c, err := o.obj("last_edited_by", "user")
	if err != nil {
		return nil, err
	}
	u, err := d.user(c)
	if err != nil {
		return nil, err
	}
	return &LastEditedByProperty{Base: b, LastEditedBy: u}, nil
}

func decodeCreatedTime(_ decoder, o object, b Base) (PropertyValue, error) {
	s, err := o.dateString("created_time")
	if err != nil {
		return nil, err
	}
	return &CreatedTimeProperty{Base: b, CreatedTime: s}, nil
}

func decodeLastEditedTime(_ decoder, o object, b Base) (PropertyValue, error) {
	s, err := o.dateString("last_edited_time")
	if err != nil {
		return nil, err
	}
	return &LastEditedTimeProperty{Base: b, LastEditedTime: s}, nil
}

func decodeFormula(d decoder, o object, b Base) (PropertyValue, error) {
	c, err := o.obj("formula", "formula result")
	if err != nil {
		return nil, err
	}
	t, err := c.literal("type", string(FormulaString), string(FormulaNumber), string(FormulaBoolean), string(FormulaDate))
	if err != nil {
		return nil, err
	}
	f := FormulaValue{Type: FormulaType(t)}
	if _, ok := c.m[t]; !ok {
		return nil, required(c.at(t), t+" or null")
	}
	switch f.Type {
	case FormulaString:
		f.String, err = c.nullableStr(t)
	case FormulaNumber:
		f.Number, err = c.nullableNumber(t)
	case FormulaBoolean:
		f.Boolean, err = c.nullableBool(t)
	case FormulaDate:
		var dc object
		var ok bool
		if dc, ok, err = c.nullableObj(t, "date object"); err == nil && ok {
			var dv DateValue
			if dv, err = d.date(dc); err == nil {
				f.Date = &dv
			}
		}
	}
	if err != nil {
		return nil, err
	}
	return &FormulaProperty{Base: b, Formula: f}, nil
}

func decodeUniqueID(_ decoder, o object, b Base) (PropertyValue, error) {
	c, err := o.obj("unique_id", "unique id object")
	if err != nil {
		return nil, err
	}
	p := &UniqueIDProperty{Base: b}
	if p.UniqueID.Prefix, err = c.nullableStr("prefix"); err != nil {
		return nil, err
	}
	if p.UniqueID.Number, err = c.nullableNumber("number"); err != nil {
		return nil, err
	}
	return p, nil
}

func decodeVerification(d decoder, o object, b Base) (PropertyValue, error) {
	c, err := o.obj("verification", "verification object")
	if err != nil {
		return nil, err
	}
	s, err := c.literal("state", string(VerificationUnverified), string(VerificationVerified), string(VerificationExpired))
	if err != nil {
		return nil, err
	}
	v := VerificationValue{State: VerificationState(s)}
	if v.State == VerificationUnverified {
		for _, k := range []string{"date", "verified_by"} {
			if c.present(k) {
				return nil, invalidType(c.at(k), "null", c.m[k])
			}
		}
		return &VerificationProperty{Base: b, Verification: v}, nil
	}
	if dc, ok, err := c.nullableObj("date", "date object"); err != nil {
		return nil, err
	} else if ok {
		dv, err := d.date(dc)
		if err != nil {
			return nil, err
		}
		v.Date = &dv
	}
	if uc, ok, err := c.nullableObj("verified_by", "user"); err != nil {
		return nil, err
	} else if ok {
		u, err := d.user(uc)
		if err != nil {
			return nil, err
		}
		v.VerifiedBy = &u
	}
	return &VerificationProperty{Base: b, Verification: v}, nil
}

func decodeRollup(d decoder, o object, b Base) (PropertyValue, error) {
	c, err := o.obj("rollup", "rollup result")
	if err != nil {
		return nil, err
	}
	t, err := c.literal("type", string(RollupNumber), string(RollupDate), string(RollupArray))
	if err != nil {
		return nil, err
	}
	fn, err := c.str("function")
	if err != nil {
		return nil, err
	}
	if !RollupFunction(fn).Valid() {
		return nil, invalidEnum(c.at("function"), rollupFunctions, fn)
	}
	r := RollupValue{Type: RollupType(t), Function: RollupFunction(fn)}
	switch r.Type {
	case RollupNumber:
		if _, ok := c.m["number"]; !ok {
			return nil, required(c.at("number"), "number or null")
		}
		if r.Number, err = c.nullableNumber("number"); err != nil {
			return nil, err
		}
	case RollupDate:
		if _, ok := c.m["date"]; !ok {
			return nil, required(c.at("date"), "date object or null")
		}
		dc, ok, err := c.nullableObj("date", "date object")
		if err != nil {
			return nil, err
		}
		if ok {
			dv, err := d.date(dc)
			if err != nil {
				return nil, err
			}
			r.Date = &dv
		}
	case RollupArray:
		items, err := c.array("array", "array of property values", false)
		if err != nil {
			return nil, err
		}
		inner := decoder{side: d.side, inRollup: true}
		r.Array = make([]PropertyValue, 0, len(items))
		for i, item := range items {
			pv, err := inner.value(item, indexPath(c.at("array"), i), false)
			if err != nil {
				return nil, err
			}
			r.Array = append(r.Array, pv)
		}
	}
	return &RollupProperty{Base: b, Rollup: r}, nil
}
