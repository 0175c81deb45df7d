// Defines the PropertyValue union and its variants.

package property

// Type is the discriminant of a property value ("type" on the wire).
type Type string

// Property value tags.
const (
	TypeNumber         Type = "number"
	TypeURL            Type = "url"
	TypeSelect         Type = "select"
	TypeMultiSelect    Type = "multi_select"
	TypeStatus         Type = "status"
	TypeDate           Type = "date"
	TypeEmail          Type = "email"
	TypePhoneNumber    Type = "phone_number"
	TypeCheckbox       Type = "checkbox"
	TypeFiles          Type = "files"
	TypeCreatedBy      Type = "created_by"
	TypeCreatedTime    Type = "created_time"
	TypeLastEditedBy   Type = "last_edited_by"
	TypeLastEditedTime Type = "last_edited_time"
	TypeFormula        Type = "formula"
	TypeUniqueID       Type = "unique_id"
	TypeVerification   Type = "verification"
	TypeTitle          Type = "title"
	TypeRichText       Type = "rich_text"
	TypePeople         Type = "people"
	TypeRelation       Type = "relation"
	TypeRollup         Type = "rollup"
)

// Types lists every known tag, in wire documentation order.
var Types = []Type{
	TypeNumber, TypeURL, TypeSelect, TypeMultiSelect, TypeStatus, TypeDate,
	TypeEmail, TypePhoneNumber, TypeCheckbox, TypeFiles, TypeCreatedBy,
	TypeCreatedTime, TypeLastEditedBy, TypeLastEditedTime, TypeFormula,
	TypeUniqueID, TypeVerification, TypeTitle, TypeRichText, TypePeople,
	TypeRelation, TypeRollup,
}

// Valid reports whether t is a known tag.
func (t Type) Valid() bool {
	_, ok := decoders[t]
	return ok
}

// ReadOnly reports whether values of this type are computed by the server
// and can never be part of a write request.
func (t Type) ReadOnly() bool {
	switch t {
	case TypeFormula, TypeRollup, TypeUniqueID, TypeVerification,
		TypeCreatedTime, TypeCreatedBy, TypeLastEditedTime, TypeLastEditedBy:
		return true
	default:
		return false
	}
}

// Side selects the direction a value is decoded for.
type Side int

const (
	// Response is the shape returned by the server, with server-assigned
	// ids, colors and resolved plain text.
	Response Side = iota
	// Request is the shape accepted in create and update calls.
	Request
)

func (s Side) String() string {
	if s == Request {
		return "request"
	}
	return "response"
}

// PropertyValue is one decoded property value.
//
// The set of implementations is closed; switch on the concrete type.
type PropertyValue interface {
	// PropertyType returns the discriminant.
	PropertyType() Type
	// PropertyID returns the server-assigned property id. Empty for request
	// values and rollup array items.
	PropertyID() string

	isPropertyValue()
}

// Base holds the fields common to every variant.
type Base struct {
	ID string
}

// PropertyID implements PropertyValue.
func (b Base) PropertyID() string { return b.ID }

func (Base) isPropertyValue() {}

// NumberProperty is a number value; nil when cleared.
type NumberProperty struct {
	Base
	Number *float64
}

// URLProperty is a url value; nil when cleared.
type URLProperty struct {
	Base
	URL *string
}

// EmailProperty is an email value; nil when cleared.
type EmailProperty struct {
	Base
	Email *string
}

// PhoneNumberProperty is a phone number value; nil when cleared.
type PhoneNumberProperty struct {
	Base
	PhoneNumber *string
}

// CheckboxProperty is a checkbox value.
type CheckboxProperty struct {
	Base
	Checkbox bool
}

// SelectProperty is a single select value; nil when cleared.
type SelectProperty struct {
	Base
	Select *SelectOption
}

// StatusProperty is a status value; nil when cleared.
type StatusProperty struct {
	Base
	Status *SelectOption
}

// MultiSelectProperty holds the selected options in display order.
type MultiSelectProperty struct {
	Base
	MultiSelect []SelectOption
}

// DateProperty is a date or date range; nil when cleared.
type DateProperty struct {
	Base
	Date *DateValue
}

// TitleProperty is the title of a page. Title is nil when the server sent null.
type TitleProperty struct {
	Base
	Title []RichText
}

// RichTextProperty is a text property. RichText is nil when the server sent null.
type RichTextProperty struct {
	Base
	RichText []RichText
}

// RelationProperty lists related pages in display order.
type RelationProperty struct {
	Base
	Relation []PageRef
}

// PeopleProperty lists users.
type PeopleProperty struct {
	Base
	People []User
}

// FilesProperty lists attached files.
type FilesProperty struct {
	Base
	Files []FileValue
}

// FormulaProperty is the computed result of a formula.
type FormulaProperty struct {
	Base
	Formula FormulaValue
}

// RollupProperty is the aggregated value of a rollup.
type RollupProperty struct {
	Base
	Rollup RollupValue
}

// UniqueIDProperty is an auto-incremented identifier.
type UniqueIDProperty struct {
	Base
	UniqueID UniqueIDValue
}

// VerificationProperty is the verification state of a wiki page.
type VerificationProperty struct {
	Base
	Verification VerificationValue
}

// CreatedTimeProperty is the page creation instant, as sent by the server.
type CreatedTimeProperty struct {
	Base
	CreatedTime string
}

// LastEditedTimeProperty is the last edition instant, as sent by the server.
type LastEditedTimeProperty struct {
	Base
	LastEditedTime string
}

// CreatedByProperty is the user who created the page.
type CreatedByProperty struct {
	Base
	CreatedBy User
}

// LastEditedByProperty is the user who last edited the page.
type LastEditedByProperty struct {
	Base
	LastEditedBy User
}

// PropertyType implements PropertyValue.
func (*NumberProperty) PropertyType() Type { return TypeNumber }

// PropertyType implements PropertyValue.
func (*URLProperty) PropertyType() Type { return TypeURL }

// PropertyType implements PropertyValue.
func (*EmailProperty) PropertyType() Type { return TypeEmail }

// PropertyType implements PropertyValue.
func (*PhoneNumberProperty) PropertyType() Type { return TypePhoneNumber }

// PropertyType implements PropertyValue.
func (*CheckboxProperty) PropertyType() Type { return TypeCheckbox }

// PropertyType implements PropertyValue.
func (*SelectProperty) PropertyType() Type { return TypeSelect }

// PropertyType implements PropertyValue.
func (*StatusProperty) PropertyType() Type { return TypeStatus }

// PropertyType implements PropertyValue.
func (*MultiSelectProperty) PropertyType() Type { return TypeMultiSelect }

// PropertyType implements PropertyValue.
func (*DateProperty) PropertyType() Type { return TypeDate }

// PropertyType implements PropertyValue.
func (*TitleProperty) PropertyType() Type { return TypeTitle }

// PropertyType implements PropertyValue.
func (*RichTextProperty) PropertyType() Type { return TypeRichText }

// PropertyType implements PropertyValue.
func (*RelationProperty) PropertyType() Type { return TypeRelation }

// PropertyType implements PropertyValue.
func (*PeopleProperty) PropertyType() Type { return TypePeople }

// PropertyType implements PropertyValue.
func (*FilesProperty) PropertyType() Type { return TypeFiles }

// PropertyType implements PropertyValue.
func (*FormulaProperty) PropertyType() Type { return TypeFormula }

// PropertyType implements PropertyValue.
func (*RollupProperty) PropertyType() Type { return TypeRollup }

// PropertyType implements PropertyValue.
func (*UniqueIDProperty) PropertyType() Type { return TypeUniqueID }

// PropertyType implements PropertyValue.
func (*VerificationProperty) PropertyType() Type { return TypeVerification }

// PropertyType implements PropertyValue.
func (*CreatedTimeProperty) PropertyType() Type { return TypeCreatedTime }

// PropertyType implements PropertyValue.
func (*LastEditedTimeProperty) PropertyType() Type { return TypeLastEditedTime }

// PropertyType implements PropertyValue.
func (*CreatedByProperty) PropertyType() Type { return TypeCreatedBy }

// PropertyType implements PropertyValue.
func (*LastEditedByProperty) PropertyType() Type { return TypeLastEditedBy }
