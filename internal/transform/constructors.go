// Transforms for every property type with a natural projection.

package transform

import (
	"time"

	"github.com/maruel/notionprops/internal/property"
	"github.com/maruel/notionprops/internal/retrieve"
)

// TitleToString projects a title to its plain text.
func TitleToString() Transform[string] {
	return required("title to string", property.TypeTitle, retrieve.Title)
}

// TitleToOptionString projects a title, null included.
func TitleToOptionString() Transform[Option[string]] {
	return optional("title to option string", property.TypeTitle, retrieve.Title)
}

// RichTextToString projects rich text to its plain text.
func RichTextToString() Transform[string] {
	return required("rich text to string", property.TypeRichText, retrieve.RichText)
}

// RichTextToOptionString projects rich text, null included.
func RichTextToOptionString() Transform[Option[string]] {
	return optional("rich text to option string", property.TypeRichText, retrieve.RichText)
}

// RelationToStrings projects a relation to its page ids.
func RelationToStrings() Transform[[]string] {
	return total("relation to strings", property.TypeRelation, retrieve.Relation)
}

// UniqueIDToString projects a unique id to "PREFIX-N".
func UniqueIDToString() Transform[string] {
	return required("unique id to string", property.TypeUniqueID, retrieve.UniqueID)
}

// UniqueIDToOptionString projects a unique id, null number included.
func UniqueIDToOptionString() Transform[Option[string]] {
	return optional("unique id to option string", property.TypeUniqueID, retrieve.UniqueID)
}

// CreatedTimeToDate projects the creation instant.
func CreatedTimeToDate() Transform[time.Time] {
	return required("created time to date", property.TypeCreatedTime, retrieve.CreatedTime)
}

// LastEditedTimeToDate projects the last edition instant.
func LastEditedTimeToDate() Transform[time.Time] {
	return required("last edited time to date", property.TypeLastEditedTime, retrieve.LastEditedTime)
}

// DateToDate projects a date to its start instant.
func DateToDate() Transform[time.Time] {
	return required("date to date", property.TypeDate, retrieve.Date)
}

// DateToOptionDate projects a date, null included.
func DateToOptionDate() Transform[Option[time.Time]] {
	return optional("date to option date", property.TypeDate, retrieve.Date)
}

// DateToRange projects a date with both endpoints set.
func DateToRange() Transform[Option[retrieve.Range]] {
	return optional("date to range", property.TypeDate, retrieve.DateRange)
}

// URLToString projects a url.
func URLToString() Transform[string] {
	return required("url to string", property.TypeURL, retrieve.URL)
}

// URLToOptionString projects a url, null included.
func URLToOptionString() Transform[Option[string]] {
	return optional("url to option string", property.TypeURL, retrieve.URL)
}

// EmailToOptionString projects an email address.
func EmailToOptionString() Transform[Option[string]] {
	return optional("email to option string", property.TypeEmail, retrieve.Email)
}

// PhoneNumberToOptionString projects a phone number.
func PhoneNumberToOptionString() Transform[Option[string]] {
	return optional("phone number to option string", property.TypePhoneNumber, retrieve.PhoneNumber)
}

// NumberToFloat projects a number.
func NumberToFloat() Transform[float64] {
	return required("number to float", property.TypeNumber, retrieve.Number)
}

// NumberToOptionFloat projects a number, null included.
func NumberToOptionFloat() Transform[Option[float64]] {
	return optional("number to option float", property.TypeNumber, retrieve.Number)
}

// CheckboxToBool projects a checkbox.
func CheckboxToBool() Transform[bool] {
	return total("checkbox to bool", property.TypeCheckbox, retrieve.Checkbox)
}

// PeopleToStrings projects people to their names.
func PeopleToStrings() Transform[[]string] {
	return total("people to strings", property.TypePeople, retrieve.People)
}

// SelectToString projects a select to its option name.
func SelectToString() Transform[string] {
	return required("select to string", property.TypeSelect, retrieve.Select)
}

// SelectToOptionString projects a select, null included.
func SelectToOptionString() Transform[Option[string]] {
	return optional("select to option string", property.TypeSelect, retrieve.Select)
}

// StatusToString projects a status to its name.
func StatusToString() Transform[string] {
	return required("status to string", property.TypeStatus, retrieve.Status)
}

// MultiSelectToStrings projects a multi select to its option names.
func MultiSelectToStrings() Transform[[]string] {
	return total("multi select to strings", property.TypeMultiSelect, retrieve.MultiSelect)
}

// NumberRollupToFloat projects a number rollup.
func NumberRollupToFloat() Transform[float64] {
	return required("number rollup to float", property.TypeRollup, retrieve.NumberRollup)
}

// DateRollupToDate projects a date rollup to its start instant.
func DateRollupToDate() Transform[time.Time] {
	return required("date rollup to date", property.TypeRollup, retrieve.DateRollup)
}

// FormulaToString projects any formula result to its string form.
func FormulaToString() Transform[string] {
	return required("formula to string", property.TypeFormula, retrieve.Formula)
}

// FilesToStrings projects files to their urls.
func FilesToStrings() Transform[[]string] {
	return total("files to strings", property.TypeFiles, retrieve.Files)
}

// CreatedByToString projects the creator to its user id.
func CreatedByToString() Transform[string] {
	return total("created by to string", property.TypeCreatedBy, retrieve.CreatedBy)
}

// LastEditedByToString projects the last editor to its user id.
func LastEditedByToString() Transform[string] {
	return total("last edited by to string", property.TypeLastEditedBy, retrieve.LastEditedBy)
}
