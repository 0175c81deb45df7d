// Defines the payload types nested inside property values.

package property

// SelectOption is a select, multi_select or status option.
//
// Response options always carry all three fields. Request options are
// identified by ID or by Name; Color is optional.
type SelectOption struct {
	ID    string
	Name  string
	Color Color
}

// DateValue is a date, date-time or range. End and TimeZone are independent
// of each other.
type DateValue struct {
	Start    string
	End      *string
	TimeZone *string
}

// PageRef is a reference to another page.
type PageRef struct {
	ID string
}

// DatabaseRef is a reference to a database.
type DatabaseRef struct {
	ID string
}

// RichTextType discriminates rich text spans.
type RichTextType string

// Rich text span kinds.
const (
	RichTextText     RichTextType = "text"
	RichTextMention  RichTextType = "mention"
	RichTextEquation RichTextType = "equation"
)

// RichText is one span of formatted text.
//
// PlainText and Href are resolved by the server and only meaningful on
// response values.
type RichText struct {
	Type        RichTextType
	Text        *TextContent
	Mention     *Mention
	Equation    *Equation
	Annotations *Annotations
	PlainText   string
	Href        *string
}

// TextContent is the payload of a text span.
type TextContent struct {
	Content string
	Link    *Link
}

// Link is a hyperlink.
type Link struct {
	URL string
}

// Equation is a LaTeX expression.
type Equation struct {
	Expression string
}

// Annotations is the display styling of a span.
type Annotations struct {
	Bold          bool
	Italic        bool
	Strikethrough bool
	Underline     bool
	Code          bool
	Color         Color
}

// MentionType discriminates mentions.
type MentionType string

// Mention kinds.
const (
	MentionUser            MentionType = "user"
	MentionDate            MentionType = "date"
	MentionPage            MentionType = "page"
	MentionDatabase        MentionType = "database"
	MentionLinkPreview     MentionType = "link_preview"
	MentionTemplateMention MentionType = "template_mention"
)

// Mention is the payload of a mention span. Only the field matching Type is set.
type Mention struct {
	Type            MentionType
	User            *User
	Date            *DateValue
	Page            *PageRef
	Database        *DatabaseRef
	LinkPreview     *Link
	TemplateMention *TemplateMention
}

// TemplateMention is a placeholder resolved when a template is applied.
type TemplateMention struct {
	Type string // "template_mention_date" or "template_mention_user"
	Date string // "today" or "now"
	User string // "me"
}

// UserType discriminates users. The zero value is a partial user, which only
// carries its id.
type UserType string

// User kinds.
const (
	UserPartial UserType = ""
	UserPerson  UserType = "person"
	UserBot     UserType = "bot"
)

// User is a workspace member or integration.
type User struct {
	ID        string
	Type      UserType
	Name      *string
	AvatarURL *string
	Person    *PersonDetails
	Bot       *BotDetails
}

// PersonDetails holds person-only fields.
type PersonDetails struct {
	Email string
}

// BotDetails holds bot-only fields.
type BotDetails struct {
	Owner         BotOwner
	WorkspaceName *string
}

// BotOwner is either a user or the workspace.
type BotOwner struct {
	Type      string // "user" or "workspace"
	User      *User
	Workspace bool
}

// FileValue is one entry of a files property.
type FileValue struct {
	Name     string
	Type     string // "file" or "external"
	File     *HostedFile
	External *Link
}

// HostedFile is a file hosted by Notion; its URL expires.
type HostedFile struct {
	URL        string
	ExpiryTime string
}

// FormulaType discriminates formula results.
type FormulaType string

// Formula result kinds.
const (
	FormulaString  FormulaType = "string"
	FormulaNumber  FormulaType = "number"
	FormulaBoolean FormulaType = "boolean"
	FormulaDate    FormulaType = "date"
)

// FormulaValue is a formula result. Only the field matching Type may be set,
// and it is nil when the formula evaluated to nothing.
type FormulaValue struct {
	Type    FormulaType
	String  *string
	Number  *float64
	Boolean *bool
	Date    *DateValue
}

// RollupType discriminates rollup results.
type RollupType string

// Rollup result kinds.
const (
	RollupNumber RollupType = "number"
	RollupDate   RollupType = "date"
	RollupArray  RollupType = "array"
)

// RollupValue is a rollup result.
//
// Array items are leaf property values without ids; a rollup never nests
// another rollup.
type RollupValue struct {
	Type     RollupType
	Number   *float64
	Date     *DateValue
	Array    []PropertyValue
	Function RollupFunction
}

// UniqueIDValue is an auto-incremented id with an optional prefix.
type UniqueIDValue struct {
	Prefix *string
	Number *float64
}

// VerificationState is the state of a verification property.
type VerificationState string

// Verification states.
const (
	VerificationUnverified VerificationState = "unverified"
	VerificationVerified   VerificationState = "verified"
	VerificationExpired    VerificationState = "expired"
)

// VerificationValue is a verification result. Date and VerifiedBy are always
// nil when unverified.
type VerificationValue struct {
	State      VerificationState
	Date       *DateValue
	VerifiedBy *User
}
