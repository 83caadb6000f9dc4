// Defines rich text segments, mentions, and annotations.

package notion

import "strings"

// RichTextType discriminates rich text segment variants.
type RichTextType string

const (
	RichTextTypeText     RichTextType = "text"
	RichTextTypeMention  RichTextType = "mention"
	RichTextTypeEquation RichTextType = "equation"
)

// RichText is one segment of formatted text content.
// Reference: https://developers.notion.com/reference/rich-text
type RichText struct {
	Type RichTextType `json:"type,omitempty"`

	// Exactly one of the following matches Type.
	Text     *Text     `json:"text,omitempty"`
	Mention  *Mention  `json:"mention,omitempty"`
	Equation *Equation `json:"equation,omitempty"`

	Annotations *Annotations `json:"annotations,omitempty"`
	PlainText   string       `json:"plain_text,omitempty"`
	Href        *string      `json:"href,omitempty"`
}

// Text is the payload of a "text" segment.
type Text struct {
	Content string `json:"content"`
	Link    *Link  `json:"link,omitempty"`
}

// Link is a hyperlink inside a text segment.
type Link struct {
	URL string `json:"url"`
}

// Equation is a LaTeX expression, in rich text or as a block.
type Equation struct {
	Expression string `json:"expression"`
}

// Annotations describes text formatting on a segment.
type Annotations struct {
	Bold          bool  `json:"bold,omitempty"`
	Italic        bool  `json:"italic,omitempty"`
	Strikethrough bool  `json:"strikethrough,omitempty"`
	Underline     bool  `json:"underline,omitempty"`
	Code          bool  `json:"code,omitempty"`
	Color         Color `json:"color,omitempty"`
}

// MentionType discriminates mention variants.
type MentionType string

const (
	MentionTypeUser            MentionType = "user"
	MentionTypePage            MentionType = "page"
	MentionTypeDatabase        MentionType = "database"
	MentionTypeDate            MentionType = "date"
	MentionTypeLinkPreview     MentionType = "link_preview"
	MentionTypeTemplateMention MentionType = "template_mention"
	MentionTypeCustomEmoji     MentionType = "custom_emoji"
)

// Mention is an inline reference inside rich text.
// Reference: https://developers.notion.com/reference/rich-text#mention
type Mention struct {
	Type MentionType `json:"type"`

	User            *User            `json:"user,omitempty"`
	Page            *PageRef         `json:"page,omitempty"`
	Database        *DatabaseRef     `json:"database,omitempty"`
	Date            *DateValue       `json:"date,omitempty"`
	LinkPreview     *LinkPreview     `json:"link_preview,omitempty"`
	TemplateMention *TemplateMention `json:"template_mention,omitempty"`
	CustomEmoji     *CustomEmoji     `json:"custom_emoji,omitempty"`
}

// PageRef is a reference to a page by ID.
type PageRef struct {
	ID ObjectID `json:"id"`
}

// DatabaseRef is a reference to a database by ID.
type DatabaseRef struct {
	ID ObjectID `json:"id"`
}

// LinkPreview is the payload of a link preview mention or block.
type LinkPreview struct {
	URL string `json:"url"`
}

// TemplateMention is a placeholder mention inside a template
// ("today", "now", "me").
type TemplateMention struct {
	Type                string `json:"type"` // "template_mention_date" or "template_mention_user"
	TemplateMentionDate string `json:"template_mention_date,omitempty"`
	TemplateMentionUser string `json:"template_mention_user,omitempty"`
}

// NewTextRichText returns a plain text segment. It covers the common
// case; set Annotations or Text.Link on the result for formatting.
func NewTextRichText(content string) RichText {
	return RichText{
		Type:      RichTextTypeText,
		Text:      &Text{Content: content},
		PlainText: content,
	}
}

// NewLinkRichText returns a text segment that links to url.
func NewLinkRichText(content, url string) RichText {
	return RichText{
		Type:      RichTextTypeText,
		Text:      &Text{Content: content, Link: &Link{URL: url}},
		PlainText: content,
		Href:      &url,
	}
}

// NewEquationRichText returns an inline equation segment.
func NewEquationRichText(expression string) RichText {
	return RichText{
		Type:      RichTextTypeEquation,
		Equation:  &Equation{Expression: expression},
		PlainText: expression,
	}
}

// NewUserMention returns a mention of a user.
func NewUserMention(id ObjectID) RichText {
	return RichText{
		Type:    RichTextTypeMention,
		Mention: &Mention{Type: MentionTypeUser, User: &User{Object: "user", ID: id}},
	}
}

// NewPageMention returns a mention of a page.
func NewPageMention(id ObjectID) RichText {
	return RichText{
		Type:    RichTextTypeMention,
		Mention: &Mention{Type: MentionTypePage, Page: &PageRef{ID: id}},
	}
}

// NewDatabaseMention returns a mention of a database.
func NewDatabaseMention(id ObjectID) RichText {
	return RichText{
		Type:    RichTextTypeMention,
		Mention: &Mention{Type: MentionTypeDatabase, Database: &DatabaseRef{ID: id}},
	}
}

// NewDateMention returns a mention of a date value.
func NewDateMention(d *DateValue) RichText {
	return RichText{
		Type:    RichTextTypeMention,
		Mention: &Mention{Type: MentionTypeDate, Date: d},
	}
}

// PlainText concatenates the plain text of all segments.
func PlainText(rts []RichText) string {
	var b strings.Builder
	for i := range rts {
		b.WriteString(rts[i].PlainText)
	}
	return b.String()
}

// Validate checks the segment discriminator and nested payloads.
func (r *RichText) Validate() error {
	switch r.Type {
	case RichTextTypeText, "":
		// Type may be omitted when writing; the API infers "text".
		if r.Mention != nil || r.Equation != nil {
			return InvalidField("type", "payload does not match type \"text\"")
		}
		if r.Text == nil && r.Type == RichTextTypeText {
			return MissingField("text")
		}
		if r.Text != nil && r.Text.Link != nil {
			if err := validateURL("text.link.url", r.Text.Link.URL); err != nil {
				return err
			}
		}
	case RichTextTypeMention:
		if r.Text != nil || r.Equation != nil {
			return InvalidField("type", "payload does not match type \"mention\"")
		}
		if r.Mention == nil {
			return MissingField("mention")
		}
		if err := r.Mention.Validate(); err != nil {
			return prefixField("mention", err)
		}
	case RichTextTypeEquation:
		if r.Text != nil || r.Mention != nil {
			return InvalidField("type", "payload does not match type \"equation\"")
		}
		if r.Equation == nil {
			return MissingField("equation")
		}
		if r.Equation.Expression == "" {
			return MissingField("equation.expression")
		}
	default:
		return InvalidField("type", "unknown rich text type "+string(r.Type))
	}
	if r.Annotations != nil {
		if err := validateColor("annotations.color", r.Annotations.Color); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the mention discriminator against its payload.
func (m *Mention) Validate() error {
	var ok bool
	switch m.Type {
	case MentionTypeUser:
		ok = m.User != nil
	case MentionTypePage:
		ok = m.Page != nil
	case MentionTypeDatabase:
		ok = m.Database != nil
	case MentionTypeDate:
		if m.Date == nil {
			return MissingField("date")
		}
		return prefixField("date", m.Date.Validate())
	case MentionTypeLinkPreview:
		if m.LinkPreview == nil {
			return MissingField("link_preview")
		}
		return validateURL("link_preview.url", m.LinkPreview.URL)
	case MentionTypeTemplateMention:
		ok = m.TemplateMention != nil
	case MentionTypeCustomEmoji:
		ok = m.CustomEmoji != nil
	default:
		return InvalidField("type", "unknown mention type "+string(m.Type))
	}
	if !ok {
		return MissingField(string(m.Type))
	}
	return nil
}
