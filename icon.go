// Defines page and database icons, including emoji validation.

package notion

import "github.com/forPelevin/gomoji"

// IconType discriminates icon variants.
type IconType string

const (
	IconTypeEmoji       IconType = "emoji"
	IconTypeExternal    IconType = "external"
	IconTypeFile        IconType = "file"
	IconTypeCustomEmoji IconType = "custom_emoji"
)

// Icon is a page or database icon.
// Reference: https://developers.notion.com/reference/emoji-object
type Icon struct {
	Type IconType `json:"type"`

	Emoji       string       `json:"emoji,omitempty"`
	External    *ExternalRef `json:"external,omitempty"`
	File        *FileRef     `json:"file,omitempty"`
	CustomEmoji *CustomEmoji `json:"custom_emoji,omitempty"`
}

// CustomEmoji is a workspace custom emoji.
type CustomEmoji struct {
	ID   ObjectID `json:"id"`
	Name string   `json:"name,omitempty"`
	URL  string   `json:"url,omitempty"`
}

// NewEmojiIcon returns an emoji icon. The string must contain an
// emoji; plain text is rejected the same way the API rejects it.
func NewEmojiIcon(emoji string) (*Icon, error) {
	icon := &Icon{Type: IconTypeEmoji, Emoji: emoji}
	if err := icon.Validate(); err != nil {
		return nil, err
	}
	return icon, nil
}

// NewExternalIcon returns an icon backed by an external image URL.
func NewExternalIcon(url string) *Icon {
	return &Icon{Type: IconTypeExternal, External: &ExternalRef{URL: url}}
}

// Validate checks the icon discriminator, emoji content, and URLs.
func (i *Icon) Validate() error {
	switch i.Type {
	case IconTypeEmoji:
		if i.Emoji == "" {
			return MissingField("emoji")
		}
		if !gomoji.ContainsEmoji(i.Emoji) {
			return InvalidField("emoji", "not an emoji")
		}
	case IconTypeExternal:
		if i.External == nil {
			return MissingField("external")
		}
		return validateURL("external.url", i.External.URL)
	case IconTypeFile:
		if i.File == nil {
			return MissingField("file")
		}
		return validateURL("file.url", i.File.URL)
	case IconTypeCustomEmoji:
		if i.CustomEmoji == nil {
			return MissingField("custom_emoji")
		}
		return prefixField("custom_emoji", i.CustomEmoji.ID.Validate())
	case "":
		return MissingField("type")
	default:
		return InvalidField("type", "unknown icon type "+string(i.Type))
	}
	return nil
}
