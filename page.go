// Defines the page object.

package notion

import "time"

// Page represents a Notion page, including database rows.
// Reference: https://developers.notion.com/reference/page
type Page struct {
	Object         string                   `json:"object"` // Always "page".
	ID             ObjectID                 `json:"id"`
	CreatedTime    time.Time                `json:"created_time"`
	CreatedBy      *User                    `json:"created_by,omitempty"`
	LastEditedTime time.Time                `json:"last_edited_time"`
	LastEditedBy   *User                    `json:"last_edited_by,omitempty"`
	Archived       bool                     `json:"archived"`
	InTrash        bool                     `json:"in_trash,omitempty"`
	Icon           *Icon                    `json:"icon,omitempty"`
	Cover          *File                    `json:"cover,omitempty"`
	Parent         Parent                   `json:"parent"`
	Properties     map[string]PropertyValue `json:"properties"`
	URL            string                   `json:"url,omitempty"`
	PublicURL      *string                  `json:"public_url,omitempty"`
}

// Title returns the page title as plain text, empty when the page has
// no title property. For database rows the title property may have any
// name; for plain pages it is named "title".
func (p *Page) Title() string {
	for _, v := range p.Properties {
		if v.Type == PropertyTypeTitle {
			return PlainText(v.Title)
		}
	}
	return ""
}

// TitleProperty returns the name of the title property, empty when
// none exists.
func (p *Page) TitleProperty() string {
	for name, v := range p.Properties {
		if v.Type == PropertyTypeTitle {
			return name
		}
	}
	return ""
}

// Validate checks the page object shape and every property value.
func (p *Page) Validate() error {
	if p.Object != "" && p.Object != "page" {
		return InvalidField("object", `must be "page"`)
	}
	if err := p.ID.Validate(); err != nil {
		return err
	}
	if err := p.Parent.Validate(); err != nil {
		return prefixField("parent", err)
	}
	if p.Icon != nil {
		if err := p.Icon.Validate(); err != nil {
			return prefixField("icon", err)
		}
	}
	if p.Cover != nil {
		if err := p.Cover.Validate(); err != nil {
			return prefixField("cover", err)
		}
	}
	for name, v := range p.Properties {
		if err := v.Validate(); err != nil {
			return prefixField("properties."+name, err)
		}
	}
	return nil
}
