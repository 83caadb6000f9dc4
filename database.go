// Defines the database object.

package notion

import "time"

// Database represents a Notion database: a titled collection of pages
// sharing a property schema.
// Reference: https://developers.notion.com/reference/database
type Database struct {
	Object         string                    `json:"object"` // Always "database".
	ID             ObjectID                  `json:"id"`
	CreatedTime    time.Time                 `json:"created_time"`
	CreatedBy      *User                     `json:"created_by,omitempty"`
	LastEditedTime time.Time                 `json:"last_edited_time"`
	LastEditedBy   *User                     `json:"last_edited_by,omitempty"`
	Title          []RichText                `json:"title"`
	Description    []RichText                `json:"description,omitempty"`
	Icon           *Icon                     `json:"icon,omitempty"`
	Cover          *File                     `json:"cover,omitempty"`
	Properties     map[string]PropertyConfig `json:"properties"`
	Parent         Parent                    `json:"parent"`
	URL            string                    `json:"url,omitempty"`
	PublicURL      *string                   `json:"public_url,omitempty"`
	Archived       bool                      `json:"archived"`
	InTrash        bool                      `json:"in_trash,omitempty"`
	IsInline       bool                      `json:"is_inline,omitempty"`
}

// PlainTitle returns the database title as plain text.
func (d *Database) PlainTitle() string {
	return PlainText(d.Title)
}

// TitleProperty returns the name of the schema's title column, empty
// when the schema has none.
func (d *Database) TitleProperty() string {
	for name, c := range d.Properties {
		if c.Type == PropertyTypeTitle {
			return name
		}
	}
	return ""
}

// Validate checks the database object shape and its schema. A complete
// schema must contain exactly one title property.
func (d *Database) Validate() error {
	if d.Object != "" && d.Object != "database" {
		return InvalidField("object", `must be "database"`)
	}
	if err := d.ID.Validate(); err != nil {
		return err
	}
	if err := d.Parent.Validate(); err != nil {
		return prefixField("parent", err)
	}
	if err := validateRichText("title", d.Title); err != nil {
		return err
	}
	if err := validateRichText("description", d.Description); err != nil {
		return err
	}
	if d.Icon != nil {
		if err := d.Icon.Validate(); err != nil {
			return prefixField("icon", err)
		}
	}
	titles := 0
	for name, c := range d.Properties {
		if err := c.Validate(); err != nil {
			return prefixField("properties."+name, err)
		}
		if c.Type == PropertyTypeTitle {
			titles++
		}
	}
	if len(d.Properties) > 0 && titles != 1 {
		return InvalidField("properties", "schema must contain exactly one title property")
	}
	return nil
}
