// Defines search results and search parameters.

package notion

import (
	"encoding/json"
	"fmt"
	"time"
)

// SearchResult is one item of a search response. The search endpoint
// mixes pages and databases; their "properties" payloads differ
// (values vs schema definitions), so properties stay raw until the
// caller resolves them based on Object.
type SearchResult struct {
	Object         string    `json:"object"` // "page" or "database"
	ID             ObjectID  `json:"id"`
	CreatedTime    time.Time `json:"created_time"`
	LastEditedTime time.Time `json:"last_edited_time"`
	Parent         Parent    `json:"parent"`
	Archived       bool      `json:"archived"`
	Icon           *Icon     `json:"icon,omitempty"`
	URL            string    `json:"url,omitempty"`

	PropertiesRaw json.RawMessage `json:"properties,omitempty"`

	// Databases only.
	Title       []RichText `json:"title,omitempty"`
	Description []RichText `json:"description,omitempty"`
	IsInline    bool       `json:"is_inline,omitempty"`
}

// PageProperties resolves the raw properties as page property values.
func (r *SearchResult) PageProperties() (map[string]PropertyValue, error) {
	if r.Object != "page" {
		return nil, fmt.Errorf("not a page result: object is %q", r.Object)
	}
	var props map[string]PropertyValue
	if len(r.PropertiesRaw) > 0 {
		if err := json.Unmarshal(r.PropertiesRaw, &props); err != nil {
			return nil, fmt.Errorf("failed to parse page properties: %w", err)
		}
	}
	return props, nil
}

// DatabaseProperties resolves the raw properties as a database schema.
func (r *SearchResult) DatabaseProperties() (map[string]PropertyConfig, error) {
	if r.Object != "database" {
		return nil, fmt.Errorf("not a database result: object is %q", r.Object)
	}
	var props map[string]PropertyConfig
	if len(r.PropertiesRaw) > 0 {
		if err := json.Unmarshal(r.PropertiesRaw, &props); err != nil {
			return nil, fmt.Errorf("failed to parse database schema: %w", err)
		}
	}
	return props, nil
}

// Validate checks the result envelope. Raw properties are validated
// when they resolve for the declared object kind.
func (r *SearchResult) Validate() error {
	switch r.Object {
	case "page":
		props, err := r.PageProperties()
		if err != nil {
			return prefixField("properties", err)
		}
		for name, v := range props {
			if err := v.Validate(); err != nil {
				return prefixField("properties."+name, err)
			}
		}
	case "database":
		props, err := r.DatabaseProperties()
		if err != nil {
			return prefixField("properties", err)
		}
		for name, c := range props {
			if err := c.Validate(); err != nil {
				return prefixField("properties."+name, err)
			}
		}
	case "":
		return MissingField("object")
	default:
		return InvalidField("object", `must be "page" or "database"`)
	}
	return r.ID.Validate()
}

// SearchFilter restricts search results to pages or databases.
type SearchFilter struct {
	Value    string `json:"value"`    // "page" or "database"
	Property string `json:"property"` // Always "object".
}

// Validate checks the filter's fixed vocabulary.
func (f *SearchFilter) Validate() error {
	if f.Value != "page" && f.Value != "database" {
		return InvalidField("value", `must be "page" or "database"`)
	}
	if f.Property != "object" {
		return InvalidField("property", `must be "object"`)
	}
	return nil
}

// SortDirection orders query and search results.
type SortDirection string

const (
	SortAscending  SortDirection = "ascending"
	SortDescending SortDirection = "descending"
)

// SearchSort orders search results. Only last_edited_time is
// supported by the API.
type SearchSort struct {
	Direction SortDirection `json:"direction"`
	Timestamp string        `json:"timestamp"` // Always "last_edited_time".
}

// Validate checks the sort's fixed vocabulary.
func (s *SearchSort) Validate() error {
	if s.Direction != SortAscending && s.Direction != SortDescending {
		return InvalidField("direction", `must be "ascending" or "descending"`)
	}
	if s.Timestamp != "last_edited_time" {
		return InvalidField("timestamp", `must be "last_edited_time"`)
	}
	return nil
}
