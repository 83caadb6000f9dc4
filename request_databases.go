// Request and response models for the databases endpoints.

package notion

// Sort orders database query results by a property or timestamp.
type Sort struct {
	Property  string        `json:"property,omitempty"`
	Timestamp string        `json:"timestamp,omitempty"` // "created_time" or "last_edited_time"
	Direction SortDirection `json:"direction"`
}

// Validate validates the sort: exactly one of property/timestamp and
// a known direction.
func (s *Sort) Validate() error {
	if (s.Property == "") == (s.Timestamp == "") {
		return InvalidField("property", "exactly one of property and timestamp must be set")
	}
	if s.Timestamp != "" && s.Timestamp != "created_time" && s.Timestamp != "last_edited_time" {
		return InvalidField("timestamp", `must be "created_time" or "last_edited_time"`)
	}
	if s.Direction != SortAscending && s.Direction != SortDescending {
		return InvalidField("direction", `must be "ascending" or "descending"`)
	}
	return nil
}

// CreateDatabaseRequest is the body of POST /v1/databases.
// Reference: https://developers.notion.com/reference/create-a-database
type CreateDatabaseRequest struct {
	Parent     Parent                    `json:"parent"`
	Title      []RichText                `json:"title,omitempty"`
	Properties map[string]PropertyConfig `json:"properties"`
	IsInline   bool                      `json:"is_inline,omitempty"`
	Icon       *Icon                     `json:"icon,omitempty"`
	Cover      *File                     `json:"cover,omitempty"`
}

// CreateDatabaseResponse is the created database.
type CreateDatabaseResponse = Database

// Validate validates the create database request fields. The schema
// must define exactly one title property.
func (r *CreateDatabaseRequest) Validate() error {
	if err := r.Parent.Validate(); err != nil {
		return prefixField("parent", err)
	}
	if r.Parent.Type != ParentTypePage {
		return InvalidField("parent.type", "a database parent must be a page")
	}
	if len(r.Properties) == 0 {
		return MissingField("properties")
	}
	titles := 0
	for name, c := range r.Properties {
		if err := c.Validate(); err != nil {
			return prefixField("properties."+name, err)
		}
		if c.Type == PropertyTypeTitle {
			titles++
		}
	}
	if titles != 1 {
		return InvalidField("properties", "schema must contain exactly one title property")
	}
	return validateRichText("title", r.Title)
}

// RetrieveDatabaseRequest identifies a database to fetch.
type RetrieveDatabaseRequest struct {
	DatabaseID ObjectID `json:"-"`
}

// RetrieveDatabaseResponse is the fetched database.
type RetrieveDatabaseResponse = Database

// Validate validates the retrieve database request fields.
func (r *RetrieveDatabaseRequest) Validate() error {
	if r.DatabaseID == "" {
		return MissingField("database_id")
	}
	return prefixField("database_id", r.DatabaseID.Validate())
}

// UpdateDatabaseRequest is the body of PATCH /v1/databases/{id}.
// Reference: https://developers.notion.com/reference/update-a-database
type UpdateDatabaseRequest struct {
	DatabaseID ObjectID `json:"-"`

	Title       []RichText `json:"title,omitempty"`
	Description []RichText `json:"description,omitempty"`
	// Properties maps property names to their new configuration. A
	// nil entry removes the property.
	Properties map[string]*PropertyConfig `json:"properties,omitempty"`
	IsInline   *bool                      `json:"is_inline,omitempty"`
	Archived   *bool                      `json:"archived,omitempty"`
	Icon       *Icon                      `json:"icon,omitempty"`
	Cover      *File                      `json:"cover,omitempty"`
}

// UpdateDatabaseResponse is the updated database.
type UpdateDatabaseResponse = Database

// Validate validates the update database request fields.
func (r *UpdateDatabaseRequest) Validate() error {
	if r.DatabaseID == "" {
		return MissingField("database_id")
	}
	if err := r.DatabaseID.Validate(); err != nil {
		return prefixField("database_id", err)
	}
	for name, c := range r.Properties {
		if c == nil {
			continue // removal
		}
		if err := c.Validate(); err != nil {
			return prefixField("properties."+name, err)
		}
	}
	if err := validateRichText("title", r.Title); err != nil {
		return err
	}
	return validateRichText("description", r.Description)
}

// QueryDatabaseRequest is the body of POST /v1/databases/{id}/query.
// Reference: https://developers.notion.com/reference/post-database-query
type QueryDatabaseRequest struct {
	DatabaseID ObjectID `json:"-"`

	Filter      *Filter     `json:"filter,omitempty"`
	Sorts       []Sort      `json:"sorts,omitempty"`
	StartCursor StartCursor `json:"start_cursor,omitempty"`
	PageSize    PageSize    `json:"page_size,omitempty"`
}

// QueryDatabaseResponse is a page of matching database rows.
type QueryDatabaseResponse = PageList

// Validate validates the query request: filter tree, sorts, and
// pagination bounds.
func (r *QueryDatabaseRequest) Validate() error {
	if r.DatabaseID == "" {
		return MissingField("database_id")
	}
	if err := r.DatabaseID.Validate(); err != nil {
		return prefixField("database_id", err)
	}
	if r.Filter != nil {
		if err := r.Filter.Validate(); err != nil {
			return prefixField("filter", err)
		}
	}
	for i := range r.Sorts {
		if err := r.Sorts[i].Validate(); err != nil {
			return prefixField("sorts", err)
		}
	}
	return r.PageSize.Validate()
}
