// Request and response models for the pages endpoints.

package notion

// CreatePageRequest is the body of POST /v1/pages.
// Reference: https://developers.notion.com/reference/post-page
type CreatePageRequest struct {
	Parent     Parent                   `json:"parent"`
	Properties map[string]PropertyValue `json:"properties"`
	Children   []Block                  `json:"children,omitempty"`
	Icon       *Icon                    `json:"icon,omitempty"`
	Cover      *File                    `json:"cover,omitempty"`
}

// CreatePageResponse is the created page.
type CreatePageResponse = Page

// Validate validates the create page request fields. Pages created
// under a page parent may only carry a title property; pages created
// in a database must match its schema (checked server-side).
func (r *CreatePageRequest) Validate() error {
	if err := r.Parent.Validate(); err != nil {
		return prefixField("parent", err)
	}
	switch r.Parent.Type {
	case ParentTypePage, ParentTypeDatabase:
	default:
		return InvalidField("parent.type", "a page parent must be a page or a database")
	}
	if r.Properties == nil {
		return MissingField("properties")
	}
	for name, v := range r.Properties {
		if err := v.Validate(); err != nil {
			return prefixField("properties."+name, err)
		}
		if r.Parent.Type == ParentTypePage && v.Type != PropertyTypeTitle {
			return InvalidField("properties."+name, "pages parented by a page only accept a title property")
		}
	}
	for i := range r.Children {
		if err := r.Children[i].Validate(); err != nil {
			return prefixField("children", err)
		}
	}
	if r.Icon != nil {
		if err := r.Icon.Validate(); err != nil {
			return prefixField("icon", err)
		}
	}
	if r.Cover != nil {
		if err := r.Cover.Validate(); err != nil {
			return prefixField("cover", err)
		}
	}
	return nil
}

// RetrievePageRequest identifies a page to fetch.
// Reference: https://developers.notion.com/reference/retrieve-a-page
type RetrievePageRequest struct {
	PageID ObjectID `json:"-"`
	// FilterProperties restricts the response to the named property
	// IDs. Sent as query parameters, not in the body.
	FilterProperties []string `json:"-"`
}

// RetrievePageResponse is the fetched page.
type RetrievePageResponse = Page

// Validate validates the retrieve page request fields.
func (r *RetrievePageRequest) Validate() error {
	if r.PageID == "" {
		return MissingField("page_id")
	}
	return prefixField("page_id", r.PageID.Validate())
}

// UpdatePageRequest is the body of PATCH /v1/pages/{page_id}.
// Reference: https://developers.notion.com/reference/patch-page
type UpdatePageRequest struct {
	PageID ObjectID `json:"-"`

	Properties map[string]PropertyValue `json:"properties,omitempty"`
	Archived   *bool                    `json:"archived,omitempty"`
	InTrash    *bool                    `json:"in_trash,omitempty"`
	Icon       *Icon                    `json:"icon,omitempty"`
	Cover      *File                    `json:"cover,omitempty"`
}

// UpdatePageResponse is the updated page.
type UpdatePageResponse = Page

// readOnlyPropertyTypes cannot be written through the API.
var readOnlyPropertyTypes = map[PropertyType]bool{
	PropertyTypeCreatedBy:      true,
	PropertyTypeCreatedTime:    true,
	PropertyTypeLastEditedBy:   true,
	PropertyTypeLastEditedTime: true,
	PropertyTypeFormula:        true,
	PropertyTypeRollup:         true,
	PropertyTypeUniqueID:       true,
}

// Validate validates the update page request fields and rejects
// read-only property types.
func (r *UpdatePageRequest) Validate() error {
	if r.PageID == "" {
		return MissingField("page_id")
	}
	if err := r.PageID.Validate(); err != nil {
		return prefixField("page_id", err)
	}
	for name, v := range r.Properties {
		if readOnlyPropertyTypes[v.Type] {
			return InvalidField("properties."+name, string(v.Type)+" properties are read-only")
		}
		if err := v.Validate(); err != nil {
			return prefixField("properties."+name, err)
		}
	}
	if r.Icon != nil {
		if err := r.Icon.Validate(); err != nil {
			return prefixField("icon", err)
		}
	}
	return nil
}

// RetrievePagePropertyRequest identifies one property of a page.
// Reference: https://developers.notion.com/reference/retrieve-a-page-property
type RetrievePagePropertyRequest struct {
	PageID     ObjectID `json:"-"`
	PropertyID string   `json:"-"`

	StartCursor StartCursor `json:"-"`
	PageSize    PageSize    `json:"-"`
}

// RetrievePagePropertyResponse is the paginated property item list
// returned for long properties. Short properties come back as a
// single PropertyValue; both shapes share the property_item list type.
type RetrievePagePropertyResponse = PropertyItems

// Validate validates the retrieve page property request fields.
func (r *RetrievePagePropertyRequest) Validate() error {
	if r.PageID == "" {
		return MissingField("page_id")
	}
	if err := r.PageID.Validate(); err != nil {
		return prefixField("page_id", err)
	}
	if r.PropertyID == "" {
		return MissingField("property_id")
	}
	return r.PageSize.Validate()
}
