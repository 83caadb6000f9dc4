// Defines the paginated list envelope and cursor parameter types.

package notion

// ListType tells which kind of results a paginated list carries.
// Reference: https://developers.notion.com/reference/intro#pagination
type ListType string

const (
	ListTypeBlock          ListType = "block"
	ListTypeComment        ListType = "comment"
	ListTypeDatabase       ListType = "database"
	ListTypePage           ListType = "page"
	ListTypePageOrDatabase ListType = "page_or_database"
	ListTypePropertyItem   ListType = "property_item"
	ListTypeUser           ListType = "user"
)

var listTypes = map[ListType]bool{
	ListTypeBlock: true, ListTypeComment: true, ListTypeDatabase: true,
	ListTypePage: true, ListTypePageOrDatabase: true,
	ListTypePropertyItem: true, ListTypeUser: true,
}

// PaginatedList is the envelope every list-returning endpoint wraps
// its results in.
type PaginatedList[T any] struct {
	Object     string   `json:"object"` // Always "list".
	Results    []T      `json:"results"`
	NextCursor *string  `json:"next_cursor"`
	HasMore    bool     `json:"has_more"`
	Type       ListType `json:"type,omitempty"`
	RequestID  ObjectID `json:"request_id,omitempty"`
	// NextURL is the URL to request the next page of results, set on
	// paginated page property responses.
	NextURL *string `json:"next_url,omitempty"`
}

// Validate checks the envelope shape. Result elements implementing
// Validatable are validated too.
func (l *PaginatedList[T]) Validate() error {
	if l.Object != "" && l.Object != "list" {
		return InvalidField("object", `must be "list"`)
	}
	if l.Type != "" && !listTypes[l.Type] {
		return InvalidField("type", "unknown list type "+string(l.Type))
	}
	if l.HasMore && l.NextCursor == nil && l.NextURL == nil {
		return InvalidField("next_cursor", "has_more is set but no cursor is present")
	}
	for i := range l.Results {
		if v, ok := any(&l.Results[i]).(Validatable); ok {
			if err := v.Validate(); err != nil {
				return prefixField("results", err)
			}
		}
	}
	return nil
}

// List envelope aliases per endpoint family.
type (
	BlockChildren = PaginatedList[Block]
	CommentList   = PaginatedList[Comment]
	PageList      = PaginatedList[Page]
	PropertyItems = PaginatedList[PropertyValue]
	SearchResults = PaginatedList[SearchResult]
	UserList      = PaginatedList[User]
)

// StartCursor is an opaque pagination cursor returned by a previous
// response. Empty means "first page".
type StartCursor string

// maxPageSize is the largest page the API serves; also the default.
const maxPageSize = 100

// PageSize is the number of results to request per page. Zero means
// "unset" and is omitted on the wire; the API then defaults to 100.
type PageSize int

// Validate checks the 1..100 bound.
func (p PageSize) Validate() error {
	if p < 0 || p > maxPageSize {
		return InvalidField("page_size", "must be between 1 and 100")
	}
	return nil
}
