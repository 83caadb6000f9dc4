// Request and response models for the users and search endpoints.

package notion

// ListUsersRequest pages through all users in the workspace.
// Reference: https://developers.notion.com/reference/get-users
type ListUsersRequest struct {
	StartCursor StartCursor `json:"-"`
	PageSize    PageSize    `json:"-"`
}

// ListUsersResponse is a page of users.
type ListUsersResponse = UserList

// Validate validates the list users request fields.
func (r *ListUsersRequest) Validate() error {
	return r.PageSize.Validate()
}

// RetrieveUserRequest identifies a user to fetch.
type RetrieveUserRequest struct {
	UserID ObjectID `json:"-"`
}

// RetrieveUserResponse is the fetched user.
type RetrieveUserResponse = User

// Validate validates the retrieve user request fields.
func (r *RetrieveUserRequest) Validate() error {
	if r.UserID == "" {
		return MissingField("user_id")
	}
	return prefixField("user_id", r.UserID.Validate())
}

// SearchRequest is the body of POST /v1/search. An empty query
// matches everything shared with the integration.
// Reference: https://developers.notion.com/reference/post-search
type SearchRequest struct {
	Query       string        `json:"query,omitempty"`
	Filter      *SearchFilter `json:"filter,omitempty"`
	Sort        *SearchSort   `json:"sort,omitempty"`
	StartCursor StartCursor   `json:"start_cursor,omitempty"`
	PageSize    PageSize      `json:"page_size,omitempty"`
}

// SearchResponse is a page of pages and databases.
type SearchResponse = SearchResults

// Validate validates the search request fields.
func (r *SearchRequest) Validate() error {
	if r.Filter != nil {
		if err := r.Filter.Validate(); err != nil {
			return prefixField("filter", err)
		}
	}
	if r.Sort != nil {
		if err := r.Sort.Validate(); err != nil {
			return prefixField("sort", err)
		}
	}
	return r.PageSize.Validate()
}
