// Request and response models for the comments endpoints.

package notion

// CreateCommentRequest is the body of POST /v1/comments. A comment is
// created either on a page (parent) or as a reply to an existing
// discussion (discussion_id), never both.
// Reference: https://developers.notion.com/reference/create-a-comment
type CreateCommentRequest struct {
	Parent       *Parent  `json:"parent,omitempty"`
	DiscussionID ObjectID `json:"discussion_id,omitempty"`

	RichText []RichText `json:"rich_text"`
}

// CreateCommentResponse is the created comment.
type CreateCommentResponse = Comment

// Validate validates the create comment request fields.
func (r *CreateCommentRequest) Validate() error {
	if (r.Parent == nil) == (r.DiscussionID == "") {
		return InvalidField("parent", "exactly one of parent and discussion_id must be set")
	}
	if r.Parent != nil {
		if err := r.Parent.Validate(); err != nil {
			return prefixField("parent", err)
		}
		if r.Parent.Type != ParentTypePage && r.Parent.Type != ParentTypeBlock {
			return InvalidField("parent.type", "a comment parent must be a page or a block")
		}
	}
	if r.DiscussionID != "" {
		if err := r.DiscussionID.Validate(); err != nil {
			return prefixField("discussion_id", err)
		}
	}
	if len(r.RichText) == 0 {
		return MissingField("rich_text")
	}
	return validateRichText("rich_text", r.RichText)
}

// RetrieveCommentsRequest lists unresolved comments on a page or
// block, identified by block_id (a page ID works too: pages are
// blocks).
// Reference: https://developers.notion.com/reference/retrieve-a-comment
type RetrieveCommentsRequest struct {
	BlockID ObjectID `json:"-"`

	StartCursor StartCursor `json:"-"`
	PageSize    PageSize    `json:"-"`
}

// RetrieveCommentsResponse is a page of comments.
type RetrieveCommentsResponse = CommentList

// Validate validates the retrieve comments request fields.
func (r *RetrieveCommentsRequest) Validate() error {
	if r.BlockID == "" {
		return MissingField("block_id")
	}
	if err := r.BlockID.Validate(); err != nil {
		return prefixField("block_id", err)
	}
	return r.PageSize.Validate()
}
