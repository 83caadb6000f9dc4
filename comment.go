// Defines comment objects.

package notion

import "time"

// Comment represents a comment on a page or block, attached to a
// discussion thread.
// Reference: https://developers.notion.com/reference/comment-object
type Comment struct {
	Object         string     `json:"object"` // Always "comment".
	ID             ObjectID   `json:"id"`
	Parent         Parent     `json:"parent"`
	DiscussionID   ObjectID   `json:"discussion_id"`
	CreatedTime    time.Time  `json:"created_time"`
	LastEditedTime time.Time  `json:"last_edited_time"`
	CreatedBy      User       `json:"created_by"`
	RichText       []RichText `json:"rich_text"`

	Attachments []CommentAttachment `json:"attachments,omitempty"`
	DisplayName *CommentDisplayName `json:"display_name,omitempty"`
}

// CommentAttachment is a file attached to a comment.
type CommentAttachment struct {
	Category string   `json:"category,omitempty"` // "audio", "image", "pdf", "productivity", "video"
	File     *FileRef `json:"file,omitempty"`
}

// CommentDisplayName overrides the name a comment is shown under.
type CommentDisplayName struct {
	Type         string `json:"type"` // "integration", "user", "custom"
	ResolvedName string `json:"resolved_name,omitempty"`
}

// PlainText returns the comment body as plain text.
func (c *Comment) PlainText() string {
	return PlainText(c.RichText)
}

// Validate checks the comment object shape.
func (c *Comment) Validate() error {
	if c.Object != "" && c.Object != "comment" {
		return InvalidField("object", `must be "comment"`)
	}
	if err := c.ID.Validate(); err != nil {
		return err
	}
	if err := c.Parent.Validate(); err != nil {
		return prefixField("parent", err)
	}
	if err := c.DiscussionID.Validate(); err != nil {
		return prefixField("discussion_id", err)
	}
	return validateRichText("rich_text", c.RichText)
}
