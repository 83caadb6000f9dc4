// Request and response models for the blocks endpoints.

package notion

// RetrieveBlockChildrenRequest identifies a block whose children to
// list.
// Reference: https://developers.notion.com/reference/get-block-children
type RetrieveBlockChildrenRequest struct {
	BlockID ObjectID `json:"-"`

	StartCursor StartCursor `json:"-"`
	PageSize    PageSize    `json:"-"`
}

// RetrieveBlockChildrenResponse is a page of child blocks.
type RetrieveBlockChildrenResponse = BlockChildren

// Validate validates the retrieve block children request fields.
func (r *RetrieveBlockChildrenRequest) Validate() error {
	if r.BlockID == "" {
		return MissingField("block_id")
	}
	if err := r.BlockID.Validate(); err != nil {
		return prefixField("block_id", err)
	}
	return r.PageSize.Validate()
}

// AppendBlockChildrenRequest is the body of
// PATCH /v1/blocks/{block_id}/children.
// Reference: https://developers.notion.com/reference/patch-block-children
type AppendBlockChildrenRequest struct {
	BlockID ObjectID `json:"-"`

	Children []Block `json:"children"`
	// After places the new blocks after an existing child instead of
	// at the end.
	After ObjectID `json:"after,omitempty"`
}

// AppendBlockChildrenResponse lists the appended blocks.
type AppendBlockChildrenResponse = BlockChildren

// maxBlockChildren is the API's per-request append limit.
const maxBlockChildren = 100

// Validate validates the append request: children present, within the
// append limit, and individually well-formed.
func (r *AppendBlockChildrenRequest) Validate() error {
	if r.BlockID == "" {
		return MissingField("block_id")
	}
	if err := r.BlockID.Validate(); err != nil {
		return prefixField("block_id", err)
	}
	if len(r.Children) == 0 {
		return MissingField("children")
	}
	if len(r.Children) > maxBlockChildren {
		return InvalidField("children", "at most 100 blocks per append")
	}
	for i := range r.Children {
		if err := r.Children[i].Validate(); err != nil {
			return prefixField("children", err)
		}
	}
	if r.After != "" {
		if err := r.After.Validate(); err != nil {
			return prefixField("after", err)
		}
	}
	return nil
}

// UpdateBlockRequest is the body of PATCH /v1/blocks/{block_id}. The
// embedded Block carries the replacement payload for the block's
// type; only that payload and archived may change.
// Reference: https://developers.notion.com/reference/update-a-block
type UpdateBlockRequest struct {
	BlockID ObjectID `json:"-"`
	Block
}

// UpdateBlockResponse is the updated block.
type UpdateBlockResponse = Block

// Validate validates the update block request fields.
func (r *UpdateBlockRequest) Validate() error {
	if r.BlockID == "" {
		return MissingField("block_id")
	}
	if err := r.BlockID.Validate(); err != nil {
		return prefixField("block_id", err)
	}
	set, _ := r.payload()
	if len(set) == 0 {
		// Archive-only updates are fine.
		return nil
	}
	if len(set) > 1 {
		return InvalidField("type", "at most one block payload per update")
	}
	if r.Type != "" && set[0] != r.Type {
		return InvalidField(string(set[0]), "payload does not match type "+string(r.Type))
	}
	return nil
}

// DeleteBlockRequest identifies a block to move to the trash.
// Reference: https://developers.notion.com/reference/delete-a-block
type DeleteBlockRequest struct {
	BlockID ObjectID `json:"-"`
}

// DeleteBlockResponse is the deleted (archived) block.
type DeleteBlockResponse = Block

// Validate validates the delete block request fields.
func (r *DeleteBlockRequest) Validate() error {
	if r.BlockID == "" {
		return MissingField("block_id")
	}
	return prefixField("block_id", r.BlockID.Validate())
}
