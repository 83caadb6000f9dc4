// Defines the parent object linking pages, databases, and blocks.

package notion

// ParentType discriminates parent variants.
type ParentType string

const (
	ParentTypeDatabase  ParentType = "database_id"
	ParentTypePage      ParentType = "page_id"
	ParentTypeWorkspace ParentType = "workspace"
	ParentTypeBlock     ParentType = "block_id"
)

// Parent locates an object inside the workspace hierarchy.
// Reference: https://developers.notion.com/reference/parent-object
type Parent struct {
	Type ParentType `json:"type"`

	DatabaseID ObjectID `json:"database_id,omitempty"`
	PageID     ObjectID `json:"page_id,omitempty"`
	BlockID    ObjectID `json:"block_id,omitempty"`
	Workspace  bool     `json:"workspace,omitempty"`
}

// NewDatabaseParent returns a parent pointing at a database.
func NewDatabaseParent(id ObjectID) Parent {
	return Parent{Type: ParentTypeDatabase, DatabaseID: id}
}

// NewPageParent returns a parent pointing at a page.
func NewPageParent(id ObjectID) Parent {
	return Parent{Type: ParentTypePage, PageID: id}
}

// NewBlockParent returns a parent pointing at a block.
func NewBlockParent(id ObjectID) Parent {
	return Parent{Type: ParentTypeBlock, BlockID: id}
}

// NewWorkspaceParent returns the workspace root parent.
func NewWorkspaceParent() Parent {
	return Parent{Type: ParentTypeWorkspace, Workspace: true}
}

// ID returns the referenced object ID, empty for workspace parents.
func (p Parent) ID() ObjectID {
	switch p.Type {
	case ParentTypeDatabase:
		return p.DatabaseID
	case ParentTypePage:
		return p.PageID
	case ParentTypeBlock:
		return p.BlockID
	}
	return ""
}

// Validate checks the parent discriminator and referenced ID.
func (p *Parent) Validate() error {
	switch p.Type {
	case ParentTypeDatabase:
		if p.DatabaseID == "" {
			return MissingField("database_id")
		}
		return prefixField("database_id", p.DatabaseID.Validate())
	case ParentTypePage:
		if p.PageID == "" {
			return MissingField("page_id")
		}
		return prefixField("page_id", p.PageID.Validate())
	case ParentTypeBlock:
		if p.BlockID == "" {
			return MissingField("block_id")
		}
		return prefixField("block_id", p.BlockID.Validate())
	case ParentTypeWorkspace:
		if p.DatabaseID != "" || p.PageID != "" || p.BlockID != "" {
			return InvalidField("type", `payload does not match type "workspace"`)
		}
	case "":
		return MissingField("type")
	default:
		return InvalidField("type", "unknown parent type "+string(p.Type))
	}
	return nil
}
