// Defines block objects: the content tree of a page.

package notion

import "time"

// BlockType discriminates block variants.
// Reference: https://developers.notion.com/reference/block
type BlockType string

const (
	BlockTypeAudio            BlockType = "audio"
	BlockTypeBookmark         BlockType = "bookmark"
	BlockTypeBreadcrumb       BlockType = "breadcrumb"
	BlockTypeBulletedListItem BlockType = "bulleted_list_item"
	BlockTypeCallout          BlockType = "callout"
	BlockTypeChildDatabase    BlockType = "child_database"
	BlockTypeChildPage        BlockType = "child_page"
	BlockTypeCode             BlockType = "code"
	BlockTypeColumn           BlockType = "column"
	BlockTypeColumnList       BlockType = "column_list"
	BlockTypeDivider          BlockType = "divider"
	BlockTypeEmbed            BlockType = "embed"
	BlockTypeEquation         BlockType = "equation"
	BlockTypeFile             BlockType = "file"
	BlockTypeHeading1         BlockType = "heading_1"
	BlockTypeHeading2         BlockType = "heading_2"
	BlockTypeHeading3         BlockType = "heading_3"
	BlockTypeImage            BlockType = "image"
	BlockTypeLinkPreview      BlockType = "link_preview"
	BlockTypeLinkToPage       BlockType = "link_to_page"
	BlockTypeNumberedListItem BlockType = "numbered_list_item"
	BlockTypeParagraph        BlockType = "paragraph"
	BlockTypePDF              BlockType = "pdf"
	BlockTypeQuote            BlockType = "quote"
	BlockTypeSyncedBlock      BlockType = "synced_block"
	BlockTypeTable            BlockType = "table"
	BlockTypeTableOfContents  BlockType = "table_of_contents"
	BlockTypeTableRow         BlockType = "table_row"
	BlockTypeTemplate         BlockType = "template"
	BlockTypeToDo             BlockType = "to_do"
	BlockTypeToggle           BlockType = "toggle"
	BlockTypeUnsupported      BlockType = "unsupported"
	BlockTypeVideo            BlockType = "video"
)

// Block represents one node of a page's content tree. Only the payload
// field matching Type is populated.
type Block struct {
	Object         string    `json:"object,omitempty"` // Always "block" when set.
	ID             ObjectID  `json:"id,omitempty"`
	Parent         *Parent   `json:"parent,omitempty"`
	Type           BlockType `json:"type,omitempty"`
	CreatedTime    time.Time `json:"created_time,omitzero"`
	CreatedBy      *User     `json:"created_by,omitempty"`
	LastEditedTime time.Time `json:"last_edited_time,omitzero"`
	LastEditedBy   *User     `json:"last_edited_by,omitempty"`
	Archived       bool      `json:"archived,omitempty"`
	InTrash        bool      `json:"in_trash,omitempty"`
	HasChildren    bool      `json:"has_children,omitempty"`

	// Children holds nested blocks when writing (and when a reader
	// assembles the tree); the API itself returns children via the
	// block children endpoint, not inline.
	Children []Block `json:"children,omitempty"`

	Paragraph        *ParagraphBlock     `json:"paragraph,omitempty"`
	Heading1         *HeadingBlock       `json:"heading_1,omitempty"`
	Heading2         *HeadingBlock       `json:"heading_2,omitempty"`
	Heading3         *HeadingBlock       `json:"heading_3,omitempty"`
	BulletedListItem *ListItemBlock      `json:"bulleted_list_item,omitempty"`
	NumberedListItem *ListItemBlock      `json:"numbered_list_item,omitempty"`
	ToDo             *ToDoBlock          `json:"to_do,omitempty"`
	Toggle           *ToggleBlock        `json:"toggle,omitempty"`
	Code             *CodeBlock          `json:"code,omitempty"`
	Quote            *QuoteBlock         `json:"quote,omitempty"`
	Callout          *CalloutBlock       `json:"callout,omitempty"`
	Divider          *struct{}           `json:"divider,omitempty"`
	TableOfContents  *ColorBlock         `json:"table_of_contents,omitempty"`
	Breadcrumb       *struct{}           `json:"breadcrumb,omitempty"`
	ColumnList       *struct{}           `json:"column_list,omitempty"`
	Column           *ColumnBlock        `json:"column,omitempty"`
	Image            *MediaBlock         `json:"image,omitempty"`
	Video            *MediaBlock         `json:"video,omitempty"`
	Audio            *MediaBlock         `json:"audio,omitempty"`
	File             *MediaBlock         `json:"file,omitempty"`
	PDF              *MediaBlock         `json:"pdf,omitempty"`
	Bookmark         *BookmarkBlock      `json:"bookmark,omitempty"`
	Embed            *EmbedBlock         `json:"embed,omitempty"`
	LinkPreview      *LinkPreview        `json:"link_preview,omitempty"`
	LinkToPage       *Parent             `json:"link_to_page,omitempty"`
	Equation         *Equation           `json:"equation,omitempty"`
	SyncedBlock      *SyncedBlockContent `json:"synced_block,omitempty"`
	Table            *TableBlock         `json:"table,omitempty"`
	TableRow         *TableRowBlock      `json:"table_row,omitempty"`
	Template         *TemplateBlock      `json:"template,omitempty"`
	ChildPage        *ChildTitleBlock    `json:"child_page,omitempty"`
	ChildDatabase    *ChildTitleBlock    `json:"child_database,omitempty"`
	Unsupported      *struct{}           `json:"unsupported,omitempty"`
}

// ParagraphBlock is the payload of a paragraph block.
type ParagraphBlock struct {
	RichText []RichText `json:"rich_text"`
	Color    Color      `json:"color,omitempty"`
}

// HeadingBlock is the payload of heading_1, heading_2, and heading_3.
type HeadingBlock struct {
	RichText     []RichText `json:"rich_text"`
	Color        Color      `json:"color,omitempty"`
	IsToggleable bool       `json:"is_toggleable,omitempty"`
}

// ListItemBlock is the payload of bulleted and numbered list items.
type ListItemBlock struct {
	RichText []RichText `json:"rich_text"`
	Color    Color      `json:"color,omitempty"`
}

// ToDoBlock is the payload of a to_do block.
type ToDoBlock struct {
	RichText []RichText `json:"rich_text"`
	Checked  bool       `json:"checked,omitempty"`
	Color    Color      `json:"color,omitempty"`
}

// ToggleBlock is the payload of a toggle block.
type ToggleBlock struct {
	RichText []RichText `json:"rich_text"`
	Color    Color      `json:"color,omitempty"`
}

// CodeBlock is the payload of a code block.
type CodeBlock struct {
	RichText []RichText   `json:"rich_text"`
	Caption  []RichText   `json:"caption,omitempty"`
	Language CodeLanguage `json:"language,omitempty"`
}

// QuoteBlock is the payload of a quote block.
type QuoteBlock struct {
	RichText []RichText `json:"rich_text"`
	Color    Color      `json:"color,omitempty"`
}

// CalloutBlock is the payload of a callout block.
type CalloutBlock struct {
	RichText []RichText `json:"rich_text"`
	Icon     *Icon      `json:"icon,omitempty"`
	Color    Color      `json:"color,omitempty"`
}

// ColorBlock is a payload carrying only a color (table_of_contents).
type ColorBlock struct {
	Color Color `json:"color,omitempty"`
}

// ColumnBlock is the payload of a column block.
type ColumnBlock struct {
	WidthRatio *float64 `json:"width_ratio,omitempty"`
}

// MediaBlock is the payload of image, video, audio, file, and pdf
// blocks.
type MediaBlock struct {
	Type     FileType     `json:"type,omitempty"`
	File     *FileRef     `json:"file,omitempty"`
	External *ExternalRef `json:"external,omitempty"`
	Caption  []RichText   `json:"caption,omitempty"`
	Name     string       `json:"name,omitempty"`
}

// BookmarkBlock is the payload of a bookmark block.
type BookmarkBlock struct {
	URL     string     `json:"url"`
	Caption []RichText `json:"caption,omitempty"`
}

// EmbedBlock is the payload of an embed block.
type EmbedBlock struct {
	URL string `json:"url"`
}

// SyncedBlockContent is the payload of a synced_block. A nil
// SyncedFrom marks the original; duplicates point back to it.
type SyncedBlockContent struct {
	SyncedFrom *SyncedFrom `json:"synced_from"`
}

// SyncedFrom points at the original of a duplicated synced block.
type SyncedFrom struct {
	Type    string   `json:"type,omitempty"` // Always "block_id".
	BlockID ObjectID `json:"block_id"`
}

// TableBlock is the payload of a table block.
type TableBlock struct {
	TableWidth      int  `json:"table_width"`
	HasColumnHeader bool `json:"has_column_header,omitempty"`
	HasRowHeader    bool `json:"has_row_header,omitempty"`
}

// TableRowBlock is the payload of a table_row block. Each cell is a
// rich text array; rows must match the parent table's width.
type TableRowBlock struct {
	Cells [][]RichText `json:"cells"`
}

// TemplateBlock is the payload of a deprecated template block.
type TemplateBlock struct {
	RichText []RichText `json:"rich_text"`
}

// ChildTitleBlock is the payload of child_page and child_database
// blocks. Both are read-only markers carrying only the child's title.
type ChildTitleBlock struct {
	Title string `json:"title"`
}

// RichTextContent returns the block's rich text payload, nil for
// block types without one.
func (b *Block) RichTextContent() []RichText {
	switch b.Type {
	case BlockTypeParagraph:
		if b.Paragraph != nil {
			return b.Paragraph.RichText
		}
	case BlockTypeHeading1:
		if b.Heading1 != nil {
			return b.Heading1.RichText
		}
	case BlockTypeHeading2:
		if b.Heading2 != nil {
			return b.Heading2.RichText
		}
	case BlockTypeHeading3:
		if b.Heading3 != nil {
			return b.Heading3.RichText
		}
	case BlockTypeBulletedListItem:
		if b.BulletedListItem != nil {
			return b.BulletedListItem.RichText
		}
	case BlockTypeNumberedListItem:
		if b.NumberedListItem != nil {
			return b.NumberedListItem.RichText
		}
	case BlockTypeToDo:
		if b.ToDo != nil {
			return b.ToDo.RichText
		}
	case BlockTypeToggle:
		if b.Toggle != nil {
			return b.Toggle.RichText
		}
	case BlockTypeCode:
		if b.Code != nil {
			return b.Code.RichText
		}
	case BlockTypeQuote:
		if b.Quote != nil {
			return b.Quote.RichText
		}
	case BlockTypeCallout:
		if b.Callout != nil {
			return b.Callout.RichText
		}
	case BlockTypeTemplate:
		if b.Template != nil {
			return b.Template.RichText
		}
	}
	return nil
}

// payload returns the populated payload's type tag and whether the
// payload matching b.Type is present.
func (b *Block) payload() (set []BlockType, matched bool) {
	probe := []struct {
		t  BlockType
		ok bool
	}{
		{BlockTypeParagraph, b.Paragraph != nil},
		{BlockTypeHeading1, b.Heading1 != nil},
		{BlockTypeHeading2, b.Heading2 != nil},
		{BlockTypeHeading3, b.Heading3 != nil},
		{BlockTypeBulletedListItem, b.BulletedListItem != nil},
		{BlockTypeNumberedListItem, b.NumberedListItem != nil},
		{BlockTypeToDo, b.ToDo != nil},
		{BlockTypeToggle, b.Toggle != nil},
		{BlockTypeCode, b.Code != nil},
		{BlockTypeQuote, b.Quote != nil},
		{BlockTypeCallout, b.Callout != nil},
		{BlockTypeDivider, b.Divider != nil},
		{BlockTypeTableOfContents, b.TableOfContents != nil},
		{BlockTypeBreadcrumb, b.Breadcrumb != nil},
		{BlockTypeColumnList, b.ColumnList != nil},
		{BlockTypeColumn, b.Column != nil},
		{BlockTypeImage, b.Image != nil},
		{BlockTypeVideo, b.Video != nil},
		{BlockTypeAudio, b.Audio != nil},
		{BlockTypeFile, b.File != nil},
		{BlockTypePDF, b.PDF != nil},
		{BlockTypeBookmark, b.Bookmark != nil},
		{BlockTypeEmbed, b.Embed != nil},
		{BlockTypeLinkPreview, b.LinkPreview != nil},
		{BlockTypeLinkToPage, b.LinkToPage != nil},
		{BlockTypeEquation, b.Equation != nil},
		{BlockTypeSyncedBlock, b.SyncedBlock != nil},
		{BlockTypeTable, b.Table != nil},
		{BlockTypeTableRow, b.TableRow != nil},
		{BlockTypeTemplate, b.Template != nil},
		{BlockTypeChildPage, b.ChildPage != nil},
		{BlockTypeChildDatabase, b.ChildDatabase != nil},
		{BlockTypeUnsupported, b.Unsupported != nil},
	}
	for _, p := range probe {
		if p.ok {
			set = append(set, p.t)
			if p.t == b.Type {
				matched = true
			}
		}
	}
	return set, matched
}

// Validate checks the block discriminator, payload agreement, and
// per-type constraints, recursing into children.
func (b *Block) Validate() error {
	if b.Object != "" && b.Object != "block" {
		return InvalidField("object", `must be "block"`)
	}
	if b.Type == "" {
		return MissingField("type")
	}
	set, matched := b.payload()
	for _, s := range set {
		if s != b.Type {
			return InvalidField(string(s), "payload does not match type "+string(b.Type))
		}
	}
	// unsupported and breadcrumb-like payloads may legitimately be
	// absent on reads; everything else needs its payload.
	if !matched && b.Type != BlockTypeUnsupported {
		return MissingField(string(b.Type))
	}

	switch b.Type {
	case BlockTypeCode:
		if b.Code.Language != "" && !codeLanguages[b.Code.Language] {
			return InvalidField("code.language", "unknown language "+string(b.Code.Language))
		}
	case BlockTypeBookmark:
		if err := validateURL("bookmark.url", b.Bookmark.URL); err != nil {
			return err
		}
	case BlockTypeEmbed:
		if err := validateURL("embed.url", b.Embed.URL); err != nil {
			return err
		}
	case BlockTypeTable:
		if b.Table.TableWidth < 1 {
			return InvalidField("table.table_width", "must be at least 1")
		}
		for i := range b.Children {
			if b.Children[i].Type != BlockTypeTableRow {
				return InvalidField("children", "table children must be table_row blocks")
			}
			if row := b.Children[i].TableRow; row != nil && len(row.Cells) != b.Table.TableWidth {
				return InvalidField("children", "table_row width does not match table_width")
			}
		}
	case BlockTypeCallout:
		if b.Callout.Icon != nil {
			if err := b.Callout.Icon.Validate(); err != nil {
				return prefixField("callout.icon", err)
			}
		}
	}

	if rt := b.RichTextContent(); rt != nil {
		if err := validateRichText(string(b.Type)+".rich_text", rt); err != nil {
			return err
		}
	}
	for i := range b.Children {
		if err := b.Children[i].Validate(); err != nil {
			return prefixField("children", err)
		}
	}
	return nil
}
