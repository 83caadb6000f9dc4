// Factory constructors for writable blocks.

package notion

// NewParagraphBlock returns a paragraph block with plain text content.
func NewParagraphBlock(text string) Block {
	return Block{
		Type:      BlockTypeParagraph,
		Paragraph: &ParagraphBlock{RichText: []RichText{NewTextRichText(text)}},
	}
}

// NewHeadingBlock returns a heading block. Level must be 1, 2, or 3;
// other values fall back to heading_1.
func NewHeadingBlock(level int, text string) Block {
	h := &HeadingBlock{RichText: []RichText{NewTextRichText(text)}}
	switch level {
	case 2:
		return Block{Type: BlockTypeHeading2, Heading2: h}
	case 3:
		return Block{Type: BlockTypeHeading3, Heading3: h}
	default:
		return Block{Type: BlockTypeHeading1, Heading1: h}
	}
}

// NewBulletedListItemBlock returns a bulleted list item.
func NewBulletedListItemBlock(text string) Block {
	return Block{
		Type:             BlockTypeBulletedListItem,
		BulletedListItem: &ListItemBlock{RichText: []RichText{NewTextRichText(text)}},
	}
}

// NewNumberedListItemBlock returns a numbered list item.
func NewNumberedListItemBlock(text string) Block {
	return Block{
		Type:             BlockTypeNumberedListItem,
		NumberedListItem: &ListItemBlock{RichText: []RichText{NewTextRichText(text)}},
	}
}

// NewToDoBlock returns a to_do block.
func NewToDoBlock(text string, checked bool) Block {
	return Block{
		Type: BlockTypeToDo,
		ToDo: &ToDoBlock{RichText: []RichText{NewTextRichText(text)}, Checked: checked},
	}
}

// NewCodeBlock returns a code block.
func NewCodeBlock(code string, language CodeLanguage) Block {
	return Block{
		Type: BlockTypeCode,
		Code: &CodeBlock{RichText: []RichText{NewTextRichText(code)}, Language: language},
	}
}

// NewQuoteBlock returns a quote block.
func NewQuoteBlock(text string) Block {
	return Block{
		Type:  BlockTypeQuote,
		Quote: &QuoteBlock{RichText: []RichText{NewTextRichText(text)}},
	}
}

// NewCalloutBlock returns a callout block with an optional icon.
func NewCalloutBlock(text string, icon *Icon) Block {
	return Block{
		Type:    BlockTypeCallout,
		Callout: &CalloutBlock{RichText: []RichText{NewTextRichText(text)}, Icon: icon},
	}
}

// NewDividerBlock returns a divider block.
func NewDividerBlock() Block {
	return Block{Type: BlockTypeDivider, Divider: &struct{}{}}
}

// NewBookmarkBlock returns a bookmark block.
func NewBookmarkBlock(url string) Block {
	return Block{Type: BlockTypeBookmark, Bookmark: &BookmarkBlock{URL: url}}
}

// NewEquationBlock returns an equation block.
func NewEquationBlock(expression string) Block {
	return Block{Type: BlockTypeEquation, Equation: &Equation{Expression: expression}}
}

// NewImageBlock returns an image block referencing an external URL.
func NewImageBlock(url string) Block {
	return Block{
		Type:  BlockTypeImage,
		Image: &MediaBlock{Type: FileTypeExternal, External: &ExternalRef{URL: url}},
	}
}

// NewTableBlock returns a table block with the given rows. Every row
// must have width cells.
func NewTableBlock(width int, hasColumnHeader bool, rows ...Block) Block {
	return Block{
		Type: BlockTypeTable,
		Table: &TableBlock{
			TableWidth:      width,
			HasColumnHeader: hasColumnHeader,
		},
		Children: rows,
	}
}

// NewTableRowBlock returns a table_row block with one plain text
// segment per cell.
func NewTableRowBlock(cells ...string) Block {
	row := &TableRowBlock{Cells: make([][]RichText, len(cells))}
	for i, c := range cells {
		row.Cells[i] = []RichText{NewTextRichText(c)}
	}
	return Block{Type: BlockTypeTableRow, TableRow: row}
}
