// Tests for block objects.

package notion

import (
	"encoding/json"
	"testing"
)

func TestBlockDecode(t *testing.T) {
	raw := `{
		"object": "block",
		"id": "c02fc1d3-db8b-45c5-a222-27595b15aea7",
		"parent": {"type": "page_id", "page_id": "59833787-2cf9-4fdf-8782-e53db20768a5"},
		"created_time": "2022-03-01T19:05:00.000Z",
		"last_edited_time": "2022-07-06T19:41:00.000Z",
		"has_children": false,
		"archived": false,
		"type": "heading_2",
		"heading_2": {
			"rich_text": [{"type": "text", "text": {"content": "Lacinato kale"}, "plain_text": "Lacinato kale"}],
			"color": "green",
			"is_toggleable": false
		}
	}`
	var b Block
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if b.Type != BlockTypeHeading2 || b.Heading2 == nil {
		t.Fatalf("unexpected block: %+v", b)
	}
	if got := PlainText(b.RichTextContent()); got != "Lacinato kale" {
		t.Errorf("expected plain text %q, got %q", "Lacinato kale", got)
	}
	if b.Heading2.Color != ColorGreen {
		t.Errorf("expected green, got %q", b.Heading2.Color)
	}
	if err := b.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

func TestBlockValidate(t *testing.T) {
	t.Run("Builders", func(t *testing.T) {
		blocks := []Block{
			NewParagraphBlock("p"),
			NewHeadingBlock(1, "h1"),
			NewHeadingBlock(2, "h2"),
			NewHeadingBlock(3, "h3"),
			NewBulletedListItemBlock("li"),
			NewNumberedListItemBlock("li"),
			NewToDoBlock("todo", true),
			NewCodeBlock("fmt.Println(1)", CodeLanguageGo),
			NewQuoteBlock("q"),
			NewCalloutBlock("note", nil),
			NewDividerBlock(),
			NewBookmarkBlock("https://example.com"),
			NewEquationBlock("x^2"),
			NewImageBlock("https://example.com/a.png"),
		}
		for _, b := range blocks {
			if err := b.Validate(); err != nil {
				t.Errorf("%s: Validate failed: %v", b.Type, err)
			}
		}
	})

	t.Run("MissingType", func(t *testing.T) {
		if err := (&Block{}).Validate(); err == nil {
			t.Error("expected error for missing type")
		}
	})

	t.Run("MissingPayload", func(t *testing.T) {
		b := Block{Type: BlockTypeParagraph}
		if err := b.Validate(); err == nil {
			t.Error("expected error for missing paragraph payload")
		}
	})

	t.Run("PayloadMismatch", func(t *testing.T) {
		b := Block{Type: BlockTypeParagraph, Paragraph: &ParagraphBlock{}, Embed: &EmbedBlock{URL: "https://e.com"}}
		if err := b.Validate(); err == nil {
			t.Error("expected error for extra embed payload")
		}
	})

	t.Run("UnknownCodeLanguage", func(t *testing.T) {
		b := NewCodeBlock("x", "klingon")
		if err := b.Validate(); err == nil {
			t.Error("expected error for unknown language")
		}
	})

	t.Run("TableWidth", func(t *testing.T) {
		table := NewTableBlock(2, true,
			NewTableRowBlock("Name", "Price"),
			NewTableRowBlock("Kale", "$3"),
		)
		if err := table.Validate(); err != nil {
			t.Errorf("Validate failed: %v", err)
		}

		bad := NewTableBlock(2, false, NewTableRowBlock("only one cell"))
		if err := bad.Validate(); err == nil {
			t.Error("expected error for row narrower than table_width")
		}
	})

	t.Run("BadBookmarkURL", func(t *testing.T) {
		b := NewBookmarkBlock("nope")
		if err := b.Validate(); err == nil {
			t.Error("expected error for invalid bookmark URL")
		}
	})

	t.Run("UnsupportedWithoutPayload", func(t *testing.T) {
		b := Block{Type: BlockTypeUnsupported}
		if err := b.Validate(); err != nil {
			t.Errorf("unsupported blocks need no payload: %v", err)
		}
	})
}

func TestBlockWriteShape(t *testing.T) {
	// Blocks built for writing must not leak read-only fields.
	data, err := json.Marshal(NewParagraphBlock("hello"))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	for _, k := range []string{"id", "object", "created_time", "last_edited_time", "archived", "has_children"} {
		if _, ok := m[k]; ok {
			t.Errorf("write shape leaks %q", k)
		}
	}
	if _, ok := m["paragraph"]; !ok {
		t.Error("write shape is missing the paragraph payload")
	}
}
