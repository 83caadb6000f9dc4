// Tests for endpoint request models.

package notion

import (
	"encoding/json"
	"strings"
	"testing"
)

var (
	testPageID     = MustObjectID("59833787-2cf9-4fdf-8782-e53db20768a5")
	testDatabaseID = MustObjectID("d9824bdc-8445-4327-be8b-5b47500af6ce")
	testBlockID    = MustObjectID("c02fc1d3-db8b-45c5-a222-27595b15aea7")
)

func TestCreatePageRequest(t *testing.T) {
	t.Run("DatabaseRow", func(t *testing.T) {
		r := CreatePageRequest{
			Parent: NewDatabaseParent(testDatabaseID),
			Properties: map[string]PropertyValue{
				"Name":     NewTitleProperty("Tuscan kale"),
				"In stock": NewCheckboxProperty(true),
			},
		}
		if err := r.Validate(); err != nil {
			t.Errorf("Validate failed: %v", err)
		}
	})

	t.Run("ChildPage", func(t *testing.T) {
		r := CreatePageRequest{
			Parent: NewPageParent(testPageID),
			Properties: map[string]PropertyValue{
				"title": NewTitleProperty("Meeting notes"),
			},
			Children: []Block{NewParagraphBlock("Agenda")},
		}
		if err := r.Validate(); err != nil {
			t.Errorf("Validate failed: %v", err)
		}
	})

	t.Run("ChildPageNonTitleProperty", func(t *testing.T) {
		r := CreatePageRequest{
			Parent: NewPageParent(testPageID),
			Properties: map[string]PropertyValue{
				"title": NewTitleProperty("Meeting notes"),
				"Done":  NewCheckboxProperty(false),
			},
		}
		if err := r.Validate(); err == nil {
			t.Error("expected error for non-title property under a page parent")
		}
	})

	t.Run("WorkspaceParent", func(t *testing.T) {
		r := CreatePageRequest{
			Parent:     NewWorkspaceParent(),
			Properties: map[string]PropertyValue{"title": NewTitleProperty("x")},
		}
		if err := r.Validate(); err == nil {
			t.Error("expected error for workspace parent")
		}
	})

	t.Run("MissingProperties", func(t *testing.T) {
		r := CreatePageRequest{Parent: NewDatabaseParent(testDatabaseID)}
		if err := r.Validate(); err == nil {
			t.Error("expected error for missing properties")
		}
	})
}

func TestUpdatePageRequest(t *testing.T) {
	t.Run("ReadOnlyProperty", func(t *testing.T) {
		r := UpdatePageRequest{
			PageID: testPageID,
			Properties: map[string]PropertyValue{
				"ID": {Type: PropertyTypeUniqueID, UniqueID: &UniqueIDValue{Number: 42}},
			},
		}
		err := r.Validate()
		if err == nil {
			t.Fatal("expected error for read-only property")
		}
		if !strings.Contains(err.Error(), "read-only") {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("ArchiveOnly", func(t *testing.T) {
		r := UpdatePageRequest{PageID: testPageID, Archived: ptr(true)}
		if err := r.Validate(); err != nil {
			t.Errorf("Validate failed: %v", err)
		}
	})

	t.Run("MissingID", func(t *testing.T) {
		var r UpdatePageRequest
		if err := r.Validate(); err == nil {
			t.Error("expected error for missing page_id")
		}
	})
}

func TestSortValidate(t *testing.T) {
	good := []Sort{
		{Property: "Price", Direction: SortAscending},
		{Timestamp: "last_edited_time", Direction: SortDescending},
	}
	for _, s := range good {
		if err := s.Validate(); err != nil {
			t.Errorf("%+v: %v", s, err)
		}
	}
	bad := []Sort{
		{Direction: SortAscending},
		{Property: "Price", Timestamp: "created_time", Direction: SortAscending},
		{Timestamp: "updated_at", Direction: SortAscending},
		{Property: "Price", Direction: "up"},
	}
	for _, s := range bad {
		if err := s.Validate(); err == nil {
			t.Errorf("%+v: expected error", s)
		}
	}
}

func TestCreateDatabaseRequest(t *testing.T) {
	schema := map[string]PropertyConfig{
		"Name":  NewTitleConfig(),
		"Price": NewNumberConfig(NumberFormatDollar),
	}

	t.Run("Valid", func(t *testing.T) {
		r := CreateDatabaseRequest{
			Parent:     NewPageParent(testPageID),
			Title:      []RichText{NewTextRichText("Grocery List")},
			Properties: schema,
		}
		if err := r.Validate(); err != nil {
			t.Errorf("Validate failed: %v", err)
		}
	})

	t.Run("DatabaseParent", func(t *testing.T) {
		r := CreateDatabaseRequest{
			Parent:     NewDatabaseParent(testDatabaseID),
			Properties: schema,
		}
		if err := r.Validate(); err == nil {
			t.Error("expected error for database parent")
		}
	})

	t.Run("NoTitleColumn", func(t *testing.T) {
		r := CreateDatabaseRequest{
			Parent:     NewPageParent(testPageID),
			Properties: map[string]PropertyConfig{"Price": NewNumberConfig(NumberFormatDollar)},
		}
		if err := r.Validate(); err == nil {
			t.Error("expected error for schema without a title property")
		}
	})
}

func TestQueryDatabaseRequest(t *testing.T) {
	r := QueryDatabaseRequest{
		DatabaseID: testDatabaseID,
		Filter: &Filter{
			Property: "In stock",
			Checkbox: &CheckboxCondition{Equals: ptr(true)},
		},
		Sorts:    []Sort{{Property: "Price", Direction: SortAscending}},
		PageSize: 50,
	}
	if err := r.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}

	t.Run("BadFilter", func(t *testing.T) {
		bad := r
		bad.Filter = &Filter{Property: "In stock"}
		if err := bad.Validate(); err == nil {
			t.Error("expected error for filter without a condition")
		}
	})

	t.Run("BadPageSize", func(t *testing.T) {
		bad := r
		bad.PageSize = 500
		if err := bad.Validate(); err == nil {
			t.Error("expected error for oversized page")
		}
	})
}

func TestAppendBlockChildrenRequest(t *testing.T) {
	para := NewParagraphBlock("hello")

	t.Run("Valid", func(t *testing.T) {
		r := AppendBlockChildrenRequest{BlockID: testBlockID, Children: []Block{para}}
		if err := r.Validate(); err != nil {
			t.Errorf("Validate failed: %v", err)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		r := AppendBlockChildrenRequest{BlockID: testBlockID}
		if err := r.Validate(); err == nil {
			t.Error("expected error for empty children")
		}
	})

	t.Run("TooMany", func(t *testing.T) {
		children := make([]Block, 101)
		for i := range children {
			children[i] = para
		}
		r := AppendBlockChildrenRequest{BlockID: testBlockID, Children: children}
		if err := r.Validate(); err == nil {
			t.Error("expected error for more than 100 children")
		}
	})
}

func TestUpdateBlockRequest(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		r := UpdateBlockRequest{
			BlockID: testBlockID,
			Block:   NewParagraphBlock("updated"),
		}
		if err := r.Validate(); err != nil {
			t.Errorf("Validate failed: %v", err)
		}
		data, err := json.Marshal(r)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		// The payload marshals flat, without a wrapping "block" key.
		if !strings.Contains(string(data), `"paragraph"`) || strings.Contains(string(data), `"block"`) {
			t.Errorf("unexpected body: %s", data)
		}
	})

	t.Run("ArchiveOnly", func(t *testing.T) {
		r := UpdateBlockRequest{BlockID: testBlockID, Block: Block{Archived: true}}
		if err := r.Validate(); err != nil {
			t.Errorf("Validate failed: %v", err)
		}
	})

	t.Run("TwoPayloads", func(t *testing.T) {
		b := NewParagraphBlock("x")
		b.Quote = &QuoteBlock{RichText: []RichText{NewTextRichText("y")}}
		r := UpdateBlockRequest{BlockID: testBlockID, Block: b}
		if err := r.Validate(); err == nil {
			t.Error("expected error for two payloads")
		}
	})
}

func TestCreateCommentRequest(t *testing.T) {
	body := []RichText{NewTextRichText("Looks good!")}
	parent := NewPageParent(testPageID)

	t.Run("OnPage", func(t *testing.T) {
		r := CreateCommentRequest{Parent: &parent, RichText: body}
		if err := r.Validate(); err != nil {
			t.Errorf("Validate failed: %v", err)
		}
	})

	t.Run("InDiscussion", func(t *testing.T) {
		r := CreateCommentRequest{
			DiscussionID: MustObjectID("f1407351-36f5-4c49-a13c-49f8ba11776d"),
			RichText:     body,
		}
		if err := r.Validate(); err != nil {
			t.Errorf("Validate failed: %v", err)
		}
	})

	t.Run("Neither", func(t *testing.T) {
		r := CreateCommentRequest{RichText: body}
		if err := r.Validate(); err == nil {
			t.Error("expected error for neither parent nor discussion_id")
		}
	})

	t.Run("Both", func(t *testing.T) {
		r := CreateCommentRequest{
			Parent:       &parent,
			DiscussionID: MustObjectID("f1407351-36f5-4c49-a13c-49f8ba11776d"),
			RichText:     body,
		}
		if err := r.Validate(); err == nil {
			t.Error("expected error for both parent and discussion_id")
		}
	})

	t.Run("DatabaseParent", func(t *testing.T) {
		p := NewDatabaseParent(testDatabaseID)
		r := CreateCommentRequest{Parent: &p, RichText: body}
		if err := r.Validate(); err == nil {
			t.Error("expected error for database parent")
		}
	})

	t.Run("EmptyBody", func(t *testing.T) {
		r := CreateCommentRequest{Parent: &parent}
		if err := r.Validate(); err == nil {
			t.Error("expected error for empty rich_text")
		}
	})
}

func TestSearchRequest(t *testing.T) {
	r := SearchRequest{
		Query:    "External tasks",
		Filter:   &SearchFilter{Value: "database", Property: "object"},
		Sort:     &SearchSort{Direction: SortDescending, Timestamp: "last_edited_time"},
		PageSize: 25,
	}
	if err := r.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}

	bad := r
	bad.Filter = &SearchFilter{Value: "block", Property: "object"}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for bad filter value")
	}
}
