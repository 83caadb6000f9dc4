// Tests for page objects.

package notion

import (
	"encoding/json"
	"testing"
)

const samplePage = `{
	"object": "page",
	"id": "59833787-2cf9-4fdf-8782-e53db20768a5",
	"created_time": "2022-03-01T19:05:00.000Z",
	"last_edited_time": "2022-07-06T20:25:00.000Z",
	"created_by": {"object": "user", "id": "ee5f0f84-409a-440f-983a-a5315961c6e4"},
	"cover": {"type": "external", "external": {"url": "https://upload.example.com/trail.jpg"}},
	"icon": {"type": "emoji", "emoji": "🥬"},
	"parent": {"type": "database_id", "database_id": "d9824bdc-8445-4327-be8b-5b47500af6ce"},
	"archived": false,
	"properties": {
		"Name": {
			"id": "title",
			"type": "title",
			"title": [{"type": "text", "text": {"content": "Tuscan kale"}, "plain_text": "Tuscan kale"}]
		},
		"Price": {"id": "BJXS", "type": "number", "number": 2.5},
		"In stock": {"id": "%3AyY", "type": "checkbox", "checkbox": true},
		"Last ordered": {"id": "bZaJ", "type": "date", "date": {"start": "2022-02-22"}}
	},
	"url": "https://www.notion.so/Tuscan-kale-59833787"
}`

func TestPage(t *testing.T) {
	var p Page
	if err := json.Unmarshal([]byte(samplePage), &p); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	t.Run("Decode", func(t *testing.T) {
		if p.Parent.Type != ParentTypeDatabase {
			t.Errorf("unexpected parent: %+v", p.Parent)
		}
		if len(p.Properties) != 4 {
			t.Errorf("expected 4 properties, got %d", len(p.Properties))
		}
		price := p.Properties["Price"]
		if price.Number == nil || *price.Number != 2.5 {
			t.Errorf("unexpected price: %+v", price)
		}
		ordered := p.Properties["Last ordered"]
		if ordered.Date == nil || !ordered.Date.Start.DateOnly {
			t.Errorf("expected date-only start: %+v", ordered.Date)
		}
	})

	t.Run("Title", func(t *testing.T) {
		if got := p.Title(); got != "Tuscan kale" {
			t.Errorf("expected %q, got %q", "Tuscan kale", got)
		}
		if got := p.TitleProperty(); got != "Name" {
			t.Errorf("expected %q, got %q", "Name", got)
		}
	})

	t.Run("Validate", func(t *testing.T) {
		if err := p.Validate(); err != nil {
			t.Errorf("Validate failed: %v", err)
		}
	})

	t.Run("WrongObject", func(t *testing.T) {
		bad := p
		bad.Object = "database"
		if err := bad.Validate(); err == nil {
			t.Error("expected error for wrong object")
		}
	})

	t.Run("RoundTrip", func(t *testing.T) {
		data, err := json.Marshal(p)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		var back Page
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if back.Title() != p.Title() || len(back.Properties) != len(p.Properties) {
			t.Error("round trip lost content")
		}
	})
}
