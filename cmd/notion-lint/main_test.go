package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDetectKind(t *testing.T) {
	kind, err := detectKind([]byte(`{"object": "page", "id": "x"}`))
	if err != nil {
		t.Fatalf("detectKind failed: %v", err)
	}
	if kind != "page" {
		t.Errorf("expected page, got %q", kind)
	}

	if _, err := detectKind([]byte(`{"id": "x"}`)); err == nil {
		t.Error("expected error for document without object field")
	}
	if _, err := detectKind([]byte(`not json`)); err == nil {
		t.Error("expected error for malformed document")
	}
}

func TestLintDocument(t *testing.T) {
	valid := `{
		"object": "user",
		"id": "d40e767c-d7af-4b18-a86d-55c61f1e39a4",
		"type": "person",
		"person": {"email": "avo@example.org"}
	}`
	if err := lintDocument([]byte(valid), "user"); err != nil {
		t.Errorf("lintDocument failed: %v", err)
	}

	t.Run("Findings", func(t *testing.T) {
		bad := `{"object": "user", "id": "not-a-uuid"}`
		if err := lintDocument([]byte(bad), "user"); err == nil {
			t.Error("expected finding for malformed id")
		}
	})

	t.Run("List", func(t *testing.T) {
		doc := `{"object": "list", "results": [], "next_cursor": null, "has_more": false}`
		if err := lintDocument([]byte(doc), "list"); err != nil {
			t.Errorf("lintDocument failed: %v", err)
		}
	})

	t.Run("Error", func(t *testing.T) {
		doc := `{"object": "error", "status": 400, "code": "validation_error", "message": "bad"}`
		if err := lintDocument([]byte(doc), "error"); err != nil {
			t.Errorf("lintDocument failed: %v", err)
		}
	})

	t.Run("UnknownKind", func(t *testing.T) {
		if err := lintDocument([]byte(`{}`), "workspace"); err == nil {
			t.Error("expected error for unknown kind")
		}
	})
}

func TestLintFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("JSON", func(t *testing.T) {
		p := filepath.Join(dir, "block.json")
		doc := `{
			"object": "block",
			"id": "c02fc1d3-db8b-45c5-a222-27595b15aea7",
			"type": "divider",
			"divider": {}
		}`
		if err := os.WriteFile(p, []byte(doc), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := lintFile(p, ""); err != nil {
			t.Errorf("lintFile failed: %v", err)
		}
	})

	t.Run("YAML", func(t *testing.T) {
		p := filepath.Join(dir, "comment.yaml")
		doc := `object: comment
id: 94cc56ab-9f02-409d-9f99-1037e9fe502f
parent:
  type: page_id
  page_id: 5c6a2821-6bb1-4a7e-b6e1-c50111515c3d
discussion_id: f1407351-36f5-4c49-a13c-49f8ba11776d
rich_text:
  - type: text
    text:
      content: Hello
`
		if err := os.WriteFile(p, []byte(doc), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := lintFile(p, ""); err != nil {
			t.Errorf("lintFile failed: %v", err)
		}
	})

	t.Run("ExplicitKind", func(t *testing.T) {
		p := filepath.Join(dir, "bare.json")
		doc := `{"id": "c02fc1d3-db8b-45c5-a222-27595b15aea7", "type": "divider", "divider": {}}`
		if err := os.WriteFile(p, []byte(doc), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := lintFile(p, "block"); err != nil {
			t.Errorf("lintFile failed: %v", err)
		}
		if err := lintFile(p, ""); err == nil {
			t.Error("expected error without -kind for a bare document")
		}
	})

	t.Run("Missing", func(t *testing.T) {
		if err := lintFile(filepath.Join(dir, "nope.json"), ""); err == nil {
			t.Error("expected error for missing file")
		}
	})
}
