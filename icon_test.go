// Tests for page and database icons.

package notion

import "testing"

func TestNewEmojiIcon(t *testing.T) {
	for _, s := range []string{"🥬", "😻", "👍🏿", "🇳🇴"} {
		if _, err := NewEmojiIcon(s); err != nil {
			t.Errorf("%q: %v", s, err)
		}
	}
	for _, s := range []string{"", "x", "hello", ":smile:"} {
		if _, err := NewEmojiIcon(s); err == nil {
			t.Errorf("%q: expected error", s)
		}
	}
}

func TestIconValidate(t *testing.T) {
	t.Run("External", func(t *testing.T) {
		icon := NewExternalIcon("https://example.com/icon.png")
		if err := icon.Validate(); err != nil {
			t.Errorf("Validate failed: %v", err)
		}
		bad := NewExternalIcon("ftp://example.com/icon.png")
		if err := bad.Validate(); err == nil {
			t.Error("expected error for non-http URL")
		}
	})

	t.Run("MissingPayload", func(t *testing.T) {
		icon := Icon{Type: IconTypeExternal}
		if err := icon.Validate(); err == nil {
			t.Error("expected error for external icon without payload")
		}
	})

	t.Run("CustomEmoji", func(t *testing.T) {
		icon := Icon{Type: IconTypeCustomEmoji, CustomEmoji: &CustomEmoji{
			ID:   MustObjectID("45ce454c-d427-4f53-9489-e5d0f3d1db6b"),
			Name: "bufo",
		}}
		if err := icon.Validate(); err != nil {
			t.Errorf("Validate failed: %v", err)
		}
	})

	t.Run("UnknownType", func(t *testing.T) {
		icon := Icon{Type: "sticker"}
		if err := icon.Validate(); err == nil {
			t.Error("expected error for unknown icon type")
		}
	})
}
