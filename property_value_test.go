// Tests for page property values.

package notion

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPropertyValueDecode(t *testing.T) {
	t.Run("Number", func(t *testing.T) {
		var v PropertyValue
		if err := json.Unmarshal([]byte(`{"id":"Q%3BRB","type":"number","number":42.5}`), &v); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		want := PropertyValue{ID: "Q%3BRB", Type: PropertyTypeNumber, Number: ptr(42.5)}
		if diff := cmp.Diff(want, v); diff != "" {
			t.Errorf("decoded value mismatch (-want +got):\n%s", diff)
		}
		if err := v.Validate(); err != nil {
			t.Errorf("Validate failed: %v", err)
		}
	})

	t.Run("ClearedSelectIsNull", func(t *testing.T) {
		var v PropertyValue
		if err := json.Unmarshal([]byte(`{"id":"abc","type":"select","select":null}`), &v); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if v.Select != nil {
			t.Error("expected nil select for cleared value")
		}
		if err := v.Validate(); err != nil {
			t.Errorf("cleared value should validate: %v", err)
		}
	})

	t.Run("Formula", func(t *testing.T) {
		raw := `{"id":"W~%5BW","type":"formula","formula":{"type":"number","number":7}}`
		var v PropertyValue
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if v.Formula == nil || v.Formula.Number == nil || *v.Formula.Number != 7 {
			t.Errorf("unexpected formula: %+v", v.Formula)
		}
	})

	t.Run("RollupArray", func(t *testing.T) {
		raw := `{"type":"rollup","rollup":{"type":"array","function":"show_original",
			"array":[{"type":"number","number":1},{"type":"number","number":2}]}}`
		var v PropertyValue
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if len(v.Rollup.Array) != 2 {
			t.Errorf("expected 2 rollup elements, got %d", len(v.Rollup.Array))
		}
		if err := v.Validate(); err != nil {
			t.Errorf("Validate failed: %v", err)
		}
	})

	t.Run("RoundTrip", func(t *testing.T) {
		v := NewTitleProperty("Launch checklist")
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		var back PropertyValue
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if diff := cmp.Diff(v, back); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestPropertyValueValidate(t *testing.T) {
	t.Run("PayloadMismatch", func(t *testing.T) {
		v := PropertyValue{Type: PropertyTypeCheckbox, Select: &SelectOption{Name: "Done"}}
		if err := v.Validate(); err == nil {
			t.Error("expected error for select payload on a checkbox value")
		}
	})

	t.Run("BadEmail", func(t *testing.T) {
		v := NewEmailProperty("not-an-email")
		if err := v.Validate(); err == nil {
			t.Error("expected error for invalid email")
		}
		good := NewEmailProperty("ada@example.com")
		if err := good.Validate(); err != nil {
			t.Errorf("valid email rejected: %v", err)
		}
	})

	t.Run("BadURL", func(t *testing.T) {
		bad := NewURLProperty("nope")
		if err := bad.Validate(); err == nil {
			t.Error("expected error for invalid URL")
		}
		good := NewURLProperty("https://example.com")
		if err := good.Validate(); err != nil {
			t.Errorf("valid URL rejected: %v", err)
		}
	})

	t.Run("PhoneIsFreeForm", func(t *testing.T) {
		v := NewPhoneNumberProperty("415-867-5309")
		if err := v.Validate(); err != nil {
			t.Errorf("Validate failed: %v", err)
		}
	})

	t.Run("BackgroundColorOnOption", func(t *testing.T) {
		v := PropertyValue{
			Type:   PropertyTypeSelect,
			Select: &SelectOption{Name: "Hot", Color: ColorRedBackground},
		}
		if err := v.Validate(); err == nil {
			t.Error("expected error for background color on an option")
		}
	})

	t.Run("VerificationState", func(t *testing.T) {
		v := PropertyValue{
			Type:         PropertyTypeVerification,
			Verification: &Verification{State: "half-verified"},
		}
		if err := v.Validate(); err == nil {
			t.Error("expected error for unknown verification state")
		}
	})
}

func TestPropertyValueBuilders(t *testing.T) {
	id := MustObjectID("59833787-2cf9-4fdf-8782-e53db20768a5")

	cases := map[string]struct {
		got  PropertyValue
		want PropertyType
	}{
		"title":        {NewTitleProperty("t"), PropertyTypeTitle},
		"rich_text":    {NewRichTextProperty("r"), PropertyTypeRichText},
		"number":       {NewNumberProperty(3), PropertyTypeNumber},
		"checkbox":     {NewCheckboxProperty(true), PropertyTypeCheckbox},
		"select":       {NewSelectProperty("Done"), PropertyTypeSelect},
		"status":       {NewStatusProperty("In progress"), PropertyTypeStatus},
		"multi_select": {NewMultiSelectProperty("a", "b"), PropertyTypeMultiSelect},
		"email":        {NewEmailProperty("ada@example.com"), PropertyTypeEmail},
		"url":          {NewURLProperty("https://example.com"), PropertyTypeURL},
		"phone_number": {NewPhoneNumberProperty("555-0100"), PropertyTypePhoneNumber},
		"relation":     {NewRelationProperty(id), PropertyTypeRelation},
		"people":       {NewPeopleProperty(id), PropertyTypePeople},
		"files":        {NewFilesProperty(NewExternalFile("a.png", "https://example.com/a.png")), PropertyTypeFiles},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if tc.got.Type != tc.want {
				t.Errorf("expected type %q, got %q", tc.want, tc.got.Type)
			}
			if err := tc.got.Validate(); err != nil {
				t.Errorf("Validate failed: %v", err)
			}
		})
	}
}
