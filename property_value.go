// Defines page property values: the 22 typed variants a page carries.

package notion

import "time"

// PropertyType discriminates page property values and database schema
// property configurations.
// Reference: https://developers.notion.com/reference/page-property-values
type PropertyType string

const (
	PropertyTypeCheckbox       PropertyType = "checkbox"
	PropertyTypeCreatedBy      PropertyType = "created_by"
	PropertyTypeCreatedTime    PropertyType = "created_time"
	PropertyTypeDate           PropertyType = "date"
	PropertyTypeEmail          PropertyType = "email"
	PropertyTypeFiles          PropertyType = "files"
	PropertyTypeFormula        PropertyType = "formula"
	PropertyTypeLastEditedBy   PropertyType = "last_edited_by"
	PropertyTypeLastEditedTime PropertyType = "last_edited_time"
	PropertyTypeMultiSelect    PropertyType = "multi_select"
	PropertyTypeNumber         PropertyType = "number"
	PropertyTypePeople         PropertyType = "people"
	PropertyTypePhoneNumber    PropertyType = "phone_number"
	PropertyTypeRelation       PropertyType = "relation"
	PropertyTypeRichText       PropertyType = "rich_text"
	PropertyTypeRollup         PropertyType = "rollup"
	PropertyTypeSelect         PropertyType = "select"
	PropertyTypeStatus         PropertyType = "status"
	PropertyTypeTitle          PropertyType = "title"
	PropertyTypeUniqueID       PropertyType = "unique_id"
	PropertyTypeURL            PropertyType = "url"
	PropertyTypeVerification   PropertyType = "verification"
)

// SelectOption is an option of a select, multi_select, or status
// property, used both in database schemas and page values. When
// writing, name alone is enough to reference an existing option.
type SelectOption struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Color Color  `json:"color,omitempty"`
}

// NewSelectOption returns an option referencing or creating name.
func NewSelectOption(name string, color Color) SelectOption {
	return SelectOption{Name: name, Color: color}
}

// Validate checks the option has a name or ID and a foreground color.
func (o *SelectOption) Validate() error {
	if o.Name == "" && o.ID == "" {
		return MissingField("name")
	}
	if !o.Color.OptionColor() {
		return InvalidField("color", "background colors are not allowed on options")
	}
	return nil
}

// FormulaValue is the computed result of a formula property.
type FormulaValue struct {
	Type string `json:"type"` // "string", "number", "boolean", "date"

	String  *string    `json:"string,omitempty"`
	Number  *float64   `json:"number,omitempty"`
	Boolean *bool      `json:"boolean,omitempty"`
	Date    *DateValue `json:"date,omitempty"`
}

// RollupFunction is an aggregation applied by a rollup property.
type RollupFunction string

const (
	RollupFunctionAverage          RollupFunction = "average"
	RollupFunctionChecked          RollupFunction = "checked"
	RollupFunctionCount            RollupFunction = "count"
	RollupFunctionCountPerGroup    RollupFunction = "count_per_group"
	RollupFunctionCountValues      RollupFunction = "count_values"
	RollupFunctionDateRange        RollupFunction = "date_range"
	RollupFunctionEarliestDate     RollupFunction = "earliest_date"
	RollupFunctionEmpty            RollupFunction = "empty"
	RollupFunctionLatestDate       RollupFunction = "latest_date"
	RollupFunctionMax              RollupFunction = "max"
	RollupFunctionMedian           RollupFunction = "median"
	RollupFunctionMin              RollupFunction = "min"
	RollupFunctionNotEmpty         RollupFunction = "not_empty"
	RollupFunctionPercentChecked   RollupFunction = "percent_checked"
	RollupFunctionPercentEmpty     RollupFunction = "percent_empty"
	RollupFunctionPercentNotEmpty  RollupFunction = "percent_not_empty"
	RollupFunctionPercentPerGroup  RollupFunction = "percent_per_group"
	RollupFunctionPercentUnchecked RollupFunction = "percent_unchecked"
	RollupFunctionRange            RollupFunction = "range"
	RollupFunctionShowOriginal     RollupFunction = "show_original"
	RollupFunctionShowUnique       RollupFunction = "show_unique"
	RollupFunctionSum              RollupFunction = "sum"
	RollupFunctionUnchecked        RollupFunction = "unchecked"
	RollupFunctionUnique           RollupFunction = "unique"
)

// RollupValue is the computed result of a rollup property. The API
// does not accept rollup values on writes. For rollups with more than
// 25 references, only the property item endpoint returns everything;
// "incomplete" and "unsupported" results carry no payload.
type RollupValue struct {
	Type     string         `json:"type"` // "number", "date", "array", "incomplete", "unsupported"
	Function RollupFunction `json:"function,omitempty"`

	Number *float64        `json:"number,omitempty"`
	Date   *DateValue      `json:"date,omitempty"`
	Array  []PropertyValue `json:"array,omitempty"`
}

// UniqueIDValue is an auto-incrementing ID with an optional prefix.
// Read-only: the API never accepts unique_id values on writes.
type UniqueIDValue struct {
	Number int     `json:"number"`
	Prefix *string `json:"prefix,omitempty"`
}

// VerificationState is the state of a page verification.
type VerificationState string

const (
	VerificationStateVerified   VerificationState = "verified"
	VerificationStateUnverified VerificationState = "unverified"
	VerificationStateExpired    VerificationState = "expired"
)

// Verification is the value of a wiki page verification property.
type Verification struct {
	State      VerificationState `json:"state"`
	VerifiedBy *User             `json:"verified_by,omitempty"`
	Date       *DateValue        `json:"date,omitempty"`
}

// PropertyValue is a single property value on a page. Only the payload
// field matching Type is populated; scalar payloads use pointers so an
// explicit null (a cleared value) is distinguishable from absence.
type PropertyValue struct {
	// ID identifies the property in the page's schema. It may be used
	// in place of the property name and survives renames. Absent when
	// writing new values.
	ID   string       `json:"id,omitempty"`
	Type PropertyType `json:"type,omitempty"`

	Checkbox       *bool           `json:"checkbox,omitempty"`
	CreatedBy      *User           `json:"created_by,omitempty"`
	CreatedTime    *time.Time      `json:"created_time,omitempty"`
	Date           *DateValue      `json:"date,omitempty"`
	Email          *string         `json:"email,omitempty"`
	Files          []File          `json:"files,omitempty"`
	Formula        *FormulaValue   `json:"formula,omitempty"`
	LastEditedBy   *User           `json:"last_edited_by,omitempty"`
	LastEditedTime *time.Time      `json:"last_edited_time,omitempty"`
	MultiSelect    []SelectOption  `json:"multi_select,omitempty"`
	Number         *float64        `json:"number,omitempty"`
	People         []User          `json:"people,omitempty"`
	PhoneNumber    *string         `json:"phone_number,omitempty"`
	Relation       []PageRef       `json:"relation,omitempty"`
	RichText       []RichText      `json:"rich_text,omitempty"`
	Rollup         *RollupValue    `json:"rollup,omitempty"`
	Select         *SelectOption   `json:"select,omitempty"`
	Status         *SelectOption   `json:"status,omitempty"`
	Title          []RichText      `json:"title,omitempty"`
	UniqueID       *UniqueIDValue  `json:"unique_id,omitempty"`
	URL            *string         `json:"url,omitempty"`
	Verification   *Verification   `json:"verification,omitempty"`

	// HasMore is set on relation values truncated at 25 references.
	HasMore *bool `json:"has_more,omitempty"`
}

// payloadSet returns the property types whose payload fields are
// populated. Used to detect payloads that disagree with Type.
func (p *PropertyValue) payloadSet() []PropertyType {
	var set []PropertyType
	add := func(ok bool, t PropertyType) {
		if ok {
			set = append(set, t)
		}
	}
	add(p.Checkbox != nil, PropertyTypeCheckbox)
	add(p.CreatedBy != nil, PropertyTypeCreatedBy)
	add(p.CreatedTime != nil, PropertyTypeCreatedTime)
	add(p.Date != nil, PropertyTypeDate)
	add(p.Email != nil, PropertyTypeEmail)
	add(p.Files != nil, PropertyTypeFiles)
	add(p.Formula != nil, PropertyTypeFormula)
	add(p.LastEditedBy != nil, PropertyTypeLastEditedBy)
	add(p.LastEditedTime != nil, PropertyTypeLastEditedTime)
	add(p.MultiSelect != nil, PropertyTypeMultiSelect)
	add(p.Number != nil, PropertyTypeNumber)
	add(p.People != nil, PropertyTypePeople)
	add(p.PhoneNumber != nil, PropertyTypePhoneNumber)
	add(p.Relation != nil, PropertyTypeRelation)
	add(p.RichText != nil, PropertyTypeRichText)
	add(p.Rollup != nil, PropertyTypeRollup)
	add(p.Select != nil, PropertyTypeSelect)
	add(p.Status != nil, PropertyTypeStatus)
	add(p.Title != nil, PropertyTypeTitle)
	add(p.UniqueID != nil, PropertyTypeUniqueID)
	add(p.URL != nil, PropertyTypeURL)
	add(p.Verification != nil, PropertyTypeVerification)
	return set
}

// Validate checks discriminator/payload agreement and field formats.
// A nil payload for scalar types is valid: the API serializes cleared
// values as null.
func (p *PropertyValue) Validate() error {
	if p.Type == "" && p.ID == "" {
		return MissingField("type")
	}
	for _, set := range p.payloadSet() {
		if p.Type != "" && set != p.Type {
			return InvalidField(string(set), "payload does not match type "+string(p.Type))
		}
	}
	switch p.Type {
	case PropertyTypeEmail:
		if p.Email != nil {
			return validateEmail("email", *p.Email)
		}
	case PropertyTypeURL:
		if p.URL != nil {
			return validateURL("url", *p.URL)
		}
	case PropertyTypeDate:
		if p.Date != nil {
			return prefixField("date", p.Date.Validate())
		}
	case PropertyTypeSelect:
		if p.Select != nil {
			return prefixField("select", p.Select.Validate())
		}
	case PropertyTypeStatus:
		if p.Status != nil {
			return prefixField("status", p.Status.Validate())
		}
	case PropertyTypeMultiSelect:
		for i := range p.MultiSelect {
			if err := p.MultiSelect[i].Validate(); err != nil {
				return prefixField("multi_select", err)
			}
		}
	case PropertyTypeTitle:
		return validateRichText("title", p.Title)
	case PropertyTypeRichText:
		return validateRichText("rich_text", p.RichText)
	case PropertyTypeFiles:
		for i := range p.Files {
			if err := p.Files[i].Validate(); err != nil {
				return prefixField("files", err)
			}
		}
	case PropertyTypePeople:
		for i := range p.People {
			if err := p.People[i].Validate(); err != nil {
				return prefixField("people", err)
			}
		}
	case PropertyTypeRelation:
		for i := range p.Relation {
			if err := p.Relation[i].ID.Validate(); err != nil {
				return prefixField("relation", err)
			}
		}
	case PropertyTypeVerification:
		if p.Verification != nil {
			switch p.Verification.State {
			case VerificationStateVerified, VerificationStateUnverified, VerificationStateExpired:
			default:
				return InvalidField("verification.state", "unknown state "+string(p.Verification.State))
			}
		}
	}
	return nil
}

// Factory constructors mirroring the common write shapes.

// NewTitleProperty returns a title value with a single plain text
// segment.
func NewTitleProperty(text string) PropertyValue {
	return PropertyValue{Type: PropertyTypeTitle, Title: []RichText{NewTextRichText(text)}}
}

// NewRichTextProperty returns a rich_text value with a single plain
// text segment.
func NewRichTextProperty(text string) PropertyValue {
	return PropertyValue{Type: PropertyTypeRichText, RichText: []RichText{NewTextRichText(text)}}
}

// NewNumberProperty returns a number value.
func NewNumberProperty(n float64) PropertyValue {
	return PropertyValue{Type: PropertyTypeNumber, Number: &n}
}

// NewCheckboxProperty returns a checkbox value.
func NewCheckboxProperty(checked bool) PropertyValue {
	return PropertyValue{Type: PropertyTypeCheckbox, Checkbox: &checked}
}

// NewSelectProperty returns a select value referencing the named
// option, creating it if the schema allows.
func NewSelectProperty(name string) PropertyValue {
	opt := SelectOption{Name: name}
	return PropertyValue{Type: PropertyTypeSelect, Select: &opt}
}

// NewStatusProperty returns a status value referencing the named
// option. Unlike select, status options cannot be created on write.
func NewStatusProperty(name string) PropertyValue {
	opt := SelectOption{Name: name}
	return PropertyValue{Type: PropertyTypeStatus, Status: &opt}
}

// NewMultiSelectProperty returns a multi_select value referencing the
// named options.
func NewMultiSelectProperty(names ...string) PropertyValue {
	opts := make([]SelectOption, len(names))
	for i, n := range names {
		opts[i] = SelectOption{Name: n}
	}
	return PropertyValue{Type: PropertyTypeMultiSelect, MultiSelect: opts}
}

// NewDateProperty returns a date value.
func NewDateProperty(d *DateValue) PropertyValue {
	return PropertyValue{Type: PropertyTypeDate, Date: d}
}

// NewEmailProperty returns an email value.
func NewEmailProperty(email string) PropertyValue {
	return PropertyValue{Type: PropertyTypeEmail, Email: &email}
}

// NewURLProperty returns a url value.
func NewURLProperty(url string) PropertyValue {
	return PropertyValue{Type: PropertyTypeURL, URL: &url}
}

// NewPhoneNumberProperty returns a phone_number value. The API does
// not enforce any phone format and neither does validation here.
func NewPhoneNumberProperty(phone string) PropertyValue {
	return PropertyValue{Type: PropertyTypePhoneNumber, PhoneNumber: &phone}
}

// NewRelationProperty returns a relation value referencing pages.
func NewRelationProperty(ids ...ObjectID) PropertyValue {
	refs := make([]PageRef, len(ids))
	for i, id := range ids {
		refs[i] = PageRef{ID: id}
	}
	return PropertyValue{Type: PropertyTypeRelation, Relation: refs}
}

// NewPeopleProperty returns a people value referencing users by ID.
func NewPeopleProperty(ids ...ObjectID) PropertyValue {
	users := make([]User, len(ids))
	for i, id := range ids {
		users[i] = UserRef(id)
	}
	return PropertyValue{Type: PropertyTypePeople, People: users}
}

// NewFilesProperty returns a files value from external files.
func NewFilesProperty(files ...File) PropertyValue {
	return PropertyValue{Type: PropertyTypeFiles, Files: files}
}
