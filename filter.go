// Defines the database query filter tree.

package notion

// Filter is one node of a database query filter: either a compound
// (And/Or) or a single property or timestamp condition.
// Reference: https://developers.notion.com/reference/post-database-query-filter
type Filter struct {
	And []Filter `json:"and,omitempty"`
	Or  []Filter `json:"or,omitempty"`

	// Property names the property a condition applies to.
	Property string `json:"property,omitempty"`
	// Timestamp is "created_time" or "last_edited_time" for timestamp
	// conditions.
	Timestamp string `json:"timestamp,omitempty"`

	Checkbox       *CheckboxCondition    `json:"checkbox,omitempty"`
	CreatedTime    *DateCondition        `json:"created_time,omitempty"`
	Date           *DateCondition        `json:"date,omitempty"`
	Email          *TextCondition        `json:"email,omitempty"`
	Files          *ExistenceCondition   `json:"files,omitempty"`
	Formula        *FormulaCondition     `json:"formula,omitempty"`
	LastEditedTime *DateCondition        `json:"last_edited_time,omitempty"`
	MultiSelect    *MultiSelectCondition `json:"multi_select,omitempty"`
	Number         *NumberCondition      `json:"number,omitempty"`
	People         *PeopleCondition      `json:"people,omitempty"`
	PhoneNumber    *TextCondition        `json:"phone_number,omitempty"`
	Relation       *RelationCondition    `json:"relation,omitempty"`
	RichText       *TextCondition        `json:"rich_text,omitempty"`
	Rollup         *RollupCondition      `json:"rollup,omitempty"`
	Select         *SelectCondition      `json:"select,omitempty"`
	Status         *SelectCondition      `json:"status,omitempty"`
	Title          *TextCondition        `json:"title,omitempty"`
	UniqueID       *NumberCondition      `json:"unique_id,omitempty"`
	URL            *TextCondition        `json:"url,omitempty"`
}

// TextCondition filters text-like properties.
type TextCondition struct {
	Equals         *string `json:"equals,omitempty"`
	DoesNotEqual   *string `json:"does_not_equal,omitempty"`
	Contains       *string `json:"contains,omitempty"`
	DoesNotContain *string `json:"does_not_contain,omitempty"`
	StartsWith     *string `json:"starts_with,omitempty"`
	EndsWith       *string `json:"ends_with,omitempty"`
	IsEmpty        bool    `json:"is_empty,omitempty"`
	IsNotEmpty     bool    `json:"is_not_empty,omitempty"`
}

// NumberCondition filters number and unique_id properties.
type NumberCondition struct {
	Equals               *float64 `json:"equals,omitempty"`
	DoesNotEqual         *float64 `json:"does_not_equal,omitempty"`
	GreaterThan          *float64 `json:"greater_than,omitempty"`
	LessThan             *float64 `json:"less_than,omitempty"`
	GreaterThanOrEqualTo *float64 `json:"greater_than_or_equal_to,omitempty"`
	LessThanOrEqualTo    *float64 `json:"less_than_or_equal_to,omitempty"`
	IsEmpty              bool     `json:"is_empty,omitempty"`
	IsNotEmpty           bool     `json:"is_not_empty,omitempty"`
}

// CheckboxCondition filters checkbox properties.
type CheckboxCondition struct {
	Equals       *bool `json:"equals,omitempty"`
	DoesNotEqual *bool `json:"does_not_equal,omitempty"`
}

// SelectCondition filters select and status properties.
type SelectCondition struct {
	Equals       *string `json:"equals,omitempty"`
	DoesNotEqual *string `json:"does_not_equal,omitempty"`
	IsEmpty      bool    `json:"is_empty,omitempty"`
	IsNotEmpty   bool    `json:"is_not_empty,omitempty"`
}

// MultiSelectCondition filters multi_select properties.
type MultiSelectCondition struct {
	Contains       *string `json:"contains,omitempty"`
	DoesNotContain *string `json:"does_not_contain,omitempty"`
	IsEmpty        bool    `json:"is_empty,omitempty"`
	IsNotEmpty     bool    `json:"is_not_empty,omitempty"`
}

// DateCondition filters date and timestamp properties.
type DateCondition struct {
	Equals     *DateTime `json:"equals,omitempty"`
	Before     *DateTime `json:"before,omitempty"`
	After      *DateTime `json:"after,omitempty"`
	OnOrBefore *DateTime `json:"on_or_before,omitempty"`
	OnOrAfter  *DateTime `json:"on_or_after,omitempty"`

	PastWeek  *struct{} `json:"past_week,omitempty"`
	PastMonth *struct{} `json:"past_month,omitempty"`
	PastYear  *struct{} `json:"past_year,omitempty"`
	NextWeek  *struct{} `json:"next_week,omitempty"`
	NextMonth *struct{} `json:"next_month,omitempty"`
	NextYear  *struct{} `json:"next_year,omitempty"`

	IsEmpty    bool `json:"is_empty,omitempty"`
	IsNotEmpty bool `json:"is_not_empty,omitempty"`
}

// PeopleCondition filters people, created_by, and last_edited_by
// properties.
type PeopleCondition struct {
	Contains       *ObjectID `json:"contains,omitempty"`
	DoesNotContain *ObjectID `json:"does_not_contain,omitempty"`
	IsEmpty        bool      `json:"is_empty,omitempty"`
	IsNotEmpty     bool      `json:"is_not_empty,omitempty"`
}

// RelationCondition filters relation properties.
type RelationCondition struct {
	Contains       *ObjectID `json:"contains,omitempty"`
	DoesNotContain *ObjectID `json:"does_not_contain,omitempty"`
	IsEmpty        bool      `json:"is_empty,omitempty"`
	IsNotEmpty     bool      `json:"is_not_empty,omitempty"`
}

// ExistenceCondition filters properties that only support emptiness
// checks (files).
type ExistenceCondition struct {
	IsEmpty    bool `json:"is_empty,omitempty"`
	IsNotEmpty bool `json:"is_not_empty,omitempty"`
}

// FormulaCondition filters formula properties by their result type.
type FormulaCondition struct {
	String   *TextCondition     `json:"string,omitempty"`
	Checkbox *CheckboxCondition `json:"checkbox,omitempty"`
	Number   *NumberCondition   `json:"number,omitempty"`
	Date     *DateCondition     `json:"date,omitempty"`
}

// RollupCondition filters rollup properties. Any/Every/None apply a
// nested condition across array rollups; the scalar conditions apply
// to number and date rollups.
type RollupCondition struct {
	Any    *Filter          `json:"any,omitempty"`
	Every  *Filter          `json:"every,omitempty"`
	None   *Filter          `json:"none,omitempty"`
	Number *NumberCondition `json:"number,omitempty"`
	Date   *DateCondition   `json:"date,omitempty"`
}

// conditionsSet counts the populated condition payloads.
func (f *Filter) conditionsSet() int {
	n := 0
	for _, ok := range []bool{
		f.Checkbox != nil, f.CreatedTime != nil, f.Date != nil,
		f.Email != nil, f.Files != nil, f.Formula != nil,
		f.LastEditedTime != nil, f.MultiSelect != nil, f.Number != nil,
		f.People != nil, f.PhoneNumber != nil, f.Relation != nil,
		f.RichText != nil, f.Rollup != nil, f.Select != nil,
		f.Status != nil, f.Title != nil, f.UniqueID != nil, f.URL != nil,
	} {
		if ok {
			n++
		}
	}
	return n
}

// Validate checks the filter node shape: a compound carries no
// condition of its own, a condition node names its property (or
// timestamp) and exactly one condition payload.
func (f *Filter) Validate() error {
	compound := len(f.And) > 0 || len(f.Or) > 0
	conds := f.conditionsSet()

	if compound {
		if len(f.And) > 0 && len(f.Or) > 0 {
			return InvalidField("and", "a compound filter cannot carry both and/or")
		}
		if f.Property != "" || f.Timestamp != "" || conds > 0 {
			return InvalidField("property", "a compound filter cannot carry a condition")
		}
		for i := range f.And {
			if err := f.And[i].Validate(); err != nil {
				return prefixField("and", err)
			}
		}
		for i := range f.Or {
			if err := f.Or[i].Validate(); err != nil {
				return prefixField("or", err)
			}
		}
		return nil
	}

	if conds == 0 {
		return MissingField("property")
	}
	if conds > 1 {
		return InvalidField("property", "a filter must carry exactly one condition")
	}
	timestampCond := f.CreatedTime != nil || f.LastEditedTime != nil
	if timestampCond {
		switch f.Timestamp {
		case "created_time":
			if f.CreatedTime == nil {
				return MissingField("created_time")
			}
		case "last_edited_time":
			if f.LastEditedTime == nil {
				return MissingField("last_edited_time")
			}
		case "":
			return MissingField("timestamp")
		default:
			return InvalidField("timestamp", `must be "created_time" or "last_edited_time"`)
		}
		return nil
	}
	if f.Property == "" {
		return MissingField("property")
	}
	if f.Rollup != nil {
		for _, nested := range []*Filter{f.Rollup.Any, f.Rollup.Every, f.Rollup.None} {
			if nested != nil {
				if err := nested.Validate(); err != nil {
					return prefixField("rollup", err)
				}
			}
		}
	}
	return nil
}

// Compound filter constructors.

// And combines filters so every one must match.
func And(filters ...Filter) Filter {
	return Filter{And: filters}
}

// Or combines filters so at least one must match.
func Or(filters ...Filter) Filter {
	return Filter{Or: filters}
}

// PropertyFilter starts a condition on the named property. The caller
// sets the matching condition payload.
func PropertyFilter(property string) Filter {
	return Filter{Property: property}
}
