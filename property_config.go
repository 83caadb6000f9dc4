// Defines database schema property configurations.

package notion

// NumberFormat is how a number property renders.
type NumberFormat string

const (
	NumberFormatNumber           NumberFormat = "number"
	NumberFormatNumberWithCommas NumberFormat = "number_with_commas"
	NumberFormatPercent          NumberFormat = "percent"
	NumberFormatDollar           NumberFormat = "dollar"
	NumberFormatEuro             NumberFormat = "euro"
	NumberFormatPound            NumberFormat = "pound"
	NumberFormatYen              NumberFormat = "yen"
	NumberFormatRuble            NumberFormat = "ruble"
	NumberFormatRupee            NumberFormat = "rupee"
	NumberFormatWon              NumberFormat = "won"
	NumberFormatYuan             NumberFormat = "yuan"
	NumberFormatReal             NumberFormat = "real"
	NumberFormatLira             NumberFormat = "lira"
	NumberFormatRupiah           NumberFormat = "rupiah"
	NumberFormatFranc            NumberFormat = "franc"
	NumberFormatHongKongDollar   NumberFormat = "hong_kong_dollar"
	NumberFormatNewZealandDollar NumberFormat = "new_zealand_dollar"
	NumberFormatKrona            NumberFormat = "krona"
	NumberFormatNorwegianKrone   NumberFormat = "norwegian_krone"
	NumberFormatMexicanPeso      NumberFormat = "mexican_peso"
	NumberFormatRand             NumberFormat = "rand"
	NumberFormatNewTaiwanDollar  NumberFormat = "new_taiwan_dollar"
	NumberFormatDanishKrone      NumberFormat = "danish_krone"
	NumberFormatZloty            NumberFormat = "zloty"
	NumberFormatBaht             NumberFormat = "baht"
	NumberFormatForint           NumberFormat = "forint"
	NumberFormatKoruna           NumberFormat = "koruna"
	NumberFormatShekel           NumberFormat = "shekel"
	NumberFormatChileanPeso      NumberFormat = "chilean_peso"
	NumberFormatPhilippinePeso   NumberFormat = "philippine_peso"
	NumberFormatDirham           NumberFormat = "dirham"
	NumberFormatColombianPeso    NumberFormat = "colombian_peso"
	NumberFormatRiyal            NumberFormat = "riyal"
	NumberFormatRinggit          NumberFormat = "ringgit"
	NumberFormatLeu              NumberFormat = "leu"
	NumberFormatArgentinePeso    NumberFormat = "argentine_peso"
	NumberFormatUruguayanPeso    NumberFormat = "uruguayan_peso"
	NumberFormatSingaporeDollar  NumberFormat = "singapore_dollar"
)

// NumberConfig configures a number property.
type NumberConfig struct {
	Format NumberFormat `json:"format,omitempty"`
}

// SelectConfig configures a select or multi_select property.
type SelectConfig struct {
	Options []SelectOption `json:"options,omitempty"`
}

// StatusConfig configures a status property. The API does not accept
// status option or group updates; both are read-only.
type StatusConfig struct {
	Options []SelectOption `json:"options,omitempty"`
	Groups  []StatusGroup  `json:"groups,omitempty"`
}

// StatusGroup groups status options ("To-do", "In progress", "Complete").
type StatusGroup struct {
	ID        string   `json:"id,omitempty"`
	Name      string   `json:"name,omitempty"`
	Color     Color    `json:"color,omitempty"`
	OptionIDs []string `json:"option_ids,omitempty"`
}

// FormulaConfig configures a formula property.
type FormulaConfig struct {
	Expression string `json:"expression"`
}

// RelationConfig configures a relation property.
type RelationConfig struct {
	DatabaseID ObjectID `json:"database_id"`
	Type       string   `json:"type,omitempty"` // "single_property" or "dual_property"

	SingleProperty *struct{}           `json:"single_property,omitempty"`
	DualProperty   *DualPropertyConfig `json:"dual_property,omitempty"`
}

// DualPropertyConfig names the synced property on the related database.
type DualPropertyConfig struct {
	SyncedPropertyName string `json:"synced_property_name,omitempty"`
	SyncedPropertyID   string `json:"synced_property_id,omitempty"`
}

// RollupConfig configures a rollup property.
type RollupConfig struct {
	RelationPropertyName string         `json:"relation_property_name,omitempty"`
	RelationPropertyID   string         `json:"relation_property_id,omitempty"`
	RollupPropertyName   string         `json:"rollup_property_name,omitempty"`
	RollupPropertyID     string         `json:"rollup_property_id,omitempty"`
	Function             RollupFunction `json:"function"`
}

// UniqueIDConfig configures a unique_id property.
type UniqueIDConfig struct {
	Prefix *string `json:"prefix,omitempty"`
}

// PropertyConfig is a property definition in a database schema. Like
// PropertyValue, it is a union on Type; empty-object payloads
// (title, checkbox, ...) use *struct{} so presence round-trips.
// Reference: https://developers.notion.com/reference/property-object
type PropertyConfig struct {
	ID          string       `json:"id,omitempty"`
	Name        string       `json:"name,omitempty"`
	Type        PropertyType `json:"type,omitempty"`
	Description string       `json:"description,omitempty"`

	Checkbox       *struct{}       `json:"checkbox,omitempty"`
	CreatedBy      *struct{}       `json:"created_by,omitempty"`
	CreatedTime    *struct{}       `json:"created_time,omitempty"`
	Date           *struct{}       `json:"date,omitempty"`
	Email          *struct{}       `json:"email,omitempty"`
	Files          *struct{}       `json:"files,omitempty"`
	Formula        *FormulaConfig  `json:"formula,omitempty"`
	LastEditedBy   *struct{}       `json:"last_edited_by,omitempty"`
	LastEditedTime *struct{}       `json:"last_edited_time,omitempty"`
	MultiSelect    *SelectConfig   `json:"multi_select,omitempty"`
	Number         *NumberConfig   `json:"number,omitempty"`
	People         *struct{}       `json:"people,omitempty"`
	PhoneNumber    *struct{}       `json:"phone_number,omitempty"`
	Relation       *RelationConfig `json:"relation,omitempty"`
	RichText       *struct{}       `json:"rich_text,omitempty"`
	Rollup         *RollupConfig   `json:"rollup,omitempty"`
	Select         *SelectConfig   `json:"select,omitempty"`
	Status         *StatusConfig   `json:"status,omitempty"`
	Title          *struct{}       `json:"title,omitempty"`
	UniqueID       *UniqueIDConfig `json:"unique_id,omitempty"`
	URL            *struct{}       `json:"url,omitempty"`
}

// Config constructors for building database schemas.

// NewTitleConfig returns the mandatory title column definition.
func NewTitleConfig() PropertyConfig {
	return PropertyConfig{Type: PropertyTypeTitle, Title: &struct{}{}}
}

// NewRichTextConfig returns a rich_text column definition.
func NewRichTextConfig() PropertyConfig {
	return PropertyConfig{Type: PropertyTypeRichText, RichText: &struct{}{}}
}

// NewNumberConfig returns a number column definition.
func NewNumberConfig(format NumberFormat) PropertyConfig {
	return PropertyConfig{Type: PropertyTypeNumber, Number: &NumberConfig{Format: format}}
}

// NewCheckboxConfig returns a checkbox column definition.
func NewCheckboxConfig() PropertyConfig {
	return PropertyConfig{Type: PropertyTypeCheckbox, Checkbox: &struct{}{}}
}

// NewDateConfig returns a date column definition.
func NewDateConfig() PropertyConfig {
	return PropertyConfig{Type: PropertyTypeDate, Date: &struct{}{}}
}

// NewSelectConfig returns a select column definition with options.
func NewSelectConfig(options ...SelectOption) PropertyConfig {
	return PropertyConfig{Type: PropertyTypeSelect, Select: &SelectConfig{Options: options}}
}

// NewMultiSelectConfig returns a multi_select column definition.
func NewMultiSelectConfig(options ...SelectOption) PropertyConfig {
	return PropertyConfig{Type: PropertyTypeMultiSelect, MultiSelect: &SelectConfig{Options: options}}
}

// NewRelationConfig returns a single-property relation to a database.
func NewRelationConfig(databaseID ObjectID) PropertyConfig {
	return PropertyConfig{Type: PropertyTypeRelation, Relation: &RelationConfig{
		DatabaseID:     databaseID,
		Type:           "single_property",
		SingleProperty: &struct{}{},
	}}
}

// numberFormats is the accepted set for NumberConfig.Format.
var numberFormats = func() map[NumberFormat]bool {
	m := map[NumberFormat]bool{}
	for _, f := range []NumberFormat{
		NumberFormatNumber, NumberFormatNumberWithCommas, NumberFormatPercent,
		NumberFormatDollar, NumberFormatEuro, NumberFormatPound, NumberFormatYen,
		NumberFormatRuble, NumberFormatRupee, NumberFormatWon, NumberFormatYuan,
		NumberFormatReal, NumberFormatLira, NumberFormatRupiah, NumberFormatFranc,
		NumberFormatHongKongDollar, NumberFormatNewZealandDollar, NumberFormatKrona,
		NumberFormatNorwegianKrone, NumberFormatMexicanPeso, NumberFormatRand,
		NumberFormatNewTaiwanDollar, NumberFormatDanishKrone, NumberFormatZloty,
		NumberFormatBaht, NumberFormatForint, NumberFormatKoruna, NumberFormatShekel,
		NumberFormatChileanPeso, NumberFormatPhilippinePeso, NumberFormatDirham,
		NumberFormatColombianPeso, NumberFormatRiyal, NumberFormatRinggit,
		NumberFormatLeu, NumberFormatArgentinePeso, NumberFormatUruguayanPeso,
		NumberFormatSingaporeDollar,
	} {
		m[f] = true
	}
	return m
}()

// Validate checks discriminator/payload agreement and enum membership.
func (c *PropertyConfig) Validate() error {
	if c.Type == "" && c.ID == "" {
		return MissingField("type")
	}
	switch c.Type {
	case PropertyTypeNumber:
		if c.Number != nil && c.Number.Format != "" && !numberFormats[c.Number.Format] {
			return InvalidField("number.format", "unknown number format "+string(c.Number.Format))
		}
	case PropertyTypeSelect:
		if c.Select != nil {
			for i := range c.Select.Options {
				if err := c.Select.Options[i].Validate(); err != nil {
					return prefixField("select.options", err)
				}
			}
		}
	case PropertyTypeMultiSelect:
		if c.MultiSelect != nil {
			for i := range c.MultiSelect.Options {
				if err := c.MultiSelect.Options[i].Validate(); err != nil {
					return prefixField("multi_select.options", err)
				}
			}
		}
	case PropertyTypeFormula:
		if c.Formula != nil && c.Formula.Expression == "" {
			return MissingField("formula.expression")
		}
	case PropertyTypeRelation:
		if c.Relation != nil {
			if c.Relation.DatabaseID == "" {
				return MissingField("relation.database_id")
			}
			if err := c.Relation.DatabaseID.Validate(); err != nil {
				return prefixField("relation.database_id", err)
			}
			switch c.Relation.Type {
			case "", "single_property", "dual_property":
			default:
				return InvalidField("relation.type", "unknown relation type "+c.Relation.Type)
			}
		}
	case PropertyTypeRollup:
		if c.Rollup != nil {
			if c.Rollup.Function == "" {
				return MissingField("rollup.function")
			}
			if c.Rollup.RelationPropertyName == "" && c.Rollup.RelationPropertyID == "" {
				return MissingField("rollup.relation_property_name")
			}
			if c.Rollup.RollupPropertyName == "" && c.Rollup.RollupPropertyID == "" {
				return MissingField("rollup.rollup_property_name")
			}
		}
	}
	return nil
}
