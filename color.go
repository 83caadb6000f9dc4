// Defines the color enumeration shared by annotations, blocks, and options.

package notion

// Color is a Notion color name. Annotations and blocks accept both
// foreground and background colors; select and status options accept
// foreground colors only.
type Color string

const (
	ColorDefault Color = "default"
	ColorBlue    Color = "blue"
	ColorBrown   Color = "brown"
	ColorGray    Color = "gray"
	ColorGreen   Color = "green"
	ColorOrange  Color = "orange"
	ColorPink    Color = "pink"
	ColorPurple  Color = "purple"
	ColorRed     Color = "red"
	ColorYellow  Color = "yellow"

	ColorBlueBackground   Color = "blue_background"
	ColorBrownBackground  Color = "brown_background"
	ColorGrayBackground   Color = "gray_background"
	ColorGreenBackground  Color = "green_background"
	ColorOrangeBackground Color = "orange_background"
	ColorPinkBackground   Color = "pink_background"
	ColorPurpleBackground Color = "purple_background"
	ColorRedBackground    Color = "red_background"
	ColorYellowBackground Color = "yellow_background"
)

var colors = map[Color]bool{
	ColorDefault: true,
	ColorBlue:    true, ColorBrown: true, ColorGray: true, ColorGreen: true,
	ColorOrange: true, ColorPink: true, ColorPurple: true, ColorRed: true,
	ColorYellow:         true,
	ColorBlueBackground: true, ColorBrownBackground: true, ColorGrayBackground: true,
	ColorGreenBackground: true, ColorOrangeBackground: true, ColorPinkBackground: true,
	ColorPurpleBackground: true, ColorRedBackground: true, ColorYellowBackground: true,
}

// Valid reports whether c is a recognized color. The empty string is
// valid and means "unset" (the API defaults it to "default").
func (c Color) Valid() bool {
	return c == "" || colors[c]
}

// Background reports whether c is a background color.
func (c Color) Background() bool {
	return len(c) > len("_background") && c[len(c)-len("_background"):] == "_background"
}

// OptionColor reports whether c may be used on a select or status
// option. Background colors are not allowed there.
func (c Color) OptionColor() bool {
	return c.Valid() && !c.Background()
}
