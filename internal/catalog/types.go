package catalog

import "errors"

// AllCategories is the sentinel category id that flattens the whole catalogue.
const AllCategories = "all"

// ErrToolNotFound is returned by Find when no tool carries the requested id.
var ErrToolNotFound = errors.New("tool not found")

// IconName is a symbolic icon reference. The presentation layer maps it to a
// glyph; the catalogue never depends on a rendering library.
type IconName string

const (
	IconType        IconName = "type"
	IconAlignLeft   IconName = "align-left"
	IconFileText    IconName = "file-text"
	IconEraser      IconName = "eraser"
	IconBinary      IconName = "binary"
	IconLink        IconName = "link"
	IconPalette     IconName = "palette"
	IconGrid        IconName = "grid"
	IconDroplet     IconName = "droplet"
	IconLayout      IconName = "layout"
	IconBox         IconName = "box"
	IconCircle      IconName = "circle"
	IconWand        IconName = "wand"
	IconBraces      IconName = "braces"
	IconRuler       IconName = "ruler"
	IconWeight      IconName = "weight"
	IconThermometer IconName = "thermometer"
	IconHardDrive   IconName = "hard-drive"
	IconUser        IconName = "user"
	IconMail        IconName = "mail"
	IconBarcode     IconName = "barcode"
	IconCalculator  IconName = "calculator"
	IconPercent     IconName = "percent"
	IconCalendar    IconName = "calendar"
	IconTag         IconName = "tag"
	IconShare       IconName = "share"
	IconTestTube    IconName = "test-tube"
	IconDiff        IconName = "diff"
	IconHash        IconName = "hash"
	IconClock       IconName = "clock"
	IconBrain       IconName = "brain"
	IconSparkles    IconName = "sparkles"
	IconQrCode      IconName = "qr-code"
	IconKey         IconName = "key"
	IconShuffle     IconName = "shuffle"
	IconFingerprint IconName = "fingerprint"
)

// Category labels as carried by Tool.Category. They key the first level of
// operation dispatch.
const (
	LabelText       = "Text"
	LabelColor      = "Color"
	LabelCSS        = "CSS"
	LabelCode       = "Code"
	LabelConverters = "Converters"
	LabelGenerators = "Generators"
	LabelMath       = "Math"
	LabelSEO        = "SEO"
	LabelDeveloper  = "Developer"
	LabelAI         = "AI"
	LabelMisc       = "Misc"
)

// Tool is a single user-facing utility.
type Tool struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Category    string   `yaml:"category" json:"category"`
	Icon        IconName `yaml:"icon" json:"icon"`
}

// Category groups tools that share a presentational handler.
type Category struct {
	ID    string `yaml:"id" json:"id"`
	Name  string `yaml:"name" json:"name"`
	Tools []Tool `yaml:"tools" json:"tools"`
}
