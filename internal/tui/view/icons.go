package view

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"toolbox/internal/catalog"
)

// Icon constants
const (
	IconCheck     = "✔" // U+2714
	IconCross     = "✘" // U+2718
	IconWarning   = "⚠" // U+26A0 without VS16
	IconHourglass = "⏳" // U+23F3
	IconClipboard = "📋" // U+1F4CB
	IconPicture   = "🖼" // U+1F5BC without VS16
	IconSearch    = "🔍" // U+1F50D
	IconScroll    = "📜" // U+1F4DC
	IconTools     = "🧰" // U+1F9F0
	IconQuestion  = "❓" // U+2753
	IconFallback  = "•"
)

// toolGlyphs maps the catalogue's symbolic icons to terminal glyphs.
var toolGlyphs = map[catalog.IconName]string{
	catalog.IconType:        "Aa",
	catalog.IconAlignLeft:   "≡",
	catalog.IconFileText:    "📄",
	catalog.IconEraser:      "⌫",
	catalog.IconBinary:      "01",
	catalog.IconLink:        "🔗",
	catalog.IconPalette:     "🎨",
	catalog.IconGrid:        "▦",
	catalog.IconDroplet:     "💧",
	catalog.IconLayout:      "▤",
	catalog.IconBox:         "▣",
	catalog.IconCircle:      "◯",
	catalog.IconWand:        "✨",
	catalog.IconBraces:      "{}",
	catalog.IconRuler:       "📏",
	catalog.IconWeight:      "⚖",
	catalog.IconThermometer: "🌡",
	catalog.IconHardDrive:   "💾",
	catalog.IconUser:        "👤",
	catalog.IconMail:        "✉",
	catalog.IconBarcode:     "▥",
	catalog.IconCalculator:  "🧮",
	catalog.IconPercent:     "%",
	catalog.IconCalendar:    "📅",
	catalog.IconTag:         "🏷",
	catalog.IconShare:       "⇪",
	catalog.IconTestTube:    "🧪",
	catalog.IconDiff:        "±",
	catalog.IconHash:        "#",
	catalog.IconClock:       "🕒",
	catalog.IconBrain:       "🧠",
	catalog.IconSparkles:    "✨",
	catalog.IconQrCode:      "▩",
	catalog.IconKey:         "🔑",
	catalog.IconShuffle:     "🔀",
	catalog.IconFingerprint: "🆔",
}

// ToolGlyph returns the glyph for a catalogue icon.
func ToolGlyph(name catalog.IconName) string {
	if g, ok := toolGlyphs[name]; ok {
		return g
	}
	return IconFallback
}

// SafeIcon wraps an icon with proper spacing to prevent rendering issues
// It ensures that an icon doesn't "swallow" the next character by adding
// spaces depending on the display width of the icon:
//   - If the icon occupies a single cell we append 1 space.
//   - If the icon occupies two cells (common for many emojis / NerdFont glyphs)
//     we append 2 spaces so that at least one space is visible after the icon.
func SafeIcon(icon string) string {
	w := runewidth.StringWidth(icon)
	spaces := 1
	if w >= 2 {
		spaces = 2
	}
	return fmt.Sprintf("%s%s", icon, strings.Repeat(" ", spaces))
}

// IconText formats an icon with text, handling spacing properly
func IconText(icon string, text string) string {
	return fmt.Sprintf("%s%s", SafeIcon(icon), text)
}
