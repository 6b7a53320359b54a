package operation

import (
	"toolbox/internal/catalog"
	"toolbox/internal/schema"
)

// Family is the first dispatch level: the handler group a category label is
// routed to. The Text, Color, CSS, Code and Misc labels each have a dedicated
// family; the remaining labels share FamilyGeneric.
type Family int

const (
	FamilyNone Family = iota
	FamilyText
	FamilyColor
	FamilyCSS
	FamilyCode
	FamilyMisc
	FamilyGeneric
)

// String makes Family satisfy the fmt.Stringer interface.
func (f Family) String() string {
	switch f {
	case FamilyText:
		return "text"
	case FamilyColor:
		return "color"
	case FamilyCSS:
		return "css"
	case FamilyCode:
		return "code"
	case FamilyMisc:
		return "misc"
	case FamilyGeneric:
		return "generic"
	default:
		return "none"
	}
}

// FamilyFor routes a category label to its handler family. Unknown labels
// yield FamilyNone.
func FamilyFor(label string) Family {
	switch label {
	case catalog.LabelText:
		return FamilyText
	case catalog.LabelColor:
		return FamilyColor
	case catalog.LabelCSS:
		return FamilyCSS
	case catalog.LabelCode:
		return FamilyCode
	case catalog.LabelMisc:
		return FamilyMisc
	case catalog.LabelConverters, catalog.LabelGenerators, catalog.LabelMath,
		catalog.LabelSEO, catalog.LabelDeveloper, catalog.LabelAI:
		return FamilyGeneric
	default:
		return FamilyNone
	}
}

// members is the second dispatch level: tool id to kind, per family.
var members = map[Family]map[string]Kind{
	FamilyText: {
		"case-converter":     KindCaseConvert,
		"word-counter":       KindWordCount,
		"lorem-ipsum":        KindLoremIpsum,
		"whitespace-remover": KindWhitespaceRemove,
		"base64-converter":   KindBase64,
		"url-encoder":        KindURLEncode,
	},
	FamilyColor: {
		"color-converter":   KindColorConvert,
		"palette-generator": KindPalette,
		"shades-generator":  KindShades,
	},
	FamilyCSS: {
		"gradient-generator": KindGradient,
		"box-shadow":         KindBoxShadow,
		"border-radius":      KindBorderRadius,
		"glassmorphism":      KindGlassmorphism,
	},
	FamilyCode: {
		"json-formatter": KindJSONFormat,
	},
	FamilyMisc: {
		"qr-generator":       KindQRCode,
		"password-generator": KindPassword,
		"list-shuffler":      KindShuffle,
		"uuid-generator":     KindUUID,
	},
	FamilyGeneric: {
		"length-converter":      KindLengthConvert,
		"weight-converter":      KindWeightConvert,
		"temperature-converter": KindTemperatureConvert,
		"data-converter":        KindDataConvert,
		"username-generator":    KindUsername,
		"email-generator":       KindEmail,
		"barcode-generator":     KindBarcode,
		"calculator":            KindCalculate,
		"percentage":            KindPercentage,
		"age-calculator":        KindAge,
		"meta-tags":             KindMetaTags,
		"open-graph":            KindOpenGraph,
		"regex-tester":          KindRegexTest,
		"diff-checker":          KindDiff,
		"hash-generator":        KindHash,
		"timestamp-converter":   KindTimestamp,
		"ai-text":               KindAIText,
		"ai-image":              KindAIImage,
	},
}

// Resolve maps a (category label, tool id) pair to its descriptor. Pairs that
// do not match any family member resolve to the Unimplemented descriptor.
func Resolve(categoryLabel, toolID string) Descriptor {
	fam := FamilyFor(categoryLabel)
	k, ok := members[fam][toolID]
	if !ok {
		return table[KindUnimplemented]
	}
	return table[k]
}

// ResolveTool resolves a catalogue tool.
func ResolveTool(t catalog.Tool) Descriptor {
	return Resolve(t.Category, t.ID)
}

// InputSchemaFor returns the ordered input fields of a tool. The slice is a
// copy owned by the caller.
func InputSchemaFor(t catalog.Tool) []schema.Field {
	return append([]schema.Field(nil), ResolveTool(t).Fields...)
}
