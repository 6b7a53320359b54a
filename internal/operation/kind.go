package operation

// Kind identifies one operation. The set is closed: every catalogue tool maps
// to exactly one Kind, and anything that does not resolve maps to
// KindUnimplemented.
type Kind int

const (
	KindUnimplemented Kind = iota

	// Text
	KindCaseConvert
	KindWordCount
	KindLoremIpsum
	KindWhitespaceRemove
	KindBase64
	KindURLEncode

	// Color
	KindColorConvert
	KindPalette
	KindShades

	// CSS
	KindGradient
	KindBoxShadow
	KindBorderRadius
	KindGlassmorphism

	// Code
	KindJSONFormat

	// Converters
	KindLengthConvert
	KindWeightConvert
	KindTemperatureConvert
	KindDataConvert

	// Generators
	KindUsername
	KindEmail
	KindBarcode

	// Math
	KindCalculate
	KindPercentage
	KindAge

	// SEO
	KindMetaTags
	KindOpenGraph

	// Developer
	KindRegexTest
	KindDiff
	KindHash
	KindTimestamp

	// AI
	KindAIText
	KindAIImage

	// Misc
	KindQRCode
	KindPassword
	KindShuffle
	KindUUID

	kindCount
)

var kindNames = map[Kind]string{
	KindUnimplemented:      "unimplemented",
	KindCaseConvert:        "case-convert",
	KindWordCount:          "word-count",
	KindLoremIpsum:         "lorem-ipsum",
	KindWhitespaceRemove:   "whitespace-remove",
	KindBase64:             "base64",
	KindURLEncode:          "url-encode",
	KindColorConvert:       "color-convert",
	KindPalette:            "palette",
	KindShades:             "shades",
	KindGradient:           "gradient",
	KindBoxShadow:          "box-shadow",
	KindBorderRadius:       "border-radius",
	KindGlassmorphism:      "glassmorphism",
	KindJSONFormat:         "json-format",
	KindLengthConvert:      "length-convert",
	KindWeightConvert:      "weight-convert",
	KindTemperatureConvert: "temperature-convert",
	KindDataConvert:        "data-convert",
	KindUsername:           "username",
	KindEmail:              "email",
	KindBarcode:            "barcode",
	KindCalculate:          "calculate",
	KindPercentage:         "percentage",
	KindAge:                "age",
	KindMetaTags:           "meta-tags",
	KindOpenGraph:          "open-graph",
	KindRegexTest:          "regex-test",
	KindDiff:               "diff",
	KindHash:               "hash",
	KindTimestamp:          "timestamp",
	KindAIText:             "ai-text",
	KindAIImage:            "ai-image",
	KindQRCode:             "qr-code",
	KindPassword:           "password",
	KindShuffle:            "shuffle",
	KindUUID:               "uuid",
}

// String makes Kind satisfy the fmt.Stringer interface.
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// Kinds returns every operation kind, KindUnimplemented included.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := KindUnimplemented; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}
