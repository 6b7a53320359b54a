package catalog

// registered holds the catalogue in registration order. It is never mutated
// after package initialisation.
var registered = []Category{
	{
		ID:   "text",
		Name: "Text Tools",
		Tools: []Tool{
			{ID: "case-converter", Name: "Case Converter", Description: "Convert text between different cases", Category: LabelText, Icon: IconType},
			{ID: "word-counter", Name: "Word Counter", Description: "Count words, characters, and lines", Category: LabelText, Icon: IconAlignLeft},
			{ID: "lorem-ipsum", Name: "Lorem Ipsum Generator", Description: "Generate placeholder text", Category: LabelText, Icon: IconFileText},
			{ID: "whitespace-remover", Name: "Whitespace Remover", Description: "Remove extra whitespaces", Category: LabelText, Icon: IconEraser},
			{ID: "base64-converter", Name: "Base64 Converter", Description: "Encode/decode Base64 strings", Category: LabelText, Icon: IconBinary},
			{ID: "url-encoder", Name: "URL Encoder", Description: "Encode/decode URLs", Category: LabelText, Icon: IconLink},
		},
	},
	{
		ID:   "color",
		Name: "Color Tools",
		Tools: []Tool{
			{ID: "color-converter", Name: "Color Converter", Description: "Convert between HEX, RGB, HSL", Category: LabelColor, Icon: IconPalette},
			{ID: "palette-generator", Name: "Palette Generator", Description: "Generate color palettes", Category: LabelColor, Icon: IconGrid},
			{ID: "shades-generator", Name: "Shades Generator", Description: "Generate color shades", Category: LabelColor, Icon: IconDroplet},
		},
	},
	{
		ID:   "css",
		Name: "CSS Tools",
		Tools: []Tool{
			{ID: "gradient-generator", Name: "Gradient Generator", Description: "Create CSS gradients", Category: LabelCSS, Icon: IconLayout},
			{ID: "box-shadow", Name: "Box Shadow Generator", Description: "Generate box shadow CSS", Category: LabelCSS, Icon: IconBox},
			{ID: "border-radius", Name: "Border Radius", Description: "Create border radius styles", Category: LabelCSS, Icon: IconCircle},
			{ID: "glassmorphism", Name: "Glassmorphism", Description: "Generate glass effect styles", Category: LabelCSS, Icon: IconWand},
		},
	},
	{
		ID:   "code",
		Name: "Coding Tools",
		Tools: []Tool{
			{ID: "json-formatter", Name: "JSON Formatter", Description: "Format and validate JSON", Category: LabelCode, Icon: IconBraces},
		},
	},
	{
		ID:   "converters",
		Name: "Unit Converters",
		Tools: []Tool{
			{ID: "length-converter", Name: "Length Converter", Description: "Convert length units", Category: LabelConverters, Icon: IconRuler},
			{ID: "weight-converter", Name: "Weight Converter", Description: "Convert weight units", Category: LabelConverters, Icon: IconWeight},
			{ID: "temperature-converter", Name: "Temperature Converter", Description: "Convert temperature units", Category: LabelConverters, Icon: IconThermometer},
			{ID: "data-converter", Name: "Data Size Converter", Description: "Convert data storage units", Category: LabelConverters, Icon: IconHardDrive},
		},
	},
	{
		ID:   "generators",
		Name: "Generators",
		Tools: []Tool{
			{ID: "username-generator", Name: "Username Generator", Description: "Generate random usernames", Category: LabelGenerators, Icon: IconUser},
			{ID: "email-generator", Name: "Email Generator", Description: "Generate email addresses", Category: LabelGenerators, Icon: IconMail},
			{ID: "barcode-generator", Name: "Barcode Generator", Description: "Generate barcodes", Category: LabelGenerators, Icon: IconBarcode},
		},
	},
	{
		ID:   "math",
		Name: "Math Tools",
		Tools: []Tool{
			{ID: "calculator", Name: "Calculator", Description: "Perform calculations", Category: LabelMath, Icon: IconCalculator},
			{ID: "percentage", Name: "Percentage Calculator", Description: "Calculate percentages", Category: LabelMath, Icon: IconPercent},
			{ID: "age-calculator", Name: "Age Calculator", Description: "Calculate age from birth date", Category: LabelMath, Icon: IconCalendar},
		},
	},
	{
		ID:   "seo",
		Name: "SEO & Marketing",
		Tools: []Tool{
			{ID: "meta-tags", Name: "Meta Tags Generator", Description: "Generate HTML meta tags", Category: LabelSEO, Icon: IconTag},
			{ID: "open-graph", Name: "Open Graph Generator", Description: "Generate Open Graph tags", Category: LabelSEO, Icon: IconShare},
		},
	},
	{
		ID:   "developer",
		Name: "Developer Tools",
		Tools: []Tool{
			{ID: "regex-tester", Name: "Regex Tester", Description: "Test regular expressions", Category: LabelDeveloper, Icon: IconTestTube},
			{ID: "diff-checker", Name: "Diff Checker", Description: "Compare text differences", Category: LabelDeveloper, Icon: IconDiff},
			{ID: "hash-generator", Name: "Hash Generator", Description: "Generate hashes (MD5, SHA)", Category: LabelDeveloper, Icon: IconHash},
			{ID: "timestamp-converter", Name: "Timestamp Converter", Description: "Convert Unix timestamps", Category: LabelDeveloper, Icon: IconClock},
		},
	},
	{
		ID:   "ai",
		Name: "AI Tools",
		Tools: []Tool{
			{ID: "ai-text", Name: "AI Text Tool", Description: "Paraphrase, enhance, summarize", Category: LabelAI, Icon: IconBrain},
			{ID: "ai-image", Name: "AI Image Generator", Description: "Generate images from text", Category: LabelAI, Icon: IconSparkles},
		},
	},
	{
		ID:   "misc",
		Name: "Miscellaneous",
		Tools: []Tool{
			{ID: "qr-generator", Name: "QR Code Generator", Description: "Generate QR codes", Category: LabelMisc, Icon: IconQrCode},
			{ID: "password-generator", Name: "Password Generator", Description: "Generate secure passwords", Category: LabelMisc, Icon: IconKey},
			{ID: "list-shuffler", Name: "List Shuffler", Description: "Randomly shuffle lists", Category: LabelMisc, Icon: IconShuffle},
			{ID: "uuid-generator", Name: "UUID Generator", Description: "Generate unique identifiers", Category: LabelMisc, Icon: IconFingerprint},
		},
	},
}
