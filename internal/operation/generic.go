package operation

import (
	"bytes"
	"fmt"

	"toolbox/internal/schema"
)

// unitConvert serves the four converter tools; only the unit list and the
// family sent to the service differ.
func unitConvert(toolID string) Descriptor {
	units := UnitsFor(toolID)
	family := UnitFamilyFor(toolID)
	return Descriptor{
		Fields: []schema.Field{
			required(freeNumberField("value", "Value", "", "Enter value")),
			selectField("from_unit", "From", units[0], opts(units...)...),
			selectField("to_unit", "To", units[0], opts(units...)...),
		},
		Call:  post("/tools/convert/units"),
		Shape: ShapePlainText,
		build: func(v schema.Values) (map[string]any, error) {
			return newPayload(v).number("value").text("from_unit").text("to_unit").set("category", family).done()
		},
		interpret: func(v schema.Values, body []byte) (Result, error) {
			obj, err := object(body)
			if err != nil {
				return Result{}, err
			}
			value, err := v.Float("value")
			if err != nil {
				return Result{}, invalid(v, err)
			}
			text := fmt.Sprintf("%s %s = %s %s",
				schema.FormatNumber(value), v.String("from_unit"),
				scalar(obj["result"]), v.String("to_unit"))
			return Result{Shape: ShapePlainText, Text: text}, nil
		},
	}
}

func username() Descriptor {
	return Descriptor{
		Fields: []schema.Field{
			selectField("style", "Style", "random", opt("random", "Random"), opt("fantasy", "Fantasy"), opt("business", "Business")),
			numberField("length", "Length", "8", 4, 20),
		},
		Call:  post("/tools/generate/username"),
		Shape: ShapePlainText,
		build: func(v schema.Values) (map[string]any, error) {
			return newPayload(v).text("style").integerOr("length", 8).done()
		},
		interpret: member("username"),
	}
}

func email() Descriptor {
	return Descriptor{
		Fields: []schema.Field{
			textField("name", "Name (optional)", "", "john doe"),
			textField("domain", "Domain", "example.com", "example.com"),
		},
		Call:  post("/tools/generate/email"),
		Shape: ShapePlainText,
		build: func(v schema.Values) (map[string]any, error) {
			return newPayload(v).text("name").textOr("domain", "example.com").done()
		},
		interpret: member("email"),
	}
}

func barcode() Descriptor {
	return Descriptor{
		Fields: []schema.Field{
			required(textField("data", "Data", "123456789", "123456789")),
		},
		Call:  post("/tools/generate/barcode"),
		Shape: ShapeImage,
		build: func(v schema.Values) (map[string]any, error) {
			return newPayload(v).text("data").set("barcode_type", "code128").done()
		},
		interpret: imageMember("image", func(v schema.Values) string { return v.String("data") }),
	}
}

func calculate() Descriptor {
	return Descriptor{
		Fields: []schema.Field{
			required(textField("expression", "Expression", "", "2 + 2 * 3")),
		},
		Call:  post("/tools/math/calculate"),
		Shape: ShapePlainText,
		build: func(v schema.Values) (map[string]any, error) {
			return newPayload(v).text("expression").done()
		},
		interpret: member("result"),
	}
}

func percentage() Descriptor {
	return Descriptor{
		Fields: []schema.Field{
			selectField("operation", "Operation", "what_percent",
				opt("what_percent", "What % of total"),
				opt("percent_of", "Percentage of total")),
			required(freeNumberField("value", "Value", "", "25")),
			required(freeNumberField("total", "Total", "", "100")),
		},
		Call:  post("/tools/math/percentage"),
		Shape: ShapePlainText,
		build: func(v schema.Values) (map[string]any, error) {
			return newPayload(v).number("value").number("total").text("operation").done()
		},
		interpret: func(_ schema.Values, body []byte) (Result, error) {
			obj, err := object(body)
			if err != nil {
				return Result{}, err
			}
			return Result{Shape: ShapePlainText, Text: scalar(obj["result"]) + "%"}, nil
		},
	}
}

func age() Descriptor {
	return Descriptor{
		Fields: []schema.Field{
			required(textField("birth_date", "Birth date", "", "YYYY-MM-DD")),
		},
		Call:  post("/tools/math/age"),
		Shape: ShapePlainText,
		build: func(v schema.Values) (map[string]any, error) {
			return newPayload(v).text("birth_date").done()
		},
		interpret: func(_ schema.Values, body []byte) (Result, error) {
			obj, err := object(body)
			if err != nil {
				return Result{}, err
			}
			text := fmt.Sprintf("%s years, %s months, %s days",
				scalar(obj["years"]), scalar(obj["months"]), scalar(obj["days"]))
			return Result{Shape: ShapePlainText, Text: text}, nil
		},
	}
}

func metaTags() Descriptor {
	return Descriptor{
		Fields: []schema.Field{
			required(textField("title", "Title", "", "Page Title")),
			multilineField("description", "Description", "", "Page description"),
			textField("keywords", "Keywords (comma separated)", "", "web, tools, online"),
			textField("author", "Author", "", ""),
		},
		Call:  post("/tools/seo/meta-tags"),
		Shape: ShapePlainText,
		build: func(v schema.Values) (map[string]any, error) {
			return newPayload(v).
				text("title").
				text("description").
				set("keywords", v.CSV("keywords")).
				text("author").
				done()
		},
		interpret: member("html"),
	}
}

func openGraph() Descriptor {
	return Descriptor{
		Fields: []schema.Field{
			required(textField("title", "Title", "", "Page Title")),
			multilineField("description", "Description", "", "Description"),
			textField("image", "Image URL", "", "https://..."),
			textField("url", "Page URL", "", "https://..."),
		},
		Call:  postQuery("/tools/seo/open-graph"),
		Shape: ShapePlainText,
		build: func(v schema.Values) (map[string]any, error) {
			return newPayload(v).text("title").text("description").text("image").text("url").done()
		},
		interpret: member("html"),
	}
}

func regexTest() Descriptor {
	return Descriptor{
		Fields: []schema.Field{
			required(textField("pattern", "Pattern", "", `\d+`)),
			multilineField("text", "Test text", "", "Text to test against"),
		},
		Call:      post("/tools/dev/regex-test"),
		Shape:     ShapeStructuredText,
		build:     func(v schema.Values) (map[string]any, error) { return newPayload(v).text("pattern").text("text").done() },
		interpret: wholeBody,
	}
}

func diff() Descriptor {
	return Descriptor{
		Fields: []schema.Field{
			multilineField("text1", "Original", "", "Original text"),
			multilineField("text2", "Changed", "", "Changed text"),
		},
		Call:  post("/tools/dev/diff"),
		Shape: ShapeStructuredText,
		build: func(v schema.Values) (map[string]any, error) {
			return newPayload(v).text("text1").text("text2").done()
		},
		interpret: func(_ schema.Values, body []byte) (Result, error) {
			obj, err := object(body)
			if err != nil {
				return Result{}, err
			}
			differences := obj["differences"]
			if len(bytes.TrimSpace(differences)) == 0 {
				differences = []byte("[]")
			}
			pretty, err := indent(differences)
			if err != nil {
				return Result{}, err
			}
			text := fmt.Sprintf("Total differences: %s\n\n%s", scalar(obj["total_differences"]), pretty)
			return Result{Shape: ShapeStructuredText, Text: text}, nil
		},
	}
}

func hash() Descriptor {
	return Descriptor{
		Fields: []schema.Field{
			multilineField("text", "Text", "", "Text to hash"),
			selectField("algorithm", "Algorithm", "md5",
				opt("md5", "MD5"), opt("sha1", "SHA-1"), opt("sha256", "SHA-256"), opt("sha512", "SHA-512")),
		},
		Call:  post("/tools/dev/hash"),
		Shape: ShapePlainText,
		build: func(v schema.Values) (map[string]any, error) {
			return newPayload(v).text("text").text("algorithm").done()
		},
		interpret: member("hash"),
	}
}

func timestamp() Descriptor {
	return Descriptor{
		Fields: []schema.Field{
			freeNumberField("timestamp", "Unix timestamp (blank for now)", "", "1700000000"),
		},
		Call:  post("/tools/dev/timestamp"),
		Shape: ShapeStructuredText,
		build: func(v schema.Values) (map[string]any, error) {
			return newPayload(v).optionalInteger("timestamp").done()
		},
		interpret: wholeBody,
	}
}

func aiText() Descriptor {
	return Descriptor{
		Fields: []schema.Field{
			required(multilineField("text", "Text", "", "Enter text to process")),
			selectField("operation", "Operation", "paraphrase",
				opt("paraphrase", "Paraphrase"), opt("enhance", "Enhance"), opt("summarize", "Summarize")),
		},
		Call:  post("/tools/ai/text"),
		Shape: ShapePlainText,
		build: func(v schema.Values) (map[string]any, error) {
			return newPayload(v).text("text").text("operation").done()
		},
		interpret: member("result"),
	}
}

// aiImageCaption accompanies every generated image.
const aiImageCaption = "Image generated successfully!"

func aiImage() Descriptor {
	return Descriptor{
		Fields: []schema.Field{
			required(multilineField("prompt", "Prompt", "", "Describe the image")),
			selectField("size", "Size", "1024x1024", opts("1024x1024", "1024x1792", "1792x1024")...),
		},
		Call:  post("/tools/ai/image"),
		Shape: ShapeImage,
		build: func(v schema.Values) (map[string]any, error) {
			return newPayload(v).text("prompt").text("size").done()
		},
		interpret: imageMember("image_url", func(schema.Values) string { return aiImageCaption }),
	}
}
