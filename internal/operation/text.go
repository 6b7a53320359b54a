package operation

import (
	"fmt"

	"toolbox/internal/schema"
)

var caseTypes = []schema.Option{
	opt("upper", "UPPERCASE"),
	opt("lower", "lowercase"),
	opt("title", "Title Case"),
	opt("sentence", "Sentence case"),
	opt("camel", "camelCase"),
	opt("snake", "snake_case"),
	opt("kebab", "kebab-case"),
}

func inputText() schema.Field {
	return multilineField("text", "Input", "", "Enter your text here...")
}

func caseConvert() Descriptor {
	return Descriptor{
		Fields: []schema.Field{
			inputText(),
			selectField("case_type", "Case", "upper", caseTypes...),
		},
		Call:  post("/tools/text/convert"),
		Shape: ShapePlainText,
		build: func(v schema.Values) (map[string]any, error) {
			return newPayload(v).text("text").text("case_type").done()
		},
		interpret: member("result"),
	}
}

func wordCount() Descriptor {
	return Descriptor{
		Fields: []schema.Field{inputText()},
		Call:   post("/tools/text/wordcount"),
		Shape:  ShapePlainText,
		build: func(v schema.Values) (map[string]any, error) {
			return newPayload(v).text("text").done()
		},
		interpret: func(_ schema.Values, body []byte) (Result, error) {
			obj, err := object(body)
			if err != nil {
				return Result{}, err
			}
			text := fmt.Sprintf("Words: %s\nCharacters: %s\nCharacters (no spaces): %s\nLines: %s",
				scalar(obj["words"]),
				scalar(obj["characters"]),
				scalar(obj["characters_no_spaces"]),
				scalar(obj["lines"]),
			)
			return Result{Shape: ShapePlainText, Text: text}, nil
		},
	}
}

func loremIpsum() Descriptor {
	return Descriptor{
		Fields: []schema.Field{
			numberField("paragraphs", "Paragraphs", "3", 1, 10),
		},
		Call:  post("/tools/text/lorem"),
		Shape: ShapePlainText,
		build: func(v schema.Values) (map[string]any, error) {
			return newPayload(v).integerOr("paragraphs", 3).done()
		},
		interpret: member("result"),
	}
}

func whitespaceRemove() Descriptor {
	return Descriptor{
		Fields: []schema.Field{inputText()},
		Call:   post("/tools/text/whitespace"),
		Shape:  ShapePlainText,
		build: func(v schema.Values) (map[string]any, error) {
			return newPayload(v).text("text").done()
		},
		interpret: member("result"),
	}
}

// encoder builds the shared shape of the encode/decode text tools.
func encoder(path string) Descriptor {
	return Descriptor{
		Fields: []schema.Field{
			inputText(),
			selectField("mode", "Mode", "encode", encodeDecode...),
		},
		Call:  post(path),
		Shape: ShapePlainText,
		build: func(v schema.Values) (map[string]any, error) {
			return newPayload(v).text("text").set("encode", v.String("mode") == "encode").done()
		},
		interpret: member("result"),
	}
}

func base64Convert() Descriptor {
	return encoder("/tools/text/base64")
}

func urlEncode() Descriptor {
	return encoder("/tools/text/url-encode")
}
