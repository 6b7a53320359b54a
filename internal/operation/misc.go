package operation

import (
	"net/http"

	"toolbox/internal/schema"
	"toolbox/internal/toolsvc"
)

func qrCode() Descriptor {
	return Descriptor{
		Fields: []schema.Field{
			required(textField("text", "Text or URL", "https://example.com", "https://example.com")),
			numberField("size", "Size", "300", 100, 1000),
		},
		Call:  post("/tools/misc/qrcode"),
		Shape: ShapeImage,
		build: func(v schema.Values) (map[string]any, error) {
			return newPayload(v).text("text").integerOr("size", 300).done()
		},
		interpret: imageMember("image", func(v schema.Values) string { return v.String("text") }),
	}
}

func password() Descriptor {
	return Descriptor{
		Fields: []schema.Field{
			numberField("length", "Length", "16", 4, 128),
			checkboxField("include_uppercase", "Uppercase (A-Z)", true),
			checkboxField("include_lowercase", "Lowercase (a-z)", true),
			checkboxField("include_numbers", "Numbers (0-9)", true),
			checkboxField("include_symbols", "Symbols (!@#$)", true),
		},
		Call:  post("/tools/misc/password"),
		Shape: ShapePlainText,
		build: func(v schema.Values) (map[string]any, error) {
			return newPayload(v).
				integerOr("length", 16).
				boolean("include_uppercase").
				boolean("include_lowercase").
				boolean("include_numbers").
				boolean("include_symbols").
				done()
		},
		interpret: member("password"),
	}
}

func shuffle() Descriptor {
	return Descriptor{
		Fields: []schema.Field{
			multilineField("items", "Items (one per line)", "Apple\nBanana\nCherry\nDate\nElderberry", ""),
		},
		Call:  post("/tools/misc/shuffle"),
		Shape: ShapePlainText,
		build: func(v schema.Values) (map[string]any, error) {
			items := v.Lines("items")
			if items == nil {
				items = []string{}
			}
			return newPayload(v).set("items", items).done()
		},
		interpret: listMember("shuffled", ShapePlainText),
	}
}

func uuidGenerate() Descriptor {
	return Descriptor{
		Call:      Call{Method: http.MethodGet, Path: "/tools/misc/uuid", Encoding: toolsvc.EncodingQuery},
		Shape:     ShapePlainText,
		interpret: member("uuid"),
	}
}
