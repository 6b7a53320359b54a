package operation

import "toolbox/internal/schema"

const defaultColor = "#3b82f6"

func colorConvert() Descriptor {
	return Descriptor{
		Fields: []schema.Field{
			colorField("color", "Color", defaultColor),
			selectField("from_format", "From", "hex", opt("hex", "HEX"), opt("rgb", "RGB"), opt("rgba", "RGBA")),
			selectField("to_format", "To", "rgb", opt("hex", "HEX"), opt("rgb", "RGB"), opt("rgba", "RGBA"), opt("hsl", "HSL")),
		},
		Call:  post("/tools/color/convert"),
		Shape: ShapePlainText,
		build: func(v schema.Values) (map[string]any, error) {
			return newPayload(v).text("color").text("from_format").text("to_format").done()
		},
		interpret: member("result"),
	}
}

func palette() Descriptor {
	return Descriptor{
		Fields: []schema.Field{
			colorField("base_color", "Base color", defaultColor),
			numberField("count", "Colors", "5", 2, 10),
		},
		Call:  post("/tools/color/palette"),
		Shape: ShapeStructuredText,
		build: func(v schema.Values) (map[string]any, error) {
			return newPayload(v).text("base_color").integerOr("count", 5).done()
		},
		interpret: listMember("palette", ShapeStructuredText),
	}
}

func shades() Descriptor {
	return Descriptor{
		Fields: []schema.Field{
			colorField("color", "Color", defaultColor),
			numberField("count", "Shades", "10", 3, 20),
		},
		Call:  post("/tools/color/shades"),
		Shape: ShapeStructuredText,
		build: func(v schema.Values) (map[string]any, error) {
			return newPayload(v).text("color").integerOr("count", 10).done()
		},
		interpret: listMember("shades", ShapeStructuredText),
	}
}
