package operation

import (
	"fmt"
	"strings"

	"toolbox/internal/schema"
)

// maxGradientColors is the number of color stops a gradient accepts.
const maxGradientColors = 5

var gradientDirections = opts("to right", "to left", "to bottom", "to top", "to bottom right", "to bottom left")

func gradient() Descriptor {
	fields := []schema.Field{
		colorField("color1", "Color 1", defaultColor),
		colorField("color2", "Color 2", "#10b981"),
	}
	for i := 3; i <= maxGradientColors; i++ {
		fields = append(fields, colorField(fmt.Sprintf("color%d", i), fmt.Sprintf("Color %d", i), ""))
	}
	fields = append(fields, selectField("direction", "Direction", "to right", gradientDirections...))

	return Descriptor{
		Fields: fields,
		Call:   post("/tools/css/gradient"),
		Shape:  ShapePlainText,
		build: func(v schema.Values) (map[string]any, error) {
			colors := make([]string, 0, maxGradientColors)
			for i := 1; i <= maxGradientColors; i++ {
				if c := strings.TrimSpace(v.String(fmt.Sprintf("color%d", i))); c != "" {
					colors = append(colors, c)
				}
			}
			return newPayload(v).set("colors", colors).text("direction").done()
		},
		interpret: member("css"),
	}
}

func boxShadow() Descriptor {
	return Descriptor{
		Fields: []schema.Field{
			rangeField("h_offset", "Horizontal offset", "0", -50, 50, 1),
			rangeField("v_offset", "Vertical offset", "5", -50, 50, 1),
			rangeField("blur", "Blur", "10", 0, 100, 1),
			rangeField("spread", "Spread", "0", -50, 50, 1),
			textField("color", "Color", "rgba(0,0,0,0.3)", "rgba(0,0,0,0.3)"),
		},
		Call:  post("/tools/css/box-shadow"),
		Shape: ShapePlainText,
		build: func(v schema.Values) (map[string]any, error) {
			return newPayload(v).
				integer("h_offset").
				integer("v_offset").
				integer("blur").
				integer("spread").
				text("color").
				done()
		},
		interpret: member("css"),
	}
}

func borderRadius() Descriptor {
	return Descriptor{
		Fields: []schema.Field{
			rangeField("tl", "Top left", "0", 0, 100, 1),
			rangeField("tr", "Top right", "0", 0, 100, 1),
			rangeField("br", "Bottom right", "0", 0, 100, 1),
			rangeField("bl", "Bottom left", "0", 0, 100, 1),
		},
		Call:  postQuery("/tools/css/border-radius"),
		Shape: ShapePlainText,
		build: func(v schema.Values) (map[string]any, error) {
			return newPayload(v).integer("tl").integer("tr").integer("br").integer("bl").done()
		},
		interpret: member("css"),
	}
}

func glassmorphism() Descriptor {
	return Descriptor{
		Fields: []schema.Field{
			rangeField("blur", "Blur", "10", 0, 30, 1),
			rangeField("opacity", "Opacity", "0.3", 0, 1, 0.1),
		},
		Call:  postQuery("/tools/css/glassmorphism"),
		Shape: ShapePlainText,
		build: func(v schema.Values) (map[string]any, error) {
			return newPayload(v).integer("blur").number("opacity").done()
		},
		interpret: member("css"),
	}
}
