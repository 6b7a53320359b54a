package operation

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolbox/internal/catalog"
	"toolbox/internal/schema"
	"toolbox/internal/toolsvc"
)

func valuesFor(t *testing.T, toolID string, set map[string]string) (Descriptor, schema.Values) {
	t.Helper()
	tool, err := catalog.Find(toolID)
	require.NoError(t, err)
	d := ResolveTool(tool)
	v := schema.NewValues(d.Fields)
	for k, val := range set {
		require.NoError(t, v.Set(k, val))
	}
	return d, v
}

func TestResolve_EveryCatalogueToolIsImplemented(t *testing.T) {
	seen := make(map[Kind]string)
	for _, tool := range catalog.Tools(catalog.AllCategories) {
		d := ResolveTool(tool)
		assert.True(t, d.Implemented(), "tool %s resolved to unimplemented", tool.ID)
		if prev, dup := seen[d.Kind]; dup {
			t.Errorf("tools %s and %s share kind %s", prev, tool.ID, d.Kind)
		}
		seen[d.Kind] = tool.ID
		assert.Equal(t, FamilyFor(tool.Category), d.Family, tool.ID)
	}
	// Every kind except Unimplemented belongs to exactly one tool.
	assert.Len(t, seen, int(kindCount)-1)
}

func TestResolve_UnmatchedPairs(t *testing.T) {
	tests := []struct {
		name, label, id string
	}{
		{"unknown label", "Games", "case-converter"},
		{"unknown id", catalog.LabelText, "spell-checker"},
		{"id from another family", catalog.LabelText, "uuid-generator"},
		{"generic id under a dedicated family", catalog.LabelMisc, "calculator"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Resolve(tt.label, tt.id)
			assert.False(t, d.Implemented())
			assert.Equal(t, KindUnimplemented, d.Kind)

			res, err := d.Local(schema.NewValues(d.Fields))
			require.NoError(t, err)
			assert.Equal(t, NotImplementedText, res.Text)
			assert.False(t, d.Call.Remote())
		})
	}
}

func TestResolve_GenericFamilyMatchesByToolID(t *testing.T) {
	d := Resolve(catalog.LabelSEO, "calculator")
	assert.Equal(t, KindCalculate, d.Kind)
}

func TestKinds_AllDescribed(t *testing.T) {
	for _, k := range Kinds() {
		_, ok := describe(k)
		assert.True(t, ok, "kind %s", k)
		assert.NotEqual(t, "unknown", k.String())
	}
	_, ok := describe(kindCount)
	assert.False(t, ok)
	assert.Equal(t, KindUnimplemented, Lookup(Kind(-1)).Kind)
}

func TestInputSchemaFor(t *testing.T) {
	names := func(fields []schema.Field) []string {
		out := make([]string, 0, len(fields))
		for _, f := range fields {
			out = append(out, f.Name)
		}
		return out
	}

	t.Run("unit converter", func(t *testing.T) {
		tool, _ := catalog.Find("weight-converter")
		fields := InputSchemaFor(tool)
		assert.Equal(t, []string{"value", "from_unit", "to_unit"}, names(fields))
		assert.Len(t, fields[1].Options, 4)
		assert.True(t, fields[1].HasOption("ounce"))
		assert.Equal(t, "kilogram", fields[1].Default)
		assert.Equal(t, "kilogram", fields[2].Default)
	})

	t.Run("hash defaults to first algorithm", func(t *testing.T) {
		tool, _ := catalog.Find("hash-generator")
		fields := InputSchemaFor(tool)
		require.Len(t, fields, 2)
		assert.Equal(t, "md5", fields[1].Default)
		assert.Equal(t, fields[1].Options[0].Value, fields[1].Default)
	})

	t.Run("password", func(t *testing.T) {
		tool, _ := catalog.Find("password-generator")
		fields := InputSchemaFor(tool)
		assert.Equal(t, []string{"length", "include_uppercase", "include_lowercase", "include_numbers", "include_symbols"}, names(fields))
		v := schema.NewValues(fields)
		for _, f := range fields[1:] {
			assert.True(t, v.Bool(f.Name), f.Name)
		}
	})

	t.Run("zero fields", func(t *testing.T) {
		tool, _ := catalog.Find("uuid-generator")
		assert.Empty(t, InputSchemaFor(tool))
	})

	t.Run("caller owns the slice", func(t *testing.T) {
		tool, _ := catalog.Find("case-converter")
		fields := InputSchemaFor(tool)
		fields[0].Name = "mutated"
		assert.Equal(t, "text", InputSchemaFor(tool)[0].Name)
	})
}

func TestUnitsFor(t *testing.T) {
	assert.Equal(t, []string{"celsius", "fahrenheit", "kelvin"}, UnitsFor("temperature-converter"))
	assert.Equal(t, UnitsFor("length-converter"), UnitsFor("no-such-converter"))
	assert.Equal(t, UnitFamilyData, UnitFamilyFor("data-converter"))
}

func TestPrepare(t *testing.T) {
	t.Run("json body", func(t *testing.T) {
		d, v := valuesFor(t, "case-converter", map[string]string{"text": "hello world", "case_type": "upper"})
		req, err := d.Prepare(v)
		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/tools/text/convert", req.Path)
		assert.Equal(t, toolsvc.EncodingJSON, req.Encoding)
		assert.Equal(t, map[string]any{"text": "hello world", "case_type": "upper"}, req.Body)
	})

	t.Run("select maps to boolean", func(t *testing.T) {
		d, v := valuesFor(t, "base64-converter", map[string]string{"text": "aGk=", "mode": "decode"})
		req, err := d.Prepare(v)
		require.NoError(t, err)
		assert.Equal(t, false, req.Body["encode"])
	})

	t.Run("unit category", func(t *testing.T) {
		d, v := valuesFor(t, "length-converter", map[string]string{"value": "10", "from_unit": "meter", "to_unit": "foot"})
		req, err := d.Prepare(v)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"value": 10.0, "from_unit": "meter", "to_unit": "foot", "category": "length"}, req.Body)
	})

	t.Run("query encoding", func(t *testing.T) {
		d, v := valuesFor(t, "glassmorphism", map[string]string{"opacity": "0.5"})
		req, err := d.Prepare(v)
		require.NoError(t, err)
		assert.Equal(t, toolsvc.EncodingQuery, req.Encoding)
		assert.Equal(t, "10", req.Query().Get("blur"))
		assert.Equal(t, "0.5", req.Query().Get("opacity"))
	})

	t.Run("stepped slider stays on grid", func(t *testing.T) {
		d, v := valuesFor(t, "glassmorphism", nil)
		f, ok := v.Field("opacity")
		require.True(t, ok)
		for i := 0; i < 5; i++ {
			require.NoError(t, v.Set("opacity", f.Advance(v.Raw("opacity"), 1)))
		}
		req, err := d.Prepare(v)
		require.NoError(t, err)
		assert.Equal(t, "0.8", req.Query().Get("opacity"))
	})

	t.Run("fallback defaults", func(t *testing.T) {
		d, v := valuesFor(t, "password-generator", map[string]string{"length": "abc"})
		req, err := d.Prepare(v)
		require.NoError(t, err)
		assert.Equal(t, 16, req.Body["length"])
	})

	t.Run("out of range passes through", func(t *testing.T) {
		d, v := valuesFor(t, "qr-generator", map[string]string{"size": "5000"})
		req, err := d.Prepare(v)
		require.NoError(t, err)
		assert.Equal(t, 5000, req.Body["size"])
	})

	t.Run("blank timestamp is null", func(t *testing.T) {
		d, v := valuesFor(t, "timestamp-converter", nil)
		req, err := d.Prepare(v)
		require.NoError(t, err)
		val, ok := req.Body["timestamp"]
		assert.True(t, ok)
		assert.Nil(t, val)
	})

	t.Run("list items drop blanks", func(t *testing.T) {
		d, v := valuesFor(t, "list-shuffler", map[string]string{"items": "a\n\n b \n"})
		req, err := d.Prepare(v)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", " b "}, req.Body["items"])
	})

	t.Run("gradient skips blank stops", func(t *testing.T) {
		d, v := valuesFor(t, "gradient-generator", map[string]string{"color3": "#ffffff"})
		req, err := d.Prepare(v)
		require.NoError(t, err)
		assert.Equal(t, []string{"#3b82f6", "#10b981", "#ffffff"}, req.Body["colors"])
	})

	t.Run("meta keywords split", func(t *testing.T) {
		d, v := valuesFor(t, "meta-tags", map[string]string{"title": "T", "keywords": "web, tools"})
		req, err := d.Prepare(v)
		require.NoError(t, err)
		assert.Equal(t, []string{"web", " tools"}, req.Body["keywords"])
	})

	t.Run("zero-field GET", func(t *testing.T) {
		d, v := valuesFor(t, "uuid-generator", nil)
		req, err := d.Prepare(v)
		require.NoError(t, err)
		assert.Equal(t, http.MethodGet, req.Method)
		assert.Empty(t, req.Body)
	})
}

func TestPrepare_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		toolID  string
		set     map[string]string
		message string
	}{
		{"unparsable number", "length-converter", map[string]string{"value": "ten"}, `Value: "ten" is not a number`},
		{"missing required", "calculator", nil, "Expression is required"},
		{"bad slider value", "box-shadow", map[string]string{"blur": "x"}, `Blur: "x" is not an integer`},
		{"bad timestamp", "timestamp-converter", map[string]string{"timestamp": "soon"}, `Unix timestamp (blank for now): "soon" is not an integer`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, v := valuesFor(t, tt.toolID, tt.set)
			_, err := d.Prepare(v)
			require.Error(t, err)
			assert.True(t, IsValidation(err))
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestPrepare_LocalOperation(t *testing.T) {
	d, v := valuesFor(t, "json-formatter", nil)
	_, err := d.Prepare(v)
	assert.Error(t, err)
	assert.False(t, IsValidation(err))
}

func TestInterpret(t *testing.T) {
	tests := []struct {
		name   string
		toolID string
		set    map[string]string
		body   string
		want   Result
	}{
		{
			name:   "plain member",
			toolID: "case-converter",
			body:   `{"result":"HELLO WORLD"}`,
			want:   Result{Shape: ShapePlainText, Text: "HELLO WORLD"},
		},
		{
			name:   "word count",
			toolID: "word-counter",
			body:   `{"words":2,"characters":11,"characters_no_spaces":10,"lines":1}`,
			want:   Result{Shape: ShapePlainText, Text: "Words: 2\nCharacters: 11\nCharacters (no spaces): 10\nLines: 1"},
		},
		{
			name:   "unit conversion",
			toolID: "length-converter",
			set:    map[string]string{"value": "10", "from_unit": "meter", "to_unit": "foot"},
			body:   `{"result":32.8084}`,
			want:   Result{Shape: ShapePlainText, Text: "10 meter = 32.8084 foot"},
		},
		{
			name:   "percentage suffix",
			toolID: "percentage",
			body:   `{"result":25.0}`,
			want:   Result{Shape: ShapePlainText, Text: "25.0%"},
		},
		{
			name:   "age",
			toolID: "age-calculator",
			body:   `{"years":30,"months":365,"days":11000}`,
			want:   Result{Shape: ShapePlainText, Text: "30 years, 365 months, 11000 days"},
		},
		{
			name:   "palette lines",
			toolID: "palette-generator",
			body:   `{"palette":["#000000","#ffffff"]}`,
			want:   Result{Shape: ShapeStructuredText, Text: "#000000\n#ffffff"},
		},
		{
			name:   "shuffled lines",
			toolID: "list-shuffler",
			body:   `{"shuffled":["b","a"]}`,
			want:   Result{Shape: ShapePlainText, Text: "b\na"},
		},
		{
			name:   "whole body keeps member order",
			toolID: "regex-tester",
			body:   `{"is_match":true,"matches":["1"],"match_count":1}`,
			want:   Result{Shape: ShapeStructuredText, Text: "{\n  \"is_match\": true,\n  \"matches\": [\n    \"1\"\n  ],\n  \"match_count\": 1\n}"},
		},
		{
			name:   "diff",
			toolID: "diff-checker",
			body:   `{"differences":[],"total_differences":0}`,
			want:   Result{Shape: ShapeStructuredText, Text: "Total differences: 0\n\n[]"},
		},
		{
			name:   "qr image with caption",
			toolID: "qr-generator",
			set:    map[string]string{"text": "https://go.dev"},
			body:   `{"image":"data:image/png;base64,AAAA"}`,
			want:   Result{Shape: ShapeImage, Text: "https://go.dev", Image: "data:image/png;base64,AAAA"},
		},
		{
			name:   "ai image",
			toolID: "ai-image",
			body:   `{"image_url":"https://img.example/x.png"}`,
			want:   Result{Shape: ShapeImage, Text: "Image generated successfully!", Image: "https://img.example/x.png"},
		},
		{
			name:   "missing member is empty",
			toolID: "hash-generator",
			body:   `{}`,
			want:   Result{Shape: ShapePlainText, Text: ""},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, v := valuesFor(t, tt.toolID, tt.set)
			got, err := d.Interpret(v, []byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInterpret_NotAnObject(t *testing.T) {
	d, v := valuesFor(t, "case-converter", nil)
	_, err := d.Interpret(v, []byte(`"plain"`))
	assert.Error(t, err)
}

func TestJSONFormatter(t *testing.T) {
	d, v := valuesFor(t, "json-formatter", map[string]string{"json": ` {"b":1,"a":[true,null]} `})
	res, err := d.Local(v)
	require.NoError(t, err)
	assert.Equal(t, ShapeStructuredText, res.Shape)
	assert.Equal(t, "{\n  \"b\": 1,\n  \"a\": [\n    true,\n    null\n  ]\n}", res.Text)

	require.NoError(t, v.Set("json", "{nope"))
	_, err = d.Local(v)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "Invalid JSON - ")
}
