package operation

import "toolbox/internal/schema"

func textField(name, label, def, placeholder string) schema.Field {
	return schema.Field{Name: name, Label: label, Kind: schema.KindText, Default: def, Placeholder: placeholder}
}

func multilineField(name, label, def, placeholder string) schema.Field {
	return schema.Field{Name: name, Label: label, Kind: schema.KindMultilineText, Default: def, Placeholder: placeholder}
}

func numberField(name, label, def string, min, max float64) schema.Field {
	lo, hi := schema.Bounds(min, max)
	return schema.Field{Name: name, Label: label, Kind: schema.KindNumber, Default: def, Min: lo, Max: hi, Step: 1}
}

// freeNumberField is a number input without bounds.
func freeNumberField(name, label, def, placeholder string) schema.Field {
	return schema.Field{Name: name, Label: label, Kind: schema.KindNumber, Default: def, Placeholder: placeholder}
}

func rangeField(name, label, def string, min, max, step float64) schema.Field {
	lo, hi := schema.Bounds(min, max)
	return schema.Field{Name: name, Label: label, Kind: schema.KindRange, Default: def, Min: lo, Max: hi, Step: step}
}

func selectField(name, label, def string, options ...schema.Option) schema.Field {
	return schema.Field{Name: name, Label: label, Kind: schema.KindSelect, Default: def, Options: options}
}

func colorField(name, label, def string) schema.Field {
	return schema.Field{Name: name, Label: label, Kind: schema.KindColor, Default: def}
}

func checkboxField(name, label string, def bool) schema.Field {
	d := "false"
	if def {
		d = "true"
	}
	return schema.Field{Name: name, Label: label, Kind: schema.KindCheckbox, Default: d}
}

func required(f schema.Field) schema.Field {
	f.Required = true
	return f
}

func opt(value, label string) schema.Option {
	return schema.Option{Value: value, Label: label}
}

// opts builds options whose labels equal their values.
func opts(values ...string) []schema.Option {
	out := make([]schema.Option, 0, len(values))
	for _, v := range values {
		out = append(out, schema.Option{Value: v, Label: v})
	}
	return out
}

var encodeDecode = []schema.Option{opt("encode", "Encode"), opt("decode", "Decode")}
