package operation

import "toolbox/internal/schema"

// payload collects request body entries from panel values. The first parse
// failure is kept and reported by done.
type payload struct {
	values schema.Values
	body   map[string]any
	err    error
}

func newPayload(values schema.Values) *payload {
	return &payload{values: values, body: make(map[string]any)}
}

// text copies a field verbatim under its own name.
func (p *payload) text(name string) *payload {
	p.body[name] = p.values.String(name)
	return p
}

// textOr copies a field, substituting def when it is blank.
func (p *payload) textOr(name, def string) *payload {
	v := p.values.String(name)
	if v == "" {
		v = def
	}
	p.body[name] = v
	return p
}

func (p *payload) integer(name string) *payload {
	if p.err != nil {
		return p
	}
	i, err := p.values.Int(name)
	if err != nil {
		p.err = invalid(p.values, err)
		return p
	}
	p.body[name] = i
	return p
}

// integerOr never fails: blank, zero or unparsable input becomes def.
func (p *payload) integerOr(name string, def int) *payload {
	p.body[name] = p.values.IntOr(name, def)
	return p
}

// optionalInteger sends null for a blank field.
func (p *payload) optionalInteger(name string) *payload {
	if p.err != nil {
		return p
	}
	i, err := p.values.OptionalInt(name)
	if err != nil {
		p.err = invalid(p.values, err)
		return p
	}
	if i == nil {
		p.body[name] = nil
		return p
	}
	p.body[name] = *i
	return p
}

func (p *payload) number(name string) *payload {
	if p.err != nil {
		return p
	}
	f, err := p.values.Float(name)
	if err != nil {
		p.err = invalid(p.values, err)
		return p
	}
	p.body[name] = f
	return p
}

func (p *payload) boolean(name string) *payload {
	p.body[name] = p.values.Bool(name)
	return p
}

func (p *payload) set(key string, v any) *payload {
	p.body[key] = v
	return p
}

func (p *payload) done() (map[string]any, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.body, nil
}
