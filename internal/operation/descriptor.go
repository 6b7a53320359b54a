package operation

import (
	"fmt"
	"net/http"

	"toolbox/internal/schema"
	"toolbox/internal/toolsvc"
)

// ResultShape is how a successful result is presented.
type ResultShape int

const (
	ShapePlainText ResultShape = iota
	ShapeStructuredText
	ShapeImage
)

// String makes ResultShape satisfy the fmt.Stringer interface.
func (s ResultShape) String() string {
	switch s {
	case ShapePlainText:
		return "plain-text"
	case ShapeStructuredText:
		return "structured-text"
	case ShapeImage:
		return "image"
	default:
		return "unknown"
	}
}

// Result is the interpreted outcome of one successful operation.
// Image holds a data URI or a hosted URL and is set only for ShapeImage;
// Text then carries the accompanying caption.
type Result struct {
	Shape ResultShape
	Text  string
	Image string
}

// Call is the remote endpoint contract of an operation. An empty Path marks
// a local operation.
type Call struct {
	Method   string
	Path     string
	Encoding toolsvc.Encoding
}

// Remote reports whether the operation needs the remote service.
func (c Call) Remote() bool {
	return c.Path != ""
}

// Descriptor is the static entry of one operation.
type Descriptor struct {
	Kind   Kind
	Family Family
	Fields []schema.Field
	Call   Call
	Shape  ResultShape

	build     func(schema.Values) (map[string]any, error)
	interpret func(schema.Values, []byte) (Result, error)
	local     func(schema.Values) (Result, error)
}

// Implemented reports whether the descriptor carries a real operation.
func (d Descriptor) Implemented() bool {
	return d.Kind != KindUnimplemented
}

// Prepare validates values and builds the remote request. It fails for local
// operations.
func (d Descriptor) Prepare(values schema.Values) (toolsvc.Request, error) {
	if !d.Call.Remote() {
		return toolsvc.Request{}, fmt.Errorf("operation %s is local", d.Kind)
	}
	if err := checkRequired(values); err != nil {
		return toolsvc.Request{}, err
	}
	var body map[string]any
	if d.build != nil {
		var err error
		body, err = d.build(values)
		if err != nil {
			return toolsvc.Request{}, err
		}
	}
	return toolsvc.Request{
		Method:   d.Call.Method,
		Path:     d.Call.Path,
		Encoding: d.Call.Encoding,
		Body:     body,
	}, nil
}

// Interpret turns a successful response body into a Result.
func (d Descriptor) Interpret(values schema.Values, body []byte) (Result, error) {
	if d.interpret == nil {
		return Result{}, fmt.Errorf("operation %s has no remote result", d.Kind)
	}
	res, err := d.interpret(values, body)
	if err != nil {
		return Result{}, fmt.Errorf("failed to interpret %s response: %w", d.Kind, err)
	}
	return res, nil
}

// Local runs an operation that needs no remote call.
func (d Descriptor) Local(values schema.Values) (Result, error) {
	if d.local == nil {
		return Result{}, fmt.Errorf("operation %s is remote", d.Kind)
	}
	return d.local(values)
}

// NotImplementedText is the result text of the Unimplemented operation.
const NotImplementedText = "Tool not implemented"

// table holds one descriptor per Kind, built at init.
var table [kindCount]Descriptor

func init() {
	for k := KindUnimplemented; k < kindCount; k++ {
		d, ok := describe(k)
		if !ok {
			panic(fmt.Sprintf("operation: kind %d (%s) has no descriptor", int(k), k))
		}
		d.Kind = k
		table[k] = d
	}
	for fam, kinds := range members {
		for _, k := range kinds {
			table[k].Family = fam
		}
	}
}

// Lookup returns the descriptor of a kind.
func Lookup(k Kind) Descriptor {
	if k < 0 || k >= kindCount {
		return table[KindUnimplemented]
	}
	return table[k]
}

// describe is the single switch over Kind. Adding a Kind without a case
// here fails at process start.
func describe(k Kind) (Descriptor, bool) {
	switch k {
	case KindUnimplemented:
		return Descriptor{
			Shape: ShapePlainText,
			local: func(schema.Values) (Result, error) {
				return Result{Shape: ShapePlainText, Text: NotImplementedText}, nil
			},
		}, true

	case KindCaseConvert:
		return caseConvert(), true
	case KindWordCount:
		return wordCount(), true
	case KindLoremIpsum:
		return loremIpsum(), true
	case KindWhitespaceRemove:
		return whitespaceRemove(), true
	case KindBase64:
		return base64Convert(), true
	case KindURLEncode:
		return urlEncode(), true

	case KindColorConvert:
		return colorConvert(), true
	case KindPalette:
		return palette(), true
	case KindShades:
		return shades(), true

	case KindGradient:
		return gradient(), true
	case KindBoxShadow:
		return boxShadow(), true
	case KindBorderRadius:
		return borderRadius(), true
	case KindGlassmorphism:
		return glassmorphism(), true

	case KindJSONFormat:
		return jsonFormat(), true

	case KindLengthConvert:
		return unitConvert("length-converter"), true
	case KindWeightConvert:
		return unitConvert("weight-converter"), true
	case KindTemperatureConvert:
		return unitConvert("temperature-converter"), true
	case KindDataConvert:
		return unitConvert("data-converter"), true
	case KindUsername:
		return username(), true
	case KindEmail:
		return email(), true
	case KindBarcode:
		return barcode(), true
	case KindCalculate:
		return calculate(), true
	case KindPercentage:
		return percentage(), true
	case KindAge:
		return age(), true
	case KindMetaTags:
		return metaTags(), true
	case KindOpenGraph:
		return openGraph(), true
	case KindRegexTest:
		return regexTest(), true
	case KindDiff:
		return diff(), true
	case KindHash:
		return hash(), true
	case KindTimestamp:
		return timestamp(), true
	case KindAIText:
		return aiText(), true
	case KindAIImage:
		return aiImage(), true

	case KindQRCode:
		return qrCode(), true
	case KindPassword:
		return password(), true
	case KindShuffle:
		return shuffle(), true
	case KindUUID:
		return uuidGenerate(), true
	}
	return Descriptor{}, false
}

// post is the common remote call shape.
func post(path string) Call {
	return Call{Method: http.MethodPost, Path: path, Encoding: toolsvc.EncodingJSON}
}

// postQuery sends the payload as query parameters of a POST.
func postQuery(path string) Call {
	return Call{Method: http.MethodPost, Path: path, Encoding: toolsvc.EncodingQuery}
}
