package toolsvc

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
)

// Encoding selects how a request payload travels.
type Encoding int

const (
	// EncodingJSON sends the payload as a JSON body.
	EncodingJSON Encoding = iota
	// EncodingQuery sends the payload as URL query parameters and no body.
	EncodingQuery
)

// String makes Encoding satisfy the fmt.Stringer interface.
func (e Encoding) String() string {
	if e == EncodingQuery {
		return "query"
	}
	return "json"
}

// Request is one call to the tool service. Path is relative to the client's
// base path.
type Request struct {
	Method   string
	Path     string
	Encoding Encoding
	Body     map[string]any
}

// Query renders the payload as query parameters in key order.
func (r Request) Query() url.Values {
	q := url.Values{}
	keys := make([]string, 0, len(r.Body))
	for k := range r.Body {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		q.Set(k, queryValue(r.Body[k]))
	}
	return q
}

func queryValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}
