package toolsvc

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// RemoteError is a non-success response. Detail is the service's own
// message when it sent one.
type RemoteError struct {
	StatusCode int
	Detail     string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("tool service returned %d: %s", e.StatusCode, e.Detail)
}

// TransportError is a failure to reach the service or read its answer.
type TransportError struct {
	Op  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Detail returns the message shown to the user for a failed call: the
// remote detail verbatim, the transport cause, or the error text.
func Detail(err error) string {
	if err == nil {
		return ""
	}
	var re *RemoteError
	if errors.As(err, &re) {
		return re.Detail
	}
	var te *TransportError
	if errors.As(err, &te) {
		return te.Err.Error()
	}
	return err.Error()
}

// remoteError builds a RemoteError from a failed response body. The
// service reports failures as {"detail": "..."}; validation failures carry a
// list of objects with a "msg" member instead.
func remoteError(status int, body []byte) *RemoteError {
	detail := http.StatusText(status)
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && len(payload.Detail) > 0 {
		if d := detailText(payload.Detail); d != "" {
			detail = d
		}
	}
	if detail == "" {
		detail = fmt.Sprintf("status %d", status)
	}
	return &RemoteError{StatusCode: status, Detail: detail}
}

func detailText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(raw, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return string(raw)
}
