package toolsvctest

import (
	"bytes"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"hash"
	"image"
	"image/color"
	"image/png"
	"math"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// decode reads a JSON body into dst and checks that every key in required is
// present, answering 422 the way the real service does when it is not.
func decode(w http.ResponseWriter, r *http.Request, dst any, required ...string) bool {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeValidation(w, "body", "Input should be a valid dictionary")
		return false
	}
	for _, k := range required {
		if _, ok := raw[k]; !ok {
			writeValidation(w, k, "Field required")
			return false
		}
	}
	b, _ := json.Marshal(raw)
	if err := json.Unmarshal(b, dst); err != nil {
		writeValidation(w, "body", err.Error())
		return false
	}
	return true
}

func writeValidation(w http.ResponseWriter, field, msg string) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"detail": []map[string]any{{"loc": []string{"body", field}, "msg": msg, "type": "missing"}},
	})
}

func handleCaseConvert(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text     string `json:"text"`
		CaseType string `json:"case_type"`
	}
	if !decode(w, r, &req, "text", "case_type") {
		return
	}
	var result string
	switch req.CaseType {
	case "upper":
		result = strings.ToUpper(req.Text)
	case "lower":
		result = strings.ToLower(req.Text)
	case "title":
		result = titleCase(req.Text)
	case "snake":
		result = strings.ToLower(strings.NewReplacer(" ", "_", "-", "_").Replace(req.Text))
	case "kebab":
		result = strings.ToLower(strings.NewReplacer(" ", "-", "_", "-").Replace(req.Text))
	default:
		result = req.Text
	}
	writeJSON(w, http.StatusOK, map[string]any{"result": result})
}

func titleCase(s string) string {
	prev := ' '
	return strings.Map(func(r rune) rune {
		defer func() { prev = r }()
		if !unicode.IsLetter(prev) {
			return unicode.ToUpper(r)
		}
		return unicode.ToLower(r)
	}, s)
}

func handleWordCount(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if !decode(w, r, &req, "text") {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"words":                len(strings.Fields(req.Text)),
		"characters":           len([]rune(req.Text)),
		"characters_no_spaces": len([]rune(strings.ReplaceAll(req.Text, " ", ""))),
		"lines":                len(strings.Split(req.Text, "\n")),
	})
}

const loremParagraph = "Lorem ipsum dolor sit amet, consectetur adipiscing elit."

func handleLorem(w http.ResponseWriter, r *http.Request) {
	req := struct {
		Paragraphs int `json:"paragraphs"`
	}{Paragraphs: 3}
	if !decode(w, r, &req) {
		return
	}
	paras := make([]string, req.Paragraphs)
	for i := range paras {
		paras[i] = loremParagraph
	}
	writeJSON(w, http.StatusOK, map[string]any{"result": strings.Join(paras, "\n\n")})
}

func handleWhitespace(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if !decode(w, r, &req, "text") {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"result": strings.Join(strings.Fields(req.Text), " ")})
}

func handleBase64(w http.ResponseWriter, r *http.Request) {
	req := struct {
		Text   string `json:"text"`
		Encode bool   `json:"encode"`
	}{Encode: true}
	if !decode(w, r, &req, "text") {
		return
	}
	if req.Encode {
		writeJSON(w, http.StatusOK, map[string]any{"result": base64.StdEncoding.EncodeToString([]byte(req.Text))})
		return
	}
	b, err := base64.StdEncoding.DecodeString(req.Text)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid Base64 string")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"result": string(b)})
}

func handleURLEncode(w http.ResponseWriter, r *http.Request) {
	req := struct {
		Text   string `json:"text"`
		Encode bool   `json:"encode"`
	}{Encode: true}
	if !decode(w, r, &req, "text") {
		return
	}
	if req.Encode {
		writeJSON(w, http.StatusOK, map[string]any{"result": url.QueryEscape(req.Text)})
		return
	}
	s, err := url.QueryUnescape(req.Text)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid URL encoding")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"result": s})
}

func handlePalette(w http.ResponseWriter, r *http.Request) {
	req := struct {
		BaseColor string `json:"base_color"`
		Count     int    `json:"count"`
	}{Count: 5}
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"palette": greys(req.Count)})
}

func handleShades(w http.ResponseWriter, r *http.Request) {
	req := struct {
		Color string `json:"color"`
		Count int    `json:"count"`
	}{Count: 10}
	if !decode(w, r, &req, "color") {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"shades": greys(req.Count)})
}

func greys(n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		v := 255 * i / max(n-1, 1)
		out = append(out, fmt.Sprintf("#%02x%02x%02x", v, v, v))
	}
	return out
}

func handleGradient(w http.ResponseWriter, r *http.Request) {
	req := struct {
		Colors    []string `json:"colors"`
		Direction string   `json:"direction"`
	}{Direction: "to right"}
	if !decode(w, r, &req, "colors") {
		return
	}
	css := fmt.Sprintf("background: linear-gradient(%s, %s);", req.Direction, strings.Join(req.Colors, ", "))
	writeJSON(w, http.StatusOK, map[string]any{"css": css})
}

func handleBoxShadow(w http.ResponseWriter, r *http.Request) {
	req := struct {
		H      int    `json:"h_offset"`
		V      int    `json:"v_offset"`
		Blur   int    `json:"blur"`
		Spread int    `json:"spread"`
		Color  string `json:"color"`
	}{V: 5, Blur: 10, Color: "rgba(0,0,0,0.3)"}
	if !decode(w, r, &req) {
		return
	}
	css := fmt.Sprintf("box-shadow: %dpx %dpx %dpx %dpx %s;", req.H, req.V, req.Blur, req.Spread, req.Color)
	writeJSON(w, http.StatusOK, map[string]any{"css": css})
}

func queryInt(q url.Values, key string, def int) (int, bool) {
	s := q.Get(key)
	if s == "" {
		return def, true
	}
	i, err := strconv.Atoi(s)
	return i, err == nil
}

func handleBorderRadius(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	vals := make([]int, 0, 4)
	for _, k := range []string{"tl", "tr", "br", "bl"} {
		v, ok := queryInt(q, k, 0)
		if !ok {
			writeValidation(w, k, "Input should be a valid integer")
			return
		}
		vals = append(vals, v)
	}
	css := fmt.Sprintf("border-radius: %dpx %dpx %dpx %dpx;", vals[0], vals[1], vals[2], vals[3])
	writeJSON(w, http.StatusOK, map[string]any{"css": css})
}

func handleGlassmorphism(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	blur, ok := queryInt(q, "blur", 10)
	if !ok {
		writeValidation(w, "blur", "Input should be a valid integer")
		return
	}
	opacity := 0.3
	if s := q.Get("opacity"); s != "" {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			writeValidation(w, "opacity", "Input should be a valid number")
			return
		}
		opacity = f
	}
	css := fmt.Sprintf("background: rgba(255, 255, 255, %s);\nbackdrop-filter: blur(%dpx);",
		strconv.FormatFloat(opacity, 'f', -1, 64), blur)
	writeJSON(w, http.StatusOK, map[string]any{"css": css})
}

var unitFactors = map[string]map[string]float64{
	"length": {"meter": 1, "kilometer": 0.001, "mile": 0.000621371, "yard": 1.09361, "foot": 3.28084, "inch": 39.3701},
	"weight": {"kilogram": 1, "gram": 1000, "pound": 2.20462, "ounce": 35.274},
	"data":   {"byte": 1, "kilobyte": 0.001, "megabyte": 0.000001, "gigabyte": 0.000000001, "terabyte": 0.000000000001},
}

func handleUnits(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Value    float64 `json:"value"`
		FromUnit string  `json:"from_unit"`
		ToUnit   string  `json:"to_unit"`
		Category string  `json:"category"`
	}
	if !decode(w, r, &req, "value", "from_unit", "to_unit", "category") {
		return
	}
	var result float64
	if req.Category == "temperature" {
		c := req.Value
		switch req.FromUnit {
		case "fahrenheit":
			c = (req.Value - 32) * 5 / 9
		case "kelvin":
			c = req.Value - 273.15
		}
		switch req.ToUnit {
		case "fahrenheit":
			result = c*9/5 + 32
		case "kelvin":
			result = c + 273.15
		default:
			result = c
		}
	} else {
		table := unitFactors[req.Category]
		from, to := table[req.FromUnit], table[req.ToUnit]
		if from == 0 {
			from = 1
		}
		if to == 0 {
			to = 1
		}
		result = req.Value / from * to
	}
	writeJSON(w, http.StatusOK, map[string]any{"result": math.Round(result*1e6) / 1e6})
}

func handleBarcode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Data string `json:"data"`
	}
	if !decode(w, r, &req, "data") {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"image": PNGDataURI})
}

func handlePercentage(w http.ResponseWriter, r *http.Request) {
	req := struct {
		Value     float64 `json:"value"`
		Total     float64 `json:"total"`
		Operation string  `json:"operation"`
	}{Operation: "what_percent"}
	if !decode(w, r, &req, "value", "total") {
		return
	}
	var result float64
	if req.Operation == "what_percent" {
		if req.Total == 0 {
			writeDetail(w, http.StatusBadRequest, "Total cannot be zero")
			return
		}
		result = req.Value / req.Total * 100
	} else {
		result = req.Value * req.Total / 100
	}
	writeJSON(w, http.StatusOK, map[string]any{"result": math.Round(result*100) / 100})
}

func handleOpenGraph(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if _, ok := q["title"]; !ok {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"detail": []map[string]any{{"loc": []string{"query", "title"}, "msg": "Field required"}},
		})
		return
	}
	html := fmt.Sprintf("<meta property=\"og:title\" content=\"%s\">\n<meta property=\"og:description\" content=\"%s\">",
		q.Get("title"), q.Get("description"))
	writeJSON(w, http.StatusOK, map[string]any{"html": html})
}

func handleRegex(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Pattern string `json:"pattern"`
		Text    string `json:"text"`
	}
	if !decode(w, r, &req, "pattern", "text") {
		return
	}
	re, err := regexp.Compile(req.Pattern)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid regex: "+err.Error())
		return
	}
	matches := re.FindAllString(req.Text, -1)
	if matches == nil {
		matches = []string{}
	}
	// Member order mirrors the real service.
	body := fmt.Sprintf(`{"is_match":%t,"matches":%s,"match_count":%d}`, len(matches) > 0, mustJSON(matches), len(matches))
	writeRaw(w, body)
}

func handleDiff(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text1 string `json:"text1"`
		Text2 string `json:"text2"`
	}
	if !decode(w, r, &req, "text1", "text2") {
		return
	}
	type difference struct {
		Line  int    `json:"line"`
		Text1 string `json:"text1"`
		Text2 string `json:"text2"`
	}
	l1, l2 := strings.Split(req.Text1, "\n"), strings.Split(req.Text2, "\n")
	diffs := []difference{}
	for i := 0; i < max(len(l1), len(l2)); i++ {
		var a, b string
		if i < len(l1) {
			a = l1[i]
		}
		if i < len(l2) {
			b = l2[i]
		}
		if a != b {
			diffs = append(diffs, difference{Line: i + 1, Text1: a, Text2: b})
		}
	}
	writeRaw(w, fmt.Sprintf(`{"differences":%s,"total_differences":%d}`, mustJSON(diffs), len(diffs)))
}

func handleHash(w http.ResponseWriter, r *http.Request) {
	req := struct {
		Text      string `json:"text"`
		Algorithm string `json:"algorithm"`
	}{Algorithm: "sha256"}
	if !decode(w, r, &req, "text") {
		return
	}
	algorithms := map[string]func() hash.Hash{
		"md5":    md5.New,
		"sha1":   sha1.New,
		"sha256": sha256.New,
		"sha512": sha512.New,
	}
	newHash, ok := algorithms[strings.ToLower(req.Algorithm)]
	if !ok {
		writeDetail(w, http.StatusBadRequest, "Unsupported algorithm")
		return
	}
	h := newHash()
	h.Write([]byte(req.Text))
	writeJSON(w, http.StatusOK, map[string]any{"hash": hex.EncodeToString(h.Sum(nil))})
}

func handleTimestamp(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Timestamp *int64 `json:"timestamp"`
	}
	if !decode(w, r, &req) {
		return
	}
	t := time.Now()
	if req.Timestamp != nil && *req.Timestamp != 0 {
		t = time.Unix(*req.Timestamp, 0)
	}
	t = t.UTC()
	writeRaw(w, fmt.Sprintf(`{"timestamp":%d,"datetime":%q,"human_readable":%q}`,
		t.Unix(), t.Format("2006-01-02T15:04:05"), t.Format("2006-01-02 15:04:05")))
}

func handleQRCode(w http.ResponseWriter, r *http.Request) {
	req := struct {
		Text string `json:"text"`
		Size int    `json:"size"`
	}{Size: 300}
	if !decode(w, r, &req, "text") {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"image": PNGDataURI})
}

func handlePassword(w http.ResponseWriter, r *http.Request) {
	req := struct {
		Length  int  `json:"length"`
		Upper   bool `json:"include_uppercase"`
		Lower   bool `json:"include_lowercase"`
		Numbers bool `json:"include_numbers"`
		Symbols bool `json:"include_symbols"`
	}{Length: 16, Upper: true, Lower: true, Numbers: true, Symbols: true}
	if !decode(w, r, &req) {
		return
	}
	var chars string
	if req.Upper {
		chars += "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	}
	if req.Lower {
		chars += "abcdefghijklmnopqrstuvwxyz"
	}
	if req.Numbers {
		chars += "0123456789"
	}
	if req.Symbols {
		chars += "!@#$%^&*()_+-=[]{}|;:,.<>?"
	}
	if chars == "" {
		writeDetail(w, http.StatusBadRequest, "Must include at least one character type")
		return
	}
	// Deterministic: the fake only needs the length and alphabet to be right.
	var b strings.Builder
	for i := 0; i < req.Length; i++ {
		b.WriteByte(chars[i%len(chars)])
	}
	writeJSON(w, http.StatusOK, map[string]any{"password": b.String()})
}

// handleShuffle reverses the list so tests can predict the order.
func handleShuffle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Items []string `json:"items"`
	}
	if !decode(w, r, &req, "items") {
		return
	}
	out := make([]string, len(req.Items))
	for i, it := range req.Items {
		out[len(out)-1-i] = it
	}
	writeJSON(w, http.StatusOK, map[string]any{"shuffled": out})
}

func handleUUID(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"uuid": uuid.NewString()})
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}

func writeRaw(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

// PNGDataURI is the image every fake image endpoint returns: a 2x2 PNG.
var PNGDataURI = func() string {
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.Black)
	img.Set(1, 1, color.Black)
	img.Set(0, 1, color.White)
	img.Set(1, 0, color.White)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}()
