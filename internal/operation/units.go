package operation

// Unit families understood by the conversion endpoint.
const (
	UnitFamilyLength      = "length"
	UnitFamilyWeight      = "weight"
	UnitFamilyTemperature = "temperature"
	UnitFamilyData        = "data"
)

var unitsByFamily = map[string][]string{
	UnitFamilyLength:      {"meter", "kilometer", "mile", "yard", "foot", "inch"},
	UnitFamilyWeight:      {"kilogram", "gram", "pound", "ounce"},
	UnitFamilyTemperature: {"celsius", "fahrenheit", "kelvin"},
	UnitFamilyData:        {"byte", "kilobyte", "megabyte", "gigabyte", "terabyte"},
}

var unitFamilyByTool = map[string]string{
	"length-converter":      UnitFamilyLength,
	"weight-converter":      UnitFamilyWeight,
	"temperature-converter": UnitFamilyTemperature,
	"data-converter":        UnitFamilyData,
}

// UnitFamilyFor returns the unit family a converter tool works in. Unknown
// tool ids fall back to length.
func UnitFamilyFor(toolID string) string {
	if fam, ok := unitFamilyByTool[toolID]; ok {
		return fam
	}
	return UnitFamilyLength
}

// UnitsFor returns the selectable units of a converter tool.
func UnitsFor(toolID string) []string {
	return append([]string(nil), unitsByFamily[UnitFamilyFor(toolID)]...)
}
