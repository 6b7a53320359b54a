package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTools_AllIsOrderedConcatenation(t *testing.T) {
	var want []Tool
	for _, c := range Categories() {
		want = append(want, Tools(c.ID)...)
	}

	assert.Equal(t, want, Tools(AllCategories))
	// Stable across calls.
	assert.Equal(t, Tools(AllCategories), Tools(AllCategories))
}

func TestCategories_RegistrationOrder(t *testing.T) {
	var ids []string
	for _, c := range Categories() {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{
		"text", "color", "css", "code", "converters", "generators",
		"math", "seo", "developer", "ai", "misc",
	}, ids)
}

func TestCategories_ReturnsCopies(t *testing.T) {
	cats := Categories()
	cats[0].Tools[0].Name = "mutated"

	again := Categories()
	assert.Equal(t, "Case Converter", again[0].Tools[0].Name)
}

func TestTools_UnknownCategory(t *testing.T) {
	tools := Tools("nope")
	assert.NotNil(t, tools)
	assert.Empty(t, tools)
}

func TestFind(t *testing.T) {
	tool, err := Find("uuid-generator")
	require.NoError(t, err)
	assert.Equal(t, LabelMisc, tool.Category)
	assert.Equal(t, IconFingerprint, tool.Icon)

	_, err = Find("does-not-exist")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrToolNotFound))
	assert.Contains(t, err.Error(), "does-not-exist")
}

func TestToolIDsAreGloballyUnique(t *testing.T) {
	seen := map[string]string{}
	for _, c := range Categories() {
		for _, tool := range c.Tools {
			prev, dup := seen[tool.ID]
			assert.False(t, dup, "tool %q registered in %q and %q", tool.ID, prev, c.ID)
			seen[tool.ID] = c.ID
		}
	}
}

func TestEveryToolCarriesCategoryLabelAndIcon(t *testing.T) {
	labels := map[string]bool{
		LabelText: true, LabelColor: true, LabelCSS: true, LabelCode: true,
		LabelConverters: true, LabelGenerators: true, LabelMath: true,
		LabelSEO: true, LabelDeveloper: true, LabelAI: true, LabelMisc: true,
	}
	for _, tool := range Tools(AllCategories) {
		assert.True(t, labels[tool.Category], "tool %s has unknown category %q", tool.ID, tool.Category)
		assert.NotEmpty(t, tool.Icon, "tool %s has no icon", tool.ID)
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query keeps all", "", nil},
		{"matches name case-insensitively", "UUID", []string{"uuid-generator"}},
		{"matches description", "placeholder", []string{"lorem-ipsum"}},
		{"no match", "zzz-nothing", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(Tools(AllCategories), tt.query)
			if tt.want == nil {
				assert.Len(t, got, len(Tools(AllCategories)))
				return
			}
			ids := []string{}
			for _, tool := range got {
				ids = append(ids, tool.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "All Tools", DisplayName(AllCategories))
	assert.Equal(t, "SEO & Marketing", DisplayName("seo"))
	assert.Equal(t, "Tools", DisplayName("unknown"))
}
