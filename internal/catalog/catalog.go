package catalog

import (
	"fmt"
	"strings"
)

// byID indexes every registered tool. Built once in init.
var byID map[string]Tool

func init() {
	byID = make(map[string]Tool)
	seenCategories := make(map[string]struct{})
	for _, c := range registered {
		if _, dup := seenCategories[c.ID]; dup {
			panic(fmt.Sprintf("catalog: duplicate category id %q", c.ID))
		}
		seenCategories[c.ID] = struct{}{}
		for _, t := range c.Tools {
			if _, dup := byID[t.ID]; dup {
				panic(fmt.Sprintf("catalog: duplicate tool id %q", t.ID))
			}
			byID[t.ID] = t
		}
	}
}

// Categories returns every category in registration order.
func Categories() []Category {
	out := make([]Category, 0, len(registered))
	for _, c := range registered {
		cp := c
		cp.Tools = append([]Tool(nil), c.Tools...)
		out = append(out, cp)
	}
	return out
}

// CategoryByID looks up a single category by id.
func CategoryByID(id string) (Category, bool) {
	for _, c := range registered {
		if c.ID == id {
			cp := c
			cp.Tools = append([]Tool(nil), c.Tools...)
			return cp, true
		}
	}
	return Category{}, false
}

// Tools returns the tools of one category, or of every category flattened in
// registration order when categoryID is AllCategories. Unknown ids yield an
// empty slice.
func Tools(categoryID string) []Tool {
	if categoryID == AllCategories {
		var out []Tool
		for _, c := range registered {
			out = append(out, c.Tools...)
		}
		return out
	}
	c, ok := CategoryByID(categoryID)
	if !ok {
		return []Tool{}
	}
	return c.Tools
}

// Find returns the tool with the given id.
func Find(toolID string) (Tool, error) {
	t, ok := byID[toolID]
	if !ok {
		return Tool{}, fmt.Errorf("%w: %s", ErrToolNotFound, toolID)
	}
	return t, nil
}

// DisplayName returns the heading shown for a category selection.
func DisplayName(categoryID string) string {
	if categoryID == AllCategories {
		return "All Tools"
	}
	if c, ok := CategoryByID(categoryID); ok {
		return c.Name
	}
	return "Tools"
}

// Filter keeps the tools whose name or description contains query,
// case-insensitively. An empty query keeps everything.
func Filter(tools []Tool, query string) []Tool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return tools
	}
	out := make([]Tool, 0, len(tools))
	for _, t := range tools {
		if strings.Contains(strings.ToLower(t.Name), q) || strings.Contains(strings.ToLower(t.Description), q) {
			out = append(out, t)
		}
	}
	return out
}
