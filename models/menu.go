package models

import "strings"

// MenuCategory is one course heading and its items, in upstream order.
// Items may contain blank entries (the upstream feed emits them); consumers
// are expected to skip those.
type MenuCategory struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

// Menu is a parsed dining hall menu: an ordered list of categories.
type Menu struct {
	Categories []MenuCategory `json:"categories"`
}

// HasItems reports whether the menu carries at least one non-blank item.
func (m *Menu) HasItems() bool {
	if m == nil {
		return false
	}
	for _, c := range m.Categories {
		for _, item := range c.Items {
			if strings.TrimSpace(item) != "" {
				return true
			}
		}
	}
	return false
}

// Append adds an item under the named category, creating the category at
// the end of the list on first sight.
func (m *Menu) Append(category, item string) {
	for i := range m.Categories {
		if m.Categories[i].Name == category {
			m.Categories[i].Items = append(m.Categories[i].Items, item)
			return
		}
	}
	m.Categories = append(m.Categories, MenuCategory{Name: category, Items: []string{item}})
}
