package util

import (
	"fmt"
	"strings"
	"time"

	"menu-bot/models"
)

// Categories listed here are pinned to the top of the message, in this order.
var pinnedCategories = []string{"Main Course", "Desserts"}

// emojiPrefixes decorates known category names in outgoing messages.
var emojiPrefixes = map[string]string{
	"Main Course":               "🍽️",
	"Desserts":                  "🍰",
	"Starches":                  "🍚",
	"Vegetables":                "🥦",
	"Soup":                      "🍲",
	"Salads":                    "🥗",
	"Breads":                    "🍞",
	"Condiments":                "🧂",
	"Vegan Entree":              "🌱",
	"Deli":                      "🥪",
	"Express Meal":              "🥡",
	"Display":                   "👀",
	"Other":                     "❓",
	"Passover":                  "🍷",
	"Appetizer/ Fruit/ Juices:": "🍏",
}

const headerDateLayout = "02 Jan 2006"

// Stringify renders a dining hall menu into the outgoing message text.
// Returns an empty string when the menu has no real (non-blank) items.
// Pinned categories come first, the rest keep upstream order, and known
// category names get an emoji prefix.
func Stringify(location models.Location, meal models.MealPeriod, menu *models.Menu, now time.Time) string {
	if !menu.HasItems() {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s - %s:\n\n", location.DisplayName(), meal.Title(), now.Format(headerDateLayout))

	for _, category := range orderCategories(menu.Categories) {
		if !hasRealItems(category.Items) {
			continue
		}
		b.WriteString(categoryHeading(category.Name))
		b.WriteString(":\n")
		for _, item := range category.Items {
			if strings.TrimSpace(item) == "" {
				continue
			}
			b.WriteString("- ")
			b.WriteString(item)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// SongInfoBlock renders the now-playing trailer appended to a menu message.
func SongInfoBlock(artist, song, showTitle, personaName string) string {
	if showTitle == "" {
		showTitle = "Unknown Show"
	}
	return "-------------------\n\n" +
		"🎧 Now playing on WBOR(.org):\n\n" +
		fmt.Sprintf("🎤 %s - %s\n\n", artist, song) +
		fmt.Sprintf("▶️ on the show %s with 👤 %s", showTitle, personaName)
}

func orderCategories(categories []models.MenuCategory) []models.MenuCategory {
	ordered := make([]models.MenuCategory, 0, len(categories))
	taken := make(map[string]bool)

	for _, pinned := range pinnedCategories {
		for _, c := range categories {
			if c.Name == pinned {
				ordered = append(ordered, c)
				taken[c.Name] = true
			}
		}
	}
	for _, c := range categories {
		if !taken[c.Name] {
			ordered = append(ordered, c)
		}
	}
	return ordered
}

func categoryHeading(name string) string {
	if emoji, ok := emojiPrefixes[name]; ok {
		return emoji + " " + name
	}
	return name
}

func hasRealItems(items []string) bool {
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			return true
		}
	}
	return false
}
