package dashboard

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Panel is the static content of a tab that has no data yet.
type Panel struct {
	Title   string
	Message string
}

// TravelerPanel returns the placeholder for a traveler tab. Explore has live
// content and no placeholder.
func TravelerPanel(tab Tab) (Panel, bool) {
	switch tab {
	case TabMap:
		return Panel{Title: "Interactive Map", Message: "Map view with local businesses, attractions, and safety points coming soon!"}, true
	case TabSaved:
		return Panel{Title: "Saved Experiences", Message: "Your saved experiences will appear here"}, true
	case TabPhotos:
		return Panel{Title: "My Journey", Message: "Track your adventures and share your story"}, true
	default:
		return Panel{}, false
	}
}

// BusinessQuickActions lists the shortcuts on the business overview tab.
func BusinessQuickActions() []string {
	return []string{"Add New Experience", "Upload Photos", "Manage Reviews", "Update Availability"}
}

// RecentBookingsLimit caps the bookings shown on the business overview tab.
const RecentBookingsLimit = 3

func TravelerGreeting(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Welcome back!"
	}
	return "Welcome back, " + name + "!"
}

func BusinessHeading(businessName string) string {
	if strings.TrimSpace(businessName) == "" {
		return "Your Business"
	}
	return businessName
}

// BadgeLabel upper-cases the first letter of an interest id.
func BadgeLabel(interest string) string {
	r, size := utf8.DecodeRuneInString(interest)
	if r == utf8.RuneError {
		return interest
	}
	return string(unicode.ToUpper(r)) + interest[size:]
}
