package dashboard

import "errors"

var ErrUnknownTab = errors.New("unknown dashboard tab")

// Tab is the active panel of a dashboard.
type Tab string

const (
	TabExplore Tab = "explore"
	TabMap     Tab = "map"
	TabSaved   Tab = "saved"
	TabPhotos  Tab = "photos"

	TabOverview  Tab = "overview"
	TabBookings  Tab = "bookings"
	TabProfile   Tab = "profile"
	TabAnalytics Tab = "analytics"
)

// TabOption is a selectable entry of the tab bar.
type TabOption struct {
	ID    Tab
	Label string
}

func TravelerTabs() []TabOption {
	return []TabOption{
		{ID: TabExplore, Label: "Explore"},
		{ID: TabMap, Label: "Map"},
		{ID: TabSaved, Label: "Saved"},
		{ID: TabPhotos, Label: "My Journey"},
	}
}

func BusinessTabs() []TabOption {
	return []TabOption{
		{ID: TabOverview, Label: "Overview"},
		{ID: TabBookings, Label: "Bookings"},
		{ID: TabProfile, Label: "Profile"},
		{ID: TabAnalytics, Label: "Analytics"},
	}
}

func DefaultTravelerTab() Tab { return TabExplore }

func DefaultBusinessTab() Tab { return TabOverview }

func ParseTravelerTab(v string) (Tab, error) {
	return parseTab(v, TravelerTabs())
}

func ParseBusinessTab(v string) (Tab, error) {
	return parseTab(v, BusinessTabs())
}

func parseTab(v string, options []TabOption) (Tab, error) {
	for _, option := range options {
		if string(option.ID) == v {
			return option.ID, nil
		}
	}
	return "", ErrUnknownTab
}
