package catalog

// Interest is a selectable traveler interest tag.
type Interest struct {
	ID    string
	Label string
	Icon  string
}

// Country is a destination a traveler can pick during onboarding.
type Country struct {
	Value string
	Label string
	Flag  string
}

type BusinessCategory struct {
	Value string
	Label string
}

type Recommendation struct {
	ID          int64
	Title       string
	Category    string
	Location    string
	Rating      float64
	Price       string
	Image       string
	Description string
	Host        string
	Distance    string
}

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingPending   BookingStatus = "pending"
	BookingCompleted BookingStatus = "completed"
)

// Tone maps a booking status to the badge tone the client paints it with.
func (s BookingStatus) Tone() string {
	switch s {
	case BookingConfirmed:
		return "success"
	case BookingPending:
		return "warning"
	case BookingCompleted:
		return "info"
	default:
		return "neutral"
	}
}

type Booking struct {
	ID           int64
	CustomerName string
	Experience   string
	Date         string
	Status       BookingStatus
	Amount       string
}

type BusinessStats struct {
	Views             int64
	Favorites         int64
	Bookings          int64
	Rating            float64
	Reviews           int64
	MonthlyGrowth     string
	BookingConversion string
	RepeatCustomers   string
	Website           string
	Verified          bool
}

type FoodCrawl struct {
	Name      string
	Completed int
	Total     int
	NextDish  string
	Location  string
}

// Percent is the completed share of the crawl, 0 when the crawl is empty.
func (f FoodCrawl) Percent() float64 {
	if f.Total <= 0 {
		return 0
	}
	return float64(f.Completed) / float64(f.Total) * 100
}

type EmergencyContact struct {
	Name   string
	Number string
}

type Feature struct {
	Title       string
	Description string
}

type Link struct {
	Label string
	Href  string
}

type LinkGroup struct {
	Title string
	Links []Link
}

// Landing is the static content of the marketing page.
type Landing struct {
	Headline         string
	Tagline          string
	HeroCountries    []Country
	FeaturesHeading  string
	Features         []Feature
	TrustedTravelers string
	CallToAction     string
	FooterGroups     []LinkGroup
}
