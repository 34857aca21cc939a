package memory

import "github.com/riskibarqy/ubuntu-explorer/internal/domain/catalog"

// CatalogSeed is the build-time content served by CatalogRepository.
type CatalogSeed struct {
	Interests          []catalog.Interest
	Countries          []catalog.Country
	BusinessCategories []catalog.BusinessCategory
	Recommendations    []catalog.Recommendation
	Bookings           []catalog.Booking
	BusinessStats      catalog.BusinessStats
	FoodCrawl          catalog.FoodCrawl
	EmergencyContacts  []catalog.EmergencyContact
	Landing            catalog.Landing
}

func SeedCatalog() CatalogSeed {
	countries := SeedCountries()
	return CatalogSeed{
		Interests:          SeedInterests(),
		Countries:          countries,
		BusinessCategories: SeedBusinessCategories(),
		Recommendations:    SeedRecommendations(),
		Bookings:           SeedBookings(),
		BusinessStats:      SeedBusinessStats(),
		FoodCrawl: catalog.FoodCrawl{
			Name:      "Taste SA Food Crawl",
			Completed: 3,
			Total:     12,
			NextDish:  "Biltong",
			Location:  "Local Butchery, Rosebank",
		},
		EmergencyContacts: []catalog.EmergencyContact{
			{Name: "Local Police", Number: "10111"},
			{Name: "Medical Emergency", Number: "10177"},
			{Name: "Tourist Helpline", Number: "083 123 1234"},
		},
		Landing: SeedLanding(countries[:4]),
	}
}

func SeedInterests() []catalog.Interest {
	return []catalog.Interest{
		{ID: "food", Label: "Food & Drinks", Icon: "🍽️"},
		{ID: "nature", Label: "Nature & Wildlife", Icon: "🌿"},
		{ID: "culture", Label: "Culture & Heritage", Icon: "🏛️"},
		{ID: "adventure", Label: "Adventure Sports", Icon: "🏔️"},
		{ID: "art", Label: "Arts & Crafts", Icon: "🎨"},
		{ID: "music", Label: "Music & Dance", Icon: "🎵"},
	}
}

func SeedCountries() []catalog.Country {
	return []catalog.Country{
		{Value: "south-africa", Label: "South Africa", Flag: "🇿🇦"},
		{Value: "brazil", Label: "Brazil", Flag: "🇧🇷"},
		{Value: "india", Label: "India", Flag: "🇮🇳"},
		{Value: "china", Label: "China", Flag: "🇨🇳"},
		{Value: "usa", Label: "United States", Flag: "🇺🇸"},
		{Value: "germany", Label: "Germany", Flag: "🇩🇪"},
		{Value: "japan", Label: "Japan", Flag: "🇯🇵"},
		{Value: "uk", Label: "United Kingdom", Flag: "🇬🇧"},
	}
}

func SeedBusinessCategories() []catalog.BusinessCategory {
	return []catalog.BusinessCategory{
		{Value: "restaurant", Label: "Restaurant & Food"},
		{Value: "accommodation", Label: "Accommodation"},
		{Value: "tour", Label: "Tour & Activities"},
		{Value: "transport", Label: "Transportation"},
		{Value: "retail", Label: "Retail & Shopping"},
		{Value: "cultural", Label: "Cultural Experience"},
	}
}

func SeedRecommendations() []catalog.Recommendation {
	return []catalog.Recommendation{
		{
			ID:          1,
			Title:       "Traditional Braai Experience",
			Category:    "Food & Culture",
			Location:    "Soweto, Johannesburg",
			Rating:      4.8,
			Price:       "R250",
			Image:       "/assets/braai-experience.jpg",
			Description: "Authentic South African braai with local families in Soweto township.",
			Host:        "Nomsa's Kitchen",
			Distance:    "2.3 km",
		},
		{
			ID:          2,
			Title:       "Table Mountain Sunset Hike",
			Category:    "Nature & Adventure",
			Location:    "Cape Town",
			Rating:      4.9,
			Price:       "R150",
			Image:       "/assets/table-mountain.jpg",
			Description: "Guided sunset hike with spectacular views of Cape Town.",
			Host:        "Mountain Adventures",
			Distance:    "5.1 km",
		},
		{
			ID:          3,
			Title:       "Pottery Making Workshop",
			Category:    "Arts & Crafts",
			Location:    "Hermanus",
			Rating:      4.7,
			Price:       "R180",
			Image:       "/assets/pottery-workshop.jpg",
			Description: "Learn traditional pottery techniques from local artisans.",
			Host:        "Clay & Culture Studio",
			Distance:    "8.2 km",
		},
	}
}

func SeedBookings() []catalog.Booking {
	return []catalog.Booking{
		{ID: 1, CustomerName: "Sarah K.", Experience: "Traditional Braai Experience", Date: "2025-01-15", Status: catalog.BookingConfirmed, Amount: "R250"},
		{ID: 2, CustomerName: "James T.", Experience: "Pottery Workshop", Date: "2025-01-18", Status: catalog.BookingPending, Amount: "R180"},
		{ID: 3, CustomerName: "Priya M.", Experience: "Cultural Tour", Date: "2025-01-20", Status: catalog.BookingCompleted, Amount: "R320"},
	}
}

func SeedBusinessStats() catalog.BusinessStats {
	return catalog.BusinessStats{
		Views:             1247,
		Favorites:         89,
		Bookings:          156,
		Rating:            4.7,
		Reviews:           23,
		MonthlyGrowth:     "+23%",
		BookingConversion: "12.5%",
		RepeatCustomers:   "34%",
		Website:           "www.yourbusiness.co.za",
		Verified:          true,
	}
}

func SeedLanding(hero []catalog.Country) catalog.Landing {
	return catalog.Landing{
		Headline:        "Discover Authentic G20 Experiences",
		Tagline:         "AI-powered tourism platform connecting travelers with local communities across all G20 nations.",
		HeroCountries:   append([]catalog.Country(nil), hero...),
		FeaturesHeading: "AI-Powered Tourism Revolution",
		Features: []catalog.Feature{
			{
				Title:       "Smart Personalization",
				Description: "Our AI learns your preferences to recommend truly unique experiences tailored just for you across any G20 destination.",
			},
			{
				Title:       "Community Impact",
				Description: "85% of your spending goes directly to local providers, creating real economic benefits in the communities you visit.",
			},
			{
				Title:       "Travel Safety",
				Description: "Real-time safety alerts, emergency contacts, and verified local guides ensure you explore with confidence.",
			},
		},
		TrustedTravelers: "Trusted by 10,000+ travelers",
		CallToAction:     "Ready to Explore G20 Like Never Before?",
		FooterGroups: []catalog.LinkGroup{
			{Title: "Explore", Links: []catalog.Link{{Label: "Countries", Href: "#"}, {Label: "Experiences", Href: "#"}, {Label: "Local Guides", Href: "#"}}},
			{Title: "Support", Links: []catalog.Link{{Label: "Help Center", Href: "#"}, {Label: "Safety", Href: "#"}, {Label: "Contact", Href: "#"}}},
			{Title: "Connect", Links: []catalog.Link{{Label: "Twitter", Href: "#"}, {Label: "Instagram", Href: "#"}}},
		},
	}
}
