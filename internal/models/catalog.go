package models

import (
	"fmt"

	"github.com/google/uuid"
)

// VenueCatalog is the static registry of venues. Lookup is by UUID or
// slug; List returns venues in declaration order.
type VenueCatalog struct {
	venues []*Venue
	byID   map[uuid.UUID]*Venue
	bySlug map[string]*Venue
}

func NewVenueCatalog(venues []*Venue) *VenueCatalog {
	c := &VenueCatalog{
		venues: venues,
		byID:   make(map[uuid.UUID]*Venue, len(venues)),
		bySlug: make(map[string]*Venue, len(venues)),
	}
	for _, v := range venues {
		c.byID[v.Id] = v
		c.bySlug[v.Slug] = v
	}
	return c
}

// DefaultVenueCatalog returns the catalog the site ships with.
func DefaultVenueCatalog() *VenueCatalog {
	return NewVenueCatalog(defaultVenues)
}

func (c *VenueCatalog) GetByID(id uuid.UUID) (*Venue, error) {
	v, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrVenueNotFound, id)
	}
	return v, nil
}

func (c *VenueCatalog) GetBySlug(slug string) (*Venue, error) {
	v, ok := c.bySlug[slug]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVenueNotFound, slug)
	}
	return v, nil
}

func (c *VenueCatalog) List() []*Venue {
	out := make([]*Venue, len(c.venues))
	copy(out, c.venues)
	return out
}

var defaultVenues = []*Venue{
	{
		Id:            uuid.MustParse("e29c4a7e-9c0b-4996-a984-8649c5981b15"),
		Name:          "The Grand Ballroom",
		Slug:          "grand-ballroom",
		Description:   "An elegant and spacious ballroom with crystal chandeliers and marble floors, perfect for large wedding celebrations.",
		PriceRange:    "$5,000 - $10,000",
		CapacityMin:   1,
		CapacityMax:   500,
		Location:      "Downtown",
		Rating:        4.9,
		FeaturedImage: "https://images.unsplash.com/photo-1519167758481-83f550bb49b3?q=80&w=1498&auto=format&fit=crop",
		Gallery: []string{
			"https://images.unsplash.com/photo-1519167758481-83f550bb49b3?q=80&w=1498&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1464366400600-7168b8af9bc3?q=80&w=1469&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1513278974582-3e1b4a4fa21e?q=80&w=1470&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1521139174183-9c1018928cbb?q=80&w=1481&auto=format&fit=crop",
		},
		Amenities: []string{"Bridal Suite", "Catering Services", "Dance Floor", "Lighting/Sound", "Parking", "Wheelchair Access"},
	},
	{
		Id:            uuid.MustParse("5f9d1e6c-93e7-4d44-8d70-32b7a775c348"),
		Name:          "Seaside Terrace",
		Slug:          "seaside-terrace",
		Description:   "A beautiful outdoor venue with panoramic ocean views, perfect for sunset ceremonies and receptions.",
		PriceRange:    "$6,000 - $12,000",
		CapacityMin:   1,
		CapacityMax:   200,
		Location:      "Coastal Area",
		Rating:        4.8,
		FeaturedImage: "https://images.unsplash.com/photo-1505944270255-72b8c68c6a70?q=80&w=1470&auto=format&fit=crop",
		Gallery: []string{
			"https://images.unsplash.com/photo-1505944270255-72b8c68c6a70?q=80&w=1470&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1519671482248-7c6a3c66fecb?q=80&w=1470&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1544124499-58912edb4b6a?q=80&w=1470&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1517722014278-c256a91a6fba?q=80&w=1470&auto=format&fit=crop",
		},
		Amenities: []string{"Ocean View", "Outdoor Ceremony Space", "Covered Reception Area", "In-house Catering", "Bar Service", "Setup & Cleanup"},
	},
	{
		Id:            uuid.MustParse("7c538a02-d34d-4f9a-bd46-06a9315b20d9"),
		Name:          "Rustic Vineyard Estate",
		Slug:          "rustic-vineyard",
		Description:   "A charming vineyard setting with rustic barns, rolling hills, and beautiful gardens for an intimate countryside wedding.",
		PriceRange:    "$4,000 - $8,000",
		CapacityMin:   1,
		CapacityMax:   150,
		Location:      "Wine Country",
		Rating:        4.7,
		FeaturedImage: "https://images.unsplash.com/photo-1465495976277-4387d4b0b4c6?q=80&w=1470&auto=format&fit=crop",
		Gallery: []string{
			"https://images.unsplash.com/photo-1465495976277-4387d4b0b4c6?q=80&w=1470&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1510076857177-7470076d4098?q=80&w=1472&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1472653431158-6364773b2a56?q=80&w=1469&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1505944428981-85149b2989e2?q=80&w=1470&auto=format&fit=crop",
		},
		Amenities: []string{"Vineyard Views", "Indoor & Outdoor Spaces", "Wine Tasting", "Accommodation Available", "Pet Friendly", "Photo Opportunities"},
	},
	{
		Id:            uuid.MustParse("bf45a24f-4b09-4c9c-91d2-7a7bcfb3b8a2"),
		Name:          "Historic Mansion",
		Slug:          "historic-mansion",
		Description:   "An elegant 19th-century mansion with manicured gardens, ornate architecture, and timeless charm for a sophisticated wedding.",
		PriceRange:    "$7,000 - $15,000",
		CapacityMin:   1,
		CapacityMax:   250,
		Location:      "Heritage District",
		Rating:        4.9,
		FeaturedImage: "https://images.unsplash.com/photo-1526047932273-341f2a7631f9?q=80&w=1480&auto=format&fit=crop",
		Gallery: []string{
			"https://images.unsplash.com/photo-1526047932273-341f2a7631f9?q=80&w=1480&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1523301343968-6a6ebf63c672?q=80&w=1469&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1519225421980-715cb0215aed?q=80&w=1470&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1502786129293-79981df4e689?q=80&w=1472&auto=format&fit=crop",
		},
		Amenities: []string{"Historic Architecture", "Grand Staircase", "Multiple Event Spaces", "Bridal Suite", "Gourmet Catering", "Valet Parking"},
	},
	{
		Id:            uuid.MustParse("9a208d5e-8c62-4958-954b-8f91d82c0837"),
		Name:          "Mountain Lodge Retreat",
		Slug:          "mountain-lodge",
		Description:   "A cozy mountain lodge with stunning natural surroundings, perfect for an intimate wedding with breathtaking views.",
		PriceRange:    "$3,500 - $7,000",
		CapacityMin:   1,
		CapacityMax:   100,
		Location:      "Mountain Range",
		Rating:        4.6,
		FeaturedImage: "https://images.unsplash.com/photo-1470290378973-039446646d34?q=80&w=1470&auto=format&fit=crop",
		Gallery: []string{
			"https://images.unsplash.com/photo-1470290378973-039446646d34?q=80&w=1470&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1542592997-221a9e3d01c7?q=80&w=1469&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1508950914441-2165b1c63c8b?q=80&w=1470&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1542729114-128966940e1c?q=80&w=1470&auto=format&fit=crop",
		},
		Amenities: []string{"Mountain Views", "Fireplace", "Outdoor Ceremony Area", "Indoor Reception", "On-site Accommodations", "Hiking Trails"},
	},
	{
		Id:            uuid.MustParse("2c407b9d-67e9-4fc5-8c3c-89e4923ceaa4"),
		Name:          "Urban Rooftop Loft",
		Slug:          "urban-rooftop",
		Description:   "A modern, industrial-chic loft space with a rooftop terrace offering spectacular city views for a contemporary wedding.",
		PriceRange:    "$4,500 - $9,000",
		CapacityMin:   1,
		CapacityMax:   180,
		Location:      "City Center",
		Rating:        4.7,
		FeaturedImage: "https://images.unsplash.com/photo-1519671482248-7c6a3c66fecb?q=80&w=1470&auto=format&fit=crop",
		Gallery: []string{
			"https://images.unsplash.com/photo-1519671482248-7c6a3c66fecb?q=80&w=1470&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1516450360452-9312f5e86fc7?q=80&w=1470&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1517457373958-b7bdd4587205?q=80&w=1469&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1517502884422-41eaead166d4?q=80&w=1525&auto=format&fit=crop",
		},
		Amenities: []string{"City Skyline Views", "Indoor/Outdoor Spaces", "Modern Decor", "Sound System", "Customizable Lighting", "Event Coordinator"},
	},
}
