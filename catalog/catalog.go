// Package catalog holds the static site content: rooms, amenities,
// testimonials, gallery images and the nearby-attraction list. Pure data,
// shipped with the binary; config.SeedDatabase copies it into MySQL.
package catalog

import (
	"encoding/json"

	"gorm.io/datatypes"

	"motel-backend/models"
)

func jsonList(items ...string) datatypes.JSON {
	b, _ := json.Marshal(items)
	return datatypes.JSON(b)
}

// Rooms returns the bookable room catalog. IDs are fixed so existing
// bookings keep pointing at the same rooms across reseeds.
func Rooms() []models.Room {
	return []models.Room{
		{
			ID:          8,
			Name:        "Deluxe King Room",
			Slug:        "deluxe-king-room",
			Description: "A spacious room with a comfortable king-sized bed.",
			LongDescription: "Indulge in the comfort of our Deluxe King Room. Featuring a plush king-sized bed, " +
				"a modern en-suite bathroom with a rainfall shower, and a cozy seating area. Enjoy stunning views " +
				"of the city skyline or our tranquil gardens. Perfect for couples or solo travelers seeking a touch of luxury.",
			PricePerNight: 100,
			Images:        jsonList("deluxe-king-1", "deluxe-king-2"),
			Amenities:     jsonList("wifi", "tv", "air-conditioning", "mini-bar", "marble-bathroom", "coffee-maker"),
			Capacity:      2,
			Sqft:          450,
		},
		{
			ID:          9,
			Name:        "Executive Suite",
			Slug:        "executive-suite",
			Description: "A luxurious suite with a separate living area.",
			LongDescription: "Experience unparalleled luxury in our Executive Suite. This expansive suite offers a " +
				"private bedroom with a king-sized bed, a separate, elegantly furnished living room, and a spa-like " +
				"bathroom with a soaking tub. Ideal for business travelers or those desiring extra space and comfort.",
			PricePerNight: 7999,
			Images:        jsonList("executive-suite-1", "executive-suite-2"),
			Amenities:     jsonList("wifi", "tv", "air-conditioning", "mini-bar", "room-service", "private-balcony"),
			Capacity:      3,
			Sqft:          750,
		},
		{
			ID:          10,
			Name:        "Garden View Queen",
			Slug:        "garden-view-queen",
			Description: "A charming room with beautiful garden views.",
			LongDescription: "Wake up to serene views of our lush, manicured gardens in the Garden View Queen room. " +
				"This charming room features a comfortable queen-sized bed, a private balcony, and all the modern " +
				"amenities you need for a relaxing stay. A peaceful retreat from the everyday hustle.",
			PricePerNight: 3999,
			Images:        jsonList("garden-view-queen-1", "garden-view-queen-2"),
			Amenities:     jsonList("wifi", "tv", "air-conditioning", "balcony", "coffee-maker", "smart-tv"),
			Capacity:      2,
			Sqft:          400,
		},
		{
			ID:          11,
			Name:        "Presidential Suite",
			Slug:        "presidential-suite",
			Description: "The pinnacle of luxury with panoramic views.",
			LongDescription: "Our Presidential Suite is the epitome of opulence. Occupying the top floor, it boasts " +
				"panoramic views, a grand master bedroom, a separate dining area for eight, a private study, and a " +
				"dedicated butler service. Every detail is meticulously curated for an extraordinary experience.",
			PricePerNight: 4000,
			Images:        jsonList("presidential-suite-1", "presidential-suite-2"),
			Amenities:     jsonList("wifi", "tv", "air-conditioning", "mini-bar", "room-service", "butler-service", "private-balcony"),
			Capacity:      4,
			Sqft:          2200,
		},
	}
}

// RoomBySlug looks a room up in the in-memory catalog. Returns nil when the
// slug is unknown.
func RoomBySlug(slug string) *models.Room {
	rooms := Rooms()
	for i := range rooms {
		if rooms[i].Slug == slug {
			return &rooms[i]
		}
	}
	return nil
}

// Amenity, Testimonial and GalleryImage are display-only records with no
// lifecycle, so they live here rather than in the database.
type Amenity struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Image       string `json:"image"`
}

type Testimonial struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Avatar   string `json:"avatar"`
}

type GalleryImage struct {
	ID     string `json:"id"`
	Src    string `json:"src"`
	Alt    string `json:"alt"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Hint   string `json:"hint"`
}

func Amenities() []Amenity {
	return []Amenity{
		{ID: 1, Name: "High-Speed WiFi", Description: "Stay connected with free, high-speed internet access throughout the motel.", Icon: "wifi", Image: "amenity-wifi"},
		{ID: 2, Name: "On-Site Restaurant", Description: "Enjoy exquisite dining experiences at our renowned on-site restaurant.", Icon: "utensils", Image: "amenity-restaurant"},
		{ID: 3, Name: "Swimming Pool", Description: "Relax and unwind by our stunning outdoor swimming pool.", Icon: "waves", Image: "amenity-pool"},
		{ID: 4, Name: "Fitness Center", Description: "Keep up with your fitness routine in our state-of-the-art gym.", Icon: "dumbbell", Image: "amenity-gym"},
		{ID: 5, Name: "Spa & Wellness", Description: "Rejuvenate your body and mind at our luxurious spa.", Icon: "sparkles", Image: "amenity-spa"},
		{ID: 6, Name: "Free Parking", Description: "Complimentary and secure parking for all our guests.", Icon: "parking-circle", Image: "amenity-parking"},
		{ID: 7, Name: "24/7 Concierge", Description: "Our dedicated concierge team is available around the clock to assist you.", Icon: "concierge-bell", Image: "amenity-concierge"},
		{ID: 8, Name: "In-Room Coffee", Description: "Enjoy complimentary premium coffee and tea in the comfort of your room.", Icon: "coffee", Image: "amenity-coffee"},
	}
}

func Testimonials() []Testimonial {
	return []Testimonial{
		{ID: 1, Name: "Jane Doe", Location: "New York, USA", Rating: 5, Comment: "An absolutely unforgettable experience! The elegance and attention to detail were second to none. I felt like royalty.", Avatar: "avatar-jane-doe"},
		{ID: 2, Name: "John Smith", Location: "London, UK", Rating: 5, Comment: "The service was impeccable from the moment we arrived. The staff went above and beyond to make our stay special. We will be back!", Avatar: "avatar-john-smith"},
		{ID: 3, Name: "Emily Jones", Location: "Sydney, Australia", Rating: 5, Comment: "Rose Bowl Motel is a true oasis. The rooms are beautiful, the food is divine, and the atmosphere is so peaceful.", Avatar: "avatar-emily-jones"},
	}
}

func GalleryImages() []GalleryImage {
	return []GalleryImage{
		{ID: "gallery-1", Src: ImageURL("gallery-1"), Alt: "Elegant motel exterior facade", Width: 600, Height: 400, Hint: "motel exterior"},
		{ID: "gallery-2", Src: ImageURL("gallery-2"), Alt: "Interior of a fine dining restaurant", Width: 400, Height: 600, Hint: "restaurant interior"},
		{ID: "gallery-3", Src: ImageURL("gallery-3"), Alt: "Tranquil motel spa area", Width: 600, Height: 400, Hint: "spa area"},
		{ID: "gallery-4", Src: ImageURL("gallery-4"), Alt: "Modern cocktail bar with seating", Width: 600, Height: 400, Hint: "cocktail bar"},
		{ID: "gallery-5", Src: ImageURL("gallery-5"), Alt: "Outdoor wedding venue setup", Width: 400, Height: 600, Hint: "wedding venue"},
		{ID: "gallery-6", Src: ImageURL("gallery-6"), Alt: "Well-equipped motel fitness center", Width: 600, Height: 400, Hint: "fitness center"},
		{ID: "gallery-7", Src: ImageURL("gallery-7"), Alt: "Spacious conference room for meetings", Width: 600, Height: 400, Hint: "conference room"},
		{ID: "gallery-8", Src: ImageURL("gallery-8"), Alt: "Comfortable king-size guest room", Width: 600, Height: 400, Hint: "guest room"},
	}
}

// Attraction is one of the fixed nearby points of interest offered when the
// decision helper says the map should show them.
type Attraction struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Icon     string `json:"icon"`
}

func NearbyAttractions() []Attraction {
	return []Attraction{
		{Name: "Rose Bowl Stadium", Category: "Landmark", Icon: "landmark"},
		{Name: "The Gamble House", Category: "Architecture", Icon: "building"},
		{Name: "Old Pasadena", Category: "Dining & Shopping", Icon: "utensils"},
	}
}
