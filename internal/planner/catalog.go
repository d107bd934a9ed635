package planner

import (
	"JAPLAN_BACK-END/internal/models"
)

// DefaultCatalog returns the built-in sample catalog the palette is seeded
// with. The catalog is immutable reference data; callers only read it.
func DefaultCatalog() ([]models.Activity, []models.Restaurant) {
	return sampleActivities, sampleRestaurants
}

var sampleActivities = []models.Activity{
	{
		ID:          "act-1",
		Name:        "Fushimi Inari Shrine",
		Description: "Hike through thousands of vermilion torii gates up Mount Inari",
		Category:    "Sightseeing",
		Duration:    3,
		PriceRange:  "free",
		Location:    "Kyoto",
	},
	{
		ID:          "act-2",
		Name:        "teamLab Planets",
		Description: "Immersive digital art museum where you walk through water",
		Category:    "Museums",
		Duration:    2,
		PriceRange:  "medium",
		Location:    "Tokyo",
	},
	{
		ID:          "act-3",
		Name:        "Tsukiji Outer Market Tour",
		Description: "Guided morning walk through the food stalls of the outer market",
		Category:    "Food Tours",
		Duration:    2.5,
		PriceRange:  "low",
		Location:    "Tokyo",
	},
	{
		ID:          "act-4",
		Name:        "Mount Fuji Day Trip",
		Description: "Full-day excursion to the Fuji Five Lakes area with lake cruise",
		Category:    "Nature",
		Duration:    10,
		PriceRange:  "high",
		Location:    "Yamanashi",
	},
	{
		ID:          "act-5",
		Name:        "Shibuya Crossing & Harajuku Walk",
		Description: "Self-guided wander through Shibuya, Takeshita Street and Meiji Shrine",
		Category:    "Sightseeing",
		Duration:    4,
		PriceRange:  "free",
		Location:    "Tokyo",
	},
	{
		ID:          "act-6",
		Name:        "Sumo Morning Practice",
		Description: "Watch wrestlers train at a sumo stable in Ryogoku",
		Category:    "Culture",
		Duration:    2,
		PriceRange:  "medium",
		Location:    "Tokyo",
	},
	{
		ID:          "act-7",
		Name:        "Arashiyama Bamboo Grove",
		Description: "Walk the bamboo-lined paths and visit the Iwatayama monkey park",
		Category:    "Nature",
		Duration:    3,
		PriceRange:  "low",
		Location:    "Kyoto",
	},
	{
		ID:          "act-8",
		Name:        "Tea Ceremony Experience",
		Description: "Traditional tea ceremony with a tea master in a machiya townhouse",
		Category:    "Culture",
		Duration:    1.5,
		PriceRange:  "medium",
		Location:    "Kyoto",
	},
	{
		ID:          "act-9",
		Name:        "Ghibli Museum",
		Description: "Animation museum designed by Hayao Miyazaki in Mitaka",
		Category:    "Museums",
		Duration:    3,
		PriceRange:  "low",
		Location:    "Tokyo",
	},
	{
		ID:          "act-10",
		Name:        "Osaka Castle & Dotonbori Night Walk",
		Description: "Afternoon at the castle grounds followed by Dotonbori's neon canal",
		Category:    "Sightseeing",
		Duration:    5,
		PriceRange:  "low",
		Location:    "Osaka",
	},
}

var sampleRestaurants = []models.Restaurant{
	{
		ID:             "rest-1",
		Name:           "Sukiyabashi Ichiro",
		Description:    "Intimate omakase counter with seasonal Edomae sushi",
		Cuisine:        "Sushi",
		PriceRange:     "luxury",
		Location:       "Ginza, Tokyo",
		DietaryOptions: []string{"pescatarian"},
	},
	{
		ID:             "rest-2",
		Name:           "Ichiran Ramen",
		Description:    "Solo-booth tonkotsu ramen chain, order by ticket machine",
		Cuisine:        "Ramen",
		PriceRange:     "low",
		Location:       "Shibuya, Tokyo",
		DietaryOptions: []string{},
	},
	{
		ID:             "rest-3",
		Name:           "Uobei Genki Sushi",
		Description:    "High-speed conveyor sushi delivered by bullet-train tray",
		Cuisine:        "Sushi",
		PriceRange:     "low",
		Location:       "Shibuya, Tokyo",
		DietaryOptions: []string{"pescatarian", "gluten-free"},
	},
	{
		ID:             "rest-4",
		Name:           "Ain Soph Journey",
		Description:    "Plant-based curries, pancakes and burgers near the station",
		Cuisine:        "Vegan",
		PriceRange:     "medium",
		Location:       "Shinjuku, Tokyo",
		DietaryOptions: []string{"vegan", "vegetarian", "gluten-free"},
	},
	{
		ID:             "rest-5",
		Name:           "Katsukura Tonkatsu",
		Description:    "Kyoto tonkatsu house with grind-your-own sesame sauce",
		Cuisine:        "Tonkatsu",
		PriceRange:     "medium",
		Location:       "Kyoto Station",
		DietaryOptions: []string{},
	},
	{
		ID:             "rest-6",
		Name:           "Mizuno Okonomiyaki",
		Description:    "Family-run Dotonbori griddle serving okonomiyaki since 1945",
		Cuisine:        "Okonomiyaki",
		PriceRange:     "medium",
		Location:       "Osaka",
		DietaryOptions: []string{"vegetarian"},
	},
	{
		ID:             "rest-7",
		Name:           "Kikunoi Honten",
		Description:    "Three-star kaiseki in a garden setting below Kiyomizu",
		Cuisine:        "Kaiseki",
		PriceRange:     "luxury",
		Location:       "Higashiyama, Kyoto",
		DietaryOptions: []string{"vegetarian"},
	},
	{
		ID:             "rest-8",
		Name:           "Endo Sushi",
		Description:    "Morning nigiri at the Osaka fish market, standing room only",
		Cuisine:        "Sushi",
		PriceRange:     "high",
		Location:       "Osaka Central Market",
		DietaryOptions: []string{"pescatarian"},
	},
	{
		ID:             "rest-9",
		Name:           "Shoraian Tofu",
		Description:    "Yudofu restaurant hidden on the Arashiyama hillside",
		Cuisine:        "Shojin",
		PriceRange:     "high",
		Location:       "Arashiyama, Kyoto",
		DietaryOptions: []string{"vegetarian", "vegan"},
	},
	{
		ID:             "rest-10",
		Name:           "Harbs Cake Salon",
		Description:    "Towering mille crepe slices and seasonal fruit cakes",
		Cuisine:        "Cafe",
		PriceRange:     "low",
		Location:       "Umeda, Osaka",
		DietaryOptions: []string{"vegetarian"},
	},
}
