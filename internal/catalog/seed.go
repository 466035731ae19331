package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mesafina/mesafina-backend/pkg/db/models"
	"github.com/mesafina/mesafina-backend/pkg/types"
)

// seedRestaurants is the launch catalog. Per-seating capacity splits the
// room total evenly across seating types, remainder to the first.
var seedRestaurants = []models.Restaurant{
	{
		Name:            "Sakura Sky Lounge",
		Cuisines:        types.StringList{"Japanese", "Sushi"},
		Address:         "HSR Layout, Delhi",
		City:            "Delhi",
		CapacityMax:     50,
		SeatingTypes:    types.StringList{"rooftop", "outdoor"},
		SeatingCapacity: types.SeatingCapacity{"rooftop": 25, "outdoor": 25},
		OpeningHour:     "18:00",
		ClosingHour:     "23:30",
		Rating:          decimal.RequireFromString("4.6"),
	},
	{
		Name:            "Trattoria Roma",
		Cuisines:        types.StringList{"Italian", "Pasta"},
		Address:         "Connaught Place, Delhi",
		City:            "Delhi",
		CapacityMax:     60,
		SeatingTypes:    types.StringList{"indoor", "outdoor"},
		SeatingCapacity: types.SeatingCapacity{"indoor": 30, "outdoor": 30},
		OpeningHour:     "11:00",
		ClosingHour:     "23:00",
		Rating:          decimal.RequireFromString("4.4"),
	},
	{
		Name:            "Skyline Rooftop",
		Cuisines:        types.StringList{"Modern Indian", "Fusion", "Sushi"},
		Address:         "HSR Layout, Delhi",
		City:            "Delhi",
		CapacityMax:     120,
		SeatingTypes:    types.StringList{"rooftop", "private"},
		SeatingCapacity: types.SeatingCapacity{"rooftop": 60, "private": 60},
		OpeningHour:     "17:00",
		ClosingHour:     "01:00",
		Rating:          decimal.RequireFromString("4.7"),
	},
	{
		Name:            "Jazz & Dine",
		Cuisines:        types.StringList{"American", "Barbecue"},
		Address:         "Hauz Khas, Delhi",
		City:            "Delhi",
		CapacityMax:     80,
		SeatingTypes:    types.StringList{"indoor", "live-music"},
		SeatingCapacity: types.SeatingCapacity{"indoor": 40, "live-music": 40},
		OpeningHour:     "12:00",
		ClosingHour:     "23:00",
		Rating:          decimal.RequireFromString("4.1"),
	},
	{
		Name:            "La Petite",
		Cuisines:        types.StringList{"French", "Bakery"},
		Address:         "GK-II, Delhi",
		City:            "Delhi",
		CapacityMax:     25,
		SeatingTypes:    types.StringList{"indoor", "patio"},
		SeatingCapacity: types.SeatingCapacity{"indoor": 13, "patio": 12},
		OpeningHour:     "08:00",
		ClosingHour:     "21:00",
		Rating:          decimal.RequireFromString("4.8"),
	},
	{
		Name:            "Curry Leaf",
		Cuisines:        types.StringList{"North Indian", "Mughlai"},
		Address:         "Rajouri Garden, Delhi",
		City:            "Delhi",
		CapacityMax:     100,
		SeatingTypes:    types.StringList{"family", "indoor"},
		SeatingCapacity: types.SeatingCapacity{"family": 50, "indoor": 50},
		OpeningHour:     "11:00",
		ClosingHour:     "23:00",
		Rating:          decimal.RequireFromString("4.3"),
	},
	{
		Name:            "Bao Bar",
		Cuisines:        types.StringList{"Asian", "Chinese", "Dimsum"},
		Address:         "Khan Market, Delhi",
		City:            "Delhi",
		CapacityMax:     55,
		SeatingTypes:    types.StringList{"indoor", "casual"},
		SeatingCapacity: types.SeatingCapacity{"indoor": 28, "casual": 27},
		OpeningHour:     "12:00",
		ClosingHour:     "23:00",
		Rating:          decimal.RequireFromString("4.5"),
	},
	{
		Name:            "The Terrace Grill",
		Cuisines:        types.StringList{"Continental", "Steakhouse"},
		Address:         "CP, Delhi",
		City:            "Delhi",
		CapacityMax:     90,
		SeatingTypes:    types.StringList{"rooftop", "bar"},
		SeatingCapacity: types.SeatingCapacity{"rooftop": 45, "bar": 45},
		OpeningHour:     "17:00",
		ClosingHour:     "00:00",
		Rating:          decimal.RequireFromString("4.6"),
	},
	{
		Name:            "Tandoor Tales",
		Cuisines:        types.StringList{"Punjabi", "Tandoori"},
		Address:         "Karol Bagh, Delhi",
		City:            "Delhi",
		CapacityMax:     85,
		SeatingTypes:    types.StringList{"indoor", "family"},
		SeatingCapacity: types.SeatingCapacity{"indoor": 43, "family": 42},
		OpeningHour:     "11:00",
		ClosingHour:     "23:00",
		Rating:          decimal.RequireFromString("4.2"),
	},
	{
		Name:            "Masala Republic",
		Cuisines:        types.StringList{"Indian", "Fusion"},
		Address:         "Saket, Delhi",
		City:            "Delhi",
		CapacityMax:     70,
		SeatingTypes:    types.StringList{"fine-dine", "modern"},
		SeatingCapacity: types.SeatingCapacity{"fine-dine": 35, "modern": 35},
		OpeningHour:     "12:00",
		ClosingHour:     "23:30",
		Rating:          decimal.RequireFromString("4.5"),
	},
	{
		Name:            "The Bombay Brasserie",
		Cuisines:        types.StringList{"Indian", "Seafood"},
		Address:         "Bandra, Mumbai",
		City:            "Mumbai",
		CapacityMax:     95,
		SeatingTypes:    types.StringList{"indoor", "bar"},
		SeatingCapacity: types.SeatingCapacity{"indoor": 48, "bar": 47},
		OpeningHour:     "12:00",
		ClosingHour:     "00:00",
		Rating:          decimal.RequireFromString("4.6"),
	},
	{
		Name:            "Pasta Street",
		Cuisines:        types.StringList{"Italian"},
		Address:         "Lower Parel, Mumbai",
		City:            "Mumbai",
		CapacityMax:     50,
		SeatingTypes:    types.StringList{"indoor", "family"},
		SeatingCapacity: types.SeatingCapacity{"indoor": 25, "family": 25},
		OpeningHour:     "11:00",
		ClosingHour:     "23:00",
		Rating:          decimal.RequireFromString("4.3"),
	},
	{
		Name:            "Oceanside Diner",
		Cuisines:        types.StringList{"Seafood", "Continental"},
		Address:         "Juhu Beach, Mumbai",
		City:            "Mumbai",
		CapacityMax:     120,
		SeatingTypes:    types.StringList{"seaside", "outdoor"},
		SeatingCapacity: types.SeatingCapacity{"seaside": 60, "outdoor": 60},
		OpeningHour:     "18:00",
		ClosingHour:     "01:00",
		Rating:          decimal.RequireFromString("4.7"),
	},
	{
		Name:            "Saffron Soul",
		Cuisines:        types.StringList{"Indian", "Biryani"},
		Address:         "Andheri, Mumbai",
		City:            "Mumbai",
		CapacityMax:     75,
		SeatingTypes:    types.StringList{"buffet", "indoor"},
		SeatingCapacity: types.SeatingCapacity{"buffet": 38, "indoor": 37},
		OpeningHour:     "12:00",
		ClosingHour:     "23:30",
		Rating:          decimal.RequireFromString("4.4"),
	},
	{
		Name:            "Cafe de Arts",
		Cuisines:        types.StringList{"Cafe", "Bakery"},
		Address:         "Colaba, Mumbai",
		City:            "Mumbai",
		CapacityMax:     40,
		SeatingTypes:    types.StringList{"art-cafe", "casual"},
		SeatingCapacity: types.SeatingCapacity{"art-cafe": 20, "casual": 20},
		OpeningHour:     "08:00",
		ClosingHour:     "21:00",
		Rating:          decimal.RequireFromString("4.5"),
	},
	{
		Name:            "Zen Izakaya",
		Cuisines:        types.StringList{"Japanese", "Sushi"},
		Address:         "BKC, Mumbai",
		City:            "Mumbai",
		CapacityMax:     60,
		SeatingTypes:    types.StringList{"rooftop", "sushi-bar"},
		SeatingCapacity: types.SeatingCapacity{"rooftop": 30, "sushi-bar": 30},
		OpeningHour:     "18:00",
		ClosingHour:     "00:00",
		Rating:          decimal.RequireFromString("4.7"),
	},
	{
		Name:            "Tap & Barrel",
		Cuisines:        types.StringList{"Pub", "Finger Food"},
		Address:         "Powai, Mumbai",
		City:            "Mumbai",
		CapacityMax:     110,
		SeatingTypes:    types.StringList{"pub", "sports"},
		SeatingCapacity: types.SeatingCapacity{"pub": 55, "sports": 55},
		OpeningHour:     "17:00",
		ClosingHour:     "01:00",
		Rating:          decimal.RequireFromString("4.3"),
	},
	{
		Name:            "Le Ciel",
		Cuisines:        types.StringList{"French", "Continental"},
		Address:         "Nariman Point, Mumbai",
		City:            "Mumbai",
		CapacityMax:     90,
		SeatingTypes:    types.StringList{"fine-dine", "romantic"},
		SeatingCapacity: types.SeatingCapacity{"fine-dine": 45, "romantic": 45},
		OpeningHour:     "19:00",
		ClosingHour:     "23:30",
		Rating:          decimal.RequireFromString("4.8"),
	},
	{
		Name:            "Kebab Kingdom",
		Cuisines:        types.StringList{"North Indian", "Grill"},
		Address:         "Kurla, Mumbai",
		City:            "Mumbai",
		CapacityMax:     80,
		SeatingTypes:    types.StringList{"casual", "family"},
		SeatingCapacity: types.SeatingCapacity{"casual": 40, "family": 40},
		OpeningHour:     "11:00",
		ClosingHour:     "23:00",
		Rating:          decimal.RequireFromString("4.2"),
	},
	{
		Name:            "Green Bowl",
		Cuisines:        types.StringList{"Vegan", "Healthy"},
		Address:         "Bandra, Mumbai",
		City:            "Mumbai",
		CapacityMax:     45,
		SeatingTypes:    types.StringList{"indoor", "garden"},
		SeatingCapacity: types.SeatingCapacity{"indoor": 23, "garden": 22},
		OpeningHour:     "09:00",
		ClosingHour:     "22:00",
		Rating:          decimal.RequireFromString("4.5"),
	},
	{
		Name:            "Cloud 9 Terrace",
		Cuisines:        types.StringList{"Continental", "Fusion"},
		Address:         "Indiranagar, Bengaluru",
		City:            "Bengaluru",
		CapacityMax:     100,
		SeatingTypes:    types.StringList{"rooftop", "bar"},
		SeatingCapacity: types.SeatingCapacity{"rooftop": 50, "bar": 50},
		OpeningHour:     "18:00",
		ClosingHour:     "00:00",
		Rating:          decimal.RequireFromString("4.6"),
	},
	{
		Name:            "Rasa Rasoi",
		Cuisines:        types.StringList{"South Indian", "Traditional"},
		Address:         "Jayanagar, Bengaluru",
		City:            "Bengaluru",
		CapacityMax:     60,
		SeatingTypes:    types.StringList{"indoor", "family"},
		SeatingCapacity: types.SeatingCapacity{"indoor": 30, "family": 30},
		OpeningHour:     "07:30",
		ClosingHour:     "22:30",
		Rating:          decimal.RequireFromString("4.4"),
	},
	{
		Name:            "Grill House 88",
		Cuisines:        types.StringList{"BBQ", "Steakhouse"},
		Address:         "Koramangala, Bengaluru",
		City:            "Bengaluru",
		CapacityMax:     85,
		SeatingTypes:    types.StringList{"outdoor", "barbecue"},
		SeatingCapacity: types.SeatingCapacity{"outdoor": 43, "barbecue": 42},
		OpeningHour:     "12:00",
		ClosingHour:     "23:00",
		Rating:          decimal.RequireFromString("4.5"),
	},
	{
		Name:            "Tapri Tales",
		Cuisines:        types.StringList{"Cafe", "Tea"},
		Address:         "Whitefield, Bengaluru",
		City:            "Bengaluru",
		CapacityMax:     40,
		SeatingTypes:    types.StringList{"indoor", "casual"},
		SeatingCapacity: types.SeatingCapacity{"indoor": 20, "casual": 20},
		OpeningHour:     "08:00",
		ClosingHour:     "21:00",
		Rating:          decimal.RequireFromString("4.3"),
	},
	{
		Name:            "The Wok Lab",
		Cuisines:        types.StringList{"Asian", "Thai"},
		Address:         "HSR Layout, Bengaluru",
		City:            "Bengaluru",
		CapacityMax:     70,
		SeatingTypes:    types.StringList{"indoor", "family"},
		SeatingCapacity: types.SeatingCapacity{"indoor": 35, "family": 35},
		OpeningHour:     "11:00",
		ClosingHour:     "23:00",
		Rating:          decimal.RequireFromString("4.4"),
	},
	{
		Name:            "Elora Lounge",
		Cuisines:        types.StringList{"Mediterranean", "Tapas"},
		Address:         "Indiranagar, Bengaluru",
		City:            "Bengaluru",
		CapacityMax:     120,
		SeatingTypes:    types.StringList{"rooftop", "live-music"},
		SeatingCapacity: types.SeatingCapacity{"rooftop": 60, "live-music": 60},
		OpeningHour:     "17:00",
		ClosingHour:     "01:00",
		Rating:          decimal.RequireFromString("4.7"),
	},
	{
		Name:            "Cafe Nilgiri",
		Cuisines:        types.StringList{"Coffee", "Desserts"},
		Address:         "MG Road, Bengaluru",
		City:            "Bengaluru",
		CapacityMax:     30,
		SeatingTypes:    types.StringList{"cafe", "quiet"},
		SeatingCapacity: types.SeatingCapacity{"cafe": 15, "quiet": 15},
		OpeningHour:     "09:00",
		ClosingHour:     "22:00",
		Rating:          decimal.RequireFromString("4.6"),
	},
	{
		Name:            "Korma Kafe",
		Cuisines:        types.StringList{"Indian", "Mughlai"},
		Address:         "BTM Layout, Bengaluru",
		City:            "Bengaluru",
		CapacityMax:     75,
		SeatingTypes:    types.StringList{"indoor", "buffet"},
		SeatingCapacity: types.SeatingCapacity{"indoor": 38, "buffet": 37},
		OpeningHour:     "12:00",
		ClosingHour:     "23:00",
		Rating:          decimal.RequireFromString("4.3"),
	},
	{
		Name:            "Urban Spice",
		Cuisines:        types.StringList{"Continental", "Fusion"},
		Address:         "JP Nagar, Bengaluru",
		City:            "Bengaluru",
		CapacityMax:     90,
		SeatingTypes:    types.StringList{"fine-dine", "family"},
		SeatingCapacity: types.SeatingCapacity{"fine-dine": 45, "family": 45},
		OpeningHour:     "12:00",
		ClosingHour:     "23:30",
		Rating:          decimal.RequireFromString("4.5"),
	},
	{
		Name:            "The Sizzler Pit",
		Cuisines:        types.StringList{"Sizzlers", "Grill"},
		Address:         "Koramangala, Bengaluru",
		City:            "Bengaluru",
		CapacityMax:     70,
		SeatingTypes:    types.StringList{"casual", "indoor"},
		SeatingCapacity: types.SeatingCapacity{"casual": 35, "indoor": 35},
		OpeningHour:     "11:00",
		ClosingHour:     "23:00",
		Rating:          decimal.RequireFromString("4.2"),
	},
	{
		Name:            "Little Italy",
		Cuisines:        types.StringList{"Italian", "Pizza"},
		Address:         "Koregaon Park, Pune",
		City:            "Pune",
		CapacityMax:     50,
		SeatingTypes:    types.StringList{"indoor", "family"},
		SeatingCapacity: types.SeatingCapacity{"indoor": 25, "family": 25},
		OpeningHour:     "11:00",
		ClosingHour:     "23:00",
		Rating:          decimal.RequireFromString("4.5"),
	},
	{
		Name:            "BBQ Ville",
		Cuisines:        types.StringList{"BBQ", "Grill"},
		Address:         "Viman Nagar, Pune",
		City:            "Pune",
		CapacityMax:     100,
		SeatingTypes:    types.StringList{"outdoor", "barbecue"},
		SeatingCapacity: types.SeatingCapacity{"outdoor": 50, "barbecue": 50},
		OpeningHour:     "12:00",
		ClosingHour:     "23:30",
		Rating:          decimal.RequireFromString("4.4"),
	},
	{
		Name:            "The French Door",
		Cuisines:        types.StringList{"French", "European"},
		Address:         "Baner, Pune",
		City:            "Pune",
		CapacityMax:     60,
		SeatingTypes:    types.StringList{"patio", "romantic"},
		SeatingCapacity: types.SeatingCapacity{"patio": 30, "romantic": 30},
		OpeningHour:     "18:00",
		ClosingHour:     "23:00",
		Rating:          decimal.RequireFromString("4.6"),
	},
	{
		Name:            "Poha Junction",
		Cuisines:        types.StringList{"Maharashtrian", "Breakfast"},
		Address:         "Kothrud, Pune",
		City:            "Pune",
		CapacityMax:     35,
		SeatingTypes:    types.StringList{"casual", "cafe"},
		SeatingCapacity: types.SeatingCapacity{"casual": 18, "cafe": 17},
		OpeningHour:     "07:00",
		ClosingHour:     "12:00",
		Rating:          decimal.RequireFromString("4.3"),
	},
	{
		Name:            "The Spice Den",
		Cuisines:        types.StringList{"Indian", "Chinese"},
		Address:         "Hinjewadi, Pune",
		City:            "Pune",
		CapacityMax:     90,
		SeatingTypes:    types.StringList{"indoor", "family"},
		SeatingCapacity: types.SeatingCapacity{"indoor": 45, "family": 45},
		OpeningHour:     "11:00",
		ClosingHour:     "23:00",
		Rating:          decimal.RequireFromString("4.2"),
	},
	{
		Name:            "Biryani Mahal",
		Cuisines:        types.StringList{"Hyderabadi", "Biryani"},
		Address:         "Banjara Hills, Hyderabad",
		City:            "Hyderabad",
		CapacityMax:     120,
		SeatingTypes:    types.StringList{"indoor", "family"},
		SeatingCapacity: types.SeatingCapacity{"indoor": 60, "family": 60},
		OpeningHour:     "11:00",
		ClosingHour:     "23:30",
		Rating:          decimal.RequireFromString("4.7"),
	},
	{
		Name:            "Noodle Republic",
		Cuisines:        types.StringList{"Asian", "Chinese"},
		Address:         "Hitech City, Hyderabad",
		City:            "Hyderabad",
		CapacityMax:     75,
		SeatingTypes:    types.StringList{"indoor", "casual"},
		SeatingCapacity: types.SeatingCapacity{"indoor": 38, "casual": 37},
		OpeningHour:     "12:00",
		ClosingHour:     "23:00",
		Rating:          decimal.RequireFromString("4.3"),
	},
	{
		Name:            "Kebab-e-Khaas",
		Cuisines:        types.StringList{"North Indian", "Grill"},
		Address:         "Secunderabad, Hyderabad",
		City:            "Hyderabad",
		CapacityMax:     90,
		SeatingTypes:    types.StringList{"indoor", "barbecue"},
		SeatingCapacity: types.SeatingCapacity{"indoor": 45, "barbecue": 45},
		OpeningHour:     "11:00",
		ClosingHour:     "23:30",
		Rating:          decimal.RequireFromString("4.5"),
	},
	{
		Name:            "Sky High Bistro",
		Cuisines:        types.StringList{"Continental", "Bar"},
		Address:         "Gachibowli, Hyderabad",
		City:            "Hyderabad",
		CapacityMax:     150,
		SeatingTypes:    types.StringList{"rooftop", "live-music"},
		SeatingCapacity: types.SeatingCapacity{"rooftop": 75, "live-music": 75},
		OpeningHour:     "18:00",
		ClosingHour:     "01:00",
		Rating:          decimal.RequireFromString("4.8"),
	},
	{
		Name:            "The Sweet Spot",
		Cuisines:        types.StringList{"Desserts", "Bakery"},
		Address:         "Jubilee Hills, Hyderabad",
		City:            "Hyderabad",
		CapacityMax:     40,
		SeatingTypes:    types.StringList{"cafe", "casual"},
		SeatingCapacity: types.SeatingCapacity{"cafe": 20, "casual": 20},
		OpeningHour:     "09:00",
		ClosingHour:     "21:00",
		Rating:          decimal.RequireFromString("4.6"),
	},
	{
		Name:            "Marina Bay Diner",
		Cuisines:        types.StringList{"Seafood", "South Indian"},
		Address:         "Besant Nagar, Chennai",
		City:            "Chennai",
		CapacityMax:     100,
		SeatingTypes:    types.StringList{"seaside", "outdoor"},
		SeatingCapacity: types.SeatingCapacity{"seaside": 50, "outdoor": 50},
		OpeningHour:     "12:00",
		ClosingHour:     "23:30",
		Rating:          decimal.RequireFromString("4.6"),
	},
	{
		Name:            "Idli Express",
		Cuisines:        types.StringList{"South Indian", "Fast Food"},
		Address:         "T Nagar, Chennai",
		City:            "Chennai",
		CapacityMax:     30,
		SeatingTypes:    types.StringList{"casual", "takeaway"},
		SeatingCapacity: types.SeatingCapacity{"casual": 15, "takeaway": 15},
		OpeningHour:     "06:30",
		ClosingHour:     "22:00",
		Rating:          decimal.RequireFromString("4.2"),
	},
	{
		Name:            "Bella Napoli",
		Cuisines:        types.StringList{"Italian", "Pizza"},
		Address:         "Nungambakkam, Chennai",
		City:            "Chennai",
		CapacityMax:     65,
		SeatingTypes:    types.StringList{"indoor", "family"},
		SeatingCapacity: types.SeatingCapacity{"indoor": 33, "family": 32},
		OpeningHour:     "12:00",
		ClosingHour:     "23:00",
		Rating:          decimal.RequireFromString("4.5"),
	},
	{
		Name:            "Spice Route",
		Cuisines:        types.StringList{"Indian", "Thai"},
		Address:         "Velachery, Chennai",
		City:            "Chennai",
		CapacityMax:     85,
		SeatingTypes:    types.StringList{"fine-dine", "romantic"},
		SeatingCapacity: types.SeatingCapacity{"fine-dine": 43, "romantic": 42},
		OpeningHour:     "12:00",
		ClosingHour:     "23:00",
		Rating:          decimal.RequireFromString("4.4"),
	},
	{
		Name:            "The Choco Room",
		Cuisines:        types.StringList{"Cafe", "Desserts"},
		Address:         "Anna Nagar, Chennai",
		City:            "Chennai",
		CapacityMax:     40,
		SeatingTypes:    types.StringList{"cafe", "casual"},
		SeatingCapacity: types.SeatingCapacity{"cafe": 20, "casual": 20},
		OpeningHour:     "10:00",
		ClosingHour:     "22:00",
		Rating:          decimal.RequireFromString("4.3"),
	},
	{
		Name:            "Rooftop Mirage",
		Cuisines:        types.StringList{"Sushi", "Japanese"},
		Address:         "HSR Layout, Bengaluru",
		City:            "Bengaluru",
		CapacityMax:     45,
		SeatingTypes:    types.StringList{"rooftop", "romantic"},
		SeatingCapacity: types.SeatingCapacity{"rooftop": 23, "romantic": 22},
		OpeningHour:     "18:00",
		ClosingHour:     "23:30",
		Rating:          decimal.RequireFromString("4.6"),
	},
	{
		Name:            "Monsoon Grill",
		Cuisines:        types.StringList{"Seafood", "Grill"},
		Address:         "Bandra, Mumbai",
		City:            "Mumbai",
		CapacityMax:     85,
		SeatingTypes:    types.StringList{"outdoor", "seaside"},
		SeatingCapacity: types.SeatingCapacity{"outdoor": 43, "seaside": 42},
		OpeningHour:     "17:00",
		ClosingHour:     "00:30",
		Rating:          decimal.RequireFromString("4.4"),
	},
	{
		Name:            "Heritage Bites",
		Cuisines:        types.StringList{"Indian", "Street Food"},
		Address:         "Old Delhi, Delhi",
		City:            "Delhi",
		CapacityMax:     60,
		SeatingTypes:    types.StringList{"casual", "outdoor"},
		SeatingCapacity: types.SeatingCapacity{"casual": 30, "outdoor": 30},
		OpeningHour:     "10:00",
		ClosingHour:     "23:00",
		Rating:          decimal.RequireFromString("4.2"),
	},
	{
		Name:            "Vine & Dine",
		Cuisines:        types.StringList{"Mediterranean", "Wine Bar"},
		Address:         "Koramangala, Bengaluru",
		City:            "Bengaluru",
		CapacityMax:     55,
		SeatingTypes:    types.StringList{"indoor", "wine-bar"},
		SeatingCapacity: types.SeatingCapacity{"indoor": 28, "wine-bar": 27},
		OpeningHour:     "18:00",
		ClosingHour:     "23:30",
		Rating:          decimal.RequireFromString("4.7"),
	},
	{
		Name:            "Sunset Cafe",
		Cuisines:        types.StringList{"Cafe", "Light Bites"},
		Address:         "Juhu, Mumbai",
		City:            "Mumbai",
		CapacityMax:     35,
		SeatingTypes:    types.StringList{"seaside", "patio"},
		SeatingCapacity: types.SeatingCapacity{"seaside": 18, "patio": 17},
		OpeningHour:     "07:00",
		ClosingHour:     "21:00",
		Rating:          decimal.RequireFromString("4.4"),
	},
}

// Seed inserts the launch catalog when the restaurants table is empty.
func Seed(ctx context.Context, db *gorm.DB) (int, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Restaurant{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}
	rows := make([]models.Restaurant, len(seedRestaurants))
	copy(rows, seedRestaurants)
	for i := range rows {
		rows[i].ID = uuid.New()
	}
	if err := db.WithContext(ctx).Create(&rows).Error; err != nil {
		return 0, err
	}
	return len(rows), nil
}
