package services

import (
	"backend/models"

	"github.com/shopspring/decimal"
)

// CatalogFoods returns the bundled nutrition catalog (per standard
// serving). It seeds the food_items table on first boot so autocomplete
// works out of the box.
func CatalogFoods() []models.FoodItem {
	d := func(v string) decimal.Decimal { return decimal.RequireFromString(v) }

	food := func(name, local string, cal int, protein, carbs, fats, category string) models.FoodItem {
		return models.FoodItem{
			Name:      name,
			LocalName: local,
			Calories:  cal,
			ProteinG:  d(protein),
			CarbsG:    d(carbs),
			FatsG:     d(fats),
			Category:  category,
		}
	}

	return []models.FoodItem{
		// vegetables
		food("Spinach", "Palak", 23, "2.9", "3.6", "0.4", "vegetable"),
		food("Brinjal", "Vankaya", 25, "1.0", "6.0", "0.2", "vegetable"),
		food("Carrot", "Gajjar", 41, "0.9", "10.0", "0.2", "vegetable"),
		food("Tomato", "Tamatar", 18, "0.9", "3.9", "0.2", "vegetable"),
		food("Cucumber", "Kheera", 16, "0.7", "3.6", "0.1", "vegetable"),
		food("Capsicum", "Simla Mirch", 31, "1.0", "6.0", "0.3", "vegetable"),
		food("Onion", "Pyaz", 40, "1.1", "9.3", "0.1", "vegetable"),
		food("Cauliflower", "Gobi", 25, "1.9", "5.0", "0.3", "vegetable"),
		food("Cabbage", "Patta Gobi", 25, "1.3", "5.8", "0.1", "vegetable"),
		food("Potato", "Aloo", 77, "2.0", "17.5", "0.1", "vegetable"),
		food("Okra", "Bendakaya", 33, "1.9", "7.5", "0.2", "vegetable"),
		food("Sweet Potato", "Shakarkandi", 86, "1.6", "20.1", "0.1", "vegetable"),
		food("Beetroot", "Chukandar", 43, "1.6", "9.6", "0.2", "vegetable"),
		food("Pumpkin", "Kaddu", 26, "1.0", "6.5", "0.1", "vegetable"),
		food("Bottle Gourd", "Lauki", 14, "0.6", "3.4", "0.0", "vegetable"),
		food("Bitter Gourd", "Karela", 17, "1.0", "3.7", "0.2", "vegetable"),
		food("Radish", "Mooli", 16, "0.7", "3.4", "0.1", "vegetable"),
		food("Mushroom", "Khumb", 22, "3.1", "3.3", "0.3", "vegetable"),
		food("Green Beans", "Beans", 31, "1.8", "7.0", "0.2", "vegetable"),
		food("Green Peas", "Matar", 81, "5.4", "14.5", "0.4", "vegetable"),
		food("Corn", "Makka", 86, "3.3", "19.0", "1.4", "vegetable"),
		food("Fenugreek Leaves", "Methi", 49, "4.4", "6.0", "0.9", "vegetable"),
		food("Drumstick", "Moringa", 37, "2.1", "8.5", "0.2", "vegetable"),
		food("Garlic", "Lehsun", 149, "6.4", "33.1", "0.5", "vegetable"),
		food("Ginger", "Adrak", 80, "1.8", "17.8", "0.8", "vegetable"),

		// legumes and pulses
		food("Chickpeas", "Chana", 164, "8.9", "27.4", "2.6", "legume"),
		food("Kidney Beans", "Rajma", 127, "8.7", "22.8", "0.5", "legume"),
		food("Mung Beans", "Green Moong", 105, "7.0", "19.0", "0.4", "legume"),
		food("Red Lentils", "Masoor Dal", 116, "9.0", "20.0", "0.4", "legume"),
		food("Pigeon Peas", "Toor Dal", 335, "22.0", "62.0", "1.5", "legume"),
		food("Black Gram", "Urad Dal", 341, "25.0", "59.0", "1.6", "legume"),
		food("Split Chickpeas", "Chana Dal", 360, "22.0", "60.0", "5.6", "legume"),
		food("Soybean", "", 446, "36.0", "30.0", "20.0", "legume"),
		food("Peanuts", "Moongphali", 567, "25.8", "16.1", "49.2", "legume"),

		// street food
		food("Samosa (Vegetable)", "", 252, "5.0", "27.0", "14.0", "street food"),
		food("Samosa (Paneer)", "", 268, "7.0", "26.0", "15.5", "street food"),
		food("Kachori (Dal)", "", 280, "6.0", "30.0", "15.0", "street food"),
		food("Pakora (Chicken)", "", 215, "14.0", "12.0", "13.5", "street food"),
		food("Aloo Tikki", "", 180, "3.5", "25.0", "7.0", "street food"),
		food("Ragda Pattice", "", 185, "5.5", "27.0", "6.0", "street food"),
		food("Papri Chaat", "", 195, "5.0", "28.0", "6.5", "street food"),
		food("Dahi Bhalla", "", 150, "6.0", "20.0", "5.5", "street food"),
		food("Kathi Roll (Paneer)", "", 295, "10.0", "34.0", "12.5", "street food"),
		food("Kathi Roll (Egg)", "", 275, "13.0", "30.0", "11.0", "street food"),
		food("Seekh Kebab Roll", "", 285, "16.0", "27.0", "13.5", "street food"),
		food("Frankie (Chicken)", "", 310, "16.0", "35.0", "12.0", "street food"),
		food("Spring Roll (Veg)", "", 185, "5.5", "25.0", "6.5", "street food"),
		food("Spring Roll (Chicken)", "", 205, "10.0", "22.0", "8.5", "street food"),

		// staples
		food("Cooked Rice", "Chawal", 130, "2.7", "28.0", "0.3", "staple"),
		food("Chapati", "Roti", 104, "3.1", "20.0", "1.7", "staple"),
		food("Boiled Egg", "Anda", 78, "6.3", "0.6", "5.3", "staple"),
		food("Paneer", "", 265, "18.3", "1.2", "20.8", "staple"),
		food("Curd", "Dahi", 98, "11.0", "3.4", "4.3", "staple"),
		food("Banana", "Kela", 89, "1.1", "22.8", "0.3", "fruit"),
		food("Apple", "Seb", 52, "0.3", "13.8", "0.2", "fruit"),
		food("Mango", "Aam", 60, "0.8", "15.0", "0.4", "fruit"),
	}
}
