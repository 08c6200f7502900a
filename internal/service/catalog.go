package service

import (
	"fmt"

	"github.com/rehmoapp/rehmo/internal/domain"
)

// Built-in catalog, plan, and ad inventory seeded on first run. A handful of
// recipes per category carry the premium flag.

var builtinRecipes = []domain.Recipe{
	// Vegetarian.
	{
		ID:             "v1",
		Name:           "Moroccan Vegetable Tagine",
		Description:    "A fragrant and hearty vegetable stew cooked in a traditional clay pot with aromatic spices like cumin, coriander, and cinnamon.",
		Image:          "/images/recipes/v1.jpg",
		Region:         "North Africa",
		Category:       domain.CategoryVegetarian,
		PrepTime:       "45 minutes",
		Difficulty:     "Medium",
		KeyIngredients: []string{"Chickpeas", "Sweet Potatoes", "Carrots", "Tomatoes", "Couscous"},
	},
	{
		ID:             "v2",
		Name:           "Ethiopian Misir Wat",
		Description:    "A spicy red lentil stew seasoned with berbere spice mix, a staple in Ethiopian cuisine, typically served with injera bread.",
		Image:          "/images/recipes/v2.jpg",
		Region:         "East Africa",
		Category:       domain.CategoryVegetarian,
		PrepTime:       "40 minutes",
		Difficulty:     "Medium",
		KeyIngredients: []string{"Red Lentils", "Berbere Spice", "Onions", "Garlic", "Tomato Paste"},
	},
	{
		ID:             "v3",
		Name:           "Ghanaian Red Red",
		Description:    "A hearty bean stew made with black-eyed peas and palm oil, served with fried plantains. A popular street food in Ghana.",
		Image:          "/images/recipes/v3.jpg",
		Region:         "West Africa",
		Category:       domain.CategoryVegetarian,
		Premium:        true,
		PrepTime:       "1 hour",
		Difficulty:     "Medium",
		KeyIngredients: []string{"Black-eyed Peas", "Palm Oil", "Plantains", "Tomatoes", "Ginger"},
	},
	{
		ID:             "v4",
		Name:           "South African Chakalaka",
		Description:    "A spicy vegetable relish typically served with bread, pap, or stews. It's colorful, flavorful, and packed with vegetables.",
		Image:          "/images/recipes/v4.jpg",
		Region:         "South Africa",
		Category:       domain.CategoryVegetarian,
		PrepTime:       "30 minutes",
		Difficulty:     "Easy",
		KeyIngredients: []string{"Carrots", "Bell Peppers", "Onions", "Beans", "Curry Powder"},
	},
	{
		ID:             "v5",
		Name:           "Tunisian Shakshuka",
		Description:    "Eggs poached in a sauce of tomatoes, olive oil, peppers, onion, and garlic, commonly spiced with cumin, paprika, and cayenne pepper.",
		Image:          "/images/recipes/v5.jpg",
		Region:         "North Africa",
		Category:       domain.CategoryVegetarian,
		PrepTime:       "25 minutes",
		Difficulty:     "Easy",
		KeyIngredients: []string{"Eggs", "Tomatoes", "Bell Peppers", "Onions", "Cumin"},
	},
	{
		ID:             "v6",
		Name:           "Kenyan Irio",
		Description:    "A traditional Kenyan dish made from mashed potatoes, peas, corn, and sometimes spinach. Simple yet nutritious and filling.",
		Image:          "/images/recipes/v6.jpg",
		Region:         "East Africa",
		Category:       domain.CategoryVegetarian,
		PrepTime:       "35 minutes",
		Difficulty:     "Easy",
		KeyIngredients: []string{"Potatoes", "Peas", "Corn", "Spinach", "Onions"},
	},
	{
		ID:             "v7",
		Name:           "Nigerian Moin Moin",
		Description:    "A steamed bean pudding made from a mixture of washed and peeled black-eyed peas, onions, and fresh ground peppers.",
		Image:          "/images/recipes/v7.jpg",
		Region:         "West Africa",
		Category:       domain.CategoryVegetarian,
		Premium:        true,
		PrepTime:       "1 hour 30 minutes",
		Difficulty:     "Hard",
		KeyIngredients: []string{"Black-eyed Peas", "Bell Peppers", "Onions", "Vegetable Oil", "Scotch Bonnet"},
	},
	{
		ID:             "v8",
		Name:           "Zimbabwean Sadza with Greens",
		Description:    "Sadza is a staple food made from cornmeal, similar to polenta. Served with sautéed leafy greens like collards or kale.",
		Image:          "/images/recipes/v8.jpg",
		Region:         "Southern Africa",
		Category:       domain.CategoryVegetarian,
		PrepTime:       "40 minutes",
		Difficulty:     "Medium",
		KeyIngredients: []string{"Cornmeal", "Collard Greens", "Onions", "Tomatoes", "Peanut Butter"},
	},
	{
		ID:             "v9",
		Name:           "Egyptian Koshari",
		Description:    "Egypt's national dish consisting of rice, macaroni, and lentils mixed together, topped with a spiced tomato sauce and crispy onions.",
		Image:          "/images/recipes/v9.jpg",
		Region:         "North Africa",
		Category:       domain.CategoryVegetarian,
		PrepTime:       "1 hour",
		Difficulty:     "Medium",
		KeyIngredients: []string{"Rice", "Lentils", "Macaroni", "Chickpeas", "Crispy Onions"},
	},
	{
		ID:             "v10",
		Name:           "Algerian Chakchouka",
		Description:    "A flavorful dish of tomatoes, onions, and peppers, with eggs poached on top. Similar to shakshuka but with regional variations.",
		Image:          "/images/recipes/v10.jpg",
		Region:         "North Africa",
		Category:       domain.CategoryVegetarian,
		PrepTime:       "30 minutes",
		Difficulty:     "Easy",
		KeyIngredients: []string{"Eggs", "Tomatoes", "Bell Peppers", "Onions", "Harissa"},
	},
	{
		ID:             "v11",
		Name:           "Tanzanian Coconut Bean Soup",
		Description:    "A creamy and flavorful soup made with beans, coconut milk, and a blend of African spices. Perfect for a comforting meal.",
		Image:          "/images/recipes/v11.jpg",
		Region:         "East Africa",
		Category:       domain.CategoryVegetarian,
		Premium:        true,
		PrepTime:       "45 minutes",
		Difficulty:     "Medium",
		KeyIngredients: []string{"Kidney Beans", "Coconut Milk", "Tomatoes", "Curry Powder", "Spinach"},
	},
	{
		ID:             "v12",
		Name:           "Liberian Potato Greens",
		Description:    "A nutritious dish made with sweet potato leaves (or spinach), palm oil, and seasonings. Often served with rice.",
		Image:          "/images/recipes/v12.jpg",
		Region:         "West Africa",
		Category:       domain.CategoryVegetarian,
		PrepTime:       "40 minutes",
		Difficulty:     "Medium",
		KeyIngredients: []string{"Sweet Potato Leaves", "Palm Oil", "Onions", "Peppers", "Rice"},
	},

	// Non-vegetarian.
	{
		ID:             "nv1",
		Name:           "Nigerian Jollof Rice",
		Description:    "A one-pot rice dish cooked with tomatoes, peppers, and a variety of spices. Often served with chicken or beef.",
		Image:          "/images/recipes/nv1.jpg",
		Region:         "West Africa",
		Category:       domain.CategoryNonVegetarian,
		PrepTime:       "1 hour",
		Difficulty:     "Medium",
		KeyIngredients: []string{"Rice", "Tomatoes", "Bell Peppers", "Chicken", "Scotch Bonnet"},
	},
	{
		ID:             "nv2",
		Name:           "Moroccan Lamb Tagine",
		Description:    "Tender lamb slow-cooked with dried fruits, nuts, and aromatic spices in a traditional clay pot called a tagine.",
		Image:          "/images/recipes/nv2.jpg",
		Region:         "North Africa",
		Category:       domain.CategoryNonVegetarian,
		Premium:        true,
		PrepTime:       "2 hours 30 minutes",
		Difficulty:     "Hard",
		KeyIngredients: []string{"Lamb", "Apricots", "Almonds", "Cinnamon", "Honey"},
	},
	{
		ID:             "nv3",
		Name:           "Ethiopian Doro Wat",
		Description:    "A spicy chicken stew that is the national dish of Ethiopia, traditionally served with injera bread.",
		Image:          "/images/recipes/nv3.jpg",
		Region:         "East Africa",
		Category:       domain.CategoryNonVegetarian,
		PrepTime:       "1 hour 30 minutes",
		Difficulty:     "Medium",
		KeyIngredients: []string{"Chicken", "Berbere Spice", "Onions", "Hard-boiled Eggs", "Niter Kibbeh"},
	},
	{
		ID:             "nv4",
		Name:           "South African Bobotie",
		Description:    "A dish of spiced minced meat baked with an egg-based topping, combining sweet and savory flavors.",
		Image:          "/images/recipes/nv4.jpg",
		Region:         "South Africa",
		Category:       domain.CategoryNonVegetarian,
		PrepTime:       "1 hour 15 minutes",
		Difficulty:     "Medium",
		KeyIngredients: []string{"Ground Beef", "Curry Powder", "Dried Fruits", "Eggs", "Bread"},
	},
	{
		ID:             "nv5",
		Name:           "Senegalese Yassa Chicken",
		Description:    "Marinated chicken cooked with caramelized onions, lemon, and olives. A popular dish throughout West Africa.",
		Image:          "/images/recipes/nv5.jpg",
		Region:         "West Africa",
		Category:       domain.CategoryNonVegetarian,
		PrepTime:       "1 hour",
		Difficulty:     "Medium",
		KeyIngredients: []string{"Chicken", "Onions", "Lemon", "Dijon Mustard", "Olives"},
	},
	{
		ID:             "nv6",
		Name:           "Tanzanian Mchuzi wa Samaki",
		Description:    "A flavorful fish curry cooked with coconut milk, tomatoes, and a blend of spices. Popular along the East African coast.",
		Image:          "/images/recipes/nv6.jpg",
		Region:         "East Africa",
		Category:       domain.CategoryNonVegetarian,
		PrepTime:       "45 minutes",
		Difficulty:     "Medium",
		KeyIngredients: []string{"Fish", "Coconut Milk", "Tomatoes", "Curry Powder", "Lime"},
	},
	{
		ID:             "nv7",
		Name:           "Cameroonian Ndolé",
		Description:    "A stew made from bitter leaves, nuts, and fish or beef. It's considered the national dish of Cameroon.",
		Image:          "/images/recipes/nv7.jpg",
		Region:         "Central Africa",
		Category:       domain.CategoryNonVegetarian,
		Premium:        true,
		PrepTime:       "1 hour 30 minutes",
		Difficulty:     "Hard",
		KeyIngredients: []string{"Bitter Leaves", "Peanuts", "Beef", "Shrimp", "Onions"},
	},
	{
		ID:             "nv8",
		Name:           "Libyan Mbakbaka",
		Description:    "A pasta dish with a spicy tomato sauce and tender pieces of meat, typically lamb or beef.",
		Image:          "/images/recipes/nv8.jpg",
		Region:         "North Africa",
		Category:       domain.CategoryNonVegetarian,
		PrepTime:       "1 hour",
		Difficulty:     "Medium",
		KeyIngredients: []string{"Pasta", "Lamb", "Tomatoes", "Chickpeas", "Cumin"},
	},
	{
		ID:             "nv9",
		Name:           "Kenyan Nyama Choma",
		Description:    "Grilled meat (usually goat or beef) seasoned with a blend of spices. A popular dish at social gatherings.",
		Image:          "/images/recipes/nv9.jpg",
		Region:         "East Africa",
		Category:       domain.CategoryNonVegetarian,
		PrepTime:       "1 hour",
		Difficulty:     "Easy",
		KeyIngredients: []string{"Goat Meat", "Lemon", "Salt", "Pepper", "Chili"},
	},
	{
		ID:             "nv10",
		Name:           "Ghanaian Waakye",
		Description:    "A dish of rice and beans cooked together with millet leaves, which give it a distinctive color. Served with various accompaniments.",
		Image:          "/images/recipes/nv10.jpg",
		Region:         "West Africa",
		Category:       domain.CategoryNonVegetarian,
		Premium:        true,
		PrepTime:       "1 hour 30 minutes",
		Difficulty:     "Medium",
		KeyIngredients: []string{"Rice", "Black-eyed Peas", "Millet Leaves", "Fish", "Spaghetti"},
	},
	{
		ID:             "nv11",
		Name:           "Congolese Moambe Chicken",
		Description:    "A savory chicken dish cooked in a sauce made from palm butter, often considered the national dish of Congo.",
		Image:          "/images/recipes/nv11.jpg",
		Region:         "Central Africa",
		Category:       domain.CategoryNonVegetarian,
		PrepTime:       "1 hour 15 minutes",
		Difficulty:     "Medium",
		KeyIngredients: []string{"Chicken", "Palm Butter", "Onions", "Tomatoes", "Scotch Bonnet"},
	},
	{
		ID:             "nv12",
		Name:           "Somali Suqaar",
		Description:    "A quick-cooked meat dish with vegetables and Somali spices, typically served with rice or flatbread.",
		Image:          "/images/recipes/nv12.jpg",
		Region:         "East Africa",
		Category:       domain.CategoryNonVegetarian,
		PrepTime:       "30 minutes",
		Difficulty:     "Easy",
		KeyIngredients: []string{"Beef", "Bell Peppers", "Onions", "Cumin", "Coriander"},
	},

	// Drinks, desserts, and snacks.
	{
		ID:             "o1",
		Name:           "Moroccan Mint Tea",
		Description:    "A refreshing and sweet tea made with fresh mint leaves and sugar. An important part of Moroccan hospitality.",
		Image:          "/images/recipes/o1.jpg",
		Region:         "North Africa",
		Category:       domain.CategoryOther,
		PrepTime:       "15 minutes",
		Difficulty:     "Easy",
		KeyIngredients: []string{"Green Tea", "Fresh Mint", "Sugar", "Water"},
	},
	{
		ID:             "o2",
		Name:           "Ethiopian Coffee Ceremony",
		Description:    "A traditional coffee preparation and serving process that is central to Ethiopian social and cultural life.",
		Image:          "/images/recipes/o2.jpg",
		Region:         "East Africa",
		Category:       domain.CategoryOther,
		PrepTime:       "45 minutes",
		Difficulty:     "Medium",
		KeyIngredients: []string{"Coffee Beans", "Water", "Frankincense", "Popcorn"},
	},
	{
		ID:             "o3",
		Name:           "South African Malva Pudding",
		Description:    "A sweet and sticky sponge pudding of Cape Dutch origin, containing apricot jam and served with a hot cream sauce.",
		Image:          "/images/recipes/o3.jpg",
		Region:         "South Africa",
		Category:       domain.CategoryOther,
		Premium:        true,
		PrepTime:       "1 hour",
		Difficulty:     "Medium",
		KeyIngredients: []string{"Apricot Jam", "Butter", "Eggs", "Flour", "Cream"},
	},
	{
		ID:             "o4",
		Name:           "Nigerian Puff Puff",
		Description:    "Deep-fried dough balls, similar to doughnuts but with a unique African twist. A popular street food.",
		Image:          "/images/recipes/o4.jpg",
		Region:         "West Africa",
		Category:       domain.CategoryOther,
		PrepTime:       "40 minutes",
		Difficulty:     "Easy",
		KeyIngredients: []string{"Flour", "Yeast", "Sugar", "Nutmeg", "Vegetable Oil"},
	},
	{
		ID:             "o5",
		Name:           "Kenyan Mandazi",
		Description:    "A slightly sweet, triangular-shaped fried bread that's popular for breakfast or as a snack with tea.",
		Image:          "/images/recipes/o5.jpg",
		Region:         "East Africa",
		Category:       domain.CategoryOther,
		PrepTime:       "45 minutes",
		Difficulty:     "Medium",
		KeyIngredients: []string{"Flour", "Coconut Milk", "Sugar", "Cardamom", "Yeast"},
	},
	{
		ID:             "o6",
		Name:           "Tunisian Brik",
		Description:    "A thin pastry shell filled with egg, tuna, parsley, and onions, then deep-fried. A popular appetizer.",
		Image:          "/images/recipes/o6.jpg",
		Region:         "North Africa",
		Category:       domain.CategoryOther,
		Premium:        true,
		PrepTime:       "30 minutes",
		Difficulty:     "Medium",
		KeyIngredients: []string{"Warka Pastry", "Eggs", "Tuna", "Parsley", "Capers"},
	},
	{
		ID:             "o7",
		Name:           "Ghanaian Kelewele",
		Description:    "Spicy fried plantains seasoned with ginger, cayenne pepper, and other spices. A popular street food.",
		Image:          "/images/recipes/o7.jpg",
		Region:         "West Africa",
		Category:       domain.CategoryOther,
		PrepTime:       "25 minutes",
		Difficulty:     "Easy",
		KeyIngredients: []string{"Plantains", "Ginger", "Cayenne Pepper", "Cloves", "Anise"},
	},
	{
		ID:             "o8",
		Name:           "Egyptian Basbousa",
		Description:    "A sweet semolina cake soaked in simple syrup, often flavored with rose water or orange blossom water.",
		Image:          "/images/recipes/o8.jpg",
		Region:         "North Africa",
		Category:       domain.CategoryOther,
		PrepTime:       "50 minutes",
		Difficulty:     "Medium",
		KeyIngredients: []string{"Semolina", "Yogurt", "Sugar", "Coconut", "Rose Water"},
	},
	{
		ID:             "o9",
		Name:           "Tanzanian Vitumbua",
		Description:    "Sweet rice pancakes made from rice flour and coconut milk, popular for breakfast or as a snack.",
		Image:          "/images/recipes/o9.jpg",
		Region:         "East Africa",
		Category:       domain.CategoryOther,
		PrepTime:       "40 minutes",
		Difficulty:     "Medium",
		KeyIngredients: []string{"Rice Flour", "Coconut Milk", "Yeast", "Cardamom", "Sugar"},
	},
	{
		ID:             "o10",
		Name:           "Senegalese Thiakry",
		Description:    "A sweet couscous pudding mixed with yogurt, raisins, and spices. Often served as a dessert.",
		Image:          "/images/recipes/o10.jpg",
		Region:         "West Africa",
		Category:       domain.CategoryOther,
		PrepTime:       "30 minutes",
		Difficulty:     "Easy",
		KeyIngredients: []string{"Millet Couscous", "Yogurt", "Raisins", "Nutmeg", "Vanilla"},
	},
	{
		ID:             "o11",
		Name:           "Libyan Magrood",
		Description:    "Date-filled semolina cookies soaked in honey or sugar syrup. Popular during Ramadan and other celebrations.",
		Image:          "/images/recipes/o11.jpg",
		Region:         "North Africa",
		Category:       domain.CategoryOther,
		Premium:        true,
		PrepTime:       "1 hour 30 minutes",
		Difficulty:     "Hard",
		KeyIngredients: []string{"Semolina", "Dates", "Honey", "Vegetable Oil", "Orange Blossom Water"},
	},
	{
		ID:             "o12",
		Name:           "Somali Shaah",
		Description:    "Spiced tea with cardamom, cinnamon, cloves, and ginger. Often served with milk and sugar.",
		Image:          "/images/recipes/o12.jpg",
		Region:         "East Africa",
		Category:       domain.CategoryOther,
		PrepTime:       "15 minutes",
		Difficulty:     "Easy",
		KeyIngredients: []string{"Black Tea", "Cardamom", "Cinnamon", "Cloves", "Ginger"},
	},
}

// builtinMealPlan returns the 30-day plan. The first ten days are curated;
// the remaining premium days are exclusive placeholders, matching the
// published plan.
func builtinMealPlan() []domain.DayPlan {
	days := []domain.DayPlan{
		{
			Day:       1,
			Breakfast: domain.Meal{ID: "moroccan-mint-tea-with-msemen", Name: "Moroccan Mint Tea with Msemen", Description: "Start your day with sweet mint tea and flaky Moroccan pancakes filled with honey."},
			Lunch:     domain.Meal{ID: "tunisian-shakshuka", Name: "Tunisian Shakshuka", Description: "Eggs poached in a spiced tomato and pepper sauce, served with crusty bread."},
			Supper:    domain.Meal{ID: "nigerian-jollof-rice-with-chicken", Name: "Nigerian Jollof Rice with Chicken", Description: "Flavorful one-pot rice dish with tomatoes, peppers, and tender chicken pieces."},
		},
		{
			Day:       2,
			Breakfast: domain.Meal{ID: "ethiopian-genfo", Name: "Ethiopian Genfo", Description: "Barley porridge served with spiced clarified butter and berbere spice mix."},
			Lunch:     domain.Meal{ID: "moroccan-chickpea-salad", Name: "Moroccan Chickpea Salad", Description: "Refreshing salad with chickpeas, tomatoes, cucumbers, and a lemon-cumin dressing."},
			Supper:    domain.Meal{ID: "south-african-bobotie", Name: "South African Bobotie", Description: "Spiced minced meat baked with an egg-based topping, served with yellow rice."},
		},
		{
			Day:       3,
			Breakfast: domain.Meal{ID: "kenyan-mandazi", Name: "Kenyan Mandazi", Description: "Lightly sweetened fried bread flavored with cardamom and coconut milk."},
			Lunch:     domain.Meal{ID: "egyptian-koshari", Name: "Egyptian Koshari", Description: "A hearty mix of rice, lentils, and macaroni topped with spiced tomato sauce and crispy onions."},
			Supper:    domain.Meal{ID: "senegalese-yassa-chicken", Name: "Senegalese Yassa Chicken", Description: "Marinated chicken cooked with caramelized onions, lemon, and olives."},
		},
		{
			Day:       4,
			Breakfast: domain.Meal{ID: "algerian-baghrir", Name: "Algerian Baghrir", Description: "Thousand-hole pancakes served with honey and butter, perfect with mint tea."},
			Lunch:     domain.Meal{ID: "ghanaian-red-red", Name: "Ghanaian Red Red", Description: "Black-eyed pea stew with palm oil and fried plantains on the side."},
			Supper:    domain.Meal{ID: "moroccan-lamb-tagine", Name: "Moroccan Lamb Tagine", Description: "Slow-cooked lamb with dried fruits, nuts, and aromatic spices."},
		},
		{
			Day:       5,
			Breakfast: domain.Meal{ID: "nigerian-akara", Name: "Nigerian Akara", Description: "Deep-fried bean cakes made from black-eyed peas, served with a spicy sauce."},
			Lunch:     domain.Meal{ID: "ethiopian-misir-wat", Name: "Ethiopian Misir Wat", Description: "Spicy red lentil stew seasoned with berbere spice mix, served with injera bread."},
			Supper:    domain.Meal{ID: "tanzanian-mchuzi-wa-samaki", Name: "Tanzanian Mchuzi wa Samaki", Description: "Fish curry cooked with coconut milk, tomatoes, and a blend of spices."},
		},
		{
			Day:       6,
			Breakfast: domain.Meal{ID: "south-african-melktert", Name: "South African Melktert", Description: "Creamy milk tart with a hint of cinnamon, a beloved South African dessert."},
			Lunch:     domain.Meal{ID: "libyan-sharba-libiya", Name: "Libyan Sharba Libiya", Description: "Spiced lamb and vegetable soup with orzo pasta and aromatic herbs."},
			Supper:    domain.Meal{ID: "ethiopian-doro-wat", Name: "Ethiopian Doro Wat", Description: "Spicy chicken stew with hard-boiled eggs, a national dish of Ethiopia."},
		},
		{
			Day:       7,
			Breakfast: domain.Meal{ID: "moroccan-bissara", Name: "Moroccan Bissara", Description: "Creamy fava bean soup drizzled with olive oil and cumin, served with bread."},
			Lunch:     domain.Meal{ID: "kenyan-sukuma-wiki", Name: "Kenyan Sukuma Wiki", Description: "Sautéed collard greens with onions and spices, served with ugali (cornmeal porridge)."},
			Supper:    domain.Meal{ID: "cameroonian-ndole", Name: "Cameroonian Ndolé", Description: "Bitter leaf stew with ground peanuts, typically made with fish or beef."},
		},
		{
			Day:       8,
			Breakfast: domain.Meal{ID: "tunisian-lablabi", Name: "Tunisian Lablabi", Description: "Chickpea soup flavored with cumin and garlic, topped with bread and a poached egg."},
			Lunch:     domain.Meal{ID: "somali-sambusa", Name: "Somali Sambusa", Description: "Triangular pastries filled with spiced meat or vegetables, similar to samosas."},
			Supper:    domain.Meal{ID: "congolese-moambe-chicken", Name: "Congolese Moambe Chicken", Description: "Chicken cooked in a sauce made from palm butter, often considered the national dish of Congo."},
		},
		{
			Day:       9,
			Breakfast: domain.Meal{ID: "egyptian-ful-medames", Name: "Egyptian Ful Medames", Description: "Stewed fava beans seasoned with olive oil, lemon juice, and cumin."},
			Lunch:     domain.Meal{ID: "zimbabwean-sadza-with-greens", Name: "Zimbabwean Sadza with Greens", Description: "Cornmeal porridge served with sautéed leafy greens and tomatoes."},
			Supper:    domain.Meal{ID: "libyan-mbakbaka", Name: "Libyan Mbakbaka", Description: "Pasta dish with a spicy tomato sauce and tender pieces of meat."},
		},
		{
			Day:       10,
			Breakfast: domain.Meal{ID: "ghanaian-hausa-koko", Name: "Ghanaian Hausa Koko", Description: "Spiced millet porridge served with koose (bean cakes) or bread."},
			Lunch:     domain.Meal{ID: "rwandan-isombe", Name: "Rwandan Isombe", Description: "Cassava leaves stewed with eggplant, spinach, and peanuts."},
			Supper:    domain.Meal{ID: "kenyan-nyama-choma", Name: "Kenyan Nyama Choma", Description: "Grilled meat (usually goat or beef) seasoned with a blend of spices."},
		},
	}

	for day := 11; day <= PlanDays; day++ {
		days = append(days, domain.DayPlan{
			Day: day,
			Breakfast: domain.Meal{
				ID:          fmt.Sprintf("premium-breakfast-%d", day),
				Name:        fmt.Sprintf("Premium Breakfast %d", day),
				Description: "Exclusive breakfast recipe available only for premium subscribers.",
			},
			Lunch: domain.Meal{
				ID:          fmt.Sprintf("premium-lunch-%d", day),
				Name:        fmt.Sprintf("Premium Lunch %d", day),
				Description: "Exclusive lunch recipe available only for premium subscribers.",
			},
			Supper: domain.Meal{
				ID:          fmt.Sprintf("premium-supper-%d", day),
				Name:        fmt.Sprintf("Premium Supper %d", day),
				Description: "Exclusive dinner recipe available only for premium subscribers.",
			},
		})
	}
	return days
}

var builtinAds = []domain.Ad{
	{ID: "banner-1", Placement: domain.AdBanner, Title: "Premium Kitchen Knives", Description: "Professional chef knives for authentic African cooking", Image: "/images/ads/banner-1.jpg", Link: "#", CTA: "Shop Now", Category: "kitchen"},
	{ID: "banner-2", Placement: domain.AdBanner, Title: "African Spice Collection", Description: "Authentic spices imported directly from Africa", Image: "/images/ads/banner-2.jpg", Link: "#", CTA: "Order Today", Category: "ingredients"},
	{ID: "banner-3", Placement: domain.AdBanner, Title: "Cooking Classes Online", Description: "Learn traditional African cooking techniques", Image: "/images/ads/banner-3.jpg", Link: "#", CTA: "Enroll Now", Category: "education"},
	{ID: "sidebar-1", Placement: domain.AdSidebar, Title: "Traditional Cookware", Description: "Authentic African cooking pots and utensils", Image: "/images/ads/sidebar-1.jpg", Link: "#", CTA: "Browse Collection", Category: "kitchen"},
	{ID: "sidebar-2", Placement: domain.AdSidebar, Title: "Organic Ingredients", Description: "Fresh, organic African ingredients delivered", Image: "/images/ads/sidebar-2.jpg", Link: "#", CTA: "Shop Fresh", Category: "ingredients"},
	{ID: "sidebar-3", Placement: domain.AdSidebar, Title: "Recipe Books", Description: "Comprehensive African cookbook collection", Image: "/images/ads/sidebar-3.jpg", Link: "#", CTA: "Buy Books", Category: "education"},
	{ID: "inline-1", Placement: domain.AdInline, Title: "Meal Prep Containers", Description: "Perfect for storing your African meal preps", Image: "/images/ads/inline-1.jpg", Link: "#", CTA: "Get Yours", Category: "kitchen"},
	{ID: "inline-2", Placement: domain.AdInline, Title: "African Tea Collection", Description: "Premium teas from across the African continent", Image: "/images/ads/inline-2.jpg", Link: "#", CTA: "Try Now", Category: "beverages"},
	{ID: "inline-3", Placement: domain.AdInline, Title: "Cooking Masterclass", Description: "Master the art of African cuisine with expert chefs", Image: "/images/ads/inline-3.jpg", Link: "#", CTA: "Join Class", Category: "education"},
	{ID: "popup-1", Placement: domain.AdPopup, Title: "Limited Time Offer!", Description: "50% off on all African spice sets this week only", Image: "/images/ads/popup-1.jpg", Link: "#", CTA: "Claim Offer", Category: "promotion"},
}
