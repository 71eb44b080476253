// Package seed holds the fixture data loaded by the seed endpoint.
package seed

// UserData is a fixture account. Password is plaintext here and hashed at
// insert time.
type UserData struct {
	Email    string
	Password string
	FullName string
	Roles    []string
}

// ProductData is a fixture catalog item.
type ProductData struct {
	Title       string
	Description string
	Price       float64
	Stock       int
	Sizes       []string
	Gender      string
	Tags        []string
	Images      []string
}

// Users returns the fixture accounts. The first user is the admin that
// owns the seeded products.
func Users() []UserData {
	return []UserData{
		{
			Email:    "admin@tokobaju.id",
			Password: "Admin123",
			FullName: "Admin Tokobaju",
			Roles:    []string{"admin", "super-user", "user"},
		},
		{
			Email:    "budi@tokobaju.id",
			Password: "Budi1234",
			FullName: "Budi Santoso",
			Roles:    []string{"user"},
		},
	}
}

// Products returns the fixture catalog.
func Products() []ProductData {
	return []ProductData{
		{
			Title:       "Men's Classic Tee",
			Description: "Plain cotton tee with a relaxed fit.",
			Price:       19.99,
			Stock:       40,
			Sizes:       []string{"S", "M", "L", "XL"},
			Gender:      "men",
			Tags:        []string{"shirt", "cotton"},
			Images:      []string{"mens-classic-tee-1.jpg", "mens-classic-tee-2.jpg"},
		},
		{
			Title:       "Women's Cropped Hoodie",
			Description: "Fleece-lined cropped hoodie.",
			Price:       39.99,
			Stock:       25,
			Sizes:       []string{"XS", "S", "M"},
			Gender:      "women",
			Tags:        []string{"hoodie"},
			Images:      []string{"womens-cropped-hoodie-1.jpg"},
		},
		{
			Title:       "Kids Cyber Cap",
			Description: "Adjustable cap for kids.",
			Price:       14.5,
			Stock:       60,
			Sizes:       []string{"ONE SIZE"},
			Gender:      "kid",
			Tags:        []string{"cap", "hats"},
			Images:      []string{"kids-cyber-cap-1.jpg"},
		},
		{
			Title:       "Unisex Logo Sweatshirt",
			Description: "Heavyweight sweatshirt with embroidered logo.",
			Price:       49.0,
			Stock:       15,
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Gender:      "unisex",
			Tags:        []string{"sweatshirt"},
			Images:      []string{"unisex-logo-sweatshirt-1.jpg", "unisex-logo-sweatshirt-2.jpg"},
		},
	}
}
