package memory

import "github.com/dwikikusuma/dohsarpay/internal/catalog/domain"

// Categories offered by the storefront, in display order.
var Categories = []string{
	"All",
	"Novels & Fiction",
	"Translation",
	"Business & Management",
	"Psychology",
	"Self-Improvement",
	"Philosophy",
	"Religion & Dhamma",
	"History & Politics",
	"Biographies",
	"General Knowledge",
	"Children",
	"Comics & Manga",
	"Education & Language",
	"Health & Cooking",
	"Poem",
	"Magazines",
	"Art & Design",
}

// seedBooks is the stock the store opens with. Prices are minor currency
// units.
func seedBooks() []domain.Book {
	return []domain.Book{
		{
			ID:            1,
			Title:         "The Art of Thai Cooking",
			Author:        "Somsri Chef",
			Price:         4500,
			OriginalPrice: 5500,
			Category:      "Health & Cooking",
			Rating:        4.8,
			CoverURL:      "https://picsum.photos/300/450?random=10",
			Description:   "Authentic recipes from the heart of Thailand. Learn to balance the four fundamental tastes: sweet, sour, salty, and spicy.",
			AuthorBio:     "Somsri Chef grew up in the bustling markets of Chiang Mai, learning the secrets of Thai cuisine from her grandmother.",
		},
		{
			ID:          2,
			Title:       "The Glass Palace",
			Author:      "Amitav Ghosh",
			Price:       3200,
			Category:    "Novels & Fiction",
			Rating:      4.5,
			CoverURL:    "https://picsum.photos/300/450?random=11",
			Description: "An epic saga spanning a century, from the fall of the Konbaung dynasty in Mandalay through the Second World War.",
			AuthorBio:   "Amitav Ghosh is an Indian writer whose work explores the history of the Indian Ocean world.",
		},
		{
			ID:          3,
			Title:       "Start With Why",
			Author:      "Simon Sinek",
			Price:       3950,
			Category:    "Business & Management",
			Rating:      4.9,
			CoverURL:    "https://picsum.photos/300/450?random=12",
			Description: "How great leaders inspire everyone to take action. People don't buy what you do, they buy why you do it.",
			AuthorBio:   "Simon Sinek teaches leaders and organizations how to inspire people.",
		},
		{
			ID:          4,
			Title:       "Jujutsu Kaisen Vol. 20",
			Author:      "Gege Akutami",
			Price:       1250,
			Category:    "Comics & Manga",
			Rating:      5.0,
			CoverURL:    "https://picsum.photos/300/450?random=13",
			Description: "The latest volume of the hit supernatural action manga. The Culling Game continues.",
			AuthorBio:   "Gege Akutami is a Japanese manga artist, best known for creating Jujutsu Kaisen.",
		},
		{
			ID:            5,
			Title:         "Atomic Habits",
			Author:        "James Clear",
			Price:         4200,
			OriginalPrice: 4800,
			Category:      "Self-Improvement",
			Rating:        4.9,
			CoverURL:      "https://picsum.photos/300/450?random=14",
			Description:   "Tiny changes, remarkable results. An easy and proven way to build good habits and break bad ones.",
			AuthorBio:     "James Clear is a writer and speaker focused on habits, decision-making, and continuous improvement.",
		},
		{
			ID:          6,
			Title:       "Thai For Beginners",
			Author:      "Benjawan Poomsan",
			Price:       5500,
			Category:    "Education & Language",
			Rating:      4.6,
			CoverURL:    "https://picsum.photos/300/450?random=15",
			Description: "The best way to start learning Thai. Basic grammar, vocabulary, and conversation for travelers and expats.",
			AuthorBio:   "Benjawan Poomsan Becker is a leading author of Thai language learning materials for English speakers.",
		},
		{
			ID:          7,
			Title:       "Design Systems",
			Author:      "Alla Kholmatova",
			Price:       8500,
			Category:    "Art & Design",
			Rating:      4.7,
			CoverURL:    "https://picsum.photos/300/450?random=16",
			Description: "A practical guide to creating design languages for digital products.",
			AuthorBio:   "Alla Kholmatova is a UX researcher and designer who has spent years studying what makes design systems effective.",
		},
		{
			ID:          8,
			Title:       "One Piece Vol. 105",
			Author:      "Eiichiro Oda",
			Price:       1150,
			Category:    "Comics & Manga",
			Rating:      5.0,
			CoverURL:    "https://picsum.photos/300/450?random=17",
			Description: "Join Luffy on his journey to become King of the Pirates. The Straw Hat crew continues their adventure in the New World.",
			AuthorBio:   "Eiichiro Oda is a legendary Japanese manga artist and the creator of One Piece.",
		},
	}
}
