package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func price(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// SeedProducts returns the catalog the service starts with.
func SeedProducts() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Gece Mavisi Takım Elbise",
			Category:    CategorySuits,
			Price:       price("12990.00"),
			Description: "İtalyan yünü ile mükemmel işçilikle hazırlanmış modern slim fit takım elbise. Yönetici toplantıları ve resmi etkinlikler için ideal.",
			Images:      []string{"https://images.unsplash.com/photo-1594938298603-c8148c4dae35?w=800&q=80"},
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Gece Mavisi", "Antrasit"},
			Material:    "%100 İtalyan Yünü",
			InStock:     true,
			Featured:    true,
			CreatedAt:   day("2024-01-15"),
			UpdatedAt:   day("2024-01-15"),
		},
		{
			ID:          "2",
			Name:        "İpek Gece Elbisesi",
			Category:    CategoryDresses,
			Price:       price("24990.00"),
			Description: "Lüks ipek charmeuse kumaştan hazırlanmış büyüleyici yere kadar uzanan gece elbisesi. Zarif bir yaka ve çarpıcı açık sırt tasarımına sahiptir.",
			Images:      []string{"https://images.unsplash.com/photo-1566174053879-31528523f8ae?w=800&q=80"},
			Sizes:       []string{"XS", "S", "M", "L"},
			Colors:      []string{"Zümrüt", "Bordo", "Siyah"},
			Material:    "%100 İpek Charmeuse",
			InStock:     true,
			Featured:    true,
			CreatedAt:   day("2024-01-10"),
			UpdatedAt:   day("2024-01-10"),
		},
		{
			ID:          "3",
			Name:        "Klasik Oxford Gömlek",
			Category:    CategoryShirts,
			Price:       price("3290.00"),
			Description: "İnce dokuya sahip zamansız Mısır pamuğu gömlek. Hem iş hem de şık günlük kullanım için idealdir. Fransız manşetli.",
			Images:      []string{"https://images.unsplash.com/photo-1602810318383-e386cc2a3ccf?w=800&q=80"},
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Colors:      []string{"Beyaz", "Açık Mavi", "Pembe"},
			Material:    "Mısır Pamuğu",
			InStock:     true,
			Featured:    false,
			CreatedAt:   day("2024-01-20"),
			UpdatedAt:   day("2024-01-20"),
		},
		{
			ID:          "4",
			Name:        "Kaşmir Karışımlı Palto",
			Category:    CategorySuits,
			Price:       price("18990.00"),
			Description: "Premium kaşmir karışımında sofistike palto. Çentik yakalı, çift sıra düğmeli ve zarafet yayan rafine terziliğe sahiptir.",
			Images:      []string{"https://images.unsplash.com/photo-1539533018447-63fcce2678e3?w=800&q=80"},
			Sizes:       []string{"M", "L", "XL"},
			Colors:      []string{"Deve Tüyü", "Lacivert", "Siyah"},
			Material:    "%70 Yün, %30 Kaşmir",
			InStock:     true,
			Featured:    true,
			CreatedAt:   day("2024-01-05"),
			UpdatedAt:   day("2024-01-05"),
		},
		{
			ID:          "5",
			Name:        "Kadife Kokteyl Elbisesi",
			Category:    CategoryDresses,
			Price:       price("8990.00"),
			Description: "Göz alıcı kadifeden diz boyu kokteyl elbisesi. Akşam toplantıları ve özel etkinlikler için mükemmel.",
			Images:      []string{"https://images.unsplash.com/photo-1566174053879-31528523f8ae?w=800&q=80"},
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Colors:      []string{"Koyu Mor", "Orman Yeşili", "Lacivert"},
			Material:    "İpek Kadife",
			InStock:     true,
			Featured:    false,
			CreatedAt:   day("2024-01-18"),
			UpdatedAt:   day("2024-01-18"),
		},
		{
			ID:          "6",
			Name:        "Keten Yaz Gömleği",
			Category:    CategoryShirts,
			Price:       price("2790.00"),
			Description: "Rahat kesimli hafif keten gömlek. Sıcak havalarda sofistike bir tarz için mükemmel. Kamp yakalı.",
			Images:      []string{"https://images.unsplash.com/photo-1596755094514-f87e34085b2c?w=800&q=80"},
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Beyaz", "Kum", "Gök Mavisi"},
			Material:    "%100 Avrupa Keteni",
			InStock:     true,
			Featured:    false,
			CreatedAt:   day("2024-01-22"),
			UpdatedAt:   day("2024-01-22"),
		},
		{
			ID:          "7",
			Name:        "İtalyan Deri Kemer",
			Category:    CategoryAccessories,
			Price:       price("1990.00"),
			Description: "Toskana'dan el yapımı deri kemer. Cilalı pirinç toka ve kenar boyama özelliği vardır. Her kıyafete mükemmel son dokunuş.",
			Images:      []string{"https://images.unsplash.com/photo-1624222247344-550fb60583e2?w=800&q=80"},
			Sizes:       []string{"30", "32", "34", "36", "38"},
			Colors:      []string{"Siyah", "Konyak", "Koyu Kahverengi"},
			Material:    "Tam Tahıl İtalyan Derisi",
			InStock:     true,
			Featured:    false,
			CreatedAt:   day("2024-01-25"),
			UpdatedAt:   day("2024-01-25"),
		},
		{
			ID:          "8",
			Name:        "Merino Yün Balıkçı Yaka",
			Category:    CategoryShirts,
			Price:       price("3990.00"),
			Description: "Ultra ince merino yün balıkçı yaka. Yumuşak, nefes alabilen ve sıcaklık düzenleyici. Gardırobunuz için çok yönlü bir temel.",
			Images:      []string{"https://images.unsplash.com/photo-1618354691373-d851c5c3a990?w=800&q=80"},
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Colors:      []string{"Siyah", "Antrasit", "Krem", "Lacivert"},
			Material:    "Ekstra İnce Merino Yünü",
			InStock:     true,
			Featured:    true,
			CreatedAt:   day("2024-01-12"),
			UpdatedAt:   day("2024-01-12"),
		},
	}
}
