// internal/catalog/seed.go
package catalog

import (
	"time"

	"github.com/labubu-world/storefront/internal/models"
)

func seedProducts() []models.Product {
	return []models.Product{
		{ID: "1", Name: `Labubu "Forest Fairy" Bloom`, Price: 15.99, ImageURL: "https://popmart.sg/cdn/shop/files/LABUBU精灵天团系列大手办05.jpg?v=1710499333&width=400", Slug: "labubu-forest-fairy-bloom", Series: "Forest Fairy", Type: "Blind Box", DateAdded: time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC), Popularity: 85},
		{ID: "2", Name: `Labubu "Sweet Dreams" Kiki`, Price: 12.50, ImageURL: "https://popmart.sg/cdn/shop/files/LABUBU精灵天团系列大手办02.jpg?v=1710499333&width=400", Slug: "labubu-sweet-dreams-kiki", Series: "Sweet Dreams", Type: "Plush", DateAdded: time.Date(2024, 7, 20, 10, 0, 0, 0, time.UTC), Popularity: 92},
		{ID: "3", Name: `Labubu "Cosmic Voyager" Astro`, Price: 18.00, ImageURL: "https://popmart.sg/cdn/shop/files/LABUBU太空奇遇系列大手办墩墩宇航员01.jpg?v=1710500416&width=400", Slug: "labubu-cosmic-voyager-astro", Series: "Cosmic Voyager", Type: "Special Edition", DateAdded: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC), Popularity: 78},
		{ID: "4", Name: `Labubu "Ocean Whisper" Coral`, Price: 14.00, ImageURL: "https://popmart.sg/cdn/shop/files/LABUBU精灵天团系列大手办04.jpg?v=1710499333&width=400", Slug: "labubu-ocean-whisper-coral", Series: "Ocean Whisper", Type: "Blind Box", DateAdded: time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC), Popularity: 88},
		{ID: "5", Name: `Labubu "Mini Forest Sprite"`, Price: 9.99, ImageURL: "https://popmart.sg/cdn/shop/files/LABUBU精灵天团系列大手办01.jpg?v=1710499333&width=400", Slug: "labubu-mini-forest-sprite", Series: "Forest Fairy", Type: "Keychain", DateAdded: time.Date(2024, 7, 22, 10, 0, 0, 0, time.UTC), Popularity: 95},
		{ID: "6", Name: `Labubu "Starry Night" Luna`, Price: 22.50, ImageURL: "https://popmart.sg/cdn/shop/files/LABUBU太空奇遇系列大手办闪耀星河01.jpg?v=1710500416&width=400", Slug: "labubu-starry-night-luna", Series: "Sweet Dreams", Type: "Plush", DateAdded: time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC), Popularity: 70},
		{ID: "7", Name: `Labubu "Galaxy Explorer" Zip`, Price: 19.99, ImageURL: "https://popmart.sg/cdn/shop/files/LABUBU太空奇遇系列大手办毛绒公仔墩墩宇航员01.jpg?v=1710500416&width=400", Slug: "labubu-galaxy-explorer-zip", Series: "Cosmic Voyager", Type: "Special Edition", DateAdded: time.Date(2024, 7, 18, 10, 0, 0, 0, time.UTC), Popularity: 82},
		{ID: "8", Name: `Labubu "Deep Sea" Bubbles`, Price: 13.00, ImageURL: "https://popmart.sg/cdn/shop/files/LABUBU精灵天团系列大手办03.jpg?v=1710499333&width=400", Slug: "labubu-deep-sea-bubbles", Series: "Ocean Whisper", Type: "Blind Box", DateAdded: time.Date(2024, 6, 25, 10, 0, 0, 0, time.UTC), Popularity: 75},
		{ID: "9", Name: `Labubu "Woodland Wanderer"`, Price: 16.50, ImageURL: "https://popmart.sg/cdn/shop/files/LABUBU精灵天团系列大手办06.jpg?v=1710499333&width=400", Slug: "labubu-woodland-wanderer", Series: "Forest Fairy", Type: "Blind Box", DateAdded: time.Date(2024, 7, 25, 10, 0, 0, 0, time.UTC), Popularity: 90},
		{ID: "10", Name: `Labubu "Cloud Hopper" Sky`, Price: 11.00, ImageURL: "https://popmart.sg/cdn/shop/files/LABUBU精灵天团系列大手办07.jpg?v=1710499333&width=400", Slug: "labubu-cloud-hopper-sky", Series: "Sweet Dreams", Type: "Keychain", DateAdded: time.Date(2024, 7, 5, 10, 0, 0, 0, time.UTC), Popularity: 80},
		{ID: "11", Name: `Labubu "Planet Protector" Nova`, Price: 25.00, ImageURL: "https://popmart.sg/cdn/shop/files/LABUBU太空奇遇系列大手办UFO01.jpg?v=1710500416&width=400", Slug: "labubu-planet-protector-nova", Series: "Cosmic Voyager", Type: "Plush", DateAdded: time.Date(2024, 4, 15, 10, 0, 0, 0, time.UTC), Popularity: 65},
		{ID: "12", Name: `Labubu "Reef Guardian" Finn`, Price: 17.00, ImageURL: "https://popmart.sg/cdn/shop/files/LABUBU精灵天团系列大手办08.jpg?v=1710499333&width=400", Slug: "labubu-reef-guardian-finn", Series: "Ocean Whisper", Type: "Special Edition", DateAdded: time.Date(2024, 7, 12, 10, 0, 0, 0, time.UTC), Popularity: 86},
		{ID: "13", Name: `Labubu "Mushroom Friend" Moss`, Price: 10.50, ImageURL: "https://popmart.sg/cdn/shop/files/LABUBU精灵天团系列大手办09.jpg?v=1710499333&width=400", Slug: "labubu-mushroom-friend-moss", Series: "Forest Fairy", Type: "Keychain", DateAdded: time.Date(2024, 8, 1, 10, 0, 0, 0, time.UTC), Popularity: 98},
		{ID: "14", Name: `Labubu "Pillow Pal" Fluff`, Price: 14.50, ImageURL: "https://popmart.sg/cdn/shop/files/LABUBU精灵天团系列大手办10.jpg?v=1710499333&width=400", Slug: "labubu-pillow-pal-fluff", Series: "Sweet Dreams", Type: "Blind Box", DateAdded: time.Date(2024, 7, 28, 10, 0, 0, 0, time.UTC), Popularity: 89},
		{ID: "15", Name: `Labubu "Comet Rider" Bolt`, Price: 20.00, ImageURL: "https://popmart.sg/cdn/shop/files/LABUBU太空奇遇系列大手办飞行器01.jpg?v=1710500416&width=400", Slug: "labubu-comet-rider-bolt", Series: "Cosmic Voyager", Type: "Blind Box", DateAdded: time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC), Popularity: 60},
	}
}

func seedBanners() []models.HeroBanner {
	return []models.HeroBanner{
		{
			ID:          "banner1",
			Title:       "Explore the Dreamy Meadow!",
			Subtitle:    "New enchanting Labubu friends have just arrived. Find your favorite magical companion today!",
			ImageURL:    "https://images.unsplash.com/photo-1546707540-92c8b357287c?auto=format&fit=crop&w=1920&q=80&h=600",
			CtaText:     "Discover Collection",
			CtaLink:     "/product-listing",
			AltText:     "Labubu Dreamy Meadow Collection",
			DisplayRank: 1,
		},
		{
			ID:          "banner2",
			Title:       "Limited Edition Sparkle Series!",
			Subtitle:    "Don't miss out on these rare and dazzling Labubus. Collect them all before they're gone!",
			ImageURL:    "https://images.unsplash.com/photo-1517299354407-73563a189a5e?auto=format&fit=crop&w=1920&q=80&h=600",
			CtaText:     "Shop Limited Editions",
			CtaLink:     "/product-listing?series=sparkle",
			AltText:     "Labubu Limited Edition Sparkle Series",
			DisplayRank: 2,
		},
	}
}
