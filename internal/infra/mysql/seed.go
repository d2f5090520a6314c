package mysql

import (
	"context"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"shop-service/internal/domain"
)

type seedProduct struct {
	name        string
	category    string
	price       int64
	description string
	imgURL      string
}

var seedCategories = []string{"Stationery", "Plush Toys", "Beauty", "Home Decor"}

var seedProducts = []seedProduct{
	{
		name:        "Kawaii Cat Pen",
		category:    "Stationery",
		price:       79,
		description: "Cute and comfy cat-shaped pen for your class notes or journal. Writes smoothly in blue ink.",
		imgURL:      "https://images.unsplash.com/photo-1506744038136-46273834b3fb?auto=format&fit=crop&w=400&q=80",
	},
	{
		name:        "Pastel Bunny Plush",
		category:    "Plush Toys",
		price:       349,
		description: "Soft, huggable bunny plush with pastel colors. Perfect for gifts and cozy naps.",
		imgURL:      "https://images.pexels.com/photos/1462636/pexels-photo-1462636.jpeg?auto=compress&w=400",
	},
	{
		name:        "Lavender Hand Cream",
		category:    "Beauty",
		price:       139,
		description: "Light lavender-scented hand cream. Moisturizes and softens for silky smooth hands.",
		imgURL:      "https://images.pexels.com/photos/2270834/pexels-photo-2270834.jpeg?auto=compress&w=400",
	},
	{
		name:        "Cloud Pillow",
		category:    "Home Decor",
		price:       260,
		description: "Dreamy pillow in cloud shape with smiley face. Ultra-soft for beds and sofas.",
		imgURL:      "https://images.unsplash.com/photo-1526178613658-3e1f28221885?auto=format&fit=crop&w=400&q=80",
	},
}

const seedStock = 100

// Seed fills an empty catalog with the sample categories and products.
// It does nothing when any category already exists.
func Seed(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&domain.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Catalog already has data, skipping seed")
		return nil
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ids := make(map[string]uint64, len(seedCategories))
		for _, name := range seedCategories {
			c := domain.Category{Name: name}
			if err := tx.Create(&c).Error; err != nil {
				return err
			}
			ids[name] = c.ID
		}

		for _, sp := range seedProducts {
			categoryID := ids[sp.category]
			p := domain.Product{
				Name:        sp.name,
				Description: sp.description,
				Price:       decimal.NewFromInt(sp.price),
				Stock:       seedStock,
				CategoryID:  &categoryID,
				ImgURL:      sp.imgURL,
			}
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
		}

		log.Printf("Seeded %d categories and %d products", len(seedCategories), len(seedProducts))
		return nil
	})
}
