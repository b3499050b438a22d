// Package catalog holds the static demo product list. There is no
// inventory backend; the six products below are the whole store.
package catalog

import (
	"github.com/osse101/BadgerShop_Go/internal/domain"
)

var products = []domain.Product{
	{
		ID:          1,
		Name:        "AI Cutlery",
		Price:       299.99,
		Description: "Uses advanced LLMs to make your food taste better.",
		Image:       "https://images.unsplash.com/photo-1503197553955-b4eafae3e08e?w=400&h=400&fit=crop",
		Category:    "Smart Kitchen",
	},
	{
		ID:          2,
		Name:        "Existential Insurance",
		Price:       999.99,
		Description: "Protects you from the crushing weight of existence.",
		Image:       "https://images.unsplash.com/photo-1444703686981-a3abbc4d4fe3?w=400&h=400&fit=crop",
		Category:    "Life Services",
	},
	{
		ID:          3,
		Name:        "Participation Trophy",
		Price:       19.99,
		Description: "Perfect for those who tried their best (or at least showed up)",
		Image:       "https://plus.unsplash.com/premium_photo-1683749805319-2c481ae54bc1?w=400&h=400&fit=crop",
		Category:    "Awards & Recognition",
	},
	{
		ID:          4,
		Name:        "Offline Cloud Storage",
		Price:       149.99,
		Description: "Store your clouds offline",
		Image:       "https://media.istockphoto.com/id/180639404/photo/cotton-balls-in-jar.webp?a=1&b=1&s=612x612&w=0&k=20&c=OojvMlPFaiYOodkJhPgnKDI1h7OzPQ7tiwRsb9owKII=",
		Category:    "Storage Solutions",
	},
	{
		ID:          5,
		Name:        "Emergency Button",
		Price:       79.99,
		Description: "Press it when you need help, attention, or just want to feel important",
		Image:       "https://media.istockphoto.com/id/585171778/photo/red-button-isolated-on-white.webp?a=1&b=1&s=612x612&w=0&k=20&c=S41DksKkufDMb_VUwUWL3OMi7Vp_OwN2YQwzvO0Pb5Q=",
		Category:    "Safety & Security",
	},
	{
		ID:          6,
		Name:        "Mystery Item",
		Price:       29.99,
		Description: "Nobody knows what's inside! Could be amazing, could be terrible. That's the mystery of the Mystery Item",
		Image:       "https://images.unsplash.com/photo-1656543802898-41c8c46683a7?w=400&h=400&fit=crop",
		Category:    "Mystery & Surprise",
	},
}

// List returns all products in display order
func List() []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)
	return out
}

// GetProductByID looks up a product by its catalog id
func GetProductByID(id int) (domain.Product, error) {
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrProductNotFound
}
