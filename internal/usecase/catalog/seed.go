package catalog

import (
	"context"

	"github.com/electromart/storefront/internal/domain"
)

// Seed populates the catalog with the initial product set when the
// products document is absent or empty. Called once at startup; a
// non-empty catalog is left untouched.
func (s *Service) Seed(ctx context.Context) error {
	products, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	if len(products) > 0 {
		return nil
	}

	seed := []domain.Product{
		{
			Name:        "Laptop Pro X1",
			Description: "High-performance laptop with 16GB RAM and 512GB SSD",
			Price:       129999,
			Category:    "Laptops",
			ImageURL:    "https://images.unsplash.com/photo-1496181133206-80ce9b88a853",
			Stock:       25,
			InStock:     true,
			Featured:    true,
		},
		{
			Name:        "Smartphone Ultra Z",
			Description: "6.7-inch display, 128GB storage, triple camera system",
			Price:       79999,
			Category:    "Smartphones",
			ImageURL:    "https://images.unsplash.com/photo-1580910051074-3eb694886505",
			Stock:       40,
			InStock:     true,
			Featured:    true,
		},
		{
			Name:        "Wireless Noise-Cancelling Headphones",
			Description: "Premium sound quality with 20 hours battery life",
			Price:       24999,
			Category:    "Audio",
			ImageURL:    "https://images.unsplash.com/photo-1505740420928-5e560c06d30e",
			Stock:       60,
			InStock:     true,
		},
		{
			Name:        "4K Smart TV 55\"",
			Description: "Ultra HD resolution with smart features and HDR",
			Price:       64999,
			Category:    "TVs",
			ImageURL:    "https://images.unsplash.com/photo-1593305841991-05c297ba4575",
			Stock:       15,
			InStock:     true,
		},
		{
			Name:        "Wireless Gaming Mouse",
			Description: "High precision optical sensor with programmable buttons",
			Price:       7999,
			Category:    "Gaming",
			ImageURL:    "https://images.unsplash.com/photo-1615663245857-ac93bb7c39e7",
			Stock:       80,
			InStock:     true,
		},
		{
			Name:        "Smart Home Speaker",
			Description: "Voice-controlled speaker with built-in assistant",
			Price:       12999,
			Category:    "Smart Home",
			ImageURL:    "https://images.unsplash.com/photo-1589492477829-5e65395b66cc",
			Stock:       50,
			InStock:     true,
		},
	}

	for i := range seed {
		if err := s.repo.Create(ctx, &seed[i]); err != nil {
			return err
		}
	}

	s.logger.Infof("Seeded catalog with %d products", len(seed))
	return nil
}
