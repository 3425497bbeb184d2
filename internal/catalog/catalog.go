// internal/catalog/catalog.go

// Package catalog is the storefront's catalog source. Today the data is a
// hardcoded seed; in principle this is where a network fetch would live. The
// record set is fixed at construction and served read-only.
package catalog

import (
	"errors"
	"sort"

	"github.com/labubu-world/storefront/internal/models"
)

var ErrNotFound = errors.New("product not found")

type Source struct {
	products []models.Product
	byID     map[string]models.Product
	bySlug   map[string]models.Product
	banners  []models.HeroBanner
}

func NewSource() *Source {
	products := seedProducts()
	for i := range products {
		if len(products[i].Images) == 0 {
			products[i].Images = []string{products[i].ImageURL}
		}
	}

	byID := make(map[string]models.Product, len(products))
	bySlug := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
		bySlug[p.Slug] = p
	}

	return &Source{
		products: products,
		byID:     byID,
		bySlug:   bySlug,
		banners:  seedBanners(),
	}
}

func (s *Source) GetByID(id string) (models.Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	return p, nil
}

// Load returns the full ordered product list. Callers get a fresh copy; the
// source itself never changes after construction.
func (s *Source) Load() []models.Product {
	return append([]models.Product(nil), s.products...)
}

func (s *Source) GetBySlug(slug string) (models.Product, error) {
	p, ok := s.bySlug[slug]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	return p, nil
}

// Related returns up to limit products from the same series, excluding the
// product itself, in catalog order.
func (s *Source) Related(slug string, limit int) []models.Product {
	p, ok := s.bySlug[slug]
	if !ok {
		return nil
	}

	var out []models.Product
	for _, candidate := range s.products {
		if candidate.Slug == slug || candidate.Series != p.Series {
			continue
		}
		out = append(out, candidate)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Featured returns the highest-popularity products for the homepage.
func (s *Source) Featured(limit int) []models.Product {
	out := s.Load()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Popularity > out[j].Popularity
	})
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

func (s *Source) HeroBanners() []models.HeroBanner {
	return append([]models.HeroBanner(nil), s.banners...)
}
