// internal/services/listing_service.go
package services

import (
	"sync"
	"time"

	"github.com/labubu-world/storefront/internal/catalog"
	"github.com/labubu-world/storefront/internal/config"
	"github.com/labubu-world/storefront/internal/listing"
)

// ListingService holds one listing engine per visitor session. Engines are
// created lazily on first access and evicted after the idle TTL; listing
// state is view state, so losing it just resets the visitor to the default
// listing.
type ListingService struct {
	source   *catalog.Source
	pageSize int
	ttl      time.Duration

	sessions map[string]*listingSession
	mtx      sync.Mutex
}

type listingSession struct {
	engine   *listing.Engine
	lastSeen time.Time
}

func NewListingService(source *catalog.Source, cfg *config.Config) *ListingService {
	s := &ListingService{
		source:   source,
		pageSize: cfg.Catalog.PageSize,
		ttl:      time.Duration(cfg.Session.IdleTTLMinutes) * time.Minute,
		sessions: make(map[string]*listingSession),
	}

	// Clean up idle sessions every minute
	go s.cleanupSessions()

	return s
}

func (s *ListingService) cleanupSessions() {
	for {
		time.Sleep(time.Minute)
		s.mtx.Lock()
		for id, sess := range s.sessions {
			if time.Since(sess.lastSeen) > s.ttl {
				delete(s.sessions, id)
			}
		}
		s.mtx.Unlock()
	}
}

// session returns the engine for sessionID, creating one from the catalog
// source on first use. Callers must hold s.mtx.
func (s *ListingService) session(sessionID string) *listingSession {
	sess, exists := s.sessions[sessionID]
	if !exists {
		sess = &listingSession{engine: listing.NewEngine(s.source.Load(), s.pageSize)}
		s.sessions[sessionID] = sess
	}
	sess.lastSeen = time.Now()
	return sess
}

// GetView returns the current derived listing state without mutating it.
func (s *ListingService) GetView(sessionID string) listing.View {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.session(sessionID).engine.View()
}

func (s *ListingService) SetSortKey(sessionID string, key listing.SortKey) (listing.View, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	engine := s.session(sessionID).engine
	if err := engine.SetSortKey(key); err != nil {
		return listing.View{}, err
	}
	return engine.View(), nil
}

func (s *ListingService) OpenFilterEditor(sessionID string) listing.View {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	engine := s.session(sessionID).engine
	engine.OpenFilterEditor()
	return engine.View()
}

func (s *ListingService) SetDraftFilter(sessionID string, dimension listing.Dimension, value string, included bool) (listing.View, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	engine := s.session(sessionID).engine
	if err := engine.SetDraftFilter(dimension, value, included); err != nil {
		return listing.View{}, err
	}
	return engine.View(), nil
}

func (s *ListingService) ApplyDraftFilters(sessionID string) listing.View {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	engine := s.session(sessionID).engine
	engine.ApplyDraftFilters()
	return engine.View()
}

func (s *ListingService) ClearAllFilters(sessionID string) listing.View {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	engine := s.session(sessionID).engine
	engine.ClearAllFilters()
	return engine.View()
}

// GoToPage never fails: out-of-range page numbers leave the state unchanged
// and the caller re-renders from the returned view.
func (s *ListingService) GoToPage(sessionID string, page int) listing.View {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	engine := s.session(sessionID).engine
	engine.GoToPage(page)
	return engine.View()
}
