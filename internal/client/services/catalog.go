// Package services contains application services for the prepshare client.
// This file defines the catalog service: browsing the approved experience
// feed with a local cache fallback for offline reading.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/prepshare/prepshare/internal/client/api"
	"github.com/prepshare/prepshare/internal/client/models"
	"github.com/prepshare/prepshare/internal/client/repositories/experiences"
	"github.com/prepshare/prepshare/internal/logging"
)

// CatalogService serves the experience feed and detail views.
//
// Contract:
//   - List: return the approved feed, newest first; fall back to the local
//     cache when the backend is unreachable.
//   - Get: fetch one experience for the detail view; a missing item is
//     common-style ErrorNotFound, an unreachable backend falls back to cache.
//   - Remember: store one refreshed item (fed from the engagement store's
//     update hook) so the cached feed stays in sync without a refetch.
//
// All methods honor context cancellation.
type CatalogService interface {
	List(ctx context.Context) ([]models.Experience, error)
	Get(ctx context.Context, id string) (*models.Experience, error)
	Remember(ctx context.Context, exp models.Experience) error
}

type catalogService struct {
	client api.Client
	repo   experiences.Repository
	log    logging.Logger
}

// NewCatalogService constructs a CatalogService over the API client and the
// local cache repository.
func NewCatalogService(client api.Client, repo experiences.Repository, log logging.Logger) CatalogService {
	return &catalogService{client: client, repo: repo, log: log.With("component", "catalog")}
}

// List fetches the feed anonymously, keeps approved items only and swaps
// them into the cache. When the backend is unreachable the previously cached
// feed is returned instead.
func (s *catalogService) List(ctx context.Context) ([]models.Experience, error) {
	list, err := s.client.ListExperiences(ctx, "")
	if err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			s.log.Warn(ctx, "backend unreachable, serving cached feed", "err", err)
			cached, cacheErr := s.repo.GetAll(ctx)
			if cacheErr != nil {
				return nil, fmt.Errorf("cache fallback failed: %w", cacheErr)
			}
			return cached, nil
		}
		return nil, fmt.Errorf("fetching feed: %w", err)
	}

	approved := make([]models.Experience, 0, len(list))
	for _, exp := range list {
		if exp.Approved {
			approved = append(approved, exp)
		}
	}

	if err := s.repo.ReplaceAll(ctx, approved); err != nil {
		// The fresh feed is still usable; a stale cache only hurts offline reads.
		s.log.Warn(ctx, "cache refresh failed", "err", err)
	}
	return approved, nil
}

// Get fetches a single experience. Read failures do not raise notifications;
// the caller renders a distinct not-found / failed-to-load state.
func (s *catalogService) Get(ctx context.Context, id string) (*models.Experience, error) {
	exp, err := s.client.GetExperience(ctx, id)
	if err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			s.log.Warn(ctx, "backend unreachable, trying cached item", "id", id, "err", err)
			return s.repo.GetByID(ctx, id)
		}
		return nil, err
	}
	return exp, nil
}

// Remember upserts a single refreshed item into the cache.
func (s *catalogService) Remember(ctx context.Context, exp models.Experience) error {
	if err := s.repo.Upsert(ctx, exp); err != nil {
		return fmt.Errorf("remembering experience %s: %w", exp.ID, err)
	}
	return nil
}
