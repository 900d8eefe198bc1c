package search

import (
	"context"
	"strconv"
	"time"

	"marquee/internal/domain"
)

// Curated seed queries for the home feeds. The upstream API only
// supports term search, so each feed is assembled from the top match
// of several well-known franchise queries.
var (
	trendingSeeds   = []string{"Avengers", "Dune", "Mission Impossible", "Batman", "Jurassic"}
	newReleaseSeeds = []string{"Superman", "Wicked", "Gladiator", "Deadpool", "Moana"}
)

const feedItemsPerSeed = 2

// LoadFeeds populates the two home feeds (trending and new releases)
// with independent loading and error tracking. A feed that already
// holds data is skipped, so re-entering the home view does not
// refetch; an empty feed (never loaded, or failed last time) is
// fetched again.
func (s *Service) LoadFeeds(ctx context.Context) {
	snap := s.store.Snapshot()

	if len(snap.Trending) == 0 {
		s.store.SetLoadingTrending(true)
		trending, err := s.collectFeed(ctx, trendingSeeds, domain.Filters{Type: domain.MediaTypeMovie})
		if err != nil {
			s.store.SetTrendingError(err.Error())
		} else {
			s.store.SetTrending(trending)
		}
	}

	if len(snap.NewReleases) == 0 {
		s.store.SetLoadingNewReleases(true)
		year := strconv.Itoa(time.Now().Year())
		releases, err := s.collectFeed(ctx, newReleaseSeeds, domain.Filters{Type: domain.MediaTypeMovie, Year: year})
		if err != nil {
			s.store.SetNewReleasesError(err.Error())
		} else {
			s.store.SetNewReleases(releases)
		}
	}
}

// collectFeed gathers the leading results of each seed query. A feed
// fails only when every seed fails; partial results are fine.
func (s *Service) collectFeed(ctx context.Context, seeds []string, filters domain.Filters) ([]*domain.CatalogItem, error) {
	var items []*domain.CatalogItem
	var lastErr error
	seen := make(map[string]bool)

	for _, seed := range seeds {
		page, err := s.repo.Search(ctx, seed, filters, 1)
		if err != nil {
			s.logger.Debug("feed seed failed", "seed", seed, "error", err)
			lastErr = err
			continue
		}
		taken := 0
		for _, item := range page.Items {
			if seen[item.ID] {
				continue
			}
			seen[item.ID] = true
			items = append(items, item)
			taken++
			if taken == feedItemsPerSeed {
				break
			}
		}
	}

	if len(items) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return items, nil
}
