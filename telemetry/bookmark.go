package telemetry

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/foodweb/traits"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkExtinction BookmarkType = "extinction"
	BookmarkBabyBoom   BookmarkType = "baby_boom"
	BookmarkMassacre   BookmarkType = "massacre"
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Step        int32        `csv:"step"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"step", b.Step,
		"description", b.Description,
	)
}

// BookmarkDetector detects notable windows in a scenario.
type BookmarkDetector struct {
	prev    WindowStats
	hasPrev bool
}

// NewBookmarkDetector creates a detector.
func NewBookmarkDetector() *BookmarkDetector {
	return &BookmarkDetector{}
}

// Seed sets the baseline population the first window is compared against.
func (bd *BookmarkDetector) Seed(census Census) {
	bd.prev = WindowStats{
		Carnivores: census.Alive[traits.Carnivore],
		Omnivores:  census.Alive[traits.Omnivore],
		Herbivores: census.Alive[traits.Herbivore],
		Plants:     census.Alive[traits.Plant],
	}
	bd.hasPrev = true
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	if bd.hasPrev {
		for _, group := range []struct {
			name       string
			prev, curr int
		}{
			{"carnivores", bd.prev.Carnivores, stats.Carnivores},
			{"omnivores", bd.prev.Omnivores, stats.Omnivores},
			{"herbivores", bd.prev.Herbivores, stats.Herbivores},
			{"plants", bd.prev.Plants, stats.Plants},
		} {
			if group.prev > 0 && group.curr == 0 {
				bookmarks = append(bookmarks, Bookmark{
					Type:        BookmarkExtinction,
					Step:        stats.WindowEndStep,
					Description: fmt.Sprintf("Last of %d %s died", group.prev, group.name),
				})
			}
		}
	}

	// Births outpacing deaths two to one
	if stats.Births >= 2 && stats.Births >= 2*stats.Deaths {
		bookmarks = append(bookmarks, Bookmark{
			Type:        BookmarkBabyBoom,
			Step:        stats.WindowEndStep,
			Description: fmt.Sprintf("%d births against %d deaths", stats.Births, stats.Deaths),
		})
	}

	// Fights where both sides died
	if stats.Fights > 0 && stats.Deaths >= 2*stats.Encounters {
		bookmarks = append(bookmarks, Bookmark{
			Type:        BookmarkMassacre,
			Step:        stats.WindowEndStep,
			Description: fmt.Sprintf("%d deaths in %d encounters", stats.Deaths, stats.Encounters),
		})
	}

	bd.prev = stats
	bd.hasPrev = true
	return bookmarks
}
