// Copyright (c) 2026 Polarnews Media. All rights reserved.
// Author: dev@polarnews.gl

/*
Package layout computes render order for the home page and the section
pages.

The home page is a flat list of layout slots grouped into rows: the
display order encodes row * 1000 + column, so consecutive slots with the
same thousands bucket render side by side. Section pages are plain article
lists packed into a grid.
*/
package layout

import (
	"context"
	"log/slog"

	"github.com/nuukmedia/polarnews/internal/news/article"
)

// gridColumns is the total column count of the section page grid.
const gridColumns = 12

// DefaultPerRow is the section page packing width when the caller does not
// choose one.
const DefaultPerRow = 2

// Repository is the read surface the placement service needs.
type Repository interface {
	ListHome(ctx context.Context, lang article.Language) ([]*article.Article, error)
	ListSection(ctx context.Context, section article.Section, lang article.Language, includeHome bool, limit, offset int) ([]*article.Article, error)
	GetByID(ctx context.Context, id int64) (*article.Article, error)
}

// Row is one rendered home-page row of layout slots.
type Row struct {
	Index int                `json:"index"`
	Slots []*article.Article `json:"slots"`
}

// # Service Layer

// Service resolves the ordered article lists the renderer consumes.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// # Home Page

/*
HomeRows returns the home-page layout slots of a language grouped into rows.

Slots are grouped by display_order // 1000; a row ends when the next slot's
bucket differs. Slot containers (sliders) pass through verbatim — their
children are resolved separately via [Service.SlotChildren].
*/
func (service *Service) HomeRows(ctx context.Context, lang article.Language) ([]Row, error) {
	slots, err := service.repo.ListHome(ctx, lang)
	if err != nil {
		return nil, err
	}

	return GroupRows(slots), nil
}

// GroupRows packs an ordered slot list into rows keyed by the thousands
// bucket of the display order.
func GroupRows(slots []*article.Article) []Row {
	rows := make([]Row, 0, len(slots))

	for _, slot := range slots {
		bucket := slot.DisplayOrder / 1000

		if len(rows) == 0 || rows[len(rows)-1].Index != bucket {
			rows = append(rows, Row{Index: bucket})
		}
		last := len(rows) - 1
		rows[last].Slots = append(rows[last].Slots, slot)
	}

	return rows
}

/*
SlotChildren resolves the member articles of a slot container.

The container's layout data carries the child ids under "article_ids".
Missing or draft children are skipped rather than failing the slot.
*/
func (service *Service) SlotChildren(ctx context.Context, slot *article.Article) ([]*article.Article, error) {
	ids := childIDs(slot.LayoutData)
	if len(ids) == 0 {
		return nil, nil
	}

	children := make([]*article.Article, 0, len(ids))
	for _, id := range ids {
		child, err := service.repo.GetByID(ctx, id)
		if err != nil {
			// A stale id in the slot data must not blank the slider.
			service.logger.Warn("slot_child_missing",
				slog.Int64("slot_id", slot.ID),
				slog.Int64("child_id", id),
			)
			continue
		}
		if child.IsTemp {
			continue
		}
		children = append(children, child)
	}

	return children, nil
}

// childIDs extracts the child article ids from slot layout data. JSON
// numbers arrive as float64.
func childIDs(layoutData map[string]any) []int64 {
	raw, ok := layoutData["article_ids"].([]any)
	if !ok {
		return nil
	}

	ids := make([]int64, 0, len(raw))
	for _, v := range raw {
		switch n := v.(type) {
		case float64:
			ids = append(ids, int64(n))
		case int64:
			ids = append(ids, n)
		}
	}
	return ids
}

// # Section Pages

/*
SectionPage returns the articles of a (section, language) pair packed into
grid rows.

Each article is annotated with a computed grid size: 6 for the default
2-per-row packing, 4 for 3-per-row. The size is render metadata only and is
never persisted.
*/
func (service *Service) SectionPage(ctx context.Context, section article.Section, lang article.Language, perRow, limit, offset int) ([][]*article.Article, error) {
	articles, err := service.repo.ListSection(ctx, section, lang, false, limit, offset)
	if err != nil {
		return nil, err
	}

	return PackGrid(articles, perRow), nil
}

// PackGrid splits an ordered article list into rows of perRow entries and
// assigns each article its grid size.
func PackGrid(articles []*article.Article, perRow int) [][]*article.Article {
	if perRow <= 0 {
		perRow = DefaultPerRow
	}
	gridSize := gridColumns / perRow

	rows := make([][]*article.Article, 0, (len(articles)+perRow-1)/perRow)
	for i, a := range articles {
		a.GridSize = gridSize
		if i%perRow == 0 {
			rows = append(rows, make([]*article.Article, 0, perRow))
		}
		last := len(rows) - 1
		rows[last] = append(rows[last], a)
	}

	return rows
}
