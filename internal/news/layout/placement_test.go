// Copyright (c) 2026 Polarnews Media. All rights reserved.
// Author: dev@polarnews.gl

package layout_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuukmedia/polarnews/internal/news/article"
	"github.com/nuukmedia/polarnews/internal/news/layout"
	"github.com/nuukmedia/polarnews/internal/platform/apperr"
)

// stubRepository serves home slots and articles by id.
type stubRepository struct {
	home []*article.Article
	byID map[int64]*article.Article
}

func (stub *stubRepository) ListHome(_ context.Context, _ article.Language) ([]*article.Article, error) {
	return stub.home, nil
}

func (stub *stubRepository) ListSection(_ context.Context, _ article.Section, _ article.Language, _ bool, _, _ int) ([]*article.Article, error) {
	return nil, nil
}

func (stub *stubRepository) GetByID(_ context.Context, id int64) (*article.Article, error) {
	if found, ok := stub.byID[id]; ok {
		return found, nil
	}
	return nil, apperr.NotFound("Article")
}

func newTestService(repo layout.Repository) *layout.Service {
	return layout.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func slot(id int64, displayOrder int) *article.Article {
	return &article.Article{ID: id, DisplayOrder: displayOrder}
}

func TestGroupRows(t *testing.T) {
	tests := []struct {
		name  string
		slots []*article.Article
		want  [][]int64 // ids per row
	}{
		{
			"empty",
			nil,
			[][]int64{},
		},
		{
			"single_row",
			[]*article.Article{slot(1, 1000), slot(2, 1001)},
			[][]int64{{1, 2}},
		},
		{
			"row_break_on_thousands_bucket",
			[]*article.Article{slot(1, 1000), slot(2, 1001), slot(3, 2000), slot(4, 3000), slot(5, 3002)},
			[][]int64{{1, 2}, {3}, {4, 5}},
		},
		{
			"bucket_zero_is_a_row",
			[]*article.Article{slot(1, 0), slot(2, 1), slot(3, 1000)},
			[][]int64{{1, 2}, {3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := layout.GroupRows(tt.slots)
			require.Len(t, rows, len(tt.want))

			for i, wantIDs := range tt.want {
				gotIDs := make([]int64, 0, len(rows[i].Slots))
				for _, s := range rows[i].Slots {
					gotIDs = append(gotIDs, s.ID)
				}
				assert.Equal(t, wantIDs, gotIDs)
			}
		})
	}
}

func TestHomeRows_PreservesRowIndexes(t *testing.T) {
	repo := &stubRepository{
		home: []*article.Article{slot(1, 1000), slot(2, 4000), slot(3, 4001)},
	}

	rows, err := newTestService(repo).HomeRows(context.Background(), article.LanguageDanish)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 1, rows[0].Index)
	assert.Equal(t, 4, rows[1].Index)
	assert.Len(t, rows[1].Slots, 2)
}

func TestSlotChildren(t *testing.T) {
	repo := &stubRepository{
		byID: map[int64]*article.Article{
			11: {ID: 11},
			12: {ID: 12, IsTemp: true},
		},
	}

	slider := &article.Article{
		ID: 5,
		LayoutData: map[string]any{
			// JSON-decoded numbers are float64. 99 does not exist.
			"article_ids": []any{float64(11), float64(12), float64(99)},
		},
	}

	children, err := newTestService(repo).SlotChildren(context.Background(), slider)
	require.NoError(t, err)

	// The draft child and the stale id are skipped, not fatal.
	require.Len(t, children, 1)
	assert.Equal(t, int64(11), children[0].ID)
}

func TestSlotChildren_NoLayoutData(t *testing.T) {
	children, err := newTestService(&stubRepository{}).SlotChildren(context.Background(), &article.Article{ID: 7})
	require.NoError(t, err)
	assert.Empty(t, children)
}

func TestPackGrid(t *testing.T) {
	articles := func(n int) []*article.Article {
		out := make([]*article.Article, n)
		for i := range out {
			out[i] = &article.Article{ID: int64(i + 1)}
		}
		return out
	}

	tests := []struct {
		name         string
		count        int
		perRow       int
		wantRows     int
		wantGridSize int
	}{
		{"two_per_row", 5, 2, 3, 6},
		{"three_per_row", 6, 3, 2, 4},
		{"zero_falls_back_to_default", 4, 0, 2, 6},
		{"empty_list", 0, 2, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := layout.PackGrid(articles(tt.count), tt.perRow)
			require.Len(t, rows, tt.wantRows)

			if tt.count > 0 {
				assert.Equal(t, tt.wantGridSize, rows[0][0].GridSize)
			}
		})
	}
}
