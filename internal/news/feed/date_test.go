// Copyright (c) 2026 Polarnews Media. All rights reserved.
// Author: dev@polarnews.gl

package feed_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nuukmedia/polarnews/internal/news/feed"
)

func TestFormatLastMod(t *testing.T) {
	tests := []struct {
		name      string
		published time.Time
		want      string
	}{
		{
			"utc_afternoon",
			time.Date(2026, 1, 22, 13, 45, 0, 0, time.UTC),
			"2026-01-22T00:00+01:00",
		},
		{
			"cet_input_keeps_its_date",
			time.Date(2026, 1, 23, 1, 30, 0, 0, time.FixedZone("CET", 3600)),
			"2026-01-23T00:00+01:00",
		},
		{
			// Late UTC evening is already past midnight UTC+1, so the
			// date matches the offset in the label.
			"late_utc_evening_rolls_into_next_day",
			time.Date(2026, 1, 22, 23, 30, 0, 0, time.UTC),
			"2026-01-23T00:00+01:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, feed.FormatLastMod(tt.published))
		})
	}
}

func TestFormatNewsDate(t *testing.T) {
	published := time.Date(2026, 1, 22, 13, 45, 0, 0, time.UTC)

	assert.Equal(t, "2026-01-22T13:45:00+00:00", feed.FormatNewsDate(published))
}

func TestFormatNewsDate_ConvertsToUTC(t *testing.T) {
	published := time.Date(2026, 1, 22, 14, 45, 0, 0, time.FixedZone("CET", 3600))

	assert.Equal(t, "2026-01-22T13:45:00+00:00", feed.FormatNewsDate(published))
}
