// Copyright (c) 2026 Polarnews Media. All rights reserved.
// Author: dev@polarnews.gl

package translation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromoteRoot(t *testing.T) {
	tests := []struct {
		name     string
		siblings []int64
		want     int64
		promoted bool
	}{
		{
			// Group {10, 11, 12} loses its root 10: the oldest
			// sibling takes over.
			"oldest_sibling_becomes_root",
			[]int64{11, 12},
			11, true,
		},
		{
			"smallest_id_wins_regardless_of_order",
			[]int64{12, 11},
			11, true,
		},
		{
			"lone_sibling_promoted",
			[]int64{42},
			42, true,
		},
		{
			"root_without_dependants",
			nil,
			0, false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := promoteRoot(tt.siblings)
			assert.Equal(t, tt.promoted, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
