// Copyright (c) 2026 Polarnews Media. All rights reserved.
// Author: dev@polarnews.gl

package feed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nuukmedia/polarnews/internal/news/feed"
)

func TestRewrite(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		host string
		want string
	}{
		{
			"replaces_origin",
			"http://origin.example/samfund/foo/123",
			"www.pub.example",
			"https://www.pub.example/samfund/foo/123",
		},
		{
			"preserves_query_and_fragment",
			"http://origin.example/samfund/foo/123?x=1#top",
			"www.pub.example",
			"https://www.pub.example/samfund/foo/123?x=1#top",
		},
		{
			"upgrades_scheme",
			"http://www.pub.example/erhverv/bar/9",
			"www.pub.example",
			"https://www.pub.example/erhverv/bar/9",
		},
		{
			"bare_origin_becomes_root",
			"https://origin.example",
			"www.pub.example",
			"https://www.pub.example",
		},
		{
			"relative_path_input",
			"/kultur/baz/77",
			"www.pub.example",
			"https://www.pub.example/kultur/baz/77",
		},
		{
			"path_without_leading_slash",
			"kultur/baz/77",
			"www.pub.example",
			"https://www.pub.example/kultur/baz/77",
		},
		{
			"empty_input",
			"",
			"www.pub.example",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, feed.Rewrite(tt.raw, tt.host))
		})
	}
}

func TestRewrite_Idempotent(t *testing.T) {
	once := feed.Rewrite("http://origin.example/sport/kamp/55?page=2#live", "www.pub.example")
	twice := feed.Rewrite(once, "www.pub.example")

	assert.Equal(t, once, twice)
}
