// Copyright (c) 2026 Polarnews Media. All rights reserved.
// Author: dev@polarnews.gl

package feed

import "time"

// # Timestamp Formats

// lastModZone is the publication's local offset that <lastmod> dates are
// anchored to.
var lastModZone = time.FixedZone("UTC+1", 3600)

/*
FormatLastMod renders a publication timestamp for a sitemap <lastmod>
element.

Only the calendar date carries signal for our update cadence, so the time
of day is pinned to midnight in the publication's local offset (UTC+1),
with the date taken in that same offset:

	2026-01-22T00:00+01:00
*/
func FormatLastMod(published time.Time) string {
	return published.In(lastModZone).Format("2006-01-02") + "T00:00+01:00"
}

/*
FormatNewsDate renders a publication timestamp for a Google News
<news:publication_date> element, second-resolution in UTC:

	2026-01-22T13:45:00+00:00
*/
func FormatNewsDate(published time.Time) string {
	return published.UTC().Format("2006-01-02T15:04:05") + "+00:00"
}
