// Copyright (c) 2026 Polarnews Media. All rights reserved.
// Author: dev@polarnews.gl

package feed

import "strings"

// Rewrite strips the origin of a stored URL and rebuilds it on https with
// the given host.
//
// Path, query, and fragment are preserved byte-exact; only the scheme and
// host change. This decouples the stored URL's origin (whatever the crawler
// saw) from the publication origin. The operation is idempotent:
// Rewrite(Rewrite(u, h), h) == Rewrite(u, h).
func Rewrite(raw, host string) string {
	if raw == "" {
		return ""
	}

	rest := raw
	if i := strings.Index(raw, "://"); i >= 0 {
		rest = raw[i+3:]
		// Drop the authority part, keep everything from the first path,
		// query, or fragment delimiter on.
		if j := strings.IndexAny(rest, "/?#"); j >= 0 {
			rest = rest[j:]
		} else {
			rest = ""
		}
	} else if !strings.HasPrefix(rest, "/") {
		rest = "/" + rest
	}

	return "https://" + host + rest
}
