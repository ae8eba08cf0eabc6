// Package translate maps language tags to model codes and runs the
// actual translation through a pluggable model backend. The loaded
// backend session is process-wide state: created lazily on first use,
// reused across requests, and released by ClearCache.
package translate
