package rules

import (
	"net/url"
	"path"
	"strings"
)

// splitDestination separates a link destination into its path and fragment
// components, dropping any query string. Topic documents URL-encode spaces in
// relative links, so the path component is percent-decoded before resolution.
func splitDestination(dest string) (target, fragment string) {
	trimmed := strings.TrimSpace(dest)
	if idx := strings.Index(trimmed, "#"); idx >= 0 {
		fragment = trimmed[idx+1:]
		trimmed = trimmed[:idx]
	}
	if idx := strings.Index(trimmed, "?"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	if decoded, err := url.PathUnescape(trimmed); err == nil {
		trimmed = decoded
	}
	if decoded, err := url.PathUnescape(fragment); err == nil {
		fragment = decoded
	}
	return trimmed, fragment
}

// resolveRelative resolves target against the directory containing docPath.
// Both inputs and the result are slash-separated corpus-relative paths.
// Resolutions escaping the corpus root return "..".
func resolveRelative(docPath, target string) string {
	target = strings.TrimSpace(target)
	if target == "" {
		return ""
	}
	if strings.HasPrefix(target, "/") {
		// Treat a leading slash as corpus-root relative.
		return path.Clean(strings.TrimPrefix(target, "/"))
	}
	resolved := path.Join(path.Dir(docPath), target)
	return path.Clean(resolved)
}

// escapesCorpus reports whether a resolved path points above the corpus root.
func escapesCorpus(resolved string) bool {
	return resolved == ".." || strings.HasPrefix(resolved, "../")
}
