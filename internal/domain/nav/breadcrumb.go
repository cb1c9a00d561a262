package nav

import "strings"

// Crumb is one breadcrumb entry. An empty Path marks the current page; the
// last crumb in a trail never carries a path.
type Crumb struct {
	Label string `json:"label"`
	Path  string `json:"path,omitempty"`
}

// FromPath derives a breadcrumb trail from the path alone: each segment is
// de-hyphenated and title-cased for its label, and every crumb except the
// last links to its cumulative prefix.
func FromPath(pathname string) []Crumb {
	segments := splitPath(pathname)
	if len(segments) == 0 {
		return nil
	}

	crumbs := make([]Crumb, 0, len(segments))
	prefix := ""
	for i, seg := range segments {
		prefix += "/" + seg
		crumb := Crumb{Label: segmentLabel(seg)}
		if i < len(segments)-1 {
			crumb.Path = prefix
		}
		crumbs = append(crumbs, crumb)
	}
	return crumbs
}

// FromNavigation derives a breadcrumb trail using the navigation table for
// labels: when a cumulative prefix matches an item's path exactly, the
// item's display name is used; otherwise the generic per-segment label
// applies. The last crumb carries no path regardless of which branch
// produced its label.
func FromNavigation(pathname string, sections []Section) []Crumb {
	segments := splitPath(pathname)
	if len(segments) == 0 {
		return nil
	}

	crumbs := make([]Crumb, 0, len(segments))
	prefix := ""
	for i, seg := range segments {
		prefix += "/" + seg

		label := segmentLabel(seg)
		if item, ok := itemByPath(sections, prefix); ok {
			label = item.Name
		}

		crumb := Crumb{Label: label}
		if i < len(segments)-1 {
			crumb.Path = prefix
		}
		crumbs = append(crumbs, crumb)
	}
	return crumbs
}

// itemByPath scans all sections for an item with an exact path match.
func itemByPath(sections []Section, path string) (Item, bool) {
	for _, sec := range sections {
		for _, item := range sec.Items {
			if item.Path == path {
				return item, true
			}
		}
	}
	return Item{}, false
}

func splitPath(pathname string) []string {
	parts := strings.Split(pathname, "/")
	segments := parts[:0]
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// segmentLabel turns "match-reports" into "Match Reports".
func segmentLabel(seg string) string {
	words := strings.Split(seg, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
