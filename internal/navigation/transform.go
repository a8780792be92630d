package navigation

import (
	"strings"

	"git.home.luguber.info/inful/docfanout/internal/language"
	"git.home.luguber.info/inful/docfanout/internal/util/sets"
)

// Transform returns a new config in which every version referencing a
// conditional top-level directory has its tab list replaced by one dropdown
// per language variant, each a deep copy of the original tabs with page paths
// rewritten to include the variant's URL segment. Versions without
// conditional references are returned structurally identical. The input is
// never mutated.
//
// conditionalDirs must be the exact set the filesystem fan-out consumed;
// recomputing it here would let the two transforms diverge.
func Transform(cfg *Config, conditionalDirs sets.Set[string]) *Config {
	out := cfg.Clone()
	if out == nil || out.Navigation == nil {
		return out
	}

	for i, version := range out.Navigation.Versions {
		if !versionHasConditionalPages(version, conditionalDirs) {
			continue
		}
		if len(version.Tabs) == 0 {
			continue
		}
		out.Navigation.Versions[i] = Version{
			Version:   version.Version,
			Dropdowns: expandTabs(version.Tabs),
		}
	}
	return out
}

// versionHasConditionalPages reports whether any page path in the version's
// tab tree starts with a conditional top-level directory. The search
// short-circuits on the first match.
func versionHasConditionalPages(version Version, conditionalDirs sets.Set[string]) bool {
	for _, tab := range version.Tabs {
		for _, group := range tab.Groups {
			if groupHasConditionalPages(group, conditionalDirs) {
				return true
			}
		}
	}
	return false
}

func groupHasConditionalPages(group Group, conditionalDirs sets.Set[string]) bool {
	for _, entry := range group.Pages {
		if entry.IsGroup() {
			if groupHasConditionalPages(*entry.Group, conditionalDirs) {
				return true
			}
			continue
		}
		if first, _, found := strings.Cut(entry.Page, "/"); found && conditionalDirs.Has(first) {
			return true
		}
	}
	return false
}

// expandTabs produces one dropdown per language variant, each carrying a deep
// copy of tabs with every page path rewritten for that variant.
func expandTabs(tabs []Tab) []Dropdown {
	variants := language.Variants()
	dropdowns := make([]Dropdown, 0, len(variants))
	for _, v := range variants {
		copied := cloneTabs(tabs)
		for i := range copied {
			rewriteTab(&copied[i], v.Segment)
		}
		dropdowns = append(dropdowns, Dropdown{
			Dropdown: v.Title,
			Icon:     v.Icon,
			Tabs:     copied,
		})
	}
	return dropdowns
}

func rewriteTab(tab *Tab, segment string) {
	for i := range tab.Groups {
		rewriteGroup(&tab.Groups[i], segment)
	}
}

func rewriteGroup(group *Group, segment string) {
	for i, entry := range group.Pages {
		if entry.IsGroup() {
			rewriteGroup(group.Pages[i].Group, segment)
			continue
		}
		group.Pages[i].Page = rewritePagePath(entry.Page, segment)
	}
}

// rewritePagePath inserts the language segment after the first path segment,
// or prepends it when the path has no directory part.
func rewritePagePath(page, segment string) string {
	if first, rest, found := strings.Cut(page, "/"); found {
		return first + "/" + segment + "/" + rest
	}
	return segment + "/" + page
}
