// Package navigation models the docs navigation configuration and rewrites it
// into a language-dropdown-aware form consistent with the filesystem fan-out.
package navigation

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is the root of a navigation configuration file.
type Config struct {
	Navigation *Navigation `json:"navigation,omitempty" yaml:"navigation,omitempty"`
}

// Navigation holds the version list.
type Navigation struct {
	Versions []Version `json:"versions,omitempty" yaml:"versions,omitempty"`
}

// Version is one documentation version. Before transformation it carries
// Tabs; after transformation of a conditional version it carries Dropdowns.
type Version struct {
	Version   string     `json:"version" yaml:"version"`
	Dropdowns []Dropdown `json:"dropdowns,omitempty" yaml:"dropdowns,omitempty"`
	Tabs      []Tab      `json:"tabs,omitempty" yaml:"tabs,omitempty"`
}

// Dropdown is a per-language navigation subtree.
type Dropdown struct {
	Dropdown string `json:"dropdown" yaml:"dropdown"`
	Icon     string `json:"icon" yaml:"icon"`
	Tabs     []Tab  `json:"tabs,omitempty" yaml:"tabs,omitempty"`
}

// Tab groups navigation groups under a labeled tab.
type Tab struct {
	Tab    string  `json:"tab" yaml:"tab"`
	Groups []Group `json:"groups,omitempty" yaml:"groups,omitempty"`
}

// Group is an ordered list of entries, each a page path or a nested group.
type Group struct {
	Group string      `json:"group" yaml:"group"`
	Pages []PageEntry `json:"pages" yaml:"pages"`
}

// PageEntry is a tagged union: exactly one of Page (a forward-slash relative
// page path) or Group (a nested group) is set. Modeled explicitly so the
// recursive traversals never probe untyped maps.
type PageEntry struct {
	Page  string
	Group *Group
}

// IsGroup reports whether the entry is a nested group.
func (e PageEntry) IsGroup() bool { return e.Group != nil }

// MarshalJSON emits either the bare page string or the nested group object.
func (e PageEntry) MarshalJSON() ([]byte, error) {
	if e.Group != nil {
		return json.Marshal(e.Group)
	}
	return json.Marshal(e.Page)
}

// UnmarshalJSON accepts either a page string or a group object.
func (e *PageEntry) UnmarshalJSON(data []byte) error {
	var page string
	if err := json.Unmarshal(data, &page); err == nil {
		e.Page = page
		e.Group = nil
		return nil
	}
	var group Group
	if err := json.Unmarshal(data, &group); err != nil {
		return fmt.Errorf("page entry is neither a string nor a group: %w", err)
	}
	e.Page = ""
	e.Group = &group
	return nil
}

// UnmarshalYAML accepts either a page string or a group mapping.
func (e *PageEntry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		e.Group = nil
		return node.Decode(&e.Page)
	}
	var group Group
	if err := node.Decode(&group); err != nil {
		return fmt.Errorf("page entry is neither a string nor a group: %w", err)
	}
	e.Page = ""
	e.Group = &group
	return nil
}

// Clone returns a deep copy of the config. Transformations always branch from
// a clone so the loaded input is never mutated in place.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	out := &Config{}
	if c.Navigation != nil {
		nav := &Navigation{Versions: make([]Version, len(c.Navigation.Versions))}
		for i, v := range c.Navigation.Versions {
			nav.Versions[i] = v.clone()
		}
		out.Navigation = nav
	}
	return out
}

func (v Version) clone() Version {
	out := Version{Version: v.Version}
	if v.Tabs != nil {
		out.Tabs = cloneTabs(v.Tabs)
	}
	if v.Dropdowns != nil {
		out.Dropdowns = make([]Dropdown, len(v.Dropdowns))
		for i, d := range v.Dropdowns {
			out.Dropdowns[i] = Dropdown{Dropdown: d.Dropdown, Icon: d.Icon, Tabs: cloneTabs(d.Tabs)}
		}
	}
	return out
}

func cloneTabs(tabs []Tab) []Tab {
	if tabs == nil {
		return nil
	}
	out := make([]Tab, len(tabs))
	for i, t := range tabs {
		ct := Tab{Tab: t.Tab}
		if t.Groups != nil {
			ct.Groups = make([]Group, len(t.Groups))
			for j, g := range t.Groups {
				ct.Groups[j] = cloneGroup(g)
			}
		}
		out[i] = ct
	}
	return out
}

func cloneGroup(g Group) Group {
	out := Group{Group: g.Group}
	if g.Pages != nil {
		out.Pages = make([]PageEntry, len(g.Pages))
		for i, e := range g.Pages {
			if e.Group != nil {
				nested := cloneGroup(*e.Group)
				out.Pages[i] = PageEntry{Group: &nested}
			} else {
				out.Pages[i] = PageEntry{Page: e.Page}
			}
		}
	}
	return out
}
