package station

import (
	"sort"
	"strings"
)

// Registry is an immutable, case-insensitive lookup tree over a station
// history snapshot: ISO country codes at the top level, US states one level
// down, and sanitized station names at the leaves. It replaces dynamic
// attribute tricks with an explicit tree: resolve a dotted path like
// "US.NY.LAGUARDIA_AP" to a station id, or scan leaf names with Search.
type Registry struct {
	root *Group
}

// Group is one interior node of the registry tree.
type Group struct {
	children map[string]*Group
	stations map[string]string
}

// NewRegistry builds the tree from a station snapshot. Stations are sorted
// by history end date before insertion, so when two stations share a
// sanitized name the one with the most recent data wins.
func NewRegistry(stations []Station) *Registry {
	sorted := make([]Station, len(stations))
	copy(sorted, stations)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].End.Before(sorted[j].End) })

	root := newGroup()
	for _, st := range sorted {
		code := st.CountryCode
		if code == "" {
			code = "XX"
		}
		country := root.child(code)

		leaf := country
		if code == "US" && st.State != "" {
			leaf = country.child(st.State)
		}
		leaf.stations[SanitizeName(st.Name)] = st.ID
	}
	return &Registry{root: root}
}

func newGroup() *Group {
	return &Group{children: map[string]*Group{}, stations: map[string]string{}}
}

func (g *Group) child(key string) *Group {
	key = strings.ToUpper(key)
	c, ok := g.children[key]
	if !ok {
		c = newGroup()
		g.children[key] = c
	}
	return c
}

// Groups lists the node's child group names, sorted.
func (g *Group) Groups() []string {
	out := make([]string, 0, len(g.children))
	for name := range g.children {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Stations lists the node's leaf station names, sorted.
func (g *Group) Stations() []string {
	out := make([]string, 0, len(g.stations))
	for name := range g.stations {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Group descends one level, case-insensitively.
func (g *Group) Group(name string) (*Group, bool) {
	c, ok := g.children[strings.ToUpper(name)]
	return c, ok
}

// Station resolves a leaf station name to its id, case-insensitively.
func (g *Group) Station(name string) (string, bool) {
	id, ok := g.stations[strings.ToUpper(name)]
	return id, ok
}

// Root returns the top of the tree for manual traversal.
func (r *Registry) Root() *Group {
	return r.root
}

// Resolve walks a dotted path ("US.NY.LAGUARDIA_AP") to a station id. Each
// segment is matched case-insensitively; the final segment must be a leaf.
func (r *Registry) Resolve(path string) (string, bool) {
	segments := strings.Split(path, ".")
	node := r.root
	for i, seg := range segments {
		if i == len(segments)-1 {
			return node.Station(seg)
		}
		next, ok := node.Group(seg)
		if !ok {
			return "", false
		}
		node = next
	}
	return "", false
}

// Search scans leaf station names for a case-insensitive substring and
// returns dotted paths mapped to station ids, e.g.
// {"US.NY.LAGUARDIA_AP": "725030-14732"}.
func (r *Registry) Search(pattern string) map[string]string {
	pattern = strings.ToUpper(pattern)
	results := make(map[string]string)

	for code, country := range r.root.children {
		for name, id := range country.stations {
			if strings.Contains(name, pattern) {
				results[code+"."+name] = id
			}
		}
		for state, group := range country.children {
			for name, id := range group.stations {
				if strings.Contains(name, pattern) {
					results[code+"."+state+"."+name] = id
				}
			}
		}
	}
	return results
}

// SanitizeName converts a station name to a registry key:
// "LA GUARDIA AIRPORT" becomes "LA_GUARDIA_AIRPORT", "ST. LOUIS" becomes
// "ST_LOUIS". Non-alphanumeric runs collapse to a single underscore, a
// leading digit gets an underscore prefix, and an empty result is UNKNOWN.
func SanitizeName(name string) string {
	upper := strings.ToUpper(name)
	var b strings.Builder
	pendingSep := false
	for _, r := range upper {
		alnum := (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingSep = b.Len() > 0
			continue
		}
		if pendingSep {
			b.WriteByte('_')
			pendingSep = false
		}
		b.WriteRune(r)
	}

	out := b.String()
	if out == "" {
		return "UNKNOWN"
	}
	if out[0] >= '0' && out[0] <= '9' {
		out = "_" + out
	}
	return out
}
