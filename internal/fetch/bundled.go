package fetch

import (
	"embed"
	"sort"
	"strconv"
	"strings"
)

// Sample year files shipped with the binary so the common demo stations
// work offline. Names follow the archive convention {id}-{year}.gz.
//
//go:embed data/*.gz
var bundledFS embed.FS

// bundledIndex maps station id to the sorted years present in the embedded
// sample data.
func bundledIndex() map[string][]int {
	entries, err := bundledFS.ReadDir("data")
	if err != nil {
		return map[string][]int{}
	}

	index := make(map[string][]int)
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".gz")
		// {usaf}-{wban}-{year}
		i := strings.LastIndex(name, "-")
		if i < 0 {
			continue
		}
		year, err := strconv.Atoi(name[i+1:])
		if err != nil {
			continue
		}
		id := name[:i]
		index[id] = append(index[id], year)
	}
	for id := range index {
		sort.Ints(index[id])
	}
	return index
}
