package state

import (
	"strconv"
	"strings"
)

// NeedsUpdate reports whether catalogVersion is newer than installedVersion
// under a component-wise numeric comparison of dot-separated segments.
// Missing segments compare as 0, so "1.0" equals "1.0.0". An absent
// installed version always needs an update.
func NeedsUpdate(installedVersion, catalogVersion string) bool {
	if installedVersion == "" {
		return true
	}
	return compareVersions(catalogVersion, installedVersion) > 0
}

func compareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}
	for i := 0; i < n; i++ {
		av := segment(as, i)
		bv := segment(bs, i)
		if av != bv {
			if av > bv {
				return 1
			}
			return -1
		}
	}
	return 0
}

// segment returns the numeric value of the i-th version segment, treating
// missing or non-numeric segments as 0.
func segment(parts []string, i int) int {
	if i >= len(parts) {
		return 0
	}
	v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
	if err != nil {
		return 0
	}
	return v
}
