// Package tzdb derives an IANA timezone from a fixed UTC offset. Some site
// configurations omit the installation timezone and only carry the offset
// embedded in the installation timestamp; calendar-aligned bucket boundaries
// need a real zone to localize against across DST transitions.
package tzdb

import (
	"fmt"
	"time"
	// Embed the zone database so offset probing does not depend on the
	// host having tzdata installed.
	_ "time/tzdata"
)

// FromOffset returns the first zone whose UTC offset at the given instant
// matches offsetSeconds. Probing order is the regional list, then the common
// world list, then the exhaustive list; within a list, enumeration order
// breaks ties.
func FromOffset(at time.Time, offsetSeconds int) (*time.Location, error) {
	for _, list := range [][]string{regionalZones, commonZones, allZones} {
		for _, name := range list {
			loc, err := time.LoadLocation(name)
			if err != nil {
				continue
			}
			if _, off := at.In(loc).Zone(); off == offsetSeconds {
				return loc, nil
			}
		}
	}
	return nil, fmt.Errorf("no zone found for offset %+d at %s", offsetSeconds, at.Format(time.RFC3339))
}

// FromConfig resolves a site's timezone: the named zone when present,
// otherwise a zone derived from the installation instant's fixed offset.
func FromConfig(name string, installation time.Time) (*time.Location, error) {
	if name != "" {
		loc, err := time.LoadLocation(name)
		if err != nil {
			return nil, fmt.Errorf("loading zone %q: %v", name, err)
		}
		return loc, nil
	}
	_, off := installation.Zone()
	return FromOffset(installation, off)
}
