package dtg

import (
	"time"

	"github.com/hlop3z/dtg/internal/tz"
)

// Local is the zone name that resolves to the host's zone.
const Local = tz.Local

// Zone resolves an IANA or POSIX-style zone name, or "local".
func Zone(name string) (*time.Location, error) {
	return tz.Resolve(name)
}

// ListZones returns the host database's zone names containing filter,
// case-insensitively. An empty filter returns every zone.
func ListZones(filter string) ([]string, error) {
	db, err := tz.OpenDatabase()
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return db.Search(filter)
}
