package visit

import (
	"strconv"
	"strings"
)

// Location is the map-ready decomposition of a composite address.
type Location struct {
	Lat  float64
	Lon  float64
	Text string
}

// Coordinates parses the backend's composite address format: a
// comma-joined string whose first two fields are latitude and longitude
// and whose remaining fields are the free-text address. Absent or
// unparseable coordinates return ok=false with the whole string as text,
// meaning "no map available" rather than an error.
func Coordinates(address string) (Location, bool) {
	parts := strings.SplitN(address, ",", 3)
	if len(parts) < 3 {
		return Location{Text: address}, false
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Location{Text: address}, false
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Location{Text: address}, false
	}

	return Location{
		Lat:  lat,
		Lon:  lon,
		Text: strings.TrimSpace(parts[2]),
	}, true
}
