package submission

import "strings"

// Geolocation is the coordinate pair captured once per submission attempt.
// Coordinates stay strings end to end; the log is append-only and nothing
// downstream does arithmetic on them.
type Geolocation struct {
	Latitude  string
	Longitude string
}

// ParseGeolocation splits a "lat,lng" pair as delivered by the capture layer.
// An absent or malformed value falls back to ("0", "0").
func ParseGeolocation(raw string) Geolocation {
	parts := strings.SplitN(strings.TrimSpace(raw), ",", 2)
	if len(parts) != 2 {
		return Geolocation{Latitude: "0", Longitude: "0"}
	}
	lat := strings.TrimSpace(parts[0])
	lng := strings.TrimSpace(parts[1])
	if lat == "" || lng == "" {
		return Geolocation{Latitude: "0", Longitude: "0"}
	}
	return Geolocation{Latitude: lat, Longitude: lng}
}
