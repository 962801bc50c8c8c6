package location

import (
	"context"
	"fmt"
)

// DefaultLocation is the fallback string recorded when a punch arrives with
// no GPS payload at all.
const DefaultLocation = "Unknown|0.0000|0.0000"

// Payload is the optional GPS data attached to a punch request.
type Payload struct {
	Address   string   `json:"address"`
	City      string   `json:"city"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Provider resolves a location string when the caller supplied none.
type Provider interface {
	Default(ctx context.Context) string
}

// StaticProvider always answers with DefaultLocation. IP-based geolocation
// would slot in here as an alternative implementation.
type StaticProvider struct{}

func (StaticProvider) Default(ctx context.Context) string {
	return DefaultLocation
}

// Format encodes a payload as "address|lat|lng" with coordinates to six
// decimal places. Missing coordinates fall back to 0.0, not an error; a nil
// payload falls back to DefaultLocation.
func Format(p *Payload) string {
	if p == nil {
		return DefaultLocation
	}
	address := p.Address
	if address == "" {
		address = "Unknown"
	}

	var lat, lng float64
	if p.Latitude != nil {
		lat = *p.Latitude
	}
	if p.Longitude != nil {
		lng = *p.Longitude
	}

	return fmt.Sprintf("%s|%.6f|%.6f", address, lat, lng)
}
