package mission

import (
	"math"
	"strings"

	"dispatch/internal/entities"
)

func isValidAddress(a entities.Address) bool {
	if strings.TrimSpace(a.Line1) == "" || strings.TrimSpace(a.City) == "" {
		return false
	}
	// координаты опциональны, но если пришла одна - нужна и вторая
	if (a.Lat == nil) != (a.Lng == nil) {
		return false
	}
	if a.Lat != nil && !isValidCoordinates(*a.Lat, *a.Lng) {
		return false
	}
	return true
}

func isValidCoordinates(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

func isValidLocation(l entities.Location) bool {
	if !isValidCoordinates(l.Lat, l.Lng) {
		return false
	}
	return l.Accuracy == nil || *l.Accuracy >= 0
}
