package utils

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"p9e.in/splicing/models"
)

var errCoordinateFormat = errors.New(`coordinates must look like "<lat>, <lon>"`)

// ParseCoordinates parses the free-form "<lat>, <lon>" string captured by the
// entry form. The returned point is in orb's (lon, lat) order.
func ParseCoordinates(s string) (orb.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return orb.Point{}, errCoordinateFormat
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return orb.Point{}, errCoordinateFormat
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return orb.Point{}, errCoordinateFormat
	}
	if err := validateCoordinate(lat, lng); err != nil {
		return orb.Point{}, err
	}
	return orb.Point{lng, lat}, nil
}

// FormatCoordinates renders a point the way the browser form does (6 decimals).
func FormatCoordinates(p orb.Point) string {
	return fmt.Sprintf("%.6f, %.6f", p.Lat(), p.Lon())
}

func validateCoordinate(lat, lng float64) error {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return errCoordinateFormat
	}
	if lat < -90 || lat > 90 {
		return fmt.Errorf("latitude %.6f is out of valid range [-90, 90]", lat)
	}
	if lng < -180 || lng > 180 {
		return fmt.Errorf("longitude %.6f is out of valid range [-180, 180]", lng)
	}
	return nil
}

// ReportsToGeoJSON builds a feature collection with one point per report that
// carries parseable coordinates. Reports without usable coordinates are
// skipped; the count of skipped reports is returned alongside.
func ReportsToGeoJSON(reports []models.Report) (*geojson.FeatureCollection, int) {
	fc := geojson.NewFeatureCollection()
	var points orb.MultiPoint
	skipped := 0
	for _, r := range reports {
		if r.GpsCoordinates == nil {
			skipped++
			continue
		}
		p, err := ParseCoordinates(*r.GpsCoordinates)
		if err != nil {
			skipped++
			continue
		}
		f := geojson.NewFeature(p)
		f.ID = r.ID
		f.Properties["id"] = r.ID
		f.Properties["zone"] = r.Zone
		f.Properties["jobId"] = r.JobID
		f.Properties["name"] = r.Name
		f.Properties["date"] = r.Date
		f.Properties["status"] = r.StatusLabel()
		f.Properties["gps"] = FormatCoordinates(p)
		fc.Append(f)
		points = append(points, p)
	}
	if len(points) > 0 {
		fc.BBox = geojson.NewBBox(points.Bound())
	}
	return fc, skipped
}
