package transporters

import (
	"fmt"
	"regexp"
	"strconv"
)

const firstTransporterID = "T-CARGO-0001"

var (
	transporterIDPattern = regexp.MustCompile(`^T-CARGO-(\d+)$`)
	vehicleIDPattern     = regexp.MustCompile(`^VH-(\d+)$`)
)

// NextTransporterID derives the next transporter id from the greatest
// persisted one (zero-padded, so lexicographic max is numeric max). A missing
// or malformed input falls back to the base id; ok is false so the caller can
// log it. A collision on fallback is caught by the unique constraint.
func NextTransporterID(last string) (id string, ok bool) {
	if last == "" {
		return firstTransporterID, true
	}
	m := transporterIDPattern.FindStringSubmatch(last)
	if m == nil {
		return firstTransporterID, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return firstTransporterID, false
	}
	return fmt.Sprintf("T-CARGO-%04d", n+1), true
}

// NextVehicleID allocates the next vehicle id for a fleet by taking the
// maximum numeric suffix across all vehicles plus one. Scanning the whole
// list keeps ids unique under arbitrary deletion order; the last element
// alone would re-issue ids after a middle delete.
func NextVehicleID(fleet []Vehicle) string {
	max := 0
	for _, v := range fleet {
		m := vehicleIDPattern.FindStringSubmatch(v.VehicleID)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("VH-%04d", max+1)
}
