package transporters

import (
	"testing"
	"time"
)

func TestNextTransporterID(t *testing.T) {
	cases := []struct {
		name   string
		last   string
		want   string
		wantOK bool
	}{
		{"empty table", "", "T-CARGO-0001", true},
		{"first increment", "T-CARGO-0001", "T-CARGO-0002", true},
		{"mid range", "T-CARGO-0042", "T-CARGO-0043", true},
		{"padding overflow", "T-CARGO-9999", "T-CARGO-10000", true},
		{"beyond padding", "T-CARGO-10000", "T-CARGO-10001", true},
		{"malformed prefix", "X-CARGO-0007", "T-CARGO-0001", false},
		{"missing suffix", "T-CARGO-", "T-CARGO-0001", false},
		{"garbage", "hello", "T-CARGO-0001", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := NextTransporterID(tc.last)
			if got != tc.want || ok != tc.wantOK {
				t.Fatalf("NextTransporterID(%q) = (%q, %v), want (%q, %v)", tc.last, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func fleetOf(ids ...string) []Vehicle {
	fleet := make([]Vehicle, 0, len(ids))
	for _, id := range ids {
		fleet = append(fleet, Vehicle{VehicleID: id, CreatedAt: time.Now()})
	}
	return fleet
}

func TestNextVehicleID(t *testing.T) {
	cases := []struct {
		name  string
		fleet []Vehicle
		want  string
	}{
		{"empty fleet", nil, "VH-0001"},
		{"single", fleetOf("VH-0001"), "VH-0002"},
		{"gap after middle delete", fleetOf("VH-0001", "VH-0003"), "VH-0004"},
		{"only last remains", fleetOf("VH-0005"), "VH-0006"},
		{"unordered", fleetOf("VH-0003", "VH-0001", "VH-0002"), "VH-0004"},
		{"malformed ignored", fleetOf("bogus", "VH-0002"), "VH-0003"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NextVehicleID(tc.fleet); got != tc.want {
				t.Fatalf("NextVehicleID = %q, want %q", got, tc.want)
			}
		})
	}
}

// Deleting the first vehicle must not cause the next allocation to collide
// with the surviving one.
func TestNextVehicleIDNoReuseAfterDelete(t *testing.T) {
	fleet := fleetOf("VH-0001", "VH-0002")
	fleet = fleet[1:] // drop VH-0001

	next := NextVehicleID(fleet)
	for _, v := range fleet {
		if v.VehicleID == next {
			t.Fatalf("allocated id %q collides with existing vehicle", next)
		}
	}
	if next != "VH-0003" {
		t.Fatalf("NextVehicleID = %q, want VH-0003", next)
	}
}
