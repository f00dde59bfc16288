package transporters

import (
	"strings"
	"testing"
	"time"

	"github.com/cargomatters/backend/internal/domain"
)

func exportFixture() []Transporter {
	created := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	return []Transporter{
		{
			TransporterID:   "T-CARGO-0001",
			CompanyName:     `Acme "Heavy" Logistics`,
			ContactPerson:   "Asha Rao",
			GSTNumber:       "29ABCDE1234F1Z5",
			PANNumber:       "ABCDE1234F",
			Address:         "12, MG Road, Bengaluru",
			OperatingStates: []string{"Karnataka", "Goa"},
			VehiclesCount:   2,
			Vehicles: []Vehicle{
				{
					VehicleID:          "VH-0001",
					RegistrationNumber: "KA01AB1234",
					VehicleType:        "Container",
					Capacity:           "9 tons",
					ModelYear:          2021,
					DriverName:         "Ravi",
					DriverPhone:        "9876543210",
					Availability:       domain.AvailabilityAvailable,
					CreatedAt:          created,
				},
				{
					VehicleID:          "VH-0002",
					RegistrationNumber: "KA01AB5678",
					VehicleType:        "Trailer",
					Capacity:           "20 tons",
					ModelYear:          2019,
					Availability:       domain.AvailabilityOnTrip,
					CreatedAt:          created,
				},
			},
			Status:    domain.StatusApproved,
			CreatedAt: created,
		},
		{
			TransporterID: "T-CARGO-0002",
			CompanyName:   "Beta Movers",
			ContactPerson: "Vikram Singh",
			Status:        domain.StatusPending,
			CreatedAt:     created,
		},
	}
}

func assertEveryCellQuoted(t *testing.T, csv string) {
	t.Helper()
	for i, line := range strings.Split(csv, "\n") {
		if !strings.HasPrefix(line, `"`) || !strings.HasSuffix(line, `"`) {
			t.Fatalf("line %d not fully quoted: %q", i, line)
		}
		for j, cell := range strings.Split(line, `","`) {
			trimmed := strings.Trim(cell, `"`)
			inner := strings.ReplaceAll(trimmed, `""`, "")
			if strings.Contains(inner, `"`) {
				t.Fatalf("line %d cell %d has an unescaped quote: %q", i, j, cell)
			}
		}
	}
}

func TestCompaniesCSV(t *testing.T) {
	items := exportFixture()
	csv := CompaniesCSV(items)
	lines := strings.Split(csv, "\n")

	if len(lines) != len(items)+1 {
		t.Fatalf("got %d lines, want %d", len(lines), len(items)+1)
	}
	if lines[0] != `"Transporter ID","Company Name","Owner","GST","PAN","Address","Operating States","Vehicle Count","Created At"` {
		t.Fatalf("unexpected header: %s", lines[0])
	}
	if !strings.Contains(lines[1], `"Acme ""Heavy"" Logistics"`) {
		t.Fatalf("embedded quotes not doubled: %s", lines[1])
	}
	if !strings.Contains(lines[1], `"Karnataka; Goa"`) {
		t.Fatalf("operating states not joined: %s", lines[1])
	}
	if !strings.Contains(lines[1], `"2"`) {
		t.Fatalf("vehicle count not quoted: %s", lines[1])
	}
	if !strings.Contains(lines[1], `"2025-03-14T09:30:00Z"`) {
		t.Fatalf("created at not RFC3339: %s", lines[1])
	}
	assertEveryCellQuoted(t, csv)
}

func TestVehiclesCSV(t *testing.T) {
	items := exportFixture()
	csv := VehiclesCSV(items)
	lines := strings.Split(csv, "\n")

	// header + one row per (company, vehicle) pair; the fleetless company
	// contributes nothing
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.HasPrefix(lines[1], `"T-CARGO-0001","Acme ""Heavy"" Logistics","VH-0001","KA01AB1234","Container"`) {
		t.Fatalf("unexpected first row: %s", lines[1])
	}
	if !strings.Contains(lines[2], `"VH-0002"`) {
		t.Fatalf("second vehicle missing: %s", lines[2])
	}
	assertEveryCellQuoted(t, csv)
}

func TestCSVEmptyInput(t *testing.T) {
	if got := CompaniesCSV(nil); strings.Count(got, "\n") != 0 {
		t.Fatalf("empty export should be header only, got %q", got)
	}
}
