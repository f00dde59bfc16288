package transporters

import (
	"strconv"
	"strings"
	"time"
)

// CSV projections for the admin export endpoints. Every cell is
// double-quoted, including headers and numbers; embedded quotes are doubled.

var companyCSVHeader = []string{
	"Transporter ID",
	"Company Name",
	"Owner",
	"GST",
	"PAN",
	"Address",
	"Operating States",
	"Vehicle Count",
	"Created At",
}

var vehicleCSVHeader = []string{
	"Transporter ID",
	"Company Name",
	"Vehicle ID",
	"Registration Number",
	"Vehicle Type",
	"Capacity",
	"Model Year",
	"Driver Name",
	"Driver Phone",
	"Created At",
}

// CompaniesCSV renders the flat company projection: header plus one row per
// transporter.
func CompaniesCSV(items []Transporter) string {
	rows := make([][]string, 0, len(items)+1)
	rows = append(rows, companyCSVHeader)
	for _, t := range items {
		rows = append(rows, []string{
			t.TransporterID,
			t.CompanyName,
			t.ContactPerson,
			t.GSTNumber,
			t.PANNumber,
			t.Address,
			strings.Join(t.OperatingStates, "; "),
			strconv.Itoa(t.VehiclesCount),
			t.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return joinCSV(rows)
}

// VehiclesCSV renders the fleet projection: one row per (company, vehicle)
// pair.
func VehiclesCSV(items []Transporter) string {
	rows := [][]string{vehicleCSVHeader}
	for _, t := range items {
		for _, v := range t.Vehicles {
			rows = append(rows, []string{
				t.TransporterID,
				t.CompanyName,
				v.VehicleID,
				v.RegistrationNumber,
				v.VehicleType,
				v.Capacity,
				strconv.Itoa(v.ModelYear),
				v.DriverName,
				v.DriverPhone,
				v.CreatedAt.UTC().Format(time.RFC3339),
			})
		}
	}
	return joinCSV(rows)
}

// joinCSV quotes every cell unconditionally; encoding/csv quotes only when
// necessary, and the export format requires all cells quoted.
func joinCSV(rows [][]string) string {
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, cell := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
			b.WriteByte('"')
		}
	}
	return b.String()
}
