package transporters

import (
	"context"
	"time"
)

// MonthlyCount is one month of registrations.
type MonthlyCount struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Count int `json:"count"`
}

// TypeCount is one vehicle type with its fleet-wide count.
type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// RecentRegistration is the trimmed view shown on the admin dashboard.
type RecentRegistration struct {
	TransporterID string    `json:"transporterId"`
	CompanyName   string    `json:"companyName"`
	ContactPerson string    `json:"contactPerson"`
	VehiclesCount int       `json:"vehiclesCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Stats is the admin dashboard aggregate.
type Stats struct {
	TotalCompanies          int                  `json:"totalCompanies"`
	CompaniesWithNoVehicles int                  `json:"companiesWithNoVehicles"`
	TotalVehicles           int                  `json:"totalVehicles"`
	MonthlyRegistrations    []MonthlyCount       `json:"monthlyRegistrations"`
	VehicleTypeDistribution []TypeCount          `json:"vehicleTypeDistribution"`
	RecentRegistrations     []RecentRegistration `json:"recentRegistrations"`
}

// Stats aggregates dashboard numbers in SQL; the vehicle type distribution
// unnests the JSONB fleet arrays.
func (r *Repo) Stats(ctx context.Context) (*Stats, error) {
	var s Stats

	const totalsQ = `
SELECT count(*),
       count(*) FILTER (WHERE vehicles_count = 0),
       COALESCE(sum(vehicles_count), 0)
FROM transporters`
	if err := r.pg.QueryRow(ctx, totalsQ).Scan(&s.TotalCompanies, &s.CompaniesWithNoVehicles, &s.TotalVehicles); err != nil {
		return nil, err
	}

	const monthlyQ = `
SELECT EXTRACT(YEAR FROM created_at)::int,
       EXTRACT(MONTH FROM created_at)::int,
       count(*)::int
FROM transporters
WHERE created_at >= now() - interval '12 months'
GROUP BY 1, 2
ORDER BY 1, 2`
	rows, err := r.pg.Query(ctx, monthlyQ)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	s.MonthlyRegistrations = []MonthlyCount{}
	for rows.Next() {
		var m MonthlyCount
		if err := rows.Scan(&m.Year, &m.Month, &m.Count); err != nil {
			return nil, err
		}
		s.MonthlyRegistrations = append(s.MonthlyRegistrations, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	const typesQ = `
SELECT v->>'vehicleType', count(*)::int
FROM transporters, jsonb_array_elements(vehicles) v
GROUP BY 1
ORDER BY 2 DESC`
	rows, err = r.pg.Query(ctx, typesQ)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	s.VehicleTypeDistribution = []TypeCount{}
	for rows.Next() {
		var t TypeCount
		if err := rows.Scan(&t.Type, &t.Count); err != nil {
			return nil, err
		}
		s.VehicleTypeDistribution = append(s.VehicleTypeDistribution, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	const recentQ = `
SELECT transporter_id, company_name, contact_person, vehicles_count, created_at
FROM transporters
ORDER BY created_at DESC
LIMIT 5`
	rows, err = r.pg.Query(ctx, recentQ)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	s.RecentRegistrations = []RecentRegistration{}
	for rows.Next() {
		var rr RecentRegistration
		if err := rows.Scan(&rr.TransporterID, &rr.CompanyName, &rr.ContactPerson, &rr.VehiclesCount, &rr.CreatedAt); err != nil {
			return nil, err
		}
		s.RecentRegistrations = append(s.RecentRegistrations, rr)
	}
	return &s, rows.Err()
}
