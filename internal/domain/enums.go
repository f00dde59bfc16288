package domain

// Status is the transporter workflow state.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// ValidStatus reports whether s is one of the three allowed workflow states.
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Availability is the per-vehicle availability state.
type Availability string

const (
	AvailabilityAvailable   Availability = "Available"
	AvailabilityOnTrip      Availability = "On Trip"
	AvailabilityMaintenance Availability = "Maintenance"
)

// ValidAvailability reports whether a is a known availability state.
func ValidAvailability(a string) bool {
	switch Availability(a) {
	case AvailabilityAvailable, AvailabilityOnTrip, AvailabilityMaintenance:
		return true
	}
	return false
}

// VehicleTypes is the fixed enumeration of fleet vehicle types.
var VehicleTypes = []string{
	"Pickup",
	"Tata Ace",
	"LCV",
	"14ft",
	"17ft",
	"19ft",
	"Container",
	"Trailer",
	"Tanker",
	"Refrigerated",
	"Other",
}

var vehicleTypeSet = func() map[string]bool {
	m := make(map[string]bool, len(VehicleTypes))
	for _, t := range VehicleTypes {
		m[t] = true
	}
	return m
}()

// ValidVehicleType reports whether t is in the fixed vehicle type enumeration.
func ValidVehicleType(t string) bool {
	return vehicleTypeSet[t]
}
