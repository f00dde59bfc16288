package transporters

import (
	"time"

	"github.com/cargomatters/backend/internal/domain"
)

// VehicleDocuments holds external links to per-vehicle compliance documents.
// RC and insurance are mandatory at add time; PUC and fitness are optional.
type VehicleDocuments struct {
	RCURL        string `json:"rcUrl"`
	InsuranceURL string `json:"insuranceUrl"`
	PUCURL       string `json:"pucUrl,omitempty"`
	FitnessURL   string `json:"fitnessUrl,omitempty"`
}

// Vehicle is a fleet unit embedded in exactly one transporter record.
type Vehicle struct {
	VehicleID          string              `json:"vehicleId"`
	RegistrationNumber string              `json:"registrationNumber"`
	VehicleType        string              `json:"vehicleType"`
	Capacity           string              `json:"capacity"`
	ModelYear          int                 `json:"modelYear"`
	DriverName         string              `json:"driverName,omitempty"`
	DriverPhone        string              `json:"driverPhone,omitempty"`
	Availability       domain.Availability `json:"availability"`
	Route              string              `json:"route,omitempty"`
	Permit             string              `json:"permit,omitempty"`
	Documents          VehicleDocuments    `json:"documents"`
	CreatedAt          time.Time           `json:"createdAt"`
	UpdatedAt          time.Time           `json:"updatedAt"`
}

// Note is an admin annotation on a transporter record.
type Note struct {
	ID        string    `json:"id"`
	AdminID   string    `json:"adminId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// CompanyDocuments holds external links to company compliance documents.
type CompanyDocuments struct {
	GSTCertificateURL    string `json:"gstCertificateUrl,omitempty"`
	PANCardURL           string `json:"panCardUrl,omitempty"`
	AadhaarCardURL       string `json:"aadhaarCardUrl,omitempty"`
	RegistrationProofURL string `json:"registrationProofUrl,omitempty"`
}

// Transporter is the root aggregate: one row per registered transport
// company, with the fleet and admin notes embedded as JSONB.
// VehiclesCount is a derived cache of len(Vehicles), recomputed on every
// persist of the fleet.
type Transporter struct {
	ID              string           `json:"id"`
	TransporterID   string           `json:"transporterId"`
	CompanyName     string           `json:"companyName"`
	ContactPerson   string           `json:"contactPerson"`
	Email           string           `json:"email"`
	PasswordHash    string           `json:"-"`
	PrimaryPhone    string           `json:"primaryPhone"`
	AltPhone        string           `json:"altPhone,omitempty"`
	GSTNumber       string           `json:"gstNumber,omitempty"`
	PANNumber       string           `json:"panNumber,omitempty"`
	Address         string           `json:"address,omitempty"`
	OperatingStates []string         `json:"operatingStates"`
	Website         string           `json:"website,omitempty"`
	Documents       CompanyDocuments `json:"documents"`
	VehiclesCount   int              `json:"vehiclesCount"`
	Vehicles        []Vehicle        `json:"vehicles"`
	Notes           []Note           `json:"notes,omitempty"`
	Status          domain.Status    `json:"status"`
	RejectionReason string           `json:"rejectionReason,omitempty"`
	RejectedAt      *time.Time       `json:"rejectedAt,omitempty"`
	RemindedAt      *time.Time       `json:"remindedAt,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}
