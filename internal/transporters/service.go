package transporters

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cargomatters/backend/internal/domain"
	"github.com/cargomatters/backend/internal/mailer"
	"github.com/cargomatters/backend/internal/util"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrDuplicateVehicle   = errors.New("vehicle with this registration number already exists")
	ErrInvalidStatus      = errors.New("invalid status")
)

// ValidationError is a rejected-input error; handlers map it to 400.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// Store is the persistence surface the service needs; *Repo implements it.
type Store interface {
	Create(ctx context.Context, t *Transporter) error
	FindByEmail(ctx context.Context, email string) (*Transporter, error)
	FindByID(ctx context.Context, id string) (*Transporter, error)
	LastTransporterID(ctx context.Context) (string, error)
	UpdateProfile(ctx context.Context, id string, u ProfileUpdate) error
	ReplaceVehicles(ctx context.Context, id string, fleet []Vehicle) error
	AddNote(ctx context.Context, id string, n Note) error
	SetStatus(ctx context.Context, id string, status domain.Status, reason string) error
	List(ctx context.Context, f Filter) ([]Transporter, int, error)
	FindNeedingReminder(ctx context.Context, cutoff time.Time) ([]Transporter, error)
	ClaimReminder(ctx context.Context, id string) (bool, error)
	Stats(ctx context.Context) (*Stats, error)
}

// Mailer sends a notification email. Sends are best-effort everywhere: a
// failure is logged and never fails the operation that triggered it.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// Cache is the small cache surface used for the stats endpoint.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

const (
	exportRowCap     = 10000
	reminderAge      = 48 * time.Hour
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// Service implements the transporter lifecycle: registration, fleet
// mutations, the admin status workflow, notes, queries/exports and the
// reminder sweep.
type Service struct {
	store  Store
	mail   Mailer
	cache  Cache
	logger *zap.Logger
}

func NewService(store Store, mail Mailer, cache Cache, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, mail: mail, cache: cache, logger: logger}
}

func (s *Service) sendMail(ctx context.Context, to, subject, body string) {
	if s.mail == nil || to == "" {
		return
	}
	if err := s.mail.Send(ctx, to, subject, body); err != nil {
		s.logger.Warn("notification send failed", zap.String("to", to), zap.String("subject", subject), zap.Error(err))
	}
}

// RegisterInput is the self-service signup payload.
type RegisterInput struct {
	CompanyName   string
	ContactPerson string
	PrimaryPhone  string
	Email         string
	Password      string
}

// Register validates the signup payload, allocates a transporter id, hashes
// the password and persists the new company in Pending state. The
// acknowledgement email is best-effort.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*Transporter, error) {
	in.CompanyName = strings.TrimSpace(in.CompanyName)
	in.ContactPerson = strings.TrimSpace(in.ContactPerson)
	in.PrimaryPhone = strings.TrimSpace(in.PrimaryPhone)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if in.CompanyName == "" || in.ContactPerson == "" || in.PrimaryPhone == "" || in.Email == "" || in.Password == "" {
		return nil, ValidationError("all fields are required")
	}
	if err := util.ValidatePassword(in.Password); err != nil {
		return nil, ValidationError(err.Error())
	}

	if _, err := s.store.FindByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	last, err := s.store.LastTransporterID(ctx)
	if err != nil {
		return nil, err
	}
	id, ok := NextTransporterID(last)
	if !ok {
		s.logger.Warn("malformed transporter id, falling back to base", zap.String("last", last))
	}

	hash, err := util.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	t := &Transporter{
		TransporterID: id,
		CompanyName:   in.CompanyName,
		ContactPerson: in.ContactPerson,
		PrimaryPhone:  in.PrimaryPhone,
		Email:         in.Email,
		PasswordHash:  hash,
		Status:        domain.StatusPending,
	}
	if err := s.store.Create(ctx, t); err != nil {
		return nil, err
	}

	subject, body := mailer.RegistrationAcknowledgement(t.CompanyName, t.ContactPerson, t.TransporterID)
	s.sendMail(ctx, t.Email, subject, body)
	return t, nil
}

// Authenticate checks email+password and returns the company on success.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*Transporter, error) {
	t, err := s.store.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !util.ComparePassword(t.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return t, nil
}

// Get loads one transporter aggregate by record id.
func (s *Service) Get(ctx context.Context, id string) (*Transporter, error) {
	return s.store.FindByID(ctx, id)
}

// UpdateProfileInput is a partial profile update. Nil means "not supplied";
// document links are overwritten only when non-empty.
type UpdateProfileInput struct {
	CompanyName     *string
	ContactPerson   *string
	PrimaryPhone    *string
	AltPhone        *string
	GSTNumber       *string
	PANNumber       *string
	Address         *string
	Website         *string
	OperatingStates []string
	Documents       CompanyDocuments
}

func nonEmpty(p *string) *string {
	if p == nil || strings.TrimSpace(*p) == "" {
		return nil
	}
	return p
}

// UpdateProfile applies a partial company profile update and returns the
// updated aggregate.
func (s *Service) UpdateProfile(ctx context.Context, id string, in UpdateProfileInput) (*Transporter, error) {
	u := ProfileUpdate{
		CompanyName:   nonEmpty(in.CompanyName),
		ContactPerson: nonEmpty(in.ContactPerson),
		PrimaryPhone:  nonEmpty(in.PrimaryPhone),
		AltPhone:      in.AltPhone,
		GSTNumber:     in.GSTNumber,
		PANNumber:     in.PANNumber,
		Address:       in.Address,
		Website:       in.Website,
	}
	if len(in.OperatingStates) > 0 {
		u.OperatingStates = in.OperatingStates
	}
	docs := map[string]string{}
	if in.Documents.GSTCertificateURL != "" {
		docs["gstCertificateUrl"] = in.Documents.GSTCertificateURL
	}
	if in.Documents.PANCardURL != "" {
		docs["panCardUrl"] = in.Documents.PANCardURL
	}
	if in.Documents.AadhaarCardURL != "" {
		docs["aadhaarCardUrl"] = in.Documents.AadhaarCardURL
	}
	if in.Documents.RegistrationProofURL != "" {
		docs["registrationProofUrl"] = in.Documents.RegistrationProofURL
	}
	u.Documents = docs

	if err := s.store.UpdateProfile(ctx, id, u); err != nil {
		return nil, err
	}
	return s.store.FindByID(ctx, id)
}

// AddVehicleInput is the add-vehicle payload.
type AddVehicleInput struct {
	RegistrationNumber string
	VehicleType        string
	Capacity           string
	ModelYear          int
	DriverName         string
	DriverPhone        string
	Availability       string
	Route              string
	Permit             string
	ConsentToContact   bool
	ConfirmAccuracy    bool
	Documents          VehicleDocuments
}

// AddVehicle validates and appends a vehicle to the company fleet. The
// registration number is stored uppercase and must be unique within the
// fleet ignoring case; the vehicle id comes from the max-suffix allocator.
func (s *Service) AddVehicle(ctx context.Context, companyID string, in AddVehicleInput) (*Vehicle, error) {
	in.RegistrationNumber = strings.TrimSpace(in.RegistrationNumber)
	if in.RegistrationNumber == "" || in.VehicleType == "" || in.Capacity == "" || in.ModelYear == 0 {
		return nil, ValidationError("required fields: registrationNumber, vehicleType, capacity, modelYear")
	}
	if !domain.ValidVehicleType(in.VehicleType) {
		return nil, ValidationError("unknown vehicle type")
	}
	if !in.ConsentToContact || !in.ConfirmAccuracy {
		return nil, ValidationError("both consent checkboxes must be checked")
	}
	if in.Documents.RCURL == "" || in.Documents.InsuranceURL == "" {
		return nil, ValidationError("RC and insurance document links are required")
	}
	availability := domain.AvailabilityAvailable
	if in.Availability != "" {
		if !domain.ValidAvailability(in.Availability) {
			return nil, ValidationError("unknown availability")
		}
		availability = domain.Availability(in.Availability)
	}

	t, err := s.store.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	for _, v := range t.Vehicles {
		if strings.EqualFold(v.RegistrationNumber, in.RegistrationNumber) {
			return nil, ErrDuplicateVehicle
		}
	}

	now := time.Now().UTC()
	v := Vehicle{
		VehicleID:          NextVehicleID(t.Vehicles),
		RegistrationNumber: strings.ToUpper(in.RegistrationNumber),
		VehicleType:        in.VehicleType,
		Capacity:           in.Capacity,
		ModelYear:          in.ModelYear,
		DriverName:         in.DriverName,
		DriverPhone:        in.DriverPhone,
		Availability:       availability,
		Route:              in.Route,
		Permit:             in.Permit,
		Documents: VehicleDocuments{
			RCURL:        in.Documents.RCURL,
			InsuranceURL: in.Documents.InsuranceURL,
			PUCURL:       in.Documents.PUCURL,
			FitnessURL:   in.Documents.FitnessURL,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.ReplaceVehicles(ctx, companyID, append(t.Vehicles, v)); err != nil {
		return nil, err
	}

	subject, body := mailer.VehicleAdded(t.CompanyName, v.VehicleID, v.RegistrationNumber, v.VehicleType)
	s.sendMail(ctx, t.Email, subject, body)
	return &v, nil
}

// UpdateVehicleInput is a partial vehicle update; nil or empty fields keep
// the stored value, and document links never clear by omission.
type UpdateVehicleInput struct {
	RegistrationNumber string
	VehicleType        string
	Capacity           string
	ModelYear          int
	DriverName         *string
	DriverPhone        *string
	Availability       string
	Route              *string
	Permit             *string
	Documents          VehicleDocuments
}

// UpdateVehicle applies a partial update to one vehicle by its id.
func (s *Service) UpdateVehicle(ctx context.Context, companyID, vehicleID string, in UpdateVehicleInput) (*Vehicle, error) {
	t, err := s.store.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i, v := range t.Vehicles {
		if v.VehicleID == vehicleID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrVehicleNotFound
	}

	v := &t.Vehicles[idx]
	if reg := strings.TrimSpace(in.RegistrationNumber); reg != "" {
		v.RegistrationNumber = strings.ToUpper(reg)
	}
	if in.VehicleType != "" {
		if !domain.ValidVehicleType(in.VehicleType) {
			return nil, ValidationError("unknown vehicle type")
		}
		v.VehicleType = in.VehicleType
	}
	if in.Capacity != "" {
		v.Capacity = in.Capacity
	}
	if in.ModelYear > 0 {
		v.ModelYear = in.ModelYear
	}
	if in.DriverName != nil {
		v.DriverName = *in.DriverName
	}
	if in.DriverPhone != nil {
		v.DriverPhone = *in.DriverPhone
	}
	if in.Availability != "" {
		if !domain.ValidAvailability(in.Availability) {
			return nil, ValidationError("unknown availability")
		}
		v.Availability = domain.Availability(in.Availability)
	}
	if in.Route != nil {
		v.Route = *in.Route
	}
	if in.Permit != nil {
		v.Permit = *in.Permit
	}
	if in.Documents.RCURL != "" {
		v.Documents.RCURL = in.Documents.RCURL
	}
	if in.Documents.InsuranceURL != "" {
		v.Documents.InsuranceURL = in.Documents.InsuranceURL
	}
	if in.Documents.PUCURL != "" {
		v.Documents.PUCURL = in.Documents.PUCURL
	}
	if in.Documents.FitnessURL != "" {
		v.Documents.FitnessURL = in.Documents.FitnessURL
	}
	v.UpdatedAt = time.Now().UTC()

	if err := s.store.ReplaceVehicles(ctx, companyID, t.Vehicles); err != nil {
		return nil, err
	}
	out := *v
	return &out, nil
}

// DeleteVehicle removes a vehicle by id; the stored count follows the fleet
// length on persist.
func (s *Service) DeleteVehicle(ctx context.Context, companyID, vehicleID string) error {
	t, err := s.store.FindByID(ctx, companyID)
	if err != nil {
		return err
	}
	kept := make([]Vehicle, 0, len(t.Vehicles))
	for _, v := range t.Vehicles {
		if v.VehicleID != vehicleID {
			kept = append(kept, v)
		}
	}
	if len(kept) == len(t.Vehicles) {
		return ErrVehicleNotFound
	}
	return s.store.ReplaceVehicles(ctx, companyID, kept)
}

// SetStatus runs an admin workflow transition. Only Pending/Approved/
// Rejected are accepted; the state change commits before the best-effort
// notification email.
func (s *Service) SetStatus(ctx context.Context, id, status, reason string) (*Transporter, error) {
	if !domain.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	if err := s.store.SetStatus(ctx, id, domain.Status(status), strings.TrimSpace(reason)); err != nil {
		return nil, err
	}
	t, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch t.Status {
	case domain.StatusApproved:
		subject, body := mailer.Approval(t.ContactPerson)
		s.sendMail(ctx, t.Email, subject, body)
	case domain.StatusRejected:
		subject, body := mailer.Rejection(t.ContactPerson, t.RejectionReason)
		s.sendMail(ctx, t.Email, subject, body)
	}
	return t, nil
}

// AddNote appends an admin annotation to the transporter record.
func (s *Service) AddNote(ctx context.Context, id, adminID, text string) (*Note, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ValidationError("note text is required")
	}
	n := Note{
		ID:        uuid.NewString(),
		AdminID:   adminID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.AddNote(ctx, id, n); err != nil {
		return nil, err
	}
	return &n, nil
}

// List returns a filtered, created_at-descending page plus the total count.
func (s *Service) List(ctx context.Context, f Filter) ([]Transporter, int, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = defaultPageLimit
	}
	if f.Limit > maxPageLimit {
		f.Limit = maxPageLimit
	}
	return s.store.List(ctx, f)
}

// ExportCompaniesCSV renders the flat company projection for all matching
// records, capped at exportRowCap rows.
func (s *Service) ExportCompaniesCSV(ctx context.Context, status string) (string, error) {
	if status != "" && !domain.ValidStatus(status) {
		return "", ErrInvalidStatus
	}
	items, _, err := s.store.List(ctx, Filter{Status: status, Page: 1, Limit: exportRowCap})
	if err != nil {
		return "", err
	}
	return CompaniesCSV(items), nil
}

// ExportVehiclesCSV renders one row per (company, vehicle) pair.
func (s *Service) ExportVehiclesCSV(ctx context.Context) (string, error) {
	items, _, err := s.store.List(ctx, Filter{Page: 1, Limit: exportRowCap})
	if err != nil {
		return "", err
	}
	return VehiclesCSV(items), nil
}

// ReminderResult summarizes one reminder sweep.
type ReminderResult struct {
	Total  int      `json:"total"`
	Sent   int      `json:"sent"`
	Failed int      `json:"failed"`
	Errors []string `json:"errors,omitempty"`
}

// SendReminders nudges companies that registered at least two days ago and
// still have no vehicles. Each record is claimed with a conditional update
// before the send, so overlapping sweeps never double-send.
func (s *Service) SendReminders(ctx context.Context) (*ReminderResult, error) {
	cutoff := time.Now().UTC().Add(-reminderAge)
	due, err := s.store.FindNeedingReminder(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	res := &ReminderResult{Total: len(due)}
	for _, t := range due {
		claimed, err := s.store.ClaimReminder(ctx, t.ID)
		if err != nil {
			res.Failed++
			res.Errors = append(res.Errors, t.Email+": "+err.Error())
			continue
		}
		if !claimed {
			// another sweep got there first
			res.Total--
			continue
		}
		subject, body := mailer.Reminder(t.CompanyName, t.ContactPerson, t.TransporterID)
		if s.mail != nil {
			if err := s.mail.Send(ctx, t.Email, subject, body); err != nil {
				res.Failed++
				res.Errors = append(res.Errors, t.Email+": "+err.Error())
				s.logger.Warn("reminder send failed", zap.String("to", t.Email), zap.Error(err))
				continue
			}
		}
		res.Sent++
	}
	return res, nil
}

const statsCacheKey = "admin:stats"
const statsCacheTTL = time.Minute

// GetStats returns the dashboard aggregate, cached for a minute.
func (s *Service) GetStats(ctx context.Context) (*Stats, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, statsCacheKey); err == nil && raw != "" {
			var cached Stats
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
		}
	}
	stats, err := s.store.Stats(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if raw, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, statsCacheKey, string(raw), statsCacheTTL); err != nil {
				s.logger.Warn("stats cache write failed", zap.Error(err))
			}
		}
	}
	return stats, nil
}
