package mailer

import "fmt"

// Notification templates. Each returns (subject, html body).

func RegistrationAcknowledgement(companyName, contactPerson, transporterID string) (string, string) {
	return "Welcome to CargoMatters - Registration Successful",
		fmt.Sprintf(`<p>Hi %s,</p>
<p>Thanks for registering <strong>%s</strong> as a transport partner. Your transporter ID is <strong>%s</strong>.</p>
<p>Log in to your dashboard to add vehicles and complete your profile.</p>
<p>Regards,<br/>CargoMatters Team</p>`, contactPerson, companyName, transporterID)
}

func VehicleAdded(companyName, vehicleID, registrationNumber, vehicleType string) (string, string) {
	return "Vehicle Added Successfully - CargoMatters",
		fmt.Sprintf(`<p>Hi %s,</p>
<p>Vehicle <strong>%s</strong> (%s, %s) has been added to your fleet.</p>
<p>Regards,<br/>CargoMatters Team</p>`, companyName, registrationNumber, vehicleID, vehicleType)
}

func Approval(name string) (string, string) {
	return "CargoMatters: Registration Approved",
		fmt.Sprintf(`<p>Hi %s,</p>
<p>Your registration has been approved. Welcome aboard!</p>
<p>Regards,<br/>CargoMatters Team</p>`, name)
}

func Rejection(name, reason string) (string, string) {
	if reason == "" {
		reason = "Not specified"
	}
	return "CargoMatters: Registration Rejected",
		fmt.Sprintf(`<p>Hi %s,</p>
<p>We're sorry to inform you that your registration was rejected. Reason: %s</p>
<p>Regards,<br/>CargoMatters Team</p>`, name, reason)
}

func Reminder(companyName, contactPerson, transporterID string) (string, string) {
	return "Complete Your Registration - Add Vehicles to CargoMatters",
		fmt.Sprintf(`<p>Hi %s,</p>
<p><strong>%s</strong> (%s) has no vehicles yet. Add your fleet to start receiving load requests.</p>
<p>Regards,<br/>CargoMatters Team</p>`, contactPerson, companyName, transporterID)
}
