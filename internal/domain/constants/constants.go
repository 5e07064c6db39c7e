// Package constants contains domain-wide tunables with their default values.
package constants

const (
	// DefaultSearchRadiusDegrees is the half-width of the donor search box (roughly 20 km).
	DefaultSearchRadiusDegrees = 0.18

	// DefaultUnitsDonated is recorded when a verification does not specify units.
	DefaultUnitsDonated = 1

	// VerifiedDonationMessage is returned to the hospital after a successful verification.
	VerifiedDonationMessage = "Donation successfully verified."
)

// Storage drivers
const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

// Notification providers
const (
	NotificationProviderLog      = "log"
	NotificationProviderTwilio   = "twilio"
	NotificationProviderFirebase = "firebase"
)
