package constvars

// Roles issued by the identity surface and trusted by everything downstream.
const (
	RoleAdmin         = "Admin"
	RoleClinicManager = "ClinicManager"
	RoleDoctor        = "Doctor"
	RolePatient       = "Patient"
)

// Examination lifecycle statuses as persisted.
const (
	ExaminationStatusPending  = "Pending"
	ExaminationStatusAnalyzed = "Analyzed"
	ExaminationStatusVerified = "Verified"
)

// Bill statuses as persisted.
const (
	BillStatusPending = "Pending"
	BillStatusPaid    = "Paid"
)

// Risk levels attached to AI findings. Compared case-sensitively.
const (
	RiskLevelLow    = "Low"
	RiskLevelMedium = "Medium"
	RiskLevelHigh   = "High"
)

// ExaminationFeeServiceName is the line item added to reactively created bills.
const ExaminationFeeServiceName = "Examination Fee"

// ClinicGroupFormat is the notification group name scoping pushes to one clinic.
const ClinicGroupFormat = "Clinic_%s"
