package models

// PassengerType defines the kind of person riding the transport.
type PassengerType string

const (
	PassengerChild   PassengerType = "child"
	PassengerTeacher PassengerType = "teacher"
)

// TransactionKind defines whether a ledger entry increases or decreases debt.
type TransactionKind string

const (
	TransactionCharge  TransactionKind = "charge"
	TransactionPayment TransactionKind = "payment"
)

// CronStatus defines the terminal state of a weekly charge run for one organization.
type CronStatus string

const (
	CronSuccess CronStatus = "success"
	CronSkipped CronStatus = "skipped"
	CronError   CronStatus = "error"
)

// ThemePreference defines the UI theme stored per organization.
type ThemePreference string

const (
	ThemeLight  ThemePreference = "light"
	ThemeDark   ThemePreference = "dark"
	ThemeSystem ThemePreference = "system"
)

// MemberRole defines the role of a user inside an organization.
type MemberRole string

const (
	RoleOwner MemberRole = "owner"
	RoleAdmin MemberRole = "admin"
)
