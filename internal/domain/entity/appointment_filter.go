package entity

// AppointmentFilter is a domain-level filter for the admin appointment list.
// Used by repository layer to avoid coupling with delivery DTOs.
type AppointmentFilter struct {
	Status  string // exact status match
	Date    string // Format: YYYY-MM-DD
	Patient string // patient name or email (ILIKE)
	Search  string // free text over doctor/facility/status (ILIKE)
}
