package models

// Studio represents a design studio row, the tenancy unit of the application.
type Studio struct {
	StudioID    string `db:"studio_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	IsActive    bool   `db:"is_active"`
	AuditFields
}
