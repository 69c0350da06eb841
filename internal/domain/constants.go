package domain

// StatusAllocated is the spreadsheet status admitting an allocation record
// into the occupancy stores. Records with any other status are ignored.
const StatusAllocated = "ALOCADA"

// Time and date format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default weekly grid parameters
const (
	DefaultSlotMinutes = 30
	DefaultDayStart    = "07:00"
	DefaultDayEnd      = "22:00"
)
