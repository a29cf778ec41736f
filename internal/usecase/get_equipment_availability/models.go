package get_equipment_availability

// Request the loan window to check stock against.
type Request struct {
	PickupAt string // datetime-local
	ReturnAt string
}

// Response remaining stock per borrowable item over the window.
type Response struct {
	Stock map[string]int
}
