package entities

// AddAvailabilityRequest opens the given times on each of the given dates.
// Times already present on a date are kept as-is (set union).
type AddAvailabilityRequest struct {
	Dates []string `json:"dates"`
	Times []string `json:"times"`
}

// OperationResult is the success/failure contract every mutating booking
// operation returns to the UI. Message is user facing, in Spanish.
type OperationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
