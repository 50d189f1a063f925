package employee

// EmployeeDTO is the request payload for creating or replacing an employee.
// Pointer fields keep the distinction between an omitted field and a zero
// value: replacement writes exactly what was supplied, nothing is merged.
type EmployeeDTO struct {
	Name     *string  `json:"name"`
	Position *string  `json:"position"`
	Salary   *float64 `json:"salary"`
}

// DeleteResponse acknowledges a successful delete.
type DeleteResponse struct {
	Message string `json:"message"`
}
