package attendance

import "errors"

// Attendance domain errors
var (
	// Punch errors
	ErrAlreadyPunchedIn = errors.New("you have already punched in today")
	ErrNotPunchedIn     = errors.New("you have not punched in yet / already out")

	// ErrRecordExists is returned by the repository when an insert hits the
	// (employee_id, date) unique constraint. The punch engine translates it
	// to ErrAlreadyPunchedIn so a lost race reads the same as a double punch.
	ErrRecordExists = errors.New("attendance record already exists for this date")

	ErrRecordNotFound = errors.New("attendance record not found")
)
