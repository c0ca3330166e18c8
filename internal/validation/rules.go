// Package validation holds the pure domain invariant checks. Every violation
// found is collected so the caller can report them all in one response.
package validation

const maxNameLength = 100

func OfficeViolations(name, location string) []string {
	var violations []string
	if name == "" {
		violations = append(violations, "name is required")
	}
	if len([]rune(name)) > maxNameLength {
		violations = append(violations, "name can not be more than 100 characters")
	}
	if location == "" {
		violations = append(violations, "location is required")
	}
	return violations
}

func EmployeeViolations(name string, officeID uint64, registered bool, enrolled, completed int) []string {
	var violations []string
	if name == "" {
		violations = append(violations, "name is required")
	}
	if len([]rune(name)) > maxNameLength {
		violations = append(violations, "name can not be more than 100 characters")
	}
	if officeID == 0 {
		violations = append(violations, "officeId is required")
	}
	if enrolled < 0 {
		violations = append(violations, "coursesEnrolled can not be negative")
	}
	if completed < 0 {
		violations = append(violations, "coursesCompleted can not be negative")
	}
	if !registered && (enrolled != 0 || completed != 0) {
		violations = append(violations, "coursesEnrolled and coursesCompleted must be 0 when not registered on IGOT")
	}
	if completed >= 0 && enrolled >= 0 && completed > enrolled {
		violations = append(violations, "coursesCompleted can not exceed coursesEnrolled")
	}
	return violations
}
