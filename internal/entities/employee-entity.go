package entities

import "time"

type Employee struct {
	ID                 uint64    `json:"id"`
	Name               string    `json:"name"`
	OfficeID           uint64    `json:"office_id"`
	IsRegisteredOnIGOT bool      `json:"is_registered_on_igot"`
	CoursesEnrolled    int       `json:"courses_enrolled"`
	CoursesCompleted   int       `json:"courses_completed"`
	ReportDate         time.Time `json:"report_date"`
	IsFrozen           bool      `json:"is_frozen"`
	CreatedBy          uint64    `json:"created_by"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
