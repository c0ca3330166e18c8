package dto

import "time"

type CreateEmployeeDTO struct {
	Name               string `json:"name"`
	OfficeID           uint64 `json:"officeId"`
	IsRegisteredOnIGOT bool   `json:"isRegisteredOnIGOT"`
	CoursesEnrolled    int    `json:"coursesEnrolled"`
	CoursesCompleted   int    `json:"coursesCompleted"`
	ReportDate         string `json:"reportDate"`
}

type UpdateEmployeeDTO struct {
	Name               *string `json:"name"`
	OfficeID           *uint64 `json:"officeId"`
	IsRegisteredOnIGOT *bool   `json:"isRegisteredOnIGOT"`
	CoursesEnrolled    *int    `json:"coursesEnrolled"`
	CoursesCompleted   *int    `json:"coursesCompleted"`
	ReportDate         *string `json:"reportDate"`
}

// EmployeeDTO is the repository-level shape: entity fields plus resolved
// references where the query joined them.
type EmployeeDTO struct {
	ID                 uint64
	Name               string
	OfficeID           uint64
	Office             *ShortOfficeDTO
	IsRegisteredOnIGOT bool
	CoursesEnrolled    int
	CoursesCompleted   int
	ReportDate         time.Time
	IsFrozen           bool
	CreatedBy          *ShortUserDTO
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type EmployeeResponseDTO struct {
	ID                 uint64          `json:"id"`
	Name               string          `json:"name"`
	OfficeID           uint64          `json:"officeId"`
	Office             *ShortOfficeDTO `json:"office,omitempty"`
	IsRegisteredOnIGOT bool            `json:"isRegisteredOnIGOT"`
	CoursesEnrolled    int             `json:"coursesEnrolled"`
	CoursesCompleted   int             `json:"coursesCompleted"`
	ReportDate         string          `json:"reportDate"`
	IsFrozen           bool            `json:"isFrozen"`
	CreatedBy          *ShortUserDTO   `json:"createdBy,omitempty"`
	CreatedAt          string          `json:"createdAt"`
	UpdatedAt          string          `json:"updatedAt"`
}

type ShortUserDTO struct {
	ID  uint64 `json:"id"`
	Fio string `json:"fio"`
}

// EmployeeReportFilter carries the optional inclusive report_date range plus
// the visibility scope resolved from the caller.
type EmployeeReportFilter struct {
	OfficeID  *uint64
	StartDate *time.Time
	EndDate   *time.Time
}
