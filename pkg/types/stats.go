package types

// DashboardTotals are the raw aggregates the store computes over the
// caller-visible employee set.
type DashboardTotals struct {
	TotalEmployees        uint64 `json:"total_employees"`
	RegisteredOnIGOT      uint64 `json:"registered_on_igot"`
	TotalCoursesEnrolled  uint64 `json:"total_courses_enrolled"`
	TotalCoursesCompleted uint64 `json:"total_courses_completed"`
}
