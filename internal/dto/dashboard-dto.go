package dto

type DashboardStatsDTO struct {
	TotalEmployees        uint64 `json:"totalEmployees"`
	RegisteredOnIGOT      uint64 `json:"registeredOnIGOT"`
	NotRegisteredOnIGOT   uint64 `json:"notRegisteredOnIGOT"`
	TotalCoursesEnrolled  uint64 `json:"totalCoursesEnrolled"`
	TotalCoursesCompleted uint64 `json:"totalCoursesCompleted"`
	CompletionRate        string `json:"completionRate"`
}
