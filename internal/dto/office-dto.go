package dto

type CreateOfficeDTO struct {
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Description *string `json:"description"`
}

type UpdateOfficeDTO struct {
	Name        *string `json:"name"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
}

type OfficeResponseDTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description,omitempty"`
	CreatedBy   uint64 `json:"createdBy"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ShortOfficeDTO is the resolved office reference attached to employee
// responses.
type ShortOfficeDTO struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}
