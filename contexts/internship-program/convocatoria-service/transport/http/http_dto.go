package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateConvocatoriaRequest struct {
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	Deadline        string   `json:"fecha_limite"`
	InternshipTypes []string `json:"internship_types"`
	TutorIDs        []int64  `json:"tutor_ids"`
}

// UpdateConvocatoriaRequest patches an open call. Absent fields keep their
// current value.
type UpdateConvocatoriaRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Deadline    *string `json:"fecha_limite,omitempty"`
}

type TutorResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ConvocatoriaResponse struct {
	ID              int64           `json:"id"`
	UUID            string          `json:"uuid"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Deadline        string          `json:"fecha_limite"`
	InternshipTypes []string        `json:"internship_types"`
	AvailableTutors []TutorResponse `json:"available_tutors"`
	Active          bool            `json:"active"`
	CreatedAt       string          `json:"created_at"`
	UpdatedAt       string          `json:"updated_at"`
}

type ConvocatoriaListResponse struct {
	Items []ConvocatoriaResponse `json:"items"`
}

type HasActiveResponse struct {
	Active bool `json:"active"`
}

type TutorListResponse struct {
	Items []TutorResponse `json:"items"`
}
