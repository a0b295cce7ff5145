package domain

import "time"

// EnrichmentField é um campo de saída que o enriquecimento pode preencher
type EnrichmentField struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var EnrichmentFields = []EnrichmentField{
	{ID: "email", Label: "Email"},
	{ID: "phone", Label: "Phone"},
	{ID: "linkedin", Label: "LinkedIn URL"},
	{ID: "job_title", Label: "Job Title"},
	{ID: "company_size", Label: "Company Size"},
	{ID: "industry", Label: "Industry"},
	{ID: "revenue", Label: "Revenue"},
	{ID: "location", Label: "Location"},
}

// EnrichmentRequest é montado no envio e não é persistido
type EnrichmentRequest struct {
	FileName string
	FileSize int64
	Content  []byte
	Fields   []string
	Email    string
}

type EnrichmentStatus string

const EnrichmentStatusQueued EnrichmentStatus = "queued"

type EnrichmentReceipt struct {
	JobID       string           `json:"job_id"`
	FileName    string           `json:"file_name"`
	Rows        int              `json:"rows"`
	Fields      []string         `json:"fields"`
	Email       string           `json:"email"`
	Status      EnrichmentStatus `json:"status"`
	SubmittedAt time.Time        `json:"submitted_at"`
}
