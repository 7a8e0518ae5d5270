package dto

// WorkerExamRow is one worker's latest exam outcome inside a report.
type WorkerExamRow struct {
	WorkerID       uint     `json:"worker_id"`
	FullName       string   `json:"full_name"`
	DNI            string   `json:"dni"`
	Area           string   `json:"area,omitempty"`
	Position       string   `json:"position,omitempty"`
	AttemptsUsed   int      `json:"attempts_used"`
	Outcome        string   `json:"outcome"`
	Score          *float64 `json:"score,omitempty"`
	CertificateURL *string  `json:"certificate_url,omitempty"`
}

// ClassReportDTO aggregates attempt outcomes for one class.
type ClassReportDTO struct {
	ClassID    uint            `json:"class_id"`
	ClassTitle string          `json:"class_title"`
	ClassType  string          `json:"class_type"`
	Enrolled   int             `json:"enrolled"`
	Approved   int             `json:"approved"`
	Rejected   int             `json:"rejected"`
	Pending    int             `json:"pending"`
	Workers    []WorkerExamRow `json:"workers"`
}

// CompanyReportDTO groups class reports of one company (induction report).
type CompanyReportDTO struct {
	CompanyID   uint             `json:"company_id"`
	CompanyName string           `json:"company_name"`
	Classes     []ClassReportDTO `json:"classes"`
}

// FileDeliveryRow is one worker's acknowledgement state for a file.
type FileDeliveryRow struct {
	WorkerID   uint   `json:"worker_id"`
	FullName   string `json:"full_name"`
	DNI        string `json:"dni"`
	Downloaded bool   `json:"downloaded"`
	Accepted   bool   `json:"accepted"`
}

// FileReportDTO aggregates acknowledgements for one distributed file.
type FileReportDTO struct {
	ClassFileID uint              `json:"class_file_id"`
	Title       string            `json:"title"`
	Delivered   int               `json:"delivered"`
	Accepted    int               `json:"accepted"`
	Rows        []FileDeliveryRow `json:"rows"`
}
