package dto

import "time"

// StartExamRequest asks the engine to start a new attempt for an enrollment,
// or to hand back the still-pending one.
type StartExamRequest struct {
	EnrollmentID uint `json:"enrollment_id" binding:"required"`
}

// ChosenAnswerDTO pairs one question of the attempt's frozen set with the
// answer the worker picked.
type ChosenAnswerDTO struct {
	QuestionID uint `json:"question_id" binding:"required"`
	AnswerID   uint `json:"answer_id" binding:"required"`
}

// SolveExamRequest submits all chosen answers for grading.
type SolveExamRequest struct {
	ExamAttemptID uint              `json:"exam_attempt_id" binding:"required"`
	Answers       []ChosenAnswerDTO `json:"answers" binding:"required,dive"`
}

// ExamAnswerDTO never carries the correctness flag.
type ExamAnswerDTO struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

type ExamQuestionDTO struct {
	ID      uint            `json:"id"`
	Text    string          `json:"text"`
	Points  float64         `json:"points"`
	Answers []ExamAnswerDTO `json:"answers"`
}

// ExamAttemptDTO is the response shape for both a freshly created and a
// resumed attempt, and (with the result fields filled) for a graded one.
type ExamAttemptDTO struct {
	ID                    uint              `json:"id"`
	EnrollmentID          uint              `json:"enrollment_id"`
	AttemptNumber         int               `json:"attempt_number"`
	TakenAt               time.Time         `json:"taken_at"`
	Outcome               string            `json:"outcome"`
	CorrectCount          int               `json:"correct_count"`
	IncorrectCount        int               `json:"incorrect_count"`
	Score                 float64           `json:"score"`
	CertificateURL        *string           `json:"certificate_url,omitempty"`
	CertificateDownloaded bool              `json:"certificate_downloaded"`
	ClassType             string            `json:"class_type,omitempty"`
	Questions             []ExamQuestionDTO `json:"questions,omitempty"`
}
