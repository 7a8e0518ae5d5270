package dto

import "time"

type CompanyRequest struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	RUC         string `json:"ruc" binding:"required"`
	Email       string `json:"email"`
	WorkerCount int    `json:"worker_count"`
	ContactName string `json:"contact_name"`
	LogoURL     string `json:"logo_url"`
}

type PeriodRequest struct {
	CompanyID   uint       `json:"company_id" binding:"required"`
	Code        string     `json:"code" binding:"required"`
	Description string     `json:"description"`
	Active      bool       `json:"active"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

type ClassRequest struct {
	PeriodID    uint       `json:"period_id" binding:"required"`
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Type        string     `json:"type" binding:"required,oneof=induction training documentation"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	ImageURL    string     `json:"image_url"`
}

type WorkerRequest struct {
	CompanyID uint       `json:"company_id" binding:"required"`
	FirstName string     `json:"first_name" binding:"required"`
	LastName  string     `json:"last_name" binding:"required"`
	DNI       string     `json:"dni" binding:"required"`
	Area      string     `json:"area"`
	Position  string     `json:"position"`
	Site      string     `json:"site"`
	BirthDate *time.Time `json:"birth_date"`
}

type UserRequest struct {
	WorkerID  *uint  `json:"worker_id"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required,min=6"`
	Role      string `json:"role" binding:"required,oneof=admin company worker"`
	Active    bool   `json:"active"`
}

type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

type EnrollmentRequest struct {
	ClassID     uint `json:"class_id" binding:"required"`
	WorkerID    uint `json:"worker_id" binding:"required"`
	UserID      uint `json:"user_id" binding:"required"`
	MaxAttempts int  `json:"max_attempts" binding:"required,min=1"`
}

type QuestionBankRequest struct {
	ClassID     uint   `json:"class_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// AnswerAuthoringDTO carries the correctness flag; it appears only in
// authoring requests, never in any response.
type AnswerAuthoringDTO struct {
	Text    string `json:"text" binding:"required"`
	Correct bool   `json:"correct"`
}

type QuestionRequest struct {
	QuestionBankID uint                 `json:"question_bank_id" binding:"required"`
	Text           string               `json:"text" binding:"required"`
	Comment        string               `json:"comment"`
	Points         float64              `json:"points" binding:"required,gt=0"`
	Answers        []AnswerAuthoringDTO `json:"answers" binding:"required,len=4,dive"`
}

type ClassFileRequest struct {
	ClassID     uint   `json:"class_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	URL         string `json:"url" binding:"required"`
	Extension   string `json:"extension"`
	Type        string `json:"type"`
	ImageURL    string `json:"image_url"`
}

type FileDeliveryRequest struct {
	ClassFileID uint `json:"class_file_id" binding:"required"`
	WorkerID    uint `json:"worker_id" binding:"required"`
}

type FileDeliveryFlagRequest struct {
	Downloaded *bool `json:"downloaded"`
	Accepted   *bool `json:"accepted"`
}
