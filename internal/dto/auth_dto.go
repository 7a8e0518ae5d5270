package dto

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token       string  `json:"token"`
	ExpiresIn   int     `json:"expires_in"`
	TokenType   string  `json:"token_type"`
	WorkerID    *uint   `json:"worker_id,omitempty"`
	CompanyID   *uint   `json:"company_id,omitempty"`
	CompanyName *string `json:"company_name,omitempty"`
	CompanyRUC  *string `json:"company_ruc,omitempty"`
	CompanyLogo *string `json:"company_logo,omitempty"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Role        string  `json:"role"`
}
