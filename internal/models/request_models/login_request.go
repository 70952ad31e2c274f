package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type SignUpRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=patient therapist"`

	// Optional patient profile, accepted at registration time.
	Sex       string   `json:"sex,omitempty"`
	Age       *int     `json:"age,omitempty"`
	Sport     string   `json:"sport,omitempty"`
	Addiction string   `json:"addiction,omitempty"`
	Hobbies   []string `json:"hobbies,omitempty" binding:"omitempty,max=3"`
}

type ForgotPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
	Token       string `json:"token" binding:"required"`
}

type RequestForgotPassword struct {
	Email string `json:"email" binding:"required,email"`
}
