package request

// RegisterRequest represents a registration request
type RegisterRequest struct {
	ShopName          string `json:"shop_name" binding:"required,min=2,max=255"`
	MobileNumber      string `json:"mobile_number" binding:"required,min=10,max=15"`
	Password          string `json:"password" binding:"required,min=6"`
	PreferredLanguage string `json:"preferred_language"` // Optional: defaults to "en"
}

// LoginRequest represents a login request
type LoginRequest struct {
	MobileNumber string `json:"mobile_number" binding:"required"`
	Password     string `json:"password" binding:"required"`
}

// ChangePasswordRequest represents a password change request
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=NewPassword"`
}
