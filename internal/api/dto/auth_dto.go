package dto

// SignupRequest payload for new registrations.
type SignupRequest struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Password       string   `json:"password"`
	Phone          string   `json:"phone"`
	Location       string   `json:"location"`
	Department     string   `json:"department"`
	Languages      []string `json:"languages"`
	Bio            string   `json:"bio"`
	PortfolioLinks []string `json:"portfolioLinks"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
