package models

// CreateUserRequest represents a registration request
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,max=200" example:"testuser"`
	Email    string `json:"email" binding:"required,email" example:"testuser@email.com"`
	Password string `json:"password" binding:"required,min=6" example:"test1234!"`
	Role     string `json:"role" binding:"required,max=100" example:"regular"`
}

// AddBookRequest represents a book creation request
type AddBookRequest struct {
	Title  string `json:"title" binding:"required,max=200" example:"Deep Work"`
	Author string `json:"author" binding:"required,max=200" example:"Cal Newport"`
}

// EditBookRequest represents a book update request
type EditBookRequest struct {
	Title    string `json:"title" binding:"required,max=200"`
	Author   string `json:"author" binding:"required,max=200"`
	Summary  string `json:"summary"`
	Category string `json:"category"`
}
