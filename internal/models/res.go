package models

type ApiResponse struct {
	Success    bool     `json:"success"`
	Message    string   `json:"message,omitempty"`
	User       any      `json:"user,omitempty"`
	Users      any      `json:"users,omitempty"`
	Token      string   `json:"token,omitempty"`
	Business   any      `json:"business,omitempty"`
	Businesses any      `json:"businesses,omitempty"`
	Pagination any      `json:"pagination,omitempty"`
	Errors     []string `json:"errors,omitempty"`
}

func UserResponse(user *User, message string) ApiResponse {
	return ApiResponse{
		Success: true,
		Message: message,
		User:    user,
	}
}

func UsersResponse(users []User, pagination *Pagination) ApiResponse {
	return ApiResponse{
		Success:    true,
		Users:      users,
		Pagination: pagination,
	}
}

func MessageResponse(message string) ApiResponse {
	return ApiResponse{
		Success: true,
		Message: message,
	}
}

func ErrorResponse(message string) ApiResponse {
	return ApiResponse{
		Success: false,
		Message: message,
	}
}

func ValidationErrorResponse(errs []string) ApiResponse {
	return ApiResponse{
		Success: false,
		Message: "Validation failed",
		Errors:  errs,
	}
}

// Pagination describes one page of the admin user listing.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalUsers  int64 `json:"totalUsers"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

// NewPagination computes page bookkeeping for a 1-indexed page of size limit
// over total matching records.
func NewPagination(page, limit int, total int64) *Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalUsers:  total,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}
