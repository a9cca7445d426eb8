package common

import "net/http"

// Body models errors as JSON in the API
type Body struct {
	Status  string `json:"status" binding:"required" example:"Not Found"`
	Message string `json:"message" binding:"required" example:"Something went wrong :("`
}

type ApiError struct {
	StatusCode int
	Body       Body
}

func (a *ApiError) Error() string {
	return a.Body.Message
}

// NewApiError builds an ApiError whose body status is the standard text for the code
func NewApiError(statusCode int, message string) *ApiError {
	return &ApiError{
		StatusCode: statusCode,
		Body: Body{
			Status:  http.StatusText(statusCode),
			Message: message,
		},
	}
}
