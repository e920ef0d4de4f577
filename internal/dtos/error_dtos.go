package dtos

// ValidationErrorDetail is the structured per-field entry in validation
// error responses.
type ValidationErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}
