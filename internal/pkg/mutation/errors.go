package mutation

// ValidationError ошибка конкретного поля, Code уходит клиенту как есть.
type ValidationError struct {
	Code    string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Code + ": " + e.Message
}

var (
	ErrInvalidCity      = &ValidationError{Code: "INVALID_CITY", Field: "city", Message: "city must not be empty"}
	ErrInvalidDate      = &ValidationError{Code: "INVALID_DATE", Field: "deliveryDate", Message: "delivery date is not a valid date"}
	ErrInvalidPackaging = &ValidationError{Code: "INVALID_PACKAGING", Field: "packagingType", Message: "packaging type must be pallets or boxes"}
	ErrInvalidVolume    = &ValidationError{Code: "INVALID_VOLUME", Field: "volume", Message: "volume must be a positive number"}
	ErrInvalidBoxCount  = &ValidationError{Code: "INVALID_BOX_COUNT", Field: "boxCount", Message: "box count must be a positive integer"}
	ErrInvalidWeight    = &ValidationError{Code: "INVALID_WEIGHT", Field: "weight", Message: "weight must be a positive number"}
	ErrInvalidStatus    = &ValidationError{Code: "INVALID_STATUS", Field: "status", Message: "status must be one of new, warehouse, shipped, done"}
)
