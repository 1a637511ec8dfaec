package errors

// Error codes returned in the "error" field of every error response.
// Format: CATEGORY_SPECIFIC_DETAIL

const (
	// Validation
	ValidationInvalidInput    = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID       = "VALIDATION_INVALID_ID"
	ValidationMissingFields   = "VALIDATION_MISSING_FIELDS"
	ValidationInvalidStatus   = "VALIDATION_INVALID_STATUS"
	ValidationEmptyOrder      = "VALIDATION_EMPTY_ORDER"
	ValidationUnknownMenuItem = "VALIDATION_UNKNOWN_MENU_ITEM"
	ValidationUnknownTable    = "VALIDATION_UNKNOWN_TABLE"

	// Resources
	ResourceNotFound      = "RESOURCE_NOT_FOUND"
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"
	ResourceConflict      = "RESOURCE_CONFLICT"

	// Orders
	OrderNotFound          = "ORDER_NOT_FOUND"
	OrderInvalidTransition = "ORDER_INVALID_TRANSITION"

	// Reservations
	ReservationNotFound          = "RESERVATION_NOT_FOUND"
	ReservationDuplicate         = "RESERVATION_DUPLICATE"
	ReservationInvalidTransition = "RESERVATION_INVALID_TRANSITION"

	// Menu / cart
	MenuItemNotFound = "MENU_ITEM_NOT_FOUND"
	CartEmpty        = "CART_EMPTY"

	// Tables
	TableNotFound      = "TABLE_NOT_FOUND"
	TableNumberExists  = "TABLE_NUMBER_EXISTS"
	StorageUnavailable = "STORAGE_UNAVAILABLE"

	// Email
	EmailNotConfigured = "EMAIL_NOT_CONFIGURED"
	EmailSendFailed    = "EMAIL_SEND_FAILED"

	// Internal
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
)
