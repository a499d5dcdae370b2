package response

// Standard messages and codes for the JSON envelope.
const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong, please try again later"

	InternalServerErrorCode = 500
)

// DateTimeFormat is the wire format for DateTime values.
const DateTimeFormat = "2006-01-02 15:04:05"
