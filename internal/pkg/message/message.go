package message

const (
	InvalidUser  = "Invalid username/password."
	InvalidInput = "Invalid input."
	EnvErrFmt    = "environment variable is not set: %s"

	FmtErrStatusCode = "rec.Code = %d, want: %d"
)
