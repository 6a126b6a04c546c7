package question

// Failure codes carried by pkg/errors AppError values. The transport layer
// maps them onto HTTP status codes.
const (
	// CodeParseError marks a pagination bound that is not a valid
	// non-negative integer.
	CodeParseError = "pagination_parse_error"
	// CodeMissingParameter marks a request supplying only one of the two
	// pagination bounds.
	CodeMissingParameter = "pagination_missing_parameter"
	// CodeStartGreaterEnd marks bounds that parsed but are out of order.
	CodeStartGreaterEnd = "pagination_start_greater_end"
	// CodeInvalidID marks an empty question identifier.
	CodeInvalidID = "question_invalid_id"
	// CodeUnavailable marks a repository enumeration failure.
	CodeUnavailable = "questions_unavailable"
)
