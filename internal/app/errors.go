package app

type TimelineErrorCode string

const (
	ErrInvalidWeek      TimelineErrorCode = "INVALID_WEEK"
	ErrInvalidTrimester TimelineErrorCode = "INVALID_TRIMESTER"
	ErrInvalidRiskLevel TimelineErrorCode = "INVALID_RISK_LEVEL"
	ErrInvalidFormat    TimelineErrorCode = "INVALID_FORMAT"
)

// TimelineError is returned by use cases for rejected input. Err carries
// the domain sentinel so callers can match with errors.Is.
type TimelineError struct {
	Code    TimelineErrorCode
	Message string
	Err     error
}

func (e *TimelineError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *TimelineError) Unwrap() error {
	return e.Err
}
