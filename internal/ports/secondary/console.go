package secondary

// Console is the operator-facing message sink. One severity per call.
type Console interface {
	Info(message string)
	Warning(message string)
	Success(message string)
}
