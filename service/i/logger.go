package i

// Logger writes leveled application logs.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)
}
