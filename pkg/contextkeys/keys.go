package contextkeys

type contextKey string

const (
	CallerKey    contextKey = "Caller"
	RequestIDKey contextKey = "RequestID"
)
