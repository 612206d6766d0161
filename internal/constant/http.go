package constant

const (
	ContextKeyRequestID  = "requestid"
	ContextKeyTranslator = "T"

	RequestIDHeader = "X-Nicodash-Request-ID"
)
