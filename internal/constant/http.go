package constant

const (
	ContextKeyRequestID = "requestID"

	RequestIDHeader      = "X-DTWiki-Request-ID"
	IdempotencyKeyHeader = "Idempotency-Key"

	// IdempotencyHeader marks a response as freshly "saved" or served from a
	// previous "hit" of the same idempotency key.
	IdempotencyHeader       = "X-DTWiki-Idempotency"
	IdempotencyKeyLocalsKey = "idempotencyKey"

	IdempotencyKeyLengthLimit = 128
)
