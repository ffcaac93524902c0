package contextkeys

// RequestId carries the per-request UUID set by the logging middleware.
type RequestId struct{}

// TransactionContextKey carries the per-request *gorm.DB transaction.
type TransactionContextKey struct{}

type HttpClientStartsAt struct{}

type HttpClientRequestBody struct{}
