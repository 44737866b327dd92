package storage

// KeyValue is the durable storage backend the cycle log store writes through.
// Implementations must make Set durable before returning.
type KeyValue interface {
	Get(key string) (value string, ok bool, err error)
	Set(key string, value string) error
}
