package nonce

// Source generates the nonce string attached to authenticated requests.
type Source interface {
	GetString() string
	GetInt64() int64
}
