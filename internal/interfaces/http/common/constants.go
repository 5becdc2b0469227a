package common

const (
	// MaxRequestBody limits JSON request bodies for shop/admin endpoints.
	MaxRequestBody = 1 << 20
)
