// Package clientip resolves the originating client address of a request
// served behind reverse proxies.
//
// A Resolver reads the trusted proxy headers in order and falls back to the
// TCP peer address:
//
//	res := clientip.NewResolver("CF-Connecting-IP", "X-Forwarded-For")
//	r.Use(clientip.Middleware(res))
//
// Downstream code reads the address with FromContext; Key adapts it for rate
// limiting and LoggerExtractor adds it to log records.
package clientip
