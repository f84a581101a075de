// Package middleware provides the HTTP middleware chain for the auth core:
// request IDs, structured request logging, and the two authentication
// channels.
//
// Session is the cookie channel. It runs on every route, resolves the
// session cookie, and stores the result in the request context; an absent or
// dead cookie makes the request anonymous, never a 401. Bearer is the guard
// for token-protected routes: any verification failure is terminal and the
// response body never explains why.
//
// A typical chain:
//
//	handler = middleware.RequestID()(
//		middleware.Logging(log)(
//			middleware.Session(gateway, cookies)(mux)))
package middleware
