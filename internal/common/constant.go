package common

// AuthorizationHeader carries the bearer credential on outbound API requests.
const AuthorizationHeader = "Authorization"

// RequestIDHeader carries a per-call correlation id so client-side failures
// can be matched against backend logs.
const RequestIDHeader = "X-Request-Id"
