package common

// AuthorizationHeaderName is the HTTP header used to carry the bearer token
// on requests to protected routes.
const AuthorizationHeaderName = "Authorization"

// BearerScheme is the conventional prefix of the Authorization header value.
// The server only looks at the token segment after the whitespace; the
// constant exists for clients building the header.
const BearerScheme = "Bearer"
