package auth

// LoginDTO is the transport shape used by the HTTP handler to accept login
// requests. Missing fields are not rejected up front: they simply never match
// a stored credential, so the handler answers with the same 401 as a wrong
// password.
type LoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the signed bearer token back to the client.
type LoginResponse struct {
	Token string `json:"token"`
}

// ProfileResponse is the payload returned by the profile endpoint.
type ProfileResponse struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
