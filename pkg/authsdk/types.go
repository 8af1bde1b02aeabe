package authsdk

// TokenResponse is returned by the password and OTP login endpoints.
type TokenResponse struct {
	// Token is the signed JWT access token
	Token string `json:"token"`
}

// MessageResponse is a simple informational payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// PasswordLoginRequest is the body for POST /auth/token-pwd.
type PasswordLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// OTPRequest is the body for POST /auth/otp.
type OTPRequest struct {
	Email string `json:"email"`
}

// OTPLoginRequest is the body for POST /auth/token-otp.
type OTPLoginRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// SignupRequest is the body for POST /user/signup.
type SignupRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
}

// UserResponse is the public representation of a user.
type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ProfileUpdateRequest is the body for PUT/PATCH /user/profile.
// Email is immutable and therefore absent.
type ProfileUpdateRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ProfileUpdateResponse wraps the updated profile with a status message.
type ProfileUpdateResponse struct {
	Data    UserResponse `json:"data"`
	Message string       `json:"message"`
}

// HealthChecks reports per-dependency health for readiness probes.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
