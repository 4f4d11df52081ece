package constants

// Redis key formats
const (
	// OTP codes and their attempt counters, scoped by purpose
	KeyAuthOTP      = "auth:otp:%s:%s"      // Format: auth:otp:{purpose}:{email}
	KeyAuthAttempts = "auth:attempts:%s:%s" // Format: auth:attempts:{purpose}:{email}

	// Resend budget per identity
	KeyAuthResend = "auth:resend:%s" // Format: auth:resend:{email}

	// Fixed-window rate counters
	KeyAuthRate = "auth:rate:%s:%s" // Format: auth:rate:{scope}:{identifier}

	// Flow-state flags gating multi-step flows
	KeyAuthFlowState = "auth:state:%s:%s" // Format: auth:state:{state}:{email}
)

// Rate limit scopes
const (
	RateScopeIP       = "ip"
	RateScopeRegister = "register"
	RateScopeLogin    = "login"
	RateScopeResend   = "resend"
	RateScopeVerify   = "verify"
)
