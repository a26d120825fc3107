package models

// RateLimitResult represents the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed    bool `json:"allowed"`
	Limit      int  `json:"limit"`
	Remaining  int  `json:"remaining"`
	RetryAfter int  `json:"retry_after,omitempty"` // seconds, only set when not allowed
}

// RateLimitExceededResponse is the API response when the limit is exceeded.
type RateLimitExceededResponse struct {
	Error      string `json:"error"` // "rate_limit_exceeded"
	Message    string `json:"message"`
	RetryAfter int    `json:"retry_after"` // seconds
}
