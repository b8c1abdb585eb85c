package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// RequestIDHeaderName is the HTTP header and gRPC metadata key carrying the
// request correlation id.
const RequestIDHeaderName = "x-request-id"

// Messages returned by both surfaces when an AI feedback request fails.
const (
	FeedbackFailedMessage     = "Failed to generate AI feedback"
	AchievementsFailedMessage = "Failed to get daily achievements"
)
