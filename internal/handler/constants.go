package handler

// Log messages for API handlers
const (
	LogMsgInvalidRequestBody  = "Invalid request body"
	LogMsgIdentityGenerated   = "Demo identity generated"
	LogMsgIdentityCleared     = "Demo identity cleared"
	LogMsgVisitRecorded       = "Visit recorded"
	LogMsgCheckoutFailed      = "Checkout failed"
	LogMsgEventProxyFailed    = "Event proxy delivery failed"
	LogMsgBadgeGrantFailed    = "Badge grant failed"
	LogMsgNotificationShown   = "Notification displayed"
	LogMsgNotificationCleared = "Notification dismissed"
)

// MaxRequestBodySize caps JSON request bodies
const MaxRequestBodySize = 1 << 20 // 1 MiB
