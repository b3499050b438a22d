package checkout

// Log messages for checkout processing
const (
	LogMsgOrderCompleted          = "Order completed"
	LogMsgOrderEventPublishFailed = "Failed to publish order completed event"
)
