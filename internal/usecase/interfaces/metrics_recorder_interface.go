package interfaces

// IMetricsRecorder receives engine events after they are committed.
type IMetricsRecorder interface {
	QuoteSubmitted(status string)
	RequestTransition(from, to string)
	OrderMaterialized(created bool)
}
