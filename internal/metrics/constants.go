package metrics

// gRPC metric names
const (
	MetricNameGRPCRequestsTotal    = "alchemy_grpc_requests_total"
	MetricNameGRPCRequestDuration  = "alchemy_grpc_request_duration_seconds"
	MetricNameGRPCRequestsInFlight = "alchemy_grpc_requests_in_flight"
)

// Business metric names
const (
	MetricNameDiscountTotal    = "alchemy_discount_total_percent"
	MetricNameEffectsEvaluated = "alchemy_effects_evaluated_total"
)

// gRPC metric help text
const (
	HelpTextGRPCRequestsTotal    = "Total number of gRPC requests"
	HelpTextGRPCRequestDuration  = "gRPC request latency in seconds"
	HelpTextGRPCRequestsInFlight = "Current number of gRPC requests being served"
)

// Business metric help text
const (
	HelpTextDiscountTotal    = "Total bubble discount returned, in percent"
	HelpTextEffectsEvaluated = "Total number of bubble effects evaluated"
)

// Label names
const (
	LabelMethod = "method"
	LabelCode   = "code"
	LabelCurve  = "curve"
)

// GRPCLatencyBuckets are tuned for pure in-memory handlers
var GRPCLatencyBuckets = []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.05, 0.1}

// DiscountBuckets cover the 0 to 100 percent range
var DiscountBuckets = []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 95}
