package rabbitmq

// Generation hand-off topology. The external generation worker binds its own
// queue to this exchange.
const (
	GenerationExchange = "content.generation"

	RoutingKeyArticulation = "content.generation.articulation"
	RoutingKeyOptimization = "content.generation.optimization"
)
