package services

// EventPublisher publishes a domain event to the message broker.
// Services tolerate a nil publisher and skip publishing.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}
