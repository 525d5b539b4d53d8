// Package messaging publishes and consumes domain events over a pluggable
// broker: NSQ, NATS, Kafka, Google Pub/Sub, or an in-process memory broker
// used by tests and single-node runs.
//
// Every driver delivers a *Message with string headers. A handler returning
// nil acknowledges the message; an error asks the broker for redelivery where
// the broker supports it.
package messaging
