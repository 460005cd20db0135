// Package constants contains string constants shared across layers.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers for shipment events.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// DefaultCollection is the remote collection holding shipments.
const DefaultCollection = "shipments"

// DefaultStoreKey is the single key the local store persists under.
const DefaultStoreKey = "jp_shipments"

// DefaultTrackingBaseURL is used when no public origin is configured.
const DefaultTrackingBaseURL = "https://jpeglogistics.cc"
