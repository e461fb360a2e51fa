// Package constants holds domain-wide constant values shared across layers.
package constants

// Deployment environment names.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider selection values.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Route prefixes protected by the route guard.
const (
	DashboardPathPrefix = "/dashboard"
	AdminPathPrefix     = "/admin"
)
