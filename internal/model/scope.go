package model

// Scope carries the caller identity for a request. An empty UserID means the
// request is unscoped; adapters must then avoid returning user-owned data.
type Scope struct {
	UserID string
}

// Environment names.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
