package model

// Scope carries the authenticated caller's identity through usecases.
// UserID is stored here, not on the inputs, so every operation is uniformly
// scoped to its owner.
type Scope struct {
	UserID string
	Email  string
}

// Environment names the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
