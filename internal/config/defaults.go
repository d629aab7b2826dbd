package config

import "time"

// defaultConfig returns the built-in configuration values.
//
// The admin credential pair defaults to the studio's single built-in
// account; there is deliberately no user management behind it. Deployments
// are expected to override at least the password and the token sign key.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			AdminLogin:        "admin",
			AdminPassword:     "studio2024",
			TokenSignKey:      "studio-cms-dev-sign-key",
			TokenIssuer:       "studio-cms",
			TokenDuration:     12 * time.Hour,
			MediaProbeTimeout: 10 * time.Second,
		},
		Server: Server{
			HTTPAddress:    ":8080",
			RequestTimeout: 30 * time.Second,
		},
		Workers: Workers{
			SweepInterval:    24 * time.Hour,
			MessageRetention: 90 * 24 * time.Hour,
		},
	}
}
