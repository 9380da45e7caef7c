package envconfig

import "github.com/caarlos0/env/v11"

type authEnv struct {
	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@autoparts.com"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"admin123"`
	EnforceRoles  bool   `env:"AUTH_ENFORCE_ROLES" envDefault:"false"`
}

type auth struct {
	raw authEnv
}

func NewAuthConfig() (*auth, error) {
	var raw authEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &auth{raw: raw}, nil
}

func (cfg *auth) AdminEmail() string    { return cfg.raw.AdminEmail }
func (cfg *auth) AdminPassword() string { return cfg.raw.AdminPassword }
func (cfg *auth) EnforceRoles() bool    { return cfg.raw.EnforceRoles }
