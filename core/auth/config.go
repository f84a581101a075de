package auth

// Config provides environment-based configuration for the auth core.
// The two JWT secrets must differ: key separation between the access and
// refresh tokens is what keeps one token class from impersonating the other.
type Config struct {
	AccessSecret  string `env:"JWT_ACCESS_SECRET,required"`
	RefreshSecret string `env:"JWT_REFRESH_SECRET,required"`
	Environment   string `env:"APP_ENV" envDefault:"development"`
	SessionCookie string `env:"SESSION_COOKIE_NAME" envDefault:"auth_session"`
}

// IsDevelopment reports whether the app runs in a development environment;
// outside development the session cookie carries the Secure flag.
func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}
