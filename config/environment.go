package config

// Environment holds the cookie settings derived from AuthConfig.
type Environment struct {
	IsDevelopment bool
	Domain        string
	CookieSecure  bool
}

// NewEnvironment treats an empty cookie domain as local development.
func NewEnvironment(auth AuthConfig) Environment {
	domain := auth.CookieDomain
	isDev := domain == ""
	if isDev {
		domain = "localhost"
	}

	return Environment{
		IsDevelopment: isDev,
		Domain:        domain,
		CookieSecure:  auth.CookieSecure || !isDev,
	}
}
