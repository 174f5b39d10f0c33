package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer

	Database Database `envPrefix:"DATABASE_"`
	Auth     Auth     `envPrefix:"AUTH_"`
}

type Database struct {
	// Driver is "sqlite" or "mysql".
	Driver string `env:"DRIVER" envDefault:"sqlite"`
	URL    string `env:"URL" envDefault:"sellegate.db"`
}

type Auth struct {
	BcryptCost int `env:"BCRYPT_COST" envDefault:"12"`
	// TokenBytes is the random length of an issued token key; keys render as
	// twice as many hex characters.
	TokenBytes int `env:"TOKEN_BYTES" envDefault:"32"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
