package configs

// HTTP defines configuration for the HTTP server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// AllowedOrigins lists the origins of the single page frontend allowed
	// by CORS, comma separated.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`
	// MaxUploadMB caps multipart bodies of uploads and sheet imports.
	MaxUploadMB int64 `env:"MAX_UPLOAD_MB" envDefault:"10"`
}

// MaxUploadBytes returns MaxUploadMB in bytes.
func (c HTTP) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}
