package router

type Config struct {
	Address         string   `yaml:"address"`
	BodyLimit       string   `yaml:"body_limit"`
	StaticDir       string   `yaml:"static_dir"`
	AdminDir        string   `yaml:"admin_dir"`
	AllowOrigins    []string `yaml:"allow_origins"`
	ShutdownTimeout int64    `yaml:"shutdown_timeout_in_ms"`
}
