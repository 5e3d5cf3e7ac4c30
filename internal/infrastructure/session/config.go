package session

const (
	BackendRedis  = "redis"
	BackendCookie = "cookie"
)

type Config struct {
	Name      string `yaml:"name"`
	MaxAge    int    `yaml:"max_age_in_second"`
	KeyPrefix string `yaml:"key_prefix"`
	// Backend is redis unless set to cookie.
	Backend string `yaml:"backend"`
	Secure  bool   `yaml:"secure"`
	Secret  string
}
