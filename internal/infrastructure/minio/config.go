package minio

type ClientConfig struct {
	AccessKey string
	SecretKey string
	Endpoint  string `yaml:"endpoint"`
	UseSSL    bool   `yaml:"use_ssl"`
}

type UploaderConfig struct {
	Timeout       int64  `yaml:"timeout_in_ms"`
	Bucket        string `yaml:"bucket"`
	PublicBaseURL string `yaml:"public_base_url"`
}

type RemoverConfig struct {
	Timeout int64 `yaml:"timeout_in_ms"`
}
