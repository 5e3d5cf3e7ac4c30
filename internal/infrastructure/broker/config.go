package broker

type Config struct {
	URI        string
	StreamName string `yaml:"stream_name"`
	GroupName  string `yaml:"group_name"`
	// MaxLen caps the stream length approximately; 0 keeps every entry.
	MaxLen int64 `yaml:"max_len"`
}

type PublisherConfig struct {
	Timeout int `yaml:"timeout_in_ms"`
}

type ReceiverConfig struct {
	BlockTime int64  `yaml:"block_time_in_ms"`
	Consumer  string `yaml:"consumer"`
}
