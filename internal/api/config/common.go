package config

// Config 配置主体
type Config struct {
	Server             ServerConfig       `mapstructure:"server"`
	DB                 DBConfig           `mapstructure:"database"`
	Redis              RedisConfig        `mapstructure:"redis"`
	Mongo              MongoConfig        `mapstructure:"mongo"`
	MinIO              MinIOConfig        `mapstructure:"minio"`
	Elastic            ElasticConfig      `mapstructure:"elastic"`
	Kafka              KafkaConfig        `mapstructure:"kafka"`
	KafkaEventConsumer KafkaEventConsumer `mapstructure:"kafka_event_consumer"`
	JWT                JWTConfig          `mapstructure:"jwt"`
	LLM                LLMConfig          `mapstructure:"llm"`
	Importer           ImporterConfig     `mapstructure:"importer"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// MongoConfig 行为事件日志库配置
type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	Endpoint   string `mapstructure:"endpoint"`
	AccessKey  string `mapstructure:"access_key"`
	SecretKey  string `mapstructure:"secret_key"`
	MainBucket string `mapstructure:"main_bucket"`
	UseSSL     bool   `mapstructure:"use_ssl"`
}

// ElasticConfig Elastic配置
type ElasticConfig struct {
	Address      string `mapstructure:"address"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	ArticleIndex string `mapstructure:"article_index"`
}

type KafkaConfig struct {
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

// KafkaEventConsumer 行为事件消费者
type KafkaEventConsumer struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}

// JWTConfig 令牌签发配置
type JWTConfig struct {
	Secret     string `mapstructure:"secret"`
	ExpireHour int    `mapstructure:"expire_hour"`
}

type LLMConfig struct {
	URL    string `mapstructure:"url"`
	Model  string `mapstructure:"model"`
	ApiKey string `mapstructure:"api_key"`
}

// ImporterConfig 外部文章抓取配置
type ImporterConfig struct {
	UserAgent      string `mapstructure:"user_agent"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	EnableBrowser  bool   `mapstructure:"enable_browser"`
}
