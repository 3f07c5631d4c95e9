package db

// RedisClient defines the methods the application needs from Redis.
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Exists(key string) (bool, error)
	Del(key string) error
	Ping() error
}
