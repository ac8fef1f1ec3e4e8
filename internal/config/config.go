package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Configuration keys, each also readable from the environment variable noted.
const (
	KeyPort          = "port"           // PORT
	KeyHost          = "host"           // HOST
	KeySeed          = "seed"           // ROSTER_SEED
	KeyActivityLimit = "activity_limit" // ROSTER_ACTIVITY_LIMIT
)

const (
	defaultPort          = "5000"
	defaultHost          = "0.0.0.0"
	defaultActivityLimit = 100
)

// Config 聚合整个服务的配置项。
type Config struct {
	Server ServerConfig
	Roster RosterConfig
}

// ServerConfig 描述 HTTP 服务配置。
type ServerConfig struct {
	Addr string
}

// RosterConfig controls the in-memory roster.
type RosterConfig struct {
	Seed          bool
	ActivityLimit int
}

// NewViper returns a viper instance with defaults and environment bindings applied.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyPort, defaultPort)
	v.SetDefault(KeyHost, defaultHost)
	v.SetDefault(KeySeed, true)
	v.SetDefault(KeyActivityLimit, defaultActivityLimit)

	_ = v.BindEnv(KeyPort, "PORT")
	_ = v.BindEnv(KeyHost, "HOST")
	_ = v.BindEnv(KeySeed, "ROSTER_SEED")
	_ = v.BindEnv(KeyActivityLimit, "ROSTER_ACTIVITY_LIMIT")
	return v
}

// Load 从 viper 中解析配置。
func Load(v *viper.Viper) (*Config, error) {
	server, err := loadServerConfig(v)
	if err != nil {
		return nil, err
	}

	roster, err := loadRosterConfig(v)
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, Roster: roster}, nil
}

// loadServerConfig 解析服务器监听地址。
func loadServerConfig(v *viper.Viper) (ServerConfig, error) {
	port := strings.TrimSpace(v.GetString(KeyPort))
	if port == "" {
		port = defaultPort
	}

	if strings.Contains(port, ":") {
		// 允许用户直接传入 ":5000" 或 "127.0.0.1:5000"。
		return ServerConfig{Addr: port}, nil
	}

	if _, err := strconv.ParseUint(port, 10, 16); err != nil {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	host := strings.TrimSpace(v.GetString(KeyHost))
	return ServerConfig{Addr: net.JoinHostPort(host, port)}, nil
}

func loadRosterConfig(v *viper.Viper) (RosterConfig, error) {
	seed, err := parseBool(v, KeySeed)
	if err != nil {
		return RosterConfig{}, err
	}

	limit, err := parseInt(v, KeyActivityLimit)
	if err != nil {
		return RosterConfig{}, err
	}
	if limit < 1 {
		limit = 1
	}

	return RosterConfig{Seed: seed, ActivityLimit: limit}, nil
}

func parseBool(v *viper.Viper, key string) (bool, error) {
	raw := strings.TrimSpace(v.GetString(key))
	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseInt(v *viper.Viper, key string) (int, error) {
	raw := strings.TrimSpace(v.GetString(key))
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}
