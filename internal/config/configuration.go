package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Configuration struct {
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	QR      QRConfig      `yaml:"qr"`
	Auth    AuthConfig    `yaml:"auth"`
}

type StorageConfig struct {
	Path    string `yaml:"path"`
	BaseURL string `yaml:"baseUrl"`
}

type ServerConfig struct {
	Port          int           `yaml:"port"`
	Concurrency   int           `yaml:"concurrency"`
	RequestConfig RequestConfig `yaml:"request"`
	LogConfig     LogConfig     `yaml:"log"`
	CleanConfig   CleanConfig   `yaml:"clean"`
}

type RequestConfig struct {
	SizeLimit int `yaml:"sizeLimit"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	Output  string `yaml:"output"`
	LogPath string `yaml:"logPath"`
}

type CleanConfig struct {
	Schedule string `yaml:"schedule"`
}

type QRConfig struct {
	Scheme    string `yaml:"scheme"`
	WebOrigin string `yaml:"webOrigin"`
}

type AuthConfig struct {
	JWTSecret     string `yaml:"jwtSecret"`
	TokenTTLHours int    `yaml:"tokenTtlHours"`
}

func LoadConfiguration(configurationFilePath string) (*Configuration, error) {
	data, err := os.ReadFile(configurationFilePath)
	if err != nil {
		return nil, err
	}
	var config Configuration
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}
	applyDefaults(&config)
	return &config, nil
}

func applyDefaults(config *Configuration) {
	if config.Server.Port == 0 {
		config.Server.Port = 8080
	}
	if config.Server.Concurrency == 0 {
		config.Server.Concurrency = 256
	}
	if config.Server.RequestConfig.SizeLimit == 0 {
		config.Server.RequestConfig.SizeLimit = 25
	}
	if config.Server.CleanConfig.Schedule == "" {
		config.Server.CleanConfig.Schedule = "@hourly"
	}
	if config.QR.Scheme == "" {
		config.QR.Scheme = "myorganizer"
	}
	if config.Auth.TokenTTLHours == 0 {
		config.Auth.TokenTTLHours = 72
	}
}
