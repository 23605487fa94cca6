package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DBUsername string `yaml:"db_username"`
	DBPassword string `yaml:"db_password"`
	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBName     string `yaml:"db_name"`
	DisableTLS bool   `yaml:"disable_tls"`

	RedisHost     string `yaml:"redis_host"`
	RedisPassword string `yaml:"redis_password"`

	BaseUrl string `yaml:"base_url"`
	Port    string `yaml:"port"`
	JWTKey  string `yaml:"jwt_key"`

	// Timezone anchors every calendar-day computation in the service. All
	// attendance reads and writes normalize dates against this location.
	Timezone string `yaml:"timezone"`

	// Google Calendar sync. Both values must be present for the client to
	// reach the ready state.
	ServiceAccountPath string `yaml:"service_account_path"`
	CalendarID         string `yaml:"calendar_id"`
}

func NewConfig() (*Config, error) {
	var c Config

	yamlFile, err := os.ReadFile("config.yaml")
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(yamlFile, &c)
	if err != nil {
		return nil, err
	}

	if c.DBUsername == "" || c.DBPassword == "" || c.DBHost == "" || c.DBName == "" {
		return nil, errors.New("missing required database configuration")
	}

	if c.Timezone == "" {
		c.Timezone = "Asia/Kolkata"
	}

	return &c, nil
}
