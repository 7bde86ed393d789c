// Package config reads the optional server configuration file and .env
// overrides. Environment variables always win; see servercfg for the
// accessors the rest of the server uses.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config : application config stored as global variable
var Config = &EnvironmentConfig{}

// EnvironmentConfig - environment conf struct
type EnvironmentConfig struct {
	Server ServerConfig `yaml:"server"`
	Policy PolicyConfig `yaml:"policy"`
	SQL    SQLConfig    `yaml:"sql"`
	MQ     MQConfig     `yaml:"mq"`
}

// ServerConfig - server conf struct
type ServerConfig struct {
	APIHost             string `yaml:"apihost"`
	APIPort             string `yaml:"apiport"`
	AllowedOrigin       string `yaml:"allowedorigin"`
	MasterKey           string `yaml:"masterkey"`
	Verbosity           int32  `yaml:"verbosity"`
	Database            string `yaml:"database"`
	JwtValidityDuration int    `yaml:"jwtvalidityduration"` // minutes
	EnableJITElevation  string `yaml:"enablejitelevation"`  // "yes" or "no"
	EnableAuditLogging  string `yaml:"enableauditlogging"`  // "yes" or "no"
}

// PolicyConfig - elevation and network access policy conf
type PolicyConfig struct {
	MaxActivationHours         float64  `yaml:"maxactivationhours"`
	RequireTicketNumber        string   `yaml:"requireticketnumber"` // "yes" or "no"
	ApprovedTicketSystems      []string `yaml:"approvedticketsystems"`
	MinJustificationLength     int      `yaml:"minjustificationlength"`
	HighPrivilegeRoles         []string `yaml:"highprivilegeroles"`
	DefaultNetworkAccessHours  float64  `yaml:"defaultnetworkaccesshours"`
	MaxNetworkAccessHours      float64  `yaml:"maxnetworkaccesshours"`
	NetworkMinJustificationLen int      `yaml:"networkminjustificationlength"`
}

// SQLConfig - sql conf struct
type SQLConfig struct {
	Host     string `yaml:"host"`
	Port     int32  `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	DB       string `yaml:"db"`
	SSLMode  string `yaml:"sslmode"`
}

// MQConfig - message queue conf struct
type MQConfig struct {
	Endpoint string `yaml:"endpoint"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// ReadConfig - reads a config file at the given path
func ReadConfig(absolutePath string) (*EnvironmentConfig, error) {
	f, err := os.Open(absolutePath)
	if err != nil {
		return nil, fmt.Errorf("could not open config file: %w", err)
	}
	defer f.Close()

	var cfg EnvironmentConfig
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("could not parse config file: %w", err)
	}
	return &cfg, nil
}

// LoadDotEnv - loads a .env file from the working directory if one exists.
// Missing files are fine; variables already set in the environment are kept.
func LoadDotEnv() {
	if _, err := os.Stat(".env"); err != nil {
		return
	}
	_ = godotenv.Load()
}
