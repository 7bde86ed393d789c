// Package servercfg exposes server configuration through accessor functions.
// Each accessor checks the environment first and falls back to the loaded
// config file, the way the rest of the server expects to consume settings.
package servercfg

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/privops/elevate/config"
	"github.com/privops/elevate/models"
)

// Version - the running server version, set at startup
var Version = "dev"

// SetVersion - sets version of server
func SetVersion(v string) {
	if v != "" {
		Version = v
	}
}

// GetVersion - version of server
func GetVersion() string {
	return Version
}

// GetAPIHost - the interface the REST server binds to
func GetAPIHost() string {
	if os.Getenv("API_HOST") != "" {
		return os.Getenv("API_HOST")
	}
	if config.Config.Server.APIHost != "" {
		return config.Config.Server.APIHost
	}
	return "0.0.0.0"
}

// GetAPIPort - gets the api port
func GetAPIPort() string {
	if os.Getenv("API_PORT") != "" {
		return os.Getenv("API_PORT")
	}
	if config.Config.Server.APIPort != "" {
		return config.Config.Server.APIPort
	}
	return "8443"
}

// GetAllowedOrigin - get the allowed origin for CORS
func GetAllowedOrigin() string {
	if os.Getenv("CORS_ALLOWED_ORIGIN") != "" {
		return os.Getenv("CORS_ALLOWED_ORIGIN")
	}
	if config.Config.Server.AllowedOrigin != "" {
		return config.Config.Server.AllowedOrigin
	}
	return "*"
}

// GetMasterKey - gets the configured master key of server
func GetMasterKey() string {
	if os.Getenv("MASTER_KEY") != "" {
		return os.Getenv("MASTER_KEY")
	}
	return config.Config.Server.MasterKey
}

// GetVerbosity - fetches the verbosity of server
func GetVerbosity() int32 {
	level, err := strconv.Atoi(os.Getenv("VERBOSITY"))
	if err != nil {
		return config.Config.Server.Verbosity
	}
	return int32(level)
}

// GetDB - gets the database type, sqlite unless postgres is selected
func GetDB() string {
	if os.Getenv("DATABASE") != "" {
		return os.Getenv("DATABASE")
	}
	if config.Config.Server.Database != "" {
		return config.Config.Server.Database
	}
	return "sqlite"
}

// GetJwtValidityDuration - how long an issued API token stays valid
func GetJwtValidityDuration() time.Duration {
	if os.Getenv("JWT_VALIDITY_DURATION") != "" {
		if minutes, err := strconv.Atoi(os.Getenv("JWT_VALIDITY_DURATION")); err == nil && minutes > 0 {
			return time.Duration(minutes) * time.Minute
		}
	}
	if config.Config.Server.JwtValidityDuration > 0 {
		return time.Duration(config.Config.Server.JwtValidityDuration) * time.Minute
	}
	return 12 * time.Hour
}

// IsJITElevationEnabled - whether the elevation engine is turned on for this
// deployment; off means the disabled stub serves every call
func IsJITElevationEnabled() bool {
	if os.Getenv("ENABLE_JIT_ELEVATION") != "" {
		return os.Getenv("ENABLE_JIT_ELEVATION") == "yes"
	}
	return config.Config.Server.EnableJITElevation != "no"
}

// IsAuditLoggingEnabled - whether accepted submissions are written to the
// audit table
func IsAuditLoggingEnabled() bool {
	if os.Getenv("ENABLE_AUDIT_LOGGING") != "" {
		return os.Getenv("ENABLE_AUDIT_LOGGING") == "yes"
	}
	return config.Config.Server.EnableAuditLogging != "no"
}

// GetElevationPolicy - the role activation policy document
func GetElevationPolicy() models.ElevationPolicy {
	policy := models.ElevationPolicy{
		MaxDuration:            getDurationHours("MAX_ACTIVATION_HOURS", config.Config.Policy.MaxActivationHours, 8),
		MinJustificationLength: getIntSetting("MIN_JUSTIFICATION_LENGTH", config.Config.Policy.MinJustificationLength, 10),
		ApprovedTicketSystems:  getListSetting("APPROVED_TICKET_SYSTEMS", config.Config.Policy.ApprovedTicketSystems),
		HighPrivilegeRoles:     getListSetting("HIGH_PRIVILEGE_ROLES", config.Config.Policy.HighPrivilegeRoles),
	}
	if os.Getenv("REQUIRE_TICKET_NUMBER") != "" {
		policy.RequireTicketNumber = os.Getenv("REQUIRE_TICKET_NUMBER") == "yes"
	} else {
		policy.RequireTicketNumber = config.Config.Policy.RequireTicketNumber == "yes"
	}
	if len(policy.HighPrivilegeRoles) == 0 {
		policy.HighPrivilegeRoles = []string{
			"Global Administrator",
			"Privileged Role Administrator",
			"Security Administrator",
		}
	}
	return policy
}

// GetNetworkAccessPolicy - the JIT network access policy document, configured
// independently of the role activation policy
func GetNetworkAccessPolicy() models.NetworkAccessPolicy {
	return models.NetworkAccessPolicy{
		ElevationPolicy: models.ElevationPolicy{
			MaxDuration:            getDurationHours("MAX_NETWORK_ACCESS_HOURS", config.Config.Policy.MaxNetworkAccessHours, 4),
			MinJustificationLength: getIntSetting("NETWORK_MIN_JUSTIFICATION_LENGTH", config.Config.Policy.NetworkMinJustificationLen, 10),
		},
		DefaultDuration: getDurationHours("DEFAULT_NETWORK_ACCESS_HOURS", config.Config.Policy.DefaultNetworkAccessHours, 1),
	}
}

// GetMessageQueueEndpoint - the broker address for lifecycle events
func GetMessageQueueEndpoint() string {
	if os.Getenv("MQ_ENDPOINT") != "" {
		return os.Getenv("MQ_ENDPOINT")
	}
	return config.Config.MQ.Endpoint
}

// IsMessageQueueBackend - whether a broker is configured at all
func IsMessageQueueBackend() bool {
	return GetMessageQueueEndpoint() != ""
}

// GetMqUserName - the username for the broker connection
func GetMqUserName() string {
	if os.Getenv("MQ_USERNAME") != "" {
		return os.Getenv("MQ_USERNAME")
	}
	return config.Config.MQ.Username
}

// GetMqPassword - the password for the broker connection
func GetMqPassword() string {
	if os.Getenv("MQ_PASSWORD") != "" {
		return os.Getenv("MQ_PASSWORD")
	}
	return config.Config.MQ.Password
}

func getDurationHours(envName string, configHours, defaultHours float64) time.Duration {
	if os.Getenv(envName) != "" {
		if hours, err := strconv.ParseFloat(os.Getenv(envName), 64); err == nil && hours > 0 {
			return time.Duration(hours * float64(time.Hour))
		}
	}
	if configHours > 0 {
		return time.Duration(configHours * float64(time.Hour))
	}
	return time.Duration(defaultHours * float64(time.Hour))
}

func getIntSetting(envName string, configValue, defaultValue int) int {
	if os.Getenv(envName) != "" {
		if value, err := strconv.Atoi(os.Getenv(envName)); err == nil && value >= 0 {
			return value
		}
	}
	if configValue > 0 {
		return configValue
	}
	return defaultValue
}

func getListSetting(envName string, configValue []string) []string {
	if os.Getenv(envName) != "" {
		fields := strings.Split(os.Getenv(envName), ",")
		values := make([]string, 0, len(fields))
		for _, field := range fields {
			if trimmed := strings.TrimSpace(field); trimmed != "" {
				values = append(values, trimmed)
			}
		}
		return values
	}
	return configValue
}
