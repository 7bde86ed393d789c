package main

import (
	"flag"
	"sync"

	"github.com/privops/elevate/config"
	controller "github.com/privops/elevate/controllers"
	"github.com/privops/elevate/database"
	"github.com/privops/elevate/logger"
	"github.com/privops/elevate/logic"
	"github.com/privops/elevate/mq"
	"github.com/privops/elevate/servercfg"
)

var version = "dev"

// Start DB connection and start API request handler
func main() {
	absoluteConfigPath := flag.String("c", "", "absolute path to configuration file")
	flag.Parse()
	setupConfig(*absoluteConfigPath)
	servercfg.SetVersion(version)
	initialize()
	defer database.CloseDB()
	defer mq.CloseClient()
	startControllers()
}

func setupConfig(absoluteConfigPath string) {
	config.LoadDotEnv()
	if len(absoluteConfigPath) > 0 {
		cfg, err := config.ReadConfig(absoluteConfigPath)
		if err != nil {
			logger.FatalLog("failed parsing config at:", absoluteConfigPath, err.Error())
		}
		config.Config = cfg
	}
}

func initialize() {
	if servercfg.GetMasterKey() == "" {
		logger.Log(0, "warning: MASTER_KEY not set, only externally issued tokens will authenticate")
	}

	if servercfg.IsAuditLoggingEnabled() {
		if err := database.InitializeDatabase(); err != nil {
			logger.FatalLog("error connecting to database:", err.Error())
		}
		if err := logic.InitServerUUID(); err != nil {
			logger.FatalLog("error initializing server id:", err.Error())
		}
		logger.Log(1, "server id:", logic.GetServerUUID())
	}

	mq.SetupMQTT()
	logic.PublishEventFunc = mq.PublishElevationEvent

	engine := logic.NewEngineFromServerConfig()
	controller.SetEngine(engine)
}

func startControllers() {
	var waitGroup sync.WaitGroup
	waitGroup.Add(1)
	go controller.HandleRESTRequests(&waitGroup)
	waitGroup.Wait()
}
