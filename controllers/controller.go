package controller

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/privops/elevate/logic"
	"github.com/privops/elevate/logger"
	"github.com/privops/elevate/servercfg"
)

// engine - the elevation engine serving every handler, set once at startup
var engine logic.Engine

// SetEngine - wires the elevation engine into the REST layer
func SetEngine(e logic.Engine) {
	engine = e
}

// HandleRESTRequests - handles the API server and routes requests
func HandleRESTRequests(wg *sync.WaitGroup) {
	defer wg.Done()

	r := mux.NewRouter()

	headersOk := handlers.AllowedHeaders([]string{"Access-Control-Allow-Origin", "X-Requested-With", "Content-Type", "authorization"})
	originsOk := handlers.AllowedOrigins([]string{servercfg.GetAllowedOrigin()})
	methodsOk := handlers.AllowedMethods([]string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete})

	elevationHandlers(r)
	approvalHandlers(r)
	networkAccessHandlers(r)
	auditHandlers(r)
	authHandlers(r)

	port := servercfg.GetAPIPort()
	srv := &http.Server{
		Addr:    servercfg.GetAPIHost() + ":" + port,
		Handler: handlers.CORS(originsOk, headersOk, methodsOk)(r),
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.FatalLog("error starting REST server:", err.Error())
		}
	}()
	logger.Log(0, "REST server successfully started on port", port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	logger.Log(0, "stopping the REST server . . .")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	srv.Shutdown(ctx)
	logger.Log(0, "REST server closed")
}
