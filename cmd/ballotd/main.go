package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tokenized/ballot-engine/cmd/ballotd/bootstrap"
	"github.com/tokenized/ballot-engine/cmd/ballotd/handlers"
	"github.com/tokenized/ballot-engine/cmd/ballotd/listeners"
	"github.com/tokenized/ballot-engine/pkg/scheduler"
)

var (
	buildVersion = "unknown"
	buildDate    = "unknown"
	buildUser    = "unknown"
)

// Ballot Engine Daemon
//
func main() {
	// -------------------------------------------------------------------------
	// Logging

	log := log.New(os.Stdout, "Node : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// -------------------------------------------------------------------------
	// Config

	ctx := bootstrap.NewContextWithDevelopmentLogger()

	cfg := bootstrap.NewConfigFromEnv(ctx)

	// -------------------------------------------------------------------------
	// App Starting

	log.Println("main : Started : Application Initializing")
	defer log.Println("main : Completed")

	log.Printf("main : Build %v (%v on %v)\n", buildVersion, buildUser, buildDate)

	// -------------------------------------------------------------------------
	// Start Database / Storage

	log.Println("main : Started : Initialize Database")

	masterDB := bootstrap.NewMasterDB(ctx, cfg)
	defer masterDB.Close()

	// -------------------------------------------------------------------------
	// Election

	e := bootstrap.LoadOrCreateElection(ctx, cfg, masterDB)

	// -------------------------------------------------------------------------
	// Scheduler

	sch := scheduler.Scheduler{}

	tallyJob := bootstrap.NewTallyReporter(e, time.Duration(cfg.Election.TallyInterval))
	if err := sch.ScheduleJob(ctx, tallyJob); err != nil {
		log.Fatalf("main : Schedule tally job : %v", err)
	}

	// -------------------------------------------------------------------------
	// Start Node Service

	server := listeners.Server{
		Handler: handlers.API(masterDB, e),
		Address: cfg.Server.ListenAddress,
	}

	// Make a channel to listen for errors coming from the listener. Use a
	// buffered channel so the goroutine can exit if we don't collect this error.
	serverErrors := make(chan error, 2)

	// Start the service listening for requests.
	go func() {
		log.Printf("main : Node Running : Listening on %s", cfg.Server.ListenAddress)
		serverErrors <- server.Start()
	}()

	go func() {
		serverErrors <- sch.Run(ctx)
	}()

	// -------------------------------------------------------------------------
	// Shutdown

	// Make a channel to listen for an interrupt or terminate signal from the OS.
	// Use a buffered channel because the signal package requires it.
	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, os.Interrupt, syscall.SIGTERM)

	// -------------------------------------------------------------------------
	// Stop API Service

	// Blocking main and waiting for shutdown.
	select {
	case err := <-serverErrors:
		log.Fatalf("main : Error starting server: %v", err)

	case <-osSignals:
		log.Println("main : Start shutdown...")

		// Asking listener to shutdown and load shed.
		if err := server.Close(); err != nil {
			log.Fatalf("main : Could not stop server: %v", err)
		}

		if err := sch.Stop(ctx); err != nil {
			log.Fatalf("main : Could not stop scheduler: %v", err)
		}

		// Final checkpoint. Every mutation already persisted itself; this
		// stamps a clean shutdown.
		if err := e.Save(ctx, masterDB); err != nil {
			log.Fatalf("main : Could not save election: %v", err)
		}
	}
}
