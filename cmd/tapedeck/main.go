package main

import (
	"context"
	"log"
	"time"

	"fyne.io/fyne/v2/app"

	"github.com/tapedeck/tapedeck/internal/api"
	"github.com/tapedeck/tapedeck/internal/platform"
	"github.com/tapedeck/tapedeck/internal/settings"
	"github.com/tapedeck/tapedeck/internal/ui"
)

const daemonStartupWait = 500 * time.Millisecond

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.tapedeck.tapedeck")
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	myWindow := myApp.NewWindow("Tapedeck")

	prefs := settings.NewSettings(myApp)
	client := api.NewClient(prefs.GetBackendURL())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start tapedeckd unless one is already answering or the user opted out.
	var daemon *platform.DaemonProcess
	if prefs.GetLaunchDaemon() && !client.Ping(ctx) {
		binPath, err := platform.LocateDaemon()
		if err != nil {
			log.Printf("Daemon not started: %v", err)
		} else if daemon, err = platform.SpawnDaemon(binPath); err != nil {
			log.Printf("Daemon not started: %v", err)
		} else {
			log.Printf("Started tapedeckd (pid %d)", daemon.Pid())
			time.Sleep(daemonStartupWait)
		}
	}

	rootUI := ui.NewRootUI(myWindow, myApp, client)
	rootUI.Start(ctx)

	// Show and run
	myWindow.ShowAndRun()

	cancel()
	if err := daemon.Terminate(); err != nil {
		log.Printf("Daemon terminate: %v", err)
	}
}
