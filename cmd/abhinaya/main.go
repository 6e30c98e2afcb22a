package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ayusman/abhinaya/internal/app"
	"github.com/ayusman/abhinaya/internal/server"
	"github.com/ayusman/abhinaya/internal/store"
	"github.com/ayusman/abhinaya/internal/tray"
)

const serverAddr = ":8080"

func main() {
	fmt.Println("Abhinaya - Gesture and Emotion Analysis")

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to get home directory: %v", err)
	}

	dataDir := filepath.Join(homeDir, ".abhinaya")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	st, err := store.New(filepath.Join(dataDir, "abhinaya.db"))
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	application := app.New(app.Config{
		Store:     st,
		PluginDir: filepath.Join(dataDir, "plugins"),
	})

	if err := application.DiscoverPlugins(); err != nil {
		log.Printf("Plugin discovery failed: %v", err)
	} else {
		log.Printf("Discovered %d plugins", len(application.PluginManager().List()))
	}

	hub := server.NewResultsHub()
	application.SetResultsPublisher(hub)

	srv := server.New(server.Config{
		StaticDir: findWebDir(dataDir),
		Store:     st,
		Camera:    application.Camera(),
		Results:   hub,
	})

	go func() {
		fmt.Printf("Starting server on %s\n", serverAddr)
		if err := srv.ListenAndServe(serverAddr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	if err := application.Start(); err != nil {
		log.Printf("Failed to start analysis pipeline: %v", err)
	} else {
		application.SetEnabled(true)
	}

	trayUI := tray.New()

	application.OnTransition(func(stream store.StreamKind, index int, label string, confidence float64) {
		switch stream {
		case store.StreamEmotion:
			trayUI.SetLastEmotion(label)
		case store.StreamGesture:
			trayUI.SetLastGesture(label)
		}
	})

	trayUI.OnToggle(func(enabled bool) {
		application.SetEnabled(enabled)
	})
	trayUI.OnSettings(func() {
		log.Printf("Dashboard available at http://localhost%s", serverAddr)
	})
	trayUI.OnQuit(func() {
		application.Stop()
	})

	trayUI.Run()
}

// findWebDir searches for the dashboard's static files in common
// locations. Returns the first existing directory or empty string.
func findWebDir(dataDir string) string {
	candidates := []string{"web", "../web", "../../web", filepath.Join(dataDir, "web")}
	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			if absPath, err := filepath.Abs(p); err == nil {
				return absPath
			}
			return p
		}
	}
	return ""
}
