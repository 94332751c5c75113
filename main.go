package main

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"subnetree-icons/export"
	"subnetree-icons/palette"
)

var Version = "1.0.0"

// Command line flags
var (
	outDir   = flag.String("out", ".", "Directory to write generated assets into")
	logLevel = flag.String("log-level", "info", "Log level: debug, info, warn, error")
)

func main() {
	flag.Parse()

	setupLogger()
	setLogLevel(*logLevel)

	log.Info().
		Str("version", Version).
		Str("out", *outDir).
		Msg("Generating SubNetree icon files")

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("Failed to create output directory")
	}

	var manifest export.Manifest

	// ICO containers for the Windows executables
	icos := []struct {
		file string
		pal  palette.Palette
	}{
		{"subnetree.ico", palette.Dark},
		{"subnetree-light.ico", palette.Light},
	}
	for _, job := range icos {
		path := filepath.Join(*outDir, job.file)
		if err := export.WriteICO(path, job.pal); err != nil {
			log.Fatal().Err(err).Msg("Failed to write ICO")
		}
		manifest.Assets = append(manifest.Assets, export.Asset{
			File:   job.file,
			Format: "ico",
			Theme:  job.pal.Name,
			Sizes:  export.ICOSizes,
		})
	}

	// Standalone PNG sets
	pngs := []struct {
		prefix string
		pal    palette.Palette
	}{
		{"icon-dark", palette.Dark},
		{"icon-light", palette.Light},
	}
	for _, job := range pngs {
		paths, err := export.WritePNGSet(*outDir, job.prefix, job.pal)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to write PNG set")
		}
		for i, p := range paths {
			manifest.Assets = append(manifest.Assets, export.Asset{
				File:   filepath.Base(p),
				Format: "png",
				Theme:  job.pal.Name,
				Sizes:  []int{export.PNGSizes[i]},
			})
		}
	}

	manifest.GeneratedAt = time.Now().UTC()
	if err := export.WriteManifest(filepath.Join(*outDir, "manifest.yaml"), manifest); err != nil {
		log.Fatal().Err(err).Msg("Failed to write manifest")
	}

	log.Info().Int("assets", len(manifest.Assets)).Msg("Done")
}

func setupLogger() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "2006-01-02 15:04:05.000",
	})
}

func setLogLevel(level string) {
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
