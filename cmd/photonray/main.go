// Command photonray renders a YAML scene description with a two-pass
// photon-mapping light transport pipeline (spec §4): a photon pass seeds a
// k-d tree photon map from the scene's area lights, then a camera-ray pass
// estimates outgoing radiance per pixel via density estimation against that
// map, writing the result as a PPM image.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/photonray/photonray"
	"github.com/photonray/photonray/core"
	"github.com/photonray/photonray/imageio"
	"github.com/photonray/photonray/integrator"
	"github.com/photonray/photonray/photon"
	"github.com/photonray/photonray/render"
	"github.com/photonray/photonray/scene"
)

func main() {
	var (
		scenePath = flag.String("scene", "", "path to a YAML scene description (required)")
		output    = flag.String("output", "render.ppm", "output PPM file")
		verbose   = flag.Bool("v", false, "enable info-level logging")
	)
	flag.Parse()

	if *scenePath == "" {
		log.Fatalf("photonray: -scene is required")
	}

	if *verbose {
		photonray.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}
	logger := photonray.Logger()

	s, err := scene.LoadFile(*scenePath)
	if err != nil {
		log.Fatalf("photonray: loading scene: %v", err)
	}

	cfg := s.Config
	start := time.Now()

	tracer := photon.NewTracer(s.World, cfg.MaxDepth)
	samplerFactory := render.DefaultSamplerFactory(cfg.Sampler, cfg.Seed)
	makeSampler := func(workerID int) core.Sampler {
		return samplerFactory(workerID, 1)
	}

	photons, err := tracer.TraceAll(context.Background(), s.Lights, cfg.MaxPhotons, makeSampler)
	if err != nil {
		log.Fatalf("photonray: photon pass: %v", err)
	}
	logger.Info("photon pass complete", "photons", len(photons), "elapsed", time.Since(start))

	photonMap := photon.Build(photons)

	it := integrator.NewPathIntegrator(s.World, photonMap, cfg.MaxDepth, cfg.MaxEstimate)

	renderStart := time.Now()
	opts := render.Options{
		Width:           cfg.ImageWidth,
		Height:          cfg.ImageHeight,
		SamplesPerPixel: cfg.SamplesPerPixel,
		Workers:         cfg.Workers,
		NewSampler:      render.DefaultSamplerFactory(cfg.Sampler, cfg.Seed+1),
	}
	fb := render.Render(it, s.Camera, opts)
	logger.Info("render pass complete", "elapsed", time.Since(renderStart))

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("photonray: creating output file: %v", err)
	}
	defer f.Close()

	if err := imageio.WritePPM(f, fb); err != nil {
		log.Fatalf("photonray: writing PPM: %v", err)
	}

	log.Printf("photonray: wrote %s (%dx%d) in %v", *output, cfg.ImageWidth, cfg.ImageHeight, time.Since(start))
}
