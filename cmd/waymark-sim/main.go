// waymark-sim runs the navigation core against a simulated world: an
// orbiting boss, a static cocoon, and a wandering collectible around a
// slowly turning listener. Useful for tuning cues by ear without a game
// attached.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/quillon/waymark/internal/config"
	"github.com/quillon/waymark/internal/log"
	"github.com/quillon/waymark/pkg/audioout"
	"github.com/quillon/waymark/pkg/monitor"
	"github.com/quillon/waymark/pkg/nav"
	"github.com/quillon/waymark/pkg/speech"
	"github.com/quillon/waymark/pkg/vec"
	"github.com/quillon/waymark/pkg/world"
)

const tickPeriod = 50 * time.Millisecond

func main() {
	backend := flag.String("backend", "auto", "audio backend: auto, oto, mock")
	duration := flag.Duration("duration", 0, "exit after this long (0 = run until Ctrl-C)")
	withMonitor := flag.Bool("monitor", false, "serve the live dashboard")
	flag.Parse()

	log.Init(config.LogLevel())
	logger := log.With("cmd", "waymark-sim")

	tuning := nav.DefaultTuning()
	if path := config.TuningPath(); path != "" {
		var err error
		tuning, err = nav.LoadTuning(path)
		if err != nil {
			logger.Error("tuning load failed", "path", path, "err", err)
			os.Exit(1)
		}
		logger.Info("tuning overrides applied", "path", path)
	}

	registry := world.NewRegistry()
	sim := newSimWorld(registry)

	announcer := speech.NewQueueAnnouncer(func(msg string) {
		fmt.Printf(">> %s\n", msg)
	}, logger)
	defer announcer.Close()

	var mon *monitor.Server
	opts := nav.Options{
		Query:     registry,
		Announcer: announcer,
		Lookup:    demoMessages,
		Tuning:    &tuning,
		Logger:    logger,
	}
	if *withMonitor {
		mon = monitor.NewServer(logger)
		opts.Monitor = mon
		go func() {
			if err := mon.Listen(":" + config.MonitorPort()); err != nil {
				logger.Error("monitor stopped", "err", err)
			}
		}()
	}

	navigator := nav.New(opts)

	sinkCfg := audioout.DefaultConfig()
	sinkCfg.Backend = audioout.Backend(*backend)
	sink, err := audioout.New(sinkCfg, navigator.Renderer(), logger)
	if err != nil {
		// Device failure leaves the subsystem inert: report once, no retry.
		logger.Error("audio unavailable, running silent", "err", err)
		sink = audioout.NewMockSink(sinkCfg, navigator.Renderer(), logger)
	}
	if err := sink.Start(); err != nil {
		logger.Error("sink start failed", "err", err)
		os.Exit(1)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	var deadline <-chan time.Time
	if *duration > 0 {
		deadline = time.After(*duration)
	}

	ticker := time.NewTicker(tickPeriod)
	defer ticker.Stop()
	dt := tickPeriod.Seconds()

	logger.Info("simulation running", "tick_ms", tickPeriod.Milliseconds())
loop:
	for {
		select {
		case <-sigCh:
			break loop
		case <-deadline:
			break loop
		case <-ticker.C:
			sim.step(dt)
			navigator.Tick(sim.listener, sim.forward, dt)
		}
	}

	// Teardown order matters: stop the device before anything that owns
	// generator state goes away.
	if err := sink.Close(); err != nil {
		logger.Warn("sink close", "err", err)
	}
	navigator.Close()
	if mon != nil {
		mon.Shutdown()
	}
	logger.Info("bye")
}

// demoMessages is a stand-in for the game's localization table.
var demoMessages = speech.MapLookup{
	"zone.boss.nearby":           "Boss nearby",
	"zone.boss.closer":           "Boss closing",
	"zone.boss.veryclose":        "Boss very close",
	"zone.cocoon.nearby":         "Cocoon nearby",
	"zone.cocoon.closer":         "Cocoon close",
	"zone.cocoon.veryclose":      "Cocoon right here",
	"zone.collectible.nearby":    "Item nearby",
	"zone.collectible.closer":    "Item close",
	"zone.collectible.veryclose": "Item at your feet",
	"event.grab":                 "Grab incoming",
	"dir.left":                   "on your left",
	"dir.right":                  "on your right",
	"dir.ahead":                  "ahead",
}

// simWorld animates a handful of candidates around the origin.
type simWorld struct {
	registry *world.Registry

	listener vec.Vec3
	forward  vec.Vec3
	heading  float64

	bossID        uuid.UUID
	cocoonID      uuid.UUID
	collectibleID uuid.UUID
	t             float64
}

func newSimWorld(r *world.Registry) *simWorld {
	s := &simWorld{
		registry:      r,
		forward:       vec.Vec3{Z: 1},
		bossID:        uuid.New(),
		cocoonID:      uuid.New(),
		collectibleID: uuid.New(),
	}
	r.Upsert(world.Candidate{
		ID: s.cocoonID, Kind: nav.CategoryCocoon.String(),
		Position: vec.Vec3{X: -12, Z: 20}, Alive: true,
	})
	s.step(0)
	return s
}

func (s *simWorld) step(dt float64) {
	s.t += dt

	// Listener turns slowly in place.
	s.heading += 0.15 * dt
	s.forward = vec.Vec3{X: math.Sin(s.heading), Z: math.Cos(s.heading)}

	// Boss orbits, drifting in and out of range.
	orbit := 30 + 25*math.Sin(s.t*0.08)
	s.registry.Upsert(world.Candidate{
		ID: s.bossID, Kind: nav.CategoryBoss.String(),
		Position: vec.Vec3{
			X: orbit * math.Cos(s.t*0.3),
			Z: orbit * math.Sin(s.t*0.3),
		},
		Alive: true,
	})

	// Collectible wanders on a figure-eight.
	s.registry.Upsert(world.Candidate{
		ID: s.collectibleID, Kind: nav.CategoryCollectible.String(),
		Position: vec.Vec3{
			X: 15 * math.Sin(s.t*0.2),
			Z: 10 * math.Sin(s.t*0.4),
		},
		Alive: true,
	})
}
