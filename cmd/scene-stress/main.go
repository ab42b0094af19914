package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/profile"
	"github.com/plus3/cookiedog/scene"
	"github.com/plus3/cookiedog/sprite"
	"github.com/plus3/cookiedog/texture"
)

const (
	fieldHalfWidth = 50
	inputHoldTicks = 30
)

// countingSounds stands in for the speaker.
type countingSounds struct {
	played int64
}

func (c *countingSounds) PlaySoundEffect(string) {
	c.played++
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	cookieCount := flag.Int("cookies", 10000, "The number of cookies scattered over the field.")
	seed := flag.Int64("seed", 1, "Seed for cookie placement and the player's random walk.")
	profileMode := flag.String("profile", "", "Write a cpu or mem profile to the working directory.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		log.Fatalf("Unknown profile mode %q (want cpu or mem)", *profileMode)
	}

	log.Println("Starting scene stress test...")

	rng := rand.New(rand.NewSource(*seed))
	world := newStressWorld(rng, *cookieCount)
	sounds := &countingSounds{}
	loop := scene.NewLoop(world, nil, sounds)

	report := &Report{
		Duration:       *duration,
		Cookies:        *cookieCount,
		GCPauseMetrics: *gcPauseMetrics,
		TickTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var in scene.Input

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			if report.TotalTicks%inputHoldTicks == 0 {
				in = randomInput(rng)
			}

			tickStart := time.Now()
			loop.Tick(in)
			report.TickTime.Samples = append(report.TickTime.Samples, time.Since(tickStart))
			report.TotalTicks++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TickTime.Finalize()
	report.Collected = world.Collected()
	report.SoundsPlayed = sounds.played
	report.Systems = loop.Stats().Systems
	runtime.ReadMemStats(&report.MemStatsEnd)

	loop.Tick(scene.Input{Close: true})
	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

func newStressWorld(rng *rand.Rand, cookies int) *scene.World {
	rec := texture.Record{Handle: 1, AspectRatio: 1}
	world := &scene.World{
		Background: sprite.New(mgl32.Vec3{0, 0, -5}, 2*fieldHalfWidth, rec),
		Player:     sprite.New(mgl32.Vec3{}, 1.5, rec),
		MoveSpeed:  scene.DefaultMoveSpeed,
		EatSound:   "eat.wav",
	}
	for i := 0; i < cookies; i++ {
		pos := mgl32.Vec3{
			(rng.Float32()*2 - 1) * fieldHalfWidth,
			(rng.Float32()*2 - 1) * fieldHalfWidth,
			0,
		}
		world.Collectibles = append(world.Collectibles, sprite.New(pos, 0.5, rec))
	}
	return world
}

func randomInput(rng *rand.Rand) scene.Input {
	return scene.Input{
		Up:    rng.Intn(2) == 0,
		Down:  rng.Intn(3) == 0,
		Left:  rng.Intn(2) == 0,
		Right: rng.Intn(3) == 0,
	}
}
