package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/plus3/scenecore/config"
	"github.com/plus3/scenecore/ecs"
	"go.uber.org/zap"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	componentCount := flag.Int("components", 1000, "The number of components to attach to the entity.")
	configPath := flag.String("config", "", "Optional YAML or TOML config file.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	log, err := config.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting entity stress test",
		zap.Duration("duration", *duration),
		zap.Int("components", *componentCount),
	)

	// 1. Setup entity and scheduler
	entity := ecs.NewEntity(ecs.WithName("stress"), ecs.WithLogger(log))
	attach(entity, *componentCount)
	scheduler := ecs.NewScheduler(entity, cfg.Scheduler, ecs.WithSchedulerLogger(log))

	// 2. Run the frame loop
	report := &Report{
		Duration:       *duration,
		Components:     entity.ComponentCount(),
		Types:          len(entity.CollectStats().TypeBreakdown),
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			scheduler.Once(deltaTime.Seconds())
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))

			lookupStart := time.Now()
			report.Lookups += int64(lookupRound(entity))
			report.LookupTime.Samples = append(report.LookupTime.Samples, time.Since(lookupStart))

			report.TotalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	report.LookupTime.Finalize()
	report.Scheduler = scheduler.GetStats()

	scheduler.Destroy()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Info("simulation finished", zap.Int64("updates", report.TotalUpdates))

	// 3. Generate report to console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatal("failed to generate report", zap.Error(err))
	}
	fmt.Println("--- End of Report ---")
}
