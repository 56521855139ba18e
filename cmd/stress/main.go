// Command stress submits workouts against a running server from many
// goroutines and verifies that nothing gets lost.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/myrjola/fitlog/internal/e2etest"
	"github.com/myrjola/fitlog/internal/logging"
	"github.com/myrjola/fitlog/internal/testhelpers"
	"github.com/myrjola/fitlog/internal/workout"
	"golang.org/x/sync/errgroup"
)

const (
	scenarioTimeout         = 10 * time.Second
	maxConcurrentOperations = 20
	numScenarios            = 100
	successRateThreshold    = 95.0
	percentageMultiplier    = 100
	expectedArgsCount       = 2
)

// submitWorkouts logs one strength and one cardio workout and checks the
// responses are well-formed.
func submitWorkouts(ctx context.Context, client *e2etest.Client, i int) error {
	var created workout.Record
	status, err := client.PostJSON(ctx, "/api/workouts/strength", map[string]any{
		"exercise": "bench press",
		"sets":     3 + i%3,
		"reps":     8 + i%5,
	}, &created)
	if err != nil {
		return fmt.Errorf("log strength workout: %w", err)
	}
	if status != http.StatusCreated {
		return fmt.Errorf("log strength workout: status %d", status)
	}
	if created.ID == "" {
		return fmt.Errorf("log strength workout: missing id")
	}

	if status, err = client.PostJSON(ctx, "/api/workouts/cardio", map[string]any{
		"duration": 20 + i%40,
		"speed":    8 + i%4,
	}, &created); err != nil {
		return fmt.Errorf("log cardio workout: %w", err)
	}
	if status != http.StatusCreated {
		return fmt.Errorf("log cardio workout: status %d", status)
	}

	// Reads run concurrently with the writes.
	var history workout.History
	if status, err = client.GetJSON(ctx, "/api/workouts?window=daily", &history); err != nil {
		return fmt.Errorf("get history: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("get history: status %d", status)
	}

	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != expectedArgsCount {
		logger.LogAttrs(ctx, slog.LevelError, "usage: stress <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		start    = time.Now()
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))

	url := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		url = "http://" + hostname
	}
	client := e2etest.NewClient(url)

	if err := client.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready in time", slog.Any("error", err))
		os.Exit(1)
	}

	var successCount, failureCount int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentOperations)
	for i := range numScenarios {
		g.Go(func() error {
			scenarioCtx, cancel := context.WithTimeout(gctx, scenarioTimeout)
			defer cancel()

			if err := submitWorkouts(scenarioCtx, client, i); err != nil {
				atomic.AddInt64(&failureCount, 1)
				logger.LogAttrs(scenarioCtx, slog.LevelWarn, "scenario failed",
					slog.Int("scenario", i), slog.Any("error", err))
				return nil // Keep the other scenarios running.
			}
			atomic.AddInt64(&successCount, 1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "stress test failed", slog.Any("error", err))
		os.Exit(1)
	}

	successRate := float64(successCount) / float64(numScenarios) * percentageMultiplier
	logger.LogAttrs(ctx, slog.LevelInfo, "stress test completed",
		slog.Int64("successful", successCount),
		slog.Int64("failed", failureCount),
		slog.Float64("success_rate", successRate),
		slog.Duration("total_duration", time.Since(start)))

	if successRate < successRateThreshold {
		logger.LogAttrs(ctx, slog.LevelError, "success rate below threshold",
			slog.Float64("threshold", successRateThreshold))
		os.Exit(1)
	}
}
