// Command run-movns runs the MOVNS search over an attraction catalog and
// transport matrices, writing the approximation archive to a result CSV
// (spec.md §6).
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"tourplanner/internal/config"
	"tourplanner/internal/csvio"
	"tourplanner/internal/domain"
	"tourplanner/internal/evalcache"
	"tourplanner/internal/evaluator"
	"tourplanner/internal/monitor"
	"tourplanner/internal/movns"
	"tourplanner/internal/oracle"
)

func main() {
	attractionsPath := flag.String("attractions", "", "path to the attractions CSV (required)")
	matricesDir := flag.String("matrices", "", "directory holding the four transport-matrix CSVs")
	mapsAPIKey := flag.String("maps-api-key", "", "Google Maps API key; overrides GOOGLE_MAPS_API_KEY")
	iters := flag.Int("iters", 0, "max iterations override (0 keeps the configured default)")
	maxTime := flag.Float64("time", 0, "max wall-clock seconds override (0 keeps the configured default)")
	out := flag.String("out", "results.csv", "path to write the archive CSV")
	monitorAddr := flag.String("monitor-addr", "", "if set, serve GET /status on this address")
	useRedis := flag.String("redis-addr", "", "if set, memoize evaluations in this Redis instance")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}

	if *attractionsPath == "" {
		log.Fatal("--attractions is required")
	}

	params, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if *iters > 0 {
		params.MaxIterations = *iters
	}
	if *maxTime > 0 {
		params.MaxTimeSeconds = *maxTime
	}

	attractions, err := csvio.LoadAttractions(*attractionsPath)
	if err != nil {
		log.Fatalf("failed to load attractions: %v", err)
	}

	orc, err := buildOracle(*matricesDir, *mapsAPIKey, attractions, params)
	if err != nil {
		log.Fatalf("failed to build transport oracle: %v", err)
	}

	cache := buildCache(*useRedis)

	eval := evaluator.New(params.DailyTimeLimitMinutes)
	engine := movns.New(attractions, orc, eval, params, cache)

	var mon *monitor.Server
	if *monitorAddr != "" {
		mon = monitor.New(*monitorAddr, "movns")
		errc := make(chan error, 1)
		mon.Start(errc)
		log.Printf("status monitor listening on %s", *monitorAddr)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	start := time.Now()
	archive, err := engine.Run(ctx, func(p movns.Progress) {
		if mon != nil {
			mon.Update(p.Iteration, p.ArchiveSize)
		}
	})
	if err != nil {
		log.Fatalf("movns run failed: %v", err)
	}
	log.Printf("movns finished in %s with %d archived solutions", time.Since(start), archive.Len())

	if err := csvio.WriteResults(*out, archive.Items(), attractions); err != nil {
		log.Fatalf("failed to write results: %v", err)
	}

	if mon != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		_ = mon.Shutdown(shutdownCtx)
	}
}

func buildOracle(matricesDir, mapsAPIKey string, attractions []domain.Attraction, params config.Params) (oracle.Oracle, error) {
	if matricesDir != "" {
		matrices, err := csvio.LoadMatrices(csvio.DefaultMatrixPaths(matricesDir), attractions)
		if err != nil {
			return nil, err
		}
		return oracle.NewStatic(matrices, params.WalkingPreferenceMinutes, params.CarCostPerKm)
	}

	key := mapsAPIKey
	if key == "" {
		key = os.Getenv("GOOGLE_MAPS_API_KEY")
	}
	if key == "" {
		log.Fatal("either --matrices or GOOGLE_MAPS_API_KEY (or --maps-api-key) is required")
	}
	return oracle.NewGoogleMaps(key, attractions, params.WalkingPreferenceMinutes, params.CarCostPerKm)
}

func buildCache(redisAddr string) evalcache.Cache {
	if redisAddr == "" {
		return evalcache.NewMemory()
	}
	cache, err := evalcache.NewRedisCache(context.Background(), evalcache.RedisConfig{Addr: redisAddr}, "movns")
	if err != nil {
		log.Printf("warning: redis cache unavailable (%v), falling back to in-memory", err)
		return evalcache.NewMemory()
	}
	return cache
}
