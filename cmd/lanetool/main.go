// Command lanetool resolves arena geometry for a given base position and
// prints the portals, the lane routing and the unlock schedule. Debug
// tooling for balancing arena layouts; not part of the game surface.
//
// Usage:
//
//	go run ./cmd/lanetool -base-x 0 -base-z -9 -waves 10
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Patrick74531/minigame-sub000/internal/config"
	"github.com/Patrick74531/minigame-sub000/internal/geom"
	"github.com/Patrick74531/minigame-sub000/internal/lane"
)

func main() {
	var (
		configPath = flag.String("config", "config/gameplay.yaml", "gameplay config path")
		baseX      = flag.Float64("base-x", 0, "base position X")
		baseZ      = flag.Float64("base-z", 0, "base position Z")
		waves      = flag.Int("waves", 10, "number of waves to print in the unlock schedule")
		samples    = flag.Int("samples", 3, "jittered spawn samples to print per lane")
	)
	flag.Parse()

	if err := run(*configPath, *baseX, *baseZ, *waves, *samples); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(configPath string, baseX, baseZ float64, waves, samples int) error {
	cfg, err := config.LoadGameplay(configPath)
	if err != nil {
		return fmt.Errorf("loading gameplay config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	base := geom.Point{X: baseX, Y: baseZ}
	table := lane.NewRoutingTable(base, cfg.Bounds(), cfg.Settings(), nil)

	fmt.Printf("arena: half_width=%.1f half_height=%.1f base=(%.2f, %.2f)\n",
		cfg.HalfWidth, cfg.HalfHeight, base.X, base.Y)

	routing := table.Routing()
	for l := lane.Lane(0); l < lane.Count; l++ {
		portal, _ := routing.PortalFor(l)
		fmt.Printf("%-6s portal[%d] (%7.2f, %7.2f)  dir (%+.3f, %+.3f)  dist %.2f\n",
			l, routing.PortalIndex[l],
			portal.X, portal.Y,
			routing.Direction[l].X, routing.Direction[l].Y,
			base.DistanceTo(portal))
	}

	fmt.Println("\nunlock schedule:")
	for wave := 1; wave <= waves; wave++ {
		lanes := table.ActiveLanes(wave)
		names := make([]string, len(lanes))
		for i, l := range lanes {
			names[i] = l.String()
		}
		fmt.Printf("wave %2d: %d portal(s) active  [%s]\n",
			wave, table.ActivePortalCount(wave), strings.Join(names, " "))
	}

	if samples > 0 {
		fmt.Println("\nspawn samples:")
		for l := lane.Lane(0); l < lane.Count; l++ {
			for i := 0; i < samples; i++ {
				p := table.SampleSpawnPosition(l)
				fmt.Printf("%-6s (%7.2f, %7.2f)\n", l, p.X, p.Y)
			}
		}
	}

	for l := lane.Lane(0); l < lane.Count; l++ {
		focus := table.UnlockFocus(l)
		fmt.Printf("%-6s unlock focus (%.2f, %.2f, %.2f)\n", l, focus.X, focus.Y, focus.Z)
	}

	return nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
