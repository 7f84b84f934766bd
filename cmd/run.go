package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aurumline/insights/config"
	"github.com/aurumline/insights/internal/cache"
	"github.com/aurumline/insights/internal/entity"
	"github.com/aurumline/insights/internal/insights"
	"github.com/aurumline/insights/internal/inventory"
	"github.com/aurumline/insights/internal/timerange"
	"github.com/aurumline/insights/log"
)

// snapshot is the JSON export the sync layer produces for offline reporting.
type snapshot struct {
	Revision string              `json:"revision"`
	Orders   []entity.Order      `json:"orders"`
	Products []entity.Product    `json:"products"`
	Restocks []entity.RestockLog `json:"restocks"`
}

var reportCache = cache.NewReportCache()

func setup(cmd *cobra.Command) (*config.Config, *snapshot, error) {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot load a config %v", err.Error())
	}
	slog.SetDefault(log.New(cmd.ErrOrStderr(), cfg.Logger))

	if cfg.Snapshot == "" {
		return nil, nil, fmt.Errorf("no snapshot file configured")
	}
	raw, err := os.ReadFile(cfg.Snapshot)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot read snapshot %q: %w", cfg.Snapshot, err)
	}
	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, nil, fmt.Errorf("cannot decode snapshot %q: %w", cfg.Snapshot, err)
	}
	slog.Default().Info("snapshot loaded",
		slog.String("revision", snap.Revision),
		slog.Int("orders", len(snap.Orders)),
		slog.Int("products", len(snap.Products)),
		slog.Int("restocks", len(snap.Restocks)),
	)
	return cfg, &snap, nil
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, snap, err := setup(cmd)
	if err != nil {
		return err
	}
	rng, err := timerange.ParseRange(cfg.Engine.Range)
	if err != nil {
		return err
	}

	m, ok := reportCache.Get(rng, snap.Revision)
	if !ok {
		m, err = insights.BuildReport(snap.Orders, rng, time.Now())
		if err != nil {
			return err
		}
		reportCache.Put(rng, snap.Revision, m)
	}
	if m.SkippedNoDate > 0 {
		slog.Default().Warn("orders skipped from windowed views",
			slog.Int("count", m.SkippedNoDate))
	}
	return printJSON(cmd, m)
}

func runInventory(cmd *cobra.Command, args []string) error {
	cfg, snap, err := setup(cmd)
	if err != nil {
		return err
	}
	rng, err := timerange.ParseRange(cfg.Engine.Range)
	if err != nil {
		return err
	}
	now := time.Now()
	windows, err := timerange.Resolve(rng, now)
	if err != nil {
		return err
	}

	out := struct {
		Window                entity.TimeRange              `json:"window"`
		Overview              entity.StockOverview          `json:"overview"`
		BestSellers           []entity.BestSeller           `json:"best_sellers"`
		SlowMovers            []entity.SlowMover            `json:"slow_movers"`
		DiscontinueCandidates []entity.DiscontinueCandidate `json:"discontinue_candidates"`
		RestockFrequency      []entity.RestockStat          `json:"restock_frequency"`
		NewDesigns            []entity.NewDesignStat        `json:"new_designs,omitempty"`
	}{
		Window:   windows.Current,
		Overview: inventory.StockOverview(snap.Products, cfg.Engine.LowStockPolicy()),
		BestSellers: inventory.BestSellers(
			snap.Products, snap.Orders, windows.Current, cfg.Engine.TopLimit),
		SlowMovers: inventory.SlowMovers(
			snap.Products, snap.Orders, windows.Current, cfg.Engine.TopLimit),
		DiscontinueCandidates: inventory.DiscontinueCandidates(
			snap.Products, snap.Orders, snap.Restocks, windows.Current,
			cfg.Engine.DiscontinueStockThreshold, now),
		RestockFrequency: inventory.RestockFrequency(
			snap.Products, snap.Restocks, windows.Current, inventory.SortByRestockCount),
	}
	if cfg.Engine.NewDesignYear > 0 {
		out.NewDesigns = inventory.NewDesignStats(
			snap.Products, snap.Orders, snap.Restocks,
			cfg.Engine.NewDesignYear, inventory.NewDesignByRestocks)
	}
	return printJSON(cmd, out)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
