// Command beacon-demo wires the shipped reference adapters into a hub and
// emits sample analytics traffic. It demonstrates the composition root for
// a beacon-based application: build adapters, call StartTracking once, then
// track from anywhere.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/dkelly-dev/beacon"
	"github.com/dkelly-dev/beacon/adapters"
)

// Demo event and property kinds.
const (
	kindSignup   beacon.Kind = "signup"
	kindCheckout beacon.Kind = "checkout"
	kindPlan     beacon.Kind = "plan"
	kindPlanSet  beacon.Kind = "plan_set"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath  string
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "beacon-demo",
		Short: "Emit sample analytics traffic through a beacon hub",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			return run(cfg, metricsAddr)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve /metrics on this address (e.g. :9090)")
	return cmd
}

func run(cfg Config, metricsAddr string) error {
	hub := beacon.New(beacon.WithLogLevel(beacon.ParseLogLevel(cfg.Logging)))

	var list []beacon.Adapter
	if cfg.Adapters.Console {
		list = append(list, adapters.NewConsole(os.Stdout))
	}
	if cfg.Adapters.Prometheus {
		reg := prometheus.NewRegistry()
		list = append(list, adapters.NewPrometheus(reg))
		if metricsAddr != "" {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			go func() {
				if err := http.ListenAndServe(metricsAddr, mux); err != nil {
					fmt.Fprintf(os.Stderr, "metrics server: %v\n", err)
				}
			}()
		}
	}

	// Track before configuring to exercise the postponement queue.
	if err := hub.Track(beacon.NewEventWithMeta(kindSignup,
		beacon.Name{Object: "Account", Action: "Created"},
		map[string]any{"service": cfg.Service, "plan": "free"},
	)); err != nil {
		return err
	}

	if err := hub.StartTracking(list...); err != nil {
		return err
	}

	if err := hub.Track(beacon.NewEventWithMeta(kindCheckout,
		beacon.Name{Object: "Cart", Action: "Purchased", Label: "3 items"},
		map[string]any{"total": 42.50},
	)); err != nil {
		return err
	}

	// A property update that fires a derived event.
	plan := beacon.NewProperty(kindPlan, "plan", beacon.StringValue("pro"),
		beacon.NewEvent(kindPlanSet, beacon.Name{Object: "Account", Action: "Plan Changed", Label: "pro"}))
	if err := hub.Update(plan); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := hub.Drain(ctx); err != nil {
		return err
	}

	stats := hub.Stats()
	fmt.Printf("tracked=%d updated=%d delivered_events=%d delivered_properties=%d\n",
		stats.EventsTracked, stats.PropertiesUpdated,
		stats.EventsDelivered, stats.PropertiesDelivered)

	return hub.Close(ctx)
}
