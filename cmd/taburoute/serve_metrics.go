package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/taburoute/metrics"
)

var serveMetricsAddr string

var serveMetricsCmd = &cobra.Command{
	Use:   "serve-metrics",
	Short: "Serve an empty /metrics endpoint until interrupted, for operators wiring up scraping ahead of a run",
	RunE:  runServeMetrics,
}

func init() {
	serveMetricsCmd.Flags().StringVar(&serveMetricsAddr, "addr", ":9090", "address to listen on")
}

func registerer() *prometheus.Registry {
	return prometheus.NewRegistry()
}

func runServeMetrics(cmd *cobra.Command, args []string) error {
	reg := registerer()
	metrics.NewCollector(reg)
	srv := metrics.Serve(serveMetricsAddr, reg)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	return metrics.Shutdown(srv)
}
