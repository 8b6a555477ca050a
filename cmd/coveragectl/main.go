package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"

	"github.com/coverage-planner/internal/client"
	"github.com/coverage-planner/internal/domain"
	"github.com/coverage-planner/internal/usecase/dto"
)

const usage = `Usage: coveragectl [flags] <command>

Commands:
  simulate       run a full simulation for the request in -f and print the summary
  link-budget    compute the link budget for the request in -f
  technologies   list supported technologies and bands

Flags:
`

func main() {
	server := flag.String("server", envOr("COVERAGE_API_URL", "http://localhost:8080"), "Coverage API base URL")
	file := flag.String("f", "", "JSON request file (- for stdin)")
	timeout := flag.Duration("timeout", 60*time.Second, "request timeout")
	asJSON := flag.Bool("json", false, "print the raw JSON response")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	command := "simulate"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	c := client.NewCoverageClient(*server, *timeout, zap.NewNop())

	var err error
	switch command {
	case "simulate":
		err = runSimulate(ctx, c, *file, *asJSON)
	case "link-budget":
		err = runLinkBudget(ctx, c, *file, *asJSON)
	case "technologies":
		err = runTechnologies(ctx, c, *asJSON)
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "coveragectl: %v\n", err)
		os.Exit(1)
	}
}

func runSimulate(ctx context.Context, c *client.CoverageClient, path string, asJSON bool) error {
	var req dto.SimulateRequest
	if err := readRequest(path, &req); err != nil {
		return err
	}
	req.OmitGrid = true

	resp, err := c.Simulate(ctx, req)
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(resp)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Technology\t%s (%s)\n", resp.TechnologyID, resp.Band)
	fmt.Fprintf(w, "Frequency\t%.0f MHz\n", resp.Link.FrequencyMHz)
	fmt.Fprintf(w, "Available path loss\t%.1f dB\n", resp.LinkBudget.AvailablePathLossDb)
	fmt.Fprintf(w, "Coverage radius\t%.1f m\n", resp.LinkBudget.MaxCoverageRadiusM)
	fmt.Fprintf(w, "Access points\t%d\n", resp.RecommendedAPs)
	printSummary(w, "Horizontal", resp.Horizontal.Summary)
	printSummary(w, "Vertical", resp.Vertical.Summary)
	if resp.Capacity != nil {
		fmt.Fprintf(w, "APs for capacity\t%d (%d users per floor)\n", resp.Capacity.APsForCapacity, resp.Capacity.UsersPerFloor)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "ID\tFLOOR\tX\tY\tZ\tFREQ MHz\tTX dBm")
	for _, ap := range resp.AccessPoints {
		fmt.Fprintf(w, "%s\t%d\t%.2f\t%.2f\t%.2f\t%.0f\t%.1f\n",
			ap.ID, ap.FloorLevel, ap.X, ap.Y, ap.Z, ap.FrequencyMHz, ap.TxPowerDbm)
	}
	return w.Flush()
}

func printSummary(w io.Writer, label string, s domain.HeatmapSummary) {
	fmt.Fprintf(w, "%s coverage\t%.2f%% (min %.1f / mean %.1f / max %.1f dBm)\n",
		label, s.CoveragePercent, s.MinDbm, s.MeanDbm, s.MaxDbm)
}

func runLinkBudget(ctx context.Context, c *client.CoverageClient, path string, asJSON bool) error {
	var req dto.LinkBudgetRequest
	if err := readRequest(path, &req); err != nil {
		return err
	}

	resp, err := c.LinkBudget(ctx, req)
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(resp)
	}

	fmt.Printf("Available path loss: %.2f dB\n", resp.AvailablePathLossDb)
	fmt.Printf("Max coverage radius: %.2f m\n", resp.MaxCoverageRadiusM)
	return nil
}

func runTechnologies(ctx context.Context, c *client.CoverageClient, asJSON bool) error {
	resp, err := c.Technologies(ctx)
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(resp)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tBAND\tFREQ MHz\tTX dBm\tMAX RANGE m")
	for _, t := range resp.Technologies {
		for _, b := range t.Bands {
			fmt.Fprintf(w, "%s\t%s\t%.0f\t%.0f\t%.0f\n", t.ID, b.Band, b.FrequencyMHz, b.TxPowerDbm, b.MaxRangeM)
		}
	}
	return w.Flush()
}

func readRequest(path string, out interface{}) error {
	if path == "" {
		return fmt.Errorf("request file is required (-f)")
	}

	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("failed to read request: %w", err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse request %s: %w", path, err)
	}
	return nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
