// Command ghsmst reads a weighted undirected graph and prints its
// minimum spanning tree, computed by running one GHS actor per vertex.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/ghsmst/ghsmst/ghsio"
	"github.com/ghsmst/ghsmst/mstcheck"
	"github.com/ghsmst/ghsmst/supervisor"
)

var (
	appName = "ghsmst"
	appSha  = "populated-at-link-time"
	logger  *logrus.Entry
)

func main() {
	host, _ := os.Hostname()
	rootLogger := logrus.New()
	logger = rootLogger.WithFields(logrus.Fields{
		"app":  appName,
		"sha":  appSha,
		"host": host,
	})

	if err := makeApp().Run(os.Args); err != nil {
		logger.WithField("err", err).Error("shutting down due to error")
		_ = os.Stderr.Sync()
		os.Exit(1)
	}
}

func makeApp() *cli.App {
	app := cli.NewApp()
	app.Name = appName
	app.Version = appSha
	app.Usage = "compute a minimum spanning tree via distributed vertex actors"
	app.ArgsUsage = "<input-file>"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verify",
			Usage: "cross-check the GHS result against an independent Kruskal computation",
		},
		cli.StringFlag{
			Name:  "log-level",
			Value: "info",
			Usage: "logging verbosity: panic, fatal, error, warn, info, debug, trace",
		},
	}
	app.Action = runMain
	return app
}

func runMain(c *cli.Context) error {
	level, err := logrus.ParseLevel(c.String("log-level"))
	if err != nil {
		return fmt.Errorf("ghsmst: %w", err)
	}
	logger.Logger.SetLevel(level)

	if c.NArg() != 1 {
		return fmt.Errorf("ghsmst: expected exactly one input file argument")
	}
	path := c.Args().Get(0)

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("ghsmst: opening %q: %w", path, err)
	}
	defer f.Close()

	view, err := ghsio.Parse(f)
	if err != nil {
		return fmt.Errorf("ghsmst: parsing %q: %w", path, err)
	}

	if err := ghsio.CheckConnected(view); err != nil {
		return fmt.Errorf("ghsmst: %w", err)
	}

	sup := supervisor.New(view, logger)
	edges, err := sup.Run()
	if err != nil {
		return fmt.Errorf("ghsmst: %w", err)
	}

	if c.Bool("verify") {
		_, refWeight, err := mstcheck.Kruskal(view)
		if err != nil {
			return fmt.Errorf("ghsmst: verify: %w", err)
		}
		var gotWeight int64
		for _, e := range edges {
			gotWeight += e.Weight
		}
		if gotWeight != refWeight {
			return fmt.Errorf("ghsmst: verify: GHS total weight %d does not match reference %d", gotWeight, refWeight)
		}
		logger.WithField("total_weight", gotWeight).Info("verified against reference Kruskal computation")
	}

	return ghsio.Print(os.Stdout, edges)
}
