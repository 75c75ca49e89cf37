package snapshot

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/ArnautVasile/asana-go/internal/cmd/base"
	"github.com/ArnautVasile/asana-go/internal/snapshot"
	"github.com/ArnautVasile/asana-go/internal/write"
)

const (
	shortInterval = 30 * time.Second
	longInterval  = 5 * time.Minute
)

type Command struct {
	*base.Command

	flagShort    bool
	flagLong     bool
	flagInterval time.Duration
	flagOut      string
	flagFormat   string
}

func (c *Command) Synopsis() string {
	return "Write users, projects, teams and tags of every workspace to disk"
}

func (c *Command) Help() string {
	return `Usage: asana snapshot [options]

  Writes one directory per workspace under the output directory. Without an
  interval flag it runs once; otherwise it keeps running until interrupted.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("snapshot", flag.ContinueOnError))

	f.BoolVar(&c.flagShort, "short-interval", false, "Run every 30 seconds.")
	f.BoolVar(&c.flagLong, "long-interval", false, "Run every 5 minutes.")
	f.DurationVar(&c.flagInterval, "interval", 0, "Run at a custom interval.")
	f.StringVar(&c.flagOut, "out", "", "[OUT_DIR] Output directory.")
	f.StringVar(&c.flagFormat, "format", "", "[OUT_FORMAT] json or yaml.")

	return f
}

func (c *Command) interval() (time.Duration, error) {
	n := 0
	interval := c.flagInterval
	if c.flagInterval > 0 {
		n++
	}
	if c.flagShort {
		n++
		interval = shortInterval
	}
	if c.flagLong {
		n++
		interval = longInterval
	}
	if n > 1 {
		return 0, errors.New("choose at most one of -short-interval, -long-interval or -interval")
	}
	return interval, nil
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	interval, err := c.interval()
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	outDir := c.Config.OutDir
	if c.flagOut != "" {
		outDir = c.flagOut
	}
	format := c.Config.OutFormat
	if c.flagFormat != "" {
		format = c.flagFormat
	}
	w, err := write.New(c.Fs, format)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	client, err := c.Client()
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	ctx, stop := c.Context()
	defer stop()

	s := snapshot.New(client, w, outDir, c.Log.Named("snapshot"))
	err = s.Run(ctx, interval)
	if interval > 0 && errors.Is(err, context.Canceled) {
		c.UI.Info("stopped")
		return 0
	}
	if err != nil {
		c.UI.Error(fmt.Sprintf("snapshot failed: %v", err))
		return 1
	}
	c.UI.Info(fmt.Sprintf("snapshot written to %s", outDir))
	return 0
}
