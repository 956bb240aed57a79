// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gregorian computes with dates of the proleptic Gregorian calendar.
//
// Dates are given and printed as YYYY-MM-DD. Negative years need a leading
// "--" to separate them from flags:
//
//	gregorian info 2024-02-29
//	gregorian add --unit=months --round=prev 2024-01-31 1
//	gregorian between -- -0044-03-15 0001-01-01
//	gregorian check dates.yaml
package main

import (
	"context"
	"io"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
)

const commands = `name: gregorian
summary: compute with dates of the proleptic Gregorian calendar
commands:
  - name: info
    summary: print the weekday, day of year and day counts of dates
    arguments:
      - <date>
      - ...
  - name: add
    summary: add days, months or years to a date
    arguments:
      - <date>
      - <n>
  - name: between
    summary: print the number of days from one date to another
    arguments:
      - <from>
      - <to>
  - name: unix
    summary: print the date of a unix timestamp
    arguments:
      - <seconds>
  - name: today
    summary: print the current date
  - name: check
    summary: validate a YAML list of dates
    arguments:
      - <file.yaml>
`

// stdout receives the results of all commands.
var stdout io.Writer = os.Stdout

func newCommandSet() *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(commands)
	cmdSet.Set("info").MustRunnerAndFlags(withLogging(info),
		subcmd.MustRegisteredFlagSet(&infoFlags{}))
	cmdSet.Set("add").MustRunnerAndFlags(withLogging(add),
		subcmd.MustRegisteredFlagSet(&addFlags{}))
	cmdSet.Set("between").MustRunnerAndFlags(withLogging(between),
		subcmd.MustRegisteredFlagSet(&betweenFlags{}))
	cmdSet.Set("unix").MustRunnerAndFlags(withLogging(unix),
		subcmd.MustRegisteredFlagSet(&unixFlags{}))
	cmdSet.Set("today").MustRunnerAndFlags(withLogging(today),
		subcmd.MustRegisteredFlagSet(&todayFlags{}))
	cmdSet.Set("check").MustRunnerAndFlags(withLogging(check),
		subcmd.MustRegisteredFlagSet(&checkFlags{}))
	return cmdSet
}

func main() {
	subcmd.Dispatch(context.Background(), newCommandSet())
}

// leveled is implemented by all flag structs.
type leveled interface {
	logLevel() int
}

// withLogging installs a logger in the context of fn, at the level given by
// the --log-level flag of the command.
func withLogging(fn subcmd.Runner) subcmd.Runner {
	return func(ctx context.Context, values any, args []string) error {
		cfg := cmdutil.LoggingConfig{Format: "text"}
		if l, ok := values.(leveled); ok {
			cfg.Level = l.logLevel()
		}
		logger, err := cfg.NewLogger()
		if err != nil {
			return err
		}
		defer logger.Close()
		ctx = ctxlog.Context(ctx, logger.Logger)
		ctxlog.Logger(ctx).Debug("running", "args", args)
		return fn(ctx, values, args)
	}
}
