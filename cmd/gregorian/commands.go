// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"gonih.org/gregorian"
	"gopkg.in/yaml.v3"
)

type infoFlags struct {
	LogLevel int `subcmd:"log-level,0,'logging level: 0=error, 1=warn, 2=info, 3=debug'"`
}

type addFlags struct {
	LogLevel int    `subcmd:"log-level,0,'logging level: 0=error, 1=warn, 2=info, 3=debug'"`
	Unit     string `subcmd:"unit,days,'unit of n: days, months or years'"`
	Round    string `subcmd:"round,none,'how to resolve a day missing from the target month: none, next or prev'"`
}

type betweenFlags struct {
	LogLevel int `subcmd:"log-level,0,'logging level: 0=error, 1=warn, 2=info, 3=debug'"`
}

type unixFlags struct {
	LogLevel int `subcmd:"log-level,0,'logging level: 0=error, 1=warn, 2=info, 3=debug'"`
}

type todayFlags struct {
	LogLevel int    `subcmd:"log-level,0,'logging level: 0=error, 1=warn, 2=info, 3=debug'"`
	UTC      bool   `subcmd:"utc,false,'print the current date in UTC'"`
	Zone     string `subcmd:"zone,,'print the current date in the given IANA time zone'"`
}

type checkFlags struct {
	LogLevel int `subcmd:"log-level,0,'logging level: 0=error, 1=warn, 2=info, 3=debug'"`
}

func (f *infoFlags) logLevel() int    { return f.LogLevel }
func (f *addFlags) logLevel() int     { return f.LogLevel }
func (f *betweenFlags) logLevel() int { return f.LogLevel }
func (f *unixFlags) logLevel() int    { return f.LogLevel }
func (f *todayFlags) logLevel() int   { return f.LogLevel }
func (f *checkFlags) logLevel() int   { return f.LogLevel }

// info prints one line per date. Invalid arguments are reported together,
// after all valid ones have been printed.
func info(ctx context.Context, _ any, args []string) error {
	var errs errors.M
	for _, arg := range args {
		d, err := gregorian.Parse(arg)
		if err != nil {
			ctxlog.Logger(ctx).Debug("skipping invalid date", "arg", arg, "err", err)
			errs.Append(err)
			continue
		}
		year, week := d.ISOWeek()
		fmt.Fprintf(stdout, "%v %v week=%v-W%02d day=%d remaining=%d days=%d unix=%d\n",
			d, d.Weekday(), year, week, d.DayOfYear(), d.DaysRemainingInYear(), d.DaysSinceYearZero(), d.UnixTimestamp())
	}
	return errs.Err()
}

func add(ctx context.Context, values any, args []string) error {
	fv := values.(*addFlags)
	if err := flags.OneOf(fv.Unit).Validate("days", "months", "years"); err != nil {
		return err
	}
	if err := flags.OneOf(fv.Round).Validate("none", "next", "prev"); err != nil {
		return err
	}
	d, err := gregorian.Parse(args[0])
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid count %q: %w", args[1], err)
	}

	var res gregorian.Date
	switch fv.Unit {
	case "days":
		res = d.AddDays(n)
	case "months":
		res, err = d.AddMonths(n)
	case "years":
		res, err = d.AddYears(n)
	}
	if err != nil {
		ctxlog.Logger(ctx).Info("result is not a valid date", "err", err, "round", fv.Round)
		switch fv.Round {
		case "next":
			res = gregorian.OrNextValid(res, err)
		case "prev":
			res = gregorian.OrPrevValid(res, err)
		default:
			return err
		}
	}
	fmt.Fprintln(stdout, res)
	return nil
}

func between(_ context.Context, _ any, args []string) error {
	from, err := gregorian.Parse(args[0])
	if err != nil {
		return err
	}
	to, err := gregorian.Parse(args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, from.DaysUntil(to))
	return nil
}

func unix(_ context.Context, _ any, args []string) error {
	secs, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid unix timestamp %q: %w", args[0], err)
	}
	fmt.Fprintln(stdout, gregorian.FromUnixTimestamp(secs))
	return nil
}

func today(ctx context.Context, values any, _ []string) error {
	fv := values.(*todayFlags)
	switch {
	case fv.Zone != "":
		loc, err := time.LoadLocation(fv.Zone)
		if err != nil {
			return err
		}
		ctxlog.Logger(ctx).Debug("using time zone", "zone", loc)
		fmt.Fprintln(stdout, gregorian.TodayIn(loc))
	case fv.UTC:
		fmt.Fprintln(stdout, gregorian.TodayUTC())
	default:
		fmt.Fprintln(stdout, gregorian.Today())
	}
	return nil
}

// check reads a YAML sequence of dates and prints each valid one. Every
// invalid entry is reported with its line number.
func check(ctx context.Context, _ any, args []string) error {
	file := args[0]
	var nodes []yaml.Node
	if err := cmdutil.ParseYAMLConfigFile(file, &nodes); err != nil {
		return err
	}
	ctx = ctxlog.ContextWith(ctx, "file", file)
	var errs errors.M
	for i := range nodes {
		n := &nodes[i]
		var d gregorian.Date
		if err := n.Decode(&d); err != nil {
			ctxlog.Logger(ctx).Warn("invalid entry", "line", n.Line, "err", err)
			errs.Append(fmt.Errorf("%s:%d: %w", file, n.Line, err))
			continue
		}
		fmt.Fprintln(stdout, d)
	}
	ctxlog.Logger(ctx).Info("checked dates", "total", len(nodes))
	return errs.Err()
}
