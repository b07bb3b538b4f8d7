// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command hwadd builds an adder network and evaluates it.
//
//	hwadd [-w width] [-s ripple|hierarchical] [-dot] [-mutants] [-n samples] [-v] ["a=..., b=..., cin=..."]
//
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/db47h/hwadd"
	"github.com/db47h/hwadd/hwtest"
	"github.com/db47h/hwadd/mutant"
	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"golang.org/x/term"
)

const (
	exitError    = 1
	exitUsage    = 2
	exitSurvivor = 3
)

var (
	bold  = color.New(color.Bold)
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed)
)

func main() {
	width := flag.Int("w", 8, "adder `width` in bits")
	strat := flag.String("s", "hierarchical", "composition `strategy`: ripple or hierarchical")
	dot := flag.Bool("dot", false, "write the network in Graphviz DOT format")
	mutants := flag.Bool("mutants", false, "run every mutant of the network against the reference adder")
	samples := flag.Int("n", 1000, "number of random samples for -mutants")
	verbose := flag.Bool("v", false, "verbose tracing")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [\"a=<int>, b=<int>, cin=<0|1>\"]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	gtrace.CoreTracer = gologadapter.New()
	if *verbose {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	} else {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	}
	color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))

	if flag.NArg() > 1 || flag.NArg() == 0 && !*dot && !*mutants {
		flag.Usage()
		os.Exit(exitUsage)
	}

	s, err := hwadd.ParseStrategy(*strat)
	if err != nil {
		fatal(err)
	}
	n, err := hwadd.Build(*width, s)
	if err != nil {
		fatal(err)
	}

	if *dot {
		if err = hwadd.WriteDot(os.Stdout, n); err != nil {
			fatal(err)
		}
	}
	if flag.NArg() == 1 {
		if err = add(n, flag.Arg(0)); err != nil {
			fatal(err)
		}
	}
	if *mutants {
		ok, err := runMutants(n, *samples)
		if err != nil {
			fatal(err)
		}
		if !ok {
			os.Exit(exitSurvivor)
		}
	}
}

func add(n hwadd.Network, arg string) error {
	o, err := hwadd.ParseOperands(arg, n.Width())
	if err != nil {
		return err
	}
	r, err := hwadd.Evaluate(n, o.A, o.B, o.Cin)
	if err != nil {
		return err
	}
	cin, cout := 0, 0
	if o.Cin {
		cin = 1
	}
	if r.Cout {
		cout = 1
	}
	bold.Printf("width %d, %d cells, depth %d\n", n.Width(), hwadd.CellCount(n), hwadd.Depth(n))
	fmt.Printf("   a = %s (%s)\n", o.A, o.A.Big())
	fmt.Printf("   b = %s (%s)\n", o.B, o.B.Big())
	fmt.Printf(" cin = %d\n", cin)
	fmt.Printf(" sum = %s (%s)\n", r.Sum, r.Sum.Big())
	fmt.Printf("cout = %d\n", cout)
	green.Printf("%s + %s + %d = %s\n", o.A.Big(), o.B.Big(), cin, r.Big())
	return nil
}

func runMutants(n hwadd.Network, samples int) (bool, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	ss := hwtest.Samples(n.Width(), samples, rng)
	outs, err := mutant.Run(hwtest.Oracle(n.Width()), mutant.All(n), ss)
	if err != nil {
		return false, err
	}
	ok := true
	for _, o := range outs {
		if o.Killed() {
			green.Printf("killed   ")
			fmt.Printf("%-16s %s\n", o.Mutant.Name, o.Counterexample)
			continue
		}
		ok = false
		red.Printf("survived ")
		fmt.Printf("%-16s %s\n", o.Mutant.Name, o.Mutant.Description)
	}
	return ok, nil
}

func fatal(err error) {
	red.Fprintf(os.Stderr, "hwadd: %v\n", err)
	os.Exit(exitError)
}
