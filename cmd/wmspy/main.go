// Package main is the entry point for the wmspy trace inspector.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/dshills/winmsg/filter"
	"github.com/dshills/winmsg/pump"
	"github.com/dshills/winmsg/trace"
	"github.com/dshills/winmsg/wm"
	"github.com/dshills/winmsg/wm/kbd"
	"github.com/dshills/winmsg/wm/mouse"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	TracePath  string
	FilterPath string
	JSON       bool
	Live       bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	var flt *filter.Filter
	if opts.FilterPath != "" {
		script, err := os.ReadFile(opts.FilterPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to read filter: %v\n", err)
			return 1
		}
		flt, err = filter.New(string(script))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to load filter: %v\n", err)
			return 1
		}
		defer flt.Close()
	}

	emit := newEmitter(opts)

	if opts.Live {
		return runLive(flt, emit)
	}
	return runTrace(opts, flt, emit)
}

// emitter renders one accepted event to stdout.
type emitter func(wm.Event) error

func newEmitter(opts options) emitter {
	if !opts.JSON && term.IsTerminal(int(os.Stdout.Fd())) {
		return func(ev wm.Event) error {
			_, err := fmt.Println(formatEvent(ev))
			return err
		}
	}
	w := trace.NewWriter(os.Stdout)
	return w.Write
}

func runTrace(opts options, flt *filter.Filter, emit emitter) int {
	in := os.Stdin
	if opts.TracePath != "" && opts.TracePath != "-" {
		f, err := os.Open(opts.TracePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to open trace: %v\n", err)
			return 1
		}
		defer f.Close()
		in = f
	}

	r := trace.NewReader(in)
	for {
		ev, err := r.Next()
		if err == io.EOF {
			return 0
		}
		if err != nil {
			// Malformed lines and rejected payloads are reported but
			// do not stop the run.
			if errors.Is(err, trace.ErrBadRecord) || errors.Is(err, wm.ErrInvalidEnum) {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
				continue
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}

		if ok, err := accept(flt, ev); err != nil {
			fmt.Fprintf(os.Stderr, "Error: filter failed: %v\n", err)
			return 1
		} else if !ok {
			continue
		}

		if err := emit(ev); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}
}

func runLive(flt *filter.Filter, emit emitter) int {
	p := pump.New(func(ev wm.Event) {
		ok, err := accept(flt, ev)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: filter failed: %v\n", err)
			return
		}
		if ok {
			_ = emit(ev)
		}
	}, pump.WithDecodeErrorHandler(func(err error) {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}))

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		_ = p.Stop()
	}()

	if err := p.Run(); err != nil {
		if errors.Is(err, pump.ErrUnsupported) {
			fmt.Fprintf(os.Stderr, "Error: -live requires windows\n")
			return 1
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func accept(flt *filter.Filter, ev wm.Event) (bool, error) {
	if flt == nil {
		return true, nil
	}
	return flt.Accept(ev)
}

// formatEvent renders ev as a fixed-width line for terminals.
func formatEvent(ev wm.Event) string {
	var b strings.Builder

	name := ev.Band.String()
	if ev.Band == wm.BandSystem {
		name = ev.Message.ID().String()
	} else {
		name = fmt.Sprintf("%s+%#06x", name, ev.Raw.Msg)
	}
	fmt.Fprintf(&b, "%-24s w=%#010x l=%#010x", name, uint64(ev.Raw.WParam), uint64(uint32(ev.Raw.LParam)))

	if ev.Band != wm.BandSystem {
		return b.String()
	}

	if k, ok := kbd.FromMessage(ev.Message); ok {
		action := "down"
		if k.Released {
			action = "up"
		}
		fmt.Fprintf(&b, "  key %s vk=%#06x scan=%#04x", action, uint64(k.Code), k.State.ScanCode)
		if k.System {
			b.WriteString(" sys")
		}
		if k.State.Extended {
			b.WriteString(" ext")
		}
	} else if m, ok := mouse.FromMessage(ev.Message); ok {
		fmt.Fprintf(&b, "  %s %s (%d, %d)", m.Button, m.Action, m.Pos.X, m.Pos.Y)
		if m.Button == mouse.ButtonExtended {
			fmt.Fprintf(&b, " #%d", m.XIndex)
		}
	}

	return b.String()
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.TracePath, "file", "", "Trace file to read (default stdin)")
	flag.StringVar(&opts.TracePath, "f", "", "Trace file to read (shorthand)")
	flag.StringVar(&opts.FilterPath, "filter", "", "Lua filter script")
	flag.BoolVar(&opts.JSON, "json", false, "Emit JSON records even on a terminal")
	flag.BoolVar(&opts.Live, "live", false, "Pump the calling thread's message queue (windows only)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "wmspy - window-message trace inspector\n\n")
		fmt.Fprintf(os.Stderr, "Usage: wmspy [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  wmspy -f trace.jsonl              Decode a recorded trace\n")
		fmt.Fprintf(os.Stderr, "  wmspy -f trace.jsonl -json        Emit enriched JSON records\n")
		fmt.Fprintf(os.Stderr, "  wmspy -filter keys.lua < trace    Keep only events the script accepts\n")
		fmt.Fprintf(os.Stderr, "  wmspy -live                       Decode this thread's queue (windows)\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("wmspy %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	return opts
}
