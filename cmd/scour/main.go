package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/thatguystone/cog/clog"
	"github.com/thatguystone/scour"
	"github.com/thatguystone/scour/internal/config"
)

// Overridden with -ldflags "-X main.version=1.0.0"
var version = "dev"

const (
	exitOk     = 0
	exitFailed = 1
	exitUsage  = 2
)

type cliConfig struct {
	configs []string
	zip     bool
	pause   bool
	version bool
	root    string
}

type stringsFlag []string

func (s *stringsFlag) String() string     { return strings.Join(*s, ",") }
func (s *stringsFlag) Set(v string) error { *s = append(*s, v); return nil }

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, nil))
}

func parseArgs(args []string, out io.Writer) (cfg cliConfig, err error) {
	fs := flag.NewFlagSet("scour", flag.ContinueOnError)
	fs.SetOutput(out)

	fs.Var((*stringsFlag)(&cfg.configs), "c", "Config file to load (may be repeated)")
	fs.BoolVar(&cfg.zip, "zip", false, "Zip up the tree after cleaning it")
	fs.BoolVar(&cfg.pause, "pause", false, "Wait for ENTER before exiting if anything failed")
	fs.BoolVar(&cfg.version, "version", false, "Print the version and exit")

	fs.Usage = func() {
		name := filepath.Base(os.Args[0])
		fmt.Fprintf(out, "Usage: %s [-c config.yml] [-zip] [-pause] <path> [-zip] [-pause]\n\n", name)
		fs.PrintDefaults()
	}

	err = fs.Parse(args)
	if err != nil || cfg.version {
		return
	}

	rest := fs.Args()
	if len(rest) == 0 {
		err = fmt.Errorf("no folder path was provided")
		return
	}

	cfg.root = rest[0]

	// Switches may also follow the path, in any case
	for _, arg := range rest[1:] {
		switch strings.TrimLeft(strings.ToLower(arg), "-") {
		case "zip":
			cfg.zip = true
		case "pause":
			cfg.pause = true
		default:
			err = fmt.Errorf("unexpected argument after path: %s", arg)
			return
		}
	}

	return
}

func newLog(log *clog.Log) (*clog.Log, error) {
	if log != nil {
		return log, nil
	}

	return clog.New(clog.Config{
		Outputs: map[string]*clog.ConfigOutput{
			"stdout": {
				Which: "stdout",
				Level: clog.Info,
			},
		},
		Modules: map[string]*clog.ConfigModule{
			"": {
				Outputs: []string{"stdout"},
			},
		},
	})
}

func run(args []string, in io.Reader, out, errOut io.Writer, log *clog.Log) int {
	cli, err := parseArgs(args, errOut)
	if err != nil {
		if err != flag.ErrHelp {
			fmt.Fprintf(errOut, "scour: %v\n", err)
		}
		return exitUsage
	}

	if cli.version {
		fmt.Fprintln(out, version)
		return exitOk
	}

	cfg := config.New()
	err = cfg.Load(cli.configs...)
	if err != nil {
		fmt.Fprintf(errOut, "scour: %v\n", err)
		return exitUsage
	}

	pats, err := cfg.Compile()
	if err != nil {
		fmt.Fprintf(errOut, "scour: invalid config: %v\n", err)
		return exitUsage
	}

	log, err = newLog(log)
	if err != nil {
		fmt.Fprintf(errOut, "scour: failed to set up logging: %v\n", err)
		return exitUsage
	}

	res, err := scour.Run(cli.root, pats,
		scour.Zip(cli.zip),
		scour.Progress(out),
		scour.Logger(log.Get("scour")))
	if err != nil {
		fmt.Fprintf(errOut, "scour: %v\n", err)
		return exitUsage
	}

	if res.Archive != "" {
		fmt.Fprintln(out)
	}

	if res.Ok() {
		return exitOk
	}

	fmt.Fprintf(errOut, "scour: %d failure(s)\n", len(res.Failures))

	if cli.pause {
		fmt.Fprintln(out, "Press ENTER to continue...")
		bufio.NewReader(in).ReadString('\n')
	}

	return exitFailed
}
