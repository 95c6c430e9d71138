package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mah11/pcapgen"
	"github.com/mah11/pcapgen/internal/config"
)

type CliRequest struct {
	verbose    bool
	quiet      bool
	plain      bool
	configPath string
}

const defaultConfigFileName = `config.ini`

func parseFlags(args []string, errOut io.Writer) (request *CliRequest, exitCode int) {
	flags := flag.NewFlagSet("", flag.ExitOnError)
	flags.Usage = func() {
		flags.Output().Write([]byte(`
Usage:
   pcapgen [-v|-q] [-plain] [-config FILE] [-h]

 Interactive generator of pcap fixture files and ledger records for an
 ingestion pipeline under test. Every action is selected by a single
 keystroke, the key map is printed on startup.

`))
		flags.PrintDefaults()
		flags.Output().Write([]byte("\n"))
	}

	request = &CliRequest{}
	var generalHelpRequested bool
	flags.BoolVar(&request.verbose, "v", false, "Output more details on what is done (verbose mode)")
	flags.BoolVar(&request.quiet, "q", false, "Output as little as possible, i.e. only requested information (quiet mode)")
	flags.BoolVar(&request.plain, "plain", false, "Do not use ANSI escape sequences in terminal output")
	flags.StringVar(&request.configPath, "config", defaultConfigFileName, "Path of the INI configuration file")
	flags.BoolVar(&generalHelpRequested, "h", false, "Display usage help")

	var err error
	defer func() {
		if err != nil {
			fmt.Fprintf(errOut, "%s\nUsage help: pcapgen -h\n", err)
			exitCode = 2
			request = nil
		}
	}()

	flags.Parse(args) //exits on error

	if generalHelpRequested {
		flags.Usage()
		exitCode = 0
		request = nil
		return
	}
	if flags.NArg() > 0 {
		err = errors.New("command accepts no arguments, only flags")
		return
	}
	if request.verbose && request.quiet {
		err = errors.New("quiet mode and verbose mode are mutually exclusive")
		return
	}
	return
}

func (rq *CliRequest) execute() error {
	cfg, err := config.Load(rq.configPath)
	if err != nil {
		return err
	}
	if err := cfg.EnsureDirs(); err != nil {
		return err
	}

	setup := pcapgen.CreateConfig{AllowEscapes: !rq.plain}
	if rq.verbose {
		setup.Verbosity = pcapgen.VerboseMode
	}
	if rq.quiet {
		setup.Verbosity = pcapgen.QuietMode
	}

	session := pcapgen.New(cfg, setup)
	return session.Run(terminalKeys{})
}

func main() {
	rq, rc := parseFlags(os.Args[1:], os.Stderr)
	if rc != 0 || rq == nil {
		os.Exit(rc)
	}
	if err := rq.execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(0)
}
