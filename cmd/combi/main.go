// Command combi is a small REPL/CLI around the arithmetic example
// grammar: it either evaluates a single expression given with -c, or
// drops into an interactive line-edited prompt.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/chzyer/readline"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/Crikka/combi"
	"github.com/Crikka/combi/example"
)

// fileConfig mirrors the optional combi.toml: a cap on left-recursive
// growth passes, and a verbosity switch.
type fileConfig struct {
	MaxPasses int  `toml:"max_passes"`
	Verbose   bool `toml:"verbose"`
}

func loadFileConfig(path string) fileConfig {
	var cfg fileConfig
	if path == "" {
		return cfg
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		logrus.WithError(err).WithField("path", path).Warn("could not read config file, using defaults")
	}
	return cfg
}

func main() {
	command := flag.StringP("command", "c", "", "evaluate a single expression and exit")
	configPath := flag.StringP("config", "f", "", "path to a combi.toml config file")
	verbose := flag.BoolP("verbose", "v", false, "trace left-recursive growth passes")
	flag.Parse()

	cfg := loadFileConfig(*configPath)
	if *verbose {
		cfg.Verbose = true
	}

	logger := logrus.New()
	if cfg.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}

	expr, term, factor := example.Arithmetic()
	for _, f := range []*combi.Fragment[int64]{expr, term, factor} {
		f.WithLogger(logger)
		if cfg.MaxPasses > 0 {
			f.WithConfig(combi.Config{MaxPasses: cfg.MaxPasses})
		}
	}
	if err := combi.Validate(expr, term, factor); err != nil {
		logger.WithError(err).Panic("invalid grammar")
	}

	if *command != "" {
		evalAndPrint(expr, *command, os.Stdout)
		return
	}

	runREPL(expr, logger)
}

func evalAndPrint(expr *combi.Fragment[int64], line string, out io.Writer) {
	value, ok, err := expr.SafeMatch(combi.View(line))
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}
	if !ok {
		fmt.Fprintln(out, "no match")
		return
	}
	fmt.Fprintln(out, value)
}

func runREPL(expr *combi.Fragment[int64], logger *logrus.Logger) {
	rl, err := readline.New("combi> ")
	if err != nil {
		logger.WithError(err).Panic("could not start line editor")
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			return
		}
		if err != nil {
			logger.WithError(err).Warn("read error")
			continue
		}
		if line == "" {
			continue
		}
		evalAndPrint(expr, line, os.Stdout)
	}
}
