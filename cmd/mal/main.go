package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/peterh/liner"

	"github.com/xiam/mal"
	"github.com/xiam/mal/config"
	"github.com/xiam/mal/eval"
	"github.com/xiam/mal/repl"
)

var (
	configFile = flag.String("config", "", "path to a YAML config file")
	debug      = flag.Bool("debug", false, "trace evaluation to stderr")
	prompt     = flag.String("prompt", "", "prompt shown before each line")
)

// linePrompter adapts a liner session: lines go to history and Ctrl-C only
// discards the current line.
type linePrompter struct {
	state *liner.State
}

func (lp linePrompter) Prompt(p string) (string, error) {
	line, err := lp.state.Prompt(p)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if line != "" {
		lp.state.AppendHistory(line)
	}
	return line, nil
}

func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			return nil, err
		}
	}
	if *debug {
		cfg.Debug = true
	}
	if *prompt != "" {
		cfg.Prompt = *prompt
	}
	return cfg, nil
}

func runScript(path string, it *mal.Interpreter) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return repl.Run(repl.NewLineReader(f, nil), os.Stdout, it, "")
}

func runInteractive(cfg *config.Config, it *mal.Interpreter) error {
	state := liner.NewLiner()
	defer state.Close()

	state.SetCtrlCAborts(true)

	if cfg.History != "" {
		if f, err := os.Open(cfg.History); err == nil {
			if _, err := state.ReadHistory(f); err != nil {
				log.Printf("history: %v", err)
			}
			f.Close()
		}
		defer func() {
			f, err := os.Create(cfg.History)
			if err != nil {
				log.Printf("history: %v", err)
				return
			}
			defer f.Close()
			if _, err := state.WriteHistory(f); err != nil {
				log.Printf("history: %v", err)
			}
		}()
	}

	return repl.Run(linePrompter{state}, os.Stdout, it, cfg.Prompt)
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [script]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal("config: ", err)
	}

	if cfg.Debug {
		eval.SetLogger(log.New(os.Stderr, "mal: ", log.Lmicroseconds))
	}

	it := mal.New()

	if flag.NArg() > 0 {
		if err := runScript(flag.Arg(0), it); err != nil {
			log.Fatal("script: ", err)
		}
		return
	}

	if err := runInteractive(cfg, it); err != nil {
		log.Fatal("repl: ", err)
	}
}
