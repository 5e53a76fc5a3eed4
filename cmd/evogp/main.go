package main

import (
	"flag"
	"log"
	"os"

	"github.com/evolab/evogp/cpu"
	"github.com/evolab/evogp/evo"
)

func main() {
	var config string
	var script string
	var checkpoint string
	var trace int
	var verbose bool

	flag.StringVar(&config, "c", "", ".toml run configuration")
	flag.StringVar(&script, "f", "", ".star fitness script")
	flag.StringVar(&checkpoint, "k", "", "checkpoint file to resume and save")
	flag.IntVar(&trace, "t", 0, "trace the best organism for N steps")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	cfg := evo.DefaultConfig()
	if len(config) != 0 {
		var err error
		cfg, err = evo.LoadConfig(config)
		if err != nil {
			log.Fatalf("%v: %v", config, err)
		}
	}
	if len(checkpoint) != 0 {
		cfg.Checkpoint = checkpoint
	}

	var fitness evo.Fitness = evo.TargetFitness{Target: cfg.Target}
	if len(script) != 0 {
		sf, err := evo.LoadScriptFitness(script)
		if err != nil {
			log.Fatalf("%v: %v", script, err)
		}
		fitness = sf
	}

	pop := evo.NewPopulation(cfg, cpu.DefaultLibrary(), fitness)
	pop.Verbose = verbose

	if len(cfg.Checkpoint) != 0 {
		if err := pop.LoadCheckpoint(cfg.Checkpoint); err == nil {
			log.Printf("resumed generation %v from %v", pop.Gen, cfg.Checkpoint)
		}
	}

	best := pop.Run()
	log.Printf("generation %v best fitness %v", pop.Gen, best.Fitness)

	if len(cfg.Checkpoint) != 0 {
		if err := pop.SaveCheckpoint(cfg.Checkpoint); err != nil {
			log.Fatalf("%v: %v", cfg.Checkpoint, err)
		}
	}

	cp := cpu.New(pop.Lib())
	cp.SetGenome(best.Genome)
	cp.PrintGenome(os.Stdout)

	if trace > 0 {
		cp.ResetHardware()
		for id, value := range cfg.Inputs {
			cp.SetInput(id, value)
		}
		cp.Verbose = verbose
		cp.Trace(trace, os.Stderr)
	}
}
