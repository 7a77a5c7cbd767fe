// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/ezrec/scalar/emulator"
	"github.com/ezrec/scalar/program"
)

func main() {
	var config string
	var compile string
	var output string
	var verbose bool
	var list bool

	flag.StringVar(&config, "config", "", ".toml configuration file")
	flag.StringVar(&compile, "c", "-", "Register script to run")
	flag.StringVar(&output, "o", "", "Print output (overrides configuration)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&list, "l", false, "List the assembled program, do not execute")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	conf := DefaultConfig()
	if len(config) != 0 {
		var err error
		conf, err = LoadConfig(config)
		if err != nil {
			log.Fatalf("%v", err)
		}
	}
	if verbose {
		conf.Verbose = true
	}
	if len(output) != 0 {
		conf.Output = output
	}

	boot, endian, err := conf.Boot()
	if err != nil {
		log.Fatalf("%v: %v", config, err)
	}

	emu := emulator.NewEmulator()
	emu.Verbose = conf.Verbose

	var inf io.Reader = os.Stdin
	if compile != "-" {
		file, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer file.Close()
		inf = file
	}

	asm := &program.Assembler{Verbose: conf.Verbose}
	for key, value := range emu.Defines() {
		asm.Predefine(key, value)
	}
	for key, value := range conf.Define {
		asm.Predefine(key, value)
	}

	prog, err := asm.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	if conf.Output == "-" {
		emu.Output = os.Stdout
	} else {
		ouf, err := os.Create(conf.Output)
		if err != nil {
			log.Fatalf("%v: %v", conf.Output, err)
		}
		defer ouf.Close()
		emu.Output = ouf
	}

	if list {
		_, err = io.WriteString(emu.Output, prog.String())
		if err != nil {
			log.Fatalf("%v: %v", conf.Output, err)
		}
		return
	}

	emu.Program = prog
	err = emu.Reset(boot, endian)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	err = emu.Run()
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}
}
