package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/docopt/docopt-go"
	"golang.org/x/term"

	"github.com/npillmayer/itrans"
	"github.com/npillmayer/itrans/golden"
)

// set via linker flags
var version = ""

func main() {
	usage := `itrans.
Usage:
	itrans repl [--conf <filename>]
	itrans translate [--conf <filename>] [--breakdown] <text>...
	itrans check [--conf <filename>] [--breakdown] <golden-file>
	itrans -h | --help
	itrans --version
Options:
	--conf <filename>  Configuration file to use [default: itrans.yaml].
	--breakdown        List the code points of the output.
	-h --help          Show this screen.
	--version          Show version.`

	arguments, _ := docopt.ParseArgs(usage, nil, "itrans "+version)

	config, err := LoadConfig(arguments["--conf"].(string))
	if err != nil {
		log.Fatal("Config file did not load successfully: ", err.Error())
	}
	breakdown := config.Breakdown || arguments["--breakdown"] == true
	setupTracing(config.TraceLevel, os.Stderr)

	backend, err := itrans.ParseBackend(config.Backend)
	if err != nil {
		log.Fatal(err)
	}
	tr, err := itrans.New(backend)
	if err != nil {
		log.Fatal(err)
	}

	if arguments["repl"].(bool) {
		interactive := term.IsTerminal(int(os.Stdin.Fd()))
		if err := repl(os.Stdin, os.Stdout, tr, config, interactive); err != nil {
			log.Fatal(err)
		}
	} else if arguments["translate"].(bool) {
		result := tr.Translate(strings.Join(arguments["<text>"].([]string), " "))
		fmt.Println(result)
		if breakdown {
			if err := golden.WriteBreakdown(os.Stdout, result); err != nil {
				log.Fatal(err)
			}
		}
	} else if arguments["check"].(bool) {
		filename := arguments["<golden-file>"].(string)
		f, err := os.Open(filename)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		rep, err := check(os.Stdout, tr, f, breakdown)
		if err != nil {
			log.Fatalf("%s: %v", filename, err)
		}
		if rep.Failed > 0 {
			f.Close()
			os.Exit(1)
		}
	}
}
