package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/itrans/golden"
)

const banner = `============================================================
ITRANS to Devanagari Interactive Translator
============================================================
Type ITRANS text and press Enter to see Devanagari output
Type %s to stop
============================================================

`

// repl reads lines from in until an exit command or end of input. The banner
// and prompt are only written for interactive sessions.
func repl(in io.Reader, out io.Writer, tr golden.Translator, conf *Config, interactive bool) error {
	if interactive {
		fmt.Fprintf(out, banner, quoteList(conf.ExitCommands))
	}
	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(out, conf.Prompt)
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if conf.isExitCommand(line) {
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}
		if line == "" {
			continue
		}
		result := tr.Translate(line)
		fmt.Fprintf(out, "Devanagari: %s\n", result)
		if conf.Breakdown {
			if err := golden.WriteBreakdown(out, result); err != nil {
				return err
			}
		}
		fmt.Fprintln(out)
	}
}

func quoteList(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = "'" + w + "'"
	}
	return strings.Join(quoted, " or ")
}
