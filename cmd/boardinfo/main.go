// cmd/boardinfo prints a board record and whether it passes the pin checks.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"onju-go/boards"
	"onju-go/errcode"
	"onju-go/internal/boardcheck"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("boardinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	name := fs.String("board", "", "board name (default: the build's selected board)")
	asJSON := fs.Bool("json", false, "print the record as JSON")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := resolve(*name)
	if err != nil {
		fmt.Fprintln(stderr, "boardinfo:", err)
		return 1
	}

	checkErr := boardcheck.Check(cfg)
	if *asJSON {
		if err := writeJSON(stdout, cfg, checkErr); err != nil {
			fmt.Fprintln(stderr, "boardinfo:", err)
			return 1
		}
	} else {
		writeText(stdout, cfg, checkErr)
	}
	if checkErr != nil {
		return 1
	}
	return 0
}

func resolve(name string) (boards.BoardConfig, error) {
	if name == "" {
		if !boards.HasSelected {
			return boards.BoardConfig{}, &errcode.E{C: errcode.UnknownBoard, Msg: "no board selected in this build; use -board (" + strings.Join(boards.Names(), ", ") + ")"}
		}
		return boards.Selected, nil
	}
	cfg, ok := boards.Lookup(name)
	if !ok {
		return boards.BoardConfig{}, &errcode.E{C: errcode.UnknownBoard, Msg: name}
	}
	return cfg, nil
}

type report struct {
	Board boards.BoardConfig `json:"board"`
	Check string             `json:"check"`
	Error string             `json:"error,omitempty"`
}

func writeJSON(w io.Writer, cfg boards.BoardConfig, checkErr error) error {
	r := report{Board: cfg, Check: string(errcode.Of(checkErr))}
	if checkErr != nil {
		r.Error = checkErr.Error()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func writeText(w io.Writer, cfg boards.BoardConfig, checkErr error) {
	fmt.Fprintf(w, "board      %s (%s)\n", cfg.Name, cfg.Platform.Name)
	fmt.Fprintf(w, "i2s        port %d\n", cfg.AudioBus.Index)
	for _, r := range boardcheck.Roles(cfg) {
		fmt.Fprintf(w, "%-10s GPIO%d\n", r.Role, r.Pin)
	}
	fmt.Fprintf(w, "led count  %d\n", cfg.StatusLED.Count)
	fmt.Fprintf(w, "touch      L=%s C=%s R=%s\n", cfg.Touch.Left, cfg.Touch.Center, cfg.Touch.Right)
	fmt.Fprintf(w, "psram      %t\n", cfg.UsesExternalMemory)
	if checkErr != nil {
		fmt.Fprintf(w, "check      FAIL %v\n", checkErr)
	} else {
		fmt.Fprintln(w, "check      ok")
	}
}
