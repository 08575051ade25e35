package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/agenthands/xlex/pkg/compiler/lexer"
)

const historyFile = ".xlex_history"

func main() {
	if len(os.Args) > 2 {
		usage()
		os.Exit(2)
	}

	var path string
	if len(os.Args) == 2 {
		path = os.Args[1]
	} else {
		name, ok := promptFilename()
		if !ok {
			os.Exit(130)
		}
		path = name
	}

	os.Exit(dump(path))
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: xlex [file.x]")
}

// promptFilename asks for a source file interactively, with prompt history
// kept in the user's home directory.
func promptFilename() (string, bool) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	name, err := ln.Prompt("Enter filename: ")
	if err != nil {
		return "", false
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}

	ln.AppendHistory(name)
	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
	return name, true
}

// dump scans the file and prints one fixed-width row per token.
func dump(path string) int {
	src, err := lexer.NewSource(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "xlex: cannot open %s: %v\n", path, err)
		usage()
		return 1
	}

	s := lexer.NewScanner(src, lexer.NewSymbolTable())
	for {
		tok, ok := s.Next()
		if !ok {
			break
		}
		fmt.Printf("%-12s left: %-7d right: %-7d line: %-7d %s\n",
			tok.Text(), tok.Left, tok.Right, tok.Line, tok.Kind())
	}
	return 0
}
