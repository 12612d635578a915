package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ClickerMonkey/flagsgo"
	"golang.org/x/term"
)

// flagcalc loads a flags type definition from a JSON, YAML, or XML document
// and evaluates flag expressions like "Read | Write | 0x40" against it,
// printing the canonical form, the raw bits, and the decomposition. With no
// expression arguments it reads expressions from stdin, prompting when stdin
// is a terminal.

func main() {
	args := os.Args[1:]
	defPath := flagsgo.GetArg("def", "", &args, "--")
	typeName := flagsgo.GetArg("type", "", &args, "--")

	if defPath == "" {
		fmt.Println("usage: flagcalc --def types.yaml [--type Name] [expression ...]")
		os.Exit(1)
	}

	data, err := os.ReadFile(defPath)
	if err != nil {
		panic(err)
	}

	format := strings.TrimPrefix(filepath.Ext(defPath), ".")
	if format == "yml" {
		format = "yaml"
	}
	importer, ok := flagsgo.DefImports[format]
	if !ok {
		panic(fmt.Errorf("unsupported definition format: %s", format))
	}

	typ, err := flagsgo.LoadType[uint64](data, importer)
	if err != nil {
		panic(err)
	}
	flagsgo.Register(typ)

	info := flagsgo.TypeInfo(typ)
	if typeName != "" {
		info = flagsgo.Lookup(typeName)
		if info == nil {
			panic(fmt.Errorf("flags type not found: %s", typeName))
		}
	}

	if len(args) > 0 {
		for _, expr := range args {
			evaluate(info, expr)
		}
		return
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	scanner := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			fmt.Printf("%s> ", info.Name())
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		evaluate(info, line)
	}
}

func evaluate(info flagsgo.TypeInfo, expr string) {
	bits, err := info.ParseBits(expr)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Printf("%s = %#x\n", info.FormatBits(bits), bits)
	for _, component := range info.DecomposeBits(bits) {
		name := component.Name
		if name == "" {
			name = "(leftover)"
		}
		fmt.Printf("  %-16s %#x\n", name, component.Bits)
	}
}
