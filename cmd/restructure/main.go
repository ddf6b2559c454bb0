// Command restructure recovers structured control flow (loops,
// conditionals, sequences) from the functions in one or more LLVM IR
// files, and prints the result as colored pseudocode.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"bitbucket.org/zombiezen/cardcpx/natsort"
	"github.com/llir/llvm/asm"
	"github.com/llir/llvm/ir"
	"github.com/mewkiz/pkg/term"
	"github.com/pkg/errors"

	"github.com/graphism/restructure/cfa"
	"github.com/graphism/restructure/cfg"
	"github.com/graphism/restructure/cfr"
)

// dbg logs debug messages to standard error, with the prefix "restructure:".
var dbg = log.New(os.Stderr, term.RedBold("restructure:")+" ", 0)

var (
	dotFlag   = flag.Bool("dot", false, "dump each function's control flow graph in Graphviz DOT format before reduction")
	debugFlag = flag.Bool("debug", false, "print a per-function header to standard error (cfg and cfa tracing is written regardless)")
)

func main() {
	flag.Parse()
	if !*debugFlag {
		dbg.SetOutput(discard{})
	}
	paths := flag.Args()
	sort.Slice(paths, func(i, j int) bool { return natsort.Less(paths[i], paths[j]) })
	for _, path := range paths {
		if err := restructureFile(path); err != nil {
			log.Fatalf("%+v", err)
		}
	}
}

func restructureFile(path string) error {
	m, err := asm.ParseFile(path)
	if err != nil {
		return errors.Wrapf(err, "unable to parse %q", path)
	}
	for _, fn := range m.Funcs {
		if err := restructureFunc(path, fn); err != nil {
			return err
		}
	}
	return nil
}

func restructureFunc(path string, fn *ir.Func) error {
	dbg.Printf("=== [ %s: %s ] ===", path, fn.Name())
	g := cfg.New(fn)

	if *dotFlag {
		fmt.Println(g.DOT())
	}

	bundle, err := cfa.FindAll(g.Clone())
	if err != nil {
		return errors.Wrapf(err, "unable to reduce %s", fn.Name())
	}
	groups, err := cfr.New(bundle)
	if err != nil {
		return errors.Wrapf(err, "unable to recover statement tree for %s", fn.Name())
	}
	fmt.Printf("%s %s\n%s", term.GreenBold("func"), term.WhiteBold(fn.Name()), groups)
	return nil
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
