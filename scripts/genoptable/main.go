// Command genoptable scans this package's source files for exported
// functions and methods and emits a table of operation name to one-line doc
// summary, exposed via Operations and OperationSummary so a host embedding
// Context can enumerate or describe its surface without reflection.
// optable_test.go checks that Operations is sorted and lists a handful of
// known operations, and that OperationSummary answers for one of them.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

var (
	srcDir  = flag.String("src", "../..", "directory containing the package sources to scan")
	outPath = flag.String("out", "../../zz_generated_optable.go", "path of the generated file")
)

type entry struct {
	name    string
	summary string
}

func main() {
	flag.Parse()

	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// The group's derived context is canceled once Wait returns, so it is not
	// kept: writeFormatted below still needs the timeout context.
	eg, _ := errgroup.WithContext(ctx)

	var generated bytes.Buffer
	eg.Go(func() error {
		entries, err := scan(*srcDir)
		if err != nil {
			return err
		}
		return render(&generated, entries)
	})

	if err := eg.Wait(); err != nil {
		log.Fatalln(err)
	}

	if err := writeFormatted(ctx, *outPath, generated.Bytes()); err != nil {
		log.Fatalln(err)
	}
}

func scan(dir string) ([]entry, error) {
	names, err := filepath.Glob(filepath.Join(dir, "*.go"))
	if err != nil {
		return nil, err
	}

	var entries []entry
	fset := token.NewFileSet()

	for _, name := range names {
		base := filepath.Base(name)
		if isGenerated(base) || isTest(base) {
			continue
		}

		f, err := parser.ParseFile(fset, name, nil, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("parse %v: %w", name, err)
		}

		for _, decl := range f.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Doc == nil || !fn.Name.IsExported() {
				continue
			}

			opName := fn.Name.Name
			if fn.Recv != nil && len(fn.Recv.List) > 0 {
				opName = exprString(fn.Recv.List[0].Type) + "." + opName
			}

			summary := firstLine(fn.Doc.Text())
			if summary == "" {
				continue
			}
			entries = append(entries, entry{name: opName, summary: summary})
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })
	return entries, nil
}

func isGenerated(base string) bool { return len(base) > 3 && base[:3] == "zz_" }
func isTest(base string) bool {
	return len(base) > len("_test.go") && base[len(base)-len("_test.go"):] == "_test.go"
}

func exprString(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.StarExpr:
		return exprString(e.X)
	case *ast.Ident:
		return e.Name
	default:
		return ""
	}
}

func firstLine(doc string) string {
	for i, r := range doc {
		if r == '\n' {
			return doc[:i]
		}
	}
	return doc
}

func render(w io.Writer, entries []entry) error {
	fmt.Fprintln(w, "package mcl")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "// @generated by scripts/genoptable -- do not edit by hand")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "// opTable maps each exported operation to its one-line doc summary. It")
	fmt.Fprintln(w, "// backs Operations and OperationSummary.")
	fmt.Fprintln(w, "var opTable = map[string]string{")
	for _, e := range entries {
		fmt.Fprintf(w, "\t%q: %q,\n", e.name, e.summary)
	}
	fmt.Fprintln(w, "}")
	return nil
}

func writeFormatted(ctx context.Context, path string, src []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	gofmt := exec.CommandContext(ctx, "goimports")
	gofmt.Stdin = bytes.NewReader(src)
	gofmt.Stdout = f
	gofmt.Stderr = os.Stderr
	return gofmt.Run()
}
