// Command nbinfo prints the geometry of neighborhood shapes.
//
// Usage:
//
//	nbinfo [flags] [shape-name ...]
//
// Without arguments it prints info for all known shapes.
//
// Examples:
//
//	nbinfo diamond
//	nbinfo -size 7,5 elliptic
//	nbinfo -size 5 -mask diamond
//	nbinfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-ndfilter/neighborhood"
)

var shapes = []string{"rectangular", "elliptic", "diamond"}

func main() {
	sizeFlag := flag.String("size", "5,5", "comma-separated per-dimension diameters")
	procDim := flag.Int("procdim", 0, "processing dimension (the axis runs extend along)")
	mask := flag.Bool("mask", false, "print an ASCII rendering of 2D neighborhoods")
	list := flag.Bool("list", false, "list available shape names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: nbinfo [flags] [shape-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the run-length geometry of neighborhood shapes.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *list {
		for _, s := range shapes {
			fmt.Println(s)
		}
		return
	}

	size, err := parseSize(*sizeFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nbinfo: %v\n", err)
		os.Exit(1)
	}

	names := flag.Args()
	if len(names) == 0 {
		names = shapes
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SHAPE\tBOUNDING BOX\tORIGIN\tPIXELS\tRUNS")
	for _, name := range names {
		shape, err := neighborhood.ParseShape(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "nbinfo: %v\n", err)
			os.Exit(1)
		}
		table, err := neighborhood.NewTable(shape, size, *procDim)
		if err != nil {
			fmt.Fprintf(os.Stderr, "nbinfo: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n",
			shape, formatInts(table.Sizes()), formatInts(table.Origin()),
			table.NumberOfPixels(), len(table.Runs()))
	}
	w.Flush()

	if *mask && len(size) == 2 {
		for _, name := range names {
			shape, _ := neighborhood.ParseShape(name)
			table, err := neighborhood.NewTable(shape, size, *procDim)
			if err != nil {
				continue
			}
			fmt.Printf("\n%s:\n", shape)
			printMask(table)
		}
	}
}

func parseSize(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func formatInts(v []int) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, "x")
}

func printMask(table *neighborhood.Table) {
	mask, err := table.Mask()
	if err != nil {
		fmt.Fprintf(os.Stderr, "nbinfo: %v\n", err)
		return
	}
	origin := table.Origin()
	for y := 0; y < mask.Size(1); y++ {
		var sb strings.Builder
		for x := 0; x < mask.Size(0); x++ {
			switch {
			case x == origin[0] && y == origin[1] && mask.At(x, y):
				sb.WriteString("o ")
			case mask.At(x, y):
				sb.WriteString("x ")
			default:
				sb.WriteString(". ")
			}
		}
		fmt.Println(sb.String())
	}
}
