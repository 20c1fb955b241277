// Command featuregraphstat is a small diagnostic tool for manually
// inspecting a package/feature graph. It is not a shipped product
// surface -- just something a human can run to sanity-check a build
// while developing against this module.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/vorenkamp/featuregraph/featuregraph"
	"github.com/vorenkamp/featuregraph/pkggraph"
	"github.com/vorenkamp/featuregraph/platform"
	"github.com/vorenkamp/featuregraph/reach"
)

type stat struct {
	Packages int `json:"packages"`
	Links    int `json:"links"`
	Features int `json:"features"`
	Edges    int `json:"feature_edges"`
	Warnings int `json:"build_warnings"`
}

func main() {
	jsonOut := flag.Bool("json", false, "print as JSON instead of plain text")
	flag.Parse()

	pg := demoPackageGraph()
	fg := featuregraph.New(pg)

	s := stat{
		Packages: pg.PackageCount(),
		Links:    len(pg.ResolveAll().Links(reach.Forward)),
		Features: fg.FeatureCount(),
		Edges:    fg.LinkCount(),
		Warnings: len(fg.Warnings()),
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			fmt.Fprintln(os.Stderr, "featuregraphstat:", err)
			os.Exit(1)
		}
		return
	}

	fmt.Printf("packages:      %d\n", s.Packages)
	fmt.Printf("links:         %d\n", s.Links)
	fmt.Printf("features:      %d\n", s.Features)
	fmt.Printf("feature edges: %d\n", s.Edges)
	fmt.Printf("warnings:      %d\n", s.Warnings)
	for _, w := range fg.Warnings() {
		fmt.Println(" -", w.String())
	}
}

// demoPackageGraph builds a tiny two-package graph so the tool has
// something to report on without requiring a real manifest reader.
func demoPackageGraph() *pkggraph.Graph {
	b := pkggraph.NewBuilder()
	if _, err := b.AddPackage("app"); err != nil {
		panic(err)
	}
	if _, err := b.AddPackage("lib"); err != nil {
		panic(err)
	}
	if err := b.AddNamedFeature("lib", "default", []string{"std"}); err != nil {
		panic(err)
	}
	if err := b.AddNamedFeature("lib", "std", nil); err != nil {
		panic(err)
	}
	always := platform.AlwaysStatus()
	if err := b.AddLink("app", "lib", "lib",
		pkggraph.DependencyReq{Required: pkggraph.SubRequest{BuildIf: always, DefaultFeaturesIf: always}},
		pkggraph.DependencyReq{},
		pkggraph.DependencyReq{},
	); err != nil {
		panic(err)
	}
	return b.Freeze()
}
