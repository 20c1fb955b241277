package pkggraph

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/vorenkamp/featuregraph/reach"
)

// WriteDOT renders this set as a Graphviz "dot" digraph: one node per
// package (in PackageIDs order) and one edge per link whose endpoints are
// both in the set, in the given direction.
func (s *PackageSet) WriteDOT(w io.Writer, direction reach.Direction) error {
	ids := s.PackageIDs(direction)
	inSet := make(map[PackageID]struct{}, len(ids))
	for _, id := range ids {
		inSet[id] = struct{}{}
	}

	var b strings.Builder
	b.WriteString("digraph packages {\n")
	for _, id := range ids {
		fmt.Fprintf(&b, "\t%q;\n", string(id))
	}

	edges := make([]string, 0)
	for _, l := range s.Links(direction) {
		if _, ok := inSet[l.From]; !ok {
			continue
		}
		if _, ok := inSet[l.To]; !ok {
			continue
		}
		edges = append(edges, fmt.Sprintf("\t%q -> %q [label=%q];\n", string(l.From), string(l.To), l.DepName))
	}
	sort.Strings(edges)
	for _, e := range edges {
		b.WriteString(e)
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}
