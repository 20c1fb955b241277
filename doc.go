// Package root documents this module, which derives and queries the
// feature-dependency graph of a package graph: every (package, feature)
// pair as a node, with edges for feature-to-base membership, a named
// feature's own declared feature dependencies, and dependency-kind-unified
// feature requests across package links.
//
// Everything lives under six subpackages:
//
//	platform/     — the never / always / platform-set predicate attached
//	                to dependency requests
//	resolver/     — the Resolver capability for accepting or rejecting
//	                individual links during a resolve
//	pkggraph/     — immutable package dependency graph: packages, named
//	                features, optional deps, and per-kind dependency links
//	reach/        — the reachability kernel: bitset-backed forward/reverse
//	                traversal, Tarjan SCCs, lazy topological and edge-DFS
//	                iterators, generic over the edge payload type
//	resolve/      — the generic resolved-set wrapper built on reach, shared
//	                by both pkggraph and featuregraph query results
//	featuregraph/ — the derived feature graph itself: construction,
//	                queries, cycle detection, and dependency checks
//
// A Graph is built once from a pkggraph.Graph via featuregraph.New and
// reused; its strongly connected components are computed lazily on first
// query and memoised from then on.
package root
