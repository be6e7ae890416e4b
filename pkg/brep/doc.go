// Package brep defines the boundary-representation entity graph for Burl.
// A body is a read-only graph of topological entities (lumps, shells,
// faces, loops, coedges, edges, vertices) in the ACIS style, supplied by
// an upstream parser or by the builders in this package.
package brep
