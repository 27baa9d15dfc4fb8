// Package realgraph implements the Graph G of the data model: a doubly
// linked list of nodes and of half-arcs, each with constant-time add and
// delete, constant-time endpoint query, and constant-time iteration of
// incidences.
//
// An edge is represented as two consecutive half-arcs sharing even/odd
// indices, so that XOR-by-one on a half-arc index gives its twin (the
// opposite half-arc of the same edge). Free slots (deleted nodes/arcs) form
// singly linked free-lists threaded through the same storage, so deletion
// never shrinks the backing slices and reuses space on the next insertion.
//
// This departs structurally from a simpler map-of-maps adjacency list:
// that representation cannot delete an arbitrary edge by identity in O(1)
// without an auxiliary reverse index. Within this module the graph is
// built and read by the ioformats edge-list reader and writers; the
// (co)graphicness tester and the Camion signer do not use it. The ID-based, option-free public surface and the
// fail-fast error idiom follow that simpler design's conventions.
package realgraph
