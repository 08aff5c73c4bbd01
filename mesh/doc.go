// Package mesh tessellates a bicubic surface into a triangle mesh.
//
// What
//
//	Build samples a surface.Surface on a lattice refined Resolution-fold
//	inside every grid cell and emits shared vertices plus counterclockwise
//	triangles (viewed from +Z). Resolution 1 reproduces the grid nodes;
//	higher values expose the curvature between them.
//
// Why
//
//	Visualization and collision pipelines consume triangle soup, not
//	polynomial patches. Sampling cell by cell keeps the evaluation hint
//	warm, so tessellation runs at cached-tier cost per vertex.
//
// Complexity
//
//	O(nx·ny·r²) vertices for an nx×ny grid at resolution r.
//
// Errors
//
//	ErrNilSurface     — Build received a nil surface.
//	ErrBadResolution  — Resolution is not a positive finite number.
package mesh
