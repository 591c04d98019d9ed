// Package spatial provides the primitive geometric types the world model is
// built from: integer pixels, axis-aligned rectangles, large sparse pixel
// sets, and polygons that rasterize via the crossing-number rule.
//
// The world model, the stages and the view read or write these types (csp
// reaches pixel sets only through its own narrow interface); none of these
// types know about zones, biomes, or the CSP engine.
package spatial
