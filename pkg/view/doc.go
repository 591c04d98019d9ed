// Package view exposes a read-only projection of a generated World for
// renderers and external tooling: enumerate zones, biomes, and structures,
// and query per-cell metadata, without handing out anything that lets a
// caller mutate generation state. A renderer is an external collaborator,
// never a core dependency — this package is the only surface it depends on.
package view
