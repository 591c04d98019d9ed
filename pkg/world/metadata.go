package world

// NoID marks an unset metadata reference.
const NoID = -1

// CellMeta is the per-cell back-reference record: stable ids into the
// World's zone, biome, and structure registries (a zone id is its index in
// World.Zones; biome and structure ids resolve through World.Biome and
// World.Structure) rather than held as direct pointers.
type CellMeta struct {
	ZoneID      int
	BiomeID     int
	StructureID int
}

// perCellMetadata is a flat row-major grid of CellMeta, one per world cell.
type perCellMetadata struct {
	width, height int
	cells         []CellMeta
}

func newPerCellMetadata(width, height int) *perCellMetadata {
	cells := make([]CellMeta, width*height)
	for i := range cells {
		cells[i] = CellMeta{ZoneID: NoID, BiomeID: NoID, StructureID: NoID}
	}
	return &perCellMetadata{width: width, height: height, cells: cells}
}

func (m *perCellMetadata) index(x, y int) (int, bool) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0, false
	}
	return y*m.width + x, true
}

// At returns the metadata for (x,y), or the zero CellMeta (all NoID) if out
// of bounds.
func (m *perCellMetadata) At(x, y int) CellMeta {
	i, ok := m.index(x, y)
	if !ok {
		return CellMeta{ZoneID: NoID, BiomeID: NoID, StructureID: NoID}
	}
	return m.cells[i]
}

// SetZone records the zone id covering (x,y); a no-op out of bounds.
func (m *perCellMetadata) SetZone(x, y, id int) {
	if i, ok := m.index(x, y); ok {
		m.cells[i].ZoneID = id
	}
}

// SetBiome records the biome id covering (x,y); a no-op out of bounds.
func (m *perCellMetadata) SetBiome(x, y, id int) {
	if i, ok := m.index(x, y); ok {
		m.cells[i].BiomeID = id
	}
}

// SetStructure records the primary structure id covering (x,y); a no-op out
// of bounds.
func (m *perCellMetadata) SetStructure(x, y, id int) {
	if i, ok := m.index(x, y); ok {
		m.cells[i].StructureID = id
	}
}

// clearFrom resets every cell's field back to NoID wherever it references an
// id at or beyond minID, used by World.Clear to invalidate ids produced at
// or after a discarded phase.
func (m *perCellMetadata) clearFrom(field string, minID int) {
	for i := range m.cells {
		switch field {
		case "biome":
			if m.cells[i].BiomeID >= minID {
				m.cells[i].BiomeID = NoID
			}
		case "structure":
			if m.cells[i].StructureID >= minID {
				m.cells[i].StructureID = NoID
			}
		}
	}
}
