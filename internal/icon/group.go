package icon

import (
	"bytes"
	"encoding/binary"
)

// GroupEntry is the RT_GROUP_ICON form of a directory record: the image
// offset is replaced by the resource ID of the matching RT_ICON.
type GroupEntry struct {
	Width      uint8
	Height     uint8
	ColorCount uint8
	Reserved   uint8
	Planes     uint16
	BitCount   uint16
	BytesInRes uint32
	ID         uint16
}

// GroupDirectory builds the RT_GROUP_ICON resource for entries, assuming the
// i-th entry is stored as RT_ICON with ID firstID+i.
func GroupDirectory(entries []Entry, firstID uint16) []byte {
	buf := &bytes.Buffer{}
	// bytes.Buffer writes cannot fail.
	_ = binary.Write(buf, binary.LittleEndian, Dir{Type: typeIcon, Count: uint16(len(entries))})
	for i, e := range entries {
		_ = binary.Write(buf, binary.LittleEndian, GroupEntry{
			Width:      e.Meta.Width,
			Height:     e.Meta.Height,
			ColorCount: e.Meta.ColorCount,
			Planes:     e.Meta.Planes,
			BitCount:   e.Meta.BitCount,
			BytesInRes: uint32(len(e.Data)),
			ID:         firstID + uint16(i),
		})
	}
	return buf.Bytes()
}
