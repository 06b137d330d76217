// Package bmptest builds bitmap containers for tests and benchmarks.
package bmptest

import "encoding/binary"

const (
	fileHeaderSize = 14
	infoHeaderSize = 40
)

// New returns an uncompressed 24-bit bitmap of the given size with a
// deterministic gradient in its pixel array.
func New(width, height int) []byte {
	stride := (width*3 + 3) &^ 3
	offset := fileHeaderSize + infoHeaderSize
	buf := make([]byte, offset+stride*height)

	putFileHeader(buf, uint32(offset))
	info := buf[fileHeaderSize:]
	binary.LittleEndian.PutUint32(info[0:4], infoHeaderSize)
	binary.LittleEndian.PutUint32(info[4:8], uint32(width))
	binary.LittleEndian.PutUint32(info[8:12], uint32(height))
	binary.LittleEndian.PutUint16(info[12:14], 1)  // planes
	binary.LittleEndian.PutUint16(info[14:16], 24) // bits per pixel
	binary.LittleEndian.PutUint32(info[20:24], uint32(stride*height))
	binary.LittleEndian.PutUint32(info[24:28], 2835) // 72 dpi
	binary.LittleEndian.PutUint32(info[28:32], 2835)

	for y := range height {
		row := buf[offset+y*stride:]
		for x := range width {
			row[x*3+0] = byte(x*255/max(width, 1) + y)
			row[x*3+1] = byte(y*255/max(height, 1) + x)
			row[x*3+2] = byte((x + y) * 7)
		}
	}
	return buf
}

// Raw returns a container of headerLen header bytes followed by pixels zeroed
// pixel bytes, whose header points the pixel array at offset.
// Only the signature, file size and pixel offset fields are filled in.
func Raw(headerLen int, offset uint32, pixels int) []byte {
	buf := make([]byte, max(headerLen, fileHeaderSize)+pixels)
	putFileHeader(buf, offset)
	return buf
}

func putFileHeader(buf []byte, offset uint32) {
	buf[0], buf[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(buf[2:6], uint32(len(buf)))
	binary.LittleEndian.PutUint32(buf[10:14], offset)
}
