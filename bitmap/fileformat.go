// BMP-specific structs and sizes

package bitmap

import (
	"errors"
	"math"

	"JuliaSet/misc"
)

// ErrTooLarge is returned for images whose size does not fit the BMP header fields or
// that Decode refuses to allocate.
var ErrTooLarge = errors.New("bitmap too large")

// MaxDecodeBytes caps the pixel data Decode will allocate for.
const MaxDecodeBytes = 1 << 30

// MaxFileSize is the largest file the 32-bit size field can describe.
const MaxFileSize = math.MaxUint32

// pixelDataFits reports whether width x height pixels of 24-bit data fit in limit bytes,
// without overflowing on dimensions read from an untrusted header.
func pixelDataFits(width int, height int, limit int64) bool {
	if limit < 0 {
		return false
	}
	return int64(Stride(width)) <= limit/int64(height)
}

const (
	FileHeaderSize = 14
	InfoHeaderSize = 40
	PixelOffset    = FileHeaderSize + InfoHeaderSize
	BitsPerPixel   = 24
	BytesPerPixel  = BitsPerPixel / 8
)

// FileHeader is the BITMAPFILEHEADER that opens every BMP file.
// https://learn.microsoft.com/en-us/windows/win32/api/wingdi/ns-wingdi-bitmapfileheader
type FileHeader struct {
	Type      [2]byte // The file type: must be "BM".
	Size      uint32  // The size, in bytes, of the bitmap file.
	Reserved1 uint16  // Reserved; must be zero.
	Reserved2 uint16  // Reserved; must be zero.
	OffBits   uint32  // Offset, in bytes, from the start of the file to the pixel data.
}

// InfoHeader is the BITMAPINFOHEADER describing the dimensions and color format.
// https://learn.microsoft.com/en-us/windows/win32/api/wingdi/ns-wingdi-bitmapinfoheader
type InfoHeader struct {
	Size            uint32 // The number of bytes required by the structure.
	Width           int32  // The width of the bitmap, in pixels.
	Height          int32  // The height of the bitmap, in pixels. Positive means bottom-up.
	Planes          uint16 // Always 1.
	BitCount        uint16 // Bits per pixel.
	Compression     uint32 // 0 for uncompressed RGB.
	SizeImage       uint32 // May be 0 for uncompressed bitmaps.
	XPixelsPerM     int32  // Horizontal resolution, in pixels-per-meter.
	YPixelsPerM     int32  // Vertical resolution, in pixels-per-meter.
	ColorsUsed      uint32 // Palette entries actually used.
	ColorsImportant uint32 // Palette entries required for display.
}

// Padding is the number of zero bytes that follow each scanline of a 24-bit image so
// that every scanline occupies a multiple of 4 bytes.
func Padding(width int) int {
	return misc.Padding(width*BytesPerPixel, 4)
}

// Stride is the length of one scanline including padding.
func Stride(width int) int {
	return width*BytesPerPixel + Padding(width)
}

// FileSize is the total length of an encoded 24-bit image.
func FileSize(width int, height int) int {
	return PixelOffset + Stride(width)*height
}

// NewHeaders builds the headers for an uncompressed 24-bit image of the given size.
func NewHeaders(width int, height int) (FileHeader, InfoHeader) {
	fileHeader := FileHeader{
		Type:    [2]byte{'B', 'M'},
		Size:    uint32(FileSize(width, height)),
		OffBits: PixelOffset,
	}
	infoHeader := InfoHeader{
		Size:     InfoHeaderSize,
		Width:    int32(width),
		Height:   int32(height),
		Planes:   1,
		BitCount: BitsPerPixel,
	}
	return fileHeader, infoHeader
}
