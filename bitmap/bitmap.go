// Package bitmap writes and reads uncompressed 24-bit BMP files.
package bitmap

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"JuliaSet/misc"
)

// ErrIO wraps every failure to write or read the destination.
var ErrIO = errors.New("bitmap i/o error")

// Bitmap is a decoded BMP file. Pixels holds the scanlines in the order they appear in
// the file, so for a positive height Pixels row 0 is the bottom row of the picture.
type Bitmap struct {
	FileHeader FileHeader
	InfoHeader InfoHeader
	TopDown    bool
	Pixels     Buffer
}

// Encode writes buf as a 24-bit BMP with a positive height. Scanlines are written in
// buffer order, row 0 first, so a viewer that honors the bottom-up convention shows
// buffer row 0 at the bottom.
func Encode(w io.Writer, buf Buffer) error {
	if err := buf.Valid(); err != nil {
		return fmt.Errorf("unable to encode bitmap - %w", err)
	}
	fileHeader, infoHeader := NewHeaders(buf.Width, buf.Height)

	// Create a buffer (to reduce syscalls)
	bw := bufio.NewWriter(w)

	if err := binary.Write(bw, binary.LittleEndian, &fileHeader); err != nil {
		return fmt.Errorf("%w: writing file header - %w", ErrIO, err)
	}
	if err := binary.Write(bw, binary.LittleEndian, &infoHeader); err != nil {
		return fmt.Errorf("%w: writing info header - %w", ErrIO, err)
	}

	scanline := make([]byte, Stride(buf.Width))
	for y := 0; y < buf.Height; y++ {
		row := buf.Pix[y*buf.Width : (y+1)*buf.Width]
		for x, c := range row {
			scanline[x*BytesPerPixel] = c.B
			scanline[x*BytesPerPixel+1] = c.G
			scanline[x*BytesPerPixel+2] = c.R
		}
		// padding bytes stay zero from make
		if _, err := bw.Write(scanline); err != nil {
			return fmt.Errorf("%w: writing scanline %d - %w", ErrIO, y, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: flushing pixel data - %w", ErrIO, err)
	}
	return nil
}

// Save encodes buf and writes it to fileName. The file is written in full or not at all.
func Save(fileName string, buf Buffer) error {
	if err := buf.Valid(); err != nil {
		return fmt.Errorf("unable to encode bitmap - %w", err)
	}
	var encoded bytes.Buffer
	encoded.Grow(FileSize(buf.Width, buf.Height))
	if err := Encode(&encoded, buf); err != nil {
		return err
	}

	bytesWritten, err := misc.WriteFile(fileName, encoded.Bytes())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if bytesWritten != encoded.Len() {
		return fmt.Errorf("%w: short write to %s, %d of %d bytes", ErrIO, fileName, bytesWritten, encoded.Len())
	}
	return nil
}

// Decode reads an uncompressed 24-bit BMP.
func Decode(r io.Reader) (*Bitmap, error) {
	var b Bitmap
	br := bufio.NewReader(r)

	if err := binary.Read(br, binary.LittleEndian, &b.FileHeader); err != nil {
		return nil, fmt.Errorf("%w: reading file header - %w", ErrIO, err)
	}
	if b.FileHeader.Type != [2]byte{'B', 'M'} {
		return nil, errors.New("invalid file: not a bitmap")
	}
	if err := binary.Read(br, binary.LittleEndian, &b.InfoHeader); err != nil {
		return nil, fmt.Errorf("%w: reading info header - %w", ErrIO, err)
	}
	if b.InfoHeader.Size != InfoHeaderSize {
		return nil, fmt.Errorf("unsupported info header size %d", b.InfoHeader.Size)
	}
	// Support only 24bit uncompressed Bitmaps
	if b.InfoHeader.BitCount != BitsPerPixel || b.InfoHeader.Compression != 0 {
		return nil, errors.New("unsupported BMP format: only 24-bit uncompressed is supported")
	}
	if b.FileHeader.OffBits < PixelOffset {
		return nil, fmt.Errorf("pixel data offset %d overlaps the headers", b.FileHeader.OffBits)
	}

	width := int(b.InfoHeader.Width)
	height := int(b.InfoHeader.Height)
	if height < 0 {
		b.TopDown = true
		height = -height
	}
	if width <= 0 || height == 0 {
		return nil, fmt.Errorf("invalid dimensions %d x %d", width, height)
	}

	// Refuse to allocate for pixel data the file cannot hold
	available := int64(b.FileHeader.Size) - int64(b.FileHeader.OffBits)
	if !pixelDataFits(width, height, available) {
		return nil, fmt.Errorf("%w: %d x %d does not fit the %d bytes of pixel data the file declares", ErrTooLarge, width, height, available)
	}
	if !pixelDataFits(width, height, MaxDecodeBytes) {
		return nil, fmt.Errorf("%w: %d x %d exceeds the %d byte decode limit", ErrTooLarge, width, height, MaxDecodeBytes)
	}

	// Skip anything between the headers and the pixel array
	if _, err := br.Discard(int(b.FileHeader.OffBits) - PixelOffset); err != nil {
		return nil, fmt.Errorf("%w: seeking to pixel data - %w", ErrIO, err)
	}

	b.Pixels = NewBuffer(width, height)
	scanline := make([]byte, Stride(width))
	for y := 0; y < height; y++ {
		if _, err := io.ReadFull(br, scanline); err != nil {
			return nil, fmt.Errorf("%w: reading scanline %d - %w", ErrIO, y, err)
		}
		for x := 0; x < width; x++ {
			b.Pixels.SetPixel(x, y, Color{
				B: scanline[x*BytesPerPixel],
				G: scanline[x*BytesPerPixel+1],
				R: scanline[x*BytesPerPixel+2],
			})
		}
	}

	return &b, nil
}

// ReadBitmap opens and decodes fileName.
func ReadBitmap(fileName string) (*Bitmap, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer file.Close()

	return Decode(file)
}

// Picture returns the pixels in top-to-bottom order regardless of how the file stored
// them.
func (b *Bitmap) Picture() Buffer {
	if b.TopDown {
		return b.Pixels
	}
	picture := NewBuffer(b.Pixels.Width, b.Pixels.Height)
	for y := 0; y < b.Pixels.Height; y++ {
		src := b.Pixels.Pix[y*b.Pixels.Width : (y+1)*b.Pixels.Width]
		dst := picture.Pix[(b.Pixels.Height-1-y)*b.Pixels.Width:]
		copy(dst[:b.Pixels.Width], src)
	}
	return picture
}
