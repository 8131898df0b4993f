package bmp256

import (
	"encoding/binary"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"

	"mandelbmp/palette"
)

/*
typedef struct tagBITMAPFILEHEADER {
  WORD  bfType;
  DWORD bfSize;
  WORD  bfReserved1;
  WORD  bfReserved2;
  DWORD bfOffBits;
} BITMAPFILEHEADER;

typedef struct tagBITMAPINFOHEADER {
  DWORD biSize;
  LONG  biWidth;
  LONG  biHeight;
  WORD  biPlanes;
  WORD  biBitCount;
  DWORD biCompression;
  DWORD biSizeImage;
  LONG  biXPelsPerMeter;
  LONG  biYPelsPerMeter;
  DWORD biClrUsed;
  DWORD biClrImportant;
} BITMAPINFOHEADER;
*/

const (
	fileHeaderLen = 14
	infoHeaderLen = 40
	paletteLen    = palette.Size * 4

	// PixelOffset is the file offset of the first pixel row.
	PixelOffset = fileHeaderLen + infoHeaderLen + paletteLen
)

// FileSize returns the encoded length of p in bytes.
func (p *Image) FileSize() int {
	return PixelOffset + p.Stride*p.Height()
}

// header returns the file header, the info header and the color table.
// biSizeImage is left at zero, which is valid for uncompressed bitmaps.
func (p *Image) header() []byte {
	b := make([]byte, 0, PixelOffset)

	b = append(b, 'B', 'M')
	b = binary.LittleEndian.AppendUint32(b, uint32(p.FileSize()))
	b = binary.LittleEndian.AppendUint16(b, 0)
	b = binary.LittleEndian.AppendUint16(b, 0)
	b = binary.LittleEndian.AppendUint32(b, PixelOffset)

	b = binary.LittleEndian.AppendUint32(b, infoHeaderLen)
	b = binary.LittleEndian.AppendUint32(b, uint32(int32(p.Width())))
	b = binary.LittleEndian.AppendUint32(b, uint32(int32(p.Height())))
	b = binary.LittleEndian.AppendUint16(b, 1) // planes
	b = binary.LittleEndian.AppendUint16(b, 8) // bits per pixel
	b = binary.LittleEndian.AppendUint32(b, 0) // BI_RGB
	b = binary.LittleEndian.AppendUint32(b, 0) // biSizeImage
	b = binary.LittleEndian.AppendUint32(b, 0) // biXPelsPerMeter
	b = binary.LittleEndian.AppendUint32(b, 0) // biYPelsPerMeter
	b = binary.LittleEndian.AppendUint32(b, palette.Size)
	b = binary.LittleEndian.AppendUint32(b, palette.Size)

	for i := range palette.Size {
		var c color.RGBA
		if i < len(p.Palette) {
			c = color.RGBAModel.Convert(p.Palette[i]).(color.RGBA)
		}
		b = append(b, c.B, c.G, c.R, 0x00)
	}

	return b
}

// WriteTo encodes p to w. Rows are written in buffer order, top row
// first, without the vertical flip readers usually expect.
func (p *Image) WriteTo(w io.Writer) (int64, error) {
	var count int64

	n, err := writeBytes(w, p.header())
	count += n
	if err != nil {
		return count, fmt.Errorf("could not write bitmap header: %w", err)
	}

	n, err = writeBytes(w, p.Pix[:p.Stride*p.Height()])
	count += n
	if err != nil {
		return count, fmt.Errorf("could not write pixel data: %w", err)
	}

	return count, nil
}

// Save writes p to path. The bitmap is written to path+".tmp" and
// renamed over path once complete. As with os.Create, the file mode is
// 0666 before the umask.
func (p *Image) Save(path string) (err error) {
	tmpName := path + ".tmp"
	outFile, err := os.OpenFile(tmpName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
	if err != nil {
		return fmt.Errorf("could not create temporary destination for %q: %w", path, err)
	}
	defer func() {
		if err == nil {
			return
		}
		if rmErr := os.Remove(tmpName); rmErr != nil {
			slog.Error("could not remove temporary file", "name", tmpName, "error", rmErr)
		}
	}()

	if _, err = p.WriteTo(outFile); err != nil {
		_ = outFile.Close()
		return fmt.Errorf("could not encode %q: %w", path, err)
	}

	if err = outFile.Sync(); err != nil {
		_ = outFile.Close()
		return fmt.Errorf("could not flush temporary destination for %q: %w", path, err)
	}

	if err = outFile.Close(); err != nil {
		return fmt.Errorf("could not close temporary destination for %q: %w", path, err)
	}

	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("could not rename destination file %q: %w", path, err)
	}

	return nil
}

func writeBytes(w io.Writer, b []byte) (int64, error) {
	n, err := w.Write(b)
	if err != nil {
		return int64(n), err
	} else if n != len(b) {
		return int64(n), fmt.Errorf("wrote only %d/%d bytes: %w", n, len(b), io.ErrShortWrite)
	}

	return int64(n), nil
}
