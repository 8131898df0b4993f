package palette

import (
	"bytes"
	"encoding/binary"
	"image/color"
	"testing"
)

func TestWriteToLayout(t *testing.T) {
	pal := color.Palette{
		color.RGBA{1, 2, 3, 0xFF},
		color.RGBA{4, 5, 6, 0xFF},
	}

	var buf bytes.Buffer
	n, err := WriteTo(&buf, []color.Palette{pal})
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	want := []byte{'R', 'I', 'F', 'F'}
	want = binary.LittleEndian.AppendUint32(want, 4+8+4+2*4)
	want = append(want, 'P', 'A', 'L', ' ', 'd', 'a', 't', 'a')
	want = binary.LittleEndian.AppendUint32(want, 4+2*4)
	want = append(want, 0x00, 0x03, 0x02, 0x00)
	want = append(want, 1, 2, 3, 0, 4, 5, 6, 0)

	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("encoded = % x\nwant      % x", buf.Bytes(), want)
	}
	if n != int64(len(want)) {
		t.Errorf("WriteTo reported %d bytes, want %d", n, len(want))
	}
}

func TestGradientRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if _, err := WriteTo(&buf, []color.Palette{Gradient()}); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	pals, err := ReadFrom(&buf)
	if err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	if len(pals) != 1 {
		t.Fatalf("read %d palettes, want 1", len(pals))
	}

	grad := Gradient()
	for i, c := range pals[0] {
		if c != grad[i] {
			t.Fatalf("entry %d = %v, want %v", i, c, grad[i])
		}
	}
}

func dataChunk(pal color.Palette) []byte {
	b := []byte{'d', 'a', 't', 'a'}
	b = binary.LittleEndian.AppendUint32(b, uint32(4+len(pal)*4))
	b = binary.LittleEndian.AppendUint16(b, 0x0300)
	b = binary.LittleEndian.AppendUint16(b, uint16(len(pal)))
	for _, c := range pal {
		r, g, bl, _ := c.RGBA()
		b = append(b, byte(r>>8), byte(g>>8), byte(bl>>8), 0)
	}
	return b
}

func chunk(id, listType string, body ...[]byte) []byte {
	content := []byte(listType)
	for _, c := range body {
		content = append(content, c...)
	}
	b := []byte(id)
	b = binary.LittleEndian.AppendUint32(b, uint32(len(content)))
	return append(b, content...)
}

func TestReadFromNestedList(t *testing.T) {
	first := color.Palette{color.RGBA{1, 2, 3, 0xFF}}
	second := color.Palette{color.RGBA{4, 5, 6, 0xFF}, color.RGBA{7, 8, 9, 0xFF}}
	third := color.Palette{color.RGBA{10, 11, 12, 0xFF}}

	tests := []struct {
		name    string
		stream  []byte
		want    []color.Palette
		wantErr bool
	}{
		{
			name:   "list of two palettes",
			stream: chunk("RIFF", "PAL ", chunk("LIST", "PAL ", dataChunk(first), dataChunk(second))),
			want:   []color.Palette{first, second},
		},
		{
			name: "list between data chunks",
			stream: chunk("RIFF", "PAL ",
				dataChunk(first),
				chunk("LIST", "PAL ", dataChunk(second)),
				dataChunk(third)),
			want: []color.Palette{first, second, third},
		},
		{
			name:    "list of other type",
			stream:  chunk("RIFF", "PAL ", chunk("LIST", "INFO", dataChunk(first))),
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pals, err := ReadFrom(bytes.NewReader(tt.stream))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFrom() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			if len(pals) != len(tt.want) {
				t.Fatalf("read %d palettes, want %d", len(pals), len(tt.want))
			}
			for i := range tt.want {
				if len(pals[i]) != len(tt.want[i]) {
					t.Fatalf("palette %d has %d colors, want %d", i, len(pals[i]), len(tt.want[i]))
				}
				for j := range tt.want[i] {
					if pals[i][j] != tt.want[i][j] {
						t.Errorf("palette %d color %d = %v, want %v", i, j, pals[i][j], tt.want[i][j])
					}
				}
			}
		})
	}
}

func TestReadFromRejects(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"not riff", []byte("GIF89a....")},
		{"wrong form", append([]byte("RIFF\x04\x00\x00\x00"), "WAVE"...)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadFrom(bytes.NewReader(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}
