package artifact

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jmylchreest/swatch/internal/colour"
)

func patternTable() colour.LookupTable {
	table := make(colour.LookupTable, colour.TableSize)
	for i := range table {
		table[i] = uint8((i >> 12) % 6)
	}
	return table
}

func TestSaveLoadTable(t *testing.T) {
	table := patternTable()
	dir := t.TempDir()

	exts := []string{".lut", ".lut.gz", ".lut.zst"}
	if !testing.Short() {
		exts = append(exts, ".lut.xz")
	}

	for _, ext := range exts {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(dir, "table"+ext)
			if err := SaveTable(path, table); err != nil {
				t.Fatalf("SaveTable() error = %v", err)
			}

			got, err := LoadTable(path)
			if err != nil {
				t.Fatalf("LoadTable() error = %v", err)
			}
			if !bytes.Equal(got, table) {
				t.Error("loaded table differs from saved table")
			}
		})
	}
}

func TestLoadTableWrongLength(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		size int
	}{
		{"empty", 0},
		{"short", colour.TableSize - 1},
		{"long", colour.TableSize + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".lut")
			if err := os.WriteFile(path, make([]byte, tt.size), 0o600); err != nil {
				t.Fatal(err)
			}
			_, err := LoadTable(path)
			if !errors.Is(err, colour.ErrTableLength) {
				t.Errorf("LoadTable() error = %v, want ErrTableLength", err)
			}
		})
	}
}

func TestSaveTableRejectsWrongLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.lut")
	err := SaveTable(path, make(colour.LookupTable, 10))
	if !errors.Is(err, colour.ErrTableLength) {
		t.Errorf("SaveTable() error = %v, want ErrTableLength", err)
	}
}

func TestReadPalette(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
		want    []string
		wantErr bool
	}{
		{
			name:    "plain",
			content: "#FF0000\n#00ff00\n",
			want:    []string{"#FF0000", "#00ff00"},
		},
		{
			name:    "comments and blanks",
			content: "// brand colours\n\n  #112233  \n// end\n#445566",
			want:    []string{"#112233", "#445566"},
		},
		{
			name:    "no colours",
			content: "// nothing here\n\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".txt")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}
			got, err := ReadPalette(path)
			if tt.wantErr {
				if err == nil {
					t.Error("ReadPalette() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadPalette() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ReadPalette() mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, err := ReadPalette(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("ReadPalette() expected error for missing file")
	}
}

// TestCuratedTableFromEnv checks a prebuilt curated table when SWATCH_LUT names one.
func TestCuratedTableFromEnv(t *testing.T) {
	path := os.Getenv("SWATCH_LUT")
	if path == "" {
		t.Skip("SWATCH_LUT not set")
	}

	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable() error = %v", err)
	}
	p, err := colour.CuratedPalette(colour.ColourspaceOkLab)
	if err != nil {
		t.Fatal(err)
	}
	samples := append(colour.ReferenceSamples(p), colour.RandomSamples(5000, 13)...)
	if err := table.Verify(p, samples); err != nil {
		t.Errorf("Verify() error = %v", err)
	}
}
