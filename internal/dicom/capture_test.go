package dicom

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
)

func TestWriteSecondaryCapture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image_data.dcm")
	samples := make([]byte, 32*16)
	for i := range samples {
		samples[i] = byte(i)
	}

	opts := CaptureOptions{Width: 32, Height: 16, Seed: 42, Now: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	if err := WriteSecondaryCapture(path, samples, opts); err != nil {
		t.Fatalf("WriteSecondaryCapture returned error: %v", err)
	}

	ds, err := dicom.ParseFile(path, nil)
	if err != nil {
		t.Fatalf("Failed to parse DICOM file: %v", err)
	}

	rowsElem, err := ds.FindElementByTag(tag.Rows)
	if err != nil {
		t.Fatal("Rows not found")
	}
	if rows := dicom.MustGetInts(rowsElem.Value); rows[0] != 16 {
		t.Errorf("Rows = %d, want 16", rows[0])
	}

	colsElem, err := ds.FindElementByTag(tag.Columns)
	if err != nil {
		t.Fatal("Columns not found")
	}
	if cols := dicom.MustGetInts(colsElem.Value); cols[0] != 32 {
		t.Errorf("Columns = %d, want 32", cols[0])
	}

	sopElem, err := ds.FindElementByTag(tag.SOPClassUID)
	if err != nil {
		t.Fatal("SOPClassUID not found")
	}
	if got := dicom.MustGetStrings(sopElem.Value)[0]; got != secondaryCaptureSOPClassUID {
		t.Errorf("SOPClassUID = %s, want %s", got, secondaryCaptureSOPClassUID)
	}

	if _, err := ds.FindElementByTag(tag.PixelData); err != nil {
		t.Error("PixelData not found")
	}
}

func TestWriteSecondaryCapture_DeterministicUIDs(t *testing.T) {
	dir := t.TempDir()
	samples := make([]byte, 4)
	opts := CaptureOptions{Width: 2, Height: 2, Seed: 7, Overwrite: true}

	uidOf := func(path string) string {
		t.Helper()
		if err := WriteSecondaryCapture(path, samples, opts); err != nil {
			t.Fatal(err)
		}
		ds, err := dicom.ParseFile(path, nil)
		if err != nil {
			t.Fatal(err)
		}
		elem, err := ds.FindElementByTag(tag.SOPInstanceUID)
		if err != nil {
			t.Fatal("SOPInstanceUID not found")
		}
		return dicom.MustGetStrings(elem.Value)[0]
	}

	a := uidOf(filepath.Join(dir, "same.dcm"))
	b := uidOf(filepath.Join(dir, "same.dcm"))
	if a != b {
		t.Errorf("same name and seed produced different UIDs: %s vs %s", a, b)
	}

	opts.Seed = 8
	if c := uidOf(filepath.Join(dir, "same.dcm")); c == a {
		t.Error("different seeds produced the same UID")
	}
	if !strings.HasPrefix(a, "2.25.") {
		t.Errorf("UID %q should use the 2.25 root", a)
	}
}

func TestWriteSecondaryCapture_InvalidInputs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.dcm")
	if err := WriteSecondaryCapture(path, []byte{1, 2, 3}, CaptureOptions{Width: 2, Height: 2}); err == nil {
		t.Error("expected error for sample count mismatch")
	}
	if err := WriteSecondaryCapture(path, nil, CaptureOptions{}); err == nil {
		t.Error("expected error for zero dimensions")
	}
}

func TestWriteSecondaryCapture_KeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image_data.dcm")
	if err := os.WriteFile(path, []byte("keep"), 0644); err != nil {
		t.Fatal(err)
	}

	err := WriteSecondaryCapture(path, make([]byte, 4), CaptureOptions{Width: 2, Height: 2, Seed: 1})
	if !errors.Is(err, fs.ErrExist) {
		t.Errorf("error = %v, want fs.ErrExist", err)
	}
	if data, _ := os.ReadFile(path); string(data) != "keep" {
		t.Errorf("existing DICOM file was replaced: %d bytes", len(data))
	}
}
