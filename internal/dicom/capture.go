// Package dicom exports sample blocks as DICOM images.
package dicom

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mrsinham/coeforge/internal/util"
	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/frame"
	"github.com/suyashkumar/dicom/pkg/tag"
)

const (
	// Secondary Capture Image Storage
	secondaryCaptureSOPClassUID = "1.2.840.10008.5.1.4.1.1.7"
	explicitVRLittleEndian      = "1.2.840.10008.1.2.1"
	implementationClassUID      = "1.2.826.0.1.3680043.8.498"
)

// CaptureOptions describes the single-frame image written by WriteSecondaryCapture.
type CaptureOptions struct {
	Width  int
	Height int
	Seed   uint64
	// Overwrite replaces an existing file. When false, an existing path
	// fails with an error wrapping fs.ErrExist.
	Overwrite bool
	// Now stamps the content date/time; zero means time.Now().
	Now time.Time
}

func mustNewElement(t tag.Tag, value interface{}) *dicom.Element {
	elem, err := dicom.NewElement(t, value)
	if err != nil {
		panic(fmt.Sprintf("failed to create element %v: %v", t, err))
	}
	return elem
}

// writeDatasetToFile writes a DICOM dataset to a file
func writeDatasetToFile(filename string, ds dicom.Dataset, overwrite bool, opts ...dicom.WriteOption) (err error) {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	f, err := os.OpenFile(filename, flags, 0644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return dicom.Write(f, ds, opts...)
}

// WriteSecondaryCapture stores the sample block as an 8-bit MONOCHROME2
// Secondary Capture image. UIDs are derived from the file name and seed, so
// re-running with the same seed reproduces the same object.
func WriteSecondaryCapture(path string, samples []byte, opts CaptureOptions) error {
	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid dimensions: %dx%d", width, height)
	}
	if len(samples) != width*height {
		return fmt.Errorf("sample count %d does not match dimensions %dx%d", len(samples), width, height)
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	key := fmt.Sprintf("%s_%d", filepath.Base(path), opts.Seed)
	studyUID := util.GenerateDeterministicUID(key + "_study")
	seriesUID := util.GenerateDeterministicUID(key + "_series")
	sopInstanceUID := util.GenerateDeterministicUID(key + "_instance")

	nativeFrame := frame.NewNativeFrame[uint8](8, height, width, width*height, 1)
	copy(nativeFrame.RawData, samples)

	pixelDataInfo := dicom.PixelDataInfo{
		Frames: []*frame.Frame{
			{
				Encapsulated: false,
				NativeData:   nativeFrame,
			},
		},
	}

	elements := []*dicom.Element{
		mustNewElement(tag.TransferSyntaxUID, []string{explicitVRLittleEndian}),
		mustNewElement(tag.MediaStorageSOPClassUID, []string{secondaryCaptureSOPClassUID}),
		mustNewElement(tag.MediaStorageSOPInstanceUID, []string{sopInstanceUID}),
		mustNewElement(tag.ImplementationClassUID, []string{implementationClassUID}),
		mustNewElement(tag.SOPClassUID, []string{secondaryCaptureSOPClassUID}),
		mustNewElement(tag.SOPInstanceUID, []string{sopInstanceUID}),
		mustNewElement(tag.StudyInstanceUID, []string{studyUID}),
		mustNewElement(tag.SeriesInstanceUID, []string{seriesUID}),
		mustNewElement(tag.Modality, []string{"OT"}),
		mustNewElement(tag.ConversionType, []string{"SYN"}),
		mustNewElement(tag.PatientName, []string{"COEFORGE^SAMPLES"}),
		mustNewElement(tag.PatientID, []string{fmt.Sprintf("SEED%d", opts.Seed%1000000)}),
		mustNewElement(tag.StudyID, []string{"1"}),
		mustNewElement(tag.SeriesNumber, []string{"1"}),
		mustNewElement(tag.InstanceNumber, []string{"1"}),
		mustNewElement(tag.ContentDate, []string{now.Format("20060102")}),
		mustNewElement(tag.ContentTime, []string{now.Format("150405")}),
		mustNewElement(tag.ImageComments, []string{fmt.Sprintf("seed %d", opts.Seed)}),
		mustNewElement(tag.Rows, []int{height}),
		mustNewElement(tag.Columns, []int{width}),
		mustNewElement(tag.BitsAllocated, []int{8}),
		mustNewElement(tag.BitsStored, []int{8}),
		mustNewElement(tag.HighBit, []int{7}),
		mustNewElement(tag.PixelRepresentation, []int{0}),
		mustNewElement(tag.SamplesPerPixel, []int{1}),
		mustNewElement(tag.PhotometricInterpretation, []string{"MONOCHROME2"}),
		mustNewElement(tag.PixelData, pixelDataInfo),
	}

	if err := writeDatasetToFile(path, dicom.Dataset{Elements: elements}, opts.Overwrite); err != nil {
		return fmt.Errorf("write secondary capture %s: %w", path, err)
	}
	return nil
}
