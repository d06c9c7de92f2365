package help

// HelpText contains information about a field
type HelpText struct {
	Title       string
	Description string
	Details     string
}

// Texts contains help information for all wizard fields
var Texts = map[string]HelpText{
	"output": {
		Title:       "OUTPUT FILE",
		Description: "Path of the COE file to write.",
		Details:     "Defaults to image_data.coe in the current directory.",
	},
	"dimensions": {
		Title:       "DIMENSIONS",
		Description: "Width x height of the sample block.",
		Details: `One 8-bit sample per cell, written row by row.
128x128 (default) = 16384 samples.`,
	},
	"radix": {
		Title:       "RADIX",
		Description: "Numeric base of each vector token.",
		Details: `16 - two uppercase hex digits (00..FF)
10 - plain decimal (0..255)
2  - eight binary digits`,
	},
	"seed": {
		Title:       "SEED",
		Description: "Seed for reproducible samples.",
		Details:     "Leave at 0 to draw a fresh seed from system entropy. The seed used is always shown.",
	},
	"overwrite": {
		Title:       "OVERWRITE",
		Description: "Replace an existing output file.",
		Details:     "When off, generation fails if the output file already exists.",
	},
	"preview": {
		Title:       "PNG PREVIEW",
		Description: "Optional grayscale preview of the block.",
		Details:     "Each sample is one pixel, upscaled 4x. Leave empty to skip.",
	},
	"dicom": {
		Title:       "DICOM EXPORT",
		Description: "Optional 8-bit Secondary Capture image.",
		Details:     "Same samples as the COE file, viewable in any DICOM viewer. Leave empty to skip.",
	},
	"save_config": {
		Title:       "SAVE CONFIGURATION",
		Description: "Optional YAML file to save these settings to.",
		Details:     "Reuse later with: coeforge --config <file> or coeforge wizard --from <file>",
	},
}
