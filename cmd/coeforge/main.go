package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mrsinham/coeforge/cmd/coeforge/wizard"
	"github.com/mrsinham/coeforge/internal/coe"
	"github.com/mrsinham/coeforge/internal/generator"
	"github.com/mrsinham/coeforge/internal/image"
	"github.com/mrsinham/coeforge/internal/util"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	// Check for wizard subcommand (before flag.Parse)
	if len(os.Args) > 1 && os.Args[1] == "wizard" {
		var fromConfig string
		for i, arg := range os.Args[2:] {
			if arg == "--from" && i+3 < len(os.Args) {
				fromConfig = os.Args[i+3]
			}
		}
		if err := wizard.Run(fromConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	defaults := generator.DefaultOptions()

	output := flag.String("output", defaults.OutputPath, "Output COE file")
	dimensions := flag.String("dimensions", defaults.Dimensions.String(), "Sample block as WIDTHxHEIGHT (one sample per cell)")
	radix := flag.String("radix", defaults.Radix.String(), "Vector radix: 2, 10 or 16")
	seed := flag.Uint64("seed", 0, "Seed for reproducibility (optional, auto-generated if not specified)")
	noOverwrite := flag.Bool("no-overwrite", false, "Fail instead of replacing an existing output file")

	preview := flag.String("preview", "", "Also write a grayscale PNG preview to this path")
	previewScale := flag.Int("preview-scale", image.DefaultScale, "Preview upscaling factor")
	dicomPath := flag.String("dicom", "", "Also write an 8-bit DICOM Secondary Capture to this path")

	interactive := flag.Bool("interactive", false, "Launch interactive wizard")
	flag.BoolVar(interactive, "i", false, "Launch interactive wizard (shortcut)")
	configFile := flag.String("config", "", "Load configuration from YAML file")
	saveConfig := flag.String("save-config", "", "Save configuration to YAML file (after generation)")

	quiet := flag.Bool("quiet", false, "Only print errors")
	help := flag.Bool("help", false, "Show help message")
	showVersion := flag.Bool("version", false, "Show version")

	flag.Parse()

	if *interactive {
		if err := wizard.Run(""); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("coeforge %s\n", version)
		os.Exit(0)
	}

	if *help {
		printHelp()
		os.Exit(0)
	}

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected argument %q\n", flag.Arg(0))
		printUsage()
		os.Exit(1)
	}

	var opts generator.Options
	if *configFile != "" {
		state, err := wizard.LoadFromYAML(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		opts, err = wizard.ToGeneratorOptions(state)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error converting config: %v\n", err)
			os.Exit(1)
		}
		opts.PreviewScale = *previewScale
	} else {
		parsedDimensions, err := util.ParseDimensions(*dimensions)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		parsedRadix, err := coe.ParseRadix(*radix)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		opts = defaults
		opts.OutputPath = *output
		opts.Dimensions = parsedDimensions
		opts.Radix = parsedRadix
		opts.Seed = *seed
		opts.Overwrite = !*noOverwrite
		opts.PreviewPath = *preview
		opts.PreviewScale = *previewScale
		opts.DICOMPath = *dicomPath
	}
	opts.Quiet = *quiet

	if !opts.Quiet {
		fmt.Println("coeforge")
		fmt.Println("========")
		if *configFile != "" {
			fmt.Printf("Loading config from %s\n", *configFile)
		}
		fmt.Println()
	}

	result, err := generator.Generate(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *saveConfig != "" {
		state := wizard.FromGeneratorOptions(opts)
		// Pin the seed actually used so the saved config replays this run
		state.Seed = result.Seed
		if err := wizard.SaveToYAML(state, *saveConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save config: %v\n", err)
		} else if !opts.Quiet {
			fmt.Printf("Configuration saved to %s\n", *saveConfig)
		}
	}

	if !opts.Quiet {
		fmt.Println("\n✓ Generation complete!")
		fmt.Printf("  Output:  %s (%d samples)\n", result.OutputPath, len(result.Samples))
		fmt.Printf("  Seed:    %d\n", result.Seed)
		fmt.Printf("  SHA-256: %s\n", result.Checksum)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage:")
	fmt.Fprintln(os.Stderr, "  coeforge [options]")
	fmt.Fprintln(os.Stderr, "\nOptions:")
	flag.PrintDefaults()
}

func printHelp() {
	fmt.Println("coeforge")
	fmt.Println("========")
	fmt.Println()
	fmt.Println("Generate random COE memory-initialization files for FPGA block RAM.")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  coeforge [options]")
	fmt.Println("  coeforge wizard [--from <config.yaml>]")
	fmt.Println()
	fmt.Println("With no options, writes 128x128 = 16384 random bytes in radix 16 to")
	fmt.Println("image_data.coe in the current directory, replacing any existing file.")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --output <FILE>       Output COE file (default: image_data.coe)")
	fmt.Println("  --dimensions <WxH>    Sample block size (default: 128x128)")
	fmt.Println("  --radix <2|10|16>     Vector radix (default: 16)")
	fmt.Println("  --seed <N>            Seed for reproducibility (auto-generated if not specified)")
	fmt.Println("  --no-overwrite        Fail if the output file already exists")
	fmt.Println()
	fmt.Println("Companion outputs:")
	fmt.Println("  --preview <FILE>      Grayscale PNG preview of the block")
	fmt.Printf("  --preview-scale <N>   Preview upscaling factor (default: %d)\n", image.DefaultScale)
	fmt.Println("  --dicom <FILE>        8-bit DICOM Secondary Capture of the block")
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Println("  --config <FILE>       Load settings from YAML")
	fmt.Println("  --save-config <FILE>  Save settings (with the seed used) to YAML")
	fmt.Println("  -i, --interactive     Launch interactive wizard")
	fmt.Println()
	fmt.Println("  --quiet               Only print errors")
	fmt.Println("  --version             Show version")
	fmt.Println("  --help                Show this help message")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  # Default 128x128 hex image")
	fmt.Println("  coeforge")
	fmt.Println()
	fmt.Println("  # Reproducible 64x64 binary ROM with a preview")
	fmt.Println("  coeforge --dimensions 64x64 --radix 2 --seed 42 --output rom.coe --preview rom.png")
	fmt.Println()
	fmt.Println("Output format:")
	fmt.Println("  memory_initialization_radix=16;")
	fmt.Println("  memory_initialization_vector=")
	fmt.Println("  3A,")
	fmt.Println("  ...")
	fmt.Println("  C4;")
}
