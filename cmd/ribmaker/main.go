// RibMaker — Parametric Rib Wall Designer
//
// Generates undulating rib profiles for CNC-cut feature walls: DXF cut
// files, CSV/PDF/Excel reports, QR install labels, STL previews, and GCode.
//
// Build:
//   go build -o ribmaker ./cmd/ribmaker
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o ribmaker.exe ./cmd/ribmaker
//   GOOS=darwin  GOARCH=arm64 go build -o ribmaker-darwin ./cmd/ribmaker

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/mariosromano/ribmaker/internal/engine"
	"github.com/mariosromano/ribmaker/internal/export"
	"github.com/mariosromano/ribmaker/internal/gcode"
	"github.com/mariosromano/ribmaker/internal/importer"
	"github.com/mariosromano/ribmaker/internal/mesh"
	"github.com/mariosromano/ribmaker/internal/model"
	"github.com/mariosromano/ribmaker/internal/project"
)

func main() {
	log.SetFlags(0)

	var (
		projectPath = flag.String("project", "", "project file to load")
		imagePath   = flag.String("image", "", "brightness map image (png/jpeg/gif)")
		imageScale  = flag.Float64("scale", 0, "image tile scale (overrides project)")
		curvePath   = flag.String("curve", "", "DXF file with a custom depth curve")
		mode        = flag.String("mode", "", "installation mode: wall, ceiling, or both")
		led         = flag.Bool("led", false, "include LED channel pricing")
		material    = flag.String("material", "", "sheet material by name")
		outDir      = flag.String("out", ".", "output directory")

		wantDXF    = flag.Bool("dxf", false, "write the flat cut layout DXF")
		wantCSV    = flag.Bool("csv", false, "write the dimension/pricing CSV")
		wantPDF    = flag.Bool("pdf", false, "write the spec-sheet PDF")
		wantXLSX   = flag.Bool("xlsx", false, "write the cut list workbook")
		wantLabels = flag.Bool("labels", false, "write QR install labels PDF")
		wantSTL    = flag.Bool("stl", false, "write per-rib STL previews")
		wantGCode  = flag.Bool("gcode", false, "write the CNC toolpath program")

		gcodeProfile = flag.String("gcode-profile", "", "controller profile: Grbl, Mach3, LinuxCNC, Generic")
	)
	flag.Parse()

	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		log.Printf("warning: config unreadable, using defaults: %v", err)
		config = model.DefaultAppConfig()
	}
	materials, err := project.LoadMaterials(project.DefaultMaterialsPath())
	if err != nil {
		log.Printf("warning: material library unreadable, using defaults: %v", err)
		materials = model.DefaultMaterials()
	}

	proj := model.NewProject()
	proj.ImageScale = config.DefaultImageScale
	if *projectPath != "" {
		proj, err = project.LoadProject(*projectPath)
		if err != nil {
			log.Fatalf("loading project: %v", err)
		}
		project.AddRecentProject(&config, *projectPath)
		if err := project.SaveAppConfig(project.DefaultConfigPath(), config); err != nil {
			log.Printf("warning: cannot update recent projects: %v", err)
		}
	}

	if *mode != "" {
		proj.Mode = model.InstallationMode(*mode)
	}
	if *led {
		proj.LEDEnabled = true
	}
	if *material != "" {
		proj.Material = *material
	}
	if *imageScale > 0 {
		proj.ImageScale = *imageScale
	}

	rates := config.Rates()
	if proj.Material != "" {
		m := materials.FindByName(proj.Material)
		if m == nil {
			log.Fatalf("unknown material %q (have: %v)", proj.Material, materials.Names())
		}
		m.ApplyToRates(&rates)
	}

	gen := engine.New()
	if *imagePath != "" {
		src, err := importer.LoadImage(*imagePath)
		if err != nil {
			log.Fatalf("loading image: %v", err)
		}
		gen.SetImage(src)
	}
	if *curvePath != "" {
		curve, err := importer.ImportDepthCurve(*curvePath)
		if err != nil {
			log.Fatalf("importing depth curve: %v", err)
		}
		gen.SetCurve(curve)
	}

	profiles := gen.GenerateAll(&proj.Params, proj.Mode, proj.ImageScale)

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("creating output directory: %v", err)
	}

	if *wantDXF {
		writeArtifact(filepath.Join(*outDir, "ribs.dxf"),
			export.ExportDXF(profiles, proj.Params))
	}
	if *wantCSV {
		writeArtifact(filepath.Join(*outDir, "ribs.csv"),
			export.ExportCSV(profiles, proj.Params, proj.Mode, proj.LEDEnabled, rates))
	}
	if *wantPDF {
		path := filepath.Join(*outDir, "ribs.pdf")
		if err := export.ExportPDF(path, profiles, proj.Params, proj.Mode, proj.LEDEnabled, rates); err != nil {
			log.Fatalf("writing PDF: %v", err)
		}
		log.Printf("wrote %s", path)
	}
	if *wantXLSX {
		path := filepath.Join(*outDir, "ribs.xlsx")
		if err := export.ExportExcel(path, profiles, proj.Params, proj.Mode, proj.LEDEnabled, rates); err != nil {
			log.Fatalf("writing workbook: %v", err)
		}
		log.Printf("wrote %s", path)
	}
	if *wantLabels {
		path := filepath.Join(*outDir, "labels.pdf")
		if err := export.ExportLabels(path, profiles, proj.Params); err != nil {
			log.Fatalf("writing labels: %v", err)
		}
		log.Printf("wrote %s", path)
	}
	if *wantSTL {
		for _, rp := range profiles {
			s, err := mesh.Solid(rp)
			if err != nil {
				log.Fatalf("building rib %d solid: %v", rp.Index, err)
			}
			path := filepath.Join(*outDir, fmt.Sprintf("rib_%02d.stl", rp.Index))
			if err := mesh.SaveSTL(path, fmt.Sprintf("rib_%02d", rp.Index), s); err != nil {
				log.Fatalf("writing STL: %v", err)
			}
			log.Printf("wrote %s", path)
		}
	}
	if *wantGCode {
		settings := gcode.DefaultSettings()
		settings.Profile = config.DefaultGCodeProfile
		if *gcodeProfile != "" {
			settings.Profile = *gcodeProfile
		}
		writeArtifact(filepath.Join(*outDir, "ribs.nc"),
			gcode.New(settings).Generate(profiles, proj.Params))
	}

	printSummary(proj, rates)
}

func writeArtifact(path, content string) {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		log.Fatalf("writing %s: %v", path, err)
	}
	log.Printf("wrote %s", path)
}

func printSummary(proj model.Project, rates model.Rates) {
	pricing := model.ComputePricing(proj.Params, proj.Mode, proj.LEDEnabled, rates)

	fmt.Printf("%s\n", proj.Name)
	fmt.Printf("  Coverage:       %s\n", pricing.WallCoverage)
	fmt.Printf("  Ribs:           %d x %.1f\" (%.2f sq ft)\n",
		proj.Params.Count, pricing.RibLength, pricing.TotalSurfaceAreaSqFt)
	fmt.Printf("  Sheets:         %d (%d ribs/sheet, %d sections/rib)\n",
		pricing.SheetsNeeded, pricing.RibsPerSheet, pricing.SectionsPerRib)
	fmt.Printf("  Rib price:      $%.2f\n", pricing.RibPrice)
	if proj.LEDEnabled {
		fmt.Printf("  LED (%.0f ft):   $%.2f\n", pricing.LEDLinearFeet, pricing.LEDPrice)
	}
	fmt.Printf("  Grand total:    $%.2f\n", pricing.TotalPrice)
}
