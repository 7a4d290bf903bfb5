// Command wieringa builds the Wieringa roof flower and the two layer roof
// lifted from a Penrose rhomb tiling and writes them as STL files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/soypat/wieringa"
	"github.com/soypat/wieringa/helpers/matter"
	"github.com/soypat/wieringa/preview"
	"github.com/soypat/wieringa/render"
	"github.com/soypat/wieringa/scene"
	"github.com/soypat/wieringa/tiling"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"
)

// config is the layout of the optional YAML file.
type config struct {
	Tile   wieringa.Config     `yaml:"tile"`
	Roof   wieringa.RoofParams `yaml:"roof"`
	Layout tiling.Layout       `yaml:"layout"`
}

// options holds the command line flags.
type options struct {
	configFile string
	outDir     string
	flower     bool
	flat       bool
	steps      int
	space      bool
	png        bool
	svg        bool
	plot       bool
	scad       bool
	pla        bool
	check      int
}

func newFlagSet(o *options) *flag.FlagSet {
	fs := flag.NewFlagSet("wieringa", flag.ExitOnError)
	fs.StringVar(&o.configFile, "config", "", "optional YAML configuration file")
	fs.StringVar(&o.outDir, "out", "output", "output directory")
	fs.BoolVar(&o.flower, "flower", true, "write the ten tile flower")
	fs.BoolVar(&o.flat, "flat", false, "write the flat thin and thick Penrose rhombs")
	fs.IntVar(&o.steps, "steps", 4, "tiling substitution steps")
	fs.BoolVar(&o.space, "space", false, "shrink tiles to show the gaps between them")
	fs.BoolVar(&o.png, "png", false, "write PNG previews of the models")
	fs.BoolVar(&o.svg, "svg", false, "write the flat tiling as SVG")
	fs.BoolVar(&o.plot, "plot", false, "write a plot of the flat tiling")
	fs.BoolVar(&o.scad, "scad", false, "write OpenSCAD programs next to the STL files")
	fs.BoolVar(&o.pla, "pla", false, "compensate PLA shrinkage")
	fs.IntVar(&o.check, "check", 0, "cross check model volumes by SDF sampling with this many cells, 0 disables")
	return fs
}

func main() {
	var opts options
	fs := newFlagSet(&opts)
	fs.Parse(os.Args[1:])
	cfg, err := readConfig(opts.configFile, fs, opts)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll(opts.outDir, 0777); err != nil {
		log.Fatal(err)
	}

	k := wieringa.Derived
	log.Printf("tile %.6f x %.6f, edge %.6f, area %.6f", k.TileShort, k.TileLong, k.TileEdge(), k.TileArea)
	log.Printf("alpha=%.4f° beta=%.4f°", k.AlphaDeg(), k.BetaDeg())
	if alt := wieringa.AlternativeDerivation(); !alt.Valid {
		log.Printf("direct area ratio gives cos(alpha)=%.4f, no fold angle", alt.CosAlpha)
	}

	if opts.flower {
		n, err := cfg.Tile.Flower()
		if err != nil {
			log.Fatal(err)
		}
		if err := writeModel(opts, "flower", n); err != nil {
			log.Fatal(err)
		}
	}

	if opts.flat {
		for _, rhomb := range []struct {
			name  string
			build func() (*scene.Node, error)
		}{
			{"thin", cfg.Tile.Thin},
			{"thick", cfg.Tile.Thick},
		} {
			n, err := rhomb.build()
			if err != nil {
				log.Fatal(err)
			}
			if err := writeModel(opts, rhomb.name, n); err != nil {
				log.Fatal(err)
			}
		}
	}

	tl, err := tiling.Generate(cfg.Layout.Steps)
	if err != nil {
		log.Fatal(err)
	}
	thick, thin := tl.Count()
	log.Printf("tiling: %d steps, %d thick and %d thin rhombs, %d vertices", cfg.Layout.Steps, thick, thin, len(tl.Points))
	if opts.svg {
		if err := writeSVG(opts.outDir, tl); err != nil {
			log.Fatal(err)
		}
	}
	if opts.plot {
		name := filepath.Join(opts.outDir, "tiling_plot.png")
		if err := tl.SavePlot(name, 20*vg.Centimeter); err != nil {
			log.Fatal(err)
		}
		logSize(name)
	}

	roof, err := wieringa.Roof(tl.Lifted(cfg.Layout.ZUnit, cfg.Layout.Thickness), cfg.Roof)
	if err != nil {
		log.Fatal(err)
	}
	if err := writeModel(opts, "roof", roof); err != nil {
		log.Fatal(err)
	}
}

// readConfig loads the configuration from path, or the defaults when path
// is empty.
func readConfig(path string, fs *flag.FlagSet, opts options) (config, error) {
	if path == "" {
		return loadConfig(nil, fs, opts)
	}
	fp, err := os.Open(path)
	if err != nil {
		return config{}, err
	}
	defer fp.Close()
	cfg, err := loadConfig(fp, fs, opts)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// loadConfig decodes YAML from r over the defaults. A nil r keeps the
// defaults. Flags set explicitly on fs win over the file.
func loadConfig(r io.Reader, fs *flag.FlagSet, opts options) (config, error) {
	cfg := config{
		Tile:   wieringa.DefaultConfig(),
		Roof:   wieringa.DefaultRoofParams(),
		Layout: tiling.DefaultLayout(),
	}
	if r != nil {
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "steps":
			cfg.Layout.Steps = opts.steps
		case "space":
			cfg.Tile.SpaceTiles = opts.space
		}
	})
	if err := cfg.Tile.Validate(); err != nil {
		return cfg, err
	}
	if err := cfg.Roof.Validate(); err != nil {
		return cfg, err
	}
	if err := cfg.Layout.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func writeModel(opts options, name string, n *scene.Node) error {
	if opts.pla {
		n = matter.PLA.Scale(n)
	}
	stlName := filepath.Join(opts.outDir, name+".stl")
	if err := render.CreateSTL(stlName, render.NewSceneRenderer(n)); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	logSize(stlName)
	model, err := render.RenderAll(render.NewSceneRenderer(n))
	if err != nil {
		return err
	}
	log.Printf("%s: %d tiles, %d triangles, volume %.5f", name, len(scene.Flatten(n)), len(model), render.Volume(model))
	if opts.check > 0 {
		vc, err := render.CheckVolume(n, opts.check)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		log.Printf("%s: sampled volume %.5f from SDF, %.5f from STL mesh (%d cells)", name, vc.Sampled, vc.STL, opts.check)
	}
	if opts.scad {
		scadName := filepath.Join(opts.outDir, name+".scad")
		fp, err := os.Create(scadName)
		if err != nil {
			return err
		}
		err = render.WriteSCAD(fp, n)
		if cerr := fp.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		logSize(scadName)
	}
	if opts.png {
		pngName := filepath.Join(opts.outDir, name+".png")
		if err := preview.RenderPNG(model, preview.DefaultView(), pngName); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		logSize(pngName)
	}
	return nil
}

func writeSVG(dir string, tl *tiling.Tiling) error {
	name := filepath.Join(dir, "tiling.svg")
	fp, err := os.Create(name)
	if err != nil {
		return err
	}
	err = tl.WriteSVG(fp, 1080)
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	logSize(name)
	return nil
}

func logSize(name string) {
	info, err := os.Stat(name)
	if err != nil {
		log.Printf("wrote %s", name)
		return
	}
	log.Printf("wrote %s (%s)", name, humanize.Bytes(uint64(info.Size())))
}
