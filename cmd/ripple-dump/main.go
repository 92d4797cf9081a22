package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"mad-ripples/internal/core"
	"mad-ripples/internal/render"
	"mad-ripples/internal/ripple"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

type job struct {
	seed int64
	path string
}

type dumpResult struct {
	seed    int64
	path    string
	ticks   uint64
	energy  int64
	peak    int
	changed bool
	err     error
}

func main() {
	frames := flag.Int("frames", 200, "render frames to simulate before writing the image")
	dt := flag.Float64("dt", 1.0/60, "seconds of simulated time per frame")
	width := flag.Int("w", 256, "source texture width")
	height := flag.Int("h", 128, "source texture height")
	out := flag.String("out", "ripple.png", "output PNG path")
	configPath := flag.String("config", "", "JSON file with ripple settings")
	seeds := flag.Int("seeds", 1, "number of consecutive seeds to render")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel renders")
	var overrides kvList
	flag.Var(&overrides, "set", "ripple override in key=value form, e.g. r_ripple=2 (repeatable)")
	flag.Parse()

	logger := log.New(os.Stderr, "ripple-dump: ", 0)

	cfg := ripple.DefaultConfig()
	if *configPath != "" {
		loaded, err := ripple.LoadConfig(*configPath)
		if err != nil {
			logger.Fatal(err)
		}
		cfg = loaded
	}
	kv := map[string]string{}
	for _, item := range overrides {
		parts := strings.SplitN(item, "=", 2)
		if len(parts) != 2 {
			logger.Printf("ignoring override %q", item)
			continue
		}
		kv[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	cfg = cfg.Apply(kv)

	atLeastOne(seeds, workers, width, height)

	start := time.Now()
	jobs := make(chan job)
	results := make(chan dumpResult)
	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				c := cfg
				c.Seed = j.seed
				results <- renderSeed(c, j, *frames, *dt, *width, *height, logger)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < *seeds; i++ {
			seed := cfg.Seed + int64(i)
			path := *out
			if *seeds > 1 {
				path = seededPath(*out, seed)
			}
			jobs <- job{seed: seed, path: path}
		}
		close(jobs)
	}()

	var all []dumpResult
	failed := false
	for res := range results {
		if res.err != nil {
			logger.Printf("seed %d: %v", res.seed, res.err)
			failed = true
			continue
		}
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].energy > all[j].energy })
	for _, res := range all {
		fmt.Printf("seed=%d ticks=%d energy=%d peak=%d changed=%t -> %s\n",
			res.seed, res.ticks, res.energy, res.peak, res.changed, res.path)
	}
	fmt.Printf("rendered %d image(s) in %s\n", len(all), time.Since(start).Round(time.Millisecond))
	if failed {
		os.Exit(1)
	}
}

// renderSeed drives one effect on a manual clock and writes its last output.
func renderSeed(cfg ripple.Config, j job, frames int, dt float64, w, h int, logger *log.Logger) dumpResult {
	clock := &core.ManualClock{}
	effect := ripple.NewEffect(cfg, clock, logger)
	palette := render.WaterPalette()
	readBack := func(_ ripple.SourceID, sw, sh int, dst []byte) error {
		render.FillWaterRGBA(dst, sw, sh, palette)
		return nil
	}

	var res ripple.Result
	changed := false
	for i := 0; i < frames; i++ {
		clock.Advance(dt)
		effect.BeginFrame()
		res = effect.Surface(1, w, h, readBack)
		changed = changed || res.Changed
	}

	r := dumpResult{
		seed:    j.seed,
		path:    j.path,
		ticks:   effect.Field().Ticks(),
		energy:  effect.Field().Energy(),
		peak:    effect.Field().Peak(),
		changed: changed,
	}

	var pix []byte
	ow, oh := w, h
	if res.Passthrough || res.Output == nil {
		pix = make([]byte, w*h*4)
		if err := readBack(1, w, h, pix); err != nil {
			r.err = err
			return r
		}
	} else {
		pix, ow, oh = res.Output.Pix, res.Output.Width, res.Output.Height
	}
	r.err = writePNG(j.path, pix, ow, oh)
	return r
}

func writePNG(path string, pix []byte, w, h int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, render.RGBAImage(pix, w, h)); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// atLeastOne raises every value below 1 to 1.
func atLeastOne(vals ...*int) {
	for _, v := range vals {
		if *v < 1 {
			*v = 1
		}
	}
}

func seededPath(path string, seed int64) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-seed%d%s", strings.TrimSuffix(path, ext), seed, ext)
}
