package main

import (
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"pup-avatar-renderer/internal/anim"
	"pup-avatar-renderer/internal/backdrop"
	"pup-avatar-renderer/internal/batch"
	"pup-avatar-renderer/internal/breed"
	"pup-avatar-renderer/internal/painter"
	"pup-avatar-renderer/internal/postprocess"
	"pup-avatar-renderer/internal/profile"
)

const Version = "v0.3.0"

var (
	profilePath string
	verbose     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "puprig",
		Short: "Procedural dog avatar renderer for the trivia companion",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				gg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			if version, _ := cmd.Flags().GetBool("version"); version {
				fmt.Println(Version)
				return
			}
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&profilePath, "profile", "", "Path to TOML render profile")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable renderer diagnostics")
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(sheetCmd)
	rootCmd.AddCommand(breedsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadProfile(cmd *cobra.Command) (profile.Profile, error) {
	var p profile.Profile
	if profilePath != "" {
		var err error
		p, err = profile.Load(profilePath)
		if err != nil {
			return profile.Profile{}, err
		}
	}

	b, _ := cmd.Flags().GetString("breed")
	mood, _ := cmd.Flags().GetString("mood")
	expr, _ := cmd.Flags().GetString("expression")
	size, _ := cmd.Flags().GetInt("size")
	out, _ := cmd.Flags().GetString("output")
	bd, _ := cmd.Flags().GetString("backdrop")
	quality, _ := cmd.Flags().GetInt("quality")

	p.Resolve(profile.Flags{
		Breed:      b,
		Mood:       mood,
		Expression: expr,
		Size:       size,
		OutputDir:  out,
		Backdrop:   bd,
		Quality:    quality,
	})
	return p, nil
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a single frame to PNG or WebP",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProfile(cmd)
		if err != nil {
			return err
		}

		b, err := breed.ParseBreed(p.Breed)
		if err != nil {
			return err
		}
		expr, err := anim.ParseExpression(p.Expression)
		if err != nil {
			return err
		}
		cfg := breed.ConfigFor(b)
		if err := cfg.Validate(); err != nil {
			return err
		}

		state := anim.StateForMood(p.Mood)
		t, _ := cmd.Flags().GetFloat64("time")
		if t == 0 {
			t = p.TimeOffset
		}
		ps := anim.PoseAt(state, cfg.AnimationSpeedMultiplier, t)
		if left, _ := cmd.Flags().GetBool("face-left"); left {
			ps.FacingRight = false
		}

		img, err := painter.Render(cfg, ps, expr, p.Size, p.Supersample)
		if err != nil {
			return fmt.Errorf("render %s: %w", b, err)
		}
		if p.Supersample > 1 {
			img = postprocess.Downscale(img, p.Size)
		}

		if p.Backdrop != "" {
			bg, err := backdrop.Load(p.Backdrop)
			if err != nil {
				return err
			}
			img = backdrop.Compose(backdrop.Fit(bg, p.Size), img)
		}

		if err := os.MkdirAll(p.OutputDir, 0755); err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		outPath := filepath.Join(p.OutputDir, fmt.Sprintf("%s_%s_%s.%s", b.Key(), state, expr, format))

		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()

		switch format {
		case "webp":
			err = nativewebp.Encode(f, img, nil)
		case "png":
			err = png.Encode(f, img)
		default:
			err = fmt.Errorf("unknown format %q (want png or webp)", format)
		}
		if err != nil {
			return err
		}

		fmt.Printf("Rendered %s (%s, %s) → %s\n", b, state, expr, outPath)
		return nil
	},
}

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Render animation frame sequences for breeds and states",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProfile(cmd)
		if err != nil {
			return err
		}

		breeds := breed.Catalog()
		if p.Breed != "" {
			if only, _ := cmd.Flags().GetBool("only"); only {
				b, err := breed.ParseBreed(p.Breed)
				if err != nil {
					return err
				}
				breeds = []breed.Breed{b}
			}
		}
		expr, err := anim.ParseExpression(p.Expression)
		if err != nil {
			return err
		}

		frames, _ := cmd.Flags().GetInt("frames")
		workers, _ := cmd.Flags().GetInt("workers")
		if workers <= 0 {
			workers = runtime.NumCPU()
		}

		var jobs []batch.Job
		for _, b := range breeds {
			for _, s := range anim.States() {
				jobs = append(jobs, batch.Job{Breed: b, State: s, Expression: expr})
			}
		}

		cfg := batch.Config{
			OutputDir:   p.OutputDir,
			Size:        p.Size,
			Supersample: p.Supersample,
			FrameCount:  frames,
			Workers:     workers,
		}

		fmt.Printf("Rendering %d sequences (%d frames each), workers: %d\n", len(jobs), frames, workers)
		fmt.Printf("Output: %s\n", p.OutputDir)
		start := time.Now()

		results := batch.Run(cfg, jobs)

		success, failed := 0, 0
		for _, r := range results {
			if r.Success {
				success++
			} else {
				failed++
				fmt.Fprintf(os.Stderr, "  %s/%s: %s\n", r.Job.Breed, r.Job.State, r.Error)
			}
		}
		fmt.Printf("Done in %.1fs, rendered %d/%d sequences\n", time.Since(start).Seconds(), success, len(jobs))

		manifestPath := filepath.Join(p.OutputDir, "manifest.json")
		if err := batch.WriteManifest(manifestPath, cfg, results); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			fmt.Printf("Manifest: %s\n", manifestPath)
		}

		if failed > 0 {
			os.Exit(1)
		}
		return nil
	},
}

var breedsCmd = &cobra.Command{
	Use:   "breeds",
	Short: "List the breed catalog with proportions",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("%-16s %7s %7s %7s %7s %6s %6s\n",
			"breed", "height", "torso", "legLen", "speed", "ears", "tail")
		for _, b := range breed.Catalog() {
			c := breed.ConfigFor(b)
			if err := c.Validate(); err != nil {
				return err
			}
			ears := "erect"
			if c.EarsFloppy {
				ears = "floppy"
			}
			tail := "low"
			if c.TailCurledOverBack {
				tail = "curled"
			}
			fmt.Printf("%-16s %7.2f %7.2f %7.2f %7.2f %6s %6s\n",
				b.Key(), c.HeightScale, c.TorsoAspectRatio, c.LegLengthRatio,
				c.AnimationSpeedMultiplier, ears, tail)
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{renderCmd, sheetCmd} {
		c.Flags().String("breed", "", "Breed key (goldenRetriever, germanShepherd, dachshund)")
		c.Flags().String("mood", "", "Mood key from the companion behavior system")
		c.Flags().String("expression", "", "Expression (neutral, happy, sleepy, excited)")
		c.Flags().Int("size", 0, "Canvas size in pixels")
		c.Flags().String("output", "", "Output directory")
		c.Flags().Int("quality", 0, "Reserved for lossy export settings")
	}
	renderCmd.Flags().String("backdrop", "", "Background image (PNG, JPEG or TGA)")
	renderCmd.Flags().Float64("time", 0, "Animation time offset in seconds")
	renderCmd.Flags().Bool("face-left", false, "Mirror the figure to face left")
	renderCmd.Flags().String("format", "png", "Output format: png or webp")
	sheetCmd.Flags().Int("frames", 12, "Frames per animation cycle")
	sheetCmd.Flags().Int("workers", 0, "Worker goroutines (default: NumCPU)")
	sheetCmd.Flags().Bool("only", false, "Restrict to the --breed flag instead of the full catalog")
}
