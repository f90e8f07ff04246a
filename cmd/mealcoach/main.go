package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"mealcoach/internal/bootstrap"
	ingestdto "mealcoach/internal/modules/ingest/dto"
	trackerdto "mealcoach/internal/modules/tracker/dto"
	"mealcoach/internal/platform/config"
	"mealcoach/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type globalFlags struct {
	configPath string
	envFile    string
}

func newRootCmd() *cobra.Command {
	var flags globalFlags

	root := &cobra.Command{
		Use:           "mealcoach",
		Short:         "AI meal photo calorie tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&flags.envFile, "env-file", "", "dotenv file (default .env)")

	root.AddCommand(newTUICmd(&flags))
	root.AddCommand(newAnalyzeCmd(&flags))
	root.AddCommand(newExerciseCmd(&flags))
	root.AddCommand(newInspectCmd(&flags))
	root.AddCommand(newReportCmd(&flags))
	return root
}

// env holds what every command needs; close releases the log file.
type env struct {
	cfg   config.Config
	log   hclog.Logger
	close func()
}

func load(flags *globalFlags, mirror io.Writer) (*env, error) {
	cfg, err := config.New(flags.configPath, flags.envFile)
	if err != nil {
		return nil, err
	}
	log, closer, err := logging.New(logging.Options{Path: cfg.LogPath, Level: cfg.LogLevel, Mirror: mirror})
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, log: log, close: func() { _ = closer.Close() }}, nil
}

func loadApp(ctx context.Context, flags *globalFlags, mirror io.Writer) (*bootstrap.App, func(), error) {
	rt, err := load(flags, mirror)
	if err != nil {
		return nil, nil, err
	}
	app, err := bootstrap.New(ctx, rt.cfg, rt.log)
	if err != nil {
		rt.close()
		return nil, nil, err
	}
	return app, func() {
		_ = app.Close()
		rt.close()
	}, nil
}

func newTUICmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive meal coach",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(cmd.Context(), flags, nil)
			if err != nil {
				return err
			}
			defer done()
			return bootstrap.RunTUI(app)
		},
	}
}

type profileFlags struct {
	mealType string
	goal     string
	limit    int
	age      int
	weight   int
}

func (p *profileFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.mealType, "meal-type", "", "Breakfast|Lunch|Dinner|Snack")
	cmd.Flags().StringVar(&p.goal, "goal", "", "weight-loss|muscle-gain|maintain-fitness|improve-flexibility")
	cmd.Flags().IntVar(&p.limit, "limit", 0, "daily calorie limit, 500-5000")
	cmd.Flags().IntVar(&p.age, "age", 0, "age in years, 10-100")
	cmd.Flags().IntVar(&p.weight, "weight", 0, "weight in kg, 30-200")
}

// input fills unset flags from the configured profile.
func (p profileFlags) input(cmd *cobra.Command, defaults config.ProfileDefaults) trackerdto.ProfileInput {
	in := trackerdto.ProfileInput{
		MealType:   defaults.MealType,
		Goal:       defaults.Goal,
		DailyLimit: defaults.DailyLimit,
		Age:        defaults.Age,
		WeightKg:   defaults.WeightKg,
	}
	if cmd.Flags().Changed("meal-type") {
		in.MealType = p.mealType
	}
	if cmd.Flags().Changed("goal") {
		in.Goal = p.goal
	}
	if cmd.Flags().Changed("limit") {
		in.DailyLimit = p.limit
	}
	if cmd.Flags().Changed("age") {
		in.Age = p.age
	}
	if cmd.Flags().Changed("weight") {
		in.WeightKg = p.weight
	}
	return in
}

func newAnalyzeCmd(flags *globalFlags) *cobra.Command {
	var profile profileFlags
	var export bool

	cmd := &cobra.Command{
		Use:   "analyze <image>",
		Short: "Analyze a meal photo and log its calories",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, done, err := loadApp(cmd.Context(), flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer done()

			image, out, err := app.TrackerCLI.AnalyzeFile(cmd.Context(), args[0], profile.input(cmd, app.Profile()))
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "%s (%s, %dx%d)\n\n", image.Name, image.DetectedType, image.Width, image.Height)
			_, _ = fmt.Fprintln(w, strings.TrimSpace(out.Text))
			if out.Failed {
				return nil
			}
			_, _ = fmt.Fprintf(w, "\nTotal Calories Today: %d / %d kcal\n", out.TotalCalories, out.DailyLimit)
			if out.Message != "" {
				_, _ = fmt.Fprintln(w, out.Message)
			}
			if !export {
				return nil
			}
			report, err := app.TrackerCLI.Export(cmd.Context(), out.Text)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(w, "report: %s\n", report.Path)
			return nil
		},
	}
	profile.register(cmd)
	cmd.Flags().BoolVar(&export, "export", false, "also write the analysis to a PDF report")
	return cmd
}

func newExerciseCmd(flags *globalFlags) *cobra.Command {
	var profile profileFlags
	var calories int

	cmd := &cobra.Command{
		Use:   "exercise",
		Short: "Recommend exercises for a fitness goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(cmd.Context(), flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer done()

			var override *int
			if cmd.Flags().Changed("calories") {
				override = &calories
			}
			out, err := app.TrackerCLI.RecommendExercise(cmd.Context(), profile.input(cmd, app.Profile()), override)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(out.Text))
			return nil
		},
	}
	profile.register(cmd)
	cmd.Flags().IntVar(&calories, "calories", 0, "calories consumed today")
	return cmd
}

func newInspectCmd(flags *globalFlags) *cobra.Command {
	var camera bool

	cmd := &cobra.Command{
		Use:   "inspect [image]",
		Short: "Check that an image (or a camera capture) is accepted for analysis",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !camera && len(args) == 0 {
				return fmt.Errorf("inspect needs an image path or --camera")
			}
			rt, err := load(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer rt.close()
			tools := bootstrap.NewTools(rt.cfg, rt.log)

			var img ingestdto.ImageOutput
			if camera {
				img, err = tools.ImageCLI.Capture(cmd.Context())
			} else {
				img, err = tools.ImageCLI.Upload(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %dx%d, %d bytes, detected %s, sent as %s\n",
				img.Name, img.Width, img.Height, len(img.Data), img.DetectedType, img.MIMEType)
			return nil
		},
	}
	cmd.Flags().BoolVar(&camera, "camera", false, "capture from the configured camera command")
	return cmd
}

func newReportCmd(flags *globalFlags) *cobra.Command {
	report := &cobra.Command{Use: "report", Short: "Write and read PDF meal reports"}

	exportCmd := &cobra.Command{
		Use:   "export <textfile>",
		Short: "Render a text file as a meal report PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			rt, err := load(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer rt.close()

			out, err := bootstrap.NewTools(rt.cfg, rt.log).ReportCLI.Export(cmd.Context(), string(text))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d lines)\n", out.Path, out.Lines)
			return nil
		},
	}

	readCmd := &cobra.Command{
		Use:   "read <pdf>",
		Short: "Print the text lines of a meal report PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := load(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer rt.close()

			out, err := bootstrap.NewTools(rt.cfg, rt.log).ReportCLI.Read(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, line := range out.Lines {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	report.AddCommand(exportCmd, readCmd)
	return report
}
