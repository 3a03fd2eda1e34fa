package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/andytrench/next-express/config"
	"github.com/andytrench/next-express/internal/tui"
	"github.com/andytrench/next-express/internal/tui/steps"
	"github.com/andytrench/next-express/runtime"
	"github.com/andytrench/next-express/setup"
)

var (
	createConfigFile string
	createName       string
	createDir        string
	nonInteractive   bool

	createFeatures  []string
	createStyle     string
	createBaseColor string

	createGit       bool
	createBuild     bool
	createEditor    bool
	createDev       bool
	createNoBrowser bool
	broadKill       bool
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new Next.js project",
	Long: "create scaffolds a Next.js project with shadcn/ui. On a terminal it\n" +
		"walks through an interactive wizard; with --config or --non-interactive\n" +
		"it runs straight from the given configuration.",
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVarP(&createConfigFile, "config", "c", "", "project config file (yaml)")
	createCmd.Flags().StringVarP(&createName, "name", "n", "", "project name")
	createCmd.Flags().StringVarP(&createDir, "dir", "d", "", "target directory (default: working directory)")
	createCmd.Flags().BoolVar(&nonInteractive, "non-interactive", false, "skip the wizard, use flags and defaults")

	createCmd.Flags().StringSliceVar(&createFeatures, "features", nil, "extra features: redux, axios, router, auth, prisma, forms, query")
	createCmd.Flags().StringVar(&createStyle, "style", "", "shadcn/ui style")
	createCmd.Flags().StringVar(&createBaseColor, "base-color", "", "shadcn/ui base color")

	createCmd.Flags().BoolVar(&createGit, "git", false, "initialize a git repository")
	createCmd.Flags().BoolVar(&createBuild, "build", false, "run a production build after setup")
	createCmd.Flags().BoolVar(&createEditor, "editor", false, "open the project in VS Code")
	createCmd.Flags().BoolVar(&createDev, "dev", false, "start the dev server after setup")
	createCmd.Flags().BoolVar(&createNoBrowser, "no-browser", false, "do not open the browser when the dev server is ready")
	createCmd.Flags().BoolVar(&broadKill, "broad-kill", false, "on stop, also kill every same-named dev-server process (POSIX)")
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	interactive := createConfigFile == "" && !nonInteractive && term.IsTerminal(int(os.Stdin.Fd()))
	styles := tui.NewStyleSet(tui.DetectTheme(themeOverride))

	if interactive {
		done, err := runWizard(styles, cfg)
		if err != nil {
			return err
		}
		if !done {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	session := setup.NewSequencer().Execute(cmd.Context(), cfg)
	defer session.StopDevServer()

	if interactive {
		return runSetupView(styles, session)
	}
	return runSetupPlain(cfg, session)
}

// resolveConfig builds the starting config from file and flags. Flags win
// over the file, the file wins over the defaults.
func resolveConfig(cmd *cobra.Command) (*config.ProjectConfig, error) {
	cfg := config.Default()
	if createConfigFile != "" {
		loaded, err := config.Load(createConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if createName != "" {
		cfg.Name = createName
	}
	if createDir != "" {
		cfg.Directory = createDir
	}
	if cfg.Directory == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		cfg.Directory = wd
	}

	if cmd.Flags().Changed("features") {
		cfg.Features = createFeatures
	}
	if createStyle != "" {
		cfg.Style = createStyle
	}
	if createBaseColor != "" {
		cfg.BaseColor = createBaseColor
	}

	if cmd.Flags().Changed("git") {
		cfg.GitInit = createGit
	}
	if cmd.Flags().Changed("build") {
		cfg.RunBuild = createBuild
	}
	if cmd.Flags().Changed("editor") {
		cfg.OpenEditor = createEditor
	}
	if cmd.Flags().Changed("dev") {
		cfg.StartDevServer = createDev
	}
	if createNoBrowser {
		cfg.OpenBrowser = false
	}
	if broadKill {
		cfg.AllowBroadKill = true
	}

	return cfg, nil
}

// runWizard walks the user through the config steps, writing into cfg.
func runWizard(styles *tui.StyleSet, cfg *config.ProjectConfig) (bool, error) {
	wizardSteps := []tui.Step{
		steps.NewNameStep(styles, cfg.Name, createDir),
		steps.NewOptionsStep(styles, cfg),
		steps.NewStyleStep(styles, cfg),
		steps.NewFeaturesStep(styles, cfg),
		steps.NewActionsStep(styles, cfg),
		steps.NewReviewStep(styles),
	}

	model := tui.NewWizardModel(styles, wizardSteps, cfg, appVersion)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return false, fmt.Errorf("running wizard: %w", err)
	}

	wizard, ok := final.(tui.WizardModel)
	if !ok {
		return false, fmt.Errorf("unexpected wizard model %T", final)
	}
	if wizard.Err() != nil {
		return false, nil
	}
	return wizard.Done(), nil
}

// runSetupView renders the pipeline through the live TUI.
func runSetupView(styles *tui.StyleSet, session *setup.Session) error {
	model := tui.NewSetupModel(styles, session)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("running setup view: %w", err)
	}
	if m, ok := final.(tui.SetupModel); ok {
		return m.Result().Err
	}
	return nil
}

// runSetupPlain prints the pipeline events as plain text, then keeps a
// started dev server running until interrupted.
func runSetupPlain(cfg *config.ProjectConfig, session *setup.Session) error {
	var result setup.Result
	logs, milestones, done := session.Logs, session.Milestones, session.Done
	for logs != nil || milestones != nil || done != nil {
		select {
		case e, ok := <-logs:
			if !ok {
				logs = nil
				continue
			}
			fmt.Println(e.Line)
		case m, ok := <-milestones:
			if !ok {
				milestones = nil
				continue
			}
			fmt.Println("==> " + string(m))
		case res, ok := <-done:
			if !ok {
				done = nil
				continue
			}
			result = res
		}
	}

	if result.Err != nil {
		return result.Err
	}
	fmt.Println(result.Message)

	if cfg.StartDevServer && serverRunning(session.DevServerState()) {
		fmt.Println("Dev server is running. Press Ctrl+C to stop it and exit.")
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
		<-sigs
		session.StopDevServer()
	}
	return nil
}

func serverRunning(state runtime.LaunchState) bool {
	return state == runtime.StateStarting || state == runtime.StateReady || state == runtime.StateTimedOut
}
