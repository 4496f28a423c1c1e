package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/santiagomed/politica/config"
	"github.com/santiagomed/politica/core"
	"github.com/santiagomed/politica/fs"
	"github.com/santiagomed/politica/llm"
	"github.com/santiagomed/politica/logger"
	"github.com/santiagomed/politica/policy"
	"github.com/spf13/cobra"
)

type flags struct {
	config   string
	request  string
	provider string
	model    string
	output   string
}

var rootCmd = &cobra.Command{
	Use:   "politica",
	Short: "Politica generates return and exchange policies for online stores",
	Long:  `Politica collects your store's return and exchange rules in a terminal form and uses a generative model to write a complete policy, ready to copy or save as .txt.`,
	Run: func(cmd *cobra.Command, args []string) {
		f, err := parseFlags(cmd)
		if err != nil {
			fmt.Printf("Error parsing flags: %v\n", err)
			os.Exit(1)
		}

		if err := run(f); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.Flags().StringP("config", "c", "", "Directory containing a config.yaml")
	rootCmd.Flags().StringP("request", "r", "", "File with pre-filled form values (yaml, json or toml)")
	rootCmd.Flags().StringP("provider", "p", "", "Text generation provider: gemini, openai or anthropic")
	rootCmd.Flags().StringP("model", "m", "", "Model name used for generation")
	rootCmd.Flags().StringP("output", "o", "", "Directory where exported policies are written")
}

func parseFlags(cmd *cobra.Command) (flags, error) {
	var f flags
	for name, dst := range map[string]*string{
		"config":   &f.config,
		"request":  &f.request,
		"provider": &f.provider,
		"model":    &f.model,
		"output":   &f.output,
	} {
		v, err := cmd.Flags().GetString(name)
		if err != nil {
			return flags{}, err
		}
		*dst = v
	}
	return f, nil
}

func run(f flags) error {
	cfg, err := config.LoadConfig(f.config)
	if err != nil {
		return err
	}
	if f.provider != "" {
		cfg.Provider = f.provider
	}
	if f.model != "" {
		cfg.ModelName = f.model
	}
	if f.output != "" {
		cfg.OutputDir = f.output
	}

	if err := logger.InitLogger(cfg.LogFile); err != nil {
		fmt.Printf("Warning: logging disabled: %v\n", err)
	}
	log := logger.GetLogger()
	log.Debug("Initializing Politica CLI")

	if err := cfg.Validate(); err != nil {
		log.Error(fmt.Sprintf("Invalid configuration: %v", err))
		return err
	}

	req := policy.DefaultRequest()
	if f.request != "" {
		req, err = config.LoadRequest(f.request)
		if err != nil {
			return err
		}
	}

	client, err := llm.NewClient(context.Background(), cfg, log)
	if err != nil {
		return err
	}

	form := core.NewForm(req, log)
	presenter := core.NewPresenter(core.SystemClipboard{}, fs.NewOsFileSystem(), cfg.OutputDir, log)

	p := tea.NewProgram(newModel(form, presenter, client, log), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	log.Debug("User exited the application")
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
