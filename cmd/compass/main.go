package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"compass/internal/commands"
	"compass/internal/config"
	"compass/internal/logger"
	"compass/internal/service"
	"compass/internal/ui"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run does everything main does but returns instead of exiting, so the log
// file is closed on every path.
func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("compass", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to config file (default: "+config.ConfigPath()+")")
	apiURL := fs.String("api", "", "document service base URL, overrides the config file")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: compass [flags]\n\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nIn the chat input:\n%s\n", commands.HelpText())
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	cfg, err := loadConfig(*configPath, *apiURL)
	if err != nil {
		return err
	}

	closer, err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.File)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closer.Close()
	logger.Infof("compass starting, service %s", cfg.Service.BaseURL)

	client := service.NewClient(cfg.Service)
	model := ui.New(ui.Options{
		Service: client,
		Health:  client,
		Accept:  cfg.Upload.Accept,
		BaseURL: client.BaseURL(),
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Errorf("program exited: %v", err)
		return err
	}
	return nil
}

func loadConfig(path, apiURL string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFrom(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if apiURL != "" {
		cfg.Service.BaseURL = apiURL
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
