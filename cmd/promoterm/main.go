package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ElaineMBarros/promoterm/internal/api"
	"github.com/ElaineMBarros/promoterm/internal/archive"
	"github.com/ElaineMBarros/promoterm/internal/artifact"
	"github.com/ElaineMBarros/promoterm/internal/chat"
	"github.com/ElaineMBarros/promoterm/internal/config"
	"github.com/ElaineMBarros/promoterm/internal/localstore"
	"github.com/ElaineMBarros/promoterm/internal/logger"
	"github.com/ElaineMBarros/promoterm/internal/session"
	"github.com/ElaineMBarros/promoterm/internal/ui"
)

func main() {
	var configPath string

	root := &cobra.Command{
		Use:   "promoterm",
		Short: "promoterm — conversational promotion builder for the terminal",
		Long:  "Chat with the PromoAgente backend to create trade promotions, download the exported spreadsheets, and browse what was already sent.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return runChat(cfg)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ~/.promoterm/config.yaml)")

	root.AddCommand(
		statusCmd(&configPath),
		historyCmd(&configPath),
		sessionsCmd(&configPath),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		var err error
		path, err = config.DefaultConfigPath()
		if err != nil {
			return nil, err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := config.EnsureDirs(cfg); err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runChat(cfg *config.Config) error {
	kv := localstore.NewFileStore(cfg.LocalStatePath())
	sessions := session.NewStore(kv)
	recents := session.NewRecents(kv)
	saver := artifact.NewSaver(cfg.Downloads.Dir)
	controller := chat.NewController(sessions, recents, saver)
	client := api.NewClient(cfg.Backend.BaseURL)

	// The archive is a convenience; a broken database must not keep the
	// chat from starting.
	archives, err := archive.Open(cfg.ArchivePath())
	if err != nil {
		logger.Warn("transcript archive unavailable", "error", err)
		archives = nil
	} else {
		defer archives.Close()
	}

	model := ui.NewModel(client, controller, recents, archives)
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

func statusCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the backend health snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			status, err := api.NewClient(cfg.Backend.BaseURL).Status(context.Background())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "system ready\t%v\n", status.SystemReady)
			fmt.Fprintf(w, "openai\t%v (%s)\n", status.OpenAI, status.OpenAIModel)
			fmt.Fprintf(w, "agno\t%v\n", status.AgnoFramework)
			fmt.Fprintf(w, "orchestrator\t%v\n", status.Orchestrator)
			fmt.Fprintf(w, "extractor\t%v\n", status.Extractor)
			fmt.Fprintf(w, "validator\t%v\n", status.Validator)
			fmt.Fprintf(w, "summarizer\t%v\n", status.Summarizer)
			fmt.Fprintf(w, "messages stored\t%d\n", status.MessagesStored)
			fmt.Fprintf(w, "promotions\t%d\n", status.PromotionsCount)
			fmt.Fprintf(w, "environment\t%s\n", status.Environment)
			return w.Flush()
		},
	}
}

func historyCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List promotions already created on the backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			records, err := api.NewClient(cfg.Backend.BaseURL).Promotions(context.Background())
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("no promotions yet")
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TITLE\tMECHANIC\tPERIOD\tSTATUS")
			for _, rec := range records {
				title := rec.Titulo
				if title == "" {
					title = "(untitled)"
				}
				period := "-"
				if rec.PeriodoInicio != "" && rec.PeriodoFim != "" {
					period = rec.PeriodoInicio + " a " + rec.PeriodoFim
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", title, rec.Mecanica, period, rec.Status)
			}
			return w.Flush()
		},
	}
}

func sessionsCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "sessions",
		Short: "List locally archived chat sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			archives, err := archive.Open(cfg.ArchivePath())
			if err != nil {
				return err
			}
			defer archives.Close()

			sessions, err := archives.ListSessions()
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Println("no archived sessions")
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SESSION\tTITLE\tMESSAGES\tARCHIVED")
			for _, s := range sessions {
				title := s.Title
				if title == "" {
					title = "(untitled)"
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", s.ID, title, s.MessageCount, s.ArchivedAt.Format("02/01/2006 15:04"))
			}
			return w.Flush()
		},
	}
}
