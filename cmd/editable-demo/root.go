package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iw2rmb/editable/internal/config"
	"github.com/iw2rmb/editable/internal/log"
)

func init() {
	// Query the background color before the program owns stdin.
	_ = lipgloss.HasDarkBackground()
}

var (
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "editable-demo",
	Short: "Edit rich text in the terminal with undo history",
	Long: `editable-demo hosts an editable widget over an in-memory element.
Key presses become input/paste/keyup events; the widget records history
snapshots and the toolbar mirrors command state.`,
	SilenceUsage: true,
	RunE:         runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/editable/config.yaml)")
	rootCmd.Flags().Bool("debug", false, "write debug logs")
	rootCmd.Flags().Int("history-limit", 0, "number of undo snapshots to keep")
	rootCmd.Flags().Bool("disabled", false, "start with editing disabled")
	rootCmd.Flags().Bool("save", false, "save the edited content back to the config file on exit")

	_ = viper.BindPFlag("log.debug", rootCmd.Flags().Lookup("debug"))
	_ = viper.BindPFlag("start_disabled", rootCmd.Flags().Lookup("disabled"))
}

func initConfig() {
	setDefaults(viper.GetViper(), config.Defaults())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, _ := os.UserHomeDir()
		viper.AddConfigPath(filepath.Join(home, ".config", "editable"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix("EDITABLE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			home, _ := os.UserHomeDir()
			path := filepath.Join(home, ".config", "editable", "config.yaml")
			if writeErr := config.WriteDefaultConfig(path); writeErr == nil {
				viper.SetConfigFile(path)
				_ = viper.ReadInConfig()
			}
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func setDefaults(v *viper.Viper, d config.Config) {
	v.SetDefault("content", d.Content)
	v.SetDefault("history_limit", d.HistoryLimit)
	v.SetDefault("start_disabled", d.StartDisabled)
	v.SetDefault("ui.show_toolbar", d.UI.ShowToolbar)
	v.SetDefault("ui.show_status", d.UI.ShowStatus)
	v.SetDefault("ui.show_help", d.UI.ShowHelp)
	v.SetDefault("ui.mouse", d.UI.Mouse)
	v.SetDefault("theme.highlight", d.Theme.Highlight)
	v.SetDefault("theme.subtle", d.Theme.Subtle)
	v.SetDefault("theme.caret", d.Theme.Caret)
	v.SetDefault("log.debug", d.Log.Debug)
	v.SetDefault("log.path", d.Log.Path)
	v.SetDefault("log.level", d.Log.Level)
}

func runApp(cmd *cobra.Command, _ []string) error {
	if n, _ := cmd.Flags().GetInt("history-limit"); n > 0 {
		cfg.HistoryLimit = n
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Log.Debug || os.Getenv("EDITABLE_DEBUG") != "" {
		cleanup, err := log.InitWithTeaLog(cfg.Log.Path, "editable")
		if err != nil {
			return fmt.Errorf("initializing log: %w", err)
		}
		defer cleanup()
		log.SetMinLevel(log.ParseLevel(cfg.Log.Level))
		log.Info(log.CatConfig, "editable-demo starting", "config", viper.ConfigFileUsed(), "history_limit", cfg.HistoryLimit)
	}

	model := newApp(cfg)
	defer model.Close()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		path := viper.ConfigFileUsed()
		if path == "" {
			return fmt.Errorf("--save: no config file in use")
		}
		content := final.(app).editor.Widget().Contents()
		if err := config.SaveContent(path, content); err != nil {
			return fmt.Errorf("saving content: %w", err)
		}
	}
	return nil
}
