package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dcm-mcn/console/internal/client"
	"github.com/dcm-mcn/console/internal/config"
	"github.com/dcm-mcn/console/internal/output"
	"github.com/dcm-mcn/console/internal/server"
	"github.com/dcm-mcn/console/internal/session"
	"github.com/dcm-mcn/console/internal/settings"
	"github.com/dcm-mcn/console/internal/store"
	"github.com/dcm-mcn/console/internal/task"
)

//nolint:gochecknoglobals // CLI flags and formatter are package-level by design
var (
	jsonOutput bool
	configPath string
	serverURL  string
	formatter  output.Formatter
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dcm",
		Short: "Admin console for the DCM influencer network",
		Long:  "dcm - Admin console for the DCM influencer network: task workflows, login, and crawler settings.",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if jsonOutput {
				formatter = output.NewJSONFormatter()
			} else {
				formatter = output.NewHumanFormatter()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Base URL of the console API")

	rootCmd.AddCommand(
		serveCmd(),
		listCmd(),
		analyzeCmd(),
		expandCmd(),
		loginCmd(),
		logoutCmd(),
		whoamiCmd(),
		settingsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func getConfig() *config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		printError(err)
	}
	return cfg
}

func getClient(cfg *config.Config) *client.Client {
	return client.New(apiBaseURL(cfg), nil)
}

// apiBaseURL derives the API base URL from the --server flag or the
// configured listen address.
func apiBaseURL(cfg *config.Config) string {
	if serverURL != "" {
		return serverURL
	}
	addr := cfg.ListenAddr
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + addr
}

func printOutput(s string) {
	os.Stdout.WriteString(s) //nolint:gosec // stdout write errors are unrecoverable
}

func printError(err error) {
	if formatter == nil {
		formatter = output.NewHumanFormatter()
	}
	os.Stdout.WriteString(formatter.FormatError(err)) //nolint:gosec // stdout write errors are unrecoverable
	os.Exit(1)
}

// serveCmd implements 'dcm serve'.
func serveCmd() *cobra.Command {
	var listenAddr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the console API server",
		Run: func(_ *cobra.Command, _ []string) {
			cfg := getConfig()
			if listenAddr != "" {
				cfg.ListenAddr = listenAddr
			}
			if err := cfg.EnsureStateDir(); err != nil {
				printError(err)
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			srv := server.New(
				store.New(cfg.TasksFile),
				session.Open(cfg.StateDir),
				settings.NewStore(cfg.StateDir),
				logger,
			)

			logger.Info("listening", "addr", cfg.ListenAddr, "tasks_file", cfg.TasksFile)
			if err := http.ListenAndServe(cfg.ListenAddr, srv.Handler()); err != nil {
				printError(err)
			}
		},
	}
	cmd.Flags().StringVar(&listenAddr, "addr", "", "Listen address (overrides config)")
	return cmd
}

// listCmd implements 'dcm list'.
func listCmd() *cobra.Command {
	var byPriority bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all tasks",
		Run: func(cmd *cobra.Command, _ []string) {
			tasks, err := getClient(getConfig()).ListTasks(cmd.Context())
			if err != nil {
				printError(err)
			}
			if byPriority {
				task.SortByPriority(tasks)
			}
			printOutput(formatter.FormatTaskList(tasks))
		},
	}
	cmd.Flags().BoolVar(&byPriority, "by-priority", false, "Sort by priority (highest first)")
	return cmd
}

// loginCmd implements 'dcm login'.
func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <email> <password>",
		Short: "Log in to the console",
		Args:  cobra.ExactArgs(2),
		Run: func(_ *cobra.Command, args []string) {
			cfg := getConfig()
			sess := session.Open(cfg.StateDir)

			user, err := sess.Login(args[0], args[1])
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatUser(user))
		},
	}
}

// logoutCmd implements 'dcm logout'.
func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear the stored session",
		Run: func(_ *cobra.Command, _ []string) {
			cfg := getConfig()
			if err := session.Open(cfg.StateDir).Logout(); err != nil {
				printError(err)
			}
			printOutput(formatter.FormatMessage("Logged out."))
		},
	}
}

// whoamiCmd implements 'dcm whoami'.
func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		Run: func(_ *cobra.Command, _ []string) {
			cfg := getConfig()
			printOutput(formatter.FormatUser(session.Open(cfg.StateDir).Current()))
		},
	}
}

// settingsCmd implements the 'dcm settings' command group.
func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage model credentials and crawler cookies",
	}

	cmd.AddCommand(
		settingsModelsCmd(),
		settingsAddModelCmd(),
		settingsUpdateModelCmd(),
		settingsRmModelCmd(),
		settingsCookiesCmd(),
		settingsAddCookieCmd(),
		settingsUpdateCookieCmd(),
		settingsRmCookieCmd(),
	)

	return cmd
}

func getSettings() *settings.Store {
	cfg := getConfig()
	return settings.NewStore(cfg.StateDir)
}

// settingsModelsCmd implements 'dcm settings models'.
func settingsModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List stored model credentials",
		Run: func(_ *cobra.Command, _ []string) {
			printOutput(formatter.FormatModels(getSettings().Models()))
		},
	}
}

// settingsAddModelCmd implements 'dcm settings add-model'.
func settingsAddModelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-model <name> <api-url> <api-key>",
		Short: "Store a model credential",
		Args:  cobra.ExactArgs(3),
		Run: func(_ *cobra.Command, args []string) {
			m, err := getSettings().AddModel(args[0], args[1], args[2])
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatMessage(fmt.Sprintf("Stored model credential %s", m.ID)))
		},
	}
}

// settingsUpdateModelCmd implements 'dcm settings update-model'.
func settingsUpdateModelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update-model <id> <name> <api-url> <api-key>",
		Short: "Replace a stored model credential",
		Args:  cobra.ExactArgs(4),
		Run: func(_ *cobra.Command, args []string) {
			m := settings.ModelCredential{ID: args[0], Name: args[1], APIURL: args[2], APIKey: args[3]}
			if err := getSettings().UpdateModel(m); err != nil {
				printError(err)
			}
			printOutput(formatter.FormatMessage(fmt.Sprintf("Updated model credential %s", m.ID)))
		},
	}
}

// settingsRmModelCmd implements 'dcm settings rm-model'.
func settingsRmModelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm-model <id>",
		Short: "Remove a model credential",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			if err := getSettings().DeleteModel(args[0]); err != nil {
				printError(err)
			}
			printOutput(formatter.FormatMessage("Removed."))
		},
	}
}

// settingsCookiesCmd implements 'dcm settings cookies'.
func settingsCookiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cookies",
		Short: "List stored crawler cookies",
		Run: func(_ *cobra.Command, _ []string) {
			printOutput(formatter.FormatCookies(getSettings().Cookies()))
		},
	}
}

// settingsAddCookieCmd implements 'dcm settings add-cookie'.
func settingsAddCookieCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-cookie <platform> <cookie>",
		Short: "Store a crawler cookie",
		Args:  cobra.ExactArgs(2),
		Run: func(_ *cobra.Command, args []string) {
			c, err := getSettings().AddCookie(args[0], args[1])
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatMessage(fmt.Sprintf("Stored cookie %s", c.ID)))
		},
	}
}

// settingsUpdateCookieCmd implements 'dcm settings update-cookie'.
func settingsUpdateCookieCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update-cookie <id> <platform> <cookie>",
		Short: "Replace a stored crawler cookie",
		Args:  cobra.ExactArgs(3),
		Run: func(_ *cobra.Command, args []string) {
			c := settings.CrawlerCookie{ID: args[0], Platform: args[1], Cookie: args[2]}
			if err := getSettings().UpdateCookie(c); err != nil {
				printError(err)
			}
			printOutput(formatter.FormatMessage(fmt.Sprintf("Updated cookie %s", c.ID)))
		},
	}
}

// settingsRmCookieCmd implements 'dcm settings rm-cookie'.
func settingsRmCookieCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm-cookie <id>",
		Short: "Remove a crawler cookie",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			if err := getSettings().DeleteCookie(args[0]); err != nil {
				printError(err)
			}
			printOutput(formatter.FormatMessage("Removed."))
		},
	}
}
