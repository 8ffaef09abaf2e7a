package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"ojt-tracker/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	app    *App
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(app *App, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		app:    app,
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "ojt",
		Short: "A command-line OJT hours tracker",
		Long: `OJT Tracker (ojt) is a command-line application for recording on-the-job
training hours and tracking them against a required total.

Each calendar day holds up to three shifts (morning, afternoon, evening).
A shift's hours are derived from its time-in and time-out; shifts crossing
midnight are handled automatically.

EXAMPLES:
  ojt login                                        # Sign in with your Google account
  ojt add 2026-09-01 morning=08:00-12:00           # Record a morning shift
  ojt add 2026-09-01 morning=08:00-12:00 afternoon=13:00-17:00
  ojt add 2026-09-02 evening=22:00-06:00           # Overnight shift, 8 hours
  ojt list                                         # List recorded entries
  ojt delete <id>                                  # Delete an entry
  ojt progress                                     # Show completion against the quota
  ojt quota                                        # Show the required hours
  ojt quota 600                                    # Change the required hours
  ojt logout                                       # Sign out

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Database Configuration:
    OJT_DB_DIR                             Database directory (default: ~/.ojt)
    OJT_DB_FILENAME                        Database filename (default: ojt.db)
    OJT_DB_QUERY_TIMEOUT                   Query timeout (default: 10s)
    OJT_DB_WRITE_TIMEOUT                   Write timeout (default: 5s)

  Auth Configuration:
    OJT_AUTH_CLIENT_ID                     OAuth client id
    OJT_AUTH_CLIENT_SECRET                 OAuth client secret
    OJT_AUTH_DIR                           Credential cache directory (default: ~/.ojt/auth)

  Application Configuration:
    OJT_APP_TIMEOUT                        Application timeout (default: 60s)
    OJT_APP_VERBOSE                        Enable verbose output (default: false)
    OJT_DEBUG                              Enable debug logging (default: false)

GETTING HELP:
  ojt [command] --help                     # Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("db-dir", "", "Database directory (overrides OJT_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides OJT_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides OJT_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides OJT_DB_WRITE_TIMEOUT)")

	flags.String("auth-dir", "", "Credential cache directory (overrides OJT_AUTH_DIR)")

	flags.Duration("app-timeout", 0, "Application timeout (overrides OJT_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides OJT_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with your Google account",
		Long:  "Open a browser window to sign in. The resulting session is cached locally until logout.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Sign-in waits for the browser round trip
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout()*2)
			defer cancel()

			return r.app.Run(ctx, append([]string{"login"}, args...))
		},
	}

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear cached credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return r.app.Run(ctx, append([]string{"logout"}, args...))
		},
	}

	addCmd := &cobra.Command{
		Use:   "add <date> [morning=IN-OUT] [afternoon=IN-OUT] [evening=IN-OUT]",
		Short: "Record a day's shifts",
		Long: `Record up to three shifts for a calendar date. Times use 24-hour HH:MM.
At least one shift must contribute hours.

Examples:
  ojt add 2026-09-01 morning=08:00-12:00
  ojt add 2026-09-01 morning=08:00-12:00 afternoon=13:00-17:00
  ojt add 2026-09-02 evening=22:00-06:00   # crosses midnight, counts 8 hours`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return r.app.Run(ctx, append([]string{"add"}, args...))
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded entries",
		Long:  "List recorded entries, most recent date first, with per-shift times and daily totals.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return r.app.Run(ctx, append([]string{"list"}, args...))
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an entry",
		Long:  "Delete an entry by id. You will be asked to confirm; this operation cannot be undone.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Confirmation prompts may need longer than a plain write
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout()*2)
			defer cancel()

			return r.app.Run(ctx, append([]string{"delete"}, args...))
		},
	}

	progressCmd := &cobra.Command{
		Use:   "progress",
		Short: "Show completion against the required hours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return r.app.Run(ctx, append([]string{"progress"}, args...))
		},
	}

	quotaCmd := &cobra.Command{
		Use:   "quota [hours]",
		Short: "Show or change the required hours",
		Long: `Show the required hour total, or set a new one.

Examples:
  ojt quota        # Show the current required hours
  ojt quota 600    # Set the required hours to 600`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return r.app.Run(ctx, append([]string{"quota"}, args...))
		},
	}

	r.cmd.AddCommand(
		loginCmd,
		logoutCmd,
		addCmd,
		listCmd,
		deleteCmd,
		progressCmd,
		quotaCmd,
	)
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		r.config.Database.Dir = dbDir
	}
	if dbFilename, _ := flags.GetString("db-filename"); dbFilename != "" {
		r.config.Database.Filename = dbFilename
	}
	if queryTimeout, _ := flags.GetDuration("db-query-timeout"); queryTimeout > 0 {
		r.config.Database.QueryTimeout = queryTimeout
	}
	if writeTimeout, _ := flags.GetDuration("db-write-timeout"); writeTimeout > 0 {
		r.config.Database.WriteTimeout = writeTimeout
	}

	if authDir, _ := flags.GetString("auth-dir"); authDir != "" {
		r.config.Auth.Dir = authDir
	}

	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		r.config.Application.Timeout = appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return nil
}
