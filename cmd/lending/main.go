package main

import (
	"context"
	"io/fs"
	stdLog "log"
	"os"

	"github.com/Astemirdum/lending-service/lending/app"
	"github.com/Astemirdum/lending-service/lending/config"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		envFile string
		debug   bool
		dataDir string
	)
	options := func() []config.Option {
		var ops []config.Option
		if debug {
			ops = append(ops, config.WithLogLevel(zapcore.DebugLevel))
		}
		if dataDir != "" {
			ops = append(ops, config.WithDataDir(dataDir))
		}
		return ops
	}

	root := &cobra.Command{
		Use:          "lending",
		Short:        "Book and CD lending service",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
				stdLog.Fatal("load envs from .env ", err)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "debug logging")
	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", "document directory for the blob driver")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the reminder loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(cmd.Context(), config.NewConfig(options()...))
			if err != nil {
				return err
			}
			defer a.Close()
			return a.Run(cmd.Context())
		},
	}

	var days int
	remind := &cobra.Command{
		Use:   "remind",
		Short: "Send overdue and return reminders once",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewConfig(options()...)
			if !cmd.Flags().Changed("days") {
				days = cfg.Reminder.DaysBefore
			}
			a, err := app.New(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.Close()
			r := a.Remind(cmd.Context(), days)
			cmd.Printf("overdue reminders: %d, return reminders: %d\n", r.Overdue, r.Return)
			return nil
		},
	}
	remind.Flags().IntVar(&days, "days", 0, "also remind loans due within this many days")

	var (
		email string
		role  string
	)
	promote := &cobra.Command{
		Use:   "promote",
		Short: "Set the role of a registered user, e.g. to seed the first admin",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(cmd.Context(), config.NewConfig(options()...))
			if err != nil {
				return err
			}
			defer a.Close()
			got, err := a.SetRole(cmd.Context(), email, role)
			if err != nil {
				return err
			}
			cmd.Printf("%s is now %s\n", email, got)
			return nil
		},
	}
	promote.Flags().StringVar(&email, "email", "", "email of the registered user")
	promote.Flags().StringVar(&role, "role", "ADMIN", "ADMIN or USER")
	_ = promote.MarkFlagRequired("email")

	root.AddCommand(serve, remind, promote)
	return root
}
