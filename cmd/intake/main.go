// Command intake is the terminal front end of the employee intake form. It
// validates the record locally and submits it to the intake API.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/employee-intake/intake-service/internal/core/domain"
	"github.com/employee-intake/intake-service/internal/intake/form"
	"github.com/employee-intake/intake-service/internal/intake/notify"
	"github.com/employee-intake/intake-service/internal/intake/submission"
	"github.com/employee-intake/intake-service/internal/pkg/config"
	"github.com/employee-intake/intake-service/pkg/logger"
)

const (
	Version = "0.1.0"
	appName = "intake"
)

var (
	errBlocked  = errors.New("record failed validation")
	errRejected = errors.New("submission was not accepted")
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Employee intake form client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(submitCmd(), validateCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})

	return cmd
}

// fieldFlags binds one string flag per form field, named after the wire name
// with dashes.
type fieldFlags map[string]*string

var flagNames = map[string]string{
	domain.FieldEmployeeID:    "employee-id",
	domain.FieldName:          "name",
	domain.FieldEmail:         "email",
	domain.FieldPhoneNumber:   "phone-number",
	domain.FieldDepartment:    "department",
	domain.FieldDateOfJoining: "date-of-joining",
	domain.FieldRole:          "role",
}

func bindFields(cmd *cobra.Command) fieldFlags {
	ff := make(fieldFlags, len(domain.Fields))
	for _, field := range domain.Fields {
		ff[field] = cmd.Flags().String(flagNames[field], "", form.Labels[field])
	}
	return ff
}

func (ff fieldFlags) fill(f *form.Form) error {
	for _, field := range domain.Fields {
		if err := f.Set(field, *ff[field]); err != nil {
			return err
		}
	}
	return nil
}

func submitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Validate the record and register it with the intake API",
	}
	fields := bindFields(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.Load(ctx)
		if err != nil {
			return err
		}
		log := logger.New(logger.Options{
			Level:   cfg.LogLevel,
			Service: appName,
			Output:  cmd.ErrOrStderr(),
		})

		f := form.New()
		if err := fields.fill(f); err != nil {
			return err
		}

		client := submission.NewClient(cfg.URL, cfg.Timeout, log)
		notifier := notify.Multi{
			notify.NewWriterNotifier(cmd.OutOrStdout()),
			notify.NewLogNotifier(log),
		}

		res := form.NewController(f, client, notifier).OnSubmit(ctx)
		switch {
		case res.Blocked:
			return errBlocked
		case !res.Outcome.Success:
			return errRejected
		}
		return nil
	}
	return cmd
}

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Run the form rules without submitting",
	}
	fields := bindFields(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		f := form.New()
		if err := fields.fill(f); err != nil {
			return err
		}

		errs := f.Missing()
		if len(errs) == 0 {
			errs = form.Validate(f.Record())
		}

		n := notify.NewWriterNotifier(cmd.OutOrStdout())
		for _, e := range errs {
			n.Notify(e.Message, notify.SeverityError)
		}
		if len(errs) > 0 {
			return errBlocked
		}
		n.Notify("Record is valid.", notify.SeveritySuccess)
		return nil
	}
	return cmd
}
