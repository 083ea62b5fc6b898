package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.temporal.io/sdk/client"
	sdkworker "go.temporal.io/sdk/worker"

	"github.com/ahrav/go-solid/internal/domain"
	"github.com/ahrav/go-solid/internal/publishing"
	"github.com/ahrav/go-solid/internal/roster"
	"github.com/ahrav/go-solid/internal/worker"
	"github.com/ahrav/go-solid/internal/workflow"
)

// loadRoster reads a YAML roster from path, or returns the sample team when
// path is empty.
func loadRoster(path string) ([]domain.RoleSpec, error) {
	if path == "" {
		return roster.Sample(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer f.Close()
	return roster.Decode(f)
}

func newTotalCmd() *cobra.Command {
	var rosterPath string

	cmd := &cobra.Command{
		Use:   "total",
		Short: "Print the weighted cost of a team",
		Long: `Sums each worker's weighted contribution.

Without --roster the reference team is used:
  developer 40000, manager 700000, project_manager 9999999 → 95099991`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			specs, err := loadRoster(rosterPath)
			if err != nil {
				return err
			}
			team, err := roster.DefaultRegistry().Build(specs)
			if err != nil {
				return err
			}

			total := domain.NewAggregator(team...).Total()
			log.Debug("Calculated team cost", "workers", len(team), "total_cents", int64(total))

			fmt.Fprintf(cmd.OutOrStdout(), "%d (%s)\n", int64(total), total)
			return nil
		},
	}
	cmd.Flags().StringVar(&rosterPath, "roster", "", "path to a YAML roster file")
	return cmd
}

func newAccessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "access <admin|moderator|guest>",
		Short: "Check whether a user kind has system access",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := domain.ParseUser(domain.UserKind(args[0]))
			if err != nil {
				return err
			}
			if err := domain.CheckAccess(user); err != nil {
				log.Warn("Access refused", "user_kind", user.Kind().String())
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "You have access!")
			return nil
		},
	}
}

func newConvertCmd() *cobra.Command {
	var title, content, format string

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Render a post as JSON or XML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			post := domain.NewPost(title, content)
			if err := post.Validate(); err != nil {
				return fmt.Errorf("invalid post: %w", err)
			}
			out, err := publishing.NewPostsConverter(post).Convert(publishing.Format(format))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "Hello world!", "post title")
	cmd.Flags().StringVar(&content, "content", "This is my first posts!", "post content")
	cmd.Flags().StringVar(&format, "format", string(publishing.FormatJSON), "output format: json or xml")
	return cmd
}

func newShapeCmd() *cobra.Command {
	var width, length, height float64

	rect := &cobra.Command{
		Use:   "rect",
		Short: "Print the area of a rectangle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := domain.Rect{Width: width, Height: height}
			if err := r.Validate(); err != nil {
				return err
			}
			return printShape(cmd, r)
		},
	}

	pyramid := &cobra.Command{
		Use:   "pyramid",
		Short: "Print the surface area and volume of a rectangular pyramid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := domain.Pyramid{BaseWidth: width, BaseLength: length, Height: height}
			if err := p.Validate(); err != nil {
				return err
			}
			return printShape(cmd, p)
		},
	}

	cmd := &cobra.Command{
		Use:   "shape",
		Short: "Measure shapes",
	}
	cmd.PersistentFlags().Float64Var(&width, "width", 1, "width (base width for pyramids)")
	cmd.PersistentFlags().Float64Var(&length, "length", 1, "base length (pyramids only)")
	cmd.PersistentFlags().Float64Var(&height, "height", 1, "height")
	cmd.AddCommand(rect, pyramid)
	return cmd
}

// printShape prints the area, and the volume when s is also a Solid.
func printShape(cmd *cobra.Command, s domain.Shape) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "area: %.4f\n", s.Area())
	if solid, ok := s.(domain.Solid); ok {
		fmt.Fprintf(out, "volume: %.4f\n", solid.Volume())
	}
	return nil
}

func newWorkerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Run the payroll Temporal worker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return worker.Run(cfg, log, sdkworker.InterruptCh())
		},
	}
}

func newRunCmd() *cobra.Command {
	var rosterPath, requester string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start a payroll workflow and wait for its result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			specs, err := loadRoster(rosterPath)
			if err != nil {
				return err
			}

			c, err := client.Dial(worker.ClientOptions(cfg, log))
			if err != nil {
				return fmt.Errorf("failed to dial temporal at %s: %w", cfg.TemporalHost, err)
			}
			defer c.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			idemKey := uuid.NewString()
			run, err := c.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
				ID:        "payroll-" + idemKey,
				TaskQueue: cfg.TaskQueue,
			}, workflow.PayrollWorkflow, domain.PayrollRequest{
				Requester:            domain.UserKind(requester),
				Workers:              specs,
				ClientIdempotencyKey: idemKey,
			})
			if err != nil {
				return fmt.Errorf("start payroll workflow: %w", err)
			}
			log.Info("Started payroll workflow", "workflow_id", run.GetID(), "run_id", run.GetRunID())

			var result domain.PayrollResult
			if err := run.Get(ctx, &result); err != nil {
				if errors.Is(err, context.DeadlineExceeded) {
					return fmt.Errorf("payroll workflow did not finish within %s: %w", timeout, err)
				}
				return fmt.Errorf("payroll workflow failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d (%s)\n", int64(result.TotalCents), result.TotalCents)
			return nil
		},
	}
	cmd.Flags().StringVar(&rosterPath, "roster", "", "path to a YAML roster file")
	cmd.Flags().StringVar(&requester, "as", string(domain.UserAdmin), "requesting user kind")
	cmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "how long to wait for the result")
	return cmd
}
