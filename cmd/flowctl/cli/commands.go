package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	ucli "github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/odyssey-erp/finflow/internal/flow"
	"github.com/odyssey-erp/finflow/internal/flow/statements"
	"github.com/odyssey-erp/finflow/internal/view"
)

const (
	fJSON      = "json"
	fYAML      = "yaml"
	fActivity  = "activity"
	fAmount    = "amount"
	fTimestamp = "timestamp"
	fSize      = "size"
)

// Env supplies the dependencies each command opens lazily.
type Env struct {
	Stdout   io.Writer
	OpenRepo func(ctx context.Context) (flow.Repository, func(), error)
	OpenJobs func(ctx context.Context) (*JobsCLI, error)
}

// NewApp builds the flowctl command tree.
func NewApp(env Env) *ucli.App {
	return &ucli.App{
		Name:      "flowctl",
		Usage:     "inspect and edit the persisted financial flow",
		Writer:    env.Stdout,
		ErrWriter: env.Stdout,
		Commands: []*ucli.Command{
			{
				Name:  "activities",
				Usage: "list activity tags with their group and description",
				Flags: []ucli.Flag{&ucli.BoolFlag{Name: fJSON}},
				Action: func(c *ucli.Context) error {
					return printActivities(env.Stdout, c.Bool(fJSON))
				},
			},
			{
				Name:  "show",
				Usage: "print the financial statements",
				Flags: []ucli.Flag{
					&ucli.BoolFlag{Name: fJSON, Usage: "print the raw snapshot as JSON"},
					&ucli.BoolFlag{Name: fYAML, Usage: "print the statements as YAML"},
				},
				Action: func(c *ucli.Context) error {
					return withFlow(c.Context, env, func(fc *FlowCLI) error {
						snap, err := fc.Load(c.Context)
						if err != nil {
							return err
						}
						switch {
						case c.Bool(fJSON):
							return writeJSON(env.Stdout, snap)
						case c.Bool(fYAML):
							return writeYAML(env.Stdout, statements.Build(snap))
						}
						return writeText(env.Stdout, snap)
					})
				},
			},
			{
				Name:  "submit",
				Usage: "record a transaction",
				Flags: []ucli.Flag{
					&ucli.StringFlag{Name: fActivity, Aliases: []string{"a"}, Required: true},
					&ucli.Float64Flag{Name: fAmount, Aliases: []string{"n"}, Required: true},
				},
				Action: func(c *ucli.Context) error {
					return withFlow(c.Context, env, func(fc *FlowCLI) error {
						snap, err := fc.Submit(c.Context, c.String(fActivity), c.Float64(fAmount))
						if err != nil {
							return err
						}
						tx := snap.Transactions[0]
						_, err = fmt.Fprintf(env.Stdout, "recorded %s %s at %s\n", tx.Activity, tx.Amount, tx.Timestamp)
						return err
					})
				},
			},
			{
				Name:  "remove",
				Usage: "remove a transaction by timestamp",
				Flags: []ucli.Flag{&ucli.StringFlag{Name: fTimestamp, Aliases: []string{"t"}, Required: true}},
				Action: func(c *ucli.Context) error {
					return withFlow(c.Context, env, func(fc *FlowCLI) error {
						if _, err := fc.Remove(c.Context, c.String(fTimestamp)); err != nil {
							return err
						}
						_, err := fmt.Fprintf(env.Stdout, "removed %s\n", c.String(fTimestamp))
						return err
					})
				},
			},
			{
				Name:  "undo",
				Usage: "restore the last removed transaction",
				Action: func(c *ucli.Context) error {
					return withFlow(c.Context, env, func(fc *FlowCLI) error {
						before, err := fc.Load(c.Context)
						if err != nil {
							return err
						}
						if !before.CanUndo() {
							_, err = fmt.Fprintln(env.Stdout, "nothing to undo")
							return err
						}
						if _, err := fc.Undo(c.Context); err != nil {
							return err
						}
						_, err = fmt.Fprintf(env.Stdout, "restored %s\n", before.LastRemovedTransaction.Timestamp)
						return err
					})
				},
			},
			{
				Name:  "reset",
				Usage: "discard all balances and transactions",
				Action: func(c *ucli.Context) error {
					return withFlow(c.Context, env, func(fc *FlowCLI) error {
						if _, err := fc.Reset(c.Context); err != nil {
							return err
						}
						_, err := fmt.Fprintln(env.Stdout, "reset")
						return err
					})
				},
			},
			{
				Name:  "jobs",
				Usage: "inspect the async persistence queue",
				Subcommands: []*ucli.Command{
					{
						Name:  "stats",
						Usage: "print queue counters",
						Flags: []ucli.Flag{&ucli.BoolFlag{Name: fJSON}},
						Action: func(c *ucli.Context) error {
							return withJobs(c.Context, env, func(jc *JobsCLI) error {
								stats, err := jc.InspectQueue(c.Context)
								if err != nil {
									return err
								}
								if c.Bool(fJSON) {
									return writeJSON(env.Stdout, stats)
								}
								tw := tabwriter.NewWriter(env.Stdout, 0, 4, 2, ' ', 0)
								fmt.Fprintf(tw, "queue\t%s\n", stats.Queue)
								fmt.Fprintf(tw, "pending\t%d\n", stats.Pending)
								fmt.Fprintf(tw, "active\t%d\n", stats.Active)
								fmt.Fprintf(tw, "scheduled\t%d\n", stats.Scheduled)
								fmt.Fprintf(tw, "retry\t%d\n", stats.Retry)
								fmt.Fprintf(tw, "archived\t%d\n", stats.Archived)
								fmt.Fprintf(tw, "processed\t%d\n", stats.Processed)
								fmt.Fprintf(tw, "failed\t%d\n", stats.Failed)
								return tw.Flush()
							})
						},
					},
					{
						Name:  "retry",
						Usage: "list tasks waiting to be retried",
						Flags: []ucli.Flag{&ucli.IntFlag{Name: fSize, Value: 10}},
						Action: func(c *ucli.Context) error {
							return withJobs(c.Context, env, func(jc *JobsCLI) error {
								tasks, err := jc.ListRetry(c.Context, c.Int(fSize))
								if err != nil {
									return err
								}
								for _, t := range tasks {
									fmt.Fprintf(env.Stdout, "%s\t%s\tretried=%d\t%s\n", t.ID, t.Type, t.Retried, t.LastErr)
								}
								return nil
							})
						},
					},
				},
			},
		},
	}
}

func withFlow(ctx context.Context, env Env, fn func(*FlowCLI) error) error {
	if env.OpenRepo == nil {
		return errors.New("flowctl: repository not configured")
	}
	repo, closeRepo, err := env.OpenRepo(ctx)
	if err != nil {
		return err
	}
	if closeRepo != nil {
		defer closeRepo()
	}
	fc, err := NewFlowCLI(repo)
	if err != nil {
		return err
	}
	return fn(fc)
}

func withJobs(ctx context.Context, env Env, fn func(*JobsCLI) error) error {
	if env.OpenJobs == nil {
		return errors.New("flowctl: jobs inspector not configured")
	}
	jc, err := env.OpenJobs(ctx)
	if err != nil {
		return err
	}
	defer jc.Close()
	return fn(jc)
}

func printActivities(w io.Writer, asJSON bool) error {
	all := flow.Activities()
	if asJSON {
		type item struct {
			ID          flow.Activity `json:"id"`
			Group       flow.Group    `json:"group"`
			Description string        `json:"description"`
		}
		out := make([]item, 0, len(all))
		for _, a := range all {
			out = append(out, item{ID: a, Group: a.Group(), Description: flow.DescribeActivity(a)})
		}
		return writeJSON(w, out)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, a := range all {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", a, a.Group().Label(), flow.DescribeActivity(a))
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type yamlRow struct {
	ID       string    `yaml:"id"`
	Label    string    `yaml:"label"`
	Value    float64   `yaml:"value"`
	Children []yamlRow `yaml:"children,omitempty"`
}

type yamlStatement struct {
	Title    string             `yaml:"title"`
	Sections []yamlRow          `yaml:"sections"`
	Totals   map[string]float64 `yaml:"totals,omitempty"`
}

func toYAMLRows(rows []statements.Row) []yamlRow {
	out := make([]yamlRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, yamlRow{ID: r.ID, Label: r.Label, Value: r.Value.Float64(), Children: toYAMLRows(r.Children)})
	}
	return out
}

func toYAMLStatement(s statements.Statement) yamlStatement {
	out := yamlStatement{Title: s.Title, Sections: toYAMLRows(s.Sections)}
	if len(s.Totals) > 0 {
		out.Totals = make(map[string]float64, len(s.Totals))
		for _, t := range s.Totals {
			out.Totals[t.Label] = t.Value.Float64()
		}
	}
	return out
}

func writeYAML(w io.Writer, set statements.Set) error {
	doc := []yamlStatement{
		toYAMLStatement(set.CashFlow),
		toYAMLStatement(set.Income),
		toYAMLStatement(set.Balance),
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func writeText(w io.Writer, snap flow.Snapshot) error {
	set := statements.Build(snap)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	for _, st := range []statements.Statement{set.CashFlow, set.Income, set.Balance} {
		fmt.Fprintf(tw, "%s\t\n", strings.ToUpper(st.Title))
		statements.Walk(st.Sections, func(r statements.Row, depth int) {
			fmt.Fprintf(tw, "%s%s\t%s\t\n", strings.Repeat("  ", depth), r.Label, view.FormatMoney(r.Value))
		})
		for _, t := range st.Totals {
			fmt.Fprintf(tw, "%s\t%s\t\n", t.Label, view.FormatMoney(t.Value))
		}
		fmt.Fprintln(tw, "\t")
	}
	fmt.Fprintf(tw, "Transactions: %d\t\n", len(snap.Transactions))
	return tw.Flush()
}
