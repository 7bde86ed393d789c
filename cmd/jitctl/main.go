package main

import (
	"fmt"
	"os"
	"time"

	ucli "github.com/urfave/cli/v2"

	"github.com/privops/elevate/cli"
	"github.com/privops/elevate/models"
)

func clientFromContext(ctx *ucli.Context) *cli.Client {
	return cli.New(ctx.String("server"), ctx.String("token"))
}

func main() {
	app := &ucli.App{
		Name:  "jitctl",
		Usage: "request and manage just-in-time privileged access",
		Flags: []ucli.Flag{
			&ucli.StringFlag{
				Name:    "server",
				Usage:   "elevation server base URL",
				Value:   "https://localhost:8443",
				EnvVars: []string{"ELEVATE_SERVER"},
			},
			&ucli.StringFlag{
				Name:    "token",
				Usage:   "API token or master key",
				EnvVars: []string{"ELEVATE_TOKEN"},
			},
		},
		Commands: []*ucli.Command{
			{
				Name:  "elevate",
				Usage: "request activation of an eligible role",
				Flags: []ucli.Flag{
					&ucli.StringFlag{Name: "role", Required: true, Usage: "role id to activate"},
					&ucli.StringFlag{Name: "scope", Required: true, Usage: "scope of the activation"},
					&ucli.Float64Flag{Name: "hours", Value: 1, Usage: "requested duration in hours"},
					&ucli.StringFlag{Name: "justification", Aliases: []string{"j"}, Required: true},
					&ucli.StringFlag{Name: "ticket", Usage: "ticket number"},
					&ucli.StringFlag{Name: "ticket-system", Usage: "ticket system the ticket belongs to"},
				},
				Action: func(ctx *ucli.Context) error {
					result, err := clientFromContext(ctx).Elevate(models.APIActivationRequest{
						RoleID:        ctx.String("role"),
						Scope:         ctx.String("scope"),
						DurationHours: ctx.Float64("hours"),
						Justification: ctx.String("justification"),
						TicketNumber:  ctx.String("ticket"),
						TicketSystem:  ctx.String("ticket-system"),
					})
					if err != nil {
						return err
					}
					cli.PrettyPrint(result)
					return nil
				},
			},
			{
				Name:  "extend",
				Usage: "extend an active elevation by an additional duration",
				Flags: []ucli.Flag{
					&ucli.StringFlag{Name: "role", Required: true},
					&ucli.StringFlag{Name: "scope", Required: true},
					&ucli.Float64Flag{Name: "hours", Value: 1, Usage: "additional duration in hours"},
					&ucli.StringFlag{Name: "justification", Aliases: []string{"j"}, Required: true},
					&ucli.StringFlag{Name: "ticket"},
					&ucli.StringFlag{Name: "ticket-system"},
				},
				Action: func(ctx *ucli.Context) error {
					result, err := clientFromContext(ctx).Extend(models.APIActivationRequest{
						RoleID:        ctx.String("role"),
						Scope:         ctx.String("scope"),
						DurationHours: ctx.Float64("hours"),
						Justification: ctx.String("justification"),
						TicketNumber:  ctx.String("ticket"),
						TicketSystem:  ctx.String("ticket-system"),
					})
					if err != nil {
						return err
					}
					cli.PrettyPrint(result)
					return nil
				},
			},
			{
				Name:      "status",
				Usage:     "show the canonical status of a request",
				ArgsUsage: "<request-id>",
				Action: func(ctx *ucli.Context) error {
					if ctx.NArg() != 1 {
						return fmt.Errorf("expected exactly one request id")
					}
					result, err := clientFromContext(ctx).Status(ctx.Args().First())
					if err != nil {
						return err
					}
					cli.PrettyPrint(result)
					return nil
				},
			},
			{
				Name:  "deactivate",
				Usage: "end an active elevation early",
				Flags: []ucli.Flag{
					&ucli.StringFlag{Name: "role", Required: true},
					&ucli.StringFlag{Name: "scope"},
				},
				Action: func(ctx *ucli.Context) error {
					if err := clientFromContext(ctx).Deactivate(ctx.String("role"), ctx.String("scope")); err != nil {
						return err
					}
					fmt.Println("deactivated")
					return nil
				},
			},
			{
				Name:  "roles",
				Usage: "list roles you are eligible to activate",
				Flags: []ucli.Flag{
					&ucli.StringFlag{Name: "scope"},
				},
				Action: func(ctx *ucli.Context) error {
					roles, err := clientFromContext(ctx).EligibleRoles(ctx.String("scope"))
					if err != nil {
						return err
					}
					cli.PrettyPrint(roles)
					return nil
				},
			},
			{
				Name:  "grants",
				Usage: "list your currently active grants",
				Action: func(ctx *ucli.Context) error {
					grants, err := clientFromContext(ctx).ActiveGrants()
					if err != nil {
						return err
					}
					cli.PrettyPrint(grants)
					return nil
				},
			},
			{
				Name:  "approvals",
				Usage: "list and decide pending approvals",
				Subcommands: []*ucli.Command{
					{
						Name:  "list",
						Usage: "list requests waiting on your decision",
						Action: func(ctx *ucli.Context) error {
							pending, err := clientFromContext(ctx).PendingApprovals()
							if err != nil {
								return err
							}
							cli.PrettyPrint(pending)
							return nil
						},
					},
					{
						Name:      "approve",
						Usage:     "approve a pending request",
						ArgsUsage: "<request-id>",
						Flags: []ucli.Flag{
							&ucli.StringFlag{Name: "comment"},
						},
						Action: func(ctx *ucli.Context) error {
							if ctx.NArg() != 1 {
								return fmt.Errorf("expected exactly one request id")
							}
							return clientFromContext(ctx).Decide(ctx.Args().First(), true, ctx.String("comment"))
						},
					},
					{
						Name:      "deny",
						Usage:     "deny a pending request, a reason is required",
						ArgsUsage: "<request-id>",
						Flags: []ucli.Flag{
							&ucli.StringFlag{Name: "reason", Required: true},
						},
						Action: func(ctx *ucli.Context) error {
							if ctx.NArg() != 1 {
								return fmt.Errorf("expected exactly one request id")
							}
							return clientFromContext(ctx).Decide(ctx.Args().First(), false, ctx.String("reason"))
						},
					},
				},
			},
			{
				Name:  "netaccess",
				Usage: "request a bounded network access window on a resource",
				Flags: []ucli.Flag{
					&ucli.StringFlag{Name: "resource", Required: true, Usage: "target resource id"},
					&ucli.StringFlag{Name: "address", Usage: "resource address used for connection hints"},
					&ucli.IntSliceFlag{Name: "port", Required: true, Usage: "port to open, repeatable"},
					&ucli.StringFlag{Name: "protocol", Value: "tcp"},
					&ucli.StringFlag{Name: "source-ip", Usage: "allowed source address"},
					&ucli.Float64Flag{Name: "hours", Usage: "window duration in hours, policy default when omitted"},
					&ucli.StringFlag{Name: "justification", Aliases: []string{"j"}, Required: true},
				},
				Action: func(ctx *ucli.Context) error {
					ports := make([]models.APIPortRequest, 0, len(ctx.IntSlice("port")))
					for _, port := range ctx.IntSlice("port") {
						ports = append(ports, models.APIPortRequest{Port: port, Protocol: ctx.String("protocol")})
					}
					result, err := clientFromContext(ctx).NetworkAccess(models.APINetworkAccessRequest{
						ResourceID:      ctx.String("resource"),
						ResourceAddress: ctx.String("address"),
						Ports:           ports,
						Justification:   ctx.String("justification"),
						SourceIP:        ctx.String("source-ip"),
						DurationHours:   ctx.Float64("hours"),
					})
					if err != nil {
						return err
					}
					cli.PrettyPrint(result)
					return nil
				},
			},
			{
				Name:  "audit",
				Usage: "show the server's persisted audit trail (admin)",
				Action: func(ctx *ucli.Context) error {
					records, err := clientFromContext(ctx).AuditRecords()
					if err != nil {
						return err
					}
					cli.PrettyPrint(records)
					return nil
				},
			},
			{
				Name:      "history",
				Usage:     "show a principal's elevation history (admin)",
				ArgsUsage: "<principal-id>",
				Flags: []ucli.Flag{
					&ucli.IntFlag{Name: "days", Value: 30, Usage: "how many days back to query"},
				},
				Action: func(ctx *ucli.Context) error {
					if ctx.NArg() != 1 {
						return fmt.Errorf("expected exactly one principal id")
					}
					end := time.Now().UTC()
					start := end.AddDate(0, 0, -ctx.Int("days"))
					history, err := clientFromContext(ctx).History(ctx.Args().First(), start, end)
					if err != nil {
						return err
					}
					cli.PrettyPrint(history)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
