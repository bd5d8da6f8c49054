package token

import (
	"fmt"
	"os"
	"time"

	"github.com/crucial707/cronlens/cmd/cli/config"
	"github.com/crucial707/cronlens/cmd/cli/root"
	"github.com/crucial707/cronlens/internal/auth"
	srvconfig "github.com/crucial707/cronlens/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	root.GetRoot().AddCommand(tokenCmd())
}

func defaultSubject() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "cli"
}

func tokenCmd() *cobra.Command {
	var (
		secret    string
		subject   string
		ttl       time.Duration
		printOnly bool
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an API token for preset writes",
		Long: `Mint a token signed with the API's JWT secret and save it for later
"cronlens presets" commands. The secret defaults to $JWT_SECRET.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			signed, err := auth.Mint([]byte(secret), subject, ttl)
			if err != nil {
				return err
			}
			if printOnly {
				fmt.Fprintln(cmd.OutOrStdout(), signed)
				return nil
			}
			if err := config.SaveToken(signed); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Token for %q saved to %s (expires in %s)\n", subject, config.TokenPath(), ttl)
			return nil
		},
	}

	defSecret := os.Getenv("JWT_SECRET")
	if defSecret == "" {
		defSecret = srvconfig.DefaultJWTSecret
	}
	cmd.Flags().StringVar(&secret, "secret", defSecret, "HS256 signing secret")
	cmd.Flags().StringVar(&subject, "subject", defaultSubject(), "token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	cmd.Flags().BoolVar(&printOnly, "print", false, "print the token instead of saving it")
	return cmd
}
