package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cixtor/binarycookies/v2/internal/clock"
	"github.com/cixtor/binarycookies/v2/jar"
	"github.com/spf13/cobra"
)

func newWriteCommand(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "write <value|->",
		Short: "Write a jar holding a single session cookie",
		Long: `Write replaces the cookie jar of an application with a jar holding one
cookie. The cookie attributes come from the configuration file and can be
overridden with flags. Use "-" to read the value from standard input.

Example:
  binarycookies write --domain .example.com --name SID --out Cookies.binarycookies abc123
  binarycookies write --profile work - < token.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.write(cmd, args[0], clock.Real{})
		},
	}

	c.Flags().String("out", "", "jar file to write (default derived from the jar settings)")
	c.Flags().String("profile", "", "profile whose jar is written")
	c.Flags().Bool("new-profile", false, "write the jar of a newly generated profile")
	c.Flags().String("domain", "", "cookie domain")
	c.Flags().String("name", "", "cookie name")
	c.Flags().String("path", "", "cookie path")
	c.Flags().Bool("secure", false, "only send the cookie over HTTPS")
	c.Flags().Bool("http-only", false, "hide the cookie from scripts")
	c.Flags().Duration("ttl", 0, "time until the cookie expires")

	return c
}

func (a *app) write(cmd *cobra.Command, value string, clk clock.Clock) error {
	flags := cmd.Flags()
	session := a.config.Session()

	if flags.Changed("domain") {
		session.Domain, _ = flags.GetString("domain")
	}
	if flags.Changed("name") {
		session.Name, _ = flags.GetString("name")
	}
	if flags.Changed("path") {
		session.Path, _ = flags.GetString("path")
	}
	if flags.Changed("secure") {
		session.Secure, _ = flags.GetBool("secure")
	}
	if flags.Changed("http-only") {
		session.HttpOnly, _ = flags.GetBool("http-only")
	}
	if flags.Changed("ttl") {
		session.TTL, _ = flags.GetDuration("ttl")
	}

	if session.Domain == "" || session.Name == "" {
		return errors.New("cookie domain and name are required")
	}

	if value == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read value: %w", err)
		}
		value = strings.TrimRight(string(data), "\r\n")
	}

	if strings.IndexByte(value, 0) >= 0 {
		return errors.New("cookie value cannot contain NUL")
	}

	path, err := a.jarPath(cmd)
	if err != nil {
		return err
	}

	if err := jar.WriteSession(path, session, value, clk.Now()); err != nil {
		return err
	}

	a.logger.Info("cookie jar written", "path", path, "domain", session.Domain, "name", session.Name)
	fmt.Fprintln(cmd.OutOrStdout(), path)

	return nil
}

// jarPath resolves --out, --profile and --new-profile against the jar
// settings of the configuration.
func (a *app) jarPath(cmd *cobra.Command) (string, error) {
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		return out, nil
	}

	if a.config.Jar.BundleID == "" {
		return "", errors.New("no --out given and jar.bundle_id is not configured")
	}

	profile, _ := cmd.Flags().GetString("profile")

	if fresh, _ := cmd.Flags().GetBool("new-profile"); fresh {
		if profile != "" {
			return "", errors.New("--profile and --new-profile are mutually exclusive")
		}
		profile = jar.NewProfileID()
	}

	return jar.Path(a.config.Jar.LibraryDir, a.config.Jar.BundleID, profile), nil
}

func newRemoveCommand(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "remove",
		Short: "Delete the jar of a profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.jarPath(cmd)
			if err != nil {
				return err
			}

			if err := jar.Remove(path); err != nil {
				return err
			}

			a.logger.Info("cookie jar removed", "path", path)
			return nil
		},
	}

	c.Flags().String("out", "", "jar file to delete")
	c.Flags().String("profile", "", "profile whose jar is deleted")

	return c
}
