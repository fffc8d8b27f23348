package cmd

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/cixtor/binarycookies/v2"
	"github.com/cixtor/binarycookies/v2/jar"
	"github.com/spf13/cobra"
)

// dump prints every cookie in the jar at filename.
func (a *app) dump(cmd *cobra.Command, filename string) error {
	netscape, _ := cmd.Flags().GetBool("netscape")
	asJSON, _ := cmd.Flags().GetBool("json")
	filter, _ := cmd.Flags().GetString("filter")

	var re *regexp.Regexp

	if len(filter) > 0 {
		var err error
		if re, err = regexp.Compile(filter); err != nil {
			return fmt.Errorf("invalid filter: %w", err)
		}
	}

	cook, err := jar.Read(filename, binarycookies.WithLogger(a.logger))

	if err != nil {
		return err
	}

	keep := func(c binarycookies.Cookie) bool {
		return re == nil || re.MatchString(c.Domain)
	}

	out := cmd.OutOrStdout()

	if asJSON {
		for i := range cook.Pages {
			cookies := []binarycookies.Cookie{}
			for _, c := range cook.Pages[i].Cookies {
				if keep(c) {
					cookies = append(cookies, c)
				}
			}
			cook.Pages[i].Cookies = cookies
		}

		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(cook)
	}

	if netscape {
		return binarycookies.WriteNetscape(out, cook.Pages, keep)
	}

	for _, page := range cook.Pages {
		for _, cookie := range page.Cookies {
			if !keep(cookie) {
				continue
			}

			fmt.Fprintf(
				out,
				"%s %s %s %s %s",
				cookie.Expires.Format(`2006-01-02 15:04:05`),
				cookie.Domain,
				cookie.Path,
				cookie.Name,
				cookie.Value,
			)

			if cookie.Secure {
				fmt.Fprintf(out, " Secure")
			}

			if cookie.HttpOnly {
				fmt.Fprintf(out, " HttpOnly")
			}

			if len(cookie.Comment) > 0 {
				fmt.Fprintf(out, "/* %s */", cookie.Comment)
			}

			fmt.Fprintln(out)
		}
	}

	return nil
}
