package cmd

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/c9s/novaex/pkg/cmd/cmdutil"
	"github.com/c9s/novaex/pkg/exchange/nova/novaapi"
)

type queryFunc func(ctx context.Context, client *novaapi.RestClient) ([]byte, error)

// newClient is replaced in tests
var newClient = cmdutil.NewClientFromViper

// runQuery creates the client, calls fn and writes the raw response body to stdout.
func runQuery(cmd *cobra.Command, name string, private bool, fn queryFunc) error {
	client, err := newClient(private)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now()
	body, err := fn(ctx, client)
	if err != nil {
		return errors.Wrapf(err, "%s failed", name)
	}

	log.WithField("exchange", "nova").Debugf("%s: %d bytes in %s", name, len(body), time.Since(start))

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(body))
	return err
}

// parseFormArgs parses key=value arguments into form values.
func parseFormArgs(args []string) (url.Values, error) {
	params := url.Values{}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || len(key) == 0 {
			return nil, fmt.Errorf("invalid parameter %q, expecting key=value", arg)
		}

		params.Add(key, value)
	}

	return params, nil
}
