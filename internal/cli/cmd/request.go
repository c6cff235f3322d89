package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/tabshell/internal/application/usecase"
	"github.com/bnema/tabshell/internal/bootstrap"
	"github.com/bnema/tabshell/internal/cli/styles"
	domainurl "github.com/bnema/tabshell/internal/domain/url"
	"github.com/bnema/tabshell/internal/infrastructure/bridge"
)

var (
	requestMethod  string
	requestData    string
	requestHeaders []string
	requestTimeout time.Duration
)

var requestCmd = &cobra.Command{
	Use:   "request <url>",
	Short: "Send a request the way a page would",
	Long: `Send one HTTP request through the page interception rules.

Relative URLs resolve against app.origin. Calls under the API prefix are
routed through the bridge; everything else goes out directly.

Examples:
  tabshell request /base_api/notes
  tabshell request -X POST -d '{"a":1}' -H 'Content-Type: application/json' /base_api/notes`,
	Args: cobra.ExactArgs(1),
	RunE: runRequest,
}

func init() {
	requestCmd.Flags().StringVarP(&requestMethod, "method", "X", http.MethodGet, "HTTP method")
	requestCmd.Flags().StringVarP(&requestData, "data", "d", "", "request body")
	requestCmd.Flags().StringArrayVarP(&requestHeaders, "header", "H", nil, "header as 'Name: value' (repeatable)")
	requestCmd.Flags().DurationVar(&requestTimeout, "timeout", 30*time.Second, "overall request timeout")
	rootCmd.AddCommand(requestCmd)
}

func runRequest(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	cfg := app.Config
	r := styles.NewInfoRenderer(app.Theme)

	interceptor := usecase.NewInterceptor(
		usecase.NewRequestMarshaller(cfg.App.Origin),
		bridge.NewHTTPBridge(bootstrap.BridgeConfig(cfg)),
		bootstrap.InterceptorConfig(cfg),
	)
	client := &http.Client{}
	interceptor.Install(client)

	target := domainurl.Resolve(cfg.App.Origin, args[0])
	var body io.Reader
	if requestData != "" {
		body = strings.NewReader(requestData)
	}

	ctx, cancel := context.WithTimeout(app.Ctx(), requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, strings.ToUpper(requestMethod), target, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	for _, h := range requestHeaders {
		name, value, ok := strings.Cut(h, ":")
		if !ok {
			return fmt.Errorf("invalid header %q: want 'Name: value'", h)
		}
		req.Header.Add(strings.TrimSpace(name), strings.TrimSpace(value))
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", target, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	route := "native"
	if interceptor.Matches(target) {
		route = "bridge"
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, r.Render([]styles.Field{
		{Icon: styles.IconGlobe, Key: "URL", Value: target},
		{Icon: styles.IconServer, Key: "Route", Value: route},
		{Icon: styles.IconCode, Key: "Status", Value: strconv.Itoa(resp.StatusCode)},
	}))
	fmt.Fprintln(out, string(data))
	return nil
}
