package client

import (
	"strings"

	"github.com/kardolus/reasoning-cli/api/http"
	"go.uber.org/zap"
)

// printRequestDebugInfo renders the request as a cURL command. The key is
// referenced through its environment variable and never printed.
func (c *Client) printRequestDebugInfo(endpoint string, body []byte) {
	sugar := zap.S()
	sugar.Debugf("\nGenerated cURL command:\n")

	sugar.Debugf("curl --location --request POST '%s' \\", endpoint)
	sugar.Debugf("  --header \"%s: %s${%s_API_KEY}\" \\", c.Config.AuthHeader, c.Config.AuthTokenPrefix, strings.ToUpper(c.Config.Name))
	sugar.Debugf("  --header '%s: %s' \\", http.HeaderContentType, http.ContentType)
	if c.Config.UserAgent != "" {
		sugar.Debugf("  --header '%s: %s' \\", http.HeaderUserAgent, c.Config.UserAgent)
	}
	for k, v := range c.Config.CustomHeaders {
		sugar.Debugf("  --header '%s: %s' \\", k, v)
	}

	bodyString := strings.ReplaceAll(string(body), "'", "'\"'\"'")
	sugar.Debugf("  --data-raw '%s'", bodyString)
}

func (c *Client) printResponseDebugInfo(raw []byte) {
	sugar := zap.S()
	sugar.Debugf("\nResponse\n")
	sugar.Debugf("%s\n", raw)
}
