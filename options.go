package llm

import "io"

// WithLogWriter redirects the optional generation summary line. The default
// writer is os.Stderr.
func WithLogWriter(w io.Writer) ClientOption {
	return func(c *Client) {
		if w != nil {
			c.logw = w
		}
	}
}

// WithDefaultModel sets the model alias used when a request leaves Model
// empty.
func WithDefaultModel(alias string) ClientOption {
	return func(c *Client) {
		c.defaults.Model = alias
	}
}

// WithDefaultTemperature sets the default sampling temperature for all
// requests.
func WithDefaultTemperature(temp float64) ClientOption {
	return func(c *Client) {
		c.defaults.Temperature = &temp
	}
}

// WithDefaultMaxOutputTokens sets the default output token cap for all
// requests.
func WithDefaultMaxOutputTokens(n int) ClientOption {
	return func(c *Client) {
		c.defaults.MaxOutputTokens = n
	}
}
