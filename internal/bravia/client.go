package bravia

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"bravactl/internal/logger"
)

// DefaultVersion is the base protocol version used when none is configured
const DefaultVersion = "1.0"

// mirrorURI starts the built-in screen mirroring (WiDi) receiver
const mirrorURI = "extInput:widi?port=1"

// requestID is constant: the client issues at most one request per process,
// so there is nothing to correlate.
const requestID = 1

// Client issues control requests against a single Bravia device
type Client struct {
	httpClient *http.Client
	host       string
	psk        string
	version    string
	logger     zerolog.Logger
}

// NewClient creates a client for the TV at host, authenticating with the
// pre-shared key. An empty version selects DefaultVersion.
func NewClient(host, psk, version string) *Client {
	if version == "" {
		version = DefaultVersion
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		host:    host,
		psk:     psk,
		version: version,
		logger:  logger.Component("bravia"),
	}
}

// SetPower switches the device between the "active" and "standby" power
// states. Any other status is rejected locally with an Illegal Argument
// failure and no request is sent.
func (c *Client) SetPower(status string) (*Response, error) {
	switch status {
	case "active":
		return c.do(OpSetPower, map[string]any{"status": true})
	case "standby":
		return c.do(OpSetPower, map[string]any{"status": false})
	}

	return &Response{
		Err: &DeviceError{Code: ErrIllegalArgument, Message: "Illegal Argument"},
	}, nil
}

// SetVolume sets or adjusts the audio volume. Volume is a numeric string:
// "N" for an absolute level, "+N"/"-N" for a relative step. ui controls
// whether the on-screen volume bar is shown; target selects the output
// ("" for all, "speaker" or "headphone").
func (c *Client) SetVolume(volume, ui, target string) (*Response, error) {
	return c.do(OpSetVolume, map[string]any{
		"volume": volume,
		"ui":     ui,
		"target": target,
	})
}

// LaunchApp starts the application identified by a scheme-qualified URI,
// e.g. "localapp://webappruntime?url=<target>".
func (c *Client) LaunchApp(uri string) (*Response, error) {
	return c.do(OpLaunchApp, map[string]any{"uri": uri})
}

// Reboot performs a full restart of the device
func (c *Client) Reboot() (*Response, error) {
	return c.do(OpReboot, nil)
}

// MirrorScreen launches the screen mirroring receiver application
func (c *Client) MirrorScreen() (*Response, error) {
	return c.do(OpMirrorScreen, map[string]any{"uri": mirrorURI})
}

// ListApps returns the applications that can be launched
func (c *Client) ListApps() (*Response, error) {
	return c.do(OpListApps, nil)
}

// ListInputs returns the status of all external input sources
func (c *Client) ListInputs() (*Response, error) {
	return c.do(OpListInputs, nil)
}

// CheckPower returns the current power status of the device
func (c *Client) CheckPower() (*Response, error) {
	return c.do(OpCheckPower, nil)
}

// do sends one control request for the given catalogue operation and
// decodes the reply. The operation supplies the method, service and any
// protocol version override; params becomes the single element of the
// request's params array.
func (c *Client) do(op *Operation, params map[string]any) (*Response, error) {
	if params == nil {
		params = map[string]any{}
	}

	version := c.version
	if op.Version != "" {
		version = op.Version
	}

	payload := Request{
		ID:      requestID,
		Version: version,
		Method:  op.Method,
		Params:  []map[string]any{params},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("http://%s/sony/%s", c.host, op.Service)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create control request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Auth-PSK", c.psk)

	c.logger.Debug().
		Str("url", url).
		Str("method", string(op.Method)).
		Str("version", version).
		Str("payload", string(body)).
		Msg("Sending control API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send control request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Str("method", string(op.Method)).
		Msg("Control API request completed")

	return decodeResponse(raw)
}
