package bravia

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

// irccEnvelope is the SOAP body carrying one IRCC remote code
const irccEnvelope = `<?xml version="1.0" encoding="utf-8"?>
<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/" s:encodingStyle="http://schemas.xmlsoap.org/soap/encoding/">
  <s:Body>
    <u:X_SendIRCC xmlns:u="urn:schemas-sony-com:service:IRCC:1">
      <IRCCCode>%s</IRCCCode>
    </u:X_SendIRCC>
  </s:Body>
</s:Envelope>`

// SendKey emulates one press of an infrared remote button via the IRCC
// SOAP endpoint. Unlike the control API the TV reports failures through the
// HTTP status, so any non-200 reply is an error.
func (c *Client) SendKey(code KeyCode) error {
	body := fmt.Sprintf(irccEnvelope, string(code))
	url := fmt.Sprintf("http://%s/sony/ircc", c.host)

	req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create IRCC request: %w", err)
	}

	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", `"urn:schemas-sony-com:service:IRCC:1#X_SendIRCC"`)
	req.Header.Set("X-Auth-PSK", c.psk)

	c.logger.Debug().
		Str("url", url).
		Str("code", string(code)).
		Msg("Sending IRCC remote request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send IRCC request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("IRCC request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
