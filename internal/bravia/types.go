// Copyright 2025 Arion Yau
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bravia

import (
	"encoding/json"
	"fmt"
)

// Service is a path segment of the Bravia control API (/sony/<service>)
type Service string

// Services exposed by the Bravia control API
const (
	ServiceSystem     Service = "system"
	ServiceAudio      Service = "audio"
	ServiceAVContent  Service = "avContent"
	ServiceAppControl Service = "appControl"
)

// Method is an RPC method name of the Bravia control API
type Method string

// Methods used by the catalogue operations
const (
	SetPowerStatus                 Method = "setPowerStatus"
	GetPowerStatus                 Method = "getPowerStatus"
	SetAudioVolume                 Method = "setAudioVolume"
	SetActiveApp                   Method = "setActiveApp"
	RequestReboot                  Method = "requestReboot"
	SetPlayContent                 Method = "setPlayContent"
	GetApplicationList             Method = "getApplicationList"
	GetCurrentExternalInputsStatus Method = "getCurrentExternalInputsStatus"
)

// Device error codes with dedicated handling in the CLI
const (
	ErrIllegalArgument    = 3
	ErrNoSuchMethod       = 12
	ErrUnsupportedVersion = 14
)

// Request is the JSON envelope POSTed to the control API. Params always
// holds exactly one element and ID is always 1: the TV's calling convention
// fixes both, and the client never has more than one request in flight.
type Request struct {
	ID      int              `json:"id"`
	Version string           `json:"version"`
	Method  Method           `json:"method"`
	Params  []map[string]any `json:"params"`
}

// DeviceError is an error object reported by the TV inside a 200 response
type DeviceError struct {
	Code    int
	Message string
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("device error %d: %s", e.Code, e.Message)
}

// Response is the decoded reply to a single control request. Exactly one of
// Err and HasResult is meaningful for well-formed replies; bodies carrying
// neither key keep only Raw and Body for the fallback rendering path.
type Response struct {
	// Raw is the response body exactly as received
	Raw []byte
	// Body is the decoded JSON object
	Body map[string]any
	// Result holds the rows of the "result" field when present
	Result    []any
	HasResult bool
	// Err holds the decoded "error" field when present
	Err *DeviceError
}

func decodeResponse(raw []byte) (*Response, error) {
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	resp := &Response{Raw: raw, Body: body}

	if errField, ok := body["error"]; ok {
		resp.Err = decodeDeviceError(errField)
		return resp, nil
	}

	if result, ok := body["result"]; ok {
		resp.HasResult = true
		if rows, ok := result.([]any); ok {
			resp.Result = rows
		}
	}

	return resp, nil
}

// decodeDeviceError unpacks the wire form [code, message]. Anything else is
// folded into a code-0 error so the message still reaches the user.
func decodeDeviceError(field any) *DeviceError {
	pair, ok := field.([]any)
	if !ok || len(pair) < 2 {
		return &DeviceError{Message: fmt.Sprintf("%v", field)}
	}

	devErr := &DeviceError{Message: fmt.Sprintf("%v", pair[1])}
	if code, ok := pair[0].(float64); ok {
		devErr.Code = int(code)
	}
	return devErr
}
