package bravia

import (
	"fmt"
	"strconv"
	"strings"
)

// ParamKind declares how a positional CLI token is coerced before it is
// placed in the request params.
type ParamKind int

const (
	KindString ParamKind = iota
	KindInt
	KindBool
)

// Param describes one positional parameter of a catalogue operation.
// Required params have no default; optional params fall back to Default
// when the token is omitted.
type Param struct {
	Name     string
	Kind     ParamKind
	Required bool
	Default  string
}

// Operation is one entry of the static command catalogue: a CLI-facing
// name, its positional parameters, and the method/service/version triple it
// maps to on the wire. Run invokes the matching typed client method with
// bound arguments.
type Operation struct {
	Name    string
	Summary string
	Params  []Param
	Method  Method
	Service Service
	// Version overrides the client's base protocol version; empty keeps it
	Version string
	Run     func(c *Client, args map[string]any) (*Response, error)
}

// Catalogue operations. The typed Client methods route through these same
// entries, so the name/method/service mapping cannot drift between the CLI
// and the wire.
var (
	OpSetPower = &Operation{
		Name:    "set-power",
		Summary: "Change the power status of the device (active or standby)",
		Params: []Param{
			{Name: "status", Kind: KindString, Required: true},
		},
		Method:  SetPowerStatus,
		Service: ServiceSystem,
	}

	OpSetVolume = &Operation{
		Name:    "set-volume",
		Summary: `Set or adjust the audio volume ("25", "+5", "-10")`,
		Params: []Param{
			{Name: "volume", Kind: KindString, Required: true},
			{Name: "ui", Kind: KindString, Default: "on"},
			{Name: "target", Kind: KindString, Default: ""},
		},
		Method:  SetAudioVolume,
		Service: ServiceAudio,
		Version: "1.2",
	}

	OpLaunchApp = &Operation{
		Name:    "launch-app",
		Summary: "Launch an application by URI",
		Params: []Param{
			{Name: "uri", Kind: KindString, Required: true},
		},
		Method:  SetActiveApp,
		Service: ServiceAppControl,
	}

	OpReboot = &Operation{
		Name:    "reboot",
		Summary: "Perform a full reboot of the device",
		Method:  RequestReboot,
		Service: ServiceSystem,
	}

	OpMirrorScreen = &Operation{
		Name:    "mirror-screen",
		Summary: "Launch the screen mirroring application",
		Method:  SetPlayContent,
		Service: ServiceAVContent,
	}

	OpListApps = &Operation{
		Name:    "list-apps",
		Summary: "List the applications that can be launched",
		Method:  GetApplicationList,
		Service: ServiceAppControl,
	}

	OpListInputs = &Operation{
		Name:    "list-inputs",
		Summary: "Show the status of all external input sources",
		Method:  GetCurrentExternalInputsStatus,
		Service: ServiceAVContent,
		Version: "1.1",
	}

	OpCheckPower = &Operation{
		Name:    "check-power",
		Summary: "Show the current power status of the device",
		Method:  GetPowerStatus,
		Service: ServiceSystem,
	}
)

// The Run closures reference Client methods, which in turn reference the
// Op* variables; assigning them in init breaks the initialization cycle.
func init() {
	OpSetPower.Run = func(c *Client, args map[string]any) (*Response, error) {
		return c.SetPower(args["status"].(string))
	}
	OpSetVolume.Run = func(c *Client, args map[string]any) (*Response, error) {
		return c.SetVolume(
			args["volume"].(string),
			args["ui"].(string),
			args["target"].(string),
		)
	}
	OpLaunchApp.Run = func(c *Client, args map[string]any) (*Response, error) {
		return c.LaunchApp(args["uri"].(string))
	}
	OpReboot.Run = func(c *Client, args map[string]any) (*Response, error) {
		return c.Reboot()
	}
	OpMirrorScreen.Run = func(c *Client, args map[string]any) (*Response, error) {
		return c.MirrorScreen()
	}
	OpListApps.Run = func(c *Client, args map[string]any) (*Response, error) {
		return c.ListApps()
	}
	OpListInputs.Run = func(c *Client, args map[string]any) (*Response, error) {
		return c.ListInputs()
	}
	OpCheckPower.Run = func(c *Client, args map[string]any) (*Response, error) {
		return c.CheckPower()
	}
}

// Catalogue lists every supported operation in display order
var Catalogue = []*Operation{
	OpSetPower,
	OpSetVolume,
	OpLaunchApp,
	OpReboot,
	OpMirrorScreen,
	OpListApps,
	OpListInputs,
	OpCheckPower,
}

// Lookup resolves an operation by name. Case is ignored and hyphens and
// underscores are interchangeable.
func Lookup(name string) (*Operation, bool) {
	normalized := normalizeName(name)
	for _, op := range Catalogue {
		if normalizeName(op.Name) == normalized {
			return op, true
		}
	}
	return nil, false
}

func normalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "_", "-")
}

// RequiredArgs returns how many leading parameters are required
func (op *Operation) RequiredArgs() int {
	count := 0
	for _, p := range op.Params {
		if p.Required {
			count++
		}
	}
	return count
}

// Usage returns the one-line argument synopsis for the operation
func (op *Operation) Usage() string {
	parts := []string{op.Name}
	for _, p := range op.Params {
		if p.Required {
			parts = append(parts, fmt.Sprintf("<%s>", p.Name))
		} else {
			parts = append(parts, fmt.Sprintf("[%s]", p.Name))
		}
	}
	return strings.Join(parts, " ")
}

// Bind maps positional tokens onto the operation's parameters in declared
// order. Missing required parameters are an error before any network call;
// omitted optional parameters take their defaults. Supplied tokens are
// coerced per the parameter kind.
func (op *Operation) Bind(argv []string) (map[string]any, error) {
	if len(argv) > len(op.Params) {
		return nil, fmt.Errorf("%s accepts at most %d argument(s), got %d",
			op.Name, len(op.Params), len(argv))
	}

	args := make(map[string]any, len(op.Params))
	for i, p := range op.Params {
		if i < len(argv) {
			value, err := p.coerce(argv[i])
			if err != nil {
				return nil, err
			}
			args[p.Name] = value
			continue
		}

		if p.Required {
			return nil, fmt.Errorf("missing required argument <%s>", p.Name)
		}

		value, err := p.coerce(p.Default)
		if err != nil {
			return nil, err
		}
		args[p.Name] = value
	}

	return args, nil
}

func (p Param) coerce(token string) (any, error) {
	switch p.Kind {
	case KindInt:
		n, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("argument <%s> must be an integer: %q", p.Name, token)
		}
		return n, nil
	case KindBool:
		b, err := strconv.ParseBool(token)
		if err != nil {
			return nil, fmt.Errorf("argument <%s> must be a boolean: %q", p.Name, token)
		}
		return b, nil
	default:
		return token, nil
	}
}
