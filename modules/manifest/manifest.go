package manifest

import (
	"encoding/json"
	"fmt"
	"os"

	errorsmod "cosmossdk.io/errors"
	"github.com/hashicorp/go-multierror"
)

const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// ParameterType describes the kind of an ABI parameter ("field", "integer", ...).
type ParameterType struct {
	Kind string `json:"kind"`
}

// Parameter is one circuit input as declared by the ABI.
type Parameter struct {
	Name       string        `json:"name"`
	Type       ParameterType `json:"type"`
	Visibility string        `json:"visibility"`
}

// ABI lists the circuit inputs in the order callers supply them.
type ABI struct {
	Parameters []Parameter `json:"parameters"`
	// ReturnType is kept opaque, the backend never looks at it
	ReturnType json.RawMessage `json:"return_type,omitempty"`
}

// Manifest is the JSON circuit artifact. Only Bytecode is required; its
// encoding belongs to the backend.
type Manifest struct {
	NoirVersion string `json:"noir_version,omitempty"`
	Hash        string `json:"hash,omitempty"`
	ABI         *ABI   `json:"abi,omitempty"`
	Bytecode    string `json:"bytecode"`
}

// Read loads the manifest at path. Every call hits the file system.
func Read(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrManifest, "read %s: %v", path, err)
	}

	m, err := Parse(raw)
	if err != nil {
		return nil, errorsmod.Wrapf(err, "manifest %s", path)
	}
	return m, nil
}

// Parse decodes and validates a manifest document.
func Parse(raw []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, errorsmod.Wrapf(ErrManifest, "decode json: %v", err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate reports every structural problem of the manifest at once.
func (m *Manifest) Validate() error {
	var result *multierror.Error

	if m.Bytecode == "" {
		result = multierror.Append(result, fmt.Errorf("missing bytecode"))
	}

	if m.ABI != nil {
		seen := make(map[string]struct{}, len(m.ABI.Parameters))
		for i, p := range m.ABI.Parameters {
			if p.Name == "" {
				result = multierror.Append(result, fmt.Errorf("abi parameter %d has no name", i))
				continue
			}
			if _, dup := seen[p.Name]; dup {
				result = multierror.Append(result, fmt.Errorf("abi parameter %q declared twice", p.Name))
			}
			seen[p.Name] = struct{}{}

			switch p.Visibility {
			case VisibilityPublic, VisibilityPrivate:
			default:
				result = multierror.Append(result, fmt.Errorf("abi parameter %q has visibility %q", p.Name, p.Visibility))
			}
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return errorsmod.Wrap(ErrManifest, err.Error())
	}
	return nil
}

// Write stores the manifest as indented JSON.
func (m *Manifest) Write(path string) error {
	raw, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

// PublicParameters returns the names of the public ABI parameters, in order.
func (m *Manifest) PublicParameters() []string {
	return m.parametersWithVisibility(VisibilityPublic)
}

// PrivateParameters returns the names of the private ABI parameters, in order.
func (m *Manifest) PrivateParameters() []string {
	return m.parametersWithVisibility(VisibilityPrivate)
}

func (m *Manifest) parametersWithVisibility(visibility string) []string {
	if m.ABI == nil {
		return nil
	}
	names := make([]string, 0, len(m.ABI.Parameters))
	for _, p := range m.ABI.Parameters {
		if p.Visibility == visibility {
			names = append(names, p.Name)
		}
	}
	return names
}
