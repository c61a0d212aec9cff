package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// It is the most portable option: values round-trip across Go versions and
// other JSON tooling. Time, complex numbers, funcs and channels are not
// supported, as usual for JSON.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the codec used when none is configured.
//
// Snapshots are self-describing (they record the codec name in their
// header), so changing the default never breaks existing files.
var Default Codec = GoJSON{}
