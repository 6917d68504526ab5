package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"pochivm/internal/boilerplate"
)

// Schema version of the object payload - increment when the format changes.
const objectSchemaVersion uint16 = 1

// ObjectParam mirrors one registered meta-var in the serialized payload.
type ObjectParam struct {
	Kind     uint8
	Name     string
	TypeName string
}

// ObjectPack is one node kind's resolved pack.
type ObjectPack struct {
	Kind    string
	Params  []ObjectParam
	Values  [][]uint64
	Symbols []string
}

// ObjectPayload is the machine-readable manifest written to the object
// path; the interpreter runtime consumes it instead of re-parsing the
// textual table.
type ObjectPayload struct {
	Schema       uint16
	NumInstances uint32
	Packs        []ObjectPack
}

// BuildObjectPayload converts a resolved registry into its serialized form.
func BuildObjectPayload(reg *boilerplate.Registry) (*ObjectPayload, error) {
	total, err := safecast.Conv[uint32](reg.NumInstances())
	if err != nil {
		return nil, fmt.Errorf("object payload: %w", err)
	}
	payload := &ObjectPayload{Schema: objectSchemaVersion, NumInstances: total}
	for _, e := range reg.Entries() {
		pack := ObjectPack{Kind: e.Kind.String()}
		for _, p := range e.Pack.Params {
			pack.Params = append(pack.Params, ObjectParam{
				Kind:     uint8(p.Kind),
				Name:     p.Name,
				TypeName: p.TypeName,
			})
		}
		for _, inst := range e.Pack.Instances {
			pack.Values = append(pack.Values, inst.Values)
			pack.Symbols = append(pack.Symbols, inst.SymbolName)
		}
		payload.Packs = append(payload.Packs, pack)
	}
	return payload, nil
}

// WriteObject serializes the registry to path. The write is atomic:
// encode to a temp file in the target directory, then rename.
func WriteObject(path string, reg *boilerplate.Registry) error {
	payload, err := BuildObjectPayload(reg)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, "fiblgen-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// ReadObject loads a payload back from path.
func ReadObject(path string) (*ObjectPayload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var payload ObjectPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, err
	}
	if payload.Schema != objectSchemaVersion {
		return nil, fmt.Errorf("object payload %s: schema %d, tool expects %d",
			path, payload.Schema, objectSchemaVersion)
	}
	return &payload, nil
}
