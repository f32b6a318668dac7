package value

import (
	"reflect"
	"sync"

	"github.com/go-drift/keel/pkg/errors"
	"github.com/go-drift/keel/pkg/stream"
)

// Registration describes one registered value type.
type Registration struct {
	// ID is the type's dense numeric id, assigned in registration order
	// starting at 1. Id 0 is reserved for Null.
	ID uint32
	// Name is the type's registered name.
	Name string
	// Type is the registered Go type.
	Type reflect.Type
}

type entry struct {
	id   uint32
	name string
	typ  reflect.Type
	enc  func(*stream.Writer, Value) error
	dec  func(*stream.Reader) (Value, error)
}

// Registry maps value types to names and dense numeric ids, and holds
// the stream codecs for polymorphic value serialization. Registries are
// explicit objects: construct one with NewRegistry and pass it where it
// is needed.
type Registry struct {
	mu     sync.RWMutex
	byID   []*entry
	byType map[reflect.Type]*entry
	byName map[string]*entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byType: make(map[reflect.Type]*entry),
		byName: make(map[string]*entry),
	}
}

func (r *Registry) add(typ reflect.Type, name string,
	enc func(*stream.Writer, Value) error,
	dec func(*stream.Reader) (Value, error)) error {
	const op = "value.Register"
	if name == "" {
		return errors.Errorf(op, errors.KindConfig, "empty registration name for %s", typ)
	}
	if typ == reflect.TypeOf((*Value)(nil)).Elem() {
		return errors.Errorf(op, errors.KindConfig, "cannot register the container type")
	}
	if typ.Kind() == reflect.Interface {
		return errors.Errorf(op, errors.KindConfig,
			"cannot register interface type %s: boxed values carry concrete types", typ)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.byType[typ]; dup {
		return errors.Errorf(op, errors.KindConfig, "type %s already registered", typ)
	}
	if _, dup := r.byName[name]; dup {
		return errors.Errorf(op, errors.KindConfig, "name %q already registered", name)
	}
	e := &entry{
		id:   uint32(len(r.byID) + 1),
		name: name,
		typ:  typ,
		enc:  enc,
		dec:  dec,
	}
	r.byID = append(r.byID, e)
	r.byType[typ] = e
	r.byName[name] = e
	return nil
}

// Register binds the type T to name and assigns it the next id.
// A type registered this way participates in lookups but has no stream
// codec; use RegisterCodec to make it serializable.
func Register[T any](r *Registry, name string) error {
	return r.add(reflect.TypeOf((*T)(nil)).Elem(), name, nil, nil)
}

// RegisterCodec binds the type T to name with a stream codec pair.
// enc and dec must mirror each other's field order.
func RegisterCodec[T any](r *Registry, name string,
	enc func(*stream.Writer, T) error,
	dec func(*stream.Reader) (T, error)) error {
	if enc == nil || dec == nil {
		return errors.Errorf("value.RegisterCodec", errors.KindConfig, "nil codec for %q", name)
	}
	return r.add(reflect.TypeOf((*T)(nil)).Elem(), name,
		func(w *stream.Writer, v Value) error {
			rec, err := As[T](v)
			if err != nil {
				return err
			}
			return enc(w, rec)
		},
		func(rd *stream.Reader) (Value, error) {
			rec, err := dec(rd)
			if err != nil {
				return Value{}, err
			}
			return Box(rec), nil
		})
}

func (r *Registry) lookupType(typ reflect.Type) *entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byType[typ]
}

func (r *Registry) lookupID(id uint32) *entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id == 0 || int(id) > len(r.byID) {
		return nil
	}
	return r.byID[id-1]
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

// Lookup returns the registration for name.
func (r *Registry) Lookup(name string) (Registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byName[name]
	if !ok {
		return Registration{}, false
	}
	return Registration{ID: e.id, Name: e.name, Type: e.typ}, true
}

// LookupType returns the registration for typ.
func (r *Registry) LookupType(typ reflect.Type) (Registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byType[typ]
	if !ok {
		return Registration{}, false
	}
	return Registration{ID: e.id, Name: e.name, Type: e.typ}, true
}

// Registrations returns all registrations in id order.
func (r *Registry) Registrations() []Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	regs := make([]Registration, len(r.byID))
	for i, e := range r.byID {
		regs[i] = Registration{ID: e.id, Name: e.name, Type: e.typ}
	}
	return regs
}

// WriteValue writes v's type id followed by its payload. Null writes id
// 0 and no payload. Unregistered and codec-less types fail with a type
// mismatch error.
func (r *Registry) WriteValue(w *stream.Writer, v Value) error {
	const op = "value.WriteValue"
	if v.IsNull() {
		w.WriteUint32(0)
		return w.Err()
	}
	e := r.lookupType(v.typ)
	if e == nil {
		return errors.Errorf(op, errors.KindTypeMismatch,
			"type %s is not registered", v.TypeName())
	}
	if e.enc == nil {
		return errors.Errorf(op, errors.KindTypeMismatch,
			"type %s has no stream codec", v.TypeName())
	}
	w.WriteUint32(e.id)
	if err := e.enc(w, v); err != nil {
		return err
	}
	return w.Err()
}

// ReadValue reads a type id and dispatches to the registered decoder.
// Id 0 yields Null. Ids the registry does not know are malformed data.
func (r *Registry) ReadValue(rd *stream.Reader) (Value, error) {
	const op = "value.ReadValue"
	id := rd.ReadUint32()
	if err := rd.Err(); err != nil {
		return Value{}, err
	}
	if id == 0 {
		return Value{}, nil
	}
	e := r.lookupID(id)
	if e == nil || e.dec == nil {
		return Value{}, errors.Errorf(op, errors.KindMalformedData,
			"unknown type id %d", id)
	}
	return e.dec(rd)
}
