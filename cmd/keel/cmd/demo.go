package cmd

import (
	"github.com/go-drift/keel/pkg/stream"
	"github.com/go-drift/keel/pkg/swatch"
	"github.com/go-drift/keel/pkg/value"
)

// profile is the record the serialize and registry commands round-trip.
type profile struct {
	Name  string
	Value int
}

func (p profile) MarshalStream(w *stream.Writer) error {
	w.WriteString(p.Name)
	w.WriteInt(p.Value)
	return w.Err()
}

func (p *profile) UnmarshalStream(r *stream.Reader) error {
	p.Name = r.ReadString()
	p.Value = r.ReadInt()
	return r.Err()
}

// newDemoRegistry builds the registry the registry command introspects.
// Ids are assigned in registration order.
func newDemoRegistry() (*value.Registry, error) {
	reg := value.NewRegistry()
	if err := swatch.Register(reg); err != nil {
		return nil, err
	}
	err := value.RegisterCodec(reg, "Profile",
		func(w *stream.Writer, p profile) error { return p.MarshalStream(w) },
		func(r *stream.Reader) (profile, error) {
			var p profile
			err := p.UnmarshalStream(r)
			return p, err
		})
	if err != nil {
		return nil, err
	}
	return reg, nil
}
