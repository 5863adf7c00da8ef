package ner

import (
	"errors"
	"testing"
)

type fakeProvider struct{ name string }

func (f *fakeProvider) Name() string             { return f.name }
func (f *fakeProvider) Entities(string) []Entity { return nil }

func TestResolve_PreferenceOrder(t *testing.T) {
	t.Cleanup(func() { factories = map[string]Factory{} })
	Register("first", func() (Provider, error) { return &fakeProvider{name: "first"}, nil })
	Register("second", func() (Provider, error) { return &fakeProvider{name: "second"}, nil })

	got := Resolve([]string{"second", "first"})
	if got == nil || got.Name() != "second" {
		t.Errorf("Resolve = %v, want the first preference that loads", got)
	}
}

func TestResolve_SkipsFailingFactories(t *testing.T) {
	t.Cleanup(func() { factories = map[string]Factory{} })
	Register("broken", func() (Provider, error) { return nil, errors.New("model not present") })
	Register("working", func() (Provider, error) { return &fakeProvider{name: "working"}, nil })

	got := Resolve([]string{"broken", "unregistered", "working"})
	if got == nil || got.Name() != "working" {
		t.Errorf("Resolve = %v, want the working fallback", got)
	}
}

func TestResolve_NoneAvailable(t *testing.T) {
	t.Cleanup(func() { factories = map[string]Factory{} })

	if got := Resolve([]string{"anything"}); got != nil {
		t.Errorf("Resolve = %v, want nil when nothing is registered", got)
	}
	if got := Resolve(nil); got != nil {
		t.Errorf("Resolve(nil) = %v, want nil", got)
	}
}
