package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestKey_UseAndDestroy(t *testing.T) {
	raw := randomKey(t)
	want := append([]byte(nil), raw...)

	k, err := NewKey(raw)
	if err != nil {
		t.Fatalf("NewKey() error = %v", err)
	}

	if bytes.Equal(raw, want) {
		t.Error("NewKey() did not wipe the source slice")
	}

	var got []byte
	if err := k.Use(func(key []byte) error {
		got = append([]byte(nil), key...)
		return nil
	}); err != nil {
		t.Fatalf("Use() error = %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Error("Use() exposed a different key than the one sealed")
	}

	k.Destroy()
	if k.Alive() {
		t.Fatal("Alive() = true after Destroy")
	}
	if err := k.Use(func([]byte) error { return nil }); !errors.Is(err, ErrKeyDestroyed) {
		t.Errorf("Use() after Destroy error = %v, want %v", err, ErrKeyDestroyed)
	}
}

func TestKey_UsePropagatesError(t *testing.T) {
	k, err := NewKey(randomKey(t))
	if err != nil {
		t.Fatalf("NewKey() error = %v", err)
	}
	defer k.Destroy()

	sentinel := errors.New("boom")
	if err := k.Use(func([]byte) error { return sentinel }); err != sentinel {
		t.Errorf("Use() error = %v, want %v", err, sentinel)
	}
}

func TestNewKey_InvalidSize(t *testing.T) {
	if _, err := NewKey(make([]byte, 16)); err != ErrInvalidKeySize {
		t.Errorf("NewKey() error = %v, want %v", err, ErrInvalidKeySize)
	}
}

func TestKey_NilIsNotAlive(t *testing.T) {
	var k *Key
	if k.Alive() {
		t.Error("nil Key reported alive")
	}
	k.Destroy() // Should not panic
}
