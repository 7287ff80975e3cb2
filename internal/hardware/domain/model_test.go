package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessage(t *testing.T) {
	cases := []struct {
		name     string
		movement Movement
		qty      string
		want     string
	}{
		{"check in number", CheckIn, "5", "5 hardware checked in"},
		{"check out number", CheckOut, "12", "12 hardware checked out"},
		{"empty qty keeps leading space", CheckIn, "", " hardware checked in"},
		{"empty qty on checkout", CheckOut, "", " hardware checked out"},
		{"negative is not rejected", CheckOut, "-3", "-3 hardware checked out"},
		{"non numeric passes through", CheckIn, "lots", "lots hardware checked in"},
		{"unicode", CheckIn, "五", "五 hardware checked in"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Message(tc.movement, tc.qty))
		})
	}
}

func TestNewRequest(t *testing.T) {
	req := NewRequest(CheckIn, "proj1", "5")
	assert.Equal(t, Request{ProjectID: "proj1", Qty: "5", Message: "5 hardware checked in"}, req)

	empty := NewRequest(CheckOut, "", "")
	assert.Equal(t, Request{Message: " hardware checked out"}, empty)
}
