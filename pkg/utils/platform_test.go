//go:build !mobile

package utils

import "testing"

func TestIsMobileEmulation(t *testing.T) {
	t.Setenv("GOLF_MOBILE_EMULATE", "")
	if IsMobile() {
		t.Error("IsMobile() should be false on desktop")
	}

	t.Setenv("GOLF_MOBILE_EMULATE", "1")
	if !IsMobile() {
		t.Error("IsMobile() should honour GOLF_MOBILE_EMULATE=1")
	}
}
