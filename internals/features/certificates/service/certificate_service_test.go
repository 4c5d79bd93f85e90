package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewSerialFormat(t *testing.T) {
	appID := uuid.MustParse("a1b2c3d4-0000-0000-0000-000000000000")
	serial := newSerial(appID)

	wantPrefix := fmt.Sprintf("MAGANG-%d-", time.Now().Year())
	if !strings.HasPrefix(serial, wantPrefix) {
		t.Errorf("serial %q tidak diawali %q", serial, wantPrefix)
	}
	if !strings.HasSuffix(serial, "A1B2C3D4") {
		t.Errorf("serial %q harus diakhiri 8 hex pertama dari application id", serial)
	}
}

func TestNewSerialDeterministicPerApplication(t *testing.T) {
	appID := uuid.New()
	if newSerial(appID) != newSerial(appID) {
		t.Error("serial harus deterministik untuk application id yang sama")
	}

	other := uuid.New()
	if newSerial(appID) == newSerial(other) {
		t.Error("application id berbeda harus menghasilkan serial berbeda")
	}
}
