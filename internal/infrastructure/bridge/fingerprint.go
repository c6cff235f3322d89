package bridge

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/google/uuid"
)

// Fingerprint identifies this device to the backend.
type Fingerprint struct {
	DeviceID     string `json:"device_id"`
	HardwareHash string `json:"hardware_hash"`
	CreatedAt    string `json:"created_at"`
}

// String returns the "device_id:hardware_hash" form sent on the wire.
func (f Fingerprint) String() string {
	return f.DeviceID + ":" + f.HardwareHash
}

// HardwareHash hashes the host name, user name and os-arch.
func HardwareHash(info HostInfo) string {
	h := sha256.New()
	h.Write([]byte(info.Hostname))
	h.Write([]byte(info.Username))
	h.Write([]byte(runtime.GOOS + "-" + info.Arch))
	return hex.EncodeToString(h.Sum(nil))
}

// LoadOrCreateFingerprint reads the fingerprint persisted at path, creating
// and persisting a new one when the file is missing or unreadable.
func LoadOrCreateFingerprint(path string) (Fingerprint, error) {
	if data, err := os.ReadFile(path); err == nil {
		var fp Fingerprint
		if json.Unmarshal(data, &fp) == nil && fp.DeviceID != "" && fp.HardwareHash != "" {
			return fp, nil
		}
	}

	fp := Fingerprint{
		DeviceID:     uuid.NewString(),
		HardwareHash: HardwareHash(CurrentHost()),
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	data, err := json.MarshalIndent(fp, "", "  ")
	if err != nil {
		return fp, fmt.Errorf("encode fingerprint: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fp, fmt.Errorf("create fingerprint dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fp, fmt.Errorf("write fingerprint: %w", err)
	}
	return fp, nil
}
