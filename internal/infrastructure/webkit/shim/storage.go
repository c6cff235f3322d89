package shim

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/tabshell/internal/application/port"
)

const storageJS = `(function () {
  var snap = %s;
  try {
    if (window.sessionStorage.getItem("__tabshell_seeded")) {
      return;
    }
    Object.keys(snap.localStorage || {}).forEach(function (k) {
      window.localStorage.setItem(k, snap.localStorage[k]);
    });
    Object.keys(snap.sessionStorage || {}).forEach(function (k) {
      window.sessionStorage.setItem(k, snap.sessionStorage[k]);
    });
    window.sessionStorage.setItem("__tabshell_seeded", "1");
  } catch (e) {
    console.warn("tabshell storage seed failed", e);
  }
})();
`

// StorageScript returns a script that seeds web storage from snapshot once
// per browsing session. It returns "" when there is nothing to seed.
func StorageScript(snapshot *port.StorageSnapshot) (string, error) {
	if snapshot == nil || (len(snapshot.Local) == 0 && len(snapshot.Session) == 0) {
		return "", nil
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("shim: encode storage snapshot: %w", err)
	}
	return fmt.Sprintf(storageJS, data), nil
}

// ParseSnapshot decodes a serialized snapshot. Invalid input yields nil.
func ParseSnapshot(data []byte) *port.StorageSnapshot {
	if len(data) == 0 {
		return nil
	}
	var snap port.StorageSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil
	}
	return &snap
}
