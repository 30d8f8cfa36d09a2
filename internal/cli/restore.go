package cli

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/themactep/jct/internal/cliutil"
)

// romRoot is where this build expects to find the read-only factory copy of
// an overlay file, mirroring the overlay-rooted firmware convention
// described in spec.md's purpose section (a read-only lower layer plus a
// writable upper layer combined by OverlayFS). Restore itself is explicitly
// out of scope for deep implementation (spec.md §2): it is a thin unlink +
// remount wrapper, not a from-scratch overlay manager.
const romRoot = "/rom"

// runRestore implements "restore": remove the writable overlay copy of an
// absolute path, exposing the read-only factory default underneath, then
// remount / so the change takes effect without a reboot.
func runRestore(target string, args []string) error {
	if len(args) != 0 {
		return cliutil.RestoreBadArgsErr("usage: jct <target> restore")
	}
	if !filepath.IsAbs(target) {
		return cliutil.RestoreBadArgsErr(fmt.Sprintf("restore requires an absolute path, got %q", target))
	}

	romPath := filepath.Join(romRoot, target)
	if _, err := os.Stat(romPath); err != nil {
		return cliutil.NoROMSourceErr(fmt.Sprintf("no read-only factory source for %s", target), err)
	}

	if _, err := os.Stat(target); err != nil {
		if os.IsNotExist(err) {
			return cliutil.NoOverlayErr(fmt.Sprintf("nothing to restore: %s", target))
		}
		return cliutil.IOErr(fmt.Sprintf("stat %s", target), err)
	}

	if err := os.Remove(target); err != nil {
		return cliutil.UnlinkFailedErr(fmt.Sprintf("removing overlay copy of %s", target), err)
	}

	if err := exec.Command("mount", "-o", "remount", "/").Run(); err != nil {
		return cliutil.RemountFailedErr("remounting /", err)
	}
	return nil
}
