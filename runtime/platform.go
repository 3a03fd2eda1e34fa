package runtime

import (
	"fmt"
	"os/exec"
	goruntime "runtime"

	log "github.com/sirupsen/logrus"
)

// OpenBrowser opens url with the platform's default browser. The spawned
// helper detaches immediately and is not tracked.
func OpenBrowser(url string) error {
	var cmd *exec.Cmd
	switch goruntime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("opening browser: %w", err)
	}
	return nil
}

// broadKill terminates every process whose command line matches pattern.
// Best effort, POSIX only; pkill exits non-zero when nothing matched.
func broadKill(pattern string) {
	if goruntime.GOOS == "windows" {
		return
	}
	if err := exec.Command("pkill", "-f", pattern).Run(); err != nil {
		log.WithError(err).Debug("broad kill matched nothing")
	}
}
