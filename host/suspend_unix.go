//go:build unix

package host

import (
	"os"
	"os/signal"
	"syscall"
)

// waitForeground stops the process like a shell ^Z and returns once it is continued
func waitForeground() {
	cont := make(chan os.Signal, 1)
	signal.Notify(cont, syscall.SIGCONT)
	defer signal.Stop(cont)

	if err := syscall.Kill(syscall.Getpid(), syscall.SIGTSTP); err != nil {
		logger.Warnf("stop failed: %v", err)
		return
	}
	<-cont
}
